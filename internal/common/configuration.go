// Package common provides configuration management and HTTP endpoint
// utilities for the AAS environment service. It includes support for YAML
// configuration files, environment variable overrides, CORS setup, health
// endpoints and the selection of the object store backend.
// nolint:all
package common

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/spf13/viper"
)

// PrintSplash displays the BaSyx Go API ASCII art logo to the console.
// This function is typically called during application startup to provide
// visual branding and confirm the service is starting.
func PrintSplash() {
	log.Printf(`
	██████╗  █████╗ ███████╗██╗   ██╗██╗  ██╗     ██████╗  ██████╗
	██╔══██╗██╔══██╗██╔════╝╚██╗ ██╔╝╚██╗██╔╝    ██╔════╝ ██╔═══██╗
	██████╔╝███████║███████╗ ╚████╔╝  ╚███╔╝     ██║  ███╗██║   ██║
	██╔══██╗██╔══██║╚════██║  ╚██╔╝   ██╔██╗     ██║   ██║██║   ██║
	██████╔╝██║  ██║███████║   ██║   ██╔╝ ██╗    ╚██████╔╝╚██████╔╝
	╚═════╝ ╚═╝  ╚═╝╚══════╝   ╚═╝   ╚═╝  ╚═╝     ╚═════╝  ╚═════╝

	█████╗ ██████╗ ██╗
	██╔══██╗██╔══██╗██║
	███████║██████╔╝██║
	██╔══██║██╔═══╝ ██║
	██║  ██║██║     ██║
	╚═╝  ╚═╝╚═╝     ╚═╝
	`)
}

// Config represents the complete configuration structure for the AAS
// environment service: server settings, CORS policy and the object store
// backend.
type Config struct {
	Server     ServerConfig  `yaml:"server"`  // HTTP server configuration
	Backend    BackendConfig `yaml:"backend"` // Object store backend settings
	CorsConfig CorsConfig    `yaml:"cors"`    // CORS policy configuration
}

// ServerConfig contains HTTP server configuration parameters.
type ServerConfig struct {
	Port        int    `yaml:"port"`        // HTTP server port (default: 5004)
	ContextPath string `yaml:"contextPath"` // Base path for all endpoints
}

// BackendConfig selects and configures the object store backend. Type is
// either "memory" or "mongodb".
type BackendConfig struct {
	Type    string      `yaml:"type"`    // Backend type: memory or mongodb
	Mongo   MongoConfig `yaml:"mongo"`   // MongoDB settings, used with type mongodb
	Preload bool        `yaml:"preload"` // Preload the example environment on startup
}

// MongoConfig contains MongoDB connection parameters for the persisted
// object store.
type MongoConfig struct {
	URI        string `yaml:"uri"`        // Connection string
	Database   string `yaml:"database"`   // Database name
	Collection string `yaml:"collection"` // Collection holding the environment
}

// CorsConfig contains Cross-Origin Resource Sharing (CORS) policy settings.
type CorsConfig struct {
	AllowedOrigins   []string `yaml:"allowedOrigins"`   // Allowed origin domains
	AllowedMethods   []string `yaml:"allowedMethods"`   // Allowed HTTP methods
	AllowedHeaders   []string `yaml:"allowedHeaders"`   // Allowed request headers
	AllowCredentials bool     `yaml:"allowCredentials"` // Allow credentials in requests
}

// LoadConfig loads the configuration from YAML files and environment variables.
//
// The function supports multiple configuration sources with the following precedence:
// 1. Environment variables (highest priority)
// 2. Configuration file (if provided)
// 3. Default values (lowest priority)
//
// Environment variables use underscore notation (e.g., SERVER_PORT for
// server.port).
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	if configPath != "" {
		log.Printf("📁 Loading config from file: %s", configPath)
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		log.Println("📁 No config file provided — loading from environment variables only")
	}

	// Override config with environment variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	log.Println("✅ Configuration loaded successfully")
	PrintConfiguration(cfg)
	return cfg, nil
}

// setDefaults configures sensible default values for all configuration
// options, allowing the service to run in development environments without
// further configuration. Production deployments override these through
// configuration files or environment variables.
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 5004)
	v.SetDefault("server.contextPath", "")

	// Backend defaults
	v.SetDefault("backend.type", "memory")
	v.SetDefault("backend.preload", false)
	v.SetDefault("backend.mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("backend.mongo.database", "basyxTestDB")
	v.SetDefault("backend.mongo.collection", "aasenvironment")

	// CORS defaults
	v.SetDefault("cors.allowedOrigins", []string{"*"})
	v.SetDefault("cors.allowedMethods", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allowedHeaders", []string{"*"})
	v.SetDefault("cors.allowCredentials", true)
}

// PrintConfiguration prints the current configuration to the console with
// sensitive data redacted. The MongoDB connection string may carry
// credentials and is masked.
func PrintConfiguration(cfg *Config) {
	// Create a copy of the config to avoid modifying the original
	cfgCopy := *cfg

	if cfg.Backend.Mongo.URI != "" {
		cfgCopy.Backend.Mongo.URI = "****"
	}

	// Convert to JSON for pretty printing
	configJSON, err := json.MarshalIndent(cfgCopy, "", "  ")
	if err != nil {
		log.Printf("Unable to marshal configuration to JSON: %v", err)
		return
	}

	log.Printf("📜 Loaded configuration:\n%s", string(configJSON))
}

// AddCors configures Cross-Origin Resource Sharing (CORS) middleware for the
// router based on the provided configuration.
func AddCors(r *chi.Mux, config *Config) {
	c := cors.New(cors.Options{
		AllowedOrigins:   config.CorsConfig.AllowedOrigins,
		AllowedMethods:   config.CorsConfig.AllowedMethods,
		AllowedHeaders:   config.CorsConfig.AllowedHeaders,
		AllowCredentials: config.CorsConfig.AllowCredentials,
	})
	r.Use(c.Handler)
}
