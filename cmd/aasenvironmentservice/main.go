// Package main implements the AAS Environment service server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eclipse-basyx/basyx-aas-environment/internal/aasenvironment/api"
	persistencemongo "github.com/eclipse-basyx/basyx-aas-environment/internal/aasenvironment/persistence/mongo"
	"github.com/eclipse-basyx/basyx-aas-environment/internal/common"
	"github.com/eclipse-basyx/basyx-aas-environment/internal/common/exampledata"
	"github.com/eclipse-basyx/basyx-aas-environment/internal/common/model"
)

func runServer(ctx context.Context, configPath string) error {
	common.PrintSplash()
	log.Default().Println("Loading AAS Environment Service...")
	log.Default().Println("Config Path:", configPath)

	cfg, err := common.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// === Object Store Backend ===
	store, err := buildStore(ctx, cfg)
	if err != nil {
		log.Printf("❌ Backend setup failed: %v", err)
		return err
	}

	if cfg.Backend.Preload && store.Len() == 0 {
		log.Println("📦 Preloading example environment")
		for _, obj := range exampledata.BuildExampleEnvironment().Values() {
			if err := store.Add(obj); err != nil {
				return err
			}
		}
		if err := store.Commit(ctx); err != nil {
			return err
		}
	}

	// === Main Router ===
	r := chi.NewRouter()

	common.AddCors(r, cfg)
	common.AddHealthEndpoint(r, cfg)

	apiRouter := chi.NewRouter()
	api.NewService(store).Routes(apiRouter)

	base := common.NormalizeBasePath(cfg.Server.ContextPath)
	r.Mount(base, apiRouter)

	// === Start Server ===
	addr := fmt.Sprintf("0.0.0.0:%d", cfg.Server.Port)
	log.Printf("▶️ AAS Environment listening on %s (contextPath=%q)\n", addr, cfg.Server.ContextPath)

	go func() {
		if err := http.ListenAndServe(addr, r); err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down server...")
	return nil
}

func buildStore(ctx context.Context, cfg *common.Config) (model.ObjectStore, error) {
	switch cfg.Backend.Type {
	case "", "memory":
		log.Println("🗄️  Using in-memory object store")
		return model.NewDictObjectStore(), nil
	case "mongodb":
		log.Printf("🗄️  Connecting to MongoDB (database=%s, collection=%s)",
			cfg.Backend.Mongo.Database, cfg.Backend.Mongo.Collection)
		store, err := persistencemongo.NewObjectStore(ctx,
			cfg.Backend.Mongo.URI, cfg.Backend.Mongo.Database, cfg.Backend.Mongo.Collection)
		if err != nil {
			return nil, err
		}
		if err := store.Update(ctx); err != nil {
			return nil, err
		}
		log.Println("✅ MongoDB connection established")
		return store, nil
	default:
		return nil, fmt.Errorf("unknown backend type: %s", cfg.Backend.Type)
	}
}

func main() {
	ctx := context.Background()
	configPath := ""
	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.Parse()
	if err := runServer(ctx, configPath); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
