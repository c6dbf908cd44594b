/*******************************************************************************
* Copyright (C) 2025 the Eclipse BaSyx Authors and Fraunhofer IESE
*
* Permission is hereby granted, free of charge, to any person obtaining
* a copy of this software and associated documentation files (the
* "Software"), to deal in the Software without restriction, including
* without limitation the rights to use, copy, modify, merge, publish,
* distribute, sublicense, and/or sell copies of the Software, and to
* permit persons to whom the Software is furnished to do so, subject to
* the following conditions:
*
* The above copyright notice and this permission notice shall be
* included in all copies or substantial portions of the Software.
*
* THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
* EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
* MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
* NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
* LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
* OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
* WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*
* SPDX-License-Identifier: MIT
******************************************************************************/

// Package api exposes CRUD access to a shared AAS object store over REST.
// Identifiers in URLs are base64url encoded. Model errors map to HTTP
// status codes: NotFound to 404, DuplicateKey to 409, ConstraintViolation
// and TypeMismatch to 422.
package api

import (
	"errors"
	"io"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/eclipse-basyx/basyx-aas-environment/internal/aasenvironment/logger"
	"github.com/eclipse-basyx/basyx-aas-environment/internal/common"
	"github.com/eclipse-basyx/basyx-aas-environment/internal/common/model"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Service serves the environment CRUD endpoints on top of an object store.
// The mutex serializes access; the store itself gives no concurrency
// guarantees.
type Service struct {
	store model.ObjectStore
	mu    sync.Mutex
}

// NewService creates the API service for the given store.
func NewService(store model.ObjectStore) *Service {
	return &Service{store: store}
}

// collection describes one served root collection.
type collection struct {
	path      string
	modelType string
}

var collections = []collection{
	{"/submodels", "Submodel"},
	{"/shells", "AssetAdministrationShell"},
	{"/concept-descriptions", "ConceptDescription"},
}

// Routes registers the environment endpoints on the router.
func (s *Service) Routes(r chi.Router) {
	for _, col := range collections {
		col := col
		r.Get(col.path, s.handleList(col))
		r.Post(col.path, s.handleCreate(col))
		r.Get(col.path+"/{identifier}", s.handleGet(col))
		r.Put(col.path+"/{identifier}", s.handleUpdate(col))
		r.Delete(col.path+"/{identifier}", s.handleDelete(col))
	}
}

func (s *Service) handleList(col collection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if err := s.store.Update(r.Context()); err != nil {
			writeError(w, err)
			return
		}
		result := make([]model.Identifiable, 0)
		for _, obj := range s.store.Values() {
			if obj.GetModelType() == col.modelType {
				result = append(result, obj)
			}
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func (s *Service) handleGet(col collection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if err := s.store.Update(r.Context()); err != nil {
			writeError(w, err)
			return
		}
		obj, err := s.lookup(col, r)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, obj)
	}
}

func (s *Service) handleCreate(col collection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		obj, err := decodeBody(col, r)
		if err != nil {
			writeBodyError(w, err)
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		if err := s.store.Update(r.Context()); err != nil {
			writeError(w, err)
			return
		}
		if err := s.store.Add(obj); err != nil {
			writeError(w, err)
			return
		}
		if err := s.store.Commit(r.Context()); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, obj)
	}
}

func (s *Service) handleUpdate(col collection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		obj, err := decodeBody(col, r)
		if err != nil {
			writeBodyError(w, err)
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		if err := s.store.Update(r.Context()); err != nil {
			writeError(w, err)
			return
		}
		existing, err := s.lookup(col, r)
		if err != nil {
			writeError(w, err)
			return
		}
		if existing.GetIdentification().ID != obj.GetIdentification().ID {
			writeError(w, &model.ConstraintViolationError{
				Message: "identifier in the request body does not match the identifier in the URL",
			})
			return
		}
		if err := s.store.Remove(existing.GetIdentification()); err != nil {
			writeError(w, err)
			return
		}
		if err := s.store.Add(obj); err != nil {
			writeError(w, err)
			return
		}
		if err := s.store.Commit(r.Context()); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Service) handleDelete(col collection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if err := s.store.Update(r.Context()); err != nil {
			writeError(w, err)
			return
		}
		obj, err := s.lookup(col, r)
		if err != nil {
			writeError(w, err)
			return
		}
		if err := s.store.Remove(obj.GetIdentification()); err != nil {
			writeError(w, err)
			return
		}
		if err := s.store.Commit(r.Context()); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// lookup resolves the base64url identifier from the URL within the served
// collection.
func (s *Service) lookup(col collection, r *http.Request) (model.Identifiable, error) {
	id, err := common.DecodeString(chi.URLParam(r, "identifier"))
	if err != nil {
		return nil, &model.NotFoundError{What: "identifier", Key: chi.URLParam(r, "identifier")}
	}
	for _, obj := range s.store.Values() {
		if obj.GetModelType() == col.modelType && obj.GetIdentification().ID == id {
			return obj, nil
		}
	}
	return nil, &model.NotFoundError{What: "identifier", Key: id}
}

func decodeBody(col collection, r *http.Request) (model.Identifiable, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}
	obj, err := model.UnmarshalIdentifiable(body)
	if err != nil {
		return nil, err
	}
	if obj.GetModelType() != col.modelType {
		return nil, &model.TypeMismatchError{Expected: col.modelType, Actual: obj.GetModelType()}
	}
	return obj, nil
}

// writeBodyError reports a rejected request body. Model errors keep their
// mapped status, anything else (malformed JSON, unknown modelType) is a bad
// request.
func writeBodyError(w http.ResponseWriter, err error) {
	status := httpStatus(err)
	if status == http.StatusInternalServerError {
		status = http.StatusBadRequest
	}
	writeErrorStatus(w, status, err)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logger.LogError("writing response", err)
	}
}

// resultMessage is the error body, following the BaSyx result format.
type resultMessage struct {
	Code          string `json:"code"`
	CorrelationID string `json:"correlationId"`
	MessageType   string `json:"messageType"`
	Text          string `json:"text"`
	Timestamp     string `json:"timestamp"`
}

type errorResult struct {
	Messages []resultMessage `json:"messages"`
}

func writeError(w http.ResponseWriter, err error) {
	writeErrorStatus(w, httpStatus(err), err)
}

func writeErrorStatus(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		logger.LogError("request failed", err)
	}
	body := errorResult{Messages: []resultMessage{{
		Code:          http.StatusText(status),
		CorrelationID: uuid.New().String(),
		MessageType:   "Exception",
		Text:          err.Error(),
		Timestamp:     common.GetCurrentTimestamp(),
	}}}
	data, marshalErr := json.Marshal(body)
	if marshalErr != nil {
		http.Error(w, err.Error(), status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, writeErr := w.Write(data); writeErr != nil {
		logger.LogError("writing error response", writeErr)
	}
}

func httpStatus(err error) int {
	var notFound *model.NotFoundError
	if errors.As(err, &notFound) {
		return http.StatusNotFound
	}
	var duplicate *model.DuplicateKeyError
	if errors.As(err, &duplicate) {
		return http.StatusConflict
	}
	var constraint *model.ConstraintViolationError
	if errors.As(err, &constraint) {
		return http.StatusUnprocessableEntity
	}
	var mismatch *model.TypeMismatchError
	if errors.As(err, &mismatch) {
		return http.StatusUnprocessableEntity
	}
	var unsupported *model.UnsupportedOperationError
	if errors.As(err, &unsupported) {
		return http.StatusNotImplemented
	}
	return http.StatusInternalServerError
}
