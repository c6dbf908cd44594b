//go:build unit

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

package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eclipse-basyx/basyx-aas-environment/internal/common"
	"github.com/eclipse-basyx/basyx-aas-environment/internal/common/exampledata"
	"github.com/eclipse-basyx/basyx-aas-environment/internal/common/model"
)

func setupTestServer(t *testing.T, store model.ObjectStore) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	NewService(store).Routes(r)
	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server
}

func doRequest(t *testing.T, method, url string, body []byte) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func marshalObject(t *testing.T, obj model.Identifiable) []byte {
	t.Helper()
	data, err := json.Marshal(obj)
	require.NoError(t, err)
	return data
}

func decodeErrorResult(t *testing.T, resp *http.Response) errorResult {
	t.Helper()
	var result errorResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result
}

func TestSubmodelCRUD(t *testing.T) {
	server := setupTestServer(t, model.NewDictObjectStore())
	body := marshalObject(t, exampledata.BuildExampleSubmodel())
	encodedID := common.EncodeString(exampledata.SubmodelID)

	// Empty collection at the start.
	resp := doRequest(t, http.MethodGet, server.URL+"/submodels", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var list []jsoniter.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	assert.Empty(t, list)

	// Create.
	resp = doRequest(t, http.MethodPost, server.URL+"/submodels", body)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	// Creating the same submodel again conflicts.
	resp = doRequest(t, http.MethodPost, server.URL+"/submodels", body)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Read back one and all.
	resp = doRequest(t, http.MethodGet, server.URL+"/submodels/"+encodedID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var single struct {
		ModelType      string `json:"modelType"`
		Identification struct {
			ID string `json:"id"`
		} `json:"identification"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&single))
	assert.Equal(t, "Submodel", single.ModelType)
	assert.Equal(t, exampledata.SubmodelID, single.Identification.ID)

	resp = doRequest(t, http.MethodGet, server.URL+"/submodels", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	assert.Len(t, list, 1)

	// Update in place.
	updated := exampledata.BuildExampleSubmodel()
	updated.SetCategory("VARIABLE")
	resp = doRequest(t, http.MethodPut, server.URL+"/submodels/"+encodedID, marshalObject(t, updated))
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doRequest(t, http.MethodGet, server.URL+"/submodels/"+encodedID, nil)
	var afterUpdate struct {
		Category string `json:"category"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&afterUpdate))
	assert.Equal(t, "VARIABLE", afterUpdate.Category)

	// Delete, then the resource is gone.
	resp = doRequest(t, http.MethodDelete, server.URL+"/submodels/"+encodedID, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp = doRequest(t, http.MethodDelete, server.URL+"/submodels/"+encodedID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetUnknownIdentifier(t *testing.T) {
	server := setupTestServer(t, model.NewDictObjectStore())
	resp := doRequest(t, http.MethodGet,
		server.URL+"/submodels/"+common.EncodeString("urn:x-test:missing"), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	result := decodeErrorResult(t, resp)
	require.Len(t, result.Messages, 1)
	message := result.Messages[0]
	assert.Equal(t, "Not Found", message.Code)
	assert.Equal(t, "Exception", message.MessageType)
	assert.NotEmpty(t, message.CorrelationID)
	assert.NotEmpty(t, message.Timestamp)
	assert.Contains(t, message.Text, "urn:x-test:missing")
}

func TestCreateRejectsInvalidBodies(t *testing.T) {
	server := setupTestServer(t, model.NewDictObjectStore())

	// Malformed JSON.
	resp := doRequest(t, http.MethodPost, server.URL+"/submodels", []byte("{not json"))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Unknown modelType.
	resp = doRequest(t, http.MethodPost, server.URL+"/submodels", []byte(`{"modelType":"Widget"}`))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Valid object posted to the wrong collection.
	resp = doRequest(t, http.MethodPost, server.URL+"/submodels",
		marshalObject(t, exampledata.BuildExampleShell()))
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	// Valid shape violating a metamodel constraint.
	resp = doRequest(t, http.MethodPost, server.URL+"/submodels", []byte(
		`{"modelType":"Submodel","identification":{"id":"urn:x-test:s","idType":"IRI"},`+
			`"submodelElements":[{"modelType":"Range","idShort":"R","valueType":"xs:int","kind":"Instance"}]}`))
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestUpdateIdentifierMismatch(t *testing.T) {
	store := model.NewDictObjectStore(exampledata.BuildExampleSubmodel())
	server := setupTestServer(t, store)

	other := model.NewSubmodel(model.Identifier{ID: "urn:x-test:other", IDType: model.IdentifierTypeIRI})
	resp := doRequest(t, http.MethodPut,
		server.URL+"/submodels/"+common.EncodeString(exampledata.SubmodelID), marshalObject(t, other))
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	result := decodeErrorResult(t, resp)
	require.Len(t, result.Messages, 1)
	assert.Contains(t, result.Messages[0].Text,
		"identifier in the request body does not match the identifier in the URL")

	// Updating an absent resource is a miss, not an insert.
	resp = doRequest(t, http.MethodPut,
		server.URL+"/submodels/"+common.EncodeString("urn:x-test:missing"), marshalObject(t, other))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCollectionsAreSeparate(t *testing.T) {
	server := setupTestServer(t, exampledata.BuildExampleEnvironment())

	// Each collection only lists its own model type.
	for _, tc := range []struct {
		path string
		id   string
	}{
		{"/submodels", exampledata.SubmodelID},
		{"/shells", exampledata.ShellID},
		{"/concept-descriptions", exampledata.ConceptDescriptionID},
	} {
		resp := doRequest(t, http.MethodGet, server.URL+tc.path, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var list []struct {
			Identification struct {
				ID string `json:"id"`
			} `json:"identification"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
		require.Len(t, list, 1, tc.path)
		assert.Equal(t, tc.id, list[0].Identification.ID)
	}

	// A submodel identifier is invisible in the shell collection.
	resp := doRequest(t, http.MethodGet,
		server.URL+"/shells/"+common.EncodeString(exampledata.SubmodelID), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
