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

package model

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDictObjectStore verifies the basic store operations and their error
// cases.
func TestDictObjectStore(t *testing.T) {
	store := NewDictObjectStore()
	id := Identifier{ID: "urn:x-test:submodel1", IDType: IdentifierTypeIRI}
	submodel := NewSubmodel(id)

	_, err := store.GetIdentifiable(id)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)

	require.NoError(t, store.Add(submodel))
	assert.Equal(t, 1, store.Len())

	// The stored object must come back as the identical instance.
	got, err := store.GetIdentifiable(id)
	require.NoError(t, err)
	assert.Same(t, submodel, got)

	// A second object under the same identifier is rejected.
	err = store.Add(NewSubmodel(id))
	var duplicate *DuplicateKeyError
	require.ErrorAs(t, err, &duplicate)
	assert.Equal(t, "identification", duplicate.Attribute)

	require.NoError(t, store.Remove(id))
	assert.Equal(t, 0, store.Len())
	require.ErrorAs(t, store.Remove(id), &notFound)

	// Update and Commit are no-ops for the in-memory store.
	require.NoError(t, store.Update(context.Background()))
	require.NoError(t, store.Commit(context.Background()))
}

// TestDictObjectStoreOrder verifies that iteration preserves insertion
// order.
func TestDictObjectStoreOrder(t *testing.T) {
	store := NewDictObjectStore()
	ids := []string{"urn:x-test:c", "urn:x-test:a", "urn:x-test:b"}
	for _, id := range ids {
		require.NoError(t, store.Add(NewSubmodel(Identifier{ID: id, IDType: IdentifierTypeIRI})))
	}
	values := store.Values()
	require.Len(t, values, 3)
	for i, id := range ids {
		assert.Equal(t, id, values[i].GetIdentification().ID)
	}
}

// TestRegistryMultiplexer verifies first-match-wins consultation and the
// aggregate miss.
func TestRegistryMultiplexer(t *testing.T) {
	idFirst := Identifier{ID: "urn:x-test:first", IDType: IdentifierTypeIRI}
	idSecond := Identifier{ID: "urn:x-test:second", IDType: IdentifierTypeIRI}
	idShadowed := Identifier{ID: "urn:x-test:shadowed", IDType: IdentifierTypeIRI}

	front := NewDictObjectStore(NewSubmodel(idFirst))
	frontShadow := NewSubmodel(idShadowed)
	require.NoError(t, front.Add(frontShadow))

	back := NewDictObjectStore(NewSubmodel(idSecond), NewSubmodel(idShadowed))

	mux := NewRegistryMultiplexer(front, back)

	got, err := mux.GetIdentifiable(idSecond)
	require.NoError(t, err)
	assert.Equal(t, idSecond, got.GetIdentification())

	// The first registry in consultation order wins.
	got, err = mux.GetIdentifiable(idShadowed)
	require.NoError(t, err)
	assert.Same(t, frontShadow, got)

	_, err = mux.GetIdentifiable(Identifier{ID: "urn:x-test:missing", IDType: IdentifierTypeIRI})
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t,
		"identifier 'IRI=urn:x-test:missing' could not be found in any of the 2 consulted registries",
		err.Error())
}
