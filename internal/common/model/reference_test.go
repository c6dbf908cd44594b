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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolutionFixture(t *testing.T) (*DictObjectStore, *Property) {
	t.Helper()
	submodel := NewSubmodel(Identifier{ID: "urn:x-test:submodel1", IDType: IdentifierTypeIRI})
	collection := NewSubmodelElementCollection("Collection", false, true)
	property := NewProperty("Prop1", DataTypeDefXSDString)
	property.SetValue("value")
	require.NoError(t, collection.AddElement(property))
	require.NoError(t, submodel.AddSubmodelElement(collection))
	return NewDictObjectStore(submodel), property
}

// TestReferenceResolve verifies lazy resolution through nested namespaces.
func TestReferenceResolve(t *testing.T) {
	store, property := resolutionFixture(t)

	ref := MustNewReference(
		Key{Type: KeyElementsSubmodel, Local: true, Value: "urn:x-test:submodel1", IDType: KeyTypeIRI},
		Key{Type: KeyElementsSubmodelElementCollection, Local: true, Value: "Collection", IDType: KeyTypeIdShort},
		Key{Type: KeyElementsProperty, Local: true, Value: "Prop1", IDType: KeyTypeIdShort},
	)

	got, err := ref.Resolve(store)
	require.NoError(t, err)
	assert.Same(t, property, got)
}

// TestReferenceResolveAbstractKeyTypes verifies that the abstract
// SubmodelElement and DataElement key types accept concrete variants.
func TestReferenceResolveAbstractKeyTypes(t *testing.T) {
	store, property := resolutionFixture(t)

	for _, keyType := range []KeyElements{KeyElementsSubmodelElement, KeyElementsDataElement} {
		ref := MustNewReference(
			Key{Type: KeyElementsSubmodel, Local: true, Value: "urn:x-test:submodel1", IDType: KeyTypeIRI},
			Key{Type: KeyElementsSubmodelElementCollection, Local: true, Value: "Collection", IDType: KeyTypeIdShort},
			Key{Type: keyType, Local: true, Value: "Prop1", IDType: KeyTypeIdShort},
		)
		got, err := ref.Resolve(store)
		require.NoError(t, err)
		assert.Same(t, property, got)
	}
}

// TestReferenceResolveErrors verifies the error taxonomy of resolution.
func TestReferenceResolveErrors(t *testing.T) {
	store, _ := resolutionFixture(t)

	// Unknown root identifier.
	missing := MustNewReference(
		Key{Type: KeyElementsSubmodel, Local: true, Value: "urn:x-test:missing", IDType: KeyTypeIRI},
	)
	_, err := missing.Resolve(store)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)

	// Unknown idShort below a known root.
	missingChild := MustNewReference(
		Key{Type: KeyElementsSubmodel, Local: true, Value: "urn:x-test:submodel1", IDType: KeyTypeIRI},
		Key{Type: KeyElementsProperty, Local: true, Value: "Unknown", IDType: KeyTypeIdShort},
	)
	_, err = missingChild.Resolve(store)
	require.ErrorAs(t, err, &notFound)

	// The resolved element must carry the type the last key names.
	wrongType := MustNewReference(
		Key{Type: KeyElementsSubmodel, Local: true, Value: "urn:x-test:submodel1", IDType: KeyTypeIRI},
		Key{Type: KeyElementsBlob, Local: true, Value: "Collection", IDType: KeyTypeIdShort},
	)
	_, err = wrongType.Resolve(store)
	var mismatch *TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "Blob", mismatch.Expected)
	assert.Equal(t, "SubmodelElementCollection", mismatch.Actual)

	// Descending into a non-namespace element.
	throughLeaf := MustNewReference(
		Key{Type: KeyElementsSubmodel, Local: true, Value: "urn:x-test:submodel1", IDType: KeyTypeIRI},
		Key{Type: KeyElementsSubmodelElementCollection, Local: true, Value: "Collection", IDType: KeyTypeIdShort},
		Key{Type: KeyElementsProperty, Local: true, Value: "Prop1", IDType: KeyTypeIdShort},
		Key{Type: KeyElementsProperty, Local: true, Value: "Deeper", IDType: KeyTypeIdShort},
	)
	_, err = throughLeaf.Resolve(store)
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "Namespace", mismatch.Expected)

	// References into external resources cannot be resolved here.
	external := MustNewReference(
		Key{Type: KeyElementsGlobalReference, Local: false, Value: "http://acplt.org/External", IDType: KeyTypeIRI},
	)
	_, err = external.Resolve(store)
	var unsupported *UnsupportedOperationError
	require.ErrorAs(t, err, &unsupported)

	// A first key without a global identifier cannot address a root.
	fragment := MustNewReference(
		Key{Type: KeyElementsProperty, Local: true, Value: "Prop1", IDType: KeyTypeIdShort},
	)
	_, err = fragment.Resolve(store)
	require.ErrorAs(t, err, &mismatch)
}

// TestReferenceEqual verifies key chain comparison.
func TestReferenceEqual(t *testing.T) {
	a := MustNewReference(Key{Type: KeyElementsSubmodel, Local: true, Value: "urn:x-test:a", IDType: KeyTypeIRI})
	b := MustNewReference(Key{Type: KeyElementsSubmodel, Local: true, Value: "urn:x-test:a", IDType: KeyTypeIRI})
	c := MustNewReference(Key{Type: KeyElementsSubmodel, Local: true, Value: "urn:x-test:c", IDType: KeyTypeIRI})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	var nilRef *Reference
	assert.False(t, a.Equal(nilRef))
	assert.True(t, nilRef.Equal(nil))

	_, err := NewReference()
	require.Error(t, err)
}
