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

// TestPropertyJSONRoundTrip verifies that a property survives a marshal and
// unmarshal with all its capability attributes.
func TestPropertyJSONRoundTrip(t *testing.T) {
	property := NewProperty("ExampleProperty", DataTypeDefXSDString)
	property.SetValue("exampleValue")
	property.SetCategory("CONSTANT")
	property.SetDescription(LangStringSet{"en": "Example Property object", "de": "Beispiel Property Element"})
	property.SetSemanticID(testReference("http://acplt.org/Properties/ExampleProperty"))
	qualifier := NewQualifier("http://acplt.org/Qualifier/ExampleQualifier", DataTypeDefXSDInt)
	qualifier.Value = "100"
	require.NoError(t, property.AddQualifier(qualifier))

	data, err := json.Marshal(property)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"modelType":"Property"`)

	element, err := UnmarshalSubmodelElement(data)
	require.NoError(t, err)
	decoded, ok := element.(*Property)
	require.True(t, ok)

	assert.Equal(t, "ExampleProperty", decoded.GetIdShort())
	assert.Equal(t, "exampleValue", decoded.GetValue())
	assert.Equal(t, DataTypeDefXSDString, decoded.GetValueType())
	assert.Equal(t, "CONSTANT", decoded.GetCategory())
	assert.Equal(t, LangStringSet{"en": "Example Property object", "de": "Beispiel Property Element"}, decoded.GetDescription())
	assert.True(t, property.GetSemanticID().Equal(decoded.GetSemanticID()))
	decodedQualifier, err := decoded.GetQualifierByType("http://acplt.org/Qualifier/ExampleQualifier")
	require.NoError(t, err)
	assert.Equal(t, "100", decodedQualifier.Value)
}

// TestBlobJSONEncoding verifies that blob payloads travel base64 encoded.
func TestBlobJSONEncoding(t *testing.T) {
	blob := NewBlob("ExampleBlob", "application/octet-stream")
	blob.SetValue([]byte{0x01, 0x02, 0x03})

	data, err := json.Marshal(blob)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"value":"AQID"`)

	element, err := UnmarshalSubmodelElement(data)
	require.NoError(t, err)
	decoded, ok := element.(*Blob)
	require.True(t, ok)
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, decoded.GetValue())
	assert.Equal(t, "application/octet-stream", decoded.GetMimeType())
}

// TestSubmodelJSONRoundTrip verifies nested element trees survive the round
// trip, including collection ordering flags.
func TestSubmodelJSONRoundTrip(t *testing.T) {
	submodel := NewSubmodel(Identifier{ID: "urn:x-test:submodel1", IDType: IdentifierTypeIRI})
	require.NoError(t, submodel.SetIdShort("TestSubmodel"))
	submodel.administration = &AdministrativeInformation{Version: "0.9", Revision: "1"}

	collection := NewSubmodelElementCollection("Collection", true, true)
	nested := NewProperty("Nested", DataTypeDefXSDInt)
	nested.SetValue("42")
	require.NoError(t, collection.AddElement(nested))
	require.NoError(t, submodel.AddSubmodelElement(collection))

	data, err := json.Marshal(submodel)
	require.NoError(t, err)

	decoded, err := UnmarshalSubmodel(data)
	require.NoError(t, err)
	assert.Equal(t, submodel.GetIdentification(), decoded.GetIdentification())
	assert.Equal(t, "TestSubmodel", decoded.GetIdShort())
	require.NotNil(t, decoded.GetAdministration())
	assert.Equal(t, "0.9", decoded.GetAdministration().Version)

	child, err := decoded.GetReferable("Collection")
	require.NoError(t, err)
	decodedCollection, ok := child.(*SubmodelElementCollection)
	require.True(t, ok)
	assert.True(t, decodedCollection.IsOrdered())
	grandchild, err := decodedCollection.GetReferable("Nested")
	require.NoError(t, err)
	assert.Equal(t, "42", grandchild.(*Property).GetValue())
}

// TestShellJSONRoundTrip verifies the Identifiable dispatch and the shell's
// reference attributes.
func TestShellJSONRoundTrip(t *testing.T) {
	shell := NewAssetAdministrationShell(
		Identifier{ID: "urn:x-test:shell1", IDType: IdentifierTypeIRI},
		MustNewReference(Key{Type: KeyElementsAsset, Local: true, Value: "urn:x-test:asset1", IDType: KeyTypeIRI}),
	)
	require.NoError(t, shell.AddSubmodel(*MustNewReference(
		Key{Type: KeyElementsSubmodel, Local: true, Value: "urn:x-test:submodel1", IDType: KeyTypeIRI},
	)))

	data, err := json.Marshal(shell)
	require.NoError(t, err)

	obj, err := UnmarshalIdentifiable(data)
	require.NoError(t, err)
	decoded, ok := obj.(*AssetAdministrationShell)
	require.True(t, ok)
	assert.True(t, shell.GetAsset().Equal(decoded.GetAsset()))
	require.Len(t, decoded.GetSubmodels(), 1)
	assert.Equal(t, "urn:x-test:submodel1", decoded.GetSubmodels()[0].Keys()[0].Value)
}

// TestUnmarshalUnknownModelType verifies the dispatch rejects unknown
// discriminators.
func TestUnmarshalUnknownModelType(t *testing.T) {
	_, err := UnmarshalSubmodelElement([]byte(`{"modelType":"Widget","idShort":"W"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported modelType: Widget")

	_, err = UnmarshalIdentifiable([]byte(`{"modelType":"Widget"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported modelType: Widget")
}

// TestUnmarshalEnforcesConstraints verifies that metamodel constraints fire
// on the wire path as well.
func TestUnmarshalEnforcesConstraints(t *testing.T) {
	// An Instance-kind Range without bounds is invalid.
	_, err := UnmarshalSubmodelElement([]byte(
		`{"modelType":"Range","idShort":"R","valueType":"xs:int","kind":"Instance"}`))
	var violation *ConstraintViolationError
	require.ErrorAs(t, err, &violation)

	// Duplicate idShorts inside one submodel are rejected.
	_, err = UnmarshalSubmodel([]byte(
		`{"modelType":"Submodel","identification":{"id":"urn:x-test:submodel1","idType":"IRI"},` +
			`"submodelElements":[` +
			`{"modelType":"Property","idShort":"P","valueType":"xs:string"},` +
			`{"modelType":"Property","idShort":"P","valueType":"xs:string"}]}`))
	var duplicate *DuplicateKeyError
	require.ErrorAs(t, err, &duplicate)
}
