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

import "fmt"

// KeyElements names the type of the model element a Key points to.
type KeyElements string

const (
	KeyElementsGlobalReference   KeyElements = "GlobalReference"
	KeyElementsFragmentReference KeyElements = "FragmentReference"

	KeyElementsAsset                    KeyElements = "Asset"
	KeyElementsAssetAdministrationShell KeyElements = "AssetAdministrationShell"
	KeyElementsConceptDescription       KeyElements = "ConceptDescription"
	KeyElementsSubmodel                 KeyElements = "Submodel"

	KeyElementsAnnotatedRelationshipElement KeyElements = "AnnotatedRelationshipElement"
	KeyElementsBasicEvent                   KeyElements = "BasicEvent"
	KeyElementsBlob                         KeyElements = "Blob"
	KeyElementsCapability                   KeyElements = "Capability"
	KeyElementsDataElement                  KeyElements = "DataElement"
	KeyElementsEntity                       KeyElements = "Entity"
	KeyElementsEvent                        KeyElements = "Event"
	KeyElementsFile                         KeyElements = "File"
	KeyElementsMultiLanguageProperty        KeyElements = "MultiLanguageProperty"
	KeyElementsOperation                    KeyElements = "Operation"
	KeyElementsProperty                     KeyElements = "Property"
	KeyElementsRange                        KeyElements = "Range"
	KeyElementsReferenceElement             KeyElements = "ReferenceElement"
	KeyElementsRelationshipElement          KeyElements = "RelationshipElement"
	KeyElementsSubmodelElement              KeyElements = "SubmodelElement"
	KeyElementsSubmodelElementCollection    KeyElements = "SubmodelElementCollection"
)

// KeyType names the scheme of a Key's value.
type KeyType string

const (
	KeyTypeIRDI       KeyType = "IRDI"
	KeyTypeIRI        KeyType = "IRI"
	KeyTypeCustom     KeyType = "Custom"
	KeyTypeIdShort    KeyType = "IdShort"
	KeyTypeFragmentID KeyType = "FragmentId"
)

// Key is a single segment of a Reference chain. Local keys point into the
// same AAS environment, non-local keys into external resources.
type Key struct {
	Type   KeyElements
	Local  bool
	Value  string
	IDType KeyType
}

func (k Key) String() string {
	return fmt.Sprintf("Key(%s, local=%t, %s=%s)", k.Type, k.Local, k.IDType, k.Value)
}

// Identifier converts a key carrying a global id scheme into the Identifier
// of the Identifiable it points to.
func (k Key) Identifier() (Identifier, bool) {
	switch k.IDType {
	case KeyTypeIRI:
		return Identifier{ID: k.Value, IDType: IdentifierTypeIRI}, true
	case KeyTypeIRDI:
		return Identifier{ID: k.Value, IDType: IdentifierTypeIRDI}, true
	case KeyTypeCustom:
		return Identifier{ID: k.Value, IDType: IdentifierTypeCustom}, true
	default:
		return Identifier{}, false
	}
}
