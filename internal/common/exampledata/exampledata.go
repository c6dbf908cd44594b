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

// Package exampledata builds a fully populated example environment
// exercising every submodel element variant. It backs the checker tests and
// the service's optional preload.
package exampledata

import (
	"github.com/eclipse-basyx/basyx-aas-environment/internal/common/model"
)

const (
	SubmodelID           = "https://acplt.org/Test_Submodel"
	AssetID              = "https://acplt.org/Test_Asset"
	ShellID              = "https://acplt.org/Test_AssetAdministrationShell"
	ConceptDescriptionID = "https://acplt.org/Test_ConceptDescription"
)

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func globalRef(value string) *model.Reference {
	return model.MustNewReference(model.Key{
		Type:   model.KeyElementsGlobalReference,
		Local:  false,
		Value:  value,
		IDType: model.KeyTypeIRI,
	})
}

func strPtr(s string) *string { return &s }

// BuildExampleSubmodel builds a submodel containing one instance of every
// element variant.
func BuildExampleSubmodel() *model.Submodel {
	submodel := model.NewSubmodel(model.Identifier{ID: SubmodelID, IDType: model.IdentifierTypeIRI})
	must(submodel.SetIdShort("TestSubmodel"))
	submodel.SetSemanticID(globalRef("http://acplt.org/SubmodelTemplates/ExampleSubmodel"))

	property := model.NewProperty("ExampleProperty", model.DataTypeDefXSDString)
	property.SetValue("exampleValue")
	property.SetCategory("CONSTANT")
	property.SetDescription(model.LangStringSet{"en": "Example Property object", "de": "Beispiel Property Element"})
	property.SetSemanticID(globalRef("http://acplt.org/Properties/ExampleProperty"))
	qualifier := model.NewQualifier("http://acplt.org/Qualifier/ExampleQualifier", model.DataTypeDefXSDInt)
	qualifier.Value = "100"
	must(property.AddQualifier(qualifier))
	must(submodel.AddSubmodelElement(property))

	mlp := model.NewMultiLanguageProperty("ExampleMultiLanguageProperty")
	mlp.SetValue(model.LangStringSet{"en": "Example value", "de": "Beispielwert"})
	mlp.SetSemanticID(globalRef("http://acplt.org/MultiLanguageProperties/ExampleMultiLanguageProperty"))
	must(submodel.AddSubmodelElement(mlp))

	rng, err := model.NewRange("ExampleRange", model.DataTypeDefXSDInt, strPtr("0"), strPtr("100"), model.ModelingKindInstance)
	must(err)
	rng.SetSemanticID(globalRef("http://acplt.org/Ranges/ExampleRange"))
	must(submodel.AddSubmodelElement(rng))

	blob := model.NewBlob("ExampleBlob", "application/pdf")
	blob.SetValue([]byte{0x01, 0x02, 0x03, 0x04, 0x05})
	blob.SetSemanticID(globalRef("http://acplt.org/Blobs/ExampleBlob"))
	must(submodel.AddSubmodelElement(blob))

	file := model.NewFile("ExampleFile", "application/pdf")
	file.SetValue("/TestFile.pdf")
	file.SetSemanticID(globalRef("http://acplt.org/Files/ExampleFile"))
	must(submodel.AddSubmodelElement(file))

	referenceElement := model.NewReferenceElement("ExampleReferenceElement")
	referenceElement.SetValue(model.MustNewReference(
		model.Key{Type: model.KeyElementsSubmodel, Local: true, Value: SubmodelID, IDType: model.KeyTypeIRI},
		model.Key{Type: model.KeyElementsProperty, Local: true, Value: "ExampleProperty", IDType: model.KeyTypeIdShort},
	))
	referenceElement.SetSemanticID(globalRef("http://acplt.org/ReferenceElements/ExampleReferenceElement"))
	must(submodel.AddSubmodelElement(referenceElement))

	ordered := model.NewSubmodelElementCollection("ExampleSubmodelCollectionOrdered", true, true)
	orderedProperty := model.NewProperty("NestedProperty", model.DataTypeDefXSDInt)
	orderedProperty.SetValue("42")
	must(ordered.AddElement(orderedProperty))
	nestedMLP := model.NewMultiLanguageProperty("NestedMultiLanguageProperty")
	nestedMLP.SetValue(model.LangStringSet{"en": "Nested value"})
	must(ordered.AddElement(nestedMLP))
	must(submodel.AddSubmodelElement(ordered))

	unordered := model.NewSubmodelElementCollection("ExampleSubmodelCollectionUnordered", false, false)
	unorderedProperty := model.NewProperty("UnorderedProperty", model.DataTypeDefXSDBoolean)
	unorderedProperty.SetValue("true")
	unorderedProperty.SetSemanticID(globalRef("http://acplt.org/Properties/UnorderedProperty"))
	must(unordered.AddElement(unorderedProperty))
	must(submodel.AddSubmodelElement(unordered))

	firstRef := model.MustNewReference(
		model.Key{Type: model.KeyElementsSubmodel, Local: true, Value: SubmodelID, IDType: model.KeyTypeIRI},
		model.Key{Type: model.KeyElementsProperty, Local: true, Value: "ExampleProperty", IDType: model.KeyTypeIdShort},
	)
	secondRef := model.MustNewReference(
		model.Key{Type: model.KeyElementsSubmodel, Local: true, Value: SubmodelID, IDType: model.KeyTypeIRI},
		model.Key{Type: model.KeyElementsMultiLanguageProperty, Local: true, Value: "ExampleMultiLanguageProperty", IDType: model.KeyTypeIdShort},
	)
	relationship := model.NewRelationshipElement("ExampleRelationshipElement", firstRef, secondRef)
	must(submodel.AddSubmodelElement(relationship))

	annotated := model.NewAnnotatedRelationshipElement("ExampleAnnotatedRelationshipElement", firstRef, secondRef)
	annotation := model.NewProperty("ExampleAnnotation", model.DataTypeDefXSDString)
	annotation.SetValue("annotated")
	must(annotated.AddAnnotation(annotation))
	must(submodel.AddSubmodelElement(annotated))

	operation := model.NewOperation("ExampleOperation")
	inputProperty := model.NewProperty("ExampleInputProperty", model.DataTypeDefXSDString)
	operation.AddInputVariable(model.NewOperationVariable(inputProperty))
	outputProperty := model.NewProperty("ExampleOutputProperty", model.DataTypeDefXSDString)
	operation.AddOutputVariable(model.NewOperationVariable(outputProperty))
	inoutputProperty := model.NewProperty("ExampleInoutputProperty", model.DataTypeDefXSDString)
	operation.AddInoutputVariable(model.NewOperationVariable(inoutputProperty))
	must(submodel.AddSubmodelElement(operation))

	capability := model.NewCapability("ExampleCapability")
	capability.SetSemanticID(globalRef("http://acplt.org/Capabilities/ExampleCapability"))
	must(submodel.AddSubmodelElement(capability))

	entity, err := model.NewEntity("ExampleEntity", model.EntityTypeSelfManagedEntity, nil, &model.IdentifierKeyValuePair{
		Key:               "EntityKey",
		Value:             "EntityValue",
		ExternalSubjectID: globalRef("http://acplt.org/SpecificAssetId/"),
	})
	must(err)
	statement := model.NewProperty("ExampleStatement", model.DataTypeDefXSDString)
	statement.SetValue("statementValue")
	must(entity.AddStatement(statement))
	must(submodel.AddSubmodelElement(entity))

	event := model.NewBasicEvent("ExampleBasicEvent", model.MustNewReference(
		model.Key{Type: model.KeyElementsSubmodel, Local: true, Value: SubmodelID, IDType: model.KeyTypeIRI},
		model.Key{Type: model.KeyElementsProperty, Local: true, Value: "ExampleProperty", IDType: model.KeyTypeIdShort},
	))
	must(submodel.AddSubmodelElement(event))

	return submodel
}

// BuildExampleAsset builds the asset the example shell refers to.
func BuildExampleAsset() *model.Asset {
	asset := model.NewAsset(model.Identifier{ID: AssetID, IDType: model.IdentifierTypeIRI}, model.AssetKindInstance)
	must(asset.SetIdShort("TestAsset"))
	asset.SetDescription(model.LangStringSet{"en": "Example asset"})
	return asset
}

// BuildExampleShell builds a shell referencing the example asset and
// submodel.
func BuildExampleShell() *model.AssetAdministrationShell {
	shell := model.NewAssetAdministrationShell(
		model.Identifier{ID: ShellID, IDType: model.IdentifierTypeIRI},
		model.MustNewReference(model.Key{Type: model.KeyElementsAsset, Local: true, Value: AssetID, IDType: model.KeyTypeIRI}),
	)
	must(shell.SetIdShort("TestShell"))
	must(shell.AddSubmodel(*model.MustNewReference(
		model.Key{Type: model.KeyElementsSubmodel, Local: true, Value: SubmodelID, IDType: model.KeyTypeIRI},
	)))
	return shell
}

// BuildExampleConceptDescription builds the example concept description.
func BuildExampleConceptDescription() *model.ConceptDescription {
	cd := model.NewConceptDescription(model.Identifier{ID: ConceptDescriptionID, IDType: model.IdentifierTypeIRI})
	must(cd.SetIdShort("TestConceptDescription"))
	cd.AddIsCaseOf(*globalRef("http://acplt.org/DataSpecifications/ConceptDescriptions/TestConceptDescription"))
	return cd
}

// BuildExampleEnvironment builds an object store holding the full example
// environment: asset, shell, submodel and concept description.
func BuildExampleEnvironment() *model.DictObjectStore {
	return model.NewDictObjectStore(
		BuildExampleAsset(),
		BuildExampleSubmodel(),
		BuildExampleShell(),
		BuildExampleConceptDescription(),
	)
}
