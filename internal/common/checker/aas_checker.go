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

package checker

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"

	"github.com/eclipse-basyx/basyx-aas-environment/internal/common/model"
)

// AASDataChecker compares AAS model objects. The expected object drives the
// comparison: every attribute and child of the expected object is checked
// against the actual one, children are matched positionally in ordered
// containers and by idShort in unordered ones, and surplus children in the
// actual object are reported as extra elements.
//
// Comparisons of element types without a check routine fail fast with
// UnsupportedOperationError, in both checker modes.
type AASDataChecker struct {
	DataChecker
}

// NewAASDataChecker creates a model checker in the given mode.
func NewAASDataChecker(raiseImmediately bool) *AASDataChecker {
	return &AASDataChecker{DataChecker: *NewDataChecker(raiseImmediately)}
}

func (c *AASDataChecker) checkAttributeEqual(repr, attribute string, expected, actual any) error {
	_, err := c.Check(reflect.DeepEqual(expected, actual),
		fmt.Sprintf("attribute %s of %s must be == %v", attribute, repr, expected),
		map[string]any{"value": actual})
	return err
}

func (c *AASDataChecker) checkReferenceAttributeEqual(repr, attribute string, expected, actual *model.Reference) error {
	_, err := c.Check(expected.Equal(actual),
		fmt.Sprintf("attribute %s of %s must be == %v", attribute, repr, expected),
		map[string]any{"value": actual})
	return err
}

func (c *AASDataChecker) checkContains(repr string, count int, what string, actual int) error {
	_, err := c.Check(actual == count,
		fmt.Sprintf("%s must contain %d %ss", repr, count, what),
		map[string]any{"count": actual})
	return err
}

// CheckReferableEqual compares the Referable attributes of two elements.
func (c *AASDataChecker) CheckReferableEqual(expected, actual model.Referable) error {
	repr := model.PathString(expected)
	if err := c.checkAttributeEqual(repr, "idShort", expected.GetIdShort(), actual.GetIdShort()); err != nil {
		return err
	}
	if err := c.checkAttributeEqual(repr, "category", expected.GetCategory(), actual.GetCategory()); err != nil {
		return err
	}
	return c.checkAttributeEqual(repr, "description", expected.GetDescription(), actual.GetDescription())
}

// CheckIdentifiableEqual compares the Identifiable attributes of two roots.
func (c *AASDataChecker) CheckIdentifiableEqual(expected, actual model.Identifiable) error {
	if err := c.CheckReferableEqual(expected, actual); err != nil {
		return err
	}
	repr := model.PathString(expected)
	if err := c.checkAttributeEqual(repr, "identification", expected.GetIdentification(), actual.GetIdentification()); err != nil {
		return err
	}
	return c.checkAttributeEqual(repr, "administration", expected.GetAdministration(), actual.GetAdministration())
}

func (c *AASDataChecker) checkHasSemanticsEqual(repr string, expected, actual model.HasSemantics) error {
	return c.checkReferenceAttributeEqual(repr, "semanticId", expected.GetSemanticID(), actual.GetSemanticID())
}

func (c *AASDataChecker) checkHasKindEqual(repr string, expected, actual model.HasKind) error {
	return c.checkAttributeEqual(repr, "kind", expected.GetKind(), actual.GetKind())
}

func (c *AASDataChecker) checkQualifiableEqual(repr string, expected, actual model.Qualifiable) error {
	expectedConstraints := expected.GetQualifiers()
	actualConstraints := actual.GetQualifiers()
	if err := c.checkContains(repr, len(expectedConstraints), "Constraint", len(actualConstraints)); err != nil {
		return err
	}
	expectedTypes := make(map[string]bool)
	for _, constraint := range expectedConstraints {
		qualifier, ok := constraint.(*model.Qualifier)
		if !ok {
			continue
		}
		expectedTypes[qualifier.Type] = true
		actualQualifier, lookupErr := actual.GetQualifierByType(qualifier.Type)
		found, err := c.Check(lookupErr == nil,
			fmt.Sprintf("qualifier of type %s of %s must exist", qualifier.Type, repr), nil)
		if err != nil {
			return err
		}
		if !found {
			continue
		}
		qualifierRepr := fmt.Sprintf("qualifier %s of %s", qualifier.Type, repr)
		if err := c.checkAttributeEqual(qualifierRepr, "valueType", qualifier.ValueType, actualQualifier.ValueType); err != nil {
			return err
		}
		if err := c.checkAttributeEqual(qualifierRepr, "value", qualifier.Value, actualQualifier.Value); err != nil {
			return err
		}
		if err := c.checkReferenceAttributeEqual(qualifierRepr, "valueId", qualifier.ValueID, actualQualifier.ValueID); err != nil {
			return err
		}
	}
	// Formulas carry no type attribute, so they are matched by their
	// dependsOn reference sets.
	actualFormulas := formulasOf(actualConstraints)
	matched := make([]bool, len(actualFormulas))
	for _, formula := range formulasOf(expectedConstraints) {
		index := -1
		for i, candidate := range actualFormulas {
			if !matched[i] && formulaDependsOnEqual(formula, candidate) {
				index = i
				break
			}
		}
		found, err := c.Check(index >= 0,
			fmt.Sprintf("formula depending on [%s] of %s must exist", renderReferences(formula.DependsOn()), repr), nil)
		if err != nil {
			return err
		}
		if found {
			matched[index] = true
		}
	}
	var extra []string
	for _, constraint := range actualConstraints {
		if qualifier, ok := constraint.(*model.Qualifier); ok && !expectedTypes[qualifier.Type] {
			extra = append(extra, qualifier.Type)
		}
	}
	for i, formula := range actualFormulas {
		if !matched[i] {
			extra = append(extra, fmt.Sprintf("Formula([%s])", renderReferences(formula.DependsOn())))
		}
	}
	_, err := c.Check(len(extra) == 0,
		fmt.Sprintf("%s must not have extra constraints", repr),
		map[string]any{"value": extra})
	return err
}

func formulasOf(constraints []model.Constraint) []*model.Formula {
	var formulas []*model.Formula
	for _, constraint := range constraints {
		if formula, ok := constraint.(*model.Formula); ok {
			formulas = append(formulas, formula)
		}
	}
	return formulas
}

// formulaDependsOnEqual compares two dependsOn sets without regard to order.
func formulaDependsOnEqual(expected, actual *model.Formula) bool {
	expectedRefs := expected.DependsOn()
	actualRefs := actual.DependsOn()
	if len(expectedRefs) != len(actualRefs) {
		return false
	}
	used := make([]bool, len(actualRefs))
	for i := range expectedRefs {
		found := false
		for j := range actualRefs {
			if !used[j] && expectedRefs[i].Equal(&actualRefs[j]) {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func renderReferences(refs []model.Reference) string {
	parts := make([]string, len(refs))
	for i := range refs {
		parts[i] = refs[i].String()
	}
	return strings.Join(parts, ", ")
}

// checkSubmodelElementCommon compares the capability attributes every
// submodel element carries.
func (c *AASDataChecker) checkSubmodelElementCommon(expected, actual model.SubmodelElement) error {
	if err := c.CheckReferableEqual(expected, actual); err != nil {
		return err
	}
	repr := model.PathString(expected)
	if err := c.checkHasSemanticsEqual(repr, expected, actual); err != nil {
		return err
	}
	if err := c.checkHasKindEqual(repr, expected, actual); err != nil {
		return err
	}
	return c.checkQualifiableEqual(repr, expected, actual)
}

// CheckSubmodelElementEqual dispatches to the comparison routine for the
// expected element's type.
func (c *AASDataChecker) CheckSubmodelElementEqual(expected, actual model.SubmodelElement) error {
	if expected.GetModelType() != actual.GetModelType() {
		_, err := c.Check(false,
			fmt.Sprintf("attribute modelType of %s must be == %s", model.PathString(expected), expected.GetModelType()),
			map[string]any{"value": actual.GetModelType()})
		return err
	}
	switch e := expected.(type) {
	case *model.Property:
		return c.CheckPropertyEqual(e, actual.(*model.Property))
	case *model.MultiLanguageProperty:
		return c.CheckMultiLanguagePropertyEqual(e, actual.(*model.MultiLanguageProperty))
	case *model.Range:
		return c.CheckRangeEqual(e, actual.(*model.Range))
	case *model.Blob:
		return c.CheckBlobEqual(e, actual.(*model.Blob))
	case *model.File:
		return c.CheckFileEqual(e, actual.(*model.File))
	case *model.ReferenceElement:
		return c.CheckReferenceElementEqual(e, actual.(*model.ReferenceElement))
	case *model.SubmodelElementCollection:
		return c.CheckSubmodelElementCollectionEqual(e, actual.(*model.SubmodelElementCollection))
	case *model.AnnotatedRelationshipElement:
		return c.CheckAnnotatedRelationshipElementEqual(e, actual.(*model.AnnotatedRelationshipElement))
	case *model.RelationshipElement:
		return c.CheckRelationshipElementEqual(e, actual.(*model.RelationshipElement))
	case *model.Operation:
		return c.CheckOperationEqual(e, actual.(*model.Operation))
	case *model.Capability:
		return c.CheckCapabilityEqual(e, actual.(*model.Capability))
	case *model.Entity:
		return c.CheckEntityEqual(e, actual.(*model.Entity))
	case *model.BasicEvent:
		return c.CheckBasicEventEqual(e, actual.(*model.BasicEvent))
	default:
		return &model.UnsupportedOperationError{
			Operation: fmt.Sprintf("equality check for %s", expected.GetModelType()),
		}
	}
}

// CheckPropertyEqual compares two properties.
func (c *AASDataChecker) CheckPropertyEqual(expected, actual *model.Property) error {
	if err := c.checkSubmodelElementCommon(expected, actual); err != nil {
		return err
	}
	repr := model.PathString(expected)
	if err := c.checkAttributeEqual(repr, "valueType", expected.GetValueType(), actual.GetValueType()); err != nil {
		return err
	}
	if err := c.checkAttributeEqual(repr, "value", expected.GetValue(), actual.GetValue()); err != nil {
		return err
	}
	return c.checkReferenceAttributeEqual(repr, "valueId", expected.GetValueID(), actual.GetValueID())
}

// CheckMultiLanguagePropertyEqual compares two multi-language properties.
func (c *AASDataChecker) CheckMultiLanguagePropertyEqual(expected, actual *model.MultiLanguageProperty) error {
	if err := c.checkSubmodelElementCommon(expected, actual); err != nil {
		return err
	}
	repr := model.PathString(expected)
	if err := c.checkAttributeEqual(repr, "value", expected.GetValue(), actual.GetValue()); err != nil {
		return err
	}
	return c.checkReferenceAttributeEqual(repr, "valueId", expected.GetValueID(), actual.GetValueID())
}

// CheckRangeEqual compares two ranges.
func (c *AASDataChecker) CheckRangeEqual(expected, actual *model.Range) error {
	if err := c.checkSubmodelElementCommon(expected, actual); err != nil {
		return err
	}
	repr := model.PathString(expected)
	if err := c.checkAttributeEqual(repr, "valueType", expected.GetValueType(), actual.GetValueType()); err != nil {
		return err
	}
	if err := c.checkAttributeEqual(repr, "min", derefOrNil(expected.GetMin()), derefOrNil(actual.GetMin())); err != nil {
		return err
	}
	return c.checkAttributeEqual(repr, "max", derefOrNil(expected.GetMax()), derefOrNil(actual.GetMax()))
}

// CheckBlobEqual compares two blobs.
func (c *AASDataChecker) CheckBlobEqual(expected, actual *model.Blob) error {
	if err := c.checkSubmodelElementCommon(expected, actual); err != nil {
		return err
	}
	repr := model.PathString(expected)
	if err := c.checkAttributeEqual(repr, "mimeType", expected.GetMimeType(), actual.GetMimeType()); err != nil {
		return err
	}
	_, err := c.Check(bytes.Equal(expected.GetValue(), actual.GetValue()),
		fmt.Sprintf("attribute value of %s must be == %v", repr, expected.GetValue()),
		map[string]any{"value": actual.GetValue()})
	return err
}

// CheckFileEqual compares two file elements.
func (c *AASDataChecker) CheckFileEqual(expected, actual *model.File) error {
	if err := c.checkSubmodelElementCommon(expected, actual); err != nil {
		return err
	}
	repr := model.PathString(expected)
	if err := c.checkAttributeEqual(repr, "mimeType", expected.GetMimeType(), actual.GetMimeType()); err != nil {
		return err
	}
	return c.checkAttributeEqual(repr, "value", expected.GetValue(), actual.GetValue())
}

// CheckReferenceElementEqual compares two reference elements.
func (c *AASDataChecker) CheckReferenceElementEqual(expected, actual *model.ReferenceElement) error {
	if err := c.checkSubmodelElementCommon(expected, actual); err != nil {
		return err
	}
	return c.checkReferenceAttributeEqual(model.PathString(expected), "value", expected.GetValue(), actual.GetValue())
}

// CheckSubmodelElementCollectionEqual compares two collections including
// their contents. Ordered collections are compared positionally, unordered
// ones by idShort.
func (c *AASDataChecker) CheckSubmodelElementCollectionEqual(expected, actual *model.SubmodelElementCollection) error {
	if err := c.checkSubmodelElementCommon(expected, actual); err != nil {
		return err
	}
	repr := model.PathString(expected)
	if err := c.checkAttributeEqual(repr, "ordered", expected.IsOrdered(), actual.IsOrdered()); err != nil {
		return err
	}
	if err := c.checkAttributeEqual(repr, "allowDuplicates", expected.AllowsDuplicates(), actual.AllowsDuplicates()); err != nil {
		return err
	}
	if expected.IsOrdered() && actual.IsOrdered() {
		return c.checkOrderedElementsEqual(repr, expected.GetElements(), actual.GetElements())
	}
	return c.checkUnorderedElementsEqual(repr, expected.GetElements(), actual, actual.GetElements())
}

func (c *AASDataChecker) checkOrderedElementsEqual(repr string, expected, actual []model.SubmodelElement) error {
	if err := c.checkContains(repr, len(expected), "SubmodelElement", len(actual)); err != nil {
		return err
	}
	for i := range expected {
		if i >= len(actual) {
			break
		}
		if err := c.CheckSubmodelElementEqual(expected[i], actual[i]); err != nil {
			return err
		}
	}
	return nil
}

// elementContainer abstracts the idShort lookup of an unordered container.
type elementContainer interface {
	GetReferable(idShort string) (model.Referable, error)
}

func (c *AASDataChecker) checkUnorderedElementsEqual(repr string, expected []model.SubmodelElement, actual elementContainer, actualElements []model.SubmodelElement) error {
	if err := c.checkContains(repr, len(expected), "SubmodelElement", len(actualElements)); err != nil {
		return err
	}
	expectedNames := make(map[string]bool, len(expected))
	for _, e := range expected {
		expectedNames[e.GetIdShort()] = true
		counterpart, lookupErr := actual.GetReferable(e.GetIdShort())
		found, err := c.Check(lookupErr == nil,
			fmt.Sprintf("Submodel Element %s must exist", model.PathString(e)), nil)
		if err != nil {
			return err
		}
		if !found {
			continue
		}
		if err := c.CheckSubmodelElementEqual(e, counterpart.(model.SubmodelElement)); err != nil {
			return err
		}
	}
	var extra []string
	for _, a := range actualElements {
		if !expectedNames[a.GetIdShort()] {
			extra = append(extra, a.GetIdShort())
		}
	}
	_, err := c.Check(len(extra) == 0,
		fmt.Sprintf("%s must not have extra elements", repr),
		map[string]any{"value": extra})
	return err
}

// CheckRelationshipElementEqual compares two relationship elements.
func (c *AASDataChecker) CheckRelationshipElementEqual(expected, actual *model.RelationshipElement) error {
	if err := c.checkSubmodelElementCommon(expected, actual); err != nil {
		return err
	}
	repr := model.PathString(expected)
	if err := c.checkReferenceAttributeEqual(repr, "first", expected.GetFirst(), actual.GetFirst()); err != nil {
		return err
	}
	return c.checkReferenceAttributeEqual(repr, "second", expected.GetSecond(), actual.GetSecond())
}

// CheckAnnotatedRelationshipElementEqual compares two annotated relationship
// elements including their annotations.
func (c *AASDataChecker) CheckAnnotatedRelationshipElementEqual(expected, actual *model.AnnotatedRelationshipElement) error {
	if err := c.CheckRelationshipElementEqual(&expected.RelationshipElement, &actual.RelationshipElement); err != nil {
		return err
	}
	repr := model.PathString(expected)
	expectedAnnotations := toSubmodelElements(expected.GetAnnotations())
	actualAnnotations := toSubmodelElements(actual.GetAnnotations())
	return c.checkUnorderedElementsEqual(repr, expectedAnnotations, actual, actualAnnotations)
}

// CheckOperationEqual compares two operations including their variables.
func (c *AASDataChecker) CheckOperationEqual(expected, actual *model.Operation) error {
	if err := c.checkSubmodelElementCommon(expected, actual); err != nil {
		return err
	}
	repr := model.PathString(expected)
	variableSets := []struct {
		what     string
		expected []*model.OperationVariable
		actual   []*model.OperationVariable
	}{
		{"input OperationVariable", expected.GetInputVariables(), actual.GetInputVariables()},
		{"output OperationVariable", expected.GetOutputVariables(), actual.GetOutputVariables()},
		{"inoutput OperationVariable", expected.GetInoutputVariables(), actual.GetInoutputVariables()},
	}
	for _, set := range variableSets {
		if err := c.checkContains(repr, len(set.expected), set.what, len(set.actual)); err != nil {
			return err
		}
		for i := range set.expected {
			if i >= len(set.actual) {
				break
			}
			if err := c.CheckSubmodelElementEqual(set.expected[i].GetValue(), set.actual[i].GetValue()); err != nil {
				return err
			}
		}
	}
	return nil
}

// CheckCapabilityEqual compares two capabilities.
func (c *AASDataChecker) CheckCapabilityEqual(expected, actual *model.Capability) error {
	return c.checkSubmodelElementCommon(expected, actual)
}

// CheckEntityEqual compares two entities including their statements.
func (c *AASDataChecker) CheckEntityEqual(expected, actual *model.Entity) error {
	if err := c.checkSubmodelElementCommon(expected, actual); err != nil {
		return err
	}
	repr := model.PathString(expected)
	if err := c.checkAttributeEqual(repr, "entityType", expected.GetEntityType(), actual.GetEntityType()); err != nil {
		return err
	}
	if err := c.checkReferenceAttributeEqual(repr, "globalAssetId", expected.GetGlobalAssetID(), actual.GetGlobalAssetID()); err != nil {
		return err
	}
	if err := c.checkSpecificAssetIDEqual(repr, expected.GetSpecificAssetID(), actual.GetSpecificAssetID()); err != nil {
		return err
	}
	return c.checkUnorderedElementsEqual(repr, expected.GetStatements(), actual, actual.GetStatements())
}

func (c *AASDataChecker) checkSpecificAssetIDEqual(repr string, expected, actual *model.IdentifierKeyValuePair) error {
	if expected == nil || actual == nil {
		_, err := c.Check(expected == nil && actual == nil,
			fmt.Sprintf("attribute specificAssetId of %s must be == %v", repr, expected),
			map[string]any{"value": actual})
		return err
	}
	if err := c.checkAttributeEqual(repr, "specificAssetId.key", expected.Key, actual.Key); err != nil {
		return err
	}
	if err := c.checkAttributeEqual(repr, "specificAssetId.value", expected.Value, actual.Value); err != nil {
		return err
	}
	return c.checkReferenceAttributeEqual(repr, "specificAssetId.externalSubjectId", expected.ExternalSubjectID, actual.ExternalSubjectID)
}

// CheckBasicEventEqual compares two basic events.
func (c *AASDataChecker) CheckBasicEventEqual(expected, actual *model.BasicEvent) error {
	if err := c.checkSubmodelElementCommon(expected, actual); err != nil {
		return err
	}
	return c.checkReferenceAttributeEqual(model.PathString(expected), "observed", expected.GetObserved(), actual.GetObserved())
}

// CheckSubmodelEqual compares two submodels including their element trees.
func (c *AASDataChecker) CheckSubmodelEqual(expected, actual *model.Submodel) error {
	if err := c.CheckIdentifiableEqual(expected, actual); err != nil {
		return err
	}
	repr := model.PathString(expected)
	if err := c.checkHasSemanticsEqual(repr, expected, actual); err != nil {
		return err
	}
	if err := c.checkHasKindEqual(repr, expected, actual); err != nil {
		return err
	}
	if err := c.checkQualifiableEqual(repr, expected, actual); err != nil {
		return err
	}
	return c.checkUnorderedElementsEqual(repr, expected.GetSubmodelElements(), actual, actual.GetSubmodelElements())
}

// CheckAssetEqual compares two assets.
func (c *AASDataChecker) CheckAssetEqual(expected, actual *model.Asset) error {
	if err := c.CheckIdentifiableEqual(expected, actual); err != nil {
		return err
	}
	return c.checkAttributeEqual(model.PathString(expected), "kind", expected.GetAssetKind(), actual.GetAssetKind())
}

// CheckAssetAdministrationShellEqual compares two shells.
func (c *AASDataChecker) CheckAssetAdministrationShellEqual(expected, actual *model.AssetAdministrationShell) error {
	if err := c.CheckIdentifiableEqual(expected, actual); err != nil {
		return err
	}
	repr := model.PathString(expected)
	if err := c.checkReferenceAttributeEqual(repr, "asset", expected.GetAsset(), actual.GetAsset()); err != nil {
		return err
	}
	if err := c.checkReferenceAttributeEqual(repr, "derivedFrom", expected.GetDerivedFrom(), actual.GetDerivedFrom()); err != nil {
		return err
	}
	expectedSubmodels := expected.GetSubmodels()
	actualSubmodels := actual.GetSubmodels()
	if err := c.checkContains(repr, len(expectedSubmodels), "submodel reference", len(actualSubmodels)); err != nil {
		return err
	}
	for i := range expectedSubmodels {
		found := false
		for j := range actualSubmodels {
			if expectedSubmodels[i].Equal(&actualSubmodels[j]) {
				found = true
				break
			}
		}
		if _, err := c.Check(found,
			fmt.Sprintf("submodel reference %v of %s must exist", &expectedSubmodels[i], repr), nil); err != nil {
			return err
		}
	}
	return nil
}

// CheckConceptDescriptionEqual compares two concept descriptions.
func (c *AASDataChecker) CheckConceptDescriptionEqual(expected, actual *model.ConceptDescription) error {
	if err := c.CheckIdentifiableEqual(expected, actual); err != nil {
		return err
	}
	repr := model.PathString(expected)
	expectedCases := expected.GetIsCaseOf()
	actualCases := actual.GetIsCaseOf()
	if err := c.checkContains(repr, len(expectedCases), "isCaseOf reference", len(actualCases)); err != nil {
		return err
	}
	for i := range expectedCases {
		found := false
		for j := range actualCases {
			if expectedCases[i].Equal(&actualCases[j]) {
				found = true
				break
			}
		}
		if _, err := c.Check(found,
			fmt.Sprintf("isCaseOf reference %v of %s must exist", &expectedCases[i], repr), nil); err != nil {
			return err
		}
	}
	return nil
}

// CheckObjectStoreEqual compares two object stores object by object,
// dispatching on the type of each expected root.
func (c *AASDataChecker) CheckObjectStoreEqual(expected, actual model.ObjectStore) error {
	if err := c.checkContains("object store", expected.Len(), "Identifiable", actual.Len()); err != nil {
		return err
	}
	for _, obj := range expected.Values() {
		counterpart, lookupErr := actual.GetIdentifiable(obj.GetIdentification())
		found, err := c.Check(lookupErr == nil,
			fmt.Sprintf("object with identification %s must exist", obj.GetIdentification()), nil)
		if err != nil {
			return err
		}
		if !found {
			continue
		}
		if err := c.checkIdentifiableDispatch(obj, counterpart); err != nil {
			return err
		}
	}
	return nil
}

func (c *AASDataChecker) checkIdentifiableDispatch(expected, actual model.Identifiable) error {
	if expected.GetModelType() != actual.GetModelType() {
		_, err := c.Check(false,
			fmt.Sprintf("attribute modelType of %s must be == %s", model.PathString(expected), expected.GetModelType()),
			map[string]any{"value": actual.GetModelType()})
		return err
	}
	switch e := expected.(type) {
	case *model.Submodel:
		return c.CheckSubmodelEqual(e, actual.(*model.Submodel))
	case *model.Asset:
		return c.CheckAssetEqual(e, actual.(*model.Asset))
	case *model.AssetAdministrationShell:
		return c.CheckAssetAdministrationShellEqual(e, actual.(*model.AssetAdministrationShell))
	case *model.ConceptDescription:
		return c.CheckConceptDescriptionEqual(e, actual.(*model.ConceptDescription))
	default:
		return &model.UnsupportedOperationError{
			Operation: fmt.Sprintf("equality check for %s", expected.GetModelType()),
		}
	}
}

func toSubmodelElements(elements []model.DataElement) []model.SubmodelElement {
	out := make([]model.SubmodelElement, len(elements))
	for i, e := range elements {
		out[i] = e
	}
	return out
}

func derefOrNil(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
