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

package checker

import (
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eclipse-basyx/basyx-aas-environment/internal/common/exampledata"
	"github.com/eclipse-basyx/basyx-aas-environment/internal/common/model"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func failedExpectations(c *AASDataChecker) []string {
	var out []string
	for _, result := range c.FailedChecks() {
		out = append(out, result.Expectation)
	}
	return out
}

func containsExpectation(t *testing.T, c *AASDataChecker, fragment string) {
	t.Helper()
	for _, expectation := range failedExpectations(c) {
		if strings.Contains(expectation, fragment) {
			return
		}
	}
	t.Errorf("no failed check mentions %q, failed checks: %v", fragment, failedExpectations(c))
}

// TestCheckResultString verifies the rendering of recorded checks.
func TestCheckResultString(t *testing.T) {
	ok := CheckResult{Expectation: "value must be == 1", Result: true}
	assert.Equal(t, "OK: value must be == 1", ok.String())

	failed := CheckResult{
		Expectation: "value must be == 1",
		Result:      false,
		Data:        map[string]any{"value": 2, "attribute": "x"},
	}
	assert.Equal(t, "FAIL: value must be == 1 (attribute=x, value=2)", failed.String())
}

// TestDataCheckerModes verifies accumulation versus raise-immediately.
func TestDataCheckerModes(t *testing.T) {
	accumulating := NewDataChecker(false)
	held, err := accumulating.Check(true, "first", nil)
	require.NoError(t, err)
	assert.True(t, held)
	held, err = accumulating.Check(false, "second", nil)
	require.NoError(t, err)
	assert.False(t, held)
	assert.Len(t, accumulating.CheckResults(), 2)
	assert.Len(t, accumulating.FailedChecks(), 1)
	assert.Len(t, accumulating.SuccessfulChecks(), 1)

	raising := NewDataChecker(true)
	_, err = raising.Check(false, "second", nil)
	var failedErr *CheckFailedError
	require.ErrorAs(t, err, &failedErr)
	assert.Equal(t, "second", failedErr.Result.Expectation)
}

// TestCheckExampleSubmodelEqual verifies that two independently built
// example submodels compare clean across every element variant.
func TestCheckExampleSubmodelEqual(t *testing.T) {
	checker := NewAASDataChecker(false)
	require.NoError(t, checker.CheckSubmodelEqual(exampledata.BuildExampleSubmodel(), exampledata.BuildExampleSubmodel()))
	assert.Empty(t, checker.FailedChecks())
	assert.NotEmpty(t, checker.SuccessfulChecks())
}

// TestCheckSubmodelJSONRoundTrip verifies that a submodel survives the JSON
// round trip without any attribute drift.
func TestCheckSubmodelJSONRoundTrip(t *testing.T) {
	original := exampledata.BuildExampleSubmodel()
	data, err := json.Marshal(original)
	require.NoError(t, err)
	decoded, err := model.UnmarshalSubmodel(data)
	require.NoError(t, err)

	checker := NewAASDataChecker(false)
	require.NoError(t, checker.CheckSubmodelEqual(original, decoded))
	assert.Empty(t, checker.FailedChecks())
}

// TestCheckSubmodelDetectsDeviations verifies that mutations show up as
// itemized failed checks.
func TestCheckSubmodelDetectsDeviations(t *testing.T) {
	expected := exampledata.BuildExampleSubmodel()
	actual := exampledata.BuildExampleSubmodel()

	// Change a nested value, drop an element and add an extra one.
	child, err := actual.GetReferable("ExampleProperty")
	require.NoError(t, err)
	child.(*model.Property).SetValue("changed")
	require.NoError(t, actual.RemoveSubmodelElement("ExampleCapability"))
	extra := model.NewProperty("ExtraProperty", model.DataTypeDefXSDString)
	require.NoError(t, actual.AddSubmodelElement(extra))

	checker := NewAASDataChecker(false)
	require.NoError(t, checker.CheckSubmodelEqual(expected, actual))

	containsExpectation(t, checker, "attribute value of")
	containsExpectation(t, checker, "ExampleCapability] must exist")
	containsExpectation(t, checker, "must not have extra elements")
}

// TestCheckMissingElementDiagnostics verifies the exact failure strings
// produced when an expected submodel element is absent.
func TestCheckMissingElementDiagnostics(t *testing.T) {
	expected := model.NewSubmodel(model.Identifier{ID: "urn:x-test:submodel1", IDType: model.IdentifierTypeIRI})
	require.NoError(t, expected.AddSubmodelElement(model.NewProperty("Prop1", model.DataTypeDefXSDString)))
	actual := model.NewSubmodel(model.Identifier{ID: "urn:x-test:submodel1", IDType: model.IdentifierTypeIRI})

	checker := NewAASDataChecker(false)
	require.NoError(t, checker.CheckSubmodelEqual(expected, actual))

	failed := checker.FailedChecks()
	require.Len(t, failed, 2)
	assert.Equal(t,
		"FAIL: Submodel[urn:x-test:submodel1] must contain 1 SubmodelElements (count=0)",
		failed[0].String())
	assert.Equal(t,
		"FAIL: Submodel Element Property[urn:x-test:submodel1 / Prop1] must exist",
		failed[1].String())
}

// TestCheckFormulaConstraints verifies that formulas are matched by their
// dependsOn sets and surplus constraints are reported.
func TestCheckFormulaConstraints(t *testing.T) {
	ref := func(value string) model.Reference {
		return *model.MustNewReference(model.Key{
			Type: model.KeyElementsGlobalReference, Local: false, Value: value, IDType: model.KeyTypeIRI,
		})
	}

	expected := model.NewProperty("Prop1", model.DataTypeDefXSDString)
	require.NoError(t, expected.AddQualifier(model.NewFormula(ref("http://acplt.org/Formula/A"))))

	// An identical dependsOn set compares clean.
	matching := model.NewProperty("Prop1", model.DataTypeDefXSDString)
	require.NoError(t, matching.AddQualifier(model.NewFormula(ref("http://acplt.org/Formula/A"))))
	clean := NewAASDataChecker(false)
	require.NoError(t, clean.CheckSubmodelElementEqual(expected, matching))
	assert.Empty(t, clean.FailedChecks())

	// A deviating dependsOn set fails the existence check and the surplus
	// formula is reported as extra.
	deviating := model.NewProperty("Prop1", model.DataTypeDefXSDString)
	require.NoError(t, deviating.AddQualifier(model.NewFormula(ref("http://acplt.org/Formula/B"))))
	checker := NewAASDataChecker(false)
	require.NoError(t, checker.CheckSubmodelElementEqual(expected, deviating))
	containsExpectation(t, checker, "formula depending on")
	containsExpectation(t, checker, "must not have extra constraints")

	// An actual element whose only constraints are formulas must not pass
	// against an expected qualifier, even though the counts agree.
	qualified := model.NewProperty("Prop1", model.DataTypeDefXSDString)
	require.NoError(t, qualified.AddQualifier(model.NewQualifier("http://acplt.org/Qualifier/Q", model.DataTypeDefXSDInt)))
	onlyFormulas := model.NewProperty("Prop1", model.DataTypeDefXSDString)
	require.NoError(t, onlyFormulas.AddQualifier(model.NewFormula(ref("http://acplt.org/Formula/A"))))
	mixed := NewAASDataChecker(false)
	require.NoError(t, mixed.CheckSubmodelElementEqual(qualified, onlyFormulas))
	containsExpectation(t, mixed, "qualifier of type http://acplt.org/Qualifier/Q")
	containsExpectation(t, mixed, "must not have extra constraints")
}

// TestCheckModelTypeMismatch verifies that comparing elements of different
// variants fails on the discriminator instead of descending.
func TestCheckModelTypeMismatch(t *testing.T) {
	expected := model.NewProperty("Element", model.DataTypeDefXSDString)
	actual := model.NewCapability("Element")

	checker := NewAASDataChecker(false)
	require.NoError(t, checker.CheckSubmodelElementEqual(expected, actual))
	containsExpectation(t, checker, "attribute modelType of")
}

// TestCheckRaiseImmediately verifies that the first deviation aborts the
// comparison in raising mode.
func TestCheckRaiseImmediately(t *testing.T) {
	expected := exampledata.BuildExampleSubmodel()
	actual := exampledata.BuildExampleSubmodel()
	child, err := actual.GetReferable("ExampleProperty")
	require.NoError(t, err)
	child.(*model.Property).SetValue("changed")

	checker := NewAASDataChecker(true)
	err = checker.CheckSubmodelEqual(expected, actual)
	var failedErr *CheckFailedError
	require.ErrorAs(t, err, &failedErr)
	assert.False(t, failedErr.Result.Result)
}

// TestCheckObjectStoreEqual verifies store comparison across all four root
// types.
func TestCheckObjectStoreEqual(t *testing.T) {
	checker := NewAASDataChecker(false)
	require.NoError(t, checker.CheckObjectStoreEqual(
		exampledata.BuildExampleEnvironment(), exampledata.BuildExampleEnvironment()))
	assert.Empty(t, checker.FailedChecks())

	// A store missing one root fails on count and presence.
	partial := model.NewDictObjectStore(exampledata.BuildExampleSubmodel())
	missing := NewAASDataChecker(false)
	require.NoError(t, missing.CheckObjectStoreEqual(exampledata.BuildExampleEnvironment(), partial))
	containsExpectation(t, missing, "must exist")
}
