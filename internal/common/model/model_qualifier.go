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

// Constraint is either a Qualifier or a Formula.
type Constraint interface {
	ConstraintType() string
}

// Qualifier is a typed value constraint further qualifying a Qualifiable
// element. Qualifiers are unique by Type within one element.
type Qualifier struct {
	hasSemantics
	Type      string
	ValueType DataTypeDefXSD
	Value     string
	ValueID   *Reference
}

// NewQualifier creates a qualifier of the given type and value type.
func NewQualifier(qualifierType string, valueType DataTypeDefXSD) *Qualifier {
	return &Qualifier{Type: qualifierType, ValueType: valueType}
}

func (q *Qualifier) ConstraintType() string { return "Qualifier" }

// Formula is a constraint expressed as a formula over other elements.
type Formula struct {
	dependsOn []Reference
}

// NewFormula creates a formula depending on the given references.
func NewFormula(dependsOn ...Reference) *Formula {
	copied := make([]Reference, len(dependsOn))
	copy(copied, dependsOn)
	return &Formula{dependsOn: copied}
}

func (f *Formula) ConstraintType() string { return "Formula" }

// DependsOn returns the references the formula depends on.
func (f *Formula) DependsOn() []Reference {
	copied := make([]Reference, len(f.dependsOn))
	copy(copied, f.dependsOn)
	return copied
}
