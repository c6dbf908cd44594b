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

// NotFoundError indicates a failed lookup: an Identifier missing from an
// object store, an idShort missing from a namespace, or a qualifier type
// missing from a qualifier set.
type NotFoundError struct {
	What string
	Key  string
	// Message overrides the default rendering when set.
	Message string
}

func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s '%s' could not be found", e.What, e.Key)
}

// DuplicateKeyError indicates a uniqueness violation on insert. Attribute
// names the conflicting attribute (e.g. "idShort", "semanticId", "type",
// "identification") and Value carries the conflicting value.
type DuplicateKeyError struct {
	Attribute string
	Value     string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("object with attribute (name='%s', value='%s') is already present", e.Attribute, e.Value)
}

// ConstraintViolationError indicates that a constraint mandated by the AAS
// metamodel specification is broken. Constraint carries the identifier of the
// violated constraint (e.g. "AASd-013") when one exists.
type ConstraintViolationError struct {
	Constraint string
	Message    string
}

func (e *ConstraintViolationError) Error() string {
	if e.Constraint == "" {
		return e.Message
	}
	return fmt.Sprintf("constraint %s violated: %s", e.Constraint, e.Message)
}

// TypeMismatchError indicates that a resolved or parsed object does not have
// the expected type.
type TypeMismatchError struct {
	Expected string
	Actual   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("expected an object of type %s, got %s", e.Expected, e.Actual)
}

// UnsupportedOperationError indicates that an operation is not implemented
// for the given input, e.g. an equality check for an unknown submodel
// element type.
type UnsupportedOperationError struct {
	Operation string
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("%s is not implemented", e.Operation)
}
