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

// Range is a data element spanning an interval of a value type. For
// kind Instance at least one of min and max must be defined; every mutation
// of kind, min or max re-runs that check.
type Range struct {
	submodelElement
	valueType DataTypeDefXSD
	min       *string
	max       *string
}

// NewRange creates a range of the given kind and bounds.
func NewRange(idShort string, valueType DataTypeDefXSD, min, max *string, kind ModelingKind) (*Range, error) {
	r := &Range{submodelElement: newSubmodelElement(idShort), valueType: valueType, min: min, max: max}
	r.kind = kind
	if err := r.checkBounds(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Range) GetModelType() string { return "Range" }

func (r *Range) dataElement() {}

func (r *Range) GetValueType() DataTypeDefXSD { return r.valueType }

func (r *Range) GetMin() *string { return r.min }

func (r *Range) GetMax() *string { return r.max }

// SetMin updates the lower bound. Clearing it while the upper bound is also
// unset violates the bounds constraint and is rejected.
func (r *Range) SetMin(min *string) error {
	old := r.min
	r.min = min
	if err := r.checkBounds(); err != nil {
		r.min = old
		return err
	}
	return nil
}

// SetMax updates the upper bound, with the same symmetry as SetMin.
func (r *Range) SetMax(max *string) error {
	old := r.max
	r.max = max
	if err := r.checkBounds(); err != nil {
		r.max = old
		return err
	}
	return nil
}

// SetKind changes the modeling kind. Switching to Instance with both bounds
// unset is rejected.
func (r *Range) SetKind(kind ModelingKind) error {
	old := r.kind
	r.kind = kind
	if err := r.checkBounds(); err != nil {
		r.kind = old
		return err
	}
	return nil
}

func (r *Range) checkBounds() error {
	if r.kind == ModelingKindInstance && r.min == nil && r.max == nil {
		return &ConstraintViolationError{
			Constraint: "AASd-013",
			Message:    "either the min or the max value or both need to be defined",
		}
	}
	return nil
}
