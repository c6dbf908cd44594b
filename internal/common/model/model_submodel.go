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

// Submodel is an identifiable collection of submodel elements describing one
// aspect of the asset.
type Submodel struct {
	identifiable
	hasSemantics
	hasKind
	qualifiable
	hasDataSpecification
	submodelElements *NamespaceSet
}

// NewSubmodel creates an empty submodel with kind Instance.
func NewSubmodel(identification Identifier) *Submodel {
	s := &Submodel{}
	s.identification = identification
	s.kind = ModelingKindInstance
	s.submodelElements = NewNamespaceSet(s, true)
	return s
}

func (s *Submodel) GetModelType() string { return "Submodel" }

// GetReferable implements Namespace over the submodel elements.
func (s *Submodel) GetReferable(idShort string) (Referable, error) {
	return s.submodelElements.Get(idShort)
}

// AddSubmodelElement inserts an element, enforcing idShort uniqueness
// atomically.
func (s *Submodel) AddSubmodelElement(element SubmodelElement) error {
	return s.submodelElements.Add(element)
}

// RemoveSubmodelElement detaches the element with the given idShort.
func (s *Submodel) RemoveSubmodelElement(idShort string) error {
	return s.submodelElements.Remove(idShort)
}

// GetSubmodelElements returns the elements in insertion order.
func (s *Submodel) GetSubmodelElements() []SubmodelElement {
	values := s.submodelElements.Values()
	elements := make([]SubmodelElement, len(values))
	for i, v := range values {
		elements[i] = v.(SubmodelElement)
	}
	return elements
}
