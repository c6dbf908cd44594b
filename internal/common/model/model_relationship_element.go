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

// RelationshipElement states a relationship between two referenced elements.
type RelationshipElement struct {
	submodelElement
	first  *Reference
	second *Reference
}

// NewRelationshipElement creates a relationship between first and second
// with kind Instance.
func NewRelationshipElement(idShort string, first, second *Reference) *RelationshipElement {
	return &RelationshipElement{
		submodelElement: newSubmodelElement(idShort),
		first:           first,
		second:          second,
	}
}

func (r *RelationshipElement) GetModelType() string { return "RelationshipElement" }

func (r *RelationshipElement) GetFirst() *Reference { return r.first }

func (r *RelationshipElement) SetFirst(first *Reference) { r.first = first }

func (r *RelationshipElement) GetSecond() *Reference { return r.second }

func (r *RelationshipElement) SetSecond(second *Reference) { r.second = second }

// AnnotatedRelationshipElement is a relationship annotated with data
// elements that are addressable by idShort.
type AnnotatedRelationshipElement struct {
	RelationshipElement
	annotations *NamespaceSet
}

// NewAnnotatedRelationshipElement creates an annotated relationship with
// kind Instance and an empty annotation set.
func NewAnnotatedRelationshipElement(idShort string, first, second *Reference) *AnnotatedRelationshipElement {
	a := &AnnotatedRelationshipElement{
		RelationshipElement: RelationshipElement{
			submodelElement: newSubmodelElement(idShort),
			first:           first,
			second:          second,
		},
	}
	a.annotations = NewNamespaceSet(a, true)
	return a
}

func (a *AnnotatedRelationshipElement) GetModelType() string { return "AnnotatedRelationshipElement" }

// GetReferable implements Namespace over the annotations.
func (a *AnnotatedRelationshipElement) GetReferable(idShort string) (Referable, error) {
	return a.annotations.Get(idShort)
}

// AddAnnotation attaches a data element annotation.
func (a *AnnotatedRelationshipElement) AddAnnotation(annotation DataElement) error {
	return a.annotations.Add(annotation)
}

// RemoveAnnotation detaches the annotation with the given idShort.
func (a *AnnotatedRelationshipElement) RemoveAnnotation(idShort string) error {
	return a.annotations.Remove(idShort)
}

// GetAnnotations returns the annotations in insertion order.
func (a *AnnotatedRelationshipElement) GetAnnotations() []DataElement {
	values := a.annotations.Values()
	annotations := make([]DataElement, len(values))
	for i, v := range values {
		annotations[i] = v.(DataElement)
	}
	return annotations
}
