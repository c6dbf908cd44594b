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

// Package model implements the Asset Administration Shell metamodel as an
// in-memory, strongly typed object graph. Capabilities of the metamodel
// (Referable, Identifiable, HasSemantics, HasKind, Qualifiable,
// HasDataSpecification) are modelled as interfaces, each backed by an
// embeddable mixin struct that the concrete element types compose.
// Metamodel constraints (the AASd rules) are validated at construction and
// on every mutating setter of a constrained field.
package model

import (
	"fmt"
	"strings"
)

// LangStringSet maps language codes (e.g. "en", "de") to a string in that
// language.
type LangStringSet map[string]string

// ModelingKind distinguishes schema-level templates from concrete instances.
type ModelingKind string

const (
	ModelingKindTemplate ModelingKind = "Template"
	ModelingKindType     ModelingKind = "Type"
	ModelingKindInstance ModelingKind = "Instance"
)

// EntityType describes whether an Entity is co-managed or self-managed.
type EntityType string

const (
	EntityTypeCoManagedEntity   EntityType = "CoManagedEntity"
	EntityTypeSelfManagedEntity EntityType = "SelfManagedEntity"
)

// DataTypeDefXSD is the XSD value type of a Property or Range value.
type DataTypeDefXSD string

const (
	DataTypeDefXSDAnyURI       DataTypeDefXSD = "xs:anyURI"
	DataTypeDefXSDBase64Binary DataTypeDefXSD = "xs:base64Binary"
	DataTypeDefXSDBoolean      DataTypeDefXSD = "xs:boolean"
	DataTypeDefXSDDate         DataTypeDefXSD = "xs:date"
	DataTypeDefXSDDateTime     DataTypeDefXSD = "xs:dateTime"
	DataTypeDefXSDDecimal      DataTypeDefXSD = "xs:decimal"
	DataTypeDefXSDDouble       DataTypeDefXSD = "xs:double"
	DataTypeDefXSDDuration     DataTypeDefXSD = "xs:duration"
	DataTypeDefXSDFloat        DataTypeDefXSD = "xs:float"
	DataTypeDefXSDInt          DataTypeDefXSD = "xs:int"
	DataTypeDefXSDInteger      DataTypeDefXSD = "xs:integer"
	DataTypeDefXSDLong         DataTypeDefXSD = "xs:long"
	DataTypeDefXSDShort        DataTypeDefXSD = "xs:short"
	DataTypeDefXSDString       DataTypeDefXSD = "xs:string"
	DataTypeDefXSDTime         DataTypeDefXSD = "xs:time"
)

// Referable is implemented by every model element that is addressable by its
// idShort within the namespace of its parent. The parent back-reference is
// non-owning; it is maintained by the owning NamespaceSet and used for path
// computation only.
type Referable interface {
	GetIdShort() string
	SetIdShort(idShort string) error
	GetCategory() string
	SetCategory(category string)
	GetDescription() LangStringSet
	SetDescription(description LangStringSet)
	GetParent() Namespace
	GetModelType() string

	setParent(parent Namespace)
}

// Identifiable is a Referable with a globally unique Identifier. Identifiable
// objects are the roots stored in an ObjectStore.
type Identifiable interface {
	Referable
	GetIdentification() Identifier
	GetAdministration() *AdministrativeInformation
	SetAdministration(administration *AdministrativeInformation)
}

// Namespace is implemented by every element owning a set of child Referables
// with unique idShorts (Submodel, SubmodelElementCollection, Entity, ...).
type Namespace interface {
	Referable
	GetReferable(idShort string) (Referable, error)
}

// HasSemantics is implemented by elements carrying a reference to a semantic
// definition of the element.
type HasSemantics interface {
	GetSemanticID() *Reference
	SetSemanticID(semanticID *Reference)
}

// HasKind is implemented by elements that are either a Template or an
// Instance.
type HasKind interface {
	GetKind() ModelingKind

	setKind(kind ModelingKind)
}

// Qualifiable is implemented by elements that can be further qualified by
// Constraints. Qualifiers are unique by their type within one element.
type Qualifiable interface {
	GetQualifiers() []Constraint
	AddQualifier(constraint Constraint) error
	GetQualifierByType(qualifierType string) (*Qualifier, error)
	RemoveQualifierByType(qualifierType string) error
}

// HasDataSpecification is implemented by elements referencing the data
// specification templates used by the element.
type HasDataSpecification interface {
	GetDataSpecifications() []Reference
	AddDataSpecification(dataSpecification Reference)
}

// SubmodelElement is the closed variant set of elements contained in a
// Submodel. All concrete variants live in this package.
type SubmodelElement interface {
	Referable
	HasSemantics
	HasKind
	Qualifiable
	HasDataSpecification
}

// DataElement is a SubmodelElement that is not composed of further submodel
// elements but carries a value.
type DataElement interface {
	SubmodelElement

	dataElement()
}

// referable is the embeddable implementation of Referable (sans
// GetModelType, which is type specific).
type referable struct {
	idShort     string
	category    string
	description LangStringSet
	parent      Namespace
}

func (r *referable) GetIdShort() string { return r.idShort }

// SetIdShort renames the element. Renaming is rejected while the element is
// contained in a namespace because the owning namespace indexes its children
// by idShort.
func (r *referable) SetIdShort(idShort string) error {
	if r.parent != nil {
		return &ConstraintViolationError{
			Message: fmt.Sprintf("idShort of an element contained in a namespace cannot be changed (idShort='%s')", r.idShort),
		}
	}
	r.idShort = idShort
	return nil
}

func (r *referable) GetCategory() string { return r.category }

func (r *referable) SetCategory(category string) { r.category = category }

func (r *referable) GetDescription() LangStringSet { return r.description }

func (r *referable) SetDescription(description LangStringSet) { r.description = description }

func (r *referable) GetParent() Namespace { return r.parent }

func (r *referable) setParent(parent Namespace) { r.parent = parent }

// identifiable is the embeddable implementation of Identifiable.
type identifiable struct {
	referable
	identification Identifier
	administration *AdministrativeInformation
}

func (i *identifiable) GetIdentification() Identifier { return i.identification }

func (i *identifiable) GetAdministration() *AdministrativeInformation { return i.administration }

func (i *identifiable) SetAdministration(administration *AdministrativeInformation) {
	i.administration = administration
}

// hasSemantics is the embeddable implementation of HasSemantics.
type hasSemantics struct {
	semanticID *Reference
}

func (h *hasSemantics) GetSemanticID() *Reference { return h.semanticID }

func (h *hasSemantics) SetSemanticID(semanticID *Reference) { h.semanticID = semanticID }

// hasKind is the embeddable implementation of HasKind.
type hasKind struct {
	kind ModelingKind
}

func (h *hasKind) GetKind() ModelingKind { return h.kind }

func (h *hasKind) setKind(kind ModelingKind) { h.kind = kind }

// qualifiable is the embeddable implementation of Qualifiable.
type qualifiable struct {
	qualifiers []Constraint
}

func (q *qualifiable) GetQualifiers() []Constraint { return q.qualifiers }

// AddQualifier attaches a constraint. Qualifiers must be unique by type
// within one element; violating inserts fail with DuplicateKeyError and
// leave the qualifier set unchanged.
func (q *qualifiable) AddQualifier(constraint Constraint) error {
	if qualifier, ok := constraint.(*Qualifier); ok {
		for _, existing := range q.qualifiers {
			if other, ok := existing.(*Qualifier); ok && other.Type == qualifier.Type {
				return &DuplicateKeyError{Attribute: "type", Value: qualifier.Type}
			}
		}
	}
	q.qualifiers = append(q.qualifiers, constraint)
	return nil
}

func (q *qualifiable) GetQualifierByType(qualifierType string) (*Qualifier, error) {
	for _, constraint := range q.qualifiers {
		if qualifier, ok := constraint.(*Qualifier); ok && qualifier.Type == qualifierType {
			return qualifier, nil
		}
	}
	return nil, &NotFoundError{What: "qualifier of type", Key: qualifierType}
}

func (q *qualifiable) RemoveQualifierByType(qualifierType string) error {
	for i, constraint := range q.qualifiers {
		if qualifier, ok := constraint.(*Qualifier); ok && qualifier.Type == qualifierType {
			q.qualifiers = append(q.qualifiers[:i], q.qualifiers[i+1:]...)
			return nil
		}
	}
	return &NotFoundError{What: "qualifier of type", Key: qualifierType}
}

// hasDataSpecification is the embeddable implementation of
// HasDataSpecification.
type hasDataSpecification struct {
	dataSpecifications []Reference
}

func (h *hasDataSpecification) GetDataSpecifications() []Reference { return h.dataSpecifications }

func (h *hasDataSpecification) AddDataSpecification(dataSpecification Reference) {
	h.dataSpecifications = append(h.dataSpecifications, dataSpecification)
}

// PathString renders a Referable as "<ModelType>[<root> / <idShort> / ...]",
// e.g. "Property[urn:x-test:submodel1 / Prop1]". The path is computed from
// the parent back-references up to the first Identifiable ancestor.
func PathString(r Referable) string {
	var segments []string
	cur := r
	for {
		if id, ok := cur.(Identifiable); ok {
			segments = append([]string{id.GetIdentification().ID}, segments...)
			break
		}
		segments = append([]string{cur.GetIdShort()}, segments...)
		parent := cur.GetParent()
		if parent == nil {
			break
		}
		cur = parent
	}
	return fmt.Sprintf("%s[%s]", r.GetModelType(), strings.Join(segments, " / "))
}
