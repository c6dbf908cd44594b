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

import (
	"encoding/base64"
	"fmt"
	"sort"

	jsoniter "github.com/json-iterator/go"
)

// JSON adapter for the metamodel. Since the model types keep their fields
// private and validate on construction, (de)serialization goes through DTO
// structs; unmarshaling rebuilds objects through the constructors and Add
// methods so every constraint fires on the wire path too. Polymorphism is
// resolved through the modelType discriminator.

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type langStringJSON struct {
	Language string `json:"language"`
	Text     string `json:"text"`
}

type keyJSON struct {
	Type   string `json:"type"`
	Local  bool   `json:"local"`
	Value  string `json:"value"`
	IDType string `json:"idType"`
}

type referenceJSON struct {
	Keys []keyJSON `json:"keys"`
}

type identifierJSON struct {
	ID     string `json:"id"`
	IDType string `json:"idType"`
}

type administrationJSON struct {
	Version  string `json:"version,omitempty"`
	Revision string `json:"revision,omitempty"`
}

type identifierKeyValuePairJSON struct {
	Key               string         `json:"key"`
	Value             string         `json:"value"`
	ExternalSubjectID *referenceJSON `json:"externalSubjectId,omitempty"`
}

type constraintJSON struct {
	ModelType  string          `json:"modelType"`
	Type       string          `json:"type,omitempty"`
	ValueType  string          `json:"valueType,omitempty"`
	Value      string          `json:"value,omitempty"`
	ValueID    *referenceJSON  `json:"valueId,omitempty"`
	SemanticID *referenceJSON  `json:"semanticId,omitempty"`
	DependsOn  []referenceJSON `json:"dependsOn,omitempty"`
}

type operationVariableJSON struct {
	Value jsoniter.RawMessage `json:"value"`
}

type submodelElementJSON struct {
	ModelType   string           `json:"modelType"`
	IDShort     string           `json:"idShort"`
	Category    string           `json:"category,omitempty"`
	Description []langStringJSON `json:"description,omitempty"`
	Kind        string           `json:"kind,omitempty"`
	SemanticID  *referenceJSON   `json:"semanticId,omitempty"`
	Qualifiers  []constraintJSON `json:"qualifiers,omitempty"`

	ValueType         string                      `json:"valueType,omitempty"`
	Value             jsoniter.RawMessage         `json:"value,omitempty"`
	ValueID           *referenceJSON              `json:"valueId,omitempty"`
	Min               *string                     `json:"min,omitempty"`
	Max               *string                     `json:"max,omitempty"`
	MimeType          string                      `json:"mimeType,omitempty"`
	Ordered           bool                        `json:"ordered,omitempty"`
	AllowDuplicates   bool                        `json:"allowDuplicates,omitempty"`
	First             *referenceJSON              `json:"first,omitempty"`
	Second            *referenceJSON              `json:"second,omitempty"`
	Annotations       []jsoniter.RawMessage       `json:"annotations,omitempty"`
	Statements        []jsoniter.RawMessage       `json:"statements,omitempty"`
	EntityType        string                      `json:"entityType,omitempty"`
	GlobalAssetID     *referenceJSON              `json:"globalAssetId,omitempty"`
	SpecificAssetID   *identifierKeyValuePairJSON `json:"specificAssetId,omitempty"`
	Observed          *referenceJSON              `json:"observed,omitempty"`
	InputVariables    []operationVariableJSON     `json:"inputVariables,omitempty"`
	OutputVariables   []operationVariableJSON     `json:"outputVariables,omitempty"`
	InoutputVariables []operationVariableJSON     `json:"inoutputVariables,omitempty"`
}

type submodelJSON struct {
	ModelType        string                `json:"modelType"`
	Identification   identifierJSON        `json:"identification"`
	Administration   *administrationJSON   `json:"administration,omitempty"`
	IDShort          string                `json:"idShort,omitempty"`
	Category         string                `json:"category,omitempty"`
	Description      []langStringJSON      `json:"description,omitempty"`
	Kind             string                `json:"kind,omitempty"`
	SemanticID       *referenceJSON        `json:"semanticId,omitempty"`
	Qualifiers       []constraintJSON      `json:"qualifiers,omitempty"`
	SubmodelElements []jsoniter.RawMessage `json:"submodelElements,omitempty"`
}

type assetJSON struct {
	ModelType      string              `json:"modelType"`
	Identification identifierJSON      `json:"identification"`
	Administration *administrationJSON `json:"administration,omitempty"`
	IDShort        string              `json:"idShort,omitempty"`
	Category       string              `json:"category,omitempty"`
	Description    []langStringJSON    `json:"description,omitempty"`
	Kind           string              `json:"kind,omitempty"`
}

type assetAdministrationShellJSON struct {
	ModelType      string              `json:"modelType"`
	Identification identifierJSON      `json:"identification"`
	Administration *administrationJSON `json:"administration,omitempty"`
	IDShort        string              `json:"idShort,omitempty"`
	Category       string              `json:"category,omitempty"`
	Description    []langStringJSON    `json:"description,omitempty"`
	Asset          *referenceJSON      `json:"asset,omitempty"`
	DerivedFrom    *referenceJSON      `json:"derivedFrom,omitempty"`
	Submodels      []referenceJSON     `json:"submodels,omitempty"`
}

type conceptDescriptionJSON struct {
	ModelType      string              `json:"modelType"`
	Identification identifierJSON      `json:"identification"`
	Administration *administrationJSON `json:"administration,omitempty"`
	IDShort        string              `json:"idShort,omitempty"`
	Category       string              `json:"category,omitempty"`
	Description    []langStringJSON    `json:"description,omitempty"`
	IsCaseOf       []referenceJSON     `json:"isCaseOf,omitempty"`
}

func langStringSetToJSON(set LangStringSet) []langStringJSON {
	if len(set) == 0 {
		return nil
	}
	languages := make([]string, 0, len(set))
	for lang := range set {
		languages = append(languages, lang)
	}
	sort.Strings(languages)
	out := make([]langStringJSON, 0, len(set))
	for _, lang := range languages {
		out = append(out, langStringJSON{Language: lang, Text: set[lang]})
	}
	return out
}

func langStringSetFromJSON(strings []langStringJSON) LangStringSet {
	if len(strings) == 0 {
		return nil
	}
	set := make(LangStringSet, len(strings))
	for _, ls := range strings {
		set[ls.Language] = ls.Text
	}
	return set
}

func referenceToJSON(ref *Reference) *referenceJSON {
	if ref == nil {
		return nil
	}
	keys := ref.Keys()
	out := &referenceJSON{Keys: make([]keyJSON, len(keys))}
	for i, k := range keys {
		out.Keys[i] = keyJSON{Type: string(k.Type), Local: k.Local, Value: k.Value, IDType: string(k.IDType)}
	}
	return out
}

func referenceFromJSON(ref *referenceJSON) (*Reference, error) {
	if ref == nil {
		return nil, nil
	}
	keys := make([]Key, len(ref.Keys))
	for i, k := range ref.Keys {
		keys[i] = Key{Type: KeyElements(k.Type), Local: k.Local, Value: k.Value, IDType: KeyType(k.IDType)}
	}
	return NewReference(keys...)
}

func identifierKeyValuePairToJSON(pair *IdentifierKeyValuePair) *identifierKeyValuePairJSON {
	if pair == nil {
		return nil
	}
	return &identifierKeyValuePairJSON{
		Key:               pair.Key,
		Value:             pair.Value,
		ExternalSubjectID: referenceToJSON(pair.ExternalSubjectID),
	}
}

func identifierKeyValuePairFromJSON(pair *identifierKeyValuePairJSON) (*IdentifierKeyValuePair, error) {
	if pair == nil {
		return nil, nil
	}
	subject, err := referenceFromJSON(pair.ExternalSubjectID)
	if err != nil {
		return nil, err
	}
	return &IdentifierKeyValuePair{Key: pair.Key, Value: pair.Value, ExternalSubjectID: subject}, nil
}

func constraintsToJSON(constraints []Constraint) []constraintJSON {
	if len(constraints) == 0 {
		return nil
	}
	out := make([]constraintJSON, 0, len(constraints))
	for _, c := range constraints {
		switch constraint := c.(type) {
		case *Qualifier:
			out = append(out, constraintJSON{
				ModelType:  "Qualifier",
				Type:       constraint.Type,
				ValueType:  string(constraint.ValueType),
				Value:      constraint.Value,
				ValueID:    referenceToJSON(constraint.ValueID),
				SemanticID: referenceToJSON(constraint.GetSemanticID()),
			})
		case *Formula:
			dependsOn := constraint.DependsOn()
			refs := make([]referenceJSON, len(dependsOn))
			for i := range dependsOn {
				refs[i] = *referenceToJSON(&dependsOn[i])
			}
			out = append(out, constraintJSON{ModelType: "Formula", DependsOn: refs})
		}
	}
	return out
}

func constraintFromJSON(c constraintJSON) (Constraint, error) {
	switch c.ModelType {
	case "Qualifier":
		qualifier := NewQualifier(c.Type, DataTypeDefXSD(c.ValueType))
		qualifier.Value = c.Value
		valueID, err := referenceFromJSON(c.ValueID)
		if err != nil {
			return nil, err
		}
		qualifier.ValueID = valueID
		semanticID, err := referenceFromJSON(c.SemanticID)
		if err != nil {
			return nil, err
		}
		qualifier.SetSemanticID(semanticID)
		return qualifier, nil
	case "Formula":
		dependsOn := make([]Reference, 0, len(c.DependsOn))
		for i := range c.DependsOn {
			ref, err := referenceFromJSON(&c.DependsOn[i])
			if err != nil {
				return nil, err
			}
			dependsOn = append(dependsOn, *ref)
		}
		return NewFormula(dependsOn...), nil
	default:
		return nil, fmt.Errorf("unsupported constraint modelType: %s", c.ModelType)
	}
}

// buildElementJSON fills the common part of a submodel element DTO.
func buildElementJSON(se SubmodelElement) submodelElementJSON {
	return submodelElementJSON{
		ModelType:   se.GetModelType(),
		IDShort:     se.GetIdShort(),
		Category:    se.GetCategory(),
		Description: langStringSetToJSON(se.GetDescription()),
		Kind:        string(se.GetKind()),
		SemanticID:  referenceToJSON(se.GetSemanticID()),
		Qualifiers:  constraintsToJSON(se.GetQualifiers()),
	}
}

// applyElementJSON replays the common DTO fields onto a freshly constructed
// element.
func applyElementJSON(se SubmodelElement, dto *submodelElementJSON) error {
	se.SetCategory(dto.Category)
	se.SetDescription(langStringSetFromJSON(dto.Description))
	semanticID, err := referenceFromJSON(dto.SemanticID)
	if err != nil {
		return err
	}
	se.SetSemanticID(semanticID)
	if dto.Kind != "" {
		se.setKind(ModelingKind(dto.Kind))
	}
	for _, c := range dto.Qualifiers {
		constraint, err := constraintFromJSON(c)
		if err != nil {
			return err
		}
		if err := se.AddQualifier(constraint); err != nil {
			return err
		}
	}
	return nil
}

func marshalElements(elements []SubmodelElement) ([]jsoniter.RawMessage, error) {
	if len(elements) == 0 {
		return nil, nil
	}
	out := make([]jsoniter.RawMessage, len(elements))
	for i, e := range elements {
		data, err := json.Marshal(e)
		if err != nil {
			return nil, err
		}
		out[i] = data
	}
	return out, nil
}

func marshalVariables(variables []*OperationVariable) ([]operationVariableJSON, error) {
	if len(variables) == 0 {
		return nil, nil
	}
	out := make([]operationVariableJSON, len(variables))
	for i, v := range variables {
		data, err := json.Marshal(v.GetValue())
		if err != nil {
			return nil, err
		}
		out[i] = operationVariableJSON{Value: data}
	}
	return out, nil
}

func (p *Property) MarshalJSON() ([]byte, error) {
	dto := buildElementJSON(p)
	dto.ValueType = string(p.valueType)
	value, err := json.Marshal(p.value)
	if err != nil {
		return nil, err
	}
	dto.Value = value
	dto.ValueID = referenceToJSON(p.valueID)
	return json.Marshal(dto)
}

func (m *MultiLanguageProperty) MarshalJSON() ([]byte, error) {
	dto := buildElementJSON(m)
	if len(m.value) > 0 {
		value, err := json.Marshal(langStringSetToJSON(m.value))
		if err != nil {
			return nil, err
		}
		dto.Value = value
	}
	dto.ValueID = referenceToJSON(m.valueID)
	return json.Marshal(dto)
}

func (r *Range) MarshalJSON() ([]byte, error) {
	dto := buildElementJSON(r)
	dto.ValueType = string(r.valueType)
	dto.Min = r.min
	dto.Max = r.max
	return json.Marshal(dto)
}

func (b *Blob) MarshalJSON() ([]byte, error) {
	dto := buildElementJSON(b)
	dto.MimeType = b.mimeType
	if len(b.value) > 0 {
		value, err := json.Marshal(base64.StdEncoding.EncodeToString(b.value))
		if err != nil {
			return nil, err
		}
		dto.Value = value
	}
	return json.Marshal(dto)
}

func (f *File) MarshalJSON() ([]byte, error) {
	dto := buildElementJSON(f)
	dto.MimeType = f.mimeType
	value, err := json.Marshal(f.value)
	if err != nil {
		return nil, err
	}
	dto.Value = value
	return json.Marshal(dto)
}

func (r *ReferenceElement) MarshalJSON() ([]byte, error) {
	dto := buildElementJSON(r)
	if r.value != nil {
		value, err := json.Marshal(referenceToJSON(r.value))
		if err != nil {
			return nil, err
		}
		dto.Value = value
	}
	return json.Marshal(dto)
}

func (c *SubmodelElementCollection) MarshalJSON() ([]byte, error) {
	dto := buildElementJSON(c)
	dto.Ordered = c.ordered
	dto.AllowDuplicates = c.allowDuplicates
	elements, err := marshalElements(c.GetElements())
	if err != nil {
		return nil, err
	}
	if elements != nil {
		value, err := json.Marshal(elements)
		if err != nil {
			return nil, err
		}
		dto.Value = value
	}
	return json.Marshal(dto)
}

func (r *RelationshipElement) MarshalJSON() ([]byte, error) {
	dto := buildElementJSON(r)
	dto.First = referenceToJSON(r.first)
	dto.Second = referenceToJSON(r.second)
	return json.Marshal(dto)
}

func (a *AnnotatedRelationshipElement) MarshalJSON() ([]byte, error) {
	dto := buildElementJSON(a)
	dto.First = referenceToJSON(a.first)
	dto.Second = referenceToJSON(a.second)
	annotations := a.GetAnnotations()
	elements := make([]SubmodelElement, len(annotations))
	for i, annotation := range annotations {
		elements[i] = annotation
	}
	raw, err := marshalElements(elements)
	if err != nil {
		return nil, err
	}
	dto.Annotations = raw
	return json.Marshal(dto)
}

func (o *Operation) MarshalJSON() ([]byte, error) {
	dto := buildElementJSON(o)
	var err error
	if dto.InputVariables, err = marshalVariables(o.inputVariables); err != nil {
		return nil, err
	}
	if dto.OutputVariables, err = marshalVariables(o.outputVariables); err != nil {
		return nil, err
	}
	if dto.InoutputVariables, err = marshalVariables(o.inoutputVariables); err != nil {
		return nil, err
	}
	return json.Marshal(dto)
}

func (c *Capability) MarshalJSON() ([]byte, error) {
	return json.Marshal(buildElementJSON(c))
}

func (e *Entity) MarshalJSON() ([]byte, error) {
	dto := buildElementJSON(e)
	dto.EntityType = string(e.entityType)
	dto.GlobalAssetID = referenceToJSON(e.globalAssetID)
	dto.SpecificAssetID = identifierKeyValuePairToJSON(e.specificAssetID)
	statements, err := marshalElements(e.GetStatements())
	if err != nil {
		return nil, err
	}
	dto.Statements = statements
	return json.Marshal(dto)
}

func (b *BasicEvent) MarshalJSON() ([]byte, error) {
	dto := buildElementJSON(b)
	dto.Observed = referenceToJSON(b.observed)
	return json.Marshal(dto)
}

// UnmarshalSubmodelElement creates the appropriate concrete SubmodelElement
// from JSON based on the modelType discriminator. Objects are rebuilt through
// the constructors, so metamodel constraints are enforced on this path too.
func UnmarshalSubmodelElement(data []byte) (SubmodelElement, error) {
	var dto submodelElementJSON
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, fmt.Errorf("failed to unmarshal submodel element: %w", err)
	}
	return submodelElementFromJSON(&dto)
}

func submodelElementFromJSON(dto *submodelElementJSON) (SubmodelElement, error) {
	var element SubmodelElement
	switch dto.ModelType {
	case "Property":
		p := NewProperty(dto.IDShort, DataTypeDefXSD(dto.ValueType))
		if len(dto.Value) > 0 {
			if err := json.Unmarshal(dto.Value, &p.value); err != nil {
				return nil, fmt.Errorf("failed to unmarshal Property value: %w", err)
			}
		}
		valueID, err := referenceFromJSON(dto.ValueID)
		if err != nil {
			return nil, err
		}
		p.valueID = valueID
		element = p
	case "MultiLanguageProperty":
		m := NewMultiLanguageProperty(dto.IDShort)
		if len(dto.Value) > 0 {
			var value []langStringJSON
			if err := json.Unmarshal(dto.Value, &value); err != nil {
				return nil, fmt.Errorf("failed to unmarshal MultiLanguageProperty value: %w", err)
			}
			m.value = langStringSetFromJSON(value)
		}
		valueID, err := referenceFromJSON(dto.ValueID)
		if err != nil {
			return nil, err
		}
		m.valueID = valueID
		element = m
	case "Range":
		kind := ModelingKindInstance
		if dto.Kind != "" {
			kind = ModelingKind(dto.Kind)
		}
		r, err := NewRange(dto.IDShort, DataTypeDefXSD(dto.ValueType), dto.Min, dto.Max, kind)
		if err != nil {
			return nil, err
		}
		element = r
	case "Blob":
		b := NewBlob(dto.IDShort, dto.MimeType)
		if len(dto.Value) > 0 {
			var encoded string
			if err := json.Unmarshal(dto.Value, &encoded); err != nil {
				return nil, fmt.Errorf("failed to unmarshal Blob value: %w", err)
			}
			value, err := base64.StdEncoding.DecodeString(encoded)
			if err != nil {
				return nil, fmt.Errorf("failed to decode Blob value: %w", err)
			}
			b.value = value
		}
		element = b
	case "File":
		f := NewFile(dto.IDShort, dto.MimeType)
		if len(dto.Value) > 0 {
			if err := json.Unmarshal(dto.Value, &f.value); err != nil {
				return nil, fmt.Errorf("failed to unmarshal File value: %w", err)
			}
		}
		element = f
	case "ReferenceElement":
		r := NewReferenceElement(dto.IDShort)
		if len(dto.Value) > 0 {
			var ref referenceJSON
			if err := json.Unmarshal(dto.Value, &ref); err != nil {
				return nil, fmt.Errorf("failed to unmarshal ReferenceElement value: %w", err)
			}
			value, err := referenceFromJSON(&ref)
			if err != nil {
				return nil, err
			}
			r.value = value
		}
		element = r
	case "SubmodelElementCollection":
		c := NewSubmodelElementCollection(dto.IDShort, dto.Ordered, dto.AllowDuplicates)
		if len(dto.Value) > 0 {
			var children []jsoniter.RawMessage
			if err := json.Unmarshal(dto.Value, &children); err != nil {
				return nil, fmt.Errorf("failed to unmarshal SubmodelElementCollection value: %w", err)
			}
			for _, raw := range children {
				child, err := UnmarshalSubmodelElement(raw)
				if err != nil {
					return nil, err
				}
				if err := c.AddElement(child); err != nil {
					return nil, err
				}
			}
		}
		element = c
	case "RelationshipElement":
		first, err := referenceFromJSON(dto.First)
		if err != nil {
			return nil, err
		}
		second, err := referenceFromJSON(dto.Second)
		if err != nil {
			return nil, err
		}
		element = NewRelationshipElement(dto.IDShort, first, second)
	case "AnnotatedRelationshipElement":
		first, err := referenceFromJSON(dto.First)
		if err != nil {
			return nil, err
		}
		second, err := referenceFromJSON(dto.Second)
		if err != nil {
			return nil, err
		}
		a := NewAnnotatedRelationshipElement(dto.IDShort, first, second)
		for _, raw := range dto.Annotations {
			child, err := UnmarshalSubmodelElement(raw)
			if err != nil {
				return nil, err
			}
			annotation, ok := child.(DataElement)
			if !ok {
				return nil, &TypeMismatchError{Expected: "DataElement", Actual: child.GetModelType()}
			}
			if err := a.AddAnnotation(annotation); err != nil {
				return nil, err
			}
		}
		element = a
	case "Operation":
		o := NewOperation(dto.IDShort)
		appendVariables := func(raw []operationVariableJSON, add func(*OperationVariable)) error {
			for _, v := range raw {
				child, err := UnmarshalSubmodelElement(v.Value)
				if err != nil {
					return err
				}
				add(NewOperationVariable(child))
			}
			return nil
		}
		if err := appendVariables(dto.InputVariables, o.AddInputVariable); err != nil {
			return nil, err
		}
		if err := appendVariables(dto.OutputVariables, o.AddOutputVariable); err != nil {
			return nil, err
		}
		if err := appendVariables(dto.InoutputVariables, o.AddInoutputVariable); err != nil {
			return nil, err
		}
		element = o
	case "Capability":
		element = NewCapability(dto.IDShort)
	case "Entity":
		globalAssetID, err := referenceFromJSON(dto.GlobalAssetID)
		if err != nil {
			return nil, err
		}
		specificAssetID, err := identifierKeyValuePairFromJSON(dto.SpecificAssetID)
		if err != nil {
			return nil, err
		}
		e, err := NewEntity(dto.IDShort, EntityType(dto.EntityType), globalAssetID, specificAssetID)
		if err != nil {
			return nil, err
		}
		for _, raw := range dto.Statements {
			child, err := UnmarshalSubmodelElement(raw)
			if err != nil {
				return nil, err
			}
			if err := e.AddStatement(child); err != nil {
				return nil, err
			}
		}
		element = e
	case "BasicEvent":
		observed, err := referenceFromJSON(dto.Observed)
		if err != nil {
			return nil, err
		}
		element = NewBasicEvent(dto.IDShort, observed)
	default:
		return nil, fmt.Errorf("unsupported modelType: %s", dto.ModelType)
	}
	if err := applyElementJSON(element, dto); err != nil {
		return nil, err
	}
	return element, nil
}

func identifierFromJSON(id identifierJSON) Identifier {
	return Identifier{ID: id.ID, IDType: IdentifierType(id.IDType)}
}

func identifierToJSON(id Identifier) identifierJSON {
	return identifierJSON{ID: id.ID, IDType: string(id.IDType)}
}

func administrationToJSON(a *AdministrativeInformation) *administrationJSON {
	if a == nil {
		return nil
	}
	return &administrationJSON{Version: a.Version, Revision: a.Revision}
}

func administrationFromJSON(a *administrationJSON) *AdministrativeInformation {
	if a == nil {
		return nil
	}
	return &AdministrativeInformation{Version: a.Version, Revision: a.Revision}
}

func (s *Submodel) MarshalJSON() ([]byte, error) {
	elements, err := marshalElements(s.GetSubmodelElements())
	if err != nil {
		return nil, err
	}
	return json.Marshal(submodelJSON{
		ModelType:        s.GetModelType(),
		Identification:   identifierToJSON(s.identification),
		Administration:   administrationToJSON(s.administration),
		IDShort:          s.GetIdShort(),
		Category:         s.GetCategory(),
		Description:      langStringSetToJSON(s.GetDescription()),
		Kind:             string(s.GetKind()),
		SemanticID:       referenceToJSON(s.GetSemanticID()),
		Qualifiers:       constraintsToJSON(s.GetQualifiers()),
		SubmodelElements: elements,
	})
}

func (a *Asset) MarshalJSON() ([]byte, error) {
	return json.Marshal(assetJSON{
		ModelType:      a.GetModelType(),
		Identification: identifierToJSON(a.identification),
		Administration: administrationToJSON(a.administration),
		IDShort:        a.GetIdShort(),
		Category:       a.GetCategory(),
		Description:    langStringSetToJSON(a.GetDescription()),
		Kind:           string(a.kind),
	})
}

func (s *AssetAdministrationShell) MarshalJSON() ([]byte, error) {
	submodels := s.GetSubmodels()
	refs := make([]referenceJSON, len(submodels))
	for i := range submodels {
		refs[i] = *referenceToJSON(&submodels[i])
	}
	return json.Marshal(assetAdministrationShellJSON{
		ModelType:      s.GetModelType(),
		Identification: identifierToJSON(s.identification),
		Administration: administrationToJSON(s.administration),
		IDShort:        s.GetIdShort(),
		Category:       s.GetCategory(),
		Description:    langStringSetToJSON(s.GetDescription()),
		Asset:          referenceToJSON(s.asset),
		DerivedFrom:    referenceToJSON(s.derivedFrom),
		Submodels:      refs,
	})
}

func (c *ConceptDescription) MarshalJSON() ([]byte, error) {
	isCaseOf := c.GetIsCaseOf()
	refs := make([]referenceJSON, len(isCaseOf))
	for i := range isCaseOf {
		refs[i] = *referenceToJSON(&isCaseOf[i])
	}
	return json.Marshal(conceptDescriptionJSON{
		ModelType:      c.GetModelType(),
		Identification: identifierToJSON(c.identification),
		Administration: administrationToJSON(c.administration),
		IDShort:        c.GetIdShort(),
		Category:       c.GetCategory(),
		Description:    langStringSetToJSON(c.GetDescription()),
		IsCaseOf:       refs,
	})
}

// UnmarshalIdentifiable creates the appropriate Identifiable root from JSON
// based on the modelType discriminator.
func UnmarshalIdentifiable(data []byte) (Identifiable, error) {
	var raw struct {
		ModelType string `json:"modelType"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to determine modelType: %w", err)
	}
	switch raw.ModelType {
	case "Submodel":
		return UnmarshalSubmodel(data)
	case "Asset":
		var dto assetJSON
		if err := json.Unmarshal(data, &dto); err != nil {
			return nil, fmt.Errorf("failed to unmarshal Asset: %w", err)
		}
		a := NewAsset(identifierFromJSON(dto.Identification), AssetKind(dto.Kind))
		a.administration = administrationFromJSON(dto.Administration)
		applyIdentifiableJSON(a, dto.IDShort, dto.Category, dto.Description)
		return a, nil
	case "AssetAdministrationShell":
		var dto assetAdministrationShellJSON
		if err := json.Unmarshal(data, &dto); err != nil {
			return nil, fmt.Errorf("failed to unmarshal AssetAdministrationShell: %w", err)
		}
		asset, err := referenceFromJSON(dto.Asset)
		if err != nil {
			return nil, err
		}
		s := NewAssetAdministrationShell(identifierFromJSON(dto.Identification), asset)
		s.administration = administrationFromJSON(dto.Administration)
		applyIdentifiableJSON(s, dto.IDShort, dto.Category, dto.Description)
		derivedFrom, err := referenceFromJSON(dto.DerivedFrom)
		if err != nil {
			return nil, err
		}
		s.derivedFrom = derivedFrom
		for i := range dto.Submodels {
			ref, err := referenceFromJSON(&dto.Submodels[i])
			if err != nil {
				return nil, err
			}
			if err := s.AddSubmodel(*ref); err != nil {
				return nil, err
			}
		}
		return s, nil
	case "ConceptDescription":
		var dto conceptDescriptionJSON
		if err := json.Unmarshal(data, &dto); err != nil {
			return nil, fmt.Errorf("failed to unmarshal ConceptDescription: %w", err)
		}
		c := NewConceptDescription(identifierFromJSON(dto.Identification))
		c.administration = administrationFromJSON(dto.Administration)
		applyIdentifiableJSON(c, dto.IDShort, dto.Category, dto.Description)
		for i := range dto.IsCaseOf {
			ref, err := referenceFromJSON(&dto.IsCaseOf[i])
			if err != nil {
				return nil, err
			}
			c.AddIsCaseOf(*ref)
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unsupported modelType: %s", raw.ModelType)
	}
}

// UnmarshalSubmodel decodes a submodel, rebuilding its element tree through
// the constructors.
func UnmarshalSubmodel(data []byte) (*Submodel, error) {
	var dto submodelJSON
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Submodel: %w", err)
	}
	s := NewSubmodel(identifierFromJSON(dto.Identification))
	s.administration = administrationFromJSON(dto.Administration)
	applyIdentifiableJSON(s, dto.IDShort, dto.Category, dto.Description)
	if dto.Kind != "" {
		s.setKind(ModelingKind(dto.Kind))
	}
	semanticID, err := referenceFromJSON(dto.SemanticID)
	if err != nil {
		return nil, err
	}
	s.SetSemanticID(semanticID)
	for _, c := range dto.Qualifiers {
		constraint, err := constraintFromJSON(c)
		if err != nil {
			return nil, err
		}
		if err := s.AddQualifier(constraint); err != nil {
			return nil, err
		}
	}
	for _, raw := range dto.SubmodelElements {
		element, err := UnmarshalSubmodelElement(raw)
		if err != nil {
			return nil, err
		}
		if err := s.AddSubmodelElement(element); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func applyIdentifiableJSON(obj Identifiable, idShort, category string, description []langStringJSON) {
	// Roots have no parent yet, so renaming cannot fail here.
	_ = obj.SetIdShort(idShort)
	obj.SetCategory(category)
	obj.SetDescription(langStringSetFromJSON(description))
}
