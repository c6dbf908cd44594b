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

// Entity describes an entity of the asset, either self-managed (with its own
// asset identity) or co-managed (identified through the containing shell's
// asset). Entity statements are submodel elements addressable by idShort.
//
// A self-managed entity must carry a globalAssetId or a specificAssetId, a
// co-managed entity must carry neither. Every mutation of the entity type or
// the asset identity re-runs that check.
type Entity struct {
	submodelElement
	entityType      EntityType
	statements      *NamespaceSet
	globalAssetID   *Reference
	specificAssetID *IdentifierKeyValuePair
}

// NewEntity creates an entity with kind Instance and an empty statement set.
func NewEntity(idShort string, entityType EntityType, globalAssetID *Reference, specificAssetID *IdentifierKeyValuePair) (*Entity, error) {
	e := &Entity{
		submodelElement: newSubmodelElement(idShort),
		entityType:      entityType,
		globalAssetID:   globalAssetID,
		specificAssetID: specificAssetID,
	}
	if err := e.checkAssetIdentity(); err != nil {
		return nil, err
	}
	e.statements = NewNamespaceSet(e, true)
	return e, nil
}

func (e *Entity) GetModelType() string { return "Entity" }

func (e *Entity) GetEntityType() EntityType { return e.entityType }

// SetEntityType switches between co-managed and self-managed. The switch is
// rejected when the current asset identity does not fit the new type.
func (e *Entity) SetEntityType(entityType EntityType) error {
	old := e.entityType
	e.entityType = entityType
	if err := e.checkAssetIdentity(); err != nil {
		e.entityType = old
		return err
	}
	return nil
}

func (e *Entity) GetGlobalAssetID() *Reference { return e.globalAssetID }

func (e *Entity) SetGlobalAssetID(globalAssetID *Reference) error {
	old := e.globalAssetID
	e.globalAssetID = globalAssetID
	if err := e.checkAssetIdentity(); err != nil {
		e.globalAssetID = old
		return err
	}
	return nil
}

func (e *Entity) GetSpecificAssetID() *IdentifierKeyValuePair { return e.specificAssetID }

func (e *Entity) SetSpecificAssetID(specificAssetID *IdentifierKeyValuePair) error {
	old := e.specificAssetID
	e.specificAssetID = specificAssetID
	if err := e.checkAssetIdentity(); err != nil {
		e.specificAssetID = old
		return err
	}
	return nil
}

// GetReferable implements Namespace over the entity statements.
func (e *Entity) GetReferable(idShort string) (Referable, error) {
	return e.statements.Get(idShort)
}

// AddStatement attaches a statement element.
func (e *Entity) AddStatement(statement SubmodelElement) error {
	return e.statements.Add(statement)
}

// RemoveStatement detaches the statement with the given idShort.
func (e *Entity) RemoveStatement(idShort string) error {
	return e.statements.Remove(idShort)
}

// GetStatements returns the statements in insertion order.
func (e *Entity) GetStatements() []SubmodelElement {
	values := e.statements.Values()
	statements := make([]SubmodelElement, len(values))
	for i, v := range values {
		statements[i] = v.(SubmodelElement)
	}
	return statements
}

func (e *Entity) checkAssetIdentity() error {
	hasAssetID := e.globalAssetID != nil || e.specificAssetID != nil
	switch e.entityType {
	case EntityTypeSelfManagedEntity:
		if !hasAssetID {
			return &ConstraintViolationError{
				Constraint: "AASd-014",
				Message:    "a self-managed entity has to have a globalAssetId or a specificAssetId",
			}
		}
	case EntityTypeCoManagedEntity:
		if hasAssetID {
			return &ConstraintViolationError{
				Constraint: "AASd-014",
				Message:    "a co-managed entity has to have neither a globalAssetId nor a specificAssetId",
			}
		}
	}
	return nil
}
