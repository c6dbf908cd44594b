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
	"context"
	"fmt"
)

// Registry resolves Identifiers to Identifiable objects.
type Registry interface {
	GetIdentifiable(id Identifier) (Identifiable, error)
}

// ObjectStore is a mutable registry of Identifiable roots. Update and Commit
// are synchronization points for backed stores; the in-memory store treats
// them as no-ops.
type ObjectStore interface {
	Registry
	Add(obj Identifiable) error
	Remove(id Identifier) error
	Len() int
	Values() []Identifiable
	Update(ctx context.Context) error
	Commit(ctx context.Context) error
}

// DictObjectStore is the in-memory ObjectStore implementation, an
// Identifier-indexed map preserving insertion order.
type DictObjectStore struct {
	backend map[Identifier]Identifiable
	order   []Identifier
}

// NewDictObjectStore creates a store prefilled with the given objects; it
// panics on duplicate identifiers in the initial set.
func NewDictObjectStore(objects ...Identifiable) *DictObjectStore {
	s := &DictObjectStore{backend: make(map[Identifier]Identifiable)}
	for _, obj := range objects {
		if err := s.Add(obj); err != nil {
			panic(err)
		}
	}
	return s
}

func (s *DictObjectStore) GetIdentifiable(id Identifier) (Identifiable, error) {
	obj, exists := s.backend[id]
	if !exists {
		return nil, &NotFoundError{What: "identifier", Key: id.String()}
	}
	return obj, nil
}

// Add inserts an object; the identifier must not be present yet.
func (s *DictObjectStore) Add(obj Identifiable) error {
	id := obj.GetIdentification()
	if _, exists := s.backend[id]; exists {
		return &DuplicateKeyError{Attribute: "identification", Value: id.String()}
	}
	s.backend[id] = obj
	s.order = append(s.order, id)
	return nil
}

// Remove deletes the object with the given identifier.
func (s *DictObjectStore) Remove(id Identifier) error {
	if _, exists := s.backend[id]; !exists {
		return &NotFoundError{What: "identifier", Key: id.String()}
	}
	delete(s.backend, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *DictObjectStore) Len() int { return len(s.backend) }

// Values returns the stored objects in insertion order.
func (s *DictObjectStore) Values() []Identifiable {
	values := make([]Identifiable, 0, len(s.order))
	for _, id := range s.order {
		values = append(values, s.backend[id])
	}
	return values
}

func (s *DictObjectStore) Update(_ context.Context) error { return nil }

func (s *DictObjectStore) Commit(_ context.Context) error { return nil }

// RegistryMultiplexer is a read-only registry consulting a list of
// registries in order and returning the first match.
type RegistryMultiplexer struct {
	registries []Registry
}

// NewRegistryMultiplexer creates a multiplexer over the given registries.
func NewRegistryMultiplexer(registries ...Registry) *RegistryMultiplexer {
	copied := make([]Registry, len(registries))
	copy(copied, registries)
	return &RegistryMultiplexer{registries: copied}
}

// AddRegistry appends a registry to the consultation order.
func (m *RegistryMultiplexer) AddRegistry(registry Registry) {
	m.registries = append(m.registries, registry)
}

// GetIdentifiable consults each registry in order. Lookup failures other
// than NotFound abort the consultation.
func (m *RegistryMultiplexer) GetIdentifiable(id Identifier) (Identifiable, error) {
	for _, registry := range m.registries {
		obj, err := registry.GetIdentifiable(id)
		if err == nil {
			return obj, nil
		}
		if _, isNotFound := err.(*NotFoundError); !isNotFound {
			return nil, err
		}
	}
	return nil, &NotFoundError{
		What:    "identifier",
		Key:     id.String(),
		Message: fmt.Sprintf("identifier '%s' could not be found in any of the %d consulted registries", id, len(m.registries)),
	}
}
