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
	"fmt"
	"strings"
)

// Reference is an immutable chain of Keys addressing a model element. The
// first key addresses an Identifiable root, the remaining keys descend into
// its namespaces by idShort.
type Reference struct {
	keys []Key
}

// NewReference builds a reference from a non-empty key chain.
func NewReference(keys ...Key) (*Reference, error) {
	if len(keys) == 0 {
		return nil, &ConstraintViolationError{Message: "a reference must contain at least one key"}
	}
	copied := make([]Key, len(keys))
	copy(copied, keys)
	return &Reference{keys: copied}, nil
}

// MustNewReference is NewReference for statically known key chains; it
// panics on an empty chain.
func MustNewReference(keys ...Key) *Reference {
	ref, err := NewReference(keys...)
	if err != nil {
		panic(err)
	}
	return ref
}

// Keys returns a copy of the key chain.
func (r *Reference) Keys() []Key {
	copied := make([]Key, len(r.keys))
	copy(copied, r.keys)
	return copied
}

func (r *Reference) String() string {
	parts := make([]string, len(r.keys))
	for i, k := range r.keys {
		parts[i] = k.String()
	}
	return fmt.Sprintf("Reference(%s)", strings.Join(parts, ", "))
}

// Equal reports whether both references carry the same key chain.
func (r *Reference) Equal(other *Reference) bool {
	if r == nil || other == nil {
		return r == other
	}
	if len(r.keys) != len(other.keys) {
		return false
	}
	for i := range r.keys {
		if r.keys[i] != other.keys[i] {
			return false
		}
	}
	return true
}

// Resolve walks the key chain against the given registry. The first key must
// be a local key carrying a global identifier; it is looked up in the
// registry. Every further key is resolved by idShort within the namespace
// reached so far. The resolved element must have the type named by the last
// key.
func (r *Reference) Resolve(registry Registry) (Referable, error) {
	first := r.keys[0]
	if !first.Local {
		return nil, &UnsupportedOperationError{Operation: "resolution of references into external resources"}
	}
	id, ok := first.Identifier()
	if !ok {
		return nil, &TypeMismatchError{Expected: "Key with a global identifier", Actual: string(first.IDType)}
	}
	root, err := registry.GetIdentifiable(id)
	if err != nil {
		return nil, err
	}
	var current Referable = root
	for _, key := range r.keys[1:] {
		ns, ok := current.(Namespace)
		if !ok {
			return nil, &TypeMismatchError{Expected: "Namespace", Actual: current.GetModelType()}
		}
		current, err = ns.GetReferable(key.Value)
		if err != nil {
			return nil, err
		}
	}
	last := r.keys[len(r.keys)-1]
	if !matchesKeyElements(current, last.Type) {
		return nil, &TypeMismatchError{Expected: string(last.Type), Actual: current.GetModelType()}
	}
	return current, nil
}

// matchesKeyElements checks a resolved element against the element type
// named by a key, honoring the abstract buckets SubmodelElement and
// DataElement.
func matchesKeyElements(r Referable, keyType KeyElements) bool {
	switch keyType {
	case KeyElementsSubmodelElement:
		_, ok := r.(SubmodelElement)
		return ok
	case KeyElementsDataElement:
		_, ok := r.(DataElement)
		return ok
	case KeyElementsEvent:
		return r.GetModelType() == "BasicEvent"
	default:
		return string(keyType) == r.GetModelType()
	}
}
