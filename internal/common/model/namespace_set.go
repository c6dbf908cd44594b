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

// NamespaceSet is the indexed child container backing every Namespace
// element. Children are unique by idShort; when duplicates are disallowed
// they are additionally unique by semanticId. Insertion order is preserved.
//
// Add is atomic: a rejected insert leaves the set and the child untouched.
type NamespaceSet struct {
	parent          Namespace
	allowDuplicates bool
	byIDShort       map[string]Referable
	bySemanticID    map[string]Referable
	order           []Referable
}

// NewNamespaceSet creates a child container owned by parent. With
// allowDuplicates=false, children carrying a semanticId must be unique by
// it.
func NewNamespaceSet(parent Namespace, allowDuplicates bool) *NamespaceSet {
	return &NamespaceSet{
		parent:          parent,
		allowDuplicates: allowDuplicates,
		byIDShort:       make(map[string]Referable),
		bySemanticID:    make(map[string]Referable),
	}
}

// Add inserts a child and sets its parent back-reference. It fails with
// ConstraintViolationError when the child already belongs to a namespace and
// with DuplicateKeyError on an idShort or semanticId collision.
func (n *NamespaceSet) Add(child Referable) error {
	if child.GetParent() != nil {
		return &ConstraintViolationError{
			Message: "object has already a parent namespace; remove it there first",
		}
	}
	idShort := child.GetIdShort()
	if _, exists := n.byIDShort[idShort]; exists {
		return &DuplicateKeyError{Attribute: "idShort", Value: idShort}
	}
	semanticKey, hasSemanticKey := semanticIndexKey(child)
	if !n.allowDuplicates && hasSemanticKey {
		if _, exists := n.bySemanticID[semanticKey]; exists {
			return &DuplicateKeyError{Attribute: "semanticId", Value: semanticKey}
		}
	}
	n.byIDShort[idShort] = child
	if hasSemanticKey {
		n.bySemanticID[semanticKey] = child
	}
	n.order = append(n.order, child)
	child.setParent(n.parent)
	return nil
}

// Remove detaches the child with the given idShort and clears its parent
// back-reference.
func (n *NamespaceSet) Remove(idShort string) error {
	child, exists := n.byIDShort[idShort]
	if !exists {
		return &NotFoundError{What: "object with idShort", Key: idShort}
	}
	delete(n.byIDShort, idShort)
	if semanticKey, ok := semanticIndexKey(child); ok && n.bySemanticID[semanticKey] == child {
		delete(n.bySemanticID, semanticKey)
	}
	for i, c := range n.order {
		if c == child {
			n.order = append(n.order[:i], n.order[i+1:]...)
			break
		}
	}
	child.setParent(nil)
	return nil
}

// Get returns the child with the given idShort.
func (n *NamespaceSet) Get(idShort string) (Referable, error) {
	child, exists := n.byIDShort[idShort]
	if !exists {
		return nil, &NotFoundError{What: "object with idShort", Key: idShort}
	}
	return child, nil
}

// GetBySemanticID returns the first child carrying the given semanticId.
func (n *NamespaceSet) GetBySemanticID(semanticID *Reference) (Referable, error) {
	if semanticID != nil {
		if child, exists := n.bySemanticID[semanticID.String()]; exists {
			return child, nil
		}
		for _, child := range n.order {
			hs, ok := child.(HasSemantics)
			if ok && semanticID.Equal(hs.GetSemanticID()) {
				return child, nil
			}
		}
	}
	key := ""
	if semanticID != nil {
		key = semanticID.String()
	}
	return nil, &NotFoundError{What: "object with semanticId", Key: key}
}

// Len returns the number of children.
func (n *NamespaceSet) Len() int { return len(n.order) }

// Values returns the children in insertion order.
func (n *NamespaceSet) Values() []Referable {
	copied := make([]Referable, len(n.order))
	copy(copied, n.order)
	return copied
}

func semanticIndexKey(child Referable) (string, bool) {
	hs, ok := child.(HasSemantics)
	if !ok || hs.GetSemanticID() == nil {
		return "", false
	}
	return hs.GetSemanticID().String(), true
}
