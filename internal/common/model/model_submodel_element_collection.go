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

// SubmodelElementCollection groups submodel elements. An ordered collection
// preserves a meaningful element order; an unordered one treats children as
// a set. With allowDuplicates=false, children carrying a semanticId must be
// unique by it.
type SubmodelElementCollection struct {
	submodelElement
	ordered         bool
	allowDuplicates bool
	value           *NamespaceSet
}

// NewSubmodelElementCollection creates a collection with kind Instance.
func NewSubmodelElementCollection(idShort string, ordered, allowDuplicates bool) *SubmodelElementCollection {
	c := &SubmodelElementCollection{
		submodelElement: newSubmodelElement(idShort),
		ordered:         ordered,
		allowDuplicates: allowDuplicates,
	}
	c.value = NewNamespaceSet(c, allowDuplicates)
	return c
}

func (c *SubmodelElementCollection) GetModelType() string { return "SubmodelElementCollection" }

func (c *SubmodelElementCollection) IsOrdered() bool { return c.ordered }

func (c *SubmodelElementCollection) AllowsDuplicates() bool { return c.allowDuplicates }

// GetReferable implements Namespace over the contained elements.
func (c *SubmodelElementCollection) GetReferable(idShort string) (Referable, error) {
	return c.value.Get(idShort)
}

// AddElement inserts a child element, enforcing the collection's uniqueness
// rules atomically.
func (c *SubmodelElementCollection) AddElement(element SubmodelElement) error {
	return c.value.Add(element)
}

// RemoveElement detaches the child with the given idShort.
func (c *SubmodelElementCollection) RemoveElement(idShort string) error {
	return c.value.Remove(idShort)
}

// GetElements returns the contained elements in insertion order.
func (c *SubmodelElementCollection) GetElements() []SubmodelElement {
	values := c.value.Values()
	elements := make([]SubmodelElement, len(values))
	for i, v := range values {
		elements[i] = v.(SubmodelElement)
	}
	return elements
}

// GetElementBySemanticID returns the first contained element carrying the
// given semanticId.
func (c *SubmodelElementCollection) GetElementBySemanticID(semanticID *Reference) (SubmodelElement, error) {
	child, err := c.value.GetBySemanticID(semanticID)
	if err != nil {
		return nil, err
	}
	return child.(SubmodelElement), nil
}
