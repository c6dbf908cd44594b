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

// Property is a data element carrying a single typed value.
type Property struct {
	submodelElement
	valueType DataTypeDefXSD
	value     string
	valueID   *Reference
}

// NewProperty creates a property with the given idShort and value type and
// kind Instance.
func NewProperty(idShort string, valueType DataTypeDefXSD) *Property {
	return &Property{submodelElement: newSubmodelElement(idShort), valueType: valueType}
}

func (p *Property) GetModelType() string { return "Property" }

func (p *Property) dataElement() {}

func (p *Property) GetValueType() DataTypeDefXSD { return p.valueType }

func (p *Property) GetValue() string { return p.value }

func (p *Property) SetValue(value string) { p.value = value }

func (p *Property) GetValueID() *Reference { return p.valueID }

func (p *Property) SetValueID(valueID *Reference) { p.valueID = valueID }
