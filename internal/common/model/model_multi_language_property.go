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

// MultiLanguageProperty is a data element carrying a value per language.
type MultiLanguageProperty struct {
	submodelElement
	value   LangStringSet
	valueID *Reference
}

// NewMultiLanguageProperty creates a multi-language property with kind
// Instance.
func NewMultiLanguageProperty(idShort string) *MultiLanguageProperty {
	return &MultiLanguageProperty{submodelElement: newSubmodelElement(idShort)}
}

func (m *MultiLanguageProperty) GetModelType() string { return "MultiLanguageProperty" }

func (m *MultiLanguageProperty) dataElement() {}

func (m *MultiLanguageProperty) GetValue() LangStringSet { return m.value }

func (m *MultiLanguageProperty) SetValue(value LangStringSet) { m.value = value }

func (m *MultiLanguageProperty) GetValueID() *Reference { return m.valueID }

func (m *MultiLanguageProperty) SetValueID(valueID *Reference) { m.valueID = valueID }
