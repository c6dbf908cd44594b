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

// Blob is a data element carrying a binary value and its MIME type inline.
type Blob struct {
	submodelElement
	mimeType string
	value    []byte
}

// NewBlob creates a blob with kind Instance.
func NewBlob(idShort string, mimeType string) *Blob {
	return &Blob{submodelElement: newSubmodelElement(idShort), mimeType: mimeType}
}

func (b *Blob) GetModelType() string { return "Blob" }

func (b *Blob) dataElement() {}

func (b *Blob) GetMimeType() string { return b.mimeType }

func (b *Blob) SetMimeType(mimeType string) { b.mimeType = mimeType }

func (b *Blob) GetValue() []byte { return b.value }

func (b *Blob) SetValue(value []byte) { b.value = value }
