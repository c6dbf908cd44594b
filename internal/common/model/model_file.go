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

// File is a data element pointing to a file by path or URL.
type File struct {
	submodelElement
	mimeType string
	value    string
}

// NewFile creates a file element with kind Instance.
func NewFile(idShort string, mimeType string) *File {
	return &File{submodelElement: newSubmodelElement(idShort), mimeType: mimeType}
}

func (f *File) GetModelType() string { return "File" }

func (f *File) dataElement() {}

func (f *File) GetMimeType() string { return f.mimeType }

func (f *File) SetMimeType(mimeType string) { f.mimeType = mimeType }

func (f *File) GetValue() string { return f.value }

func (f *File) SetValue(value string) { f.value = value }
