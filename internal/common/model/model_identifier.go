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

import "fmt"

// IdentifierType names the scheme of a global Identifier.
type IdentifierType string

const (
	IdentifierTypeIRDI   IdentifierType = "IRDI"
	IdentifierTypeIRI    IdentifierType = "IRI"
	IdentifierTypeCustom IdentifierType = "Custom"
)

// Identifier is the globally unique identification of an Identifiable. It is
// a comparable value type and therefore usable as a map key.
type Identifier struct {
	ID     string
	IDType IdentifierType
}

func (i Identifier) String() string {
	return fmt.Sprintf("%s=%s", i.IDType, i.ID)
}

// AdministrativeInformation carries the versioning metadata of an
// Identifiable.
type AdministrativeInformation struct {
	Version  string
	Revision string
}

// IdentifierKeyValuePair is a specific, possibly proprietary asset identifier
// (e.g. a serial number) scoped by an external subject.
type IdentifierKeyValuePair struct {
	Key               string
	Value             string
	ExternalSubjectID *Reference
}
