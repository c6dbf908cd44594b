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

// AssetAdministrationShell is the identifiable root tying an asset to the
// submodels describing it.
type AssetAdministrationShell struct {
	identifiable
	hasDataSpecification
	asset       *Reference
	derivedFrom *Reference
	submodels   []Reference
}

// NewAssetAdministrationShell creates a shell for the referenced asset.
func NewAssetAdministrationShell(identification Identifier, asset *Reference) *AssetAdministrationShell {
	s := &AssetAdministrationShell{asset: asset}
	s.identification = identification
	return s
}

func (s *AssetAdministrationShell) GetModelType() string { return "AssetAdministrationShell" }

func (s *AssetAdministrationShell) GetAsset() *Reference { return s.asset }

func (s *AssetAdministrationShell) SetAsset(asset *Reference) { s.asset = asset }

func (s *AssetAdministrationShell) GetDerivedFrom() *Reference { return s.derivedFrom }

func (s *AssetAdministrationShell) SetDerivedFrom(derivedFrom *Reference) { s.derivedFrom = derivedFrom }

// GetSubmodels returns the submodel references in insertion order.
func (s *AssetAdministrationShell) GetSubmodels() []Reference {
	copied := make([]Reference, len(s.submodels))
	copy(copied, s.submodels)
	return copied
}

// AddSubmodel attaches a submodel reference. Duplicate references are
// rejected.
func (s *AssetAdministrationShell) AddSubmodel(submodel Reference) error {
	for i := range s.submodels {
		if s.submodels[i].Equal(&submodel) {
			return &DuplicateKeyError{Attribute: "submodel", Value: submodel.String()}
		}
	}
	s.submodels = append(s.submodels, submodel)
	return nil
}

// RemoveSubmodel detaches a submodel reference.
func (s *AssetAdministrationShell) RemoveSubmodel(submodel Reference) error {
	for i := range s.submodels {
		if s.submodels[i].Equal(&submodel) {
			s.submodels = append(s.submodels[:i], s.submodels[i+1:]...)
			return nil
		}
	}
	return &NotFoundError{What: "submodel reference", Key: submodel.String()}
}
