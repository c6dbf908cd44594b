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

// AssetKind distinguishes asset types from asset instances.
type AssetKind string

const (
	AssetKindType     AssetKind = "Type"
	AssetKindInstance AssetKind = "Instance"
)

// Asset is the identifiable representation of a physical or logical asset.
type Asset struct {
	identifiable
	hasDataSpecification
	kind AssetKind
}

// NewAsset creates an asset of the given kind.
func NewAsset(identification Identifier, kind AssetKind) *Asset {
	a := &Asset{kind: kind}
	a.identification = identification
	return a
}

func (a *Asset) GetModelType() string { return "Asset" }

func (a *Asset) GetAssetKind() AssetKind { return a.kind }
