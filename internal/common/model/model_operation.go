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

// OperationVariable wraps a submodel element serving as an operation's input
// or output description. The wrapped element is forced to kind Template, as
// it describes the shape of a value, not a value.
type OperationVariable struct {
	value SubmodelElement
}

// NewOperationVariable wraps the given element, setting its kind to
// Template.
func NewOperationVariable(value SubmodelElement) *OperationVariable {
	value.setKind(ModelingKindTemplate)
	return &OperationVariable{value: value}
}

func (o *OperationVariable) GetValue() SubmodelElement { return o.value }

// Operation is a submodel element describing an invocable operation through
// its input, output and inoutput variables.
type Operation struct {
	submodelElement
	inputVariables    []*OperationVariable
	outputVariables   []*OperationVariable
	inoutputVariables []*OperationVariable
}

// NewOperation creates an operation with kind Instance and no variables.
func NewOperation(idShort string) *Operation {
	return &Operation{submodelElement: newSubmodelElement(idShort)}
}

func (o *Operation) GetModelType() string { return "Operation" }

func (o *Operation) GetInputVariables() []*OperationVariable { return o.inputVariables }

func (o *Operation) AddInputVariable(v *OperationVariable) {
	o.inputVariables = append(o.inputVariables, v)
}

func (o *Operation) GetOutputVariables() []*OperationVariable { return o.outputVariables }

func (o *Operation) AddOutputVariable(v *OperationVariable) {
	o.outputVariables = append(o.outputVariables, v)
}

func (o *Operation) GetInoutputVariables() []*OperationVariable { return o.inoutputVariables }

func (o *Operation) AddInoutputVariable(v *OperationVariable) {
	o.inoutputVariables = append(o.inoutputVariables, v)
}
