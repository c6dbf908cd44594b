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

// Package checker compares AAS model object graphs attribute by attribute
// and reports each comparison as an itemized CheckResult. A checker either
// accumulates all results for later inspection or fails on the first
// unfulfilled expectation.
package checker

import (
	"fmt"
	"sort"
	"strings"
)

// CheckResult records one performed comparison: the expectation in prose,
// whether it held, and the observed data.
type CheckResult struct {
	Expectation string
	Result      bool
	Data        map[string]any
}

func (c CheckResult) String() string {
	status := "FAIL"
	if c.Result {
		status = "OK"
	}
	if len(c.Data) == 0 {
		return fmt.Sprintf("%s: %s", status, c.Expectation)
	}
	keys := make([]string, 0, len(c.Data))
	for k := range c.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, c.Data[k]))
	}
	return fmt.Sprintf("%s: %s (%s)", status, c.Expectation, strings.Join(parts, ", "))
}

// CheckFailedError is returned by a checker in raise-immediately mode when
// an expectation does not hold.
type CheckFailedError struct {
	Result CheckResult
}

func (e *CheckFailedError) Error() string { return e.Result.String() }

// DataChecker performs and records individual checks.
type DataChecker struct {
	raiseImmediately bool
	checks           []CheckResult
}

// NewDataChecker creates a checker. With raiseImmediately, the first failed
// check aborts the comparison with a CheckFailedError; otherwise all checks
// are recorded and the caller inspects FailedChecks afterwards.
func NewDataChecker(raiseImmediately bool) *DataChecker {
	return &DataChecker{raiseImmediately: raiseImmediately}
}

// Check records the outcome of one comparison. It returns whether the
// expectation held, and in raise-immediately mode a CheckFailedError on
// failure.
func (d *DataChecker) Check(expression bool, expectation string, data map[string]any) (bool, error) {
	result := CheckResult{Expectation: expectation, Result: expression, Data: data}
	d.checks = append(d.checks, result)
	if !expression && d.raiseImmediately {
		return false, &CheckFailedError{Result: result}
	}
	return expression, nil
}

// CheckResults returns all recorded checks in execution order.
func (d *DataChecker) CheckResults() []CheckResult {
	copied := make([]CheckResult, len(d.checks))
	copy(copied, d.checks)
	return copied
}

// FailedChecks returns the recorded checks whose expectation did not hold.
func (d *DataChecker) FailedChecks() []CheckResult {
	var failed []CheckResult
	for _, c := range d.checks {
		if !c.Result {
			failed = append(failed, c)
		}
	}
	return failed
}

// SuccessfulChecks returns the recorded checks whose expectation held.
func (d *DataChecker) SuccessfulChecks() []CheckResult {
	var ok []CheckResult
	for _, c := range d.checks {
		if c.Result {
			ok = append(ok, c)
		}
	}
	return ok
}
