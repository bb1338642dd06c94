// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package completion provides elements of the completion of the rationals
// with respect to a p-adic valuation.  Elements are either exact rationals
// embedded into the completion, or limits of MacLane approximation chains
// which are never known exactly: only to a certified precision bound.  Every
// operation on such a limit element either returns an answer that no further
// refinement of its chain can invalidate, or refuses with an explicit error.
package completion

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/consensys/go-maclane/pkg/padic"
)

// ErrUnsupportedConfiguration signals that the precision bound of a limit
// element cannot be computed because its chain is too deep: the bound is only
// known for approximations whose predecessor key polynomial is the generator
// x.  This is a known gap, not a usage error.
var ErrUnsupportedConfiguration = errors.New("completion: precision bound only supported over the ring generator")

// ErrInsufficientPrecision signals that the current approximation does not
// pin down an element accurately enough to certify the requested answer.  The
// general resolution is to refine the underlying chain and retry; no such
// retry loop exists, so callers receive this error instead of a possibly
// wrong best-effort answer.
var ErrInsufficientPrecision = errors.New("completion: insufficient precision")

// ErrIncompatibleDomains signals an attempt to compare elements living in
// completions over different primes.  This is a programming error at the call
// site; no coercion is attempted.
var ErrIncompatibleDomains = errors.New("completion: elements of incompatible completions")

// ErrUnsupportedOperator signals use of a relational operator other than
// equality or inequality, which is not semantically meaningful for elements
// with inexact representation.
var ErrUnsupportedOperator = errors.New("completion: only equality and inequality are supported")

// Completion represents the completion of the rationals with respect to a
// p-adic valuation.  It acts as a handle identifying which completed field an
// element lives in; two completions are interchangeable exactly when their
// primes agree.
type Completion struct {
	base *padic.Valuation
}

// NewCompletion constructs the completion of the rationals with respect to
// the p-adic valuation for a given prime p.
func NewCompletion(p *big.Int) (*Completion, error) {
	base, err := padic.NewValuation(p)
	if err != nil {
		return nil, err
	}
	//
	return &Completion{base}, nil
}

// Base returns the p-adic valuation this completion is taken with respect to.
func (c *Completion) Base() *padic.Valuation {
	return c.base
}

// Equal determines whether another completion is over the same prime.
func (c *Completion) Equal(other *Completion) bool {
	return other != nil && c.base.Equal(other.base)
}

func (c *Completion) String() string {
	return fmt.Sprintf("completion of the rationals with respect to %s", c.base)
}
