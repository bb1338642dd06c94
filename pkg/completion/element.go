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
package completion

import (
	"math/big"

	"github.com/consensys/go-maclane/pkg/util/math"
)

// Element of a completion.  Exactly two kinds of element exist: exact
// rationals embedded into the completion (BaseElement) and limits of MacLane
// approximation chains (LimitElement); operations taking another element
// match exhaustively on these.  Every operation either returns a certified
// answer or an error saying why no answer can be certified.
type Element interface {
	// Completion returns the completed field this element lives in.
	Completion() *Completion
	// Precision returns the valuation-distance to which this element is
	// known.  Exact elements are known to infinite precision.
	Precision() (math.InfRat, error)
	// Valuation returns the valuation of this element, if it can be
	// certified at the current precision.
	Valuation() (math.InfRat, error)
	// Reduction returns the image of this element in the residue field F_p,
	// if it can be certified at the current precision.
	Reduction() (*big.Int, error)
	// Equals determines whether this element equals another, if decidable at
	// the current precision.
	Equals(other Element) (bool, error)
	// NotEquals determines whether this element differs from another.  It
	// fails exactly when Equals fails.
	NotEquals(other Element) (bool, error)
	// Compare always fails with ErrUnsupportedOperator: a completion with
	// respect to a p-adic valuation carries no meaningful order.
	Compare(other Element) error
	//
	String() string
}

// BaseElement is an exact rational embedded into a completion.
type BaseElement struct {
	completion *Completion
	value      big.Rat
}

// NewBaseElement embeds a given rational into a given completion, cloning the
// rational.
func NewBaseElement(completion *Completion, value *big.Rat) *BaseElement {
	var element BaseElement
	//
	element.completion = completion
	element.value.Set(value)
	//
	return &element
}

// Completion returns the completed field this element lives in.
func (e *BaseElement) Completion() *Completion {
	return e.completion
}

// Precision returns positive infinity, since exact elements are known
// exactly.
func (e *BaseElement) Precision() (math.InfRat, error) {
	return math.PosInfinity, nil
}

// Valuation returns the p-adic valuation of this element.
func (e *BaseElement) Valuation() (math.InfRat, error) {
	return e.completion.base.Value(&e.value), nil
}

// Reduction returns the image of this element in the residue field F_p.
func (e *BaseElement) Reduction() (*big.Int, error) {
	return e.completion.base.Reduce(&e.value)
}

// Equals determines whether this element equals another.  Comparison against
// a limit element is delegated to the limit element, which owns the precision
// reasoning; equality is symmetric so this is sound.
func (e *BaseElement) Equals(other Element) (bool, error) {
	switch o := other.(type) {
	case *BaseElement:
		if !e.completion.Equal(o.completion) {
			return false, ErrIncompatibleDomains
		}
		//
		return e.value.Cmp(&o.value) == 0, nil
	case *LimitElement:
		return o.Equals(e)
	default:
		return false, ErrIncompatibleDomains
	}
}

// NotEquals determines whether this element differs from another.
func (e *BaseElement) NotEquals(other Element) (bool, error) {
	eq, err := e.Equals(other)
	if err != nil {
		return false, err
	}
	//
	return !eq, nil
}

// Compare always fails with ErrUnsupportedOperator.
func (e *BaseElement) Compare(Element) error {
	return ErrUnsupportedOperator
}

// Rat returns (a clone of) the exact rational underlying this element.
func (e *BaseElement) Rat() *big.Rat {
	var val big.Rat
	//
	val.Set(&e.value)
	//
	return &val
}

func (e *BaseElement) String() string {
	return e.value.RatString()
}
