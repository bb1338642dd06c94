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
	"fmt"
	"math/big"
	"strings"

	"github.com/consensys/go-maclane/pkg/maclane"
	"github.com/consensys/go-maclane/pkg/util/math"
)

// LimitElement is an element of a completion which is known only as a limit:
// it tracks one coefficient (selected by degree) of the key polynomials of a
// MacLane approximation chain, whose limit is the corresponding coefficient
// of the irreducible factor the chain approximates.  The element itself is an
// immutable (chain, degree) pair and holds no chain state of its own: every
// operation reads the chain's current approximation, so advancing the chain
// is transparently observed.  An answer is only ever returned when the
// certified precision bound guarantees that no further refinement of the
// chain can change it.
type LimitElement struct {
	completion *Completion
	chain      *maclane.LimitValuation
	degree     uint
}

// NewLimitElement constructs the element tracking coefficient[degree] of the
// key polynomials of a given chain.  No validation is performed here: the
// degree is checked lazily by the operations that read the coefficient.
func NewLimitElement(completion *Completion, chain *maclane.LimitValuation, degree uint) *LimitElement {
	return &LimitElement{completion, chain, degree}
}

// Completion returns the completed field this element lives in.
func (e *LimitElement) Completion() *Completion {
	return e.completion
}

// Chain returns the approximation chain whose key polynomial coefficients
// this element tracks.
func (e *LimitElement) Chain() *maclane.LimitValuation {
	return e.chain
}

// Degree returns which coefficient of the key polynomials this element
// tracks.
func (e *LimitElement) Degree() uint {
	return e.degree
}

// Precision returns the valuation-distance to which this element is known:
// however the chain is refined, the tracked coefficient can only change by
// values of valuation at least the returned bound.
//
// Write v_n for the chain's current approximation, G for the true factor its
// key polynomials approximate, and a_i, b_i for the φ_{n-1}-adic expansions
// of G and φ_n respectively.  Since G is a key polynomial for v_n,
//
//	μ_n = v_n(G) = v_n(Σ (a_i - b_i)·φ_{n-1}^i) = min_i v_{n-1}(a_i - b_i) + i·μ_{n-1}
//
// and hence v_{n-1}(a_i - b_i) >= μ_n - i·μ_{n-1} termwise.  When
// φ_{n-1} = x this bounds the coefficients of G directly, giving
//
//	precision = μ_n - degree·v_{n-1}(φ_{n-1}).
//
// For deeper chains, where φ_{n-1} is not the generator, no bound is
// computed and ErrUnsupportedConfiguration is returned.
func (e *LimitElement) Precision() (math.InfRat, error) {
	vn := e.chain.Approximation()
	base := vn.Base()
	//
	if base == nil || !base.Phi().IsGen() {
		return math.InfRat{}, fmt.Errorf("%w (approximation %s)", ErrUnsupportedConfiguration, vn)
	}
	//
	mu := vn.Mu()
	// v_n(φ_n) = ∞ declares φ_n an exact factor, whose coefficients no
	// refinement can change.
	if !mu.IsFinite() {
		return math.PosInfinity, nil
	}
	//
	val := base.Value(base.Phi())
	// A finite augmentation above an exact predecessor yields a vacuous
	// termwise bound for any positive degree.
	if e.degree > 0 && !val.IsFinite() {
		return math.NegInfinity, nil
	}
	//
	scaled := val.ScaleUint(e.degree)
	//
	return mu.Sub(scaled), nil
}

// Valuation returns the valuation of this element, provided the precision
// bound certifies it: the observed coefficient's valuation is only returned
// when it is strictly below the precision bound, as it is then protected by
// excess precision from any further refinement.  Otherwise the true
// valuation might still change (the element may even be exactly zero, which
// no amount of refinement can ever resolve) and ErrInsufficientPrecision is
// returned.
func (e *LimitElement) Valuation() (math.InfRat, error) {
	precision, err := e.Precision()
	if err != nil {
		return math.InfRat{}, err
	}
	//
	coefficient, err := e.coefficient()
	if err != nil {
		return math.InfRat{}, err
	}
	//
	val := e.completion.base.Value(coefficient)
	//
	if precision.Cmp(val) > 0 {
		return val, nil
	}
	//
	return math.InfRat{}, fmt.Errorf("%w: valuation of %s not protected by precision %s", ErrInsufficientPrecision, e, &precision)
}

// Reduction returns the image of this element in the residue field F_p,
// provided the precision bound certifies it: a strictly positive bound means
// further refinement can only change the coefficient by elements of positive
// valuation, which reduce to zero.  Otherwise ErrInsufficientPrecision is
// returned (here refinement would in principle always resolve the answer
// eventually; no retry loop exists).
func (e *LimitElement) Reduction() (*big.Int, error) {
	precision, err := e.Precision()
	if err != nil {
		return nil, err
	}
	//
	coefficient, err := e.coefficient()
	if err != nil {
		return nil, err
	}
	//
	if precision.CmpRat(new(big.Rat)) > 0 {
		return e.completion.base.Reduce(coefficient)
	}
	//
	return nil, fmt.Errorf("%w: reduction of %s not certified by precision %s", ErrInsufficientPrecision, e, &precision)
}

// Equals determines whether this element equals another, pattern-matching on
// the kind of the other element:
//
//   - An exact element provably differs when its valuation-distance to the
//     observed coefficient is below the precision bound.  Any greater
//     distance is indistinguishable from equality at the current precision,
//     so ErrInsufficientPrecision is returned rather than an uncertified
//     answer (in particular, "equal" is never returned here).
//
//   - Another limit element of the same completion is equal exactly when it
//     tracks the same degree of a structurally identical chain; two elements
//     obtained from equal factorizations are indistinguishable.  Elements of
//     completions over different primes fail with ErrIncompatibleDomains.
func (e *LimitElement) Equals(other Element) (bool, error) {
	if !e.completion.Equal(other.Completion()) {
		return false, fmt.Errorf("%w: %s and %s", ErrIncompatibleDomains, e.completion, other.Completion())
	}
	//
	switch o := other.(type) {
	case *BaseElement:
		return e.equalsBase(o)
	case *LimitElement:
		return e.chain.Equal(o.chain) && e.degree == o.degree, nil
	default:
		return false, fmt.Errorf("%w: cannot compare against %s", ErrIncompatibleDomains, other)
	}
}

func (e *LimitElement) equalsBase(other *BaseElement) (bool, error) {
	precision, err := e.Precision()
	if err != nil {
		return false, err
	}
	//
	coefficient, err := e.coefficient()
	if err != nil {
		return false, err
	}
	//
	var diff big.Rat
	//
	diff.Sub(&other.value, coefficient)
	//
	if d := e.completion.base.Value(&diff); d.Cmp(precision) < 0 {
		// Provably distinct within known precision.
		return false, nil
	}
	// Equality could only be certified by refining the chain, which won't
	// terminate if the two are actually equal.
	return false, fmt.Errorf("%w: cannot distinguish %s from %s", ErrInsufficientPrecision, e, other)
}

// NotEquals determines whether this element differs from another.  It fails
// exactly when Equals fails.
func (e *LimitElement) NotEquals(other Element) (bool, error) {
	eq, err := e.Equals(other)
	if err != nil {
		return false, err
	}
	//
	return !eq, nil
}

// Compare always fails with ErrUnsupportedOperator.
func (e *LimitElement) Compare(Element) error {
	return ErrUnsupportedOperator
}

// String renders the known part of this element followed by an explicit
// unknown-remainder marker, e.g. "57 + O(?)".  The coefficient shown is that
// of the chain's initial approximation.
func (e *LimitElement) String() string {
	coefficient := e.chain.InitialApproximation().Phi().Coefficient(e.degree)
	repr := coefficient.RatString()
	//
	if strings.Contains(repr, " ") {
		repr = "(" + repr + ")"
	}
	//
	return repr + " + O(?)"
}

// Read the tracked coefficient off the current approximation's key
// polynomial, validating (lazily) that the degree does not exceed the key
// polynomial's coefficient count.  The leading coefficient itself is
// readable: key polynomials are monic, so it is exactly one.
func (e *LimitElement) coefficient() (*big.Rat, error) {
	phi := e.chain.Approximation().Phi()
	//
	if e.degree > uint(phi.Degree()) {
		return nil, fmt.Errorf("completion: degree %d out of range for key polynomial %s", e.degree, phi)
	}
	//
	return phi.Coefficient(e.degree), nil
}
