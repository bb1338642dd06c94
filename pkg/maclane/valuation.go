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

// Package maclane provides inductive (MacLane) valuations on the rational
// polynomial ring: the Gauss valuation induced by a p-adic base valuation,
// augmented valuations [v, v(φ) = μ] built on top of it, and limit valuations
// representing an entire chain of increasingly accurate augmentations.
package maclane

import (
	"fmt"

	"github.com/consensys/go-maclane/pkg/padic"
	"github.com/consensys/go-maclane/pkg/poly"
	"github.com/consensys/go-maclane/pkg/util/math"
)

// Valuation on the polynomial ring over the rationals.  Every valuation in a
// MacLane chain is characterised by its key polynomial φ and the value
// μ = v(φ) assigned to it, together with the predecessor valuation it was
// built from (nil for the Gauss valuation at the root of every chain).
type Valuation interface {
	// Value returns the valuation of a given polynomial.
	Value(f poly.Poly) math.InfRat
	// Phi returns the key polynomial of this valuation.
	Phi() poly.Poly
	// Mu returns the value v(φ) this valuation assigns to its key
	// polynomial.
	Mu() math.InfRat
	// Base returns the predecessor valuation, or nil for a Gauss valuation.
	Base() Valuation
	// Equal determines whether another valuation is structurally identical
	// to this one (same base prime, same tower of augmentations).
	Equal(other Valuation) bool
	//
	String() string
}

// GaussValuation is the valuation on the polynomial ring induced by a p-adic
// valuation on the rationals: the valuation of a polynomial is the minimum of
// the valuations of its coefficients.  It is the root of every MacLane chain,
// with key polynomial x and v(x) = 0.
type GaussValuation struct {
	base *padic.Valuation
}

// NewGauss constructs the Gauss valuation induced by a given p-adic
// valuation.
func NewGauss(base *padic.Valuation) *GaussValuation {
	return &GaussValuation{base}
}

// Value returns the minimum of the p-adic valuations of the coefficients of a
// given polynomial.
func (v *GaussValuation) Value(f poly.Poly) math.InfRat {
	val := math.PosInfinity
	//
	for i := 0; i <= f.Degree(); i++ {
		ith := v.base.Value(f.Coefficient(uint(i)))
		val = val.Min(ith)
	}
	//
	return val
}

// Phi returns the generator x, the key polynomial of the Gauss valuation.
func (v *GaussValuation) Phi() poly.Poly {
	return poly.Gen()
}

// Mu returns zero, since the Gauss valuation assigns v(x) = 0.
func (v *GaussValuation) Mu() math.InfRat {
	return math.InfRat{}
}

// Base returns nil, since the Gauss valuation is the root of every chain.
func (v *GaussValuation) Base() Valuation {
	return nil
}

// BaseValuation returns the p-adic valuation inducing this Gauss valuation.
func (v *GaussValuation) BaseValuation() *padic.Valuation {
	return v.base
}

// Equal determines whether another valuation is the Gauss valuation for the
// same prime.
func (v *GaussValuation) Equal(other Valuation) bool {
	if o, ok := other.(*GaussValuation); ok {
		return v.base.Equal(o.base)
	}
	//
	return false
}

func (v *GaussValuation) String() string {
	return fmt.Sprintf("Gauss valuation induced by %s", v.base)
}

// AugmentedValuation is the valuation [v, v(φ) = μ] obtained by assigning a
// (strictly larger) value μ to a key polynomial φ over a base valuation v.
// The valuation of an arbitrary polynomial f is determined from its φ-adic
// expansion f = Σ a_i·φ^i as the minimum of v(a_i) + i·μ.
type AugmentedValuation struct {
	base Valuation
	phi  poly.Poly
	mu   math.InfRat
}

// Augment constructs the valuation [base, v(φ) = μ].  The key polynomial
// must be monic of degree at least one, and μ must not be smaller than the
// value the base valuation already assigns to φ.
func Augment(base Valuation, phi poly.Poly, mu math.InfRat) (*AugmentedValuation, error) {
	if phi.Degree() < 1 || !phi.IsMonic() {
		return nil, fmt.Errorf("maclane: key polynomial %s is not monic of positive degree", phi)
	}
	//
	if val := base.Value(phi); mu.Cmp(val) < 0 {
		return nil, fmt.Errorf("maclane: value %s of key polynomial below %s assigned by base valuation", &mu, &val)
	}
	//
	return &AugmentedValuation{base, phi, mu}, nil
}

// Value returns the valuation of a given polynomial, as the minimum over the
// terms of its φ-adic expansion.
func (v *AugmentedValuation) Value(f poly.Poly) math.InfRat {
	if f.IsZero() {
		return math.PosInfinity
	}
	//
	val := math.PosInfinity
	// v(f) = min_i v(a_i) + i·μ
	for i, ith := range f.Expand(v.phi) {
		term := v.base.Value(ith)
		scaled := v.mu.ScaleUint(uint(i))
		term = term.Add(scaled)
		//
		val = val.Min(term)
	}
	//
	return val
}

// Phi returns the key polynomial of this valuation.
func (v *AugmentedValuation) Phi() poly.Poly {
	return v.phi
}

// Mu returns the value v(φ) assigned to the key polynomial.
func (v *AugmentedValuation) Mu() math.InfRat {
	return v.mu
}

// Base returns the valuation this augmentation was built from.
func (v *AugmentedValuation) Base() Valuation {
	return v.base
}

// Equal determines whether another valuation is an augmentation with the same
// key polynomial and value over a structurally equal base.
func (v *AugmentedValuation) Equal(other Valuation) bool {
	if o, ok := other.(*AugmentedValuation); ok {
		omu := o.mu
		//
		return v.phi.Equal(o.phi) && v.mu.Cmp(omu) == 0 && v.base.Equal(o.base)
	}
	//
	return false
}

func (v *AugmentedValuation) String() string {
	return fmt.Sprintf("[ %s, v(%s) = %s ]", v.base, v.phi, &v.mu)
}
