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

// Package padic provides the p-adic valuation on the rationals, which acts as
// the base valuation from which Gauss and augmented valuations on the
// polynomial ring are built.  Its residue field is the prime field F_p.
package padic

import (
	"fmt"
	"math/big"

	"github.com/consensys/go-maclane/pkg/util/math"
)

// Number of Miller-Rabin rounds used when validating a prime.
const primalityRounds = 64

// Valuation is the p-adic valuation v_p on the field of rationals, for a
// given prime p.  For a non-zero rational x = p^k * a/b with p dividing
// neither a nor b, v_p(x) = k; the valuation of zero is positive infinity.
type Valuation struct {
	prime big.Int
}

// NewValuation constructs the p-adic valuation for a given prime p.  An error
// is returned if p is not prime.
func NewValuation(p *big.Int) (*Valuation, error) {
	if p.Cmp(big.NewInt(2)) < 0 || !p.ProbablyPrime(primalityRounds) {
		return nil, fmt.Errorf("padic: %s is not a prime", p.String())
	}
	//
	var v Valuation
	//
	v.prime.Set(p)
	//
	return &v, nil
}

// Value returns the p-adic valuation of a given rational.
func (v *Valuation) Value(x *big.Rat) math.InfRat {
	if x.Sign() == 0 {
		return math.PosInfinity
	}
	// v_p(a/b) = v_p(a) - v_p(b)
	val := multiplicity(x.Num(), &v.prime) - multiplicity(x.Denom(), &v.prime)
	//
	return math.NewInfRat64(val, 1)
}

// Reduce returns the image of a given rational in the residue field F_p.
// This requires the rational to have non-negative valuation, as otherwise its
// denominator is not invertible modulo p.
func (v *Valuation) Reduce(x *big.Rat) (*big.Int, error) {
	var (
		num big.Int
		den big.Int
		res big.Int
	)
	//
	num.Mod(x.Num(), &v.prime)
	den.Mod(x.Denom(), &v.prime)
	//
	if den.Sign() == 0 {
		return nil, fmt.Errorf("padic: %s has negative %s-adic valuation", x.RatString(), v.prime.String())
	}
	// Invert denominator in F_p
	den.ModInverse(&den, &v.prime)
	res.Mul(&num, &den)
	res.Mod(&res, &v.prime)
	//
	return &res, nil
}

// Prime returns (a clone of) the prime underlying this valuation.
func (v *Valuation) Prime() *big.Int {
	var p big.Int
	//
	p.Set(&v.prime)
	//
	return &p
}

// Equal returns true if another valuation is the p-adic valuation for the
// same prime.
func (v *Valuation) Equal(other *Valuation) bool {
	return other != nil && v.prime.Cmp(&other.prime) == 0
}

func (v *Valuation) String() string {
	return fmt.Sprintf("%s-adic valuation", v.prime.String())
}

// Determine the multiplicity of p within a given (non-zero) integer.
func multiplicity(x *big.Int, p *big.Int) int64 {
	var (
		count int64
		quo   big.Int
		rem   big.Int
	)
	//
	quo.Set(x)
	//
	for {
		var next big.Int
		//
		next.QuoRem(&quo, p, &rem)
		//
		if rem.Sign() != 0 {
			return count
		}
		//
		count++
		//
		quo.Set(&next)
	}
}
