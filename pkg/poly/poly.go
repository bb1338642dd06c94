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
package poly

import (
	"math/big"
	"strconv"
	"strings"
)

// Poly is a dense univariate polynomial over the rationals.  Coefficients are
// stored in ascending order of degree, with no trailing zero coefficients.
// Polynomials are immutable values: every operation returns a fresh
// polynomial, and an uninitialised Poly corresponds with zero.
type Poly struct {
	coeffs []big.Rat
}

// NewPoly constructs a polynomial from its coefficients, given in ascending
// order of degree.  The coefficients are cloned.
func NewPoly(coeffs ...*big.Rat) Poly {
	ncoeffs := make([]big.Rat, len(coeffs))
	//
	for i, c := range coeffs {
		ncoeffs[i].Set(c)
	}
	//
	return Poly{trim(ncoeffs)}
}

// FromInt64s constructs a polynomial with integer coefficients, given in
// ascending order of degree.
func FromInt64s(coeffs ...int64) Poly {
	ncoeffs := make([]big.Rat, len(coeffs))
	//
	for i, c := range coeffs {
		ncoeffs[i].SetInt64(c)
	}
	//
	return Poly{trim(ncoeffs)}
}

// Gen returns the generator of the polynomial ring (i.e. the polynomial x).
func Gen() Poly {
	return FromInt64s(0, 1)
}

// Degree returns the degree of this polynomial, where the zero polynomial has
// degree -1.
func (p Poly) Degree() int {
	return len(p.coeffs) - 1
}

// Coefficient returns (a clone of) the ith coefficient of this polynomial.
// Indices beyond the degree yield zero.
func (p Poly) Coefficient(ith uint) *big.Rat {
	var val big.Rat
	//
	if ith < uint(len(p.coeffs)) {
		val.Set(&p.coeffs[ith])
	}
	//
	return &val
}

// LeadingCoefficient returns (a clone of) the coefficient of the highest
// degree term.  This will panic on the zero polynomial.
func (p Poly) LeadingCoefficient() *big.Rat {
	if len(p.coeffs) == 0 {
		panic("zero polynomial has no leading coefficient")
	}
	//
	return p.Coefficient(uint(len(p.coeffs) - 1))
}

// IsZero returns true if this is the zero polynomial.
func (p Poly) IsZero() bool {
	return len(p.coeffs) == 0
}

// IsGen returns true if this polynomial is the generator x of the ring.
func (p Poly) IsGen() bool {
	return p.Degree() == 1 && p.coeffs[0].Sign() == 0 && isOne(&p.coeffs[1])
}

// IsMonic returns true if the leading coefficient of this polynomial is one.
// The zero polynomial is not monic.
func (p Poly) IsMonic() bool {
	return len(p.coeffs) > 0 && isOne(&p.coeffs[len(p.coeffs)-1])
}

// Add another polynomial onto this polynomial.
func (p Poly) Add(other Poly) Poly {
	n := max(len(p.coeffs), len(other.coeffs))
	ncoeffs := make([]big.Rat, n)
	//
	for i := range ncoeffs {
		if i < len(p.coeffs) {
			ncoeffs[i].Add(&ncoeffs[i], &p.coeffs[i])
		}
		//
		if i < len(other.coeffs) {
			ncoeffs[i].Add(&ncoeffs[i], &other.coeffs[i])
		}
	}
	//
	return Poly{trim(ncoeffs)}
}

// Sub another polynomial from this polynomial.
func (p Poly) Sub(other Poly) Poly {
	n := max(len(p.coeffs), len(other.coeffs))
	ncoeffs := make([]big.Rat, n)
	//
	for i := range ncoeffs {
		if i < len(p.coeffs) {
			ncoeffs[i].Add(&ncoeffs[i], &p.coeffs[i])
		}
		//
		if i < len(other.coeffs) {
			ncoeffs[i].Sub(&ncoeffs[i], &other.coeffs[i])
		}
	}
	//
	return Poly{trim(ncoeffs)}
}

// Mul this polynomial by another polynomial.
func (p Poly) Mul(other Poly) Poly {
	if p.IsZero() || other.IsZero() {
		return Poly{}
	}
	//
	ncoeffs := make([]big.Rat, len(p.coeffs)+len(other.coeffs)-1)
	//
	for i := range p.coeffs {
		for j := range other.coeffs {
			var tmp big.Rat
			//
			tmp.Mul(&p.coeffs[i], &other.coeffs[j])
			ncoeffs[i+j].Add(&ncoeffs[i+j], &tmp)
		}
	}
	//
	return Poly{trim(ncoeffs)}
}

// QuoRem divides this polynomial by a given (non-zero) divisor, returning the
// quotient and remainder, such that p = quo*divisor + rem with
// deg(rem) < deg(divisor).  This will panic on a zero divisor.
func (p Poly) QuoRem(divisor Poly) (Poly, Poly) {
	if divisor.IsZero() {
		panic("polynomial division by zero")
	}
	//
	var (
		quo  = make([]big.Rat, 0)
		rem  = clone(p.coeffs)
		dlen = len(divisor.coeffs)
	)
	//
	for len(rem) >= dlen {
		var factor big.Rat
		// Determine factor eliminating the leading term
		factor.Quo(&rem[len(rem)-1], &divisor.coeffs[dlen-1])
		//
		shift := len(rem) - dlen
		// Record factor at its degree within the quotient
		quo = growTo(quo, shift+1)
		quo[shift].Set(&factor)
		// Subtract factor * x^shift * divisor from the remainder
		for i := 0; i < dlen; i++ {
			var tmp big.Rat
			//
			tmp.Mul(&factor, &divisor.coeffs[i])
			rem[shift+i].Sub(&rem[shift+i], &tmp)
		}
		//
		rem = trim(rem[:len(rem)-1])
	}
	//
	return Poly{trim(quo)}, Poly{rem}
}

// Expand computes the φ-adic expansion of this polynomial with respect to a
// given key polynomial φ of degree at least one.  That is, the unique
// sequence of coefficient polynomials a_0 ... a_k with deg(a_i) < deg(φ) such
// that p = Σ a_i·φ^i.
func (p Poly) Expand(phi Poly) []Poly {
	if phi.Degree() < 1 {
		panic("φ-adic expansion requires deg(φ) >= 1")
	}
	//
	var (
		expansion []Poly
		rem       Poly
		quo       = p
	)
	//
	for {
		quo, rem = quo.QuoRem(phi)
		expansion = append(expansion, rem)
		//
		if quo.IsZero() {
			return expansion
		}
	}
}

// Equal returns true if this polynomial has exactly the same coefficients as
// another.
func (p Poly) Equal(other Poly) bool {
	if len(p.coeffs) != len(other.coeffs) {
		return false
	}
	//
	for i := range p.coeffs {
		if p.coeffs[i].Cmp(&other.coeffs[i]) != 0 {
			return false
		}
	}
	//
	return true
}

// String constructs a human-readable representation of this polynomial, such
// as "x^2 + 57*x + 1", with terms in descending order of degree.
func (p Poly) String() string {
	if p.IsZero() {
		return "0"
	}
	//
	var buf strings.Builder
	//
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		coeff := &p.coeffs[i]
		//
		if coeff.Sign() == 0 {
			continue
		}
		// Separator and sign
		if buf.Len() == 0 {
			if coeff.Sign() < 0 {
				buf.WriteString("-")
			}
		} else if coeff.Sign() < 0 {
			buf.WriteString(" - ")
		} else {
			buf.WriteString(" + ")
		}
		//
		var abs big.Rat
		//
		abs.Abs(coeff)
		// Various cases to improve readability
		switch {
		case i == 0:
			buf.WriteString(abs.RatString())
		case isOne(&abs):
			buf.WriteString(pow(i))
		default:
			buf.WriteString(abs.RatString())
			buf.WriteString("*")
			buf.WriteString(pow(i))
		}
	}
	//
	return buf.String()
}

func pow(i int) string {
	if i == 1 {
		return "x"
	}
	//
	return "x^" + strconv.Itoa(i)
}

func isOne(val *big.Rat) bool {
	return val.Num().IsInt64() && val.Num().Int64() == 1 && val.IsInt()
}

// Remove any trailing zero coefficients, ensuring the canonical form on which
// Degree and Equal rely.
func trim(coeffs []big.Rat) []big.Rat {
	n := len(coeffs)
	//
	for n > 0 && coeffs[n-1].Sign() == 0 {
		n--
	}
	//
	return coeffs[:n]
}

func clone(coeffs []big.Rat) []big.Rat {
	ncoeffs := make([]big.Rat, len(coeffs))
	//
	for i := range coeffs {
		ncoeffs[i].Set(&coeffs[i])
	}
	//
	return ncoeffs
}

func growTo(coeffs []big.Rat, n int) []big.Rat {
	for len(coeffs) < n {
		coeffs = append(coeffs, big.Rat{})
	}
	//
	return coeffs
}
