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
package math

import (
	"fmt"
	"math/big"
)

const notAnInfinity = 0
const negativeInfinity = 1
const positiveInfinity = 2

// PosInfinity represents positive infinity, which arises as the valuation of
// zero.
var PosInfinity = InfRat{big.Rat{}, positiveInfinity}

// NegInfinity represents negative infinity.
var NegInfinity = InfRat{big.Rat{}, negativeInfinity}

// InfRat represents an arbitrary-precision rational value which can,
// additionally, be either negative or positive infinity.  Values of a
// (discrete or rational-valued) valuation live in exactly this set: the value
// group extended by a maximal element for the valuation of zero.  The zero
// value of InfRat is the finite rational zero.
type InfRat struct {
	// value of this rational, ignored when this is a form of infinity.
	val big.Rat
	// sign indicates whether we are not an infinity, or are negative or
	// positive infinity.
	sign uint8
}

// NewInfRat constructs a finite value from a given rational, cloning the
// underlying rational.
func NewInfRat(val *big.Rat) InfRat {
	var clone big.Rat
	//
	clone.Set(val)
	//
	return InfRat{clone, notAnInfinity}
}

// NewInfRat64 constructs a finite value num/den from machine integers.
func NewInfRat64(num int64, den int64) InfRat {
	var val big.Rat
	//
	val.SetFrac64(num, den)
	//
	return InfRat{val, notAnInfinity}
}

// Add two (potentially infinite) rationals together.  Adding two infinities of
// opposite sign is undefined and panics.
func (p *InfRat) Add(other InfRat) InfRat {
	var val big.Rat
	//
	switch {
	case p.sign == notAnInfinity && other.sign == notAnInfinity:
		val.Add(&p.val, &other.val)
		//
		return InfRat{val, notAnInfinity}
	case p.sign == notAnInfinity:
		return other
	case other.sign == notAnInfinity || p.sign == other.sign:
		return *p
	default:
		panic("cannot add infinities of opposite sign")
	}
}

// Sub subtracts a (potentially infinite) value from this (potentially
// infinite) value.
func (p *InfRat) Sub(other InfRat) InfRat {
	neg := other.Neg()
	return p.Add(neg)
}

// Neg negates this (potentially infinite) rational.
func (p *InfRat) Neg() InfRat {
	switch p.sign {
	case positiveInfinity:
		return NegInfinity
	case negativeInfinity:
		return PosInfinity
	default:
		var val big.Rat
		//
		val.Neg(&p.val)
		//
		return InfRat{val, notAnInfinity}
	}
}

// ScaleUint multiplies this value by a non-negative machine integer.  Scaling
// by zero always yields finite zero, including for infinities (this is the
// convention required by the minimum formula for valuations of φ-adic
// expansions, where the zeroth term carries no multiple of μ).
func (p *InfRat) ScaleUint(n uint) InfRat {
	if n == 0 {
		return InfRat{}
	}
	//
	if p.sign != notAnInfinity {
		return *p
	}
	//
	var val big.Rat
	//
	val.SetUint64(uint64(n))
	val.Mul(&val, &p.val)
	//
	return InfRat{val, notAnInfinity}
}

// Cmp performs a comparison of two (potentially infinite) rational values.
func (p *InfRat) Cmp(o InfRat) int {
	switch {
	case p.sign == notAnInfinity && o.sign == notAnInfinity:
		return p.val.Cmp(&o.val)
	case p.sign == o.sign:
		return 0
	case p.sign == negativeInfinity || o.sign == positiveInfinity:
		return -1
	case p.sign == positiveInfinity || o.sign == negativeInfinity:
		return 1
	default:
		panic(fmt.Sprintf("unreachable (%s ~ %s)", p.String(), o.String()))
	}
}

// CmpRat compares a potentially infinite value against a finite rational
// value.
func (p *InfRat) CmpRat(other *big.Rat) int {
	switch p.sign {
	case notAnInfinity:
		return p.val.Cmp(other)
	case negativeInfinity:
		return -1
	case positiveInfinity:
		return 1
	default:
		panic(fmt.Sprintf("unreachable (%s ~ %s)", p.String(), other.String()))
	}
}

// Min determines the least of two values.
func (p *InfRat) Min(o InfRat) InfRat {
	if p.Cmp(o) <= 0 {
		return *p
	}
	//
	return o
}

// IsFinite returns true if this represents a finite rational value.
func (p *InfRat) IsFinite() bool {
	return p.sign == notAnInfinity
}

// RatVal converts a potentially infinite value into a finite rational.  This
// will panic if this value is an infinity.
func (p *InfRat) RatVal() big.Rat {
	if p.sign != notAnInfinity {
		panic("cannot cast infinity into a rational")
	}
	//
	return p.val
}

// Set this to match some (potentially infinite) rational.  Observe this will
// clone the underlying rational if the value is finite.
func (p *InfRat) Set(other InfRat) {
	var val big.Rat
	// Clone rational
	val.Set(&other.val)
	//
	p.val = val
	p.sign = other.sign
}

// SetRat sets this to match a finite rational.  Observe this will clone the
// underlying rational.
func (p *InfRat) SetRat(other *big.Rat) {
	var val big.Rat
	// Clone rational
	val.Set(other)
	//
	p.val = val
	p.sign = notAnInfinity
}

func (p *InfRat) String() string {
	switch p.sign {
	case negativeInfinity:
		return "-∞"
	case positiveInfinity:
		return "+∞"
	default:
		return p.val.RatString()
	}
}
