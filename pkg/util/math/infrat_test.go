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
	"math/big"
	"testing"
)

func Test_InfRat_Add_01(t *testing.T) {
	a := NewInfRat64(1, 2)
	b := NewInfRat64(1, 3)
	checkEq(t, a.Add(b), "5/6")
}

func Test_InfRat_Add_02(t *testing.T) {
	a := NewInfRat64(1, 2)
	checkEq(t, a.Add(PosInfinity), "+∞")
	checkEq(t, PosInfinity.Add(a), "+∞")
	checkEq(t, PosInfinity.Add(PosInfinity), "+∞")
}

func Test_InfRat_Sub_01(t *testing.T) {
	a := NewInfRat64(3, 1)
	b := NewInfRat64(1, 2)
	checkEq(t, a.Sub(b), "5/2")
	checkEq(t, PosInfinity.Sub(a), "+∞")
}

func Test_InfRat_Neg_01(t *testing.T) {
	a := NewInfRat64(-2, 3)
	checkEq(t, a.Neg(), "2/3")
	checkEq(t, PosInfinity.Neg(), "-∞")
	checkEq(t, NegInfinity.Neg(), "+∞")
}

func Test_InfRat_Scale_01(t *testing.T) {
	a := NewInfRat64(3, 2)
	checkEq(t, a.ScaleUint(4), "6")
	checkEq(t, a.ScaleUint(0), "0")
	checkEq(t, PosInfinity.ScaleUint(2), "+∞")
	// 0 * ∞ == 0 by convention (see ScaleUint)
	checkEq(t, PosInfinity.ScaleUint(0), "0")
}

func Test_InfRat_Cmp_01(t *testing.T) {
	a := NewInfRat64(1, 2)
	b := NewInfRat64(2, 3)
	//
	if a.Cmp(b) >= 0 || b.Cmp(a) <= 0 || a.Cmp(a) != 0 {
		t.Errorf("incorrect finite comparison")
	}
	//
	if a.Cmp(PosInfinity) >= 0 || PosInfinity.Cmp(a) <= 0 {
		t.Errorf("incorrect comparison against +∞")
	}
	//
	if NegInfinity.Cmp(a) >= 0 || PosInfinity.Cmp(PosInfinity) != 0 {
		t.Errorf("incorrect comparison against -∞")
	}
}

func Test_InfRat_CmpRat_01(t *testing.T) {
	a := NewInfRat64(1, 2)
	half := big.NewRat(1, 2)
	zero := new(big.Rat)
	//
	if a.CmpRat(half) != 0 || a.CmpRat(zero) <= 0 {
		t.Errorf("incorrect rational comparison")
	}
	//
	if PosInfinity.CmpRat(zero) <= 0 || NegInfinity.CmpRat(zero) >= 0 {
		t.Errorf("incorrect infinite rational comparison")
	}
}

func Test_InfRat_Min_01(t *testing.T) {
	a := NewInfRat64(1, 2)
	b := NewInfRat64(2, 3)
	checkEq(t, a.Min(b), "1/2")
	checkEq(t, b.Min(a), "1/2")
	checkEq(t, a.Min(PosInfinity), "1/2")
	checkEq(t, NegInfinity.Min(a), "-∞")
}

func Test_InfRat_RatVal_01(t *testing.T) {
	a := NewInfRat64(7, 4)
	val := a.RatVal()
	//
	if val.RatString() != "7/4" {
		t.Errorf("incorrect finite value (was %s)", val.RatString())
	}
	//
	if a.IsFinite() == PosInfinity.IsFinite() {
		t.Errorf("incorrect finiteness")
	}
}

func checkEq(t *testing.T, val InfRat, expected string) {
	if val.String() != expected {
		t.Errorf("incorrect value (was %s, expected %s)", val.String(), expected)
	}
}
