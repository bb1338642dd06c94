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
package padic

import (
	"math/big"
	"testing"
)

func Test_Padic_New_01(t *testing.T) {
	if _, err := NewValuation(big.NewInt(5)); err != nil {
		t.Error(err)
	}
	// Composites and non-positive values are rejected
	for _, n := range []int64{4, 1, 0, -5, 91} {
		if _, err := NewValuation(big.NewInt(n)); err == nil {
			t.Errorf("%d accepted as prime", n)
		}
	}
}

func Test_Padic_Value_01(t *testing.T) {
	checkValue(t, 5, "50", "2")
	checkValue(t, 5, "3250", "3")
	checkValue(t, 5, "57", "0")
	checkValue(t, 5, "1/5", "-1")
	checkValue(t, 5, "7/10", "-1")
	checkValue(t, 5, "0", "+∞")
	checkValue(t, 2, "7/10", "-1")
	checkValue(t, 2, "48", "4")
}

func Test_Padic_Reduce_01(t *testing.T) {
	checkReduce(t, 5, "57", "2")
	checkReduce(t, 5, "1/2", "3")
	checkReduce(t, 5, "-1", "4")
	checkReduce(t, 5, "25", "0")
	checkReduce(t, 7, "10/3", "1")
}

func Test_Padic_Reduce_02(t *testing.T) {
	v, err := NewValuation(big.NewInt(5))
	if err != nil {
		t.Fatal(err)
	}
	// Negative valuation has no residue
	var x big.Rat
	//
	x.SetString("3/5")
	//
	if _, err := v.Reduce(&x); err == nil {
		t.Errorf("reduced %s despite negative valuation", x.RatString())
	}
}

func Test_Padic_Equal_01(t *testing.T) {
	v5a, _ := NewValuation(big.NewInt(5))
	v5b, _ := NewValuation(big.NewInt(5))
	v7, _ := NewValuation(big.NewInt(7))
	//
	if !v5a.Equal(v5b) || v5a.Equal(v7) || v5a.Equal(nil) {
		t.Errorf("incorrect valuation equality")
	}
}

func checkValue(t *testing.T, p int64, input string, expected string) {
	v, err := NewValuation(big.NewInt(p))
	if err != nil {
		t.Fatal(err)
	}
	//
	var x big.Rat
	//
	x.SetString(input)
	//
	if val := v.Value(&x); val.String() != expected {
		t.Errorf("incorrect v_%d(%s) (was %s, expected %s)", p, input, val.String(), expected)
	}
}

func checkReduce(t *testing.T, p int64, input string, expected string) {
	v, err := NewValuation(big.NewInt(p))
	if err != nil {
		t.Fatal(err)
	}
	//
	var x big.Rat
	//
	x.SetString(input)
	//
	res, err := v.Reduce(&x)
	//
	if err != nil {
		t.Error(err)
	} else if res.String() != expected {
		t.Errorf("incorrect reduction of %s mod %d (was %s, expected %s)", input, p, res.String(), expected)
	}
}
