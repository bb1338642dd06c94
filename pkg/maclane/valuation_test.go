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
package maclane

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/consensys/go-maclane/pkg/padic"
	"github.com/consensys/go-maclane/pkg/poly"
	"github.com/consensys/go-maclane/pkg/util/math"
)

func Test_Gauss_01(t *testing.T) {
	gauss := gauss5(t)
	// v(50x^2 + 5x + 75) = min(2, 1, 2) = 1
	checkValue(t, gauss, poly.FromInt64s(75, 5, 50), "1")
	checkValue(t, gauss, poly.FromInt64s(0, 1), "0")
	checkValue(t, gauss, poly.FromInt64s(), "+∞")
}

func Test_Gauss_02(t *testing.T) {
	gauss := gauss5(t)
	//
	mu := gauss.Mu()
	//
	assert.True(t, gauss.Phi().IsGen())
	assert.Equal(t, "0", mu.String())
	assert.Nil(t, gauss.Base())
}

func Test_Augment_01(t *testing.T) {
	v1 := augment(t, gauss5(t), poly.FromInt64s(7, 1), math.NewInfRat64(2, 1))
	// x^2 + 1 == (x+7)^2 - 14*(x+7) + 50, so
	// v1(x^2 + 1) = min(v(50), v(-14) + 2, 0 + 4) = 2
	checkValue(t, v1, poly.FromInt64s(1, 0, 1), "2")
	checkValue(t, v1, poly.FromInt64s(7, 1), "2")
	checkValue(t, v1, poly.FromInt64s(5), "1")
	checkValue(t, v1, poly.FromInt64s(), "+∞")
}

func Test_Augment_02(t *testing.T) {
	// Assigning v(φ) = ∞ declares φ an exact factor
	v1 := augment(t, gauss5(t), poly.FromInt64s(7, 1), math.PosInfinity)
	//
	checkValue(t, v1, poly.FromInt64s(7, 1), "+∞")
	checkValue(t, v1, poly.FromInt64s(1, 0, 1), "2")
}

func Test_Augment_03(t *testing.T) {
	gauss := gauss5(t)
	// Key polynomials must be monic of positive degree
	if _, err := Augment(gauss, poly.FromInt64s(1, 2), math.NewInfRat64(1, 1)); err == nil {
		t.Errorf("accepted non-monic key polynomial")
	}
	//
	if _, err := Augment(gauss, poly.FromInt64s(5), math.NewInfRat64(1, 1)); err == nil {
		t.Errorf("accepted constant key polynomial")
	}
	// μ may not undercut the value the base already assigns
	if _, err := Augment(gauss, poly.FromInt64s(25, 1), math.NewInfRat64(-1, 1)); err == nil {
		t.Errorf("accepted decreasing augmentation")
	}
}

func Test_Augment_Equal_01(t *testing.T) {
	a := augment(t, gauss5(t), poly.FromInt64s(7, 1), math.NewInfRat64(2, 1))
	b := augment(t, gauss5(t), poly.FromInt64s(7, 1), math.NewInfRat64(2, 1))
	c := augment(t, gauss5(t), poly.FromInt64s(7, 1), math.NewInfRat64(3, 1))
	d := augment(t, gauss5(t), poly.FromInt64s(8, 1), math.NewInfRat64(2, 1))
	//
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
	assert.False(t, a.Equal(gauss5(t)))
	assert.False(t, gauss5(t).Equal(a))
}

func Test_Augment_Equal_02(t *testing.T) {
	v7, err := padic.NewValuation(big.NewInt(7))
	assert.NoError(t, err)
	// Same shape over a different prime
	a := augment(t, gauss5(t), poly.FromInt64s(7, 1), math.NewInfRat64(2, 1))
	b := augment(t, NewGauss(v7), poly.FromInt64s(7, 1), math.NewInfRat64(2, 1))
	//
	assert.False(t, a.Equal(b))
}

func gauss5(t *testing.T) *GaussValuation {
	v5, err := padic.NewValuation(big.NewInt(5))
	if err != nil {
		t.Fatal(err)
	}
	//
	return NewGauss(v5)
}

func augment(t *testing.T, base Valuation, phi poly.Poly, mu math.InfRat) *AugmentedValuation {
	v, err := Augment(base, phi, mu)
	if err != nil {
		t.Fatal(err)
	}
	//
	return v
}

func checkValue(t *testing.T, v Valuation, f poly.Poly, expected string) {
	if val := v.Value(f); val.String() != expected {
		t.Errorf("incorrect valuation of %s (was %s, expected %s)", f.String(), val.String(), expected)
	}
}
