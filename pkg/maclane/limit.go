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
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/consensys/go-maclane/pkg/poly"
	"github.com/consensys/go-maclane/pkg/util/math"
)

// ErrRefinementUnsupported signals that a limit valuation was asked to refine
// its own approximation.  Computing the next augmentation of a chain requires
// the target polynomial being factored and is the responsibility of the
// surrounding factorization machinery; until that is wired up, refinement
// requests fail rather than guess.
var ErrRefinementUnsupported = errors.New("maclane: refinement of limit valuations not implemented")

// LimitValuation represents the limit of an infinite chain of augmented
// valuations v_1, v_2, ... of increasing accuracy.  Only a finite prefix of
// the chain is ever materialised: the valuation holds the approximation it
// was created with and the best approximation currently known.  External
// refinement logic may install strictly better approximations over time via
// Advance; readers always observe the current one.
type LimitValuation struct {
	initial Valuation
	current Valuation
}

// NewLimit constructs a limit valuation from its initial approximation.  The
// approximation must sit over a Gauss valuation at the root of its tower.
func NewLimit(approximation Valuation) (*LimitValuation, error) {
	if Root(approximation) == nil {
		return nil, fmt.Errorf("maclane: approximation %s is not rooted in a Gauss valuation", approximation)
	}
	//
	return &LimitValuation{approximation, approximation}, nil
}

// Approximation returns the best currently known approximation of this limit
// valuation.
func (v *LimitValuation) Approximation() Valuation {
	return v.current
}

// InitialApproximation returns the approximation this limit valuation was
// created with.
func (v *LimitValuation) InitialApproximation() Valuation {
	return v.initial
}

// Value returns the valuation of a given polynomial under the current
// approximation.
func (v *LimitValuation) Value(f poly.Poly) math.InfRat {
	return v.current.Value(f)
}

// Phi returns the key polynomial of the current approximation.
func (v *LimitValuation) Phi() poly.Poly {
	return v.current.Phi()
}

// Root returns the Gauss valuation at the bottom of the current
// approximation's tower.
func (v *LimitValuation) Root() *GaussValuation {
	return Root(v.current)
}

// Refine requests a strictly better approximation to be computed.  This
// always fails with ErrRefinementUnsupported; see that error for why.
func (v *LimitValuation) Refine() error {
	return ErrRefinementUnsupported
}

// Advance installs a strictly better approximation, as computed by external
// refinement logic.  The new approximation must be rooted in the same Gauss
// valuation, its key polynomial degree must not decrease and its value μ must
// strictly increase.
func (v *LimitValuation) Advance(approximation Valuation) error {
	root := Root(approximation)
	//
	switch {
	case root == nil || !root.Equal(v.Root()):
		return fmt.Errorf("maclane: approximation %s is not rooted in %s", approximation, v.Root())
	case approximation.Phi().Degree() < v.current.Phi().Degree():
		return fmt.Errorf("maclane: key polynomial degree decreased from %d to %d",
			v.current.Phi().Degree(), approximation.Phi().Degree())
	default:
		mu, cmu := approximation.Mu(), v.current.Mu()
		//
		if mu.Cmp(cmu) <= 0 {
			return fmt.Errorf("maclane: approximation value %s does not improve on %s", &mu, &cmu)
		}
	}
	//
	log.Debug("advancing approximation from ", v.current, " to ", approximation)
	//
	v.current = approximation
	//
	return nil
}

// Equal determines whether another limit valuation describes the same limit.
// Two limits are considered equal when their initial approximations are
// structurally identical: chains re-derived from equal factorizations of the
// same polynomial produce identical towers and hence compare equal,
// regardless of how far either chain has since been advanced.
func (v *LimitValuation) Equal(other *LimitValuation) bool {
	return other != nil && v.initial.Equal(other.initial)
}

func (v *LimitValuation) String() string {
	return fmt.Sprintf("limit of %s", v.current)
}

// Root walks the tower of a given valuation down to its Gauss valuation,
// returning nil if the tower is not rooted in one.
func Root(v Valuation) *GaussValuation {
	for v != nil {
		if gauss, ok := v.(*GaussValuation); ok {
			return gauss
		}
		//
		v = v.Base()
	}
	//
	return nil
}
