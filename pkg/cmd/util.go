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
package cmd

import (
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/consensys/go-maclane/pkg/poly"
	"github.com/consensys/go-maclane/pkg/util/math"
)

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetInt gets an expected int, or panic if an error arises.
func GetInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetString gets an expected string, or panic if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetStringArray gets an expected string array, or panic if an error arises.
func GetStringArray(cmd *cobra.Command, flag string) []string {
	r, err := cmd.Flags().GetStringArray(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// Parse a prime given on the command line.
func parsePrime(input string) (*big.Int, error) {
	var p big.Int
	//
	if _, ok := p.SetString(input, 10); !ok {
		return nil, fmt.Errorf("invalid prime %q", input)
	}
	//
	return &p, nil
}

// Parse a polynomial given on the command line as a comma-separated list of
// rational coefficients in ascending order of degree (e.g. "57,1" for
// x + 57).
func parsePoly(input string) (poly.Poly, error) {
	var coeffs []*big.Rat
	//
	for _, item := range strings.Split(input, ",") {
		var coeff big.Rat
		//
		if _, ok := coeff.SetString(strings.TrimSpace(item)); !ok {
			return poly.Poly{}, fmt.Errorf("invalid coefficient %q", item)
		}
		//
		coeffs = append(coeffs, &coeff)
	}
	//
	return poly.NewPoly(coeffs...), nil
}

// Parse a valuation value given on the command line, which is either a
// rational number or "inf" for positive infinity.
func parseValue(input string) (math.InfRat, error) {
	var val big.Rat
	//
	input = strings.TrimSpace(input)
	//
	if input == "inf" || input == "∞" {
		return math.PosInfinity, nil
	}
	//
	if _, ok := val.SetString(input); !ok {
		return math.InfRat{}, fmt.Errorf("invalid valuation value %q", input)
	}
	//
	return math.NewInfRat(&val), nil
}
