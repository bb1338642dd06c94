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
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/consensys/go-maclane/pkg/completion"
	"github.com/consensys/go-maclane/pkg/maclane"
	"github.com/consensys/go-maclane/pkg/util/math"
)

// inspectCmd builds an approximation chain from explicitly given augmentation
// steps and reports everything that is certifiably known about the limit
// elements tracking its key polynomial coefficients.
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Inspect the limit elements of an approximation chain.",
	Long: `Build a MacLane approximation chain over a p-adic base from the given
	 augmentation steps, and report the display form, precision, valuation and
	 residue of the limit elements tracking its key polynomial coefficients.
	 Operations which cannot be certified at the chain's current precision are
	 reported as such rather than guessed.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		chain, field := buildChain(cmd)
		degree := GetInt(cmd, "degree")
		//
		fmt.Printf("chain: %s\n", chain)
		//
		if degree >= 0 {
			inspectElement(field, chain, uint(degree))
		} else {
			// All coefficients of the current key polynomial
			for d := 0; d < chain.Phi().Degree(); d++ {
				inspectElement(field, chain, uint(d))
			}
		}
	},
}

// Construct the approximation chain described by the command-line flags,
// together with the completion its limit elements live in.
func buildChain(cmd *cobra.Command) (*maclane.LimitValuation, *completion.Completion) {
	var approximation maclane.Valuation
	//
	prime, err := parsePrime(GetString(cmd, "prime"))
	if err != nil {
		bail(err)
	}
	//
	field, err := completion.NewCompletion(prime)
	if err != nil {
		bail(err)
	}
	//
	phis := GetStringArray(cmd, "phi")
	mus := GetStringArray(cmd, "mu")
	//
	if len(phis) == 0 || len(phis) != len(mus) {
		bail(fmt.Errorf("expected matching --phi and --mu flags (got %d and %d)", len(phis), len(mus)))
	}
	//
	approximation = maclane.NewGauss(field.Base())
	// Build the augmentation tower bottom up
	for i := range phis {
		phi, err := parsePoly(phis[i])
		if err != nil {
			bail(err)
		}
		//
		mu, err := parseValue(mus[i])
		if err != nil {
			bail(err)
		}
		//
		log.Debug("augmenting ", approximation, " by v(", phi, ") = ", &mu)
		//
		if approximation, err = maclane.Augment(approximation, phi, mu); err != nil {
			bail(err)
		}
	}
	//
	chain, err := maclane.NewLimit(approximation)
	if err != nil {
		bail(err)
	}
	//
	return chain, field
}

// Report everything certifiably known about one limit element.
func inspectElement(field *completion.Completion, chain *maclane.LimitValuation, degree uint) {
	element := completion.NewLimitElement(field, chain, degree)
	//
	rows := [][2]string{
		{"element", element.String()},
		{"precision", render(element.Precision())},
		{"valuation", render(element.Valuation())},
	}
	//
	if reduction, err := element.Reduction(); err != nil {
		rows = append(rows, [2]string{"reduction", err.Error()})
	} else {
		rows = append(rows, [2]string{"reduction", reduction.String()})
	}
	//
	fmt.Printf("coefficient %d:\n", degree)
	printRows(rows)
}

func render(val math.InfRat, err error) string {
	if err != nil {
		return err.Error()
	}
	//
	return val.String()
}

// Print key/value rows, aligning the values when stdout is a terminal.
func printRows(rows [][2]string) {
	width := 0
	// Align only for human eyes
	if term.IsTerminal(int(os.Stdout.Fd())) {
		for _, row := range rows {
			width = max(width, len(row[0]))
		}
	}
	//
	for _, row := range rows {
		padding := strings.Repeat(" ", max(0, width-len(row[0])))
		fmt.Printf("  %s:%s %s\n", row[0], padding, row[1])
	}
}

func bail(err error) {
	fmt.Println(err)
	os.Exit(2)
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().String("prime", "2", "prime of the p-adic base valuation")
	inspectCmd.Flags().StringArray("phi", nil,
		"key polynomial as comma-separated rational coefficients, ascending degree (repeatable)")
	inspectCmd.Flags().StringArray("mu", nil,
		"value assigned to the corresponding key polynomial, a rational or \"inf\" (repeatable)")
	inspectCmd.Flags().Int("degree", -1, "coefficient to inspect (default: all)")
}
