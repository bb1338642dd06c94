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
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ParsePoly_01(t *testing.T) {
	p, err := parsePoly("57,1")
	assert.NoError(t, err)
	assert.Equal(t, "x + 57", p.String())
	//
	p, err = parsePoly(" 1/2, 0, 1 ")
	assert.NoError(t, err)
	assert.Equal(t, "x^2 + 1/2", p.String())
	//
	_, err = parsePoly("57,x")
	assert.Error(t, err)
}

func Test_ParseValue_01(t *testing.T) {
	val, err := parseValue("3/2")
	assert.NoError(t, err)
	assert.Equal(t, "3/2", val.String())
	//
	val, err = parseValue("inf")
	assert.NoError(t, err)
	assert.False(t, val.IsFinite())
	//
	_, err = parseValue("three")
	assert.Error(t, err)
}

func Test_ParsePrime_01(t *testing.T) {
	p, err := parsePrime("5")
	assert.NoError(t, err)
	assert.Equal(t, "5", p.String())
	//
	_, err = parsePrime("five")
	assert.Error(t, err)
}
