/*
 * MoveGenGo - a bitboard chess move generator in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAbs(t *testing.T) {
	assert.Equal(t, 5, Abs(-5))
	assert.Equal(t, 5, Abs(5))
	assert.Equal(t, 0, Abs(0))
}

func TestMinMax(t *testing.T) {
	assert.Equal(t, 3, Min(3, 7))
	assert.Equal(t, 7, Max(3, 7))
	assert.Equal(t, -7, Min(-3, -7))
	assert.Equal(t, -3, Max(-3, -7))
}

func TestNps(t *testing.T) {
	assert.Equal(t, uint64(0), Nps(0, time.Second))
	// zero duration does not divide by zero
	assert.NotPanics(t, func() { Nps(1_000, 0) })
	nps := Nps(1_000_000, time.Second)
	assert.InDelta(t, 1_000_000, float64(nps), 10)
}

func TestResolveFile(t *testing.T) {
	// this test file itself is resolvable relative to the working directory
	path, err := ResolveFile("util_test.go")
	assert.NoError(t, err)
	assert.NotEmpty(t, path)

	_, err = ResolveFile("this_file_does_not_exist.xyz")
	assert.Error(t, err)
}
