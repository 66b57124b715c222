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

package types

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelevantMasks(t *testing.T) {
	// the relevant mask excludes the edge squares of each ray
	assert.Equal(t, 12, GetMaskBb(Rook, SqA1).PopCount())
	assert.Equal(t, 10, GetMaskBb(Rook, SqE4).PopCount())
	assert.Equal(t, 6, GetMaskBb(Bishop, SqA1).PopCount())
	assert.Equal(t, 9, GetMaskBb(Bishop, SqE4).PopCount())

	// a rook on e4 is not blocked by pieces on the board edge
	mask := GetMaskBb(Rook, SqE4)
	assert.False(t, mask.Has(SqE1))
	assert.False(t, mask.Has(SqE8))
	assert.False(t, mask.Has(SqA4))
	assert.False(t, mask.Has(SqH4))
	assert.True(t, mask.Has(SqE2))
	assert.True(t, mask.Has(SqB4))

	for sq := SqA8; sq < SqNone; sq++ {
		require.LessOrEqual(t, GetMaskBb(Rook, sq).PopCount(), 12)
		require.LessOrEqual(t, GetMaskBb(Bishop, sq).PopCount(), 9)
	}
}

// For every square and every possible masked blocker subset the magic
// indexed attack table must reproduce the attack set computed by
// walking the rays.
func TestMagicTablesAgainstRayAttacks(t *testing.T) {
	for _, k := range []PieceKind{Rook, Bishop} {
		for sq := SqA8; sq < SqNone; sq++ {
			mask := GetMaskBb(k, sq)
			// Carry-Rippler enumeration of all subsets of the mask
			b := BbZero
			for {
				require.Equal(t, RayAttacksBb(k, sq, b), GetAttacksBb(k, sq, b),
					"attacks differ for kind %d on %s with blockers %s", k, sq.String(), b.String())
				b = (b - mask) & mask
				if b == 0 {
					break
				}
			}
		}
	}
}

// The magic lookup must also agree with the ray walker for arbitrary
// full occupancies - bits outside the relevant mask never change the
// attack set.
func TestMagicTablesRandomOccupancy(t *testing.T) {
	rnd := rand.New(rand.NewSource(4711))
	for i := 0; i < 10_000; i++ {
		occ := Bitboard(rnd.Uint64()) & Bitboard(rnd.Uint64())
		sq := Square(rnd.Intn(SqLength))
		require.Equal(t, RayAttacksBb(Rook, sq, occ), GetAttacksBb(Rook, sq, occ))
		require.Equal(t, RayAttacksBb(Bishop, sq, occ), GetAttacksBb(Bishop, sq, occ))
		require.Equal(t, RayAttacksBb(Queen, sq, occ), GetAttacksBb(Queen, sq, occ))
	}
}

func TestRayAttacksBlocker(t *testing.T) {
	// the first blocker on a ray is included in the attack set,
	// squares behind it are not
	occ := SqE6.Bb()
	attacks := RayAttacksBb(Rook, SqE2, occ)
	assert.True(t, attacks.Has(SqE6))
	assert.False(t, attacks.Has(SqE7))
	assert.False(t, attacks.Has(SqE8))
	assert.True(t, attacks.Has(SqE3))
	assert.True(t, attacks.Has(SqA2))
	assert.True(t, attacks.Has(SqH2))
}

func TestMagicInitIdempotent(t *testing.T) {
	magic := rookMagics[SqE4].Magic
	Init()
	Init()
	assert.Equal(t, magic, rookMagics[SqE4].Magic)
}
