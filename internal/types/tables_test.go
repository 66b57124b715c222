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
	"testing"

	"github.com/stretchr/testify/assert"
)

// reference computation of a leaper neighborhood based on row and
// column deltas - deliberately a different approach than the table
// builder which works on square index offsets and file masks
func referenceLeaper(sq Square, deltas [][2]int) Bitboard {
	bb := BbZero
	row, col := sq.RowOf(), int(sq.FileOf())
	for _, d := range deltas {
		r, c := row+d[0], col+d[1]
		if r < 0 || r > 7 || c < 0 || c > 7 {
			continue
		}
		bb |= Square(r*8 + c).Bb()
	}
	return bb
}

var knightDeltas = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
var kingDeltas = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}

func TestKnightTable(t *testing.T) {
	for sq := SqA8; sq < SqNone; sq++ {
		assert.Equal(t, referenceLeaper(sq, knightDeltas), GetAttacksBb(Knight, sq, BbZero),
			"knight attacks differ on %s", sq.String())
	}
}

func TestKnightCorner(t *testing.T) {
	// a knight in a corner has exactly 2 moves
	assert.Equal(t, 2, GetAttacksBb(Knight, SqA8, BbZero).PopCount())
	assert.Equal(t, 2, GetAttacksBb(Knight, SqH8, BbZero).PopCount())
	assert.Equal(t, 2, GetAttacksBb(Knight, SqA1, BbZero).PopCount())
	assert.Equal(t, 2, GetAttacksBb(Knight, SqH1, BbZero).PopCount())
	// no wrap to the other side of the board
	assert.Equal(t, SqB6.Bb()|SqC7.Bb(), GetAttacksBb(Knight, SqA8, BbZero))
}

func TestKingTable(t *testing.T) {
	for sq := SqA8; sq < SqNone; sq++ {
		assert.Equal(t, referenceLeaper(sq, kingDeltas), GetAttacksBb(King, sq, BbZero),
			"king attacks differ on %s", sq.String())
	}
	assert.Equal(t, 3, GetAttacksBb(King, SqA1, BbZero).PopCount())
	assert.Equal(t, 8, GetAttacksBb(King, SqE4, BbZero).PopCount())
}

func TestPawnAttackTable(t *testing.T) {
	// white pawns attack towards the low indexes
	whiteDeltas := [][2]int{{-1, -1}, {-1, 1}}
	blackDeltas := [][2]int{{1, -1}, {1, 1}}
	for sq := SqA8; sq < SqNone; sq++ {
		assert.Equal(t, referenceLeaper(sq, whiteDeltas), GetPawnAttacks(White, sq),
			"white pawn attacks differ on %s", sq.String())
		assert.Equal(t, referenceLeaper(sq, blackDeltas), GetPawnAttacks(Black, sq),
			"black pawn attacks differ on %s", sq.String())
	}
	assert.Equal(t, SqD3.Bb()|SqF3.Bb(), GetPawnAttacks(White, SqE2))
	assert.Equal(t, SqD6.Bb()|SqF6.Bb(), GetPawnAttacks(Black, SqE7))
	// no file wrap on the borders
	assert.Equal(t, SqB3.Bb(), GetPawnAttacks(White, SqA2))
	assert.Equal(t, SqG6.Bb(), GetPawnAttacks(Black, SqH7))
}

func TestPawnPushTables(t *testing.T) {
	// unblocked pawn on the starting rank: single and double push
	assert.Equal(t, SqE3.Bb()|SqE4.Bb(), GetPawnPushes(White, SqE2, false))
	assert.Equal(t, SqE6.Bb()|SqE5.Bb(), GetPawnPushes(Black, SqE7, false))
	// double push square blocked: single push only
	assert.Equal(t, SqE3.Bb(), GetPawnPushes(White, SqE2, true))
	assert.Equal(t, SqE6.Bb(), GetPawnPushes(Black, SqE7, true))
	// not on the starting rank: single push only
	assert.Equal(t, SqE4.Bb(), GetPawnPushes(White, SqE3, false))
	assert.Equal(t, SqE5.Bb(), GetPawnPushes(Black, SqE6, false))
}

func TestRookOnEmptyBoard(t *testing.T) {
	// a rook on an empty board attacks its full rank and file
	assert.Equal(t, 14, GetAttacksBb(Rook, SqA1, BbZero).PopCount())
	assert.Equal(t, 14, GetAttacksBb(Rook, SqE4, BbZero).PopCount())
	assert.Equal(t, (FileA_Bb|Rank1_Bb)&^SqA1.Bb(), GetAttacksBb(Rook, SqA1, BbZero))
}

func TestBishopOnEmptyBoard(t *testing.T) {
	assert.Equal(t, 7, GetAttacksBb(Bishop, SqA1, BbZero).PopCount())
	assert.Equal(t, 13, GetAttacksBb(Bishop, SqE4, BbZero).PopCount())
}

func TestQueenIsRookPlusBishop(t *testing.T) {
	occ := SqE6.Bb() | SqC4.Bb() | SqG2.Bb()
	for _, sq := range []Square{SqA1, SqE4, SqH8, SqD5} {
		assert.Equal(t,
			GetAttacksBb(Rook, sq, occ)|GetAttacksBb(Bishop, sq, occ),
			GetAttacksBb(Queen, sq, occ))
	}
}
