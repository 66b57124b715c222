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

package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/frankkopp/MoveGenGo/internal/types"
)

func TestStartFen(t *testing.T) {
	s, c, err := NewStateFen(StartFen)
	require.NoError(t, err)
	assert.Equal(t, White, c)
	assert.Equal(t, NewState(), s)
}

func TestFenKiwipete(t *testing.T) {
	s, c, err := NewStateFen("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -")
	require.NoError(t, err)
	assert.Equal(t, White, c)
	assert.True(t, s.LongCastle[White])
	assert.True(t, s.ShortCastle[White])
	assert.True(t, s.LongCastle[Black])
	assert.True(t, s.ShortCastle[Black])
	assert.Equal(t, SqE1, s.KingSquare(White))
	assert.Equal(t, SqE8, s.KingSquare(Black))
	assert.Equal(t, BbZero, s.EnPassant[White])
	assert.Equal(t, BbZero, s.EnPassant[Black])

	pi, ok := s.GetPiece(SqE5)
	assert.True(t, ok)
	assert.Equal(t, WhiteKnight, pi)
	pi, ok = s.GetPiece(SqA6)
	assert.True(t, ok)
	assert.Equal(t, BlackBishop, pi)
	assert.Equal(t, 32, s.OccupiedAll().PopCount())
}

func TestFenPartialCastlingRights(t *testing.T) {
	s, c, err := NewStateFen("r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1")
	require.NoError(t, err)
	assert.Equal(t, White, c)
	assert.False(t, s.LongCastle[White])
	assert.False(t, s.ShortCastle[White])
	assert.True(t, s.LongCastle[Black])
	assert.True(t, s.ShortCastle[Black])
}

func TestFenEnPassant(t *testing.T) {
	// white just made a double push to e4 - the en passant target e3
	// belongs to white, black is to move
	s, c, err := NewStateFen("rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	require.NoError(t, err)
	assert.Equal(t, Black, c)
	assert.Equal(t, SqE3.Bb(), s.EnPassant[White])
	assert.Equal(t, BbZero, s.EnPassant[Black])
}

func TestFenErrors(t *testing.T) {
	cases := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",          // missing side to move
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq -", // invalid side
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq -",          // too few squares
		"rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -", // invalid digit
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNT w KQkq -", // invalid piece
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KXkq -", // invalid castling
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq x9", // invalid ep square
		"8/8/8/8/8/8/8/8 w - -",                                 // no kings
	}
	for _, fen := range cases {
		_, _, err := NewStateFen(fen)
		assert.Error(t, err, "expected error for fen %q", fen)
	}
}

func TestFenRoundTrip(t *testing.T) {
	fens := []string{
		StartFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		"n1n5/PPPk4/8/8/8/8/4Kppp/5N1N w - - 0 1",
		"rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
	}
	for _, fen := range fens {
		s, c, err := NewStateFen(fen)
		require.NoError(t, err)
		assert.Equal(t, fen, s.Fen(c), "fen round trip failed for %q", fen)
	}
}
