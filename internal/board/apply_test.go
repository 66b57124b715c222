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

func TestApplyMovePure(t *testing.T) {
	s := NewState()
	before := s
	next := s.ApplyMove(CreateMove(WhiteKnight, SqG1, SqF3))
	// the input state is never modified
	assert.Equal(t, before, s)
	assert.NotEqual(t, s, next)
	assert.True(t, next.Pieces[WhiteKnight].Has(SqF3))
	assert.False(t, next.Pieces[WhiteKnight].Has(SqG1))
	assert.True(t, disjoint(&next))
}

func TestApplyMoveCapture(t *testing.T) {
	s, _, err := NewStateFen("rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 1")
	require.NoError(t, err)

	next := s.ApplyMove(CreateMove(WhitePawn, SqE4, SqD5))
	assert.True(t, next.Pieces[WhitePawn].Has(SqD5))
	assert.False(t, next.Pieces[WhitePawn].Has(SqE4))
	assert.False(t, next.Pieces[BlackPawn].Has(SqD5))
	assert.Equal(t, 15, next.OccupiedBb(Black).PopCount())
	assert.Equal(t, 31, next.OccupiedAll().PopCount())
	assert.True(t, disjoint(&next))
	// the opponent's en passant board is cleared by any move
	assert.Equal(t, BbZero, next.EnPassant[Black])
}

func TestApplyMovePromotion(t *testing.T) {
	s, _, err := NewStateFen("8/P6k/8/8/8/8/8/K7 w - - 0 1")
	require.NoError(t, err)

	next := s.ApplyMove(CreatePromotionMove(WhitePawn, SqA7, SqA8, WhiteQueen))
	// the pawn is removed and the promoted piece placed
	assert.Equal(t, BbZero, next.Pieces[WhitePawn])
	assert.True(t, next.Pieces[WhiteQueen].Has(SqA8))
	assert.True(t, disjoint(&next))
}

func TestApplyMoveCapturePromotion(t *testing.T) {
	s, _, err := NewStateFen("1r5k/P7/8/8/8/8/8/K7 w - - 0 1")
	require.NoError(t, err)

	next := s.ApplyMove(CreatePromotionMove(WhitePawn, SqA7, SqB8, WhiteKnight))
	assert.Equal(t, BbZero, next.Pieces[WhitePawn])
	assert.Equal(t, BbZero, next.Pieces[BlackRook])
	assert.True(t, next.Pieces[WhiteKnight].Has(SqB8))
	assert.True(t, disjoint(&next))
}

func TestApplyMoveCastling(t *testing.T) {
	s, _, err := NewStateFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	wLong := s.ApplyMove(CreateCastlingMove(White, true))
	assert.Equal(t, SqC1, wLong.KingSquare(White))
	assert.True(t, wLong.Pieces[WhiteRook].Has(SqD1))
	assert.False(t, wLong.Pieces[WhiteRook].Has(SqA1))
	assert.True(t, wLong.Pieces[WhiteRook].Has(SqH1))
	assert.False(t, wLong.LongCastle[White])
	assert.False(t, wLong.ShortCastle[White])

	wShort := s.ApplyMove(CreateCastlingMove(White, false))
	assert.Equal(t, SqG1, wShort.KingSquare(White))
	assert.True(t, wShort.Pieces[WhiteRook].Has(SqF1))
	assert.False(t, wShort.Pieces[WhiteRook].Has(SqH1))

	bLong := s.ApplyMove(CreateCastlingMove(Black, true))
	assert.Equal(t, SqC8, bLong.KingSquare(Black))
	assert.True(t, bLong.Pieces[BlackRook].Has(SqD8))
	assert.False(t, bLong.LongCastle[Black])
	assert.False(t, bLong.ShortCastle[Black])

	bShort := s.ApplyMove(CreateCastlingMove(Black, false))
	assert.Equal(t, SqG8, bShort.KingSquare(Black))
	assert.True(t, bShort.Pieces[BlackRook].Has(SqF8))
}

func TestCastlingRightsKingMove(t *testing.T) {
	s, _, err := NewStateFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	next := s.ApplyMove(CreateMove(WhiteKing, SqE1, SqE2))
	assert.False(t, next.LongCastle[White])
	assert.False(t, next.ShortCastle[White])
	assert.True(t, next.LongCastle[Black])
	assert.True(t, next.ShortCastle[Black])
}

func TestCastlingRightsRookMove(t *testing.T) {
	s, _, err := NewStateFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	next := s.ApplyMove(CreateMove(WhiteRook, SqA1, SqA4))
	assert.False(t, next.LongCastle[White])
	assert.True(t, next.ShortCastle[White])

	next = s.ApplyMove(CreateMove(WhiteRook, SqH1, SqH4))
	assert.True(t, next.LongCastle[White])
	assert.False(t, next.ShortCastle[White])

	next = s.ApplyMove(CreateMove(BlackRook, SqA8, SqA4))
	assert.False(t, next.LongCastle[Black])
	assert.True(t, next.ShortCastle[Black])
}

func TestCastlingRightsRookCaptured(t *testing.T) {
	// a capture onto a rook corner square clears the castling right of
	// that corner for the side whose rook is captured
	s, _, err := NewStateFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	next := s.ApplyMove(CreateMove(WhiteRook, SqA1, SqA8))
	assert.False(t, next.LongCastle[White]) // own rook left its corner
	assert.False(t, next.LongCastle[Black]) // black rook was captured
	assert.True(t, next.ShortCastle[Black])
	assert.False(t, next.Pieces[BlackRook].Has(SqA8))
	assert.True(t, next.Pieces[WhiteRook].Has(SqA8))
}

// Castling rights transition only from true to false, never back
func TestCastlingRightsMonotonic(t *testing.T) {
	s := NewState()
	next := s.ApplyMove(CreateMove(WhiteKnight, SqG1, SqF3))
	for c := White; c <= Black; c++ {
		if !s.LongCastle[c] {
			assert.False(t, next.LongCastle[c])
		}
		if !s.ShortCastle[c] {
			assert.False(t, next.ShortCastle[c])
		}
	}
}

func TestApplyMoveDoublePush(t *testing.T) {
	s := NewState()
	next := s.ApplyMove(CreateDoublePushMove(WhitePawn, SqE2, SqE4))
	// the en passant target is the transit square of the push
	assert.Equal(t, SqE3.Bb(), next.EnPassant[White])
	assert.Equal(t, BbZero, next.EnPassant[Black])

	next2 := next.ApplyMove(CreateDoublePushMove(BlackPawn, SqD7, SqD5))
	assert.Equal(t, SqD6.Bb(), next2.EnPassant[Black])
	// the opponent's board is cleared again
	assert.Equal(t, BbZero, next2.EnPassant[White])
}

func TestApplyMoveEnPassantCapture(t *testing.T) {
	// black captures the white e4 pawn en passant on e3 - the white
	// pawn is removed from e4, not from the destination rank
	s, _, err := NewStateFen("rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	require.NoError(t, err)
	require.Equal(t, SqE3.Bb(), s.EnPassant[White])

	next := s.ApplyMove(CreateMove(BlackPawn, SqD4, SqE3))
	assert.True(t, next.Pieces[BlackPawn].Has(SqE3))
	assert.False(t, next.Pieces[BlackPawn].Has(SqD4))
	assert.False(t, next.Pieces[WhitePawn].Has(SqE4))
	assert.Equal(t, BbZero, next.EnPassant[White])
	assert.True(t, disjoint(&next))

	// mirrored: white captures a black d5 pawn en passant on d6
	s2, _, err := NewStateFen("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 1")
	require.NoError(t, err)
	require.Equal(t, SqD6.Bb(), s2.EnPassant[Black])

	next2 := s2.ApplyMove(CreateMove(WhitePawn, SqE5, SqD6))
	assert.True(t, next2.Pieces[WhitePawn].Has(SqD6))
	assert.False(t, next2.Pieces[BlackPawn].Has(SqD5))
	assert.True(t, disjoint(&next2))
}

// apply preserves exactly one king per side
func TestApplyMoveKingsPreserved(t *testing.T) {
	s := NewState()
	next := s.ApplyMove(CreateDoublePushMove(WhitePawn, SqD2, SqD4))
	assert.Equal(t, 1, next.Pieces[WhiteKing].PopCount())
	assert.Equal(t, 1, next.Pieces[BlackKing].PopCount())
}
