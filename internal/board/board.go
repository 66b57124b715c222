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

// Package board holds the board state representation of the move
// generator. A State is a plain value of 12 piece bitboards plus the
// en passant bitboards and castling rights of both colors. States are
// immutable - ApplyMove returns a fresh State and never aliases its
// input.
package board

import (
	"strings"

	. "github.com/frankkopp/MoveGenGo/internal/types"
)

// State is the complete state of a chess board as far as move
// generation is concerned. The 12 piece bitboards are indexed by
// PieceIndex and are pairwise disjoint at all times.
//
// EnPassant[c] is either empty or holds exactly the one square behind
// a just double pushed pawn of color c - the capture target of an en
// passant capture by the opponent. At most one of the two boards is
// non empty at any time.
//
// LongCastle[c] and ShortCastle[c] track whether the respective
// castling right has never been lost. They make no statement about the
// current legality of the castle move itself.
//
// There is deliberately no side-to-move field - the functions
// consuming a State take the color to move as a parameter.
type State struct {
	Pieces      [PieceIndexLength]Bitboard
	EnPassant   [ColorLength]Bitboard
	LongCastle  [ColorLength]bool
	ShortCastle [ColorLength]bool
}

// Start position piece bitboards. Black starts on the low square
// indexes (rows 0-1), white on the high indexes (rows 6-7).
const (
	startWhitePawns   Bitboard = 0x00FF000000000000
	startWhiteRooks   Bitboard = 0x8100000000000000
	startWhiteKnights Bitboard = 0x4200000000000000
	startWhiteBishops Bitboard = 0x2400000000000000
	startWhiteQueens  Bitboard = 0x0800000000000000
	startWhiteKings   Bitboard = 0x1000000000000000
	startBlackPawns   Bitboard = 0x000000000000FF00
	startBlackRooks   Bitboard = 0x0000000000000081
	startBlackKnights Bitboard = 0x0000000000000042
	startBlackBishops Bitboard = 0x0000000000000024
	startBlackQueens  Bitboard = 0x0000000000000008
	startBlackKings   Bitboard = 0x0000000000000010
)

// NewState creates a board state with the standard chess starting
// position. All castling rights are intact and the en passant boards
// are empty.
func NewState() State {
	return State{
		Pieces: [PieceIndexLength]Bitboard{
			startWhitePawns, startWhiteRooks, startWhiteKnights,
			startWhiteBishops, startWhiteQueens, startWhiteKings,
			startBlackPawns, startBlackRooks, startBlackKnights,
			startBlackBishops, startBlackQueens, startBlackKings,
		},
		LongCastle:  [ColorLength]bool{true, true},
		ShortCastle: [ColorLength]bool{true, true},
	}
}

// PiecesBb returns the bitboard of the pieces of the given kind
// and color
func (s *State) PiecesBb(c Color, k PieceKind) Bitboard {
	return s.Pieces[PieceIndexOf(k, c)]
}

// OccupiedBb returns the bitboard of all pieces of the given color
func (s *State) OccupiedBb(c Color) Bitboard {
	base := 6 * int(c)
	return s.Pieces[base] | s.Pieces[base+1] | s.Pieces[base+2] |
		s.Pieces[base+3] | s.Pieces[base+4] | s.Pieces[base+5]
}

// OccupiedAll returns the bitboard of all pieces of both colors
func (s *State) OccupiedAll() Bitboard {
	return s.OccupiedBb(White) | s.OccupiedBb(Black)
}

// KingSquare returns the square of the king of the given color.
// A valid State has exactly one king per side.
func (s *State) KingSquare(c Color) Square {
	return s.PiecesBb(c, King).Lsb()
}

// GetPiece returns the piece index of the piece on the given square.
// The bool flag is false when the square is empty.
func (s *State) GetPiece(sq Square) (PieceIndex, bool) {
	bb := sq.Bb()
	for pi := WhitePawn; pi < PieceIndex(PieceIndexLength); pi++ {
		if s.Pieces[pi]&bb != 0 {
			return pi, true
		}
	}
	return PieceIndex(PieceIndexLength), false
}

// PutPiece sets the bit of the given square on the piece bitboard of
// the given piece index. The square must be empty.
func (s *State) PutPiece(pi PieceIndex, sq Square) {
	s.Pieces[pi] |= sq.Bb()
}

// String returns a string representation of the board
// as a board of 8x8 squares with the pieces as FEN letters
func (s *State) String() string {
	var os strings.Builder
	os.WriteString("+---+---+---+---+---+---+---+---+\n")
	for sq := SqA8; sq < SqNone; sq++ {
		if pi, ok := s.GetPiece(sq); ok {
			os.WriteString("| ")
			os.WriteByte(pi.Char())
			os.WriteString(" ")
		} else {
			os.WriteString("|   ")
		}
		if sq.FileOf() == FileH {
			os.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
		}
	}
	return os.String()
}
