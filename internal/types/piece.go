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

// PieceKind is the type of a chess piece without its color
type PieceKind uint8

// PieceKind constants
const (
	Pawn PieceKind = iota
	Rook
	Knight
	Bishop
	Queen
	King
	KindLength int = 6
)

// IsValid checks if k represents a valid piece kind
func (k PieceKind) IsValid() bool {
	return k < PieceKind(KindLength)
}

// PieceIndex identifies one of the 12 piece bitboards of a board state.
// It combines a PieceKind and a Color as kind + 6*color. Indexes 0-5
// are the white pieces, 6-11 the black pieces.
type PieceIndex uint8

// PieceIndex constants for each piece bitboard
const (
	WhitePawn PieceIndex = iota
	WhiteRook
	WhiteKnight
	WhiteBishop
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackRook
	BlackKnight
	BlackBishop
	BlackQueen
	BlackKing
	PieceIndexLength int = 12
)

// PieceIndexOf returns the piece index for a kind and color
func PieceIndexOf(k PieceKind, c Color) PieceIndex {
	return PieceIndex(k) + PieceIndex(6*c)
}

// IsValid checks if pi represents a valid piece index
func (pi PieceIndex) IsValid() bool {
	return pi < PieceIndex(PieceIndexLength)
}

// KindOf returns the piece kind of the piece index
func (pi PieceIndex) KindOf() PieceKind {
	return PieceKind(pi % 6)
}

// ColorOf returns the color of the piece index
func (pi PieceIndex) ColorOf() Color {
	return Color(pi / 6)
}

// Piece letters as used in FEN strings. White pieces are upper case.
var pieceChars = [PieceIndexLength]byte{'P', 'R', 'N', 'B', 'Q', 'K', 'p', 'r', 'n', 'b', 'q', 'k'}

// Char returns the FEN letter of the piece index
func (pi PieceIndex) Char() byte {
	return pieceChars[pi]
}

// String returns the FEN letter of the piece index as a string
func (pi PieceIndex) String() string {
	return string(pieceChars[pi])
}

// PieceIndexFromChar returns the piece index for a FEN piece letter.
// The bool flag is false if the letter does not denote a piece.
func PieceIndexFromChar(char byte) (PieceIndex, bool) {
	for pi, c := range pieceChars {
		if c == char {
			return PieceIndex(pi), true
		}
	}
	return PieceIndex(PieceIndexLength), false
}

// Promotion piece kinds in the order in which promotion moves
// are generated.
var PromotionKinds = [4]PieceKind{Rook, Knight, Bishop, Queen}
