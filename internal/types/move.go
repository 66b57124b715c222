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

import "strings"

// Move carries all information needed to transform a board state.
//
// Promotion always names the piece index that is placed on the To
// square. For non promoting moves it equals Piece so applying a move
// can place Promotion unconditionally.
//
// Castling moves use an asymmetric encoding: From holds the corner
// square of the castling rook (56/63 for white, 0/7 for black), not
// the king origin, and To holds the square next to the king
// destination (59/61 resp. 3/5). Applying a move reads From to
// distinguish the four castle variants and derives the real king and
// rook target squares from it.
type Move struct {
	Piece         PieceIndex
	From          Square
	To            Square
	Promotion     PieceIndex
	EnPassantable bool
	Castling      bool
}

// CreateMove returns a normal move of the given piece
func CreateMove(piece PieceIndex, from Square, to Square) Move {
	return Move{Piece: piece, From: from, To: to, Promotion: piece}
}

// CreatePromotionMove returns a pawn move which promotes
// to the given piece index
func CreatePromotionMove(piece PieceIndex, from Square, to Square, promotion PieceIndex) Move {
	return Move{Piece: piece, From: from, To: to, Promotion: promotion}
}

// CreateDoublePushMove returns a pawn double push which creates an
// en passant capture target behind the pawn
func CreateDoublePushMove(piece PieceIndex, from Square, to Square) Move {
	return Move{Piece: piece, From: from, To: to, Promotion: piece, EnPassantable: true}
}

// castle corner squares indexed by color
var (
	longCastleCorner  = [2]Square{SqA1, SqA8}
	shortCastleCorner = [2]Square{SqH1, SqH8}
	longCastleTo      = [2]Square{SqD1, SqD8}
	shortCastleTo     = [2]Square{SqF1, SqF8}
)

// CreateCastlingMove returns a castling move of the king of the given
// color using the rook corner encoding
func CreateCastlingMove(c Color, long bool) Move {
	king := PieceIndexOf(King, c)
	if long {
		return Move{Piece: king, From: longCastleCorner[c], To: longCastleTo[c], Promotion: king, Castling: true}
	}
	return Move{Piece: king, From: shortCastleCorner[c], To: shortCastleTo[c], Promotion: king, Castling: true}
}

// IsPromotion reports whether the move places a different piece than
// it moves
func (m Move) IsPromotion() bool {
	return m.Promotion != m.Piece
}

// StringUci returns a move string in UCI protocol format (e.g. e2e4,
// e7e8q). Castling moves are printed as the corresponding king move.
func (m Move) StringUci() string {
	if m.Castling {
		c := m.Piece.ColorOf()
		kingFrom := [2]Square{SqE1, SqE8}[c]
		if m.From == longCastleCorner[c] {
			return kingFrom.String() + [2]Square{SqC1, SqC8}[c].String()
		}
		return kingFrom.String() + [2]Square{SqG1, SqG8}[c].String()
	}
	var os strings.Builder
	os.WriteString(m.From.String())
	os.WriteString(m.To.String())
	if m.IsPromotion() {
		os.WriteString(strings.ToLower(m.Promotion.String()))
	}
	return os.String()
}

// String returns a verbose string representation of the move
func (m Move) String() string {
	if m.Castling {
		c := m.Piece.ColorOf()
		if m.From == longCastleCorner[c] {
			return "O-O-O"
		}
		return "O-O"
	}
	var os strings.Builder
	os.WriteString(m.Piece.String())
	os.WriteString(m.From.String())
	os.WriteString(m.To.String())
	if m.IsPromotion() {
		os.WriteString("=")
		os.WriteString(strings.ToUpper(m.Promotion.String()))
	}
	return os.String()
}
