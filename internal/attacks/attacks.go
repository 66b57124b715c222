//
// MoveGenGo - a bitboard chess move generator in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package attacks answers the question whether a square is attacked
// in a given board state. It uses the precomputed leaper tables and
// the magic bitboard tables of the types package.
package attacks

import (
	"github.com/frankkopp/MoveGenGo/internal/board"
	. "github.com/frankkopp/MoveGenGo/internal/types"
)

// AttacksTo determines all pieces of the given color which attack the
// given square.
//
// This uses a reverse approach - it uses the target square as from
// square to generate attacks for each piece kind and then intersects
// the result with the piece bitboards.
//
// For pawns this means the lookup must use the attack pattern of the
// DEFENDING color: the squares from which an enemy pawn could attack
// sq are exactly the squares a pawn of the defender's color on sq
// would attack. This inversion is easy to get wrong - see the pawn
// term below.
func AttacksTo(s *board.State, sq Square, color Color) Bitboard {
	occupiedAll := s.OccupiedAll()

	// Pawns (note the color inversion on the table lookup)
	return (GetPawnAttacks(color.Flip(), sq) & s.PiecesBb(color, Pawn)) |
		// Knight
		(GetAttacksBb(Knight, sq, occupiedAll) & s.PiecesBb(color, Knight)) |
		// King
		(GetAttacksBb(King, sq, occupiedAll) & s.PiecesBb(color, King)) |
		// Sliding rooks and queens
		(GetAttacksBb(Rook, sq, occupiedAll) & (s.PiecesBb(color, Rook) | s.PiecesBb(color, Queen))) |
		// Sliding bishops and queens
		(GetAttacksBb(Bishop, sq, occupiedAll) & (s.PiecesBb(color, Bishop) | s.PiecesBb(color, Queen)))
}

// IsAttacked reports whether the given square is attacked by any piece
// of the opponent of the defending color.
func IsAttacked(sq Square, s *board.State, defender Color) bool {
	return AttacksTo(s, sq, defender.Flip()) != BbZero
}

// InCheck reports whether the king of the given color is attacked
func InCheck(s *board.State, c Color) bool {
	return IsAttacked(s.KingSquare(c), s, c)
}
