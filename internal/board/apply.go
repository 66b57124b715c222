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
	. "github.com/frankkopp/MoveGenGo/internal/types"
)

// ApplyMove applies a move to the board state and returns the
// resulting state. The receiver is taken by value and never modified
// so the transition is a pure function.
//
// The move is not checked for legality - applying a pseudo legal move
// may produce a state in which the moving side's king is attacked.
// The caller filters such states afterwards.
func (s State) ApplyMove(m Move) State {
	// s already is a copy of the previous state

	mover := m.Piece.ColorOf()
	fromBb := m.From.Bb()
	toBb := m.To.Bb()

	// Castling rights are updated unconditionally for every move.
	// The To square clauses also cover the case of a rook being
	// captured on its corner square - they must run before the
	// opponent bitboards are wiped below.
	switch m.Piece {
	case WhiteKing:
		s.LongCastle[White] = false
		s.ShortCastle[White] = false
	case BlackKing:
		s.LongCastle[Black] = false
		s.ShortCastle[Black] = false
	case WhiteRook:
		if m.From == SqA1 {
			s.LongCastle[White] = false
		}
		if m.From == SqH1 {
			s.ShortCastle[White] = false
		}
	case BlackRook:
		if m.From == SqA8 {
			s.LongCastle[Black] = false
		}
		if m.From == SqH8 {
			s.ShortCastle[Black] = false
		}
	}
	switch m.To {
	case SqA1:
		s.LongCastle[White] = false
	case SqH1:
		s.ShortCastle[White] = false
	case SqA8:
		s.LongCastle[Black] = false
	case SqH8:
		s.ShortCastle[Black] = false
	}

	if m.Castling {
		// the From square holds the corner of the castling rook and
		// identifies the castle variant. The king is placed directly,
		// the rook is moved with remove and add masks. Castling can
		// never capture.
		king := PieceIndexOf(King, mover)
		rook := PieceIndexOf(Rook, mover)
		switch m.From {
		case SqA1: // white long
			s.Pieces[king] = SqC1.Bb()
			s.Pieces[rook] = (s.Pieces[rook] ^ fromBb) | SqD1.Bb()
		case SqH1: // white short
			s.Pieces[king] = SqG1.Bb()
			s.Pieces[rook] = (s.Pieces[rook] ^ fromBb) | SqF1.Bb()
		case SqA8: // black long
			s.Pieces[king] = SqC8.Bb()
			s.Pieces[rook] = (s.Pieces[rook] ^ fromBb) | SqD8.Bb()
		case SqH8: // black short
			s.Pieces[king] = SqG8.Bb()
			s.Pieces[rook] = (s.Pieces[rook] ^ fromBb) | SqF8.Bb()
		}
	} else {
		// remove the mover from its origin and place the promotion
		// piece index on the destination. For non promotions the
		// promotion index equals the mover index.
		s.Pieces[m.Piece] ^= fromBb
		s.Pieces[m.Promotion] |= toBb

		// wipe the destination square from every opponent bitboard
		// (normal captures)
		opponent := mover.Flip()
		base := 6 * int(opponent)
		for i := base; i < base+6; i++ {
			s.Pieces[i] &^= toBb
		}

		// en passant capture - the captured pawn does not stand on
		// the destination square but one rank behind it as seen from
		// the mover
		if m.Piece.KindOf() == Pawn && toBb == s.EnPassant[opponent] {
			var capturedSq Square
			if mover == White {
				capturedSq = m.To + 8
			} else {
				capturedSq = m.To - 8
			}
			s.Pieces[PieceIndexOf(Pawn, opponent)] ^= capturedSq.Bb()
		}
	}

	// En passant bitboards: a double push creates the mover's target
	// square on the transit square of the push, every move clears the
	// opponent's board.
	s.EnPassant[White] = BbZero
	s.EnPassant[Black] = BbZero
	if m.EnPassantable {
		if mover == White {
			s.EnPassant[White] = (m.To + 8).Bb()
		} else {
			s.EnPassant[Black] = (m.To - 8).Bb()
		}
	}

	return s
}
