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

// Package movegen contains the functionality to create moves on a
// chess board state. It implements the pseudo legal generation for all
// piece kinds including castling, en passant and promotions, and the
// legality filter which applies each pseudo legal move and keeps only
// the resulting states in which the moving side's king is safe.
package movegen

import (
	"github.com/op/go-logging"

	"github.com/frankkopp/MoveGenGo/internal/attacks"
	"github.com/frankkopp/MoveGenGo/internal/board"
	myLogging "github.com/frankkopp/MoveGenGo/internal/logging"
	"github.com/frankkopp/MoveGenGo/internal/moveslice"
	. "github.com/frankkopp/MoveGenGo/internal/types"
)

var log *logging.Logger

// Movegen data structure. Holds reusable move buffers so repeated
// generation on the same instance does not allocate. Create a new
// move generator via
//  movegen.NewMoveGen()
// An instance must not be shared between goroutines.
type Movegen struct {
	pseudoLegalMoves *moveslice.MoveSlice
	legalMoves       *moveslice.MoveSlice
}

// NewMoveGen creates a new instance of a move generator
func NewMoveGen() *Movegen {
	if log == nil {
		log = myLogging.GetLog()
	}
	return &Movegen{
		pseudoLegalMoves: moveslice.NewMoveSlice(MaxMoves),
		legalMoves:       moveslice.NewMoveSlice(MaxMoves),
	}
}

// GeneratePseudoLegalMoves generates all pseudo legal moves for the
// given color on the given board state. Does not check if the king is
// left in check.
//
// The enumeration order is deterministic: the piece bitboards are
// visited in piece index order, within a bitboard the squares from the
// lowest to the highest bit, and castling moves come last (long before
// short). The returned slice is owned by the move generator and valid
// until the next generation call.
func (mg *Movegen) GeneratePseudoLegalMoves(s *board.State, c Color) *moveslice.MoveSlice {
	mg.pseudoLegalMoves.Clear()
	mg.generatePawnMoves(s, c, mg.pseudoLegalMoves)
	mg.generatePieceMoves(s, c, mg.pseudoLegalMoves)
	mg.generateCastling(s, c, mg.pseudoLegalMoves)
	return mg.pseudoLegalMoves
}

// GenerateLegal generates all legal successor states for the given
// color. Each pseudo legal move is applied and the resulting state is
// kept if the mover's king is not attacked in it. An empty result
// means the side to move is either checkmated or stalemated - the
// caller disambiguates with attacks.InCheck.
func (mg *Movegen) GenerateLegal(s *board.State, c Color) []board.State {
	pseudo := mg.GeneratePseudoLegalMoves(s, c)
	states := make([]board.State, 0, pseudo.Len())
	pseudo.ForEach(func(i int) {
		next := s.ApplyMove(pseudo.At(i))
		if !attacks.InCheck(&next, c) {
			states = append(states, next)
		}
	})
	return states
}

// GenerateLegalMoves generates all legal moves for the given color.
// Uses GeneratePseudoLegalMoves and filters out moves which leave the
// own king in check. The returned slice is owned by the move generator
// and valid until the next generation call.
func (mg *Movegen) GenerateLegalMoves(s *board.State, c Color) *moveslice.MoveSlice {
	mg.legalMoves.Clear()
	mg.GeneratePseudoLegalMoves(s, c)
	mg.pseudoLegalMoves.FilterCopy(mg.legalMoves, func(i int) bool {
		next := s.ApplyMove(mg.pseudoLegalMoves.At(i))
		return !attacks.InCheck(&next, c)
	})
	return mg.legalMoves
}

// HasLegalMove determines if the given color has at least one legal
// move. It generates pseudo legal moves and returns on the first one
// which survives the legality check - cheaper than generating the full
// legal move list when only mate or stalemate needs to be detected.
func (mg *Movegen) HasLegalMove(s *board.State, c Color) bool {
	pseudo := mg.GeneratePseudoLegalMoves(s, c)
	for _, m := range *pseudo {
		next := s.ApplyMove(m)
		if !attacks.InCheck(&next, c) {
			return true
		}
	}
	return false
}

// //////////////////////////////////////////////////////
// // Private
// //////////////////////////////////////////////////////

// generatePawnMoves creates all pseudo legal pawn moves - diagonal
// captures including en passant, single and double pushes and
// promotions.
func (mg *Movegen) generatePawnMoves(s *board.State, c Color, ml *moveslice.MoveSlice) {
	piece := PieceIndexOf(Pawn, c)
	myPawns := s.Pieces[piece]
	ownBb := s.OccupiedBb(c)
	oppBb := s.OccupiedBb(c.Flip())
	occupiedAll := ownBb | oppBb

	for pawns := myPawns; pawns != BbZero; {
		from := pawns.PopLsb()

		// captures: only squares holding an opponent piece or the
		// opponent's en passant target are valid destinations
		targets := GetPawnAttacks(c, from) & (oppBb | s.EnPassant[c.Flip()])

		// pushes: a blocked single push square means no push at all.
		// On the starting rank the double push square decides between
		// the blocked and the unblocked push table.
		singlePushSq := from.To(c.MoveDirection())
		doublePush := false
		if singlePushSq.IsValid() && !occupiedAll.Has(singlePushSq) {
			if from.Bb()&c.StartRankBb() != BbZero {
				doublePushSq := singlePushSq.To(c.MoveDirection())
				if occupiedAll.Has(doublePushSq) {
					targets |= GetPawnPushes(c, from, true)
				} else {
					targets |= GetPawnPushes(c, from, false)
					doublePush = true
				}
			} else {
				targets |= GetPawnPushes(c, from, false)
			}
		}

		promotion := from.Bb()&c.PromotionFromRankBb() != BbZero

		for targets != BbZero {
			to := targets.PopLsb()
			switch {
			case promotion:
				// one move per promotion piece kind
				for _, k := range PromotionKinds {
					ml.PushBack(CreatePromotionMove(piece, from, to, PieceIndexOf(k, c)))
				}
			case doublePush && distance(from, to) == 16:
				ml.PushBack(CreateDoublePushMove(piece, from, to))
			default:
				ml.PushBack(CreateMove(piece, from, to))
			}
		}
	}
}

// generatePieceMoves creates all pseudo legal moves of the non pawn
// pieces in piece index order (rook, knight, bishop, queen, king).
func (mg *Movegen) generatePieceMoves(s *board.State, c Color, ml *moveslice.MoveSlice) {
	ownBb := s.OccupiedBb(c)
	occupiedAll := s.OccupiedAll()

	for k := Rook; k <= King; k++ {
		piece := PieceIndexOf(k, c)
		for pieces := s.Pieces[piece]; pieces != BbZero; {
			from := pieces.PopLsb()
			moves := GetAttacksBb(k, from, occupiedAll) &^ ownBb
			for moves != BbZero {
				ml.PushBack(CreateMove(piece, from, moves.PopLsb()))
			}
		}
	}
}

// squares which must be empty between king and rook, per color
var (
	longCastleEmpty  = [2]Bitboard{SqB1.Bb() | SqC1.Bb() | SqD1.Bb(), SqB8.Bb() | SqC8.Bb() | SqD8.Bb()}
	shortCastleEmpty = [2]Bitboard{SqF1.Bb() | SqG1.Bb(), SqF8.Bb() | SqG8.Bb()}
)

// squares on the king's path which must not be attacked, per color.
// This includes the king origin so castling out of check is rejected
// here as well.
var (
	longCastleChecks  = [2][3]Square{{SqC1, SqD1, SqE1}, {SqC8, SqD8, SqE8}}
	shortCastleChecks = [2][3]Square{{SqE1, SqF1, SqG1}, {SqE8, SqF8, SqG8}}
)

// generateCastling creates the castling moves for the given color.
// A castle move is generated when the right is intact, the squares
// between king and rook are empty and no square on the king's path is
// attacked. The remaining legality (king safe afterwards) is verified
// by the general legality filter like for every other move.
func (mg *Movegen) generateCastling(s *board.State, c Color, ml *moveslice.MoveSlice) {
	occupiedAll := s.OccupiedAll()

	if s.LongCastle[c] && occupiedAll&longCastleEmpty[c] == BbZero {
		if !anyAttacked(s, c, &longCastleChecks[c]) {
			ml.PushBack(CreateCastlingMove(c, true))
		}
	}
	if s.ShortCastle[c] && occupiedAll&shortCastleEmpty[c] == BbZero {
		if !anyAttacked(s, c, &shortCastleChecks[c]) {
			ml.PushBack(CreateCastlingMove(c, false))
		}
	}
}

func anyAttacked(s *board.State, defender Color, squares *[3]Square) bool {
	for _, sq := range squares {
		if attacks.IsAttacked(sq, s, defender) {
			return true
		}
	}
	return false
}

// distance returns the absolute difference of two square indexes.
// A pawn double push has distance 16, a single push 8.
func distance(from Square, to Square) int {
	d := int(from) - int(to)
	if d < 0 {
		return -d
	}
	return d
}
