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

import "fmt"

// Precomputed attack tables for the non sliding pieces and the
// pawn push tables. All of them are built once by Init().
var (
	// attacks of a knight for each square
	knightAttacks [SqLength]Bitboard

	// attacks of a king for each square
	kingAttacks [SqLength]Bitboard

	// diagonal capture squares of a pawn for each color and square
	pawnAttacks [ColorLength][SqLength]Bitboard

	// push squares of a pawn which is free to move. Contains the
	// single and the double push square when the pawn stands on its
	// starting rank, only the single push square otherwise.
	pawnPushesUnblocked [ColorLength][SqLength]Bitboard

	// push squares of a pawn whose double push square is occupied.
	// Contains only the single push square.
	pawnPushesBlocked [ColorLength][SqLength]Bitboard
)

// GetAttacksBb returns a bitboard representing all the squares attacked by a
// piece of the given kind (not pawn) placed on 'sq'.
// For sliding pieces this uses the pre-computed Magic Bitboard Attack arrays.
// For Knight and King the occupied Bitboard is ignored (can be BbZero)
// as for these non sliders the pre-computed attacks are used.
func GetAttacksBb(k PieceKind, sq Square, occupied Bitboard) Bitboard {
	switch k {
	case Knight:
		return knightAttacks[sq]
	case King:
		return kingAttacks[sq]
	case Bishop:
		return bishopMagics[sq].Attacks[bishopMagics[sq].index(occupied)]
	case Rook:
		return rookMagics[sq].Attacks[rookMagics[sq].index(occupied)]
	case Queen:
		return bishopMagics[sq].Attacks[bishopMagics[sq].index(occupied)] |
			rookMagics[sq].Attacks[rookMagics[sq].index(occupied)]
	default:
		panic(fmt.Sprintf("GetAttacksBb called with unsupported piece kind %d", k))
	}
}

// GetPawnAttacks returns a Bb of the diagonal capture squares of a pawn
// of the given color
func GetPawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}

// GetPawnPushes returns a Bb of the push squares of a pawn of the given
// color. When doubleBlocked is true the square two steps ahead is
// considered occupied and only the single push square is returned.
// The caller must handle a blocked single push square itself (no
// pushes at all in that case).
func GetPawnPushes(c Color, sq Square, doubleBlocked bool) Bitboard {
	if doubleBlocked {
		return pawnPushesBlocked[c][sq]
	}
	return pawnPushesUnblocked[c][sq]
}

// ///////////////////////////////////////
// Initialization
// ///////////////////////////////////////

// knight move offsets as differences of square indexes
var knightSteps = [8]int{6, 10, 15, 17, -6, -10, -15, -17}

// king move offsets as differences of square indexes
var kingSteps = [8]int{1, 7, 8, 9, -1, -7, -8, -9}

// builds the knight, king and pawn tables
func initLeaperTables() {
	for sq := SqA8; sq < SqNone; sq++ {
		knightAttacks[sq] = leaperAttack(sq, knightSteps[:], FileABMask, FileGHMask)
		kingAttacks[sq] = leaperAttack(sq, kingSteps[:], FileAMask, FileHMask)
		for c := White; c <= Black; c++ {
			dir := c.Direction()
			pawnAttacks[c][sq] = leaperAttack(sq, []int{dir * 7, dir * 9}, FileAMask, FileHMask)
			pawnPushesUnblocked[c][sq] = pawnPush(sq, c, false)
			pawnPushesBlocked[c][sq] = pawnPush(sq, c, true)
		}
	}
}

// leaperAttack computes the destination set of a leaping piece with the
// given step offsets. A destination is rejected when it falls off the
// board or when origin and destination lie on opposite border regions
// (given as west and east file masks) which indicates a file wrap.
func leaperAttack(sq Square, steps []int, westMask Bitboard, eastMask Bitboard) Bitboard {
	attacks := BbZero
	fromBb := sq.bitboard()
	for _, step := range steps {
		to := int(sq) + step
		if to < 0 || to >= SqLength {
			continue
		}
		toBb := Square(to).bitboard()
		if (fromBb&westMask != 0 && toBb&eastMask != 0) ||
			(fromBb&eastMask != 0 && toBb&westMask != 0) {
			continue
		}
		attacks |= toBb
	}
	return attacks
}

// pawnPush computes the push square set of a pawn. An unblocked pawn
// on its starting rank gets the single and the double push square,
// a blocked one only the single push square. Squares off the board
// are dropped (pawns never stand on the last rank in a real game but
// the table holds an entry for every square).
func pawnPush(sq Square, c Color, doubleBlocked bool) Bitboard {
	pushes := BbZero
	steps := []int{8}
	if sq.Bb()&c.StartRankBb() != 0 && !doubleBlocked {
		steps = append(steps, 16)
	}
	for _, step := range steps {
		to := int(sq) + c.Direction()*step
		if to < 0 || to >= SqLength {
			continue
		}
		pushes |= Square(to).bitboard()
	}
	return pushes
}
