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

// Magic holds all magic bitboard data relevant for a single square.
// The attack table of a square has one entry for each possible subset
// of the relevant occupancy mask of the square.
type Magic struct {
	Mask    Bitboard
	Magic   Bitboard
	Attacks []Bitboard
	Shift   uint
}

// index calculates the index into the attacks table for the given
// board occupancy
//  occ      &= magics[sq].mask;
//  occ      *= magics[sq].magic;
//  occ     >>= magics[sq].shift;
func (m *Magic) index(occupied Bitboard) uint {
	occ := occupied & m.Mask
	occ *= m.Magic
	occ >>= m.Shift
	return uint(occ)
}

// magic bitboards - rook and bishop attacks
var (
	rookMagics   [SqLength]Magic
	bishopMagics [SqLength]Magic
)

// slider ray directions
var (
	rookDirections   = [4]Direction{North, East, South, West}
	bishopDirections = [4]Direction{Northeast, Southeast, Southwest, Northwest}
)

// Upper bound for the random search of a single magic number. In
// practice a few thousand candidates suffice per square - reaching
// this bound indicates a bug in the PRNG or the masking.
const maxMagicTries = 100_000_000

// GetMaskBb returns the relevant occupancy mask for a rook or bishop
// on the given square - the squares whose occupancy influences the
// attack set of the piece. Edge squares of each ray are excluded as
// they can never block further movement.
func GetMaskBb(k PieceKind, sq Square) Bitboard {
	switch k {
	case Rook:
		return rookMagics[sq].Mask
	case Bishop:
		return bishopMagics[sq].Mask
	default:
		panic(fmt.Sprintf("GetMaskBb called with non slider piece kind %d", k))
	}
}

// RayAttacksBb computes the attack set of a rook, bishop or queen on
// the given square for a full (not pre-masked) blocker bitboard by
// walking each ray outward until the first blocker. The first blocker
// square is included in the attack set (captures of own pieces are
// filtered by the caller). It uses the same ray walker the magic tables
// are built from and is the ground truth the tests compare the magic
// lookups against - too slow for move generation.
func RayAttacksBb(k PieceKind, sq Square, occupied Bitboard) Bitboard {
	switch k {
	case Rook:
		return slidingAttack(&rookDirections, sq, occupied)
	case Bishop:
		return slidingAttack(&bishopDirections, sq, occupied)
	case Queen:
		return slidingAttack(&rookDirections, sq, occupied) |
			slidingAttack(&bishopDirections, sq, occupied)
	default:
		panic(fmt.Sprintf("RayAttacksBb called with non slider piece kind %d", k))
	}
}

// slidingAttack calculates sliding attacks along the given directions for the
// given square and the given board occupation. Uses loop in loop and is not
// very efficient. Doesn't matter for pre-computing but should not be used
// during move generation.
func slidingAttack(directions *[4]Direction, sq Square, occupied Bitboard) Bitboard {
	attack := BbZero
	for i := 0; i < 4; i++ {
		s := sq
		for {
			s = s.To(directions[i])
			if !s.IsValid() {
				break
			}
			attack.PushSquare(s)
			if occupied.Has(s) {
				break
			}
		}
	}
	return attack
}

// initMagicForSquare searches a magic number for a single square and
// slider kind and materializes the indexed attack table as a side
// effect of verifying the magic.
// As a reference see https://www.chessprogramming.org/Magic_Bitboards.
func initMagicForSquare(m *Magic, sq Square, directions *[4]Direction, seed uint64) {
	// Board edges are not considered in the relevant occupancies
	edges := ((Rank1_Bb | Rank8_Bb) &^ sq.RankOf().Bb()) | ((FileA_Bb | FileH_Bb) &^ sq.FileOf().Bb())

	// Given a square 'sq', the mask is the bitboard of sliding attacks from
	// 'sq' computed on an empty board. The index must be big enough to contain
	// all the attacks for each possible subset of the mask and so is 2 power
	// the number of 1s of the mask. Hence we deduce the size of the shift to
	// apply to the 64 bits word to get the index.
	m.Mask = slidingAttack(directions, sq, BbZero) &^ edges
	bits := m.Mask.PopCount()
	m.Shift = uint(64 - bits)
	m.Attacks = make([]Bitboard, 1<<bits)

	// Use the Carry-Rippler trick to enumerate all subsets of the mask and
	// store the corresponding sliding attack bitboard in reference[].
	// https://www.chessprogramming.org/Traversing_Subsets_of_a_Set
	occupancy := make([]Bitboard, 0, 1<<bits)
	reference := make([]Bitboard, 0, 1<<bits)
	b := BbZero
	for {
		occupancy = append(occupancy, b)
		reference = append(reference, slidingAttack(directions, sq, b))
		b = (b - m.Mask) & m.Mask
		if b == 0 { // do - while(b)
			break
		}
	}
	size := len(occupancy)

	// deterministic per square seed for reproducible tables
	rng := newPrnG(seed)
	epoch := make([]int, 1<<bits)
	cnt := 0

	// Find a magic for square 'sq' picking up an (almost) random number
	// until we find the one that passes the verification test. A good magic
	// must map every possible occupancy to an index that looks up the
	// correct sliding attack in the attack table. Different occupancies may
	// share a slot as long as they share the attack set.
	for tries := 0; ; tries++ {
		if tries >= maxMagicTries {
			panic(fmt.Sprintf("magic number search exhausted after %d tries for square %s mask %s",
				maxMagicTries, sq.String(), m.Mask.String()))
		}

		// sparse random candidates find valid magics much faster
		m.Magic = Bitboard(rng.sparseRand())
		if ((m.Magic * m.Mask) >> 56).PopCount() < 6 {
			continue
		}

		// Note that we build up the table for the square as a side effect
		// of verifying the magic. The attempt count saved in epoch[] avoids
		// resetting the attack table after every failed attempt.
		cnt++
		i := 0
		for ; i < size; i++ {
			idx := m.index(occupancy[i])
			if epoch[idx] < cnt {
				epoch[idx] = cnt
				m.Attacks[idx] = reference[i]
			} else if m.Attacks[idx] != reference[i] {
				break
			}
		}
		if i == size {
			return
		}
	}
}

// PrnG random generator for magic bitboards.
// xorshift64star Pseudo-Random Number Generator
// This class is based on original code written and dedicated
// to the public domain by Sebastiano Vigna (2014).
// It has the following characteristics:
//  -  Outputs 64-bit numbers
//  -  Passes Dieharder and SmallCrush test batteries
//  -  Does not require warm-up, no zeroland to escape
//  -  Internal state is a single 64-bit integer
//  -  Period is 2^64 - 1
// For further analysis see
//   <http://vigna.di.unimi.it/ftp/papers/xorshift.pdf>
type PrnG struct {
	s uint64
}

// newPrnG creates a new instance of the pseudo random generator.
// The seed must not be zero.
func newPrnG(seed uint64) *PrnG {
	return &PrnG{s: seed}
}

func (r *PrnG) rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// Special generator used to fast init magic numbers.
// Output values only have 1/8th of their bits set on average.
func (r *PrnG) sparseRand() uint64 {
	return r.rand64() & r.rand64() & r.rand64()
}
