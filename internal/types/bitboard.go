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

// Package types defines the basic data types of the move generator -
// bitboards, squares, colors, pieces and moves - together with the
// precomputed leaper attack tables and the magic bitboard tables for
// sliding pieces.
package types

import (
	"fmt"
	"math/bits"
	"strings"
)

// Bitboard is a 64 bit unsigned int with 1 bit for each square on the board
type Bitboard uint64

// Bb returns a Bitboard with only the bit of the square set
func (sq Square) Bb() Bitboard {
	return sqBb[sq]
}

// PushSquare sets the corresponding bit of the bitboard for the square
func PushSquare(b Bitboard, s Square) Bitboard {
	return b | s.Bb()
}

// PushSquare sets the corresponding bit of the bitboard for the square
func (b *Bitboard) PushSquare(s Square) Bitboard {
	*b |= s.Bb()
	return *b
}

// PopSquare removes the corresponding bit of the bitboard for the square
func PopSquare(b Bitboard, s Square) Bitboard {
	return b &^ s.Bb()
}

// PopSquare removes the corresponding bit of the bitboard for the square
func (b *Bitboard) PopSquare(s Square) Bitboard {
	*b = *b &^ s.Bb()
	return *b
}

// Has tests if a square (bit) is set
func (b Bitboard) Has(s Square) bool {
	return b&sqBb[s] != 0
}

// Lsb returns the least significant bit of the 64-bit Bb.
// This translates directly to the Square which is returned.
// If the bitboard is empty SqNone will be returned.
// Lsb() indexes from 0-63 - 0 being the lsb and equal to SqA8
func (b Bitboard) Lsb() Square {
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLsb returns the Lsb square and removes it from the bitboard.
// The given bitboard is changed directly.
// If the bitboard is empty SqNone will be returned.
func (b *Bitboard) PopLsb() Square {
	if *b == BbZero {
		return SqNone
	}
	lsb := b.Lsb()
	*b = *b & (*b - 1)
	return lsb
}

// PopCount returns the number of one bits ("population count") in b.
// This equals the number of squares set in a Bitboard
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// String returns a string representation of the 64 bits
func (b Bitboard) String() string {
	return fmt.Sprintf("%-0.64b", b)
}

// StringBoard returns a string representation of the Bb
// as a board of 8x8 squares. The first printed row holds the
// squares 0-7 (rank 8).
func (b Bitboard) StringBoard() string {
	var os strings.Builder
	os.WriteString("+---+---+---+---+---+---+---+---+\n")
	for sq := SqA8; sq < SqNone; sq++ {
		if b.Has(sq) {
			os.WriteString("| X ")
		} else {
			os.WriteString("|   ")
		}
		if sq.FileOf() == FileH {
			os.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
		}
	}
	return os.String()
}

// StringGrouped returns a string representation of the 64 bits grouped in 8.
// Order is LSB to msb ==> A8 B8 ... G1 H1
func (b Bitboard) StringGrouped() string {
	var os strings.Builder
	for i := 0; i < 64; i++ {
		if i > 0 && i%8 == 0 {
			os.WriteString(".")
		}
		if (b & (BbOne << i)) != 0 {
			os.WriteString("1")
		} else {
			os.WriteString("0")
		}
	}
	os.WriteString(fmt.Sprintf(" (%d)", b))
	return os.String()
}

// Various constant bitboards
const (
	BbZero Bitboard = Bitboard(0)
	BbAll  Bitboard = ^BbZero
	BbOne  Bitboard = Bitboard(1)

	FileA_Bb Bitboard = 0x0101010101010101
	FileB_Bb Bitboard = FileA_Bb << 1
	FileC_Bb Bitboard = FileA_Bb << 2
	FileD_Bb Bitboard = FileA_Bb << 3
	FileE_Bb Bitboard = FileA_Bb << 4
	FileF_Bb Bitboard = FileA_Bb << 5
	FileG_Bb Bitboard = FileA_Bb << 6
	FileH_Bb Bitboard = FileA_Bb << 7

	// ranks are stored top down - rank 8 holds the squares 0-7
	Rank8_Bb Bitboard = 0xFF
	Rank7_Bb Bitboard = Rank8_Bb << (8 * 1)
	Rank6_Bb Bitboard = Rank8_Bb << (8 * 2)
	Rank5_Bb Bitboard = Rank8_Bb << (8 * 3)
	Rank4_Bb Bitboard = Rank8_Bb << (8 * 4)
	Rank3_Bb Bitboard = Rank8_Bb << (8 * 5)
	Rank2_Bb Bitboard = Rank8_Bb << (8 * 6)
	Rank1_Bb Bitboard = Rank8_Bb << (8 * 7)

	// masks to detect file wraps of single column steps
	FileAMask Bitboard = FileA_Bb
	FileHMask Bitboard = FileH_Bb
	// masks to detect file wraps of knight moves (two column steps)
	FileABMask Bitboard = FileA_Bb | FileB_Bb
	FileGHMask Bitboard = FileG_Bb | FileH_Bb
)

// ////////////////////
// Pre compute helpers
// ////////////////////

// Returns a Bb of the square by shifting the
// square onto an empty bitboard.
// Usually one would use Bb() which reads from the precomputed array.
func (sq Square) bitboard() Bitboard {
	return Bitboard(uint64(1) << sq)
}

// Internal pre computed square to square bitboard array.
// Initialized as a package var so it is available to any init()
// function of this package independent of file order.
var sqBb = computeSqBb()

func computeSqBb() [SqLength]Bitboard {
	var tmp [SqLength]Bitboard
	for sq := SqA8; sq < SqNone; sq++ {
		tmp[sq] = sq.bitboard()
	}
	return tmp
}
