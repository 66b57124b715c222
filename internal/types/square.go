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

import (
	"fmt"
)

// Square represents exactly one square on a chess board. Square 0 is
// the top left corner of the board (a8), square 63 the bottom right
// corner (h1). Black starts on the low indexes (0-15), white on the
// high indexes (48-63).
//  SqA8   Square = iota // 0
//  SqB8                 // 1
//  ...
//  SqG1                 // 62
//  SqH1                 // 63
//  SqNone               // 64
type Square uint8

//noinspection GoUnusedConst
const (
	SqA8 Square = iota // 0
	SqB8               // 1
	SqC8               // 2
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA1
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1   // 63
	SqNone // 64
)

// SqLength number of squares on a board
const SqLength int = 64

// IsValid checks a value of type square if it represents a valid
// square on a chess board (e.q. sq < 64).
func (sq Square) IsValid() bool {
	return sq < SqNone
}

// FileOf returns the file of the square
func (sq Square) FileOf() File {
	return File(sq & 7)
}

// RowOf returns the board row of the square counting from the top.
// Row 0 holds the black back rank, row 7 the white back rank.
func (sq Square) RowOf() int {
	return int(sq >> 3)
}

// RankOf returns the chess rank of the square. Rank 0 represents
// rank 1 of a chess board (white back rank).
func (sq Square) RankOf() Rank {
	return Rank(7 - (sq >> 3))
}

// MakeSquare returns a square based on the string given or SqNone if
// no valid square could be read from the string
func MakeSquare(s string) Square {
	if len(s) < 2 {
		return SqNone
	}
	file := File(s[0] - 'a')
	rank := Rank(s[1] - '1')
	if !file.IsValid() || !rank.IsValid() {
		return SqNone
	}
	return SquareOf(file, rank)
}

// SquareOf returns a square from file and rank
// Returns SqNone for invalid files or ranks
func SquareOf(f File, r Rank) Square {
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return Square(((7 - int(r)) << 3) + int(f))
}

// To returns the square on the chess board in the given direction
// or SqNone if the step would leave the board
func (sq Square) To(d Direction) Square {
	switch d {
	case North:
		return sqTo[sq][0]
	case East:
		return sqTo[sq][1]
	case South:
		return sqTo[sq][2]
	case West:
		return sqTo[sq][3]
	case Northeast:
		return sqTo[sq][4]
	case Southeast:
		return sqTo[sq][5]
	case Southwest:
		return sqTo[sq][6]
	case Northwest:
		return sqTo[sq][7]
	default:
		panic(fmt.Sprintf("Invalid direction %d", d))
	}
}

// String returns a string of the file letter and rank number (e.g. e5)
// if the sq is not a valid square returns "-"
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.FileOf().String() + sq.RankOf().String()
}

// ///////////////////////////////////////
// Initialization
// ///////////////////////////////////////

// Initialized as a package var so it is available to any init()
// function of this package independent of file order.
var sqTo = computeSqTo()

func computeSqTo() [SqLength][8]Square {
	var tmp [SqLength][8]Square
	for sq := SqA8; sq < SqNone; sq++ {
		for i, dir := range Directions {
			tmp[sq][i] = sq.toPreCompute(dir)
		}
	}
	return tmp
}

func (sq Square) toPreCompute(d Direction) Square {
	// overflows to the north or south are easily detected as <0 or >63
	// after the addition - steps with an east or west component need a
	// file check before the addition to catch the wrap around the border
	switch d {
	case North, South:
		// no file component
	case East, Northeast, Southeast:
		if sq.FileOf() == FileH {
			return SqNone
		}
	case West, Northwest, Southwest:
		if sq.FileOf() == FileA {
			return SqNone
		}
	default:
		panic(fmt.Sprintf("Invalid direction %d", d))
	}
	to := int(sq) + int(d)
	if to < 0 || to >= SqLength {
		return SqNone
	}
	return Square(to)
}
