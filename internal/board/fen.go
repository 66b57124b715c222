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
	"fmt"
	"strings"

	. "github.com/frankkopp/MoveGenGo/internal/types"
)

// StartFen is the FEN notation of the standard chess starting position
const StartFen string = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewStateFen creates a board state from the given FEN string and
// returns it together with the color to move. The state itself carries
// no side-to-move field so the caller keeps track of it.
//
// FEN starts with rank 8 and file a which is exactly the square order
// of this board orientation, so the piece placement maps onto the
// squares 0-63 sequentially.
//
// Half move clock and move number fields are accepted but ignored as
// the move generator does not adjudicate draws.
func NewStateFen(fen string) (State, Color, error) {
	var s State
	c := White

	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 2 {
		return s, c, fmt.Errorf("fen must at least have piece placement and side to move: %q", fen)
	}

	// piece placement
	sq := SqA8
	for i := 0; i < len(fields[0]); i++ {
		char := fields[0][i]
		switch {
		case char == '/':
			if sq.FileOf() != FileA || sq == SqA8 {
				return s, c, fmt.Errorf("fen rank does not have 8 squares: %q", fen)
			}
		case char >= '1' && char <= '8':
			sq += Square(char - '0')
		default:
			pi, ok := PieceIndexFromChar(char)
			if !ok {
				return s, c, fmt.Errorf("fen has invalid piece letter %q: %q", string(char), fen)
			}
			if !sq.IsValid() {
				return s, c, fmt.Errorf("fen has too many squares: %q", fen)
			}
			s.PutPiece(pi, sq)
			sq++
		}
	}
	if sq != SqNone {
		return s, c, fmt.Errorf("fen does not cover all 64 squares: %q", fen)
	}
	if s.PiecesBb(White, King).PopCount() != 1 || s.PiecesBb(Black, King).PopCount() != 1 {
		return s, c, fmt.Errorf("fen must have exactly one king per side: %q", fen)
	}

	// side to move
	switch fields[1] {
	case "w":
		c = White
	case "b":
		c = Black
	default:
		return s, c, fmt.Errorf("fen has invalid side to move %q: %q", fields[1], fen)
	}

	// castling rights
	if len(fields) > 2 && fields[2] != "-" {
		for i := 0; i < len(fields[2]); i++ {
			switch fields[2][i] {
			case 'K':
				s.ShortCastle[White] = true
			case 'Q':
				s.LongCastle[White] = true
			case 'k':
				s.ShortCastle[Black] = true
			case 'q':
				s.LongCastle[Black] = true
			default:
				return s, c, fmt.Errorf("fen has invalid castling field %q: %q", fields[2], fen)
			}
		}
	}

	// en passant target square - belongs to the color which
	// just moved, i.e. the opponent of the side to move
	if len(fields) > 3 && fields[3] != "-" {
		epSq := MakeSquare(fields[3])
		if epSq == SqNone {
			return s, c, fmt.Errorf("fen has invalid en passant square %q: %q", fields[3], fen)
		}
		s.EnPassant[c.Flip()] = epSq.Bb()
	}

	return s, c, nil
}

// Fen returns the FEN string of the board state. As the state has no
// side-to-move, half move clock or move number, these are provided by
// the caller resp. fixed to 0 and 1.
func (s *State) Fen(c Color) string {
	var os strings.Builder

	// piece placement
	emptyCount := 0
	for sq := SqA8; sq < SqNone; sq++ {
		if pi, ok := s.GetPiece(sq); ok {
			if emptyCount > 0 {
				os.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			os.WriteByte(pi.Char())
		} else {
			emptyCount++
		}
		if sq.FileOf() == FileH {
			if emptyCount > 0 {
				os.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			if sq != SqH1 {
				os.WriteString("/")
			}
		}
	}

	// side to move
	os.WriteString(" ")
	os.WriteString(c.String())

	// castling rights
	os.WriteString(" ")
	castling := ""
	if s.ShortCastle[White] {
		castling += "K"
	}
	if s.LongCastle[White] {
		castling += "Q"
	}
	if s.ShortCastle[Black] {
		castling += "k"
	}
	if s.LongCastle[Black] {
		castling += "q"
	}
	if castling == "" {
		castling = "-"
	}
	os.WriteString(castling)

	// en passant target square
	os.WriteString(" ")
	ep := s.EnPassant[White] | s.EnPassant[Black]
	if ep != BbZero {
		os.WriteString(ep.Lsb().String())
	} else {
		os.WriteString("-")
	}

	os.WriteString(" 0 1")
	return os.String()
}
