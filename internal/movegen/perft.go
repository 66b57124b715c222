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

package movegen

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/MoveGenGo/internal/attacks"
	"github.com/frankkopp/MoveGenGo/internal/board"
	. "github.com/frankkopp/MoveGenGo/internal/types"
	"github.com/frankkopp/MoveGenGo/internal/util"
)

var out = message.NewPrinter(language.German)

// Perft is a class to test the move generation of the chess engine.
// It counts the leaf nodes of the legal move tree to a given depth
// and tracks counters for the special move types on the way.
type Perft struct {
	Nodes            uint64
	CheckCounter     uint64
	CheckMateCounter uint64
	CaptureCounter   uint64
	EnpassantCounter uint64
	CastleCounter    uint64
	PromotionCounter uint64
	stopFlag         bool
}

// NewPerft creates a new empty Perft instance
func NewPerft() *Perft {
	return &Perft{}
}

// Stop can be used when perft has been started
// in a goroutine to stop the currently running
// perft test
func (perft *Perft) Stop() {
	perft.stopFlag = true
}

// StartPerftMulti runs perft for all depths from startDepth
// to endDepth on the given position.
// If this has been started in a go routine it can be stopped via Stop()
func (perft *Perft) StartPerftMulti(fen string, startDepth int, endDepth int) {
	perft.stopFlag = false
	for i := startDepth; i <= endDepth; i++ {
		if perft.stopFlag {
			out.Print("Perft multi depth stopped\n")
			return
		}
		perft.StartPerft(fen, i)
	}
}

// StartPerft runs perft on the position given as a FEN string
// to the given depth and reports the results.
// If this has been started in a go routine it can be stopped via Stop()
func (perft *Perft) StartPerft(fen string, depth int) {
	out.Printf("Performing PERFT Test for Depth %d\n", depth)
	out.Printf("FEN: %s\n", fen)
	out.Printf("-----------------------------------------\n")

	// the actual perft call
	start := time.Now()
	_, err := perft.RunPerft(fen, depth)
	elapsed := time.Since(start)

	if err != nil {
		out.Printf("Perft aborted: %s\n", err)
		return
	}
	if perft.stopFlag {
		out.Print("Perft stopped\n")
		return
	}

	out.Printf("Time         : %s\n", elapsed)
	out.Printf("NPS          : %d nps\n", util.Nps(perft.Nodes, elapsed))
	out.Printf("Results:\n")
	out.Printf("   Nodes     : %d\n", perft.Nodes)
	out.Printf("   Captures  : %d\n", perft.CaptureCounter)
	out.Printf("   EnPassant : %d\n", perft.EnpassantCounter)
	out.Printf("   Checks    : %d\n", perft.CheckCounter)
	out.Printf("   CheckMates: %d\n", perft.CheckMateCounter)
	out.Printf("   Castles   : %d\n", perft.CastleCounter)
	out.Printf("   Promotions: %d\n", perft.PromotionCounter)
	out.Printf("-----------------------------------------\n")
	out.Printf("Finished PERFT Test for Depth %d\n\n", depth)
}

// RunPerft runs the perft node count on the position given as a FEN
// string to the given depth without printing a report. The counters
// of the instance are reset before the run and hold the result
// afterwards.
func (perft *Perft) RunPerft(fen string, depth int) (uint64, error) {
	perft.stopFlag = false

	// set 1 as minimum
	if depth <= 0 {
		depth = 1
	}

	// prepare
	perft.resetCounter()
	state, color, err := board.NewStateFen(fen)
	if err != nil {
		return 0, err
	}
	// a move generator instance per depth so the reused move buffers
	// of the recursion levels do not overwrite each other
	mgList := make([]*Movegen, depth+1)
	for i := 0; i <= depth; i++ {
		mgList[i] = NewMoveGen()
	}

	perft.Nodes = perft.miniMax(depth, &state, color, mgList)
	return perft.Nodes, nil
}

func (perft *Perft) miniMax(depth int, s *board.State, c Color, mgList []*Movegen) uint64 {
	totalNodes := uint64(0)
	opponent := c.Flip()
	// moves to search recursively
	moves := mgList[depth].GeneratePseudoLegalMoves(s, c)
	for _, move := range *moves {
		if perft.stopFlag {
			return 0
		}
		if depth > 1 {
			next := s.ApplyMove(move)
			if !attacks.InCheck(&next, c) {
				totalNodes += perft.miniMax(depth-1, &next, opponent, mgList)
			}
		} else {
			capture := s.OccupiedBb(opponent).Has(move.To)
			enpassant := move.Piece.KindOf() == Pawn && move.To.Bb() == s.EnPassant[opponent]
			next := s.ApplyMove(move)
			if attacks.InCheck(&next, c) {
				continue
			}
			totalNodes++
			if enpassant {
				perft.EnpassantCounter++
				perft.CaptureCounter++
			}
			if capture {
				perft.CaptureCounter++
			}
			if move.Castling {
				perft.CastleCounter++
			}
			if move.IsPromotion() {
				perft.PromotionCounter++
			}
			if attacks.InCheck(&next, opponent) {
				perft.CheckCounter++
				if !mgList[0].HasLegalMove(&next, opponent) {
					perft.CheckMateCounter++
				}
			}
		}
	}
	return totalNodes
}

func (perft *Perft) resetCounter() {
	perft.Nodes = 0
	perft.CheckCounter = 0
	perft.CheckMateCounter = 0
	perft.CaptureCounter = 0
	perft.EnpassantCounter = 0
	perft.CastleCounter = 0
	perft.PromotionCounter = 0
}
