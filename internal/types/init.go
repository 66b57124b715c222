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
	"sync"

	"golang.org/x/sync/errgroup"
)

var initOnce sync.Once

// Init builds all precomputed tables of the package - the leaper
// attack tables, the pawn push tables and the magic bitboard tables
// for the sliding pieces. It is idempotent and safe for concurrent
// use. The package also calls it from init() so importing the package
// is sufficient - an explicit call merely controls when the one-time
// cost is paid.
func Init() {
	initOnce.Do(func() {
		initLeaperTables()
		initMagicBitboards()
	})
}

func init() {
	Init()
}

// initMagicBitboards runs the magic number search for all squares.
// Each square has its own attack table and its own deterministic
// seed so the searches are independent and run in parallel.
func initMagicBitboards() {
	var g errgroup.Group
	for sq := SqA8; sq < SqNone; sq++ {
		sq := sq
		g.Go(func() error {
			initMagicForSquare(&rookMagics[sq], sq, &rookDirections, uint64(sq)+1)
			initMagicForSquare(&bishopMagics[sq], sq, &bishopDirections, uint64(sq)+65)
			return nil
		})
	}
	// the searches do not return errors - they panic on exhaustion
	_ = g.Wait()
}
