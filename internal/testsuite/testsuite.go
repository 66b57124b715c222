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

// Package testsuite runs perft test suites in the common EPD based
// format where each line holds a position and the expected perft node
// counts per depth:
//  <fen> ;D1 20 ;D2 400 ;D3 8902
// Lines starting with # and empty lines are ignored.
package testsuite

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/MoveGenGo/internal/config"
	myLogging "github.com/frankkopp/MoveGenGo/internal/logging"
	"github.com/frankkopp/MoveGenGo/internal/movegen"
	"github.com/frankkopp/MoveGenGo/internal/util"
)

var out = message.NewPrinter(language.German)

// Test is a single perft expectation - a position, a depth and the
// expected number of leaf nodes.
type Test struct {
	Fen      string
	Depth    int
	Expected uint64
}

// Result is the outcome of a single executed Test.
type Result struct {
	Test    Test
	Nodes   uint64
	Success bool
}

// TestSuite runs a list of perft tests read from an EPD file.
type TestSuite struct {
	FilePath string
	Tests    []Test
	Results  []Result
	log      *logging.Logger
}

// NewTestSuite reads the given EPD file and creates a test suite
// with one Test per position and depth entry.
func NewTestSuite(filePath string) (*TestSuite, error) {
	resolved, err := util.ResolveFile(filePath)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(resolved)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	ts := &TestSuite{
		FilePath: resolved,
		log:      myLogging.GetLog(),
	}

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		tests, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %s", resolved, lineNo, err)
		}
		ts.Tests = append(ts.Tests, tests...)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ts, nil
}

// parseLine splits an EPD perft line into one Test per depth field
func parseLine(line string) ([]Test, error) {
	parts := strings.Split(line, ";")
	fen := strings.TrimSpace(parts[0])
	if fen == "" {
		return nil, fmt.Errorf("line has no fen: %q", line)
	}
	var tests []Test
	for _, part := range parts[1:] {
		fields := strings.Fields(part)
		if len(fields) != 2 || !strings.HasPrefix(fields[0], "D") {
			return nil, fmt.Errorf("invalid depth field %q", part)
		}
		depth, err := strconv.Atoi(fields[0][1:])
		if err != nil {
			return nil, fmt.Errorf("invalid depth in field %q", part)
		}
		expected, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid node count in field %q", part)
		}
		tests = append(tests, Test{Fen: fen, Depth: depth, Expected: expected})
	}
	return tests, nil
}

// RunTests executes all tests of the suite and returns true when all
// of them produced the expected node count. When the Perft
// configuration enables ParallelSuite the tests are executed
// concurrently. Results are stored on the suite in test order.
func (ts *TestSuite) RunTests() bool {
	ts.Results = make([]Result, len(ts.Tests))

	start := time.Now()
	if config.Settings.Perft.ParallelSuite {
		var g errgroup.Group
		for i, test := range ts.Tests {
			i, test := i, test
			g.Go(func() error {
				ts.Results[i] = runTest(test)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i, test := range ts.Tests {
			ts.Results[i] = runTest(test)
		}
	}
	elapsed := time.Since(start)

	// report
	allOk := true
	nodes := uint64(0)
	for _, r := range ts.Results {
		status := "OK  "
		if !r.Success {
			status = "FAIL"
			allOk = false
		}
		ts.log.Infof("%s depth %d expected %d got %d : %s",
			status, r.Test.Depth, r.Test.Expected, r.Nodes, r.Test.Fen)
		nodes += r.Nodes
	}
	out.Printf("Test suite %s: %d tests, %d nodes in %s (%d nps)\n",
		ts.FilePath, len(ts.Tests), nodes, elapsed, util.Nps(nodes, elapsed))
	return allOk
}

// runTest executes a single perft test with its own Perft instance
// so tests can run concurrently
func runTest(test Test) Result {
	perft := movegen.NewPerft()
	nodes, err := perft.RunPerft(test.Fen, test.Depth)
	return Result{
		Test:    test,
		Nodes:   nodes,
		Success: err == nil && nodes == test.Expected,
	}
}
