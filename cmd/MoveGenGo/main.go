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

package main

import (
	"flag"
	"os"
	"runtime"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/MoveGenGo/internal/board"
	"github.com/frankkopp/MoveGenGo/internal/config"
	"github.com/frankkopp/MoveGenGo/internal/logging"
	"github.com/frankkopp/MoveGenGo/internal/movegen"
	"github.com/frankkopp/MoveGenGo/internal/testsuite"
	"github.com/frankkopp/MoveGenGo/internal/types"
	"github.com/frankkopp/MoveGenGo/internal/version"
)

var out = message.NewPrinter(language.German)

func main() {
	// command line args
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "info", "standard log level\n(critical|error|warning|notice|info|debug)")
	fen := flag.String("fen", board.StartFen, "fen for the perft test")
	perft := flag.Int("perft", 0, "runs perft from depth 1 up to the given depth on the position given with -fen")
	testSuite := flag.String("testsuite", "", "path to a file containing EPD perft tests")
	profiling := flag.Bool("profile", false, "writes a cpu profile of the run to the working directory")
	flag.Parse()

	// print version info and exit
	if *versionInfo {
		printVersionInfo()
		return
	}

	// set config file
	// this needs to be set before config.Setup() is called. Otherwise the default will be used.
	config.ConfFile = *configFile

	// read config file
	config.Setup()

	// set log level from cmd line options overwriting config file or defaults
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}

	// resetting log level of the standard log - required as most packages include
	// the standard logger as a global var and therefore even before main() is
	// called. These loggers start with the default log level and must be reset
	// to the actual level required.
	logging.GetLog()

	if *profiling {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	// the attack tables are built when the types package is loaded -
	// the explicit call documents the dependency and is a no op here
	types.Init()

	// perft
	if *perft != 0 {
		perftTest := movegen.NewPerft()
		perftTest.StartPerftMulti(*fen, 1, *perft)
		return
	}

	// execute test suite if command line option is given
	if *testSuite != "" {
		ts, err := testsuite.NewTestSuite(*testSuite)
		if err != nil {
			out.Printf("Could not read test suite: %s\n", err)
			os.Exit(1)
		}
		if !ts.RunTests() {
			os.Exit(1)
		}
		return
	}

	flag.Usage()
}

func printVersionInfo() {
	out.Printf("MoveGenGo %s\n", version.Version())
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
