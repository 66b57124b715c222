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

package config

// logConfiguration holds the log levels read from the config file.
// Empty values leave the defaults untouched.
type logConfiguration struct {
	LogLvl     string
	TestLogLvl string
}

// LogLevels maps the level names of the config file and the command
// line options to the level values of the go-logging package
var LogLevels = map[string]int{
	"critical": 0,
	"error":    1,
	"warning":  2,
	"notice":   3,
	"info":     4,
	"debug":    5,
}

// setupLogLvl applies the log levels of the configuration file
func setupLogLvl() {
	if lvl, found := LogLevels[Settings.Log.LogLvl]; found {
		LogLevel = lvl
	}
	if lvl, found := LogLevels[Settings.Log.TestLogLvl]; found {
		TestLogLevel = lvl
	}
}
