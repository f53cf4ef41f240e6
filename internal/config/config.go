//
// chesscore - a deterministic chess rules engine and bounded-depth search
//
// MIT License
//
// Copyright (c) 2024 chesscore contributors
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

// Package config holds globally available configuration, either left at
// compiled-in defaults or overridden by a TOML file.
package config

import (
	"log"

	"github.com/BurntSushi/toml"
)

// ConfFile is the path to the config file, relative to the working
// directory unless overridden (e.g. by a command line flag).
var ConfFile = "./config.toml"

// LogLevel is the go-logging level (0=CRITICAL .. 5=DEBUG) used by
// internal/logging. Set from Settings.Log.Level once Setup has run.
var LogLevel = 4 // INFO

// LogPath is an optional file path internal/logging appends to in
// addition to stdout. Empty means stdout only.
var LogPath = ""

// Settings is the global configuration, populated by Setup.
var Settings conf

var initialized = false

type conf struct {
	Search searchConfiguration
	Eval   evalConfiguration
	Log    logConfiguration
}

// logConfiguration holds the logging tunables. Level follows
// go-logging's scale (0=CRITICAL .. 5=DEBUG); Path is optional.
type logConfiguration struct {
	Level int
	Path  string
}

func init() {
	Settings.Log.Level = 4 // INFO
	Settings.Log.Path = ""
}

// Setup decodes the TOML file at ConfFile over the compiled-in defaults.
// A missing or malformed file is not fatal: defaults remain in effect and
// the problem is logged. Calling Setup twice is a no-op.
func Setup() {
	if initialized {
		return
	}
	if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
		log.Println("chesscore: config file not used, falling back to defaults:", err)
	}
	LogLevel = Settings.Log.Level
	LogPath = Settings.Log.Path
	initialized = true
}
