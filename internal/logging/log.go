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

// Package logging wires up the shared go-logging backend used by every
// other internal package. Logging here is diagnostic only: it is never
// part of the observable contract of the engine.
package logging

import (
	"os"

	"github.com/op/go-logging"

	"github.com/kjrix/chesscore/internal/config"
)

var backendConfigured = false

// GetLog returns a named logger, configuring the shared backend on first
// use. Logging always goes to stdout; if config.LogPath is set, it also
// appends to that file.
func GetLog(name string) *logging.Logger {
	if !backendConfigured {
		format := logging.MustStringFormatter(
			`%{time:15:04:05.000} %{shortfile} %{level:7s}: %{message}`,
		)
		backends := []logging.Backend{
			logging.NewBackendFormatter(logging.NewLogBackend(os.Stdout, "", 0), format),
		}
		if config.LogPath != "" {
			if f, err := os.OpenFile(config.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
				backends = append(backends, logging.NewBackendFormatter(logging.NewLogBackend(f, "", 0), format))
			}
		}
		leveled := logging.SetBackend(backends...)
		leveled.SetLevel(logging.Level(config.LogLevel), "")
		backendConfigured = true
	}
	return logging.MustGetLogger(name)
}
