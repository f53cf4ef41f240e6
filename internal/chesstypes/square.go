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

// Package chesstypes holds the board model shared by every other package:
// squares, pieces, moves and game status. None of it depends on rules.
package chesstypes

import "fmt"

// Square is a board coordinate in [0, 64). Index = rank*8 + file; rank 0 is
// White's first rank, file 0 is the a-file. SqNone is the "no square"
// sentinel and must never be treated as a valid board index.
type Square uint8

// SqNone is the sentinel for "no square" (e.g. no en-passant target).
const SqNone Square = 255

// SqLength is the number of real squares on the board.
const SqLength = 64

// IsValid reports whether sq addresses a real board square.
func (sq Square) IsValid() bool {
	return sq < SqLength
}

// Rank returns the 0-based rank (0..7) of sq. Only meaningful if IsValid().
func (sq Square) Rank() int {
	return int(sq) >> 3
}

// File returns the 0-based file (0..7) of sq. Only meaningful if IsValid().
func (sq Square) File() int {
	return int(sq) & 7
}

// SquareOf builds a square from a 0-based rank and file. Returns SqNone if
// either coordinate is out of the [0,7] range.
func SquareOf(rank, file int) Square {
	if rank < 0 || rank > 7 || file < 0 || file > 7 {
		return SqNone
	}
	return Square(rank*8 + file)
}

// String renders a square in algebraic notation (e.g. "e4"), or "-" for
// SqNone. This is a diagnostic aid only; the engine never parses notation.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'a'+rune(sq.File()), sq.Rank()+1)
}
