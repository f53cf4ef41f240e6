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

package chesstypes

import "fmt"

// MoveRecord is the immutable record of one applied half-move. It is a
// plain value: no references into the board, so history and undo stay
// self-contained.
type MoveRecord struct {
	From        Square
	To          Square
	Promotion   PieceType // NoPieceType if not a promotion
	Captured    PieceType // NoPieceType if no capture; Pawn for en passant
	IsCastling  bool
	IsEnPassant bool
}

func (m MoveRecord) String() string {
	s := fmt.Sprintf("%s%s", m.From, m.To)
	if m.Promotion != NoPieceType {
		s += "=" + m.Promotion.String()
	}
	return s
}

// IsCapture reports whether the move removed an enemy piece from the board.
func (m MoveRecord) IsCapture() bool {
	return m.Captured != NoPieceType
}

// Status is the terminal/non-terminal state of a Position. Transitions only
// flow Active -> terminal; terminal states are frozen.
type Status uint8

const (
	Active Status = iota
	WhiteWin
	BlackWin
	Draw
	Stalemate
)

func (s Status) String() string {
	switch s {
	case Active:
		return "active"
	case WhiteWin:
		return "white_win"
	case BlackWin:
		return "black_win"
	case Draw:
		return "draw"
	case Stalemate:
		return "stalemate"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether the status is final and frozen.
func (s Status) IsTerminal() bool {
	return s != Active
}
