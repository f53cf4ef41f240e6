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

// Package position holds the Position record and its mutator. It has no
// notion of legality or termination: those live in package movegen,
// which depends on position rather than the other way around, so the
// dependency graph stays acyclic. The package's caller checks legality
// before Apply and recomputes termination after it.
package position

import (
	"strings"
	"time"

	. "github.com/kjrix/chesscore/internal/chesstypes"
)

// Position is the complete game state: the board, whose turn it is, the
// running status, move counters and history. It is mutated in place by
// Apply; callers that need a pristine copy (for search simulation or
// king-safety checks) use Clone.
type Position struct {
	Board           Board
	WhiteToMove     bool
	Status          Status
	MoveCount       uint64
	History         []MoveRecord
	WhiteKingSq     Square
	BlackKingSq     Square
	EnPassantTarget Square
	HalfMoveClock   uint64
	CreatedAt       time.Time
}

// NewGame returns a Position in the canonical initial layout, Active, with
// empty history.
func NewGame(now time.Time) *Position {
	p := &Position{
		WhiteToMove:     true,
		Status:          Active,
		EnPassantTarget: SqNone,
		CreatedAt:       now,
	}
	backRank := [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < 8; file++ {
		p.Board[SquareOf(0, file)] = MakePiece(White, backRank[file])
		p.Board[SquareOf(1, file)] = MakePiece(White, Pawn)
		p.Board[SquareOf(6, file)] = MakePiece(Black, Pawn)
		p.Board[SquareOf(7, file)] = MakePiece(Black, backRank[file])
	}
	p.WhiteKingSq = SquareOf(0, 4)
	p.BlackKingSq = SquareOf(7, 4)
	return p
}

// KingSquare returns the square of color's king.
func (p *Position) KingSquare(c Color) Square {
	if c == White {
		return p.WhiteKingSq
	}
	return p.BlackKingSq
}

// SideToMove returns the color whose turn it is.
func (p *Position) SideToMove() Color {
	if p.WhiteToMove {
		return White
	}
	return Black
}

// Clone returns a deep, independent copy. History is copied so mutating the
// clone (as search simulation does) never aliases the original's slice.
func (p *Position) Clone() *Position {
	c := *p
	c.History = make([]MoveRecord, len(p.History))
	copy(c.History, p.History)
	return &c
}

// String renders an ASCII board diagram for logging and test failures.
// This is a diagnostic aid, not a FEN serializer: move notation parsing is
// out of scope for this module.
func (p *Position) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			sb.WriteString(p.Board[SquareOf(rank, file)].String())
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(p.SideToMove().String())
	sb.WriteString(" to move, status=")
	sb.WriteString(p.Status.String())
	return sb.String()
}
