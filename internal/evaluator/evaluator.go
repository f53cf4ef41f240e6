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

// Package evaluator computes the static value of a position used by
// search: material plus a handful of positional bonuses, always
// computed from white's perspective and flipped for the side to move
// last.
package evaluator

import (
	gologging "github.com/op/go-logging"

	. "github.com/kjrix/chesscore/internal/chesstypes"
	"github.com/kjrix/chesscore/internal/config"
	"github.com/kjrix/chesscore/internal/logging"
	"github.com/kjrix/chesscore/internal/movegen"
	"github.com/kjrix/chesscore/internal/position"
)

// Evaluator holds no per-position state; it is safe for concurrent use
// by independent searches, each operating on its own Position.
type Evaluator struct {
	log *gologging.Logger
}

// NewEvaluator creates an Evaluator instance.
func NewEvaluator() *Evaluator {
	return &Evaluator{log: logging.GetLog("evaluator")}
}

// Evaluate returns the position's value in centipawns from the
// perspective of the side to move: positive favors the mover, negative
// favors the opponent.
func (e *Evaluator) Evaluate(pos *position.Position) int {
	if movegen.IsInsufficientMaterial(pos) {
		e.log.Debug("insufficient material, evaluating as a dead draw")
		return 0
	}

	score := 0
	for sq := Square(0); sq < SqLength; sq++ {
		p := pos.Board[sq]
		if p.IsEmpty() {
			continue
		}
		sign := signOf(p.Color())
		score += sign * materialValue(p.Type())
		score += sign * positionalValue(p, sq, pos)
	}

	if pos.SideToMove() == Black {
		score = -score
	}
	return score
}

func signOf(c Color) int {
	if c == White {
		return 1
	}
	return -1
}

func materialValue(pt PieceType) int {
	switch pt {
	case Pawn:
		return config.Settings.Eval.PawnValue
	case Knight:
		return config.Settings.Eval.KnightValue
	case Bishop:
		return config.Settings.Eval.BishopValue
	case Rook:
		return config.Settings.Eval.RookValue
	case Queen:
		return config.Settings.Eval.QueenValue
	case King:
		return config.Settings.Eval.KingValue
	default:
		return 0
	}
}

func positionalValue(p Piece, sq Square, pos *position.Position) int {
	switch p.Type() {
	case Pawn:
		return pawnValue(sq, p.Color())
	case Knight:
		return knightValue(sq)
	case Bishop:
		return bishopValue(sq)
	case Rook:
		return rookValue(sq, p.Color())
	case Queen:
		return queenValue(sq)
	case King:
		return kingValue(p, sq, pos)
	default:
		return 0
	}
}

func isCentral(sq Square) bool {
	r, f := sq.Rank(), sq.File()
	return r >= 2 && r <= 5 && f >= 2 && f <= 5
}

func isEdge(sq Square) bool {
	r, f := sq.Rank(), sq.File()
	return r == 0 || r == 7 || f == 0 || f == 7
}
