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

// Package search implements a fixed-depth negamax alpha-beta search
// with a quiescence extension and late-move reduction, choosing a
// single reply move for a position. There is deliberately no
// iterative deepening, transposition table, or time control here -
// this engine always walks the same fixed tree at a fixed depth.
package search

import (
	gologging "github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kjrix/chesscore/internal/chesserr"
	. "github.com/kjrix/chesscore/internal/chesstypes"
	"github.com/kjrix/chesscore/internal/config"
	"github.com/kjrix/chesscore/internal/evaluator"
	"github.com/kjrix/chesscore/internal/logging"
	"github.com/kjrix/chesscore/internal/movegen"
	"github.com/kjrix/chesscore/internal/position"
)

// Search holds the evaluator and logger a reply search needs. It carries
// no per-search mutable state, so one instance can be reused across
// calls; pkg/engine keeps one per Engine.
type Search struct {
	log  *gologging.Logger
	eval *evaluator.Evaluator
	out  *message.Printer
}

// NewSearch creates a Search instance.
func NewSearch() *Search {
	return &Search{
		log:  logging.GetLog("search"),
		eval: evaluator.NewEvaluator(),
		out:  message.NewPrinter(language.English),
	}
}

// ChooseReply runs the bounded-depth search and returns the move it
// judges best for the side to move. It returns chesserr.ErrNoLegalMoves
// if pos has no legal moves at all.
func (s *Search) ChooseReply(pos *position.Position) (MoveRecord, error) {
	moves := movegen.GenerateMoves(pos, pos.SideToMove())
	if len(moves) == 0 {
		return MoveRecord{}, chesserr.New(chesserr.NoLegalMoves, "no legal moves available for side to move")
	}

	depth := config.Settings.Search.SearchDepth
	alpha, beta := -ScoreInf, ScoreInf

	var nodes uint64
	best := moves[0]
	bestScore := -ScoreInf
	for _, m := range moves {
		child := pos.Clone()
		child.Apply(m.From, m.To, m.Promotion)
		score := -s.negamax(child, depth-1, 1, -beta, -alpha, &nodes)

		if score > bestScore || (score == bestScore && tieBreakKey(m, pos.MoveCount) < tieBreakKey(best, pos.MoveCount)) {
			bestScore = score
			best = m
		}
		if score > alpha {
			alpha = score
		}
	}
	s.log.Debug(s.out.Sprintf("chose %s: %d nodes searched at depth %d, score %d", best, nodes, depth, int(bestScore)))
	return best, nil
}

// negamax is the recursive alpha-beta core. depth counts down to zero,
// at which point the quiescence search takes over; ply counts up from
// the root and is used only to prefer shorter mates over longer ones.
// nodes accumulates a per-call visit count for diagnostic logging.
func (s *Search) negamax(pos *position.Position, depth, ply int, alpha, beta Score, nodes *uint64) Score {
	*nodes++
	moves := movegen.GenerateMoves(pos, pos.SideToMove())
	if len(moves) == 0 {
		if movegen.InCheck(pos) {
			return -mateIn(ply)
		}
		return ScoreDraw
	}
	if depth <= 0 {
		return s.quiescence(pos, 0, alpha, beta, nodes)
	}

	best := -ScoreInf
	for i, m := range moves {
		child := pos.Clone()
		child.Apply(m.From, m.To, m.Promotion)

		searchDepth := depth - 1
		reduced := false
		if i >= config.Settings.Search.LmrFullSearchMoves && !m.IsCapture() {
			searchDepth -= config.Settings.Search.LmrReduction
			if searchDepth < 0 {
				searchDepth = 0
			}
			reduced = true
		}

		score := -s.negamax(child, searchDepth, ply+1, -beta, -alpha, nodes)
		if reduced && score > alpha {
			// the reduced search beat alpha: re-verify at full depth.
			score = -s.negamax(child, depth-1, ply+1, -beta, -alpha, nodes)
		}

		if score > best {
			best = score
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			break
		}
	}
	return best
}

// quiescence extends the search along capture sequences only, to avoid
// misjudging a position in the middle of an exchange. qdepth is capped
// by config.Settings.Search.QuiescenceDepth.
func (s *Search) quiescence(pos *position.Position, qdepth int, alpha, beta Score, nodes *uint64) Score {
	*nodes++
	standPat := Score(s.eval.Evaluate(pos))
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}
	if qdepth >= config.Settings.Search.QuiescenceDepth {
		return alpha
	}

	captures := movegen.GenerateCaptures(pos, pos.SideToMove())
	for _, m := range captures {
		child := pos.Clone()
		child.Apply(m.From, m.To, m.Promotion)
		score := -s.quiescence(child, qdepth+1, -beta, -alpha, nodes)
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

// tieBreakKey gives a deterministic, reproducible ordering for moves
// that the search judges exactly equal in value, so ChooseReply never
// depends on map iteration or slice-sort instability to pick among
// them. Lower keys win ties.
func tieBreakKey(m MoveRecord, moveCount uint64) int {
	return (int(m.From)*7 + int(m.To)*3 + int(moveCount)) % 5
}
