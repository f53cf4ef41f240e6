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

package engine

import (
	. "github.com/kjrix/chesscore/internal/chesstypes"
	"github.com/kjrix/chesscore/internal/movegen"
)

// Exists reports whether owner has a game in progress (of any status).
func (e *Engine) Exists(owner Owner) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.games[owner]
	return ok
}

// Board returns a snapshot of the current board for owner's game.
func (e *Engine) Board(owner Owner) (Board, error) {
	g, err := e.entry(owner)
	if err != nil {
		return Board{}, err
	}
	return g.pos.Board, nil
}

// SideToMove reports whose turn it is in owner's game.
func (e *Engine) SideToMove(owner Owner) (Color, error) {
	g, err := e.entry(owner)
	if err != nil {
		return White, err
	}
	return g.pos.SideToMove(), nil
}

// Status reports the current game status for owner.
func (e *Engine) Status(owner Owner) (Status, error) {
	g, err := e.entry(owner)
	if err != nil {
		return Active, err
	}
	return g.pos.Status, nil
}

// MoveCount reports the number of half-moves played so far.
func (e *Engine) MoveCount(owner Owner) (uint64, error) {
	g, err := e.entry(owner)
	if err != nil {
		return 0, err
	}
	return g.pos.MoveCount, nil
}

// KingSquares returns the current squares of both kings.
func (e *Engine) KingSquares(owner Owner) (white, black Square, err error) {
	g, err := e.entry(owner)
	if err != nil {
		return SqNone, SqNone, err
	}
	return g.pos.WhiteKingSq, g.pos.BlackKingSq, nil
}

// History returns the full move history for owner's game.
func (e *Engine) History(owner Owner) ([]MoveRecord, error) {
	g, err := e.entry(owner)
	if err != nil {
		return nil, err
	}
	hist := make([]MoveRecord, len(g.pos.History))
	copy(hist, g.pos.History)
	return hist, nil
}

// InCheck reports whether the side to move is currently in check.
func (e *Engine) InCheck(owner Owner) (bool, error) {
	g, err := e.entry(owner)
	if err != nil {
		return false, err
	}
	return movegen.InCheck(g.pos), nil
}
