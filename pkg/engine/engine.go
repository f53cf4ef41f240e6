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

// Package engine is the public surface of the library: an owner-keyed
// set of games, each guarded against concurrent mutation by its own
// semaphore so one slow caller never blocks unrelated games.
package engine

import (
	"context"
	"sync"
	"time"

	gologging "github.com/op/go-logging"
	"golang.org/x/sync/semaphore"

	"github.com/kjrix/chesscore/internal/chesserr"
	. "github.com/kjrix/chesscore/internal/chesstypes"
	"github.com/kjrix/chesscore/internal/logging"
	"github.com/kjrix/chesscore/internal/movegen"
	"github.com/kjrix/chesscore/internal/position"
	"github.com/kjrix/chesscore/internal/search"
)

// Owner identifies the human side of a single game.
type Owner string

const fiftyMoveLimit = 100

type gameEntry struct {
	sem *semaphore.Weighted
	pos *position.Position
}

// Engine holds every in-progress game and the shared search used to pick
// the engine's replies. The zero value is not usable; construct with
// NewEngine.
type Engine struct {
	log    *gologging.Logger
	search *search.Search

	mu    sync.Mutex
	games map[Owner]*gameEntry
}

// NewEngine creates an Engine with no games in progress.
func NewEngine() *Engine {
	return &Engine{
		log:    logging.GetLog("engine"),
		search: search.NewSearch(),
		games:  make(map[Owner]*gameEntry),
	}
}

// NewGame starts a fresh game for owner, replacing any game already in
// progress for that owner.
func (e *Engine) NewGame(owner Owner) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.games[owner] = &gameEntry{
		sem: semaphore.NewWeighted(1),
		pos: position.NewGame(time.Now()),
	}
	e.log.Infof("new game started for %s", owner)
}

func (e *Engine) entry(owner Owner) (*gameEntry, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	g, ok := e.games[owner]
	if !ok {
		return nil, chesserr.New(chesserr.GameNotFound, "no game in progress for this owner")
	}
	return g, nil
}

// MakeMove validates and applies the caller's move, then - if the game
// is still active - searches for and applies the engine's reply. The
// whole transaction happens under the owner's semaphore so it is atomic
// with respect to other calls for the same owner. It returns the
// caller's applied move and, if the game continues, the engine's reply;
// reply is nil if the caller's move ended the game.
func (e *Engine) MakeMove(ctx context.Context, owner Owner, from, to Square, promotion PieceType) (MoveRecord, *MoveRecord, error) {
	g, err := e.entry(owner)
	if err != nil {
		return MoveRecord{}, nil, err
	}
	if err := g.sem.Acquire(ctx, 1); err != nil {
		return MoveRecord{}, nil, err
	}
	defer g.sem.Release(1)

	if g.pos.Status.IsTerminal() {
		return MoveRecord{}, nil, chesserr.New(chesserr.GameOver, "game has already ended")
	}

	rec, err := movegen.ValidateMove(g.pos, from, to, promotion)
	if err != nil {
		return MoveRecord{}, nil, err
	}
	g.pos.Apply(from, to, promotion)
	movegen.UpdateStatus(g.pos)

	if g.pos.Status.IsTerminal() {
		e.log.Infof("%s played %s, game ended: %s", owner, rec, g.pos.Status)
		return rec, nil, nil
	}

	reply, err := e.search.ChooseReply(g.pos)
	if err != nil {
		e.log.Warningf("%s played %s but no reply could be found: %v", owner, rec, err)
		movegen.UpdateStatus(g.pos)
		return rec, nil, nil
	}
	g.pos.Apply(reply.From, reply.To, reply.Promotion)
	movegen.UpdateStatus(g.pos)

	e.log.Infof("%s played %s, engine replied %s", owner, rec, reply)
	return rec, &reply, nil
}

// Resign ends owner's game with the opposite side winning.
func (e *Engine) Resign(ctx context.Context, owner Owner) error {
	g, err := e.entry(owner)
	if err != nil {
		return err
	}
	if err := g.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer g.sem.Release(1)

	if g.pos.Status.IsTerminal() {
		return chesserr.New(chesserr.GameOver, "game has already ended")
	}
	if g.pos.SideToMove() == White {
		g.pos.Status = BlackWin
	} else {
		g.pos.Status = WhiteWin
	}
	e.log.Infof("%s resigned, game ended: %s", owner, g.pos.Status)
	return nil
}

// ClaimDraw ends owner's game as a draw if the fifty-move counter has
// reached its limit or the material on the board is insufficient to
// mate; otherwise it reports CannotClaimDraw.
func (e *Engine) ClaimDraw(ctx context.Context, owner Owner) error {
	g, err := e.entry(owner)
	if err != nil {
		return err
	}
	if err := g.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer g.sem.Release(1)

	if g.pos.Status.IsTerminal() {
		return chesserr.New(chesserr.GameOver, "game has already ended")
	}
	if g.pos.HalfMoveClock < fiftyMoveLimit && !movegen.IsInsufficientMaterial(g.pos) {
		return chesserr.New(chesserr.CannotClaimDraw, "neither fifty-move nor insufficient-material threshold holds")
	}
	g.pos.Status = Draw
	e.log.Infof("%s claimed a draw", owner)
	return nil
}
