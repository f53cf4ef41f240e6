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
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kjrix/chesscore/internal/chesserr"
	. "github.com/kjrix/chesscore/internal/chesstypes"
	"github.com/kjrix/chesscore/internal/movegen"
	"github.com/kjrix/chesscore/internal/position"
	"golang.org/x/sync/semaphore"
)

func TestNewGameCreatesAnActiveGame(t *testing.T) {
	e := NewEngine()
	e.NewGame("alice")
	assert.True(t, e.Exists("alice"))
	status, err := e.Status("alice")
	assert.NoError(t, err)
	assert.Equal(t, Active, status)
}

func TestQueriesErrorForUnknownOwner(t *testing.T) {
	e := NewEngine()
	_, err := e.Status("nobody")
	kind, ok := chesserr.KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, chesserr.GameNotFound, kind)
}

func TestMakeMoveAppliesCallerMoveAndEngineReply(t *testing.T) {
	e := NewEngine()
	e.NewGame("alice")

	caller, reply, err := e.MakeMove(context.Background(), "alice", SquareOf(1, 4), SquareOf(3, 4), NoPieceType)
	assert.NoError(t, err)
	assert.Equal(t, SquareOf(1, 4), caller.From)
	assert.NotNil(t, reply)

	count, err := e.MoveCount("alice")
	assert.NoError(t, err)
	assert.Equal(t, uint64(2), count)
}

func TestMakeMoveRejectsIllegalMoveWithoutMutatingGame(t *testing.T) {
	e := NewEngine()
	e.NewGame("alice")

	_, _, err := e.MakeMove(context.Background(), "alice", SquareOf(1, 4), SquareOf(4, 4), NoPieceType)
	assert.Error(t, err)

	count, _ := e.MoveCount("alice")
	assert.Equal(t, uint64(0), count)
}

func TestResignEndsTheGame(t *testing.T) {
	e := NewEngine()
	e.NewGame("alice")

	err := e.Resign(context.Background(), "alice")
	assert.NoError(t, err)

	status, _ := e.Status("alice")
	assert.True(t, status.IsTerminal())
	assert.Equal(t, BlackWin, status)
}

func TestClaimDrawFailsBeforeFiftyMoveThreshold(t *testing.T) {
	e := NewEngine()
	e.NewGame("alice")

	err := e.ClaimDraw(context.Background(), "alice")
	assert.Error(t, err)
	kind, _ := chesserr.KindOf(err)
	assert.Equal(t, chesserr.CannotClaimDraw, kind)
}

func TestClaimDrawSucceedsWithInsufficientMaterial(t *testing.T) {
	e := NewEngine()
	e.NewGame("alice")

	pos := position.NewGame(time.Now())
	for sq := Square(0); sq < SqLength; sq++ {
		pos.Board[sq] = NoPiece
	}
	pos.Board[SquareOf(0, 0)] = MakePiece(White, King)
	pos.Board[SquareOf(0, 1)] = MakePiece(White, Knight)
	pos.Board[SquareOf(7, 7)] = MakePiece(Black, King)
	pos.WhiteKingSq = SquareOf(0, 0)
	pos.BlackKingSq = SquareOf(7, 7)
	pos.WhiteToMove = true
	pos.HalfMoveClock = 0
	e.games["alice"] = &gameEntry{sem: semaphore.NewWeighted(1), pos: pos}

	assert.True(t, movegen.IsInsufficientMaterial(pos))

	err := e.ClaimDraw(context.Background(), "alice")
	assert.NoError(t, err)

	status, _ := e.Status("alice")
	assert.Equal(t, Draw, status)
}

func TestInCheckReflectsPositionState(t *testing.T) {
	e := NewEngine()
	e.NewGame("alice")

	inCheck, err := e.InCheck("alice")
	assert.NoError(t, err)
	assert.False(t, inCheck)
}
