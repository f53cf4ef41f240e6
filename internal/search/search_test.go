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

package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kjrix/chesscore/internal/chesserr"
	. "github.com/kjrix/chesscore/internal/chesstypes"
	"github.com/kjrix/chesscore/internal/position"
)

func TestChooseReplyReturnsALegalMoveFromOpeningPosition(t *testing.T) {
	p := position.NewGame(time.Now())
	s := NewSearch()
	m, err := s.ChooseReply(p)
	assert.NoError(t, err)
	assert.True(t, m.From.IsValid())
	assert.True(t, m.To.IsValid())
}

func TestChooseReplyTakesAFreeQueen(t *testing.T) {
	p := position.NewGame(time.Now())
	for sq := Square(0); sq < SqLength; sq++ {
		p.Board[sq] = NoPiece
	}
	p.Board[SquareOf(0, 4)] = MakePiece(White, King)
	p.Board[SquareOf(7, 4)] = MakePiece(Black, King)
	p.Board[SquareOf(3, 3)] = MakePiece(White, Rook)
	p.Board[SquareOf(3, 7)] = MakePiece(Black, Queen)
	p.WhiteKingSq, p.BlackKingSq = SquareOf(0, 4), SquareOf(7, 4)
	p.WhiteToMove = true

	s := NewSearch()
	m, err := s.ChooseReply(p)
	assert.NoError(t, err)
	assert.Equal(t, SquareOf(3, 3), m.From)
	assert.Equal(t, SquareOf(3, 7), m.To)
	assert.Equal(t, Queen, m.Captured)
}

func TestChooseReplyErrorsWithNoLegalMoves(t *testing.T) {
	p := position.NewGame(time.Now())
	for sq := Square(0); sq < SqLength; sq++ {
		p.Board[sq] = NoPiece
	}
	p.Board[SquareOf(0, 0)] = MakePiece(White, King)
	p.Board[SquareOf(2, 1)] = MakePiece(Black, Queen)
	p.Board[SquareOf(7, 7)] = MakePiece(Black, King)
	p.WhiteKingSq, p.BlackKingSq = SquareOf(0, 0), SquareOf(7, 7)
	p.WhiteToMove = true

	s := NewSearch()
	_, err := s.ChooseReply(p)
	kind, ok := chesserr.KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, chesserr.NoLegalMoves, kind)
}

// TestNegamaxAppliesLateMoveReductionAndReSearch builds an interior node
// (negamax, not the unreduced root loop in ChooseReply) with nine quiet
// moves ahead of a winning promotion in move-generation order (squares
// are scanned by increasing index, so Ka1-b1 and the eight a2-d2 pushes
// sort before e7). The promotion lands at index 9, past the default
// LmrFullSearchMoves of 3, and is not a capture, so it is reduced first;
// its material swing is large enough that the reduced search still
// beats alpha, which sends it through the full-depth verification
// re-search. The returned score must reflect the promoted queen: the
// best quiet push alone scores under 1000, the promotion well over it.
func TestNegamaxAppliesLateMoveReductionAndReSearch(t *testing.T) {
	p := position.NewGame(time.Now())
	for sq := Square(0); sq < SqLength; sq++ {
		p.Board[sq] = NoPiece
	}
	p.Board[SquareOf(0, 0)] = MakePiece(White, King)
	p.Board[SquareOf(7, 7)] = MakePiece(Black, King)
	p.Board[SquareOf(1, 0)] = MakePiece(White, Pawn) // a2
	p.Board[SquareOf(1, 1)] = MakePiece(White, Pawn) // b2
	p.Board[SquareOf(1, 2)] = MakePiece(White, Pawn) // c2
	p.Board[SquareOf(1, 3)] = MakePiece(White, Pawn) // d2
	p.Board[SquareOf(6, 4)] = MakePiece(White, Pawn) // e7, one step from promoting
	p.WhiteKingSq, p.BlackKingSq = SquareOf(0, 0), SquareOf(7, 7)
	p.WhiteToMove = true

	s := NewSearch()
	var nodes uint64
	score := s.negamax(p, 2, 1, -ScoreInf, ScoreInf, &nodes)
	assert.Greater(t, int(score), 1000)
	assert.Greater(t, nodes, uint64(0))
}

func TestTieBreakKeyIsDeterministic(t *testing.T) {
	m := MoveRecord{From: SquareOf(1, 4), To: SquareOf(3, 4)}
	a := tieBreakKey(m, 5)
	b := tieBreakKey(m, 5)
	assert.Equal(t, a, b)
}

func TestScoreIsMateDetectsThreshold(t *testing.T) {
	assert.True(t, mateIn(1).IsMate())
	assert.False(t, Score(500).IsMate())
}
