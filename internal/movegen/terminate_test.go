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

package movegen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	. "github.com/kjrix/chesscore/internal/chesstypes"
	"github.com/kjrix/chesscore/internal/position"
)

func emptyGame() *position.Position {
	p := position.NewGame(time.Now())
	for sq := Square(0); sq < SqLength; sq++ {
		p.Board[sq] = NoPiece
	}
	return p
}

func TestUpdateStatusFoolsMateIsCheckmate(t *testing.T) {
	p := position.NewGame(time.Now())
	p.Apply(SquareOf(1, 5), SquareOf(2, 5), NoPieceType) // f2-f3
	p.Apply(SquareOf(6, 4), SquareOf(4, 4), NoPieceType) // e7-e5
	p.Apply(SquareOf(1, 6), SquareOf(3, 6), NoPieceType) // g2-g4
	p.Apply(SquareOf(7, 3), SquareOf(3, 7), NoPieceType) // Qd8-h4#

	status := UpdateStatus(p)
	assert.Equal(t, BlackWin, status)
	assert.True(t, status.IsTerminal())
}

func TestUpdateStatusStalemate(t *testing.T) {
	p := emptyGame()
	p.Board[SquareOf(0, 0)] = MakePiece(White, King)
	p.Board[SquareOf(2, 1)] = MakePiece(Black, Queen)
	p.Board[SquareOf(7, 7)] = MakePiece(Black, King)
	p.WhiteKingSq, p.BlackKingSq = SquareOf(0, 0), SquareOf(7, 7)
	p.WhiteToMove = true

	status := UpdateStatus(p)
	assert.Equal(t, Stalemate, status)
}

func TestUpdateStatusFiftyMoveDraw(t *testing.T) {
	p := emptyGame()
	p.Board[SquareOf(0, 0)] = MakePiece(White, King)
	p.Board[SquareOf(7, 7)] = MakePiece(Black, King)
	p.Board[SquareOf(3, 3)] = MakePiece(White, Rook)
	p.WhiteKingSq, p.BlackKingSq = SquareOf(0, 0), SquareOf(7, 7)
	p.WhiteToMove = true
	p.HalfMoveClock = 100

	assert.Equal(t, Draw, UpdateStatus(p))
}

func TestUpdateStatusInsufficientMaterialKingVsKing(t *testing.T) {
	p := emptyGame()
	p.Board[SquareOf(0, 0)] = MakePiece(White, King)
	p.Board[SquareOf(7, 7)] = MakePiece(Black, King)
	p.WhiteKingSq, p.BlackKingSq = SquareOf(0, 0), SquareOf(7, 7)
	p.WhiteToMove = true

	assert.Equal(t, Draw, UpdateStatus(p))
}

func TestUpdateStatusActiveWithMaterialAndMoves(t *testing.T) {
	p := position.NewGame(time.Now())
	assert.Equal(t, Active, UpdateStatus(p))
}

func TestInCheckReportsAttackOnSideToMove(t *testing.T) {
	p := emptyGame()
	p.Board[SquareOf(0, 4)] = MakePiece(White, King)
	p.Board[SquareOf(7, 4)] = MakePiece(Black, Rook)
	p.Board[SquareOf(7, 0)] = MakePiece(Black, King)
	p.WhiteKingSq, p.BlackKingSq = SquareOf(0, 4), SquareOf(7, 0)
	p.WhiteToMove = true

	assert.True(t, InCheck(p))
}
