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

	"github.com/kjrix/chesscore/internal/chesserr"
	. "github.com/kjrix/chesscore/internal/chesstypes"
	"github.com/kjrix/chesscore/internal/position"
)

func TestValidateMoveRejectsOutOfRangeSquare(t *testing.T) {
	p := position.NewGame(time.Now())
	_, err := ValidateMove(p, SqNone, SquareOf(3, 4), NoPieceType)
	kind, ok := chesserr.KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, chesserr.InvalidSquare, kind)
}

func TestValidateMoveRejectsEmptySquare(t *testing.T) {
	p := position.NewGame(time.Now())
	_, err := ValidateMove(p, SquareOf(3, 3), SquareOf(4, 3), NoPieceType)
	kind, _ := chesserr.KindOf(err)
	assert.Equal(t, chesserr.NoPiece, kind)
}

func TestValidateMoveRejectsWrongColor(t *testing.T) {
	p := position.NewGame(time.Now())
	_, err := ValidateMove(p, SquareOf(6, 4), SquareOf(5, 4), NoPieceType) // black pawn, white to move
	kind, _ := chesserr.KindOf(err)
	assert.Equal(t, chesserr.WrongColor, kind)
}

func TestValidateMoveAcceptsOpeningPawnDoublePush(t *testing.T) {
	p := position.NewGame(time.Now())
	rec, err := ValidateMove(p, SquareOf(1, 4), SquareOf(3, 4), NoPieceType)
	assert.NoError(t, err)
	assert.Equal(t, SquareOf(1, 4), rec.From)
	assert.Equal(t, SquareOf(3, 4), rec.To)
}

func TestValidateMoveRejectsBlockedKnightGeometry(t *testing.T) {
	p := position.NewGame(time.Now())
	_, err := ValidateMove(p, SquareOf(0, 1), SquareOf(0, 3), NoPieceType) // not an L-shape
	kind, _ := chesserr.KindOf(err)
	assert.Equal(t, chesserr.InvalidMove, kind)
}

func TestValidateMoveRejectsMoveThatExposesOwnKing(t *testing.T) {
	p := position.NewGame(time.Now())
	for sq := Square(0); sq < SqLength; sq++ {
		p.Board[sq] = NoPiece
	}
	p.Board[SquareOf(0, 4)] = MakePiece(White, King)
	p.Board[SquareOf(1, 4)] = MakePiece(White, Knight)
	p.Board[SquareOf(7, 4)] = MakePiece(Black, Rook)
	p.Board[SquareOf(7, 0)] = MakePiece(Black, King)
	p.WhiteKingSq = SquareOf(0, 4)
	p.BlackKingSq = SquareOf(7, 0)
	p.WhiteToMove = true

	_, err := ValidateMove(p, SquareOf(1, 4), SquareOf(2, 2), NoPieceType) // Ne2-c3 unpins the king
	kind, ok := chesserr.KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, chesserr.WouldBeInCheck, kind)
}

func TestValidateMovePromotionRequiredOnLastRank(t *testing.T) {
	p := position.NewGame(time.Now())
	p.Board[SquareOf(6, 0)] = NoPiece
	p.Board[SquareOf(6, 1)] = MakePiece(White, Pawn)
	p.Board[SquareOf(7, 1)] = NoPiece

	_, err := ValidateMove(p, SquareOf(6, 1), SquareOf(7, 1), NoPieceType)
	kind, _ := chesserr.KindOf(err)
	assert.Equal(t, chesserr.InvalidPromotion, kind)

	rec, err := ValidateMove(p, SquareOf(6, 1), SquareOf(7, 1), Rook)
	assert.NoError(t, err)
	assert.Equal(t, Rook, rec.Promotion)
}

func TestCanCastleRequiresPathAndSafety(t *testing.T) {
	p := position.NewGame(time.Now())
	p.Board[SquareOf(0, 5)] = NoPiece
	p.Board[SquareOf(0, 6)] = NoPiece
	assert.True(t, canCastle(p, SquareOf(0, 4), SquareOf(0, 6), White))

	// Attacker covers f1, castling through check is illegal.
	p.Board[SquareOf(0, 5)] = NoPiece
	p.Board[SquareOf(3, 5)] = MakePiece(Black, Rook)
	p.Board[SquareOf(1, 5)] = NoPiece
	p.Board[SquareOf(2, 5)] = NoPiece
	assert.False(t, canCastle(p, SquareOf(0, 4), SquareOf(0, 6), White))
}
