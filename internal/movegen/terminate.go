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
	"github.com/kjrix/chesscore/internal/attacks"
	. "github.com/kjrix/chesscore/internal/chesstypes"
	"github.com/kjrix/chesscore/internal/position"
)

const fiftyMoveLimit = 100

// UpdateStatus is the termination detector. It is the step that
// position.Apply deliberately leaves to the caller: it needs
// GenerateMoves, which lives here to avoid position depending on movegen.
// It mutates pos.Status and returns the same value for convenience.
func UpdateStatus(pos *position.Position) Status {
	side := pos.SideToMove()
	legal := GenerateMoves(pos, side)

	inCheck := attacks.IsSquareAttacked(&pos.Board, pos.KingSquare(side), side.Flip())

	switch {
	case len(legal) == 0 && inCheck:
		if side == White {
			pos.Status = BlackWin
		} else {
			pos.Status = WhiteWin
		}
	case len(legal) == 0:
		pos.Status = Stalemate
	case pos.HalfMoveClock >= fiftyMoveLimit:
		pos.Status = Draw
	case IsInsufficientMaterial(pos):
		pos.Status = Draw
	default:
		pos.Status = Active
	}
	return pos.Status
}

// InCheck reports whether the side to move is currently attacked, for
// read-only queries independent of a full status recompute.
func InCheck(pos *position.Position) bool {
	side := pos.SideToMove()
	return attacks.IsSquareAttacked(&pos.Board, pos.KingSquare(side), side.Flip())
}

// IsInsufficientMaterial covers king vs king, and king vs king plus a
// single minor piece on either side. Two bishops, two knights, a rook
// or a queen on the board disqualify it.
func IsInsufficientMaterial(pos *position.Position) bool {
	var minorCount int
	for sq := Square(0); sq < SqLength; sq++ {
		p := pos.Board[sq]
		if p.IsEmpty() || p.Type() == King {
			continue
		}
		switch p.Type() {
		case Knight, Bishop:
			minorCount++
		default:
			return false
		}
		if minorCount > 1 {
			return false
		}
	}
	return true
}
