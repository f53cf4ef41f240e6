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

// Package attacks implements square-attacked geometry: a deliberately
// square-centric scan rather than a bitboard sliding attack table, so it
// stays easy to audit for correctness.
package attacks

import (
	. "github.com/kjrix/chesscore/internal/chesstypes"
)

// IsSquareAttacked reports whether any piece of byColor attacks target on
// board.
func IsSquareAttacked(board *Board, target Square, byColor Color) bool {
	for from := Square(0); from < SqLength; from++ {
		p := board[from]
		if p.IsEmpty() || p.Color() != byColor {
			continue
		}
		if CanAttack(board, from, target, p.Type(), byColor) {
			return true
		}
	}
	return false
}

// CanAttack reports whether a piece of the given type and color on `from`
// attacks `to`, given the current board occupancy for sliding pieces. It
// tolerates being asked about a piece type that cannot possibly reach `to`
// by geometry: the path predicates return "clear" in that case and the
// geometry check itself is what rejects the attack.
func CanAttack(board *Board, from, to Square, pt PieceType, color Color) bool {
	if from == to {
		return false
	}
	dr := to.Rank() - from.Rank()
	df := to.File() - from.File()

	switch pt {
	case Pawn:
		forward := 1
		if color == Black {
			forward = -1
		}
		return dr == forward && abs(df) == 1
	case Knight:
		return isKnightShape(dr, df)
	case Bishop:
		return isDiagonal(dr, df) && diagonalClear(board, from, to)
	case Rook:
		return isStraight(dr, df) && lineClear(board, from, to)
	case Queen:
		if isDiagonal(dr, df) {
			return diagonalClear(board, from, to)
		}
		if isStraight(dr, df) {
			return lineClear(board, from, to)
		}
		return false
	case King:
		return abs(dr) <= 1 && abs(df) <= 1
	default:
		return false
	}
}

// IsKnightShape reports whether the rank/file delta is an L-shape move.
func IsKnightShape(dr, df int) bool { return isKnightShape(dr, df) }

// IsDiagonal reports whether the rank/file delta describes a (non-zero)
// diagonal.
func IsDiagonal(dr, df int) bool { return isDiagonal(dr, df) }

// IsStraight reports whether the rank/file delta describes a pure
// rank-or-file move.
func IsStraight(dr, df int) bool { return isStraight(dr, df) }

// DiagonalClear is the exported form of diagonalClear, reused by movegen
// for pseudo-legal bishop/queen checks.
func DiagonalClear(board *Board, from, to Square) bool { return diagonalClear(board, from, to) }

// LineClear is the exported form of lineClear, reused by movegen for
// pseudo-legal rook/queen checks.
func LineClear(board *Board, from, to Square) bool { return lineClear(board, from, to) }

func isKnightShape(dr, df int) bool {
	ar, af := abs(dr), abs(df)
	return (ar == 1 && af == 2) || (ar == 2 && af == 1)
}

func isDiagonal(dr, df int) bool {
	return dr != 0 && abs(dr) == abs(df)
}

func isStraight(dr, df int) bool {
	return (dr == 0) != (df == 0)
}

// diagonalClear reports whether the open diagonal between from and to
// (exclusive of both endpoints) is empty. If from/to do not actually lie on
// a diagonal, it returns true: the caller is expected to have already
// checked geometry and discards this result otherwise.
func diagonalClear(board *Board, from, to Square) bool {
	dr := to.Rank() - from.Rank()
	df := to.File() - from.File()
	if dr == 0 || abs(dr) != abs(df) {
		return true
	}
	stepR := sign(dr)
	stepF := sign(df)
	r, f := from.Rank()+stepR, from.File()+stepF
	for r != to.Rank() || f != to.File() {
		if !board[SquareOf(r, f)].IsEmpty() {
			return false
		}
		r += stepR
		f += stepF
	}
	return true
}

// lineClear reports whether the open rank/file segment between from and to
// (exclusive of both endpoints) is empty. Tolerates non-line geometry the
// same way diagonalClear does.
func lineClear(board *Board, from, to Square) bool {
	dr := to.Rank() - from.Rank()
	df := to.File() - from.File()
	if (dr == 0) == (df == 0) {
		return true
	}
	stepR := sign(dr)
	stepF := sign(df)
	r, f := from.Rank()+stepR, from.File()+stepF
	for r != to.Rank() || f != to.File() {
		if !board[SquareOf(r, f)].IsEmpty() {
			return false
		}
		r += stepR
		f += stepF
	}
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
