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

// Package movegen implements move legality checking and move generation
// and ordering. It depends on position and attacks; position does not
// depend back on it, keeping the import graph acyclic.
package movegen

import (
	"github.com/kjrix/chesscore/internal/attacks"
	"github.com/kjrix/chesscore/internal/chesserr"
	. "github.com/kjrix/chesscore/internal/chesstypes"
	"github.com/kjrix/chesscore/internal/position"
)

// pseudoLegalResult carries the flags the mutator needs once a move is
// known pseudo-legal, so callers don't recompute them.
type pseudoLegalResult struct {
	isCastling  bool
	isEnPassant bool
}

// ValidateMove performs the full two-stage check - pseudo-legal geometry,
// then king-safety by simulation - plus the surrounding input validation,
// checked in order from cheapest/most-general to most expensive. On
// success it returns the fully-populated MoveRecord (not yet applied).
func ValidateMove(pos *position.Position, from, to Square, promotion PieceType) (MoveRecord, error) {
	if !from.IsValid() || !to.IsValid() {
		return MoveRecord{}, chesserr.New(chesserr.InvalidSquare, "square out of range")
	}
	moving := pos.Board[from]
	if moving.IsEmpty() {
		return MoveRecord{}, chesserr.New(chesserr.NoPiece, "no piece on from-square")
	}
	mover := moving.Color()
	if mover != pos.SideToMove() {
		return MoveRecord{}, chesserr.New(chesserr.WrongColor, "piece does not belong to the side to move")
	}

	res, err := pseudoLegal(pos, from, to, promotion)
	if err != nil {
		return MoveRecord{}, err
	}

	if !isKingSafeAfter(pos, from, to, promotion) {
		return MoveRecord{}, chesserr.New(chesserr.WouldBeInCheck, "move leaves own king attacked")
	}

	var captured PieceType
	if res.isEnPassant {
		captured = Pawn
	} else {
		captured = pos.Board[to].Type()
	}
	return MoveRecord{
		From:        from,
		To:          to,
		Promotion:   promotion,
		Captured:    captured,
		IsCastling:  res.isCastling,
		IsEnPassant: res.isEnPassant,
	}, nil
}

// IsLegal is the boolean convenience form of ValidateMove.
func IsLegal(pos *position.Position, from, to Square, promotion PieceType) bool {
	_, err := ValidateMove(pos, from, to, promotion)
	return err == nil
}

// pseudoLegal checks geometry, occupancy and promotion rules for every
// piece type, without regard to king safety.
func pseudoLegal(pos *position.Position, from, to Square, promotion PieceType) (pseudoLegalResult, error) {
	moving := pos.Board[from]
	color := moving.Color()
	dr := to.Rank() - from.Rank()
	df := to.File() - from.File()

	switch moving.Type() {
	case Pawn:
		return pseudoLegalPawn(pos, from, to, promotion, color, dr, df)
	case Knight:
		if promotion != NoPieceType {
			return pseudoLegalResult{}, chesserr.New(chesserr.InvalidPromotion, "promotion only applies to pawns")
		}
		if !attacks.IsKnightShape(dr, df) {
			return pseudoLegalResult{}, chesserr.New(chesserr.InvalidMove, "not a knight move")
		}
		if sameColor(pos, to, color) {
			return pseudoLegalResult{}, chesserr.New(chesserr.InvalidMove, "destination occupied by own piece")
		}
		return pseudoLegalResult{}, nil
	case Bishop:
		if promotion != NoPieceType {
			return pseudoLegalResult{}, chesserr.New(chesserr.InvalidPromotion, "promotion only applies to pawns")
		}
		if !attacks.IsDiagonal(dr, df) || !attacks.DiagonalClear(&pos.Board, from, to) {
			return pseudoLegalResult{}, chesserr.New(chesserr.InvalidMove, "not a clear diagonal")
		}
		if sameColor(pos, to, color) {
			return pseudoLegalResult{}, chesserr.New(chesserr.InvalidMove, "destination occupied by own piece")
		}
		return pseudoLegalResult{}, nil
	case Rook:
		if promotion != NoPieceType {
			return pseudoLegalResult{}, chesserr.New(chesserr.InvalidPromotion, "promotion only applies to pawns")
		}
		if !attacks.IsStraight(dr, df) || !attacks.LineClear(&pos.Board, from, to) {
			return pseudoLegalResult{}, chesserr.New(chesserr.InvalidMove, "not a clear rank/file")
		}
		if sameColor(pos, to, color) {
			return pseudoLegalResult{}, chesserr.New(chesserr.InvalidMove, "destination occupied by own piece")
		}
		return pseudoLegalResult{}, nil
	case Queen:
		if promotion != NoPieceType {
			return pseudoLegalResult{}, chesserr.New(chesserr.InvalidPromotion, "promotion only applies to pawns")
		}
		ok := (attacks.IsDiagonal(dr, df) && attacks.DiagonalClear(&pos.Board, from, to)) ||
			(attacks.IsStraight(dr, df) && attacks.LineClear(&pos.Board, from, to))
		if !ok {
			return pseudoLegalResult{}, chesserr.New(chesserr.InvalidMove, "not a clear queen move")
		}
		if sameColor(pos, to, color) {
			return pseudoLegalResult{}, chesserr.New(chesserr.InvalidMove, "destination occupied by own piece")
		}
		return pseudoLegalResult{}, nil
	case King:
		if promotion != NoPieceType {
			return pseudoLegalResult{}, chesserr.New(chesserr.InvalidPromotion, "promotion only applies to pawns")
		}
		if abs(dr) <= 1 && abs(df) <= 1 && (dr != 0 || df != 0) {
			if sameColor(pos, to, color) {
				return pseudoLegalResult{}, chesserr.New(chesserr.InvalidMove, "destination occupied by own piece")
			}
			return pseudoLegalResult{}, nil
		}
		if dr == 0 && abs(df) == 2 {
			if canCastle(pos, from, to, color) {
				return pseudoLegalResult{isCastling: true}, nil
			}
			return pseudoLegalResult{}, chesserr.New(chesserr.InvalidMove, "castling conditions not met")
		}
		return pseudoLegalResult{}, chesserr.New(chesserr.InvalidMove, "not a king move")
	default:
		return pseudoLegalResult{}, chesserr.New(chesserr.InvalidMove, "unrecognized piece")
	}
}

func pseudoLegalPawn(pos *position.Position, from, to Square, promotion PieceType, color Color, dr, df int) (pseudoLegalResult, error) {
	dir := 1
	startRank := 1
	lastRank := 7
	if color == Black {
		dir = -1
		startRank = 6
		lastRank = 0
	}

	valid := false
	isEnPassant := false

	switch {
	case df == 0 && dr == dir && pos.Board[to].IsEmpty():
		valid = true
	case df == 0 && dr == 2*dir && from.Rank() == startRank:
		mid := SquareOf(from.Rank()+dir, from.File())
		if pos.Board[mid].IsEmpty() && pos.Board[to].IsEmpty() {
			valid = true
		}
	case abs(df) == 1 && dr == dir:
		if !pos.Board[to].IsEmpty() && pos.Board[to].Color() != color {
			valid = true
		} else if to == pos.EnPassantTarget {
			valid = true
			isEnPassant = true
		}
	}

	if !valid {
		return pseudoLegalResult{}, chesserr.New(chesserr.InvalidMove, "illegal pawn move")
	}

	if to.Rank() == lastRank {
		if !promotion.IsPromotable() {
			return pseudoLegalResult{}, chesserr.New(chesserr.InvalidPromotion, "must promote to knight, bishop, rook or queen")
		}
	} else if promotion != NoPieceType {
		return pseudoLegalResult{}, chesserr.New(chesserr.InvalidPromotion, "promotion only legal on the last rank")
	}

	return pseudoLegalResult{isEnPassant: isEnPassant}, nil
}

// canCastle checks the full castling precondition list: king and rook
// both unmoved, the path between them empty, and neither the king's
// start square nor any square it crosses under attack.
func canCastle(pos *position.Position, from, to Square, color Color) bool {
	if pos.Board[from].HasMoved() {
		return false
	}
	rank := from.Rank()

	var rookSq Square
	var emptyFiles, safeFiles []int
	switch to.File() {
	case 6: // kingside
		rookSq = SquareOf(rank, 7)
		emptyFiles = []int{5, 6}
		safeFiles = []int{5, 6}
	case 2: // queenside
		rookSq = SquareOf(rank, 0)
		emptyFiles = []int{1, 2, 3}
		safeFiles = []int{2, 3}
	default:
		return false
	}

	rook := pos.Board[rookSq]
	if rook.IsEmpty() || rook.Type() != Rook || rook.Color() != color || rook.HasMoved() {
		return false
	}
	for _, f := range emptyFiles {
		if !pos.Board[SquareOf(rank, f)].IsEmpty() {
			return false
		}
	}

	enemy := color.Flip()
	if attacks.IsSquareAttacked(&pos.Board, from, enemy) {
		return false
	}
	for _, f := range safeFiles {
		if attacks.IsSquareAttacked(&pos.Board, SquareOf(rank, f), enemy) {
			return false
		}
	}
	return true
}

// isKingSafeAfter simulates (from, to, promotion) on a scratch copy of pos
// and reports whether the mover's king is safe afterward. The scratch
// copy is discarded; Position.Clone + Apply is the copy-on-apply
// strategy used throughout instead of an undo stack.
func isKingSafeAfter(pos *position.Position, from, to Square, promotion PieceType) bool {
	color := pos.Board[from].Color()
	scratch := pos.Clone()
	scratch.Apply(from, to, promotion)
	return !attacks.IsSquareAttacked(&scratch.Board, scratch.KingSquare(color), color.Flip())
}

func sameColor(pos *position.Position, sq Square, color Color) bool {
	p := pos.Board[sq]
	return !p.IsEmpty() && p.Color() == color
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
