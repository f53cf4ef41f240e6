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

package position

import (
	. "github.com/kjrix/chesscore/internal/chesstypes"
)

// Apply mutates the board, clocks and history to reflect (from, to,
// promotion). It assumes the move has already been established legal by
// the caller (package movegen); it does not itself re-check legality.
// Recomputing terminal status afterward is a separate call the caller
// makes (movegen.UpdateStatus), to avoid a position<->movegen import
// cycle while keeping the two concerns distinct.
func (p *Position) Apply(from, to Square, promotion PieceType) MoveRecord {
	fromPiece := p.Board[from]
	pt := fromPiece.Type()
	color := fromPiece.Color()

	isCastling := pt == King && abs(to.File()-from.File()) == 2
	isEnPassant := pt == Pawn && to == p.EnPassantTarget && p.Board[to].IsEmpty() && to.File() != from.File()

	var captured PieceType
	if isEnPassant {
		captured = Pawn
	} else {
		captured = p.Board[to].Type()
	}

	// (1) move the piece, set has-moved, apply promotion.
	moved := fromPiece.WithMoved()
	if promotion != NoPieceType {
		moved = moved.WithType(promotion)
	}
	p.Board[from] = NoPiece
	p.Board[to] = moved

	// (2) castling: relocate the rook.
	if isCastling {
		rank := from.Rank()
		if to.File() == 6 { // kingside
			rookFrom := SquareOf(rank, 7)
			rookTo := SquareOf(rank, 5)
			p.Board[rookTo] = p.Board[rookFrom].WithMoved()
			p.Board[rookFrom] = NoPiece
		} else { // queenside, to.File() == 2
			rookFrom := SquareOf(rank, 0)
			rookTo := SquareOf(rank, 3)
			p.Board[rookTo] = p.Board[rookFrom].WithMoved()
			p.Board[rookFrom] = NoPiece
		}
	}

	// (3) en passant: remove the captured pawn, which sits behind `to`.
	if isEnPassant {
		capSq := SquareOf(from.Rank(), to.File())
		p.Board[capSq] = NoPiece
	}

	// (4) king square bookkeeping.
	if pt == King {
		if color == White {
			p.WhiteKingSq = to
		} else {
			p.BlackKingSq = to
		}
	}

	// (5) en passant target for the *next* move.
	if pt == Pawn && abs(to.Rank()-from.Rank()) == 2 {
		midRank := (to.Rank() + from.Rank()) / 2
		p.EnPassantTarget = SquareOf(midRank, from.File())
	} else {
		p.EnPassantTarget = SqNone
	}

	// (6) fifty-move counter.
	if captured != NoPieceType || pt == Pawn {
		p.HalfMoveClock = 0
	} else {
		p.HalfMoveClock++
	}

	// (7) history and bookkeeping.
	rec := MoveRecord{
		From:        from,
		To:          to,
		Promotion:   promotion,
		Captured:    captured,
		IsCastling:  isCastling,
		IsEnPassant: isEnPassant,
	}
	p.History = append(p.History, rec)
	p.MoveCount++
	p.WhiteToMove = !p.WhiteToMove

	return rec
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
