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
	"sort"

	. "github.com/kjrix/chesscore/internal/chesstypes"
	"github.com/kjrix/chesscore/internal/position"
)

type candidate struct {
	to          Square
	promotion   PieceType
	isCastling  bool
	isEnPassant bool
}

var knightOffsets = [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
var kingOffsets = [8][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}
var bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var rookDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// GenerateMoves returns every legal move for side on pos, ordered per spec
// §4.4: captures before non-captures, major-piece (queen/rook) victims
// before minor-piece/pawn victims within captures, stable otherwise.
func GenerateMoves(pos *position.Position, side Color) []MoveRecord {
	return generate(pos, side, false)
}

// GenerateCaptures returns only the capture subset, in the same order
// GenerateMoves would produce, for use by quiescence search.
func GenerateCaptures(pos *position.Position, side Color) []MoveRecord {
	return generate(pos, side, true)
}

func generate(pos *position.Position, side Color, capturesOnly bool) []MoveRecord {
	moves := make([]MoveRecord, 0, 48)
	for sq := Square(0); sq < SqLength; sq++ {
		p := pos.Board[sq]
		if p.IsEmpty() || p.Color() != side {
			continue
		}
		for _, c := range candidatesFor(pos, sq, p, side) {
			if capturesOnly && !isCaptureCandidate(pos, c) {
				continue
			}
			if !isKingSafeAfter(pos, sq, c.to, c.promotion) {
				continue
			}
			moves = append(moves, buildRecord(pos, sq, c))
		}
	}
	sortMoves(moves)
	return moves
}

func isCaptureCandidate(pos *position.Position, c candidate) bool {
	return c.isEnPassant || !pos.Board[c.to].IsEmpty()
}

func buildRecord(pos *position.Position, from Square, c candidate) MoveRecord {
	var captured PieceType
	if c.isEnPassant {
		captured = Pawn
	} else {
		captured = pos.Board[c.to].Type()
	}
	return MoveRecord{
		From:        from,
		To:          c.to,
		Promotion:   c.promotion,
		Captured:    captured,
		IsCastling:  c.isCastling,
		IsEnPassant: c.isEnPassant,
	}
}

func candidatesFor(pos *position.Position, sq Square, p Piece, side Color) []candidate {
	switch p.Type() {
	case Pawn:
		return pawnCandidates(pos, sq, side)
	case Knight:
		return leaperCandidates(pos, sq, side, knightOffsets)
	case Bishop:
		return sliderCandidates(pos, sq, side, bishopDirs)
	case Rook:
		return sliderCandidates(pos, sq, side, rookDirs)
	case Queen:
		cs := sliderCandidates(pos, sq, side, bishopDirs)
		return append(cs, sliderCandidates(pos, sq, side, rookDirs)...)
	case King:
		cs := leaperCandidates(pos, sq, side, kingOffsets)
		if canCastle(pos, sq, SquareOf(sq.Rank(), 6), side) {
			cs = append(cs, candidate{to: SquareOf(sq.Rank(), 6), isCastling: true})
		}
		if canCastle(pos, sq, SquareOf(sq.Rank(), 2), side) {
			cs = append(cs, candidate{to: SquareOf(sq.Rank(), 2), isCastling: true})
		}
		return cs
	default:
		return nil
	}
}

func pawnCandidates(pos *position.Position, sq Square, color Color) []candidate {
	var cs []candidate
	dir, startRank, lastRank := 1, 1, 7
	if color == Black {
		dir, startRank, lastRank = -1, 6, 0
	}
	rank, file := sq.Rank(), sq.File()

	addForward := func(to Square) {
		if to.Rank() == lastRank {
			cs = append(cs, candidate{to: to, promotion: Queen})
			return
		}
		cs = append(cs, candidate{to: to})
	}

	if r := rank + dir; r >= 0 && r <= 7 {
		one := SquareOf(r, file)
		if pos.Board[one].IsEmpty() {
			addForward(one)
			if rank == startRank {
				two := SquareOf(rank+2*dir, file)
				if pos.Board[two].IsEmpty() {
					cs = append(cs, candidate{to: two})
				}
			}
		}
		for _, df := range [2]int{-1, 1} {
			f := file + df
			if f < 0 || f > 7 {
				continue
			}
			to := SquareOf(r, f)
			target := pos.Board[to]
			if !target.IsEmpty() && target.Color() != color {
				addForward(to)
			} else if to == pos.EnPassantTarget {
				cs = append(cs, candidate{to: to, isEnPassant: true})
			}
		}
	}
	return cs
}

func leaperCandidates(pos *position.Position, sq Square, color Color, offsets [8][2]int) []candidate {
	var cs []candidate
	rank, file := sq.Rank(), sq.File()
	for _, o := range offsets {
		r, f := rank+o[0], file+o[1]
		if r < 0 || r > 7 || f < 0 || f > 7 {
			continue
		}
		to := SquareOf(r, f)
		if sameColor(pos, to, color) {
			continue
		}
		cs = append(cs, candidate{to: to})
	}
	return cs
}

func sliderCandidates(pos *position.Position, sq Square, color Color, dirs [4][2]int) []candidate {
	var cs []candidate
	rank, file := sq.Rank(), sq.File()
	for _, d := range dirs {
		r, f := rank+d[0], file+d[1]
		for r >= 0 && r <= 7 && f >= 0 && f <= 7 {
			to := SquareOf(r, f)
			target := pos.Board[to]
			if target.IsEmpty() {
				cs = append(cs, candidate{to: to})
			} else {
				if target.Color() != color {
					cs = append(cs, candidate{to: to})
				}
				break
			}
			r += d[0]
			f += d[1]
		}
	}
	return cs
}

func isMajorVictim(pt PieceType) bool {
	return pt == Queen || pt == Rook
}

func sortMoves(moves []MoveRecord) {
	sort.SliceStable(moves, func(i, j int) bool {
		ci, cj := moves[i].IsCapture(), moves[j].IsCapture()
		if ci != cj {
			return ci
		}
		if ci && cj {
			mi, mj := isMajorVictim(moves[i].Captured), isMajorVictim(moves[j].Captured)
			if mi != mj {
				return mi
			}
		}
		return false
	})
}
