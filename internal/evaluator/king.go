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

package evaluator

import (
	"github.com/kjrix/chesscore/internal/config"

	. "github.com/kjrix/chesscore/internal/chesstypes"
	"github.com/kjrix/chesscore/internal/position"
)

// kingValue rewards keeping the king away from the center early, being
// castled, and having a pawn shield in front of it.
func kingValue(p Piece, sq Square, pos *position.Position) int {
	bonus := 0
	if isEdge(sq) {
		bonus += config.Settings.Eval.KingCornerBonus
	}
	if p.HasMoved() && (sq.File() == 6 || sq.File() == 2) {
		bonus += config.Settings.Eval.CastledKingBonus
	}
	bonus += pawnShieldCount(pos, sq, p.Color()) * config.Settings.Eval.PawnShieldBonus
	return bonus
}

func pawnShieldCount(pos *position.Position, kingSq Square, color Color) int {
	dir := 1
	if color == Black {
		dir = -1
	}
	shieldRank := kingSq.Rank() + dir
	if shieldRank < 0 || shieldRank > 7 {
		return 0
	}
	count := 0
	for df := -1; df <= 1; df++ {
		f := kingSq.File() + df
		if f < 0 || f > 7 {
			continue
		}
		shield := pos.Board[SquareOf(shieldRank, f)]
		if !shield.IsEmpty() && shield.Type() == Pawn && shield.Color() == color {
			count++
		}
	}
	return count
}
