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
)

func knightValue(sq Square) int {
	switch {
	case isCentral(sq):
		return config.Settings.Eval.KnightCentralBonus
	case sq.File() == 0 || sq.File() == 7:
		return -config.Settings.Eval.KnightEdgeBonus
	default:
		return 0
	}
}

func bishopValue(sq Square) int {
	if isCentral(sq) {
		return config.Settings.Eval.BishopCentralBonus
	}
	return 0
}

func rookValue(sq Square, color Color) int {
	seventh := 6
	if color == Black {
		seventh = 1
	}
	if sq.Rank() == seventh {
		return config.Settings.Eval.RookSeventhRankBonus
	}
	return 0
}

func queenValue(sq Square) int {
	if isCentral(sq) {
		return config.Settings.Eval.QueenMidBoardBonus
	}
	return 0
}
