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

// pawnValue rewards advanced pawns and central files.
func pawnValue(sq Square, color Color) int {
	advance := sq.Rank()
	if color == Black {
		advance = 7 - sq.Rank()
	}
	bonus := advance * config.Settings.Eval.PawnAdvanceFactor

	switch sq.File() {
	case 3, 4:
		bonus += config.Settings.Eval.PawnCentralFileBonus
	case 2, 5:
		bonus += config.Settings.Eval.PawnCenterFileBonus
	}
	return bonus
}
