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

package config

// evalConfiguration holds the material and positional weights used by the
// static evaluator. Expressed as fields rather than literals so playing
// strength can be tuned without recompiling.
type evalConfiguration struct {
	PawnValue   int
	KnightValue int
	BishopValue int
	RookValue   int
	QueenValue  int
	KingValue   int

	PawnAdvanceFactor    int
	PawnCenterFileBonus  int
	PawnCentralFileBonus int
	KnightCentralBonus   int
	KnightEdgeBonus      int
	BishopCentralBonus   int
	RookSeventhRankBonus int
	QueenMidBoardBonus   int
	KingCornerBonus      int

	CastledKingBonus int
	PawnShieldBonus  int
}

func init() {
	Settings.Eval.PawnValue = 100
	Settings.Eval.KnightValue = 320
	Settings.Eval.BishopValue = 330
	Settings.Eval.RookValue = 500
	Settings.Eval.QueenValue = 900
	Settings.Eval.KingValue = 20000

	Settings.Eval.PawnAdvanceFactor = 10
	Settings.Eval.PawnCenterFileBonus = 10
	Settings.Eval.PawnCentralFileBonus = 15
	Settings.Eval.KnightCentralBonus = 30
	Settings.Eval.KnightEdgeBonus = 10
	Settings.Eval.BishopCentralBonus = 20
	Settings.Eval.RookSeventhRankBonus = 30
	Settings.Eval.QueenMidBoardBonus = 5
	Settings.Eval.KingCornerBonus = 30

	Settings.Eval.CastledKingBonus = 40
	Settings.Eval.PawnShieldBonus = 15
}
