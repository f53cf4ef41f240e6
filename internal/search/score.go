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

package search

// Score is the signed centipawn value the search assigns to a position,
// always from the perspective of the side to move at the node being
// scored. It mirrors the small fixed-range Value type chess engines in
// this lineage use instead of a bare int, so mate scores can be told
// apart from ordinary material/positional scores at a glance.
type Score int32

const (
	ScoreDraw          Score = 0
	ScoreInf           Score = 1_000_000
	ScoreMate          Score = 100_000
	ScoreMateThreshold Score = ScoreMate - 64
)

// IsMate reports whether v encodes a forced mate at some ply.
func (v Score) IsMate() bool {
	abs := v
	if abs < 0 {
		abs = -abs
	}
	return abs > ScoreMateThreshold
}

// mateIn folds the remaining ply count into a mate score, so that a
// shorter mate is always preferred (a larger-magnitude score) over a
// longer one found deeper in the tree.
func mateIn(ply int) Score {
	return ScoreMate - Score(ply)
}
