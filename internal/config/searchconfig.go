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

// searchConfiguration holds the tunables of the bounded-depth search. All
// of these are deliberately fixed/small: the search is not time-controlled
// and must stay deterministic from one run to the next.
type searchConfiguration struct {
	// SearchDepth is the total ply depth of the top-level alpha-beta search
	// (the root ply plus SearchDepth-1 further plies).
	SearchDepth int
	// QuiescenceDepth bounds the capture-only extension run at the leaves
	// of the main search.
	QuiescenceDepth int
	// LmrFullSearchMoves is how many moves at a node are searched at full
	// depth before late move reduction kicks in for non-captures.
	LmrFullSearchMoves int
	// LmrReduction is how many plies a late, non-capture move is reduced by
	// before the verification re-search.
	LmrReduction int
}

func init() {
	Settings.Search.SearchDepth = 3
	Settings.Search.QuiescenceDepth = 4
	Settings.Search.LmrFullSearchMoves = 3
	Settings.Search.LmrReduction = 1
}
