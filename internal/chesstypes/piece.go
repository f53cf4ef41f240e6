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

package chesstypes

// PieceType is the piece kind, independent of color. Values match the
// low 3 bits of the Piece encoding below.
type PieceType uint8

const (
	NoPieceType PieceType = 0
	Pawn        PieceType = 1
	Knight      PieceType = 2
	Bishop      PieceType = 3
	Rook        PieceType = 4
	Queen       PieceType = 5
	King        PieceType = 6
)

var pieceTypeNames = [...]string{"-", "pawn", "knight", "bishop", "rook", "queen", "king", "?"}

func (pt PieceType) String() string {
	if int(pt) >= len(pieceTypeNames) {
		return "?"
	}
	return pieceTypeNames[pt]
}

// IsPromotable reports whether pt is one of the four pieces a pawn may
// promote to.
func (pt PieceType) IsPromotable() bool {
	switch pt {
	case Knight, Bishop, Rook, Queen:
		return true
	default:
		return false
	}
}

// Color is the side owning a piece. White is 0 so that a zero Piece value
// (empty square) reads as White, which is harmless since Type() is also 0.
type Color uint8

const (
	White Color = 0
	Black Color = 8
)

// Flip returns the opposing color.
func (c Color) Flip() Color {
	return c ^ Black
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Piece is an 8-bit encoding: bits 0-2 carry PieceType, bit 3 carries Color,
// bit 4 is the has-moved flag (set once a piece first relocates; used only
// for castling eligibility). Bits 5-7 are reserved and always zero.
type Piece uint8

const (
	NoPiece Piece = 0

	typeMask  Piece = 0x07
	colorMask Piece = 0x08
	movedBit  Piece = 0x10
)

// MakePiece builds a fresh (not-yet-moved) piece of the given color and type.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(c) | Piece(pt)
}

// Type returns the piece kind, ignoring color and has-moved bits.
func (p Piece) Type() PieceType {
	return PieceType(p & typeMask)
}

// Color returns the owning side. Meaningless if IsEmpty().
func (p Piece) Color() Color {
	return Color(p & colorMask)
}

// HasMoved reports whether the piece has relocated at least once.
func (p Piece) HasMoved() bool {
	return p&movedBit != 0
}

// WithMoved returns p with the has-moved flag set.
func (p Piece) WithMoved() Piece {
	return p | movedBit
}

// WithType returns p with its piece type replaced, color and moved-flag
// preserved. Used by promotion.
func (p Piece) WithType(pt PieceType) Piece {
	return (p &^ typeMask) | Piece(pt)
}

// IsEmpty reports whether the square holds no piece.
func (p Piece) IsEmpty() bool {
	return p.Type() == NoPieceType
}

// Board is the 64-square array every other package reads and mutates.
type Board = [SqLength]Piece

func (p Piece) String() string {
	if p.IsEmpty() {
		return "."
	}
	letters := " PNBRQK"
	l := letters[p.Type()]
	if p.Color() == White {
		return string(l)
	}
	return string(l - 'A' + 'a')
}
