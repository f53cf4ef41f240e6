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

// Package chesserr defines the closed set of tagged errors the engine can
// surface. Every user-facing error leaves the Position unchanged; only
// NoLegalMoves denotes an internal invariant failure rather than a
// recoverable, user-triggered condition.
package chesserr

import "errors"

// Kind is one tag from the closed error set.
type Kind int

const (
	GameNotFound Kind = iota
	GameOver
	NotYourTurn
	InvalidSquare
	NoPiece
	WrongColor
	InvalidMove
	InvalidPromotion
	WouldBeInCheck
	CannotClaimDraw
	NoLegalMoves
)

var kindNames = map[Kind]string{
	GameNotFound:      "game_not_found",
	GameOver:          "game_over",
	NotYourTurn:       "not_your_turn",
	InvalidSquare:     "invalid_square",
	NoPiece:           "no_piece",
	WrongColor:        "wrong_color",
	InvalidMove:       "invalid_move",
	InvalidPromotion:  "invalid_promotion",
	WouldBeInCheck:    "would_be_in_check",
	CannotClaimDraw:   "cannot_claim_draw",
	NoLegalMoves:      "no_legal_moves",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "unknown"
}

// Error is the concrete error type returned by every core operation.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Message
}

// Is lets errors.Is(err, chesserr.ErrGameNotFound) work by comparing Kind
// against a sentinel (or any other *Error) regardless of its message.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// New builds a tagged error with a message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// sentinels, one per kind, for errors.Is comparisons against a bare kind.
var (
	ErrGameNotFound     = &Error{Kind: GameNotFound}
	ErrGameOver         = &Error{Kind: GameOver}
	ErrNotYourTurn      = &Error{Kind: NotYourTurn}
	ErrInvalidSquare    = &Error{Kind: InvalidSquare}
	ErrNoPiece          = &Error{Kind: NoPiece}
	ErrWrongColor       = &Error{Kind: WrongColor}
	ErrInvalidMove      = &Error{Kind: InvalidMove}
	ErrInvalidPromotion = &Error{Kind: InvalidPromotion}
	ErrWouldBeInCheck   = &Error{Kind: WouldBeInCheck}
	ErrCannotClaimDraw  = &Error{Kind: CannotClaimDraw}
	ErrNoLegalMoves     = &Error{Kind: NoLegalMoves}
)

// KindOf extracts the Kind from err, if err is (or wraps) a *Error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
