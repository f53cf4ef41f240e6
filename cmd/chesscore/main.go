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

// Command chesscore is a minimal interactive terminal session against
// the engine in pkg/engine. It is a demonstration shell, not part of
// the engine's contract.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	. "github.com/kjrix/chesscore/internal/chesstypes"
	"github.com/kjrix/chesscore/internal/config"
	"github.com/kjrix/chesscore/internal/logging"
	"github.com/kjrix/chesscore/pkg/engine"
)

var out = message.NewPrinter(language.English)

const owner = engine.Owner("player")

func main() {
	configFile := flag.String("config", config.ConfFile, "path to configuration settings file")
	cpuProfile := flag.Bool("profile", false, "enable CPU profiling of the session, written under ./")
	flag.Parse()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()
	log := logging.GetLog("cmd")
	log.Info("chesscore session starting")

	e := engine.NewEngine()
	e.NewGame(owner)

	reader := bufio.NewReader(os.Stdin)
	for {
		board, err := e.Board(owner)
		if err != nil {
			log.Errorf("unexpected engine error: %v", err)
			return
		}
		printBoard(board)

		status, _ := e.Status(owner)
		if status.IsTerminal() {
			out.Printf("game over: %s\n", status)
			return
		}

		out.Printf("move (e.g. e2e4, e7e8q to promote, or resign/draw): ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		line = strings.TrimSpace(line)

		switch line {
		case "resign":
			if err := e.Resign(context.Background(), owner); err != nil {
				out.Printf("cannot resign: %v\n", err)
			}
			continue
		case "draw":
			if err := e.ClaimDraw(context.Background(), owner); err != nil {
				out.Printf("cannot claim draw: %v\n", err)
			}
			continue
		}

		from, to, promo, err := parseMove(line)
		if err != nil {
			out.Printf("unreadable move: %v\n", err)
			continue
		}
		mine, reply, err := e.MakeMove(context.Background(), owner, from, to, promo)
		if err != nil {
			out.Printf("illegal move: %v\n", err)
			continue
		}
		out.Printf("you played %s\n", mine.String())
		if reply != nil {
			out.Printf("engine replies %s\n", reply.String())
		}
	}
}

func printBoard(b Board) {
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file <= 7; file++ {
			fmt.Print(pieceChar(b[SquareOf(rank, file)]), " ")
		}
		fmt.Println()
	}
}

func pieceChar(p Piece) string {
	if p.IsEmpty() {
		return "."
	}
	chars := map[PieceType]string{Pawn: "p", Knight: "n", Bishop: "b", Rook: "r", Queen: "q", King: "k"}
	c := chars[p.Type()]
	if p.Color() == White {
		c = strings.ToUpper(c)
	}
	return c
}

func parseMove(s string) (Square, Square, PieceType, error) {
	s = strings.ToLower(s)
	if len(s) < 4 {
		return SqNone, SqNone, NoPieceType, fmt.Errorf("expected at least 4 characters, got %q", s)
	}
	from, err := parseSquare(s[0:2])
	if err != nil {
		return SqNone, SqNone, NoPieceType, err
	}
	to, err := parseSquare(s[2:4])
	if err != nil {
		return SqNone, SqNone, NoPieceType, err
	}
	promo := NoPieceType
	if len(s) >= 5 {
		switch s[4] {
		case 'q':
			promo = Queen
		case 'r':
			promo = Rook
		case 'b':
			promo = Bishop
		case 'n':
			promo = Knight
		default:
			return SqNone, SqNone, NoPieceType, fmt.Errorf("unknown promotion piece %q", s[4:5])
		}
	}
	return from, to, promo, nil
}

func parseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return SqNone, fmt.Errorf("bad square %q", s)
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return SqNone, fmt.Errorf("bad square %q", s)
	}
	return SquareOf(rank, file), nil
}
