// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package antichess

import (
	"strings"

	"laptudirm.com/x/mess/pkg/board/piece"
)

// Color represents the color of a piece or of the side to move. Colors
// don't depend on the variant, so they are shared with mess.
type Color = piece.Color

var (
	White = piece.White
	Black = piece.Black
)

const ColorN = piece.ColorN

// other returns the opposite color.
func other(c Color) Color {
	if c == White {
		return Black
	}

	return White
}

// colorLetter returns the FEN letter of the given color.
func colorLetter(c Color) string {
	if c == White {
		return "w"
	}

	return "b"
}

// PieceType represents the type of a piece, without its color.
type PieceType uint8

const (
	NoType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King

	PieceTypeN = 7
)

const typeLetters = " PNBRQK"

// Promotions is the list of piece types a pawn can promote to. Kings are
// ordinary pieces in antichess, so promoting to one is allowed.
var Promotions = []PieceType{Queen, Rook, Bishop, Knight, King}

// Letter returns the upper-case letter used for the piece type in
// algebraic notation.
func (t PieceType) Letter() byte {
	return typeLetters[t]
}

// typeFromLetter parses a piece letter of either case.
func typeFromLetter(letter byte) PieceType {
	if i := strings.IndexByte(typeLetters, upper(letter)); i > 0 {
		return PieceType(i)
	}

	return NoType
}

// Piece is a colored chess piece. The zero value is an empty square.
type Piece struct {
	Type  PieceType
	Color Color
}

// NoPiece represents an empty square.
var NoPiece Piece

// Char returns the FEN character of the piece, upper-case for white.
func (p Piece) Char() byte {
	if p.Color == Black {
		return lower(p.Type.Letter())
	}

	return p.Type.Letter()
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}
