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

import "errors"

// Square represents a square on the chessboard. Squares are numbered
// from a1 (0) to h8 (63), file-major inside each rank.
type Square uint8

// constants representing the squares of the board
const (
	A1, B1, C1, D1, E1, F1, G1, H1 Square = 8*iota + 0, 8*iota + 1, 8*iota + 2, 8*iota + 3, 8*iota + 4, 8*iota + 5, 8*iota + 6, 8*iota + 7
	A2, B2, C2, D2, E2, F2, G2, H2
	A3, B3, C3, D3, E3, F3, G3, H3
	A4, B4, C4, D4, E4, F4, G4, H4
	A5, B5, C5, D5, E5, F5, G5, H5
	A6, B6, C6, D6, E6, F6, G6, H6
	A7, B7, C7, D7, E7, F7, G7, H7
	A8, B8, C8, D8, E8, F8, G8, H8
)

// SquareN is the number of squares on the board.
const SquareN = 64

// NoSquare represents the absence of a square, like an unset en passant
// target.
const NoSquare Square = SquareN

var ErrInvalidSquare = errors.New("antichess: invalid square")

// NewSquare returns the square on the given file and rank, both zero
// indexed. The caller must make sure they are inside the board.
func NewSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

// ParseSquare parses a square in the algebraic <file><rank> format.
func ParseSquare(str string) (Square, error) {
	if len(str) != 2 ||
		str[0] < 'a' || str[0] > 'h' ||
		str[1] < '1' || str[1] > '8' {
		return NoSquare, ErrInvalidSquare
	}

	return NewSquare(int(str[0]-'a'), int(str[1]-'1')), nil
}

// File returns the zero indexed file of the square.
func (sq Square) File() int {
	return int(sq) % 8
}

// Rank returns the zero indexed rank of the square.
func (sq Square) Rank() int {
	return int(sq) / 8
}

// FileChar returns the file letter of the square.
func (sq Square) FileChar() byte {
	return 'a' + byte(sq.File())
}

// RankChar returns the rank digit of the square.
func (sq Square) RankChar() byte {
	return '1' + byte(sq.Rank())
}

// Bitboard returns a bitboard with only the given square set.
func (sq Square) Bitboard() Bitboard {
	return Bitboard(1) << sq
}

func (sq Square) String() string {
	if sq >= NoSquare {
		return "-"
	}

	return string([]byte{sq.FileChar(), sq.RankChar()})
}
