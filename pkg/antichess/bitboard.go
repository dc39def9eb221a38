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

import "math/bits"

// Bitboard is a set of squares, with bit n representing Square(n).
type Bitboard uint64

// Files and Ranks
const (
	FileA Bitboard = 0x0101010101010101
	FileH Bitboard = FileA << 7

	Rank1 Bitboard = 0xFF
	Rank8 Bitboard = Rank1 << 56
)

// FileMask returns the bitboard of the file the square is on.
func (sq Square) FileMask() Bitboard {
	return FileA << sq.File()
}

// RankMask returns the bitboard of the rank the square is on.
func (sq Square) RankMask() Bitboard {
	return Rank1 << (8 * sq.Rank())
}

// Has checks if the given square is set in the bitboard.
func (bb Bitboard) Has(sq Square) bool {
	return bb&sq.Bitboard() != 0
}

// Count returns the number of squares in the bitboard.
func (bb Bitboard) Count() int {
	return bits.OnesCount64(uint64(bb))
}

// Pop removes the least significant square from the bitboard and
// returns it. The bitboard must not be empty.
func (bb *Bitboard) Pop() Square {
	sq := Square(bits.TrailingZeros64(uint64(*bb)))
	*bb &= *bb - 1
	return sq
}

// attack tables for the non-sliding pieces
var (
	pawnAttacks   [ColorN][SquareN]Bitboard
	knightAttacks [SquareN]Bitboard
	kingAttacks   [SquareN]Bitboard
)

type direction struct{ file, rank int }

var (
	knightJumps = []direction{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingSteps   = []direction{{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}}

	bishopRays = []direction{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}
	rookRays   = []direction{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
)

func onBoard(file, rank int) bool {
	return file >= 0 && file < 8 && rank >= 0 && rank < 8
}

func steps(sq Square, dirs []direction) Bitboard {
	var bb Bitboard
	for _, dir := range dirs {
		file, rank := sq.File()+dir.file, sq.Rank()+dir.rank
		if onBoard(file, rank) {
			bb |= NewSquare(file, rank).Bitboard()
		}
	}

	return bb
}

// rays walks each direction from the square until the edge of the board
// or the first occupied square, which is included.
func rays(sq Square, occupied Bitboard, dirs []direction) Bitboard {
	var bb Bitboard
	for _, dir := range dirs {
		file, rank := sq.File()+dir.file, sq.Rank()+dir.rank
		for onBoard(file, rank) {
			target := NewSquare(file, rank)
			bb |= target.Bitboard()
			if occupied.Has(target) {
				break
			}

			file, rank = file+dir.file, rank+dir.rank
		}
	}

	return bb
}

func init() {
	for sq := A1; sq < NoSquare; sq++ {
		knightAttacks[sq] = steps(sq, knightJumps)
		kingAttacks[sq] = steps(sq, kingSteps)
		pawnAttacks[White][sq] = steps(sq, []direction{{-1, 1}, {1, 1}})
		pawnAttacks[Black][sq] = steps(sq, []direction{{-1, -1}, {1, -1}})
	}
}

// Attacks returns the squares attacked by a piece of the given type
// standing on the given square. Pawn attacks are those of a white pawn
// unless color is Black.
func Attacks(piece PieceType, color Color, sq Square, occupied Bitboard) Bitboard {
	switch piece {
	case Pawn:
		return pawnAttacks[color][sq]
	case Knight:
		return knightAttacks[sq]
	case Bishop:
		return rays(sq, occupied, bishopRays)
	case Rook:
		return rays(sq, occupied, rookRays)
	case Queen:
		return rays(sq, occupied, bishopRays) | rays(sq, occupied, rookRays)
	case King:
		return kingAttacks[sq]
	default:
		return 0
	}
}
