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

// LegalMoves generates the legal moves in the position. There is no
// concept of check in antichess, so every pseudo-legal move is legal,
// except that quiet moves are illegal while a capture is available.
func (pos *Position) LegalMoves() []Move {
	var captures, quiets []Move
	pos.generate(&captures, &quiets)

	if len(captures) > 0 {
		return captures
	}

	return quiets
}

// IsAntiWin checks if the side to move has won the game under the
// antichess rules, i.e. it has no pieces left or no legal moves.
func (pos *Position) IsAntiWin() bool {
	if pos.colors[pos.sideToMove] == 0 {
		return true
	}

	var captures, quiets []Move
	pos.generate(&captures, &quiets)
	return len(captures) == 0 && len(quiets) == 0
}

func (pos *Position) generate(captures, quiets *[]Move) {
	us, them := pos.sideToMove, other(pos.sideToMove)
	friends, enemies := pos.colors[us], pos.colors[them]
	occupied := friends | enemies

	add := func(from, to Square, flags MoveFlag) {
		if enemies.Has(to) {
			*captures = append(*captures, Move{From: from, To: to, Flags: flags | Capture})
		} else {
			*quiets = append(*quiets, Move{From: from, To: to, Flags: flags})
		}
	}

	pos.generatePawns(captures, quiets, occupied, enemies)

	for _, piece := range []PieceType{Knight, Bishop, Rook, Queen, King} {
		for pieces := pos.Pieces(us, piece); pieces != 0; {
			from := pieces.Pop()
			for targets := Attacks(piece, us, from, occupied) &^ friends; targets != 0; {
				add(from, targets.Pop(), 0)
			}
		}
	}
}

func (pos *Position) generatePawns(captures, quiets *[]Move, occupied, enemies Bitboard) {
	us := pos.sideToMove

	forward, startRank, lastRank := 8, 1, 7
	if us == Black {
		forward, startRank, lastRank = -8, 6, 0
	}

	add := func(list *[]Move, from, to Square, flags MoveFlag) {
		if to.Rank() != lastRank {
			*list = append(*list, Move{From: from, To: to, Flags: flags})
			return
		}

		for _, promotion := range Promotions {
			*list = append(*list, Move{From: from, To: to, Promotion: promotion, Flags: flags})
		}
	}

	for pawns := pos.Pieces(us, Pawn); pawns != 0; {
		from := pawns.Pop()

		for targets := pawnAttacks[us][from] & enemies; targets != 0; {
			add(captures, from, targets.Pop(), Capture)
		}

		if pos.enPassant != NoSquare && pawnAttacks[us][from].Has(pos.enPassant) {
			*captures = append(*captures, Move{From: from, To: pos.enPassant, Flags: Capture | EnPassant})
		}

		single := Square(int(from) + forward)
		if occupied.Has(single) {
			continue
		}

		add(quiets, from, single, 0)

		double := Square(int(single) + forward)
		if from.Rank() == startRank && !occupied.Has(double) {
			*quiets = append(*quiets, Move{From: from, To: double, Flags: DoublePush})
		}
	}
}

// Perft counts the leaf nodes of the legal move tree of the given depth.
func (pos *Position) Perft(depth int) uint64 {
	if depth == 0 {
		return 1
	}

	moves := pos.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, move := range moves {
		pos.MakeMove(move)
		nodes += pos.Perft(depth - 1)
		pos.UnmakeMove()
	}

	return nodes
}
