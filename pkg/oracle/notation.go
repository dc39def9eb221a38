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

package oracle

import (
	"strings"

	"laptudirm.com/x/antitb/pkg/antichess"
)

// Notate returns the standard algebraic notation of a legal move in the
// given position. A move which leaves the opponent without pieces or
// moves, ending the game, gets the '#' suffix. The null move is "--".
//
// The position is used as a scratch board but is left unchanged.
func Notate(pos *antichess.Position, move antichess.Move) string {
	if move == antichess.NullMove {
		return "--"
	}

	// Look ahead for the end of the game.
	pos.MakeMove(move)
	over := pos.IsAntiWin()
	pos.UnmakeMove()

	var san strings.Builder
	piece := pos.PieceOn(move.From)

	if piece.Type != antichess.Pawn {
		san.WriteByte(piece.Type.Letter())
		disambiguate(&san, pos, move, piece)
	} else if move.IsCapture() {
		san.WriteByte(move.From.FileChar())
	}

	if move.IsCapture() {
		san.WriteByte('x')
	}

	san.WriteString(move.To.String())

	if move.IsPromotion() {
		san.WriteByte('=')
		san.WriteByte(move.Promotion.Letter())
	}

	if over {
		san.WriteByte('#')
	}

	return san.String()
}

// disambiguate writes the source file, rank, or both, if another piece of
// the same type can legally move to the same square.
func disambiguate(san *strings.Builder, pos *antichess.Position, move antichess.Move, piece antichess.Piece) {
	others := pos.Pieces(piece.Color, piece.Type) &^ move.From.Bitboard()

	var ambiguous antichess.Bitboard
	for _, candidate := range pos.LegalMoves() {
		if candidate.To == move.To && others.Has(candidate.From) {
			ambiguous |= candidate.From.Bitboard()
		}
	}

	if ambiguous == 0 {
		return
	}

	var file, rank bool
	if ambiguous&move.From.RankMask() != 0 {
		file = true
	}

	if ambiguous&move.From.FileMask() != 0 {
		rank = true
	} else {
		file = true
	}

	if file {
		san.WriteByte(move.From.FileChar())
	}

	if rank {
		san.WriteByte(move.From.RankChar())
	}
}
