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

// MoveFlag records the properties of a move which can't be derived from
// its squares alone.
type MoveFlag uint8

const (
	Capture MoveFlag = 1 << iota
	EnPassant
	DoublePush
)

// Move represents a move on the board. The zero value is the null move.
type Move struct {
	From, To  Square
	Promotion PieceType
	Flags     MoveFlag
}

// NullMove passes the turn without moving a piece.
var NullMove Move

// IsCapture checks if the move captures a piece, en passant included.
func (move Move) IsCapture() bool {
	return move.Flags&Capture != 0
}

// IsPromotion checks if the move promotes a pawn.
func (move Move) IsPromotion() bool {
	return move.Promotion != NoType
}

// IsCaptureOrPromotion checks if the move is a capture, a promotion, or
// both at once.
func (move Move) IsCaptureOrPromotion() bool {
	return move.IsCapture() || move.IsPromotion()
}

// String returns the move in the long algebraic (UCI) format.
func (move Move) String() string {
	if move == NullMove {
		return "0000"
	}

	str := move.From.String() + move.To.String()
	if move.IsPromotion() {
		str += string(lower(move.Promotion.Letter()))
	}

	return str
}
