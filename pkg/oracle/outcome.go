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

import "laptudirm.com/x/antitb/pkg/tablebase"

// Outcome is the classification of a position from the point of view of
// the side to move.
type Outcome struct {
	// Value is the distance to win (positive) or loss (negative) in
	// half-moves. Zero and magnitudes of at least tablebase.Draw are draws.
	Value tablebase.Value

	// DTZ is the number of half-moves until a zeroing move is needed to
	// keep the theoretical result.
	DTZ uint8

	// RuleSafe reports whether the zeroing move can be reached before the
	// half-move clock allows a 50-move draw claim. A winning Outcome which
	// isn't rule safe is a cursed win, a losing one a blessed loss.
	RuleSafe bool

	// Terminal marks positions already decided by the antichess rules,
	// which are never looked up in the tablebase.
	Terminal bool
}

// Decided is the Outcome of a position where the game is already over:
// the side to move has no pieces or no legal moves.
var Decided = Outcome{Value: 0, DTZ: 0, RuleSafe: true, Terminal: true}

// newOutcome combines a tablebase entry with the half-move clock of the
// probed position. The zeroing move must come within 100 half-moves of
// the last one, of which halfMoveClock have already been played.
func newOutcome(entry tablebase.Entry, halfMoveClock int) Outcome {
	dtzMax := 100 - halfMoveClock
	return Outcome{
		Value:    entry.Value,
		DTZ:      entry.DTZ,
		RuleSafe: int(entry.DTZ) <= dtzMax,
	}
}

// IsDraw checks if the Outcome is a theoretical draw. The zero value of
// a Decided Outcome is not a draw.
func (outcome Outcome) IsDraw() bool {
	return !outcome.Terminal && outcome.Value.IsDraw()
}

// IsWin checks if the side to move is theoretically winning.
func (outcome Outcome) IsWin() bool {
	return outcome.Value > 0 && !outcome.IsDraw()
}

// IsLoss checks if the side to move is theoretically losing.
func (outcome Outcome) IsLoss() bool {
	return outcome.Value < 0 && !outcome.IsDraw()
}

// IsCursedWin checks if the side to move wins in theory but can't
// convert before the 50-move rule.
func (outcome Outcome) IsCursedWin() bool {
	return outcome.IsWin() && !outcome.RuleSafe
}

// IsBlessedLoss checks if the side to move loses in theory but can reach
// a 50-move draw.
func (outcome Outcome) IsBlessedLoss() bool {
	return outcome.IsLoss() && !outcome.RuleSafe
}

// FullMoves converts the Outcome's value into full moves for the player
// who moved into the position. The result is positive when that player
// wins and negative when they lose.
func (outcome Outcome) FullMoves() int {
	value := int(outcome.Value)
	if value < 0 {
		return (-value + 1) / 2
	}

	return (-value - 1) / 2
}

func (outcome Outcome) String() string {
	switch {
	case outcome.Terminal:
		return "terminal"
	case outcome.IsDraw():
		return "draw"
	case outcome.IsCursedWin():
		return "cursed win"
	case outcome.IsBlessedLoss():
		return "blessed loss"
	case outcome.IsWin():
		return "win"
	case outcome.IsLoss():
		return "loss"
	default:
		return "draw"
	}
}

// Better reports whether a position with Outcome a is a better result
// than one with Outcome b for the player who moved into them. Both
// Outcomes are from the point of view of the opponent, who is to move.
//
// The resulting order is: wins before cursed wins, then draws, blessed
// losses, losses, and finally moves which end the game. Every draw sorts
// as tablebase.Draw, whatever its stored value.
func Better(a, b Outcome) bool {
	va, vb := a.rankValue(), b.rankValue()

	// A negative value means the opponent is lost.
	if (va >= 0) != (vb >= 0) {
		return va < 0
	}

	// Opponent loses faster, or wins slower.
	if a.RuleSafe == b.RuleSafe {
		return va > vb
	}

	if a.IsDraw() != b.IsDraw() {
		return a.IsDraw()
	}

	// A cursed win for the opponent is a blessed loss for the mover, while
	// a blessed loss for the opponent spoils the mover's win.
	if va >= 0 {
		return b.RuleSafe
	}

	return a.RuleSafe
}

func (outcome Outcome) rankValue() tablebase.Value {
	if outcome.IsDraw() {
		return tablebase.Draw
	}

	return outcome.Value
}
