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

package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"

	"laptudirm.com/x/antitb/pkg/oracle"
	"laptudirm.com/x/antitb/pkg/tablebase"
)

var (
	winColor  = color.New(color.FgGreen)
	drawColor = color.New(color.FgYellow)
	lossColor = color.New(color.FgRed)
)

// result describes the outcome of a move for the player making it. The
// outcome itself is from the point of view of the opponent.
func result(outcome oracle.Outcome) string {
	switch {
	case outcome.IsDraw():
		return "draw"
	case outcome.Terminal:
		return "loss"
	case outcome.RuleSafe:
		return fmt.Sprintf("#%d", outcome.FullMoves())
	default:
		// cursed win or blessed loss
		return fmt.Sprintf("#%d*", outcome.FullMoves())
	}
}

// paint colors text by how good the outcome is for the player who moved
// into it.
func paint(outcome oracle.Outcome, text string) string {
	switch {
	case outcome.Terminal, outcome.IsWin() && outcome.RuleSafe:
		return lossColor.Sprint(text)
	case outcome.IsLoss() && outcome.RuleSafe:
		return winColor.Sprint(text)
	default:
		return drawColor.Sprint(text)
	}
}

// writeRanking prints the ranked moves, the given number on each line.
func writeRanking(w io.Writer, candidates []oracle.Candidate, columns int) {
	if columns <= 0 {
		columns = 1
	}

	for i, candidate := range candidates {
		if i != 0 {
			if i%columns == 0 {
				fmt.Fprint(w, "\n")
			} else {
				fmt.Fprint(w, "    ")
			}
		}

		outcome := candidate.Outcome
		fmt.Fprintf(w, "%2d: %-7s%s DTZ=%-3d",
			i+1, candidate.SAN,
			paint(outcome, fmt.Sprintf("%-5s", result(outcome))),
			outcome.DTZ,
		)
	}

	fmt.Fprintln(w)
}

// writeOutcome prints the classification of a position.
func writeOutcome(w io.Writer, fen string, outcome oracle.Outcome) {
	fmt.Fprintf(w, "Position:     %s\n", fen)

	var text string
	switch {
	case outcome.Terminal:
		text = "win (game over)"
	case outcome.IsDraw():
		text = "draw"
	default:
		text = fmt.Sprintf("%s in %d half-moves", outcome, outcome.Value.Abs())
	}

	// The outcome is for the side to move, so the colors are reversed
	// with respect to a move's outcome.
	switch {
	case outcome.Terminal, outcome.IsWin() && outcome.RuleSafe:
		text = winColor.Sprint(text)
	case outcome.IsLoss() && outcome.RuleSafe:
		text = lossColor.Sprint(text)
	default:
		text = drawColor.Sprint(text)
	}

	fmt.Fprintf(w, "Outcome:      %s\n", text)
	fmt.Fprintf(w, "DTZ:          %d\n", outcome.DTZ)
	fmt.Fprintf(w, "50-move rule: %s\n", ruleSafety(outcome))
}

func ruleSafety(outcome oracle.Outcome) string {
	if outcome.RuleSafe {
		return "safe"
	}

	return "not safe"
}

func value(v tablebase.Value) string {
	if v.IsDraw() {
		return "draw"
	}

	return strconv.Itoa(int(v))
}
