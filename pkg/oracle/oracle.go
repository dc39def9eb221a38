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

// Package oracle turns raw antichess tablebase data into user facing
// answers: the classification of a position under the 50-move rule, and
// a ranking of every legal move with its algebraic notation.
package oracle

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/antitb/pkg/antichess"
	"laptudirm.com/x/antitb/pkg/tablebase"
)

var (
	ErrUnavailable = errors.New("oracle: tablebase unavailable")
	ErrInvalidMove = errors.New("oracle: invalid move")
)

// Oracle answers queries about antichess positions using a tablebase.
// Queries don't share any state apart from the prober, so an Oracle can
// serve concurrent queries if its prober can.
type Oracle struct {
	prober tablebase.Prober
}

// New creates an Oracle which looks positions up with the given prober.
func New(prober tablebase.Prober) *Oracle {
	return &Oracle{prober: prober}
}

// Classify determines the Outcome of the given position for the side to
// move. Positions already decided by the rules are not looked up. If the
// tablebase can't answer, the returned error wraps ErrUnavailable.
func (oracle *Oracle) Classify(pos *antichess.Position) (Outcome, error) {
	if pos.IsAntiWin() {
		return Decided, nil
	}

	return oracle.probe(pos)
}

// ClassifyFEN parses the given FEN and classifies the position.
func (oracle *Oracle) ClassifyFEN(fen string) (Outcome, error) {
	pos, err := antichess.Parse(fen)
	if err != nil {
		return Outcome{}, err
	}

	return oracle.Classify(pos)
}

func (oracle *Oracle) probe(pos *antichess.Position) (Outcome, error) {
	entry, err := oracle.prober.Probe(pos)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"position": pos.FEN(),
			"error":    err,
		}).Debug("Tablebase probe failed")

		return Outcome{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	outcome := newOutcome(entry, pos.HalfMoveClock())
	logrus.WithFields(logrus.Fields{
		"position":  pos.FEN(),
		"value":     outcome.Value,
		"dtz":       outcome.DTZ,
		"rule-safe": outcome.RuleSafe,
	}).Trace("Tablebase probe")

	return outcome, nil
}
