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
	"sort"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/antitb/pkg/antichess"
)

// Candidate is a legal move together with its notation and the Outcome
// of the position it leads to. The Outcome is from the point of view of
// the opponent, who is to move after it.
type Candidate struct {
	Move    antichess.Move
	SAN     string
	Outcome Outcome
}

// Rank classifies every legal move in the given position and orders them
// from best to worst for the side to move, keeping the move generation
// order between equal moves. If any of the moves can't be classified, no
// ranking is returned and the error wraps ErrUnavailable.
//
// The position is used as a scratch board but is left unchanged.
func (oracle *Oracle) Rank(pos *antichess.Position) ([]Candidate, error) {
	moves := pos.LegalMoves()
	candidates := make([]Candidate, 0, len(moves))

	for _, move := range moves {
		candidate, err := oracle.candidate(pos, move)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"position": pos.FEN(),
				"move":     move,
			}).Debug("Ranking aborted")

			return nil, err
		}

		candidates = append(candidates, candidate)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return Better(candidates[i].Outcome, candidates[j].Outcome)
	})

	return candidates, nil
}

// RankFEN parses the given FEN and ranks the moves in the position.
func (oracle *Oracle) RankFEN(fen string) ([]Candidate, error) {
	pos, err := antichess.Parse(fen)
	if err != nil {
		return nil, err
	}

	return oracle.Rank(pos)
}

func (oracle *Oracle) candidate(pos *antichess.Position, move antichess.Move) (Candidate, error) {
	candidate := Candidate{Move: move, SAN: Notate(pos, move)}

	pos.MakeMove(move)
	defer pos.UnmakeMove()

	// The mover can't run out of pieces or moves by moving, so only the
	// opponent's side of the game can be over.
	if pos.IsAntiWin() {
		candidate.Outcome = Decided
		return candidate, nil
	}

	var err error
	candidate.Outcome, err = oracle.probe(pos)
	return candidate, err
}
