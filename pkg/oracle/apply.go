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
	"fmt"
	"strings"

	"laptudirm.com/x/antitb/pkg/antichess"
)

// FindMove finds the legal move identified by the given string, which
// can be in long algebraic (UCI) or standard algebraic notation. The
// check or mate suffix of a SAN move is optional.
func FindMove(pos *antichess.Position, id string) (antichess.Move, error) {
	id = strings.TrimSpace(id)
	san := strings.TrimRight(id, "#+")

	for _, move := range pos.LegalMoves() {
		if strings.EqualFold(move.String(), id) ||
			strings.TrimRight(Notate(pos, move), "#") == san {
			return move, nil
		}
	}

	return antichess.NullMove, fmt.Errorf("%w: %q in %s", ErrInvalidMove, id, pos.FEN())
}

// ApplyMove plays the move identified by id in the position described by
// the given FEN and returns the FEN of the resulting position.
func ApplyMove(fen, id string) (string, error) {
	pos, err := antichess.Parse(fen)
	if err != nil {
		return "", err
	}

	move, err := FindMove(pos, id)
	if err != nil {
		return "", err
	}

	pos.MakeMove(move)
	return pos.FEN(), nil
}
