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
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

// antitb moves
func Moves() *cobra.Command {
	return &cobra.Command{
		Use:   "moves fen",
		Short: "Rank the legal moves in the given position",
		Long: heredoc.Doc(`moves classifies every legal move in the given position
			and lists them from best to worst for the side to move.

			Each move is shown with the number of full moves to the end
			of the game, positive when the mover wins. A * marks results
			which are spoilt by the 50-move rule: cursed wins and blessed
			losses. Moves which hand the opponent the game are marked as
			a loss.`),
		Args: cobra.MinimumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := loadSession(cmd)
			if err != nil {
				return err
			}

			candidates, err := sess.oracle.RankFEN(strings.Join(args, " "))
			if err != nil {
				return err
			}

			writeRanking(cmd.OutOrStdout(), candidates, sess.columns)
			return nil
		},
	}
}
