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

// antitb probe
func Probe() *cobra.Command {
	return &cobra.Command{
		Use:   "probe fen",
		Short: "Classify the given position",
		Long: heredoc.Doc(`probe looks up the given position in the tablebase and
			prints its outcome for the side to move, the distance to the
			next zeroing move, and whether the result can be achieved
			before the 50-move rule.

			The FEN may be given as a single argument or as separate
			arguments for each field. The clocks may be omitted.`),
		Args: cobra.MinimumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := loadSession(cmd)
			if err != nil {
				return err
			}

			fen := strings.Join(args, " ")
			outcome, err := sess.oracle.ClassifyFEN(fen)
			if err != nil {
				return err
			}

			writeOutcome(cmd.OutOrStdout(), fen, outcome)
			return nil
		},
	}
}
