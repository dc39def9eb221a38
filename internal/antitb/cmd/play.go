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
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"laptudirm.com/x/antitb/pkg/oracle"
)

// antitb play
func Play() *cobra.Command {
	return &cobra.Command{
		Use:   "play move fen",
		Short: "Print the position reached by a move",
		Long: heredoc.Doc(`play makes the given move in the given position and prints
			the FEN of the resulting position. The move can be written in
			long algebraic notation (e2e4, a7a8k) or in standard algebraic
			notation (Nc3, axb8=K). No tablebase is needed.`),
		Args: cobra.MinimumNArgs(2),

		RunE: func(cmd *cobra.Command, args []string) error {
			fen, err := oracle.ApplyMove(strings.Join(args[1:], " "), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), fen)
			return nil
		},
	}
}
