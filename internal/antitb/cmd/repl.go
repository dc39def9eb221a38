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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/antitb/pkg/oracle"
)

// antitb repl
func REPL() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Explore positions interactively",
		Long: heredoc.Doc(`repl reads commands from the standard input, one per line.

			A FEN ranks the moves in that position. A number selects the
			move with that index in the last ranking, plays it, and ranks
			the moves in the new position. 't' or 'test' runs selftest,
			and 'q' or 'quit' exits.`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := loadSession(cmd)
			if err != nil {
				return err
			}

			return sess.repl(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func (sess *session) repl(r io.Reader, w io.Writer) error {
	fmt.Fprintln(w, "Enter your FEN, or a number to select a move, or 'q' to exit:")

	var (
		fen   string
		moves []oracle.Candidate
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch line {
		case "":
			continue
		case "q", "quit":
			return nil
		case "t", "test":
			selfTest(w, sess.oracle)
			continue
		}

		if fen != "" && len(line) <= 2 {
			n, err := strconv.Atoi(line)
			if err != nil || n < 1 || n > len(moves) {
				continue
			}

			next, err := oracle.ApplyMove(fen, moves[n-1].Move.String())
			if err != nil {
				logrus.WithField("error", err).Debug("Selected move failed")
				continue
			}

			fen = next
			fmt.Fprintln(w, fen)
		} else {
			fen = line
		}

		var err error
		moves, err = sess.oracle.RankFEN(fen)
		if err != nil {
			fmt.Fprintf(w, "ERROR %s: %v\n", fen, err)
			fen = ""
			continue
		}

		writeRanking(w, moves, sess.columns)
	}

	return scanner.Err()
}
