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

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/antitb/pkg/data"
	"laptudirm.com/x/antitb/pkg/oracle"
)

// antitb selftest
func SelfTest() *cobra.Command {
	return &cobra.Command{
		Use:   "selftest",
		Short: "Check the tablebase against known positions",
		Long: heredoc.Doc(`selftest classifies a set of reference positions with known
			results, and reports any position where the tablebase or the
			50-move rule computation disagrees.`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := loadSession(cmd)
			if err != nil {
				return err
			}

			if failed := selfTest(cmd.OutOrStdout(), sess.oracle); failed > 0 {
				return fmt.Errorf("selftest: %d of %d positions failed", failed, len(data.Fixtures))
			}

			return nil
		},
	}
}

// selfTest checks every fixture and returns the number of failures.
func selfTest(w io.Writer, o *oracle.Oracle) int {
	failed := 0
	for _, fixture := range data.Fixtures {
		fmt.Fprintf(w, "Test %-40s: ", fixture.FEN)

		outcome, err := o.ClassifyFEN(fixture.FEN)
		switch {
		case err != nil:
			fmt.Fprint(w, lossColor.Sprintf("%v --> ERROR", err))
		case outcome.Value != fixture.Value:
			fmt.Fprint(w, lossColor.Sprintf("DTW %d != %d --> ERROR", outcome.Value, fixture.Value))
		case outcome.DTZ != fixture.DTZ:
			fmt.Fprint(w, lossColor.Sprintf("DTZ %d != %d --> ERROR", outcome.DTZ, fixture.DTZ))
		case outcome.RuleSafe != fixture.RuleSafe:
			fmt.Fprint(w, lossColor.Sprintf("50-move rule flag: %v != %v --> ERROR", outcome.RuleSafe, fixture.RuleSafe))
		default:
			fmt.Fprint(w, winColor.Sprint("PASSED"))
			fmt.Fprintln(w)
			continue
		}

		fmt.Fprintln(w)
		failed++
	}

	logrus.WithFields(logrus.Fields{
		"positions": len(data.Fixtures),
		"failed":    failed,
	}).Debug("Selftest finished")

	return failed
}
