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
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "antitb",
		Short: "Query antichess endgame tablebases",
		Long: heredoc.Doc(`antitb answers questions about antichess endgame positions
			using tablebase files: who wins, how fast, and whether the
			win can be converted before the 50-move rule.

			Tablebase files are read from ~/antitb/tablebase by default,
			and can be configured in ~/antitb/config.yaml or given with
			the --tablebase flag.`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// If --trace flag is provided, set logging level to Trace.
			if cmd.Flag("trace").Changed {
				logrus.SetLevel(logrus.TraceLevel)
			}

			if cmd.Flag("no-color").Changed {
				color.NoColor = true
			}
		},
	}

	// global flags
	root.PersistentFlags().BoolP("help", "h", false, "Show Help Information")
	root.PersistentFlags().BoolP("version", "v", false, "Show antitb's Version")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")
	root.PersistentFlags().StringSliceP("tablebase", "b", nil, "Tablebase files to load instead of the configured ones")
	root.PersistentFlags().IntP("columns", "c", 0, "Number of moves shown on each line")
	root.PersistentFlags().Bool("no-color", false, "Disable colored output")

	versionStr := "v0.1.0\n"
	root.SetVersionTemplate(versionStr)
	root.Version = versionStr

	// Register the various commands.
	root.AddCommand(Probe())
	root.AddCommand(Moves())
	root.AddCommand(Play())
	root.AddCommand(REPL())
	root.AddCommand(SelfTest())
	root.AddCommand(Tablebase())

	return root
}
