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

	"github.com/spf13/cobra"
)

func Tablebase() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tablebase",
		Short: "Inspect the loaded tablebase files",
	}

	cmd.AddCommand(tablebaseList())
	return cmd
}

// antitb tablebase list
func tablebaseList() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the positions in the loaded tablebases",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := loadSession(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if sess.table.Len() == 0 {
				fmt.Fprintln(out, lossColor.Sprint("No Positions Loaded."))
				return nil
			}

			fmt.Fprintf(out, "%s: %d positions, up to %d pieces\n\n",
				winColor.Sprint("Loaded Tablebases"), sess.table.Len(), sess.table.MaxPieces())

			for _, key := range sess.table.Keys() {
				entry, _ := sess.table.Lookup(key)
				fmt.Fprintf(out, "- %-40s %6s dtz %d\n", key, value(entry.Value), entry.DTZ)
			}

			return nil
		},
	}
}
