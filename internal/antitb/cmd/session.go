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
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/antitb/internal/util"
	antitb "laptudirm.com/x/antitb/pkg/common"
	"laptudirm.com/x/antitb/pkg/oracle"
	"laptudirm.com/x/antitb/pkg/tablebase"
)

// session is the state shared by the commands which query tablebases.
type session struct {
	oracle  *oracle.Oracle
	table   *tablebase.Table
	columns int
}

func newSession(table *tablebase.Table, columns int) *session {
	return &session{
		oracle:  oracle.New(table),
		table:   table,
		columns: columns,
	}
}

// loadSession reads the configuration, with the command line flags taking
// precedence, and loads the tablebase files it names.
func loadSession(cmd *cobra.Command) (*session, error) {
	antitb.Setup()

	config, err := antitb.LoadConfig(antitb.ConfigFile)
	if err != nil {
		return nil, err
	}

	paths := config.TablebasePaths(antitb.Directory)
	if files, _ := cmd.Flags().GetStringSlice("tablebase"); len(files) > 0 {
		paths = files
	}

	if columns, _ := cmd.Flags().GetInt("columns"); columns > 0 {
		config.Columns = columns
	}

	if !config.Color {
		color.NoColor = true
	}

	table := tablebase.NewTable()

	util.StartSpinner("Loading tablebase files")
	for _, path := range paths {
		if err := table.Load(path); err != nil {
			util.PauseSpinner()
			return nil, err
		}
	}
	util.PauseSpinner()

	logrus.WithFields(logrus.Fields{
		"files":      len(paths),
		"positions":  table.Len(),
		"max-pieces": table.MaxPieces(),
	}).Debug("Loaded tablebases")

	return newSession(table, config.Columns), nil
}
