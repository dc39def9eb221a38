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

package antitb

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"laptudirm.com/x/antitb/pkg/data"
)

const FilePermissions = 0755

// Directory is where antitb keeps its configuration and table files.
var Directory = filepath.Join(xdg.Home, "antitb")

var (
	// TablebaseDirectory holds the table files loaded by default.
	TablebaseDirectory = filepath.Join(Directory, "tablebase")

	// SeedTablebase is the bundled table file, copied on first use.
	SeedTablebase = filepath.Join(TablebaseDirectory, "fixtures.yaml")

	// ConfigFile is the path to the configuration file.
	ConfigFile = filepath.Join(Directory, "config.yaml")
)

func TryMkdir(dir string) {
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		_ = os.Mkdir(dir, FilePermissions)
	}
}

func TryCreate(file string, data []byte) {
	if _, err := os.Stat(file); errors.Is(err, fs.ErrNotExist) {
		_ = os.WriteFile(file, data, FilePermissions)
	}
}

// Setup creates the antitb directory and seeds it with the bundled
// table file and a default configuration, without touching existing
// files.
func Setup() {
	TryMkdir(Directory)
	TryMkdir(TablebaseDirectory)

	TryCreate(SeedTablebase, data.Tablebase)
	if config, err := DefaultConfig().Marshal(); err == nil {
		TryCreate(ConfigFile, config)
	}
}
