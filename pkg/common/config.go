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
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the user configuration, read from ConfigFile.
type Config struct {
	// Table files to load. Relative paths are relative to Directory.
	Tablebases []string `yaml:"tablebases"`

	// Number of moves printed on each line of a ranking.
	Columns int `yaml:"columns"`

	// Whether results are colored.
	Color bool `yaml:"color"`
}

// DefaultConfig returns the configuration used when there is no file.
func DefaultConfig() Config {
	return Config{
		Tablebases: []string{filepath.Join("tablebase", "fixtures.yaml")},
		Columns:    3,
		Color:      true,
	}
}

// LoadConfig reads the configuration file at the given path. A missing
// file is not an error; the default configuration is returned instead.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	file, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return config, nil
	case err != nil:
		return config, err
	}

	if err := yaml.Unmarshal(file, &config); err != nil {
		return config, fmt.Errorf("%s: %w", path, err)
	}

	if config.Columns <= 0 {
		config.Columns = DefaultConfig().Columns
	}

	return config, nil
}

// Marshal encodes the configuration in the format of the config file.
func (config Config) Marshal() ([]byte, error) {
	return yaml.Marshal(config)
}

// TablebasePaths returns the table files to load, resolved against the
// given base directory.
func (config Config) TablebasePaths(base string) []string {
	paths := make([]string, len(config.Tablebases))
	for i, path := range config.Tablebases {
		if !filepath.IsAbs(path) {
			path = filepath.Join(base, path)
		}

		paths[i] = path
	}

	return paths
}
