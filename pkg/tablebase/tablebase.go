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

// Package tablebase provides access to antichess endgame tablebase data:
// for a position, the distance to win (DTW) and the distance to the next
// zeroing move (DTZ).
package tablebase

import (
	"errors"

	"gopkg.in/yaml.v3"

	"laptudirm.com/x/antitb/pkg/antichess"
)

// Value is a signed distance to win, in half-moves, from the point of
// view of the side to move. Positive values are wins, negative values
// are losses, and zero or values with a magnitude of at least Draw are
// draws.
type Value int16

// Draw is the sentinel value of a theoretically drawn position.
const Draw Value = 30000

// IsDraw checks if the value represents a theoretical draw.
func (v Value) IsDraw() bool {
	return v == 0 || v.Abs() >= int(Draw)
}

// Abs returns the magnitude of the value.
func (v Value) Abs() int {
	if v < 0 {
		return -int(v)
	}

	return int(v)
}

// UnmarshalYAML accepts either an integer or the literal "draw".
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.Value == "draw" {
		*v = Draw
		return nil
	}

	var n int16
	if err := node.Decode(&n); err != nil {
		return err
	}

	*v = Value(n)
	return nil
}

// MarshalYAML writes draws as the literal "draw".
func (v Value) MarshalYAML() (interface{}, error) {
	if v == Draw {
		return "draw", nil
	}

	return int16(v), nil
}

// Entry is the raw tablebase information about a position.
type Entry struct {
	Value Value `yaml:"value"`
	DTZ   uint8 `yaml:"dtz"`
}

var (
	ErrNotFound      = errors.New("tablebase: position not found")
	ErrTooManyPieces = errors.New("tablebase: too many pieces")
	ErrNoTablebase   = errors.New("tablebase: no tablebase loaded")
)

// Prober looks up positions in a tablebase. Implementations must be safe
// for concurrent probes once they have been set up.
type Prober interface {
	// Probe returns the tablebase entry of the given position, or an error
	// if the tablebase can't answer for it. The position is not modified.
	Probe(pos *antichess.Position) (Entry, error)

	// MaxPieces returns the maximum number of pieces supported.
	MaxPieces() int
}

// Noop is a prober that can't answer anything. Use it as a placeholder
// when no tablebase is available.
type Noop struct{}

func (Noop) Probe(*antichess.Position) (Entry, error) {
	return Entry{}, ErrNoTablebase
}

func (Noop) MaxPieces() int {
	return 0
}
