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

package data

import (
	_ "embed"

	"laptudirm.com/x/antitb/pkg/tablebase"
)

// Fixture is a position with its known classification.
type Fixture struct {
	FEN      string
	Value    tablebase.Value
	DTZ      uint8
	RuleSafe bool
}

// Fixtures are the reference positions checked by selftest. Pairs that
// only differ in the half-move clock pin the 50-move rule boundary.
var Fixtures = []Fixture{
	{"7k/8/5K2/8/8/1R6/P7/8 w - - 99 1", 50, 2, false},
	{"7k/8/5K2/8/8/1R6/P7/8 w - - 98 1", 50, 2, true},
	{"8/8/8/8/8/3k4/8/1R6 b - - 0 1", -35, 35, true},
	{"8/8/8/8/8/P7/8/7k b - - 0 1", -45, 2, true},
	{"8/8/K7/8/8/6b1/8/3b4 w - - 0 1", -47, 45, true},
	{"8/4p3/8/8/8/P7/P7/8 w - - 99 105", 68, 1, true},
	{"2Q2R2/8/8/8/8/8/8/1K5k w - - 0 1", 110, 76, true},
	{"8/1P6/8/8/8/K2P4/8/2k5 w - - 0 1", 142, 7, true},
	{"8/5N2/5B2/8/k7/8/8/2K5 w - - 0 1", 148, 101, false},
	{"8/8/8/8/8/5P2/1B6/2N3k1 w - - 0 1", 174, 101, false},
	{"8/8/8/8/8/5Pp1/3B4/6N1 w - - 0 1", 174, 101, false},
	{"8/8/8/5N2/8/B4P2/8/6k1 w - - 0 1", 162, 101, false},
	{"8/8/8/8/3N4/B4P2/8/6k1 b - - 0 1", -161, 101, false},
	{"8/5P2/8/8/3N4/B7/8/7k w - - 0 1", 72, 1, true},
	{"8/2NK4/8/8/8/B2k4/8/8 b - - 0 1", -105, 101, false},
	{"8/2NK4/8/8/8/B7/2k5/8 w - - 1 2", 104, 100, false},
	{"8/2NK4/8/8/8/B7/2k5/8 w - - 0 1", 104, 100, true},
	{"8/8/8/8/k7/8/8/K3K1N1 w - - 0 1", 104, 100, true},
	{"8/8/8/8/k7/8/8/K3K1N1 w - - 1 2", 104, 100, false},
	{"8/8/8/8/k7/8/4N3/K3K3 b - - 1 1", tablebase.Draw, 0, true},
	{"8/8/8/8/1k6/8/4N3/K3K3 w - - 0 1", tablebase.Draw, 0, true},
	{"8/p7/8/1P6/7p/7R/8/8 b - - 0 25", 4, 1, true},
	{"8/8/8/pP6/7p/7R/8/8 w - a6 0 26", -3, 1, true},
}

// Tablebase is the seed table file installed into the data directory on
// first use. It holds the tablebase entries of the fixture positions.
//
//go:embed tablebase.yaml
var Tablebase []byte
