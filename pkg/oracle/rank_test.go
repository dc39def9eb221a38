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

package oracle

import (
	"errors"
	"sort"
	"testing"

	"laptudirm.com/x/antitb/pkg/antichess"
	"laptudirm.com/x/antitb/pkg/tablebase"
)

// successors builds a prober which answers for the positions reached by
// the given moves, named in UCI.
func successors(t *testing.T, pos *antichess.Position, entries map[string]tablebase.Entry) *fakeProber {
	t.Helper()

	prober := &fakeProber{entries: make(map[string]tablebase.Entry)}
	for _, move := range pos.LegalMoves() {
		entry, found := entries[move.String()]
		if !found {
			continue
		}

		pos.MakeMove(move)
		prober.entries[pos.Key()] = entry
		pos.UnmakeMove()
	}

	if len(prober.entries) != len(entries) {
		t.Fatalf("some of %v are not legal in %s", entries, pos.FEN())
	}

	return prober
}

func rankedMoves(candidates []Candidate) []string {
	moves := make([]string, len(candidates))
	for i, candidate := range candidates {
		moves[i] = candidate.Move.String()
	}

	return moves
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func TestRank(t *testing.T) {
	const fen = "8/8/8/8/8/8/8/KN5k w - - 0 1"
	pos := mustParse(t, fen)

	prober := successors(t, pos, map[string]tablebase.Entry{
		"a1a2": {Value: 8, DTZ: 4},              // loss
		"a1b2": {Value: tablebase.Draw, DTZ: 0}, // draw
		"b1a3": {Value: 20, DTZ: 101},           // blessed loss
		"b1c3": {Value: -9, DTZ: 5},             // win
		"b1d2": {Value: -3, DTZ: 101},           // cursed win
	})

	candidates, err := New(prober).Rank(pos)
	if err != nil {
		t.Fatalf("Rank(%q): %v", fen, err)
	}

	want := []string{"b1c3", "b1d2", "a1b2", "b1a3", "a1a2"}
	if got := rankedMoves(candidates); !equalStrings(got, want) {
		t.Errorf("Rank(%q) = %v, want %v", fen, got, want)
	}

	wantSAN := []string{"Nc3", "Nd2", "Kb2", "Na3", "Ka2"}
	for i, candidate := range candidates {
		if candidate.SAN != wantSAN[i] {
			t.Errorf("candidate %d: SAN = %q, want %q", i, candidate.SAN, wantSAN[i])
		}
	}

	// the successors have a half-move clock of 1, leaving 99 half-moves
	if !candidates[0].Outcome.RuleSafe || candidates[1].Outcome.RuleSafe {
		t.Errorf("rule safety not computed per successor: %+v", candidates[:2])
	}

	if pos.FEN() != fen {
		t.Errorf("Rank left the position at %q", pos.FEN())
	}

	if prober.probes != 5 {
		t.Errorf("Rank probed %d times, want 5", prober.probes)
	}
}

func TestRankTerminal(t *testing.T) {
	const fen = "8/8/8/8/8/7p/5N1P/Rk6 w - - 0 1"
	pos := mustParse(t, fen)

	prober := successors(t, pos, map[string]tablebase.Entry{
		"f2h3": {Value: 5, DTZ: 3},
	})

	candidates, err := New(prober).Rank(pos)
	if err != nil {
		t.Fatalf("Rank(%q): %v", fen, err)
	}

	if len(candidates) != 2 {
		t.Fatalf("Rank(%q) returned %d candidates, want 2", fen, len(candidates))
	}

	// giving away the last movable piece ends the game, ranked below even
	// a theoretical loss
	first, last := candidates[0], candidates[1]
	if first.Move.String() != "f2h3" || first.SAN != "Nxh3" || first.Outcome.Value != 5 {
		t.Errorf("first candidate = %+v", first)
	}

	if last.Move.String() != "a1b1" || last.SAN != "Rxb1#" || last.Outcome != Decided {
		t.Errorf("last candidate = %+v", last)
	}

	if prober.probes != 1 {
		t.Errorf("Rank probed %d times, want 1", prober.probes)
	}
}

func TestRankUnavailable(t *testing.T) {
	const fen = "8/8/8/8/8/8/8/KN5k w - - 0 1"
	pos := mustParse(t, fen)

	prober := successors(t, pos, map[string]tablebase.Entry{
		"a1a2": {Value: 8, DTZ: 4},
		"a1b2": {Value: tablebase.Draw, DTZ: 0},
		"b1a3": {Value: 20, DTZ: 101},
		"b1c3": {Value: -9, DTZ: 5},
	})

	candidates, err := New(prober).Rank(pos)
	if !errors.Is(err, ErrUnavailable) || !errors.Is(err, tablebase.ErrNotFound) {
		t.Errorf("Rank with a missing successor: err = %v, want ErrUnavailable", err)
	}

	if candidates != nil {
		t.Errorf("Rank returned a partial ranking: %v", rankedMoves(candidates))
	}

	if pos.FEN() != fen {
		t.Errorf("aborted Rank left the position at %q", pos.FEN())
	}

	if _, err := New(prober).RankFEN("8/8/8/8/8/8/8/KN5k w"); !errors.Is(err, antichess.ErrInvalidFEN) {
		t.Errorf("RankFEN of a bad fen = %v, want ErrInvalidFEN", err)
	}
}

func TestRankStable(t *testing.T) {
	const fen = "8/8/8/8/8/8/8/KN5k w - - 0 1"
	pos := mustParse(t, fen)

	entry := tablebase.Entry{Value: 6, DTZ: 2}
	oracle := New(constProber(entry))

	var generated []string
	for _, move := range pos.LegalMoves() {
		generated = append(generated, move.String())
	}

	for i := 0; i < 3; i++ {
		candidates, err := oracle.RankFEN(fen)
		if err != nil {
			t.Fatalf("RankFEN(%q): %v", fen, err)
		}

		if got := rankedMoves(candidates); !equalStrings(got, generated) {
			t.Errorf("equal moves were reordered: %v, generated %v", got, generated)
		}
	}
}

func TestBetter(t *testing.T) {
	want := []Outcome{
		{Value: -3, DTZ: 3, RuleSafe: true},  // fast win
		{Value: -41, DTZ: 9, RuleSafe: true}, // slow win
		{Value: -5, DTZ: 101},                // cursed win
		{Value: tablebase.Draw, RuleSafe: true},
		{Value: 12, DTZ: 101},               // blessed loss
		{Value: 30, DTZ: 7, RuleSafe: true}, // slow loss
		{Value: 4, DTZ: 1, RuleSafe: true},  // fast loss
		Decided,
	}

	// every pair must be ordered consistently
	for i := range want {
		for j := range want {
			if got := Better(want[i], want[j]); got != (i < j) {
				t.Errorf("Better(%+v, %+v) = %v, want %v", want[i], want[j], got, i < j)
			}
		}
	}

	shuffled := []Outcome{want[4], want[7], want[1], want[3], want[6], want[0], want[5], want[2]}
	sort.SliceStable(shuffled, func(i, j int) bool {
		return Better(shuffled[i], shuffled[j])
	})

	for i := range want {
		if shuffled[i] != want[i] {
			t.Errorf("sorted[%d] = %+v, want %+v", i, shuffled[i], want[i])
		}
	}
}

func TestBetterDraws(t *testing.T) {
	draws := []Outcome{
		{Value: tablebase.Draw, RuleSafe: true},
		{Value: -tablebase.Draw, RuleSafe: true},
		{Value: 0, RuleSafe: true},
	}

	others := []Outcome{
		{Value: -3, DTZ: 3, RuleSafe: true},
		{Value: -5, DTZ: 101},
		{Value: 12, DTZ: 101},
		{Value: 4, DTZ: 1, RuleSafe: true},
		Decided,
	}

	for _, a := range draws {
		for _, b := range draws {
			if Better(a, b) {
				t.Errorf("Better(%+v, %+v) = true between draws", a, b)
			}
		}

		// every draw must sort exactly like the canonical one
		for _, other := range others {
			if Better(a, other) != Better(draws[0], other) || Better(other, a) != Better(other, draws[0]) {
				t.Errorf("draw %+v sorts differently from %+v against %+v", a, draws[0], other)
			}
		}
	}
}

func TestRankDrawValues(t *testing.T) {
	const fen = "8/8/8/8/8/8/8/KN5k w - - 0 1"
	pos := mustParse(t, fen)

	prober := successors(t, pos, map[string]tablebase.Entry{
		"a1a2": {Value: 8, DTZ: 4},               // loss
		"a1b2": {Value: 0, DTZ: 0},               // draw
		"b1a3": {Value: 20, DTZ: 101},            // blessed loss
		"b1c3": {Value: -tablebase.Draw, DTZ: 0}, // draw
		"b1d2": {Value: -3, DTZ: 101},            // cursed win
	})

	candidates, err := New(prober).Rank(pos)
	if err != nil {
		t.Fatalf("Rank(%q): %v", fen, err)
	}

	got := rankedMoves(candidates)
	if len(got) != 5 {
		t.Fatalf("Rank(%q) = %v, want 5 moves", fen, got)
	}

	draws := []string{got[1], got[2]}
	sort.Strings(draws)
	if got[0] != "b1d2" || !equalStrings(draws, []string{"a1b2", "b1c3"}) || got[3] != "b1a3" || got[4] != "a1a2" {
		t.Errorf("Rank(%q) = %v, want b1d2, the two draws, b1a3, a1a2", fen, got)
	}
}
