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
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"laptudirm.com/x/antitb/pkg/data"
	"laptudirm.com/x/antitb/pkg/oracle"
	"laptudirm.com/x/antitb/pkg/tablebase"
)

const knFEN = "8/8/8/8/8/8/8/KN5k w - - 0 1"

func testSession(t *testing.T, columns int) *session {
	t.Helper()
	color.NoColor = true

	table := tablebase.NewTable()
	if err := table.Load("testdata/kn.yaml"); err != nil {
		t.Fatalf("Load: %v", err)
	}

	return newSession(table, columns)
}

func TestWriteRanking(t *testing.T) {
	sess := testSession(t, 3)

	candidates, err := sess.oracle.RankFEN(knFEN)
	if err != nil {
		t.Fatalf("RankFEN: %v", err)
	}

	var out bytes.Buffer
	writeRanking(&out, candidates, sess.columns)

	want := " 1: Nc3    #5    DTZ=5  " + "    " +
		" 2: Nd2    #2*   DTZ=101" + "    " +
		" 3: Kb2    draw  DTZ=0  " + "\n" +
		" 4: Na3    #-10* DTZ=101" + "    " +
		" 5: Ka2    #-4   DTZ=4  " + "\n"

	if out.String() != want {
		t.Errorf("writeRanking =\n%q\nwant\n%q", out.String(), want)
	}

	out.Reset()
	writeRanking(&out, candidates, 1)
	if lines := strings.Count(out.String(), "\n"); lines != 5 {
		t.Errorf("one column ranking has %d lines, want 5", lines)
	}
}

func TestResult(t *testing.T) {
	tests := []struct {
		outcome oracle.Outcome
		want    string
	}{
		{oracle.Decided, "loss"},
		// a stored zero is a draw; only the game-over outcome reads as a loss
		{oracle.Outcome{Value: 0, DTZ: 0, RuleSafe: true}, "draw"},
		{oracle.Outcome{Value: tablebase.Draw, RuleSafe: true}, "draw"},
		{oracle.Outcome{Value: -tablebase.Draw, RuleSafe: true}, "draw"},
		{oracle.Outcome{Value: -1, DTZ: 1, RuleSafe: true}, "#1"},
		{oracle.Outcome{Value: 2, DTZ: 2, RuleSafe: true}, "#-1"},
		{oracle.Outcome{Value: -15, DTZ: 101}, "#8*"},
	}

	for _, test := range tests {
		if got := result(test.outcome); got != test.want {
			t.Errorf("result(%+v) = %q, want %q", test.outcome, got, test.want)
		}
	}
}

func TestWriteOutcome(t *testing.T) {
	sess := testSession(t, 3)

	outcome, err := sess.oracle.ClassifyFEN(knFEN)
	if err != nil {
		t.Fatalf("ClassifyFEN: %v", err)
	}

	var out bytes.Buffer
	writeOutcome(&out, knFEN, outcome)

	for _, want := range []string{
		"Position:     " + knFEN + "\n",
		"Outcome:      win in 10 half-moves\n",
		"DTZ:          6\n",
		"50-move rule: safe\n",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("writeOutcome output %q does not contain %q", out.String(), want)
		}
	}
}

func TestREPL(t *testing.T) {
	sess := testSession(t, 3)

	input := strings.Join([]string{
		knFEN,
		"9", // out of range
		"1",
		"q",
		knFEN,
	}, "\n")

	var out bytes.Buffer
	if err := sess.repl(strings.NewReader(input), &out); err != nil {
		t.Fatalf("repl: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("repl printed %d lines, want 5:\n%s", len(lines), out.String())
	}

	if !strings.HasPrefix(lines[1], " 1: Nc3") || !strings.HasPrefix(lines[2], " 4: Na3") {
		t.Errorf("repl ranking = %q", lines[1:3])
	}

	const next = "8/8/8/8/8/2N5/8/K6k b - - 1 1"
	if lines[3] != next {
		t.Errorf("repl after selecting 1 printed %q, want %q", lines[3], next)
	}

	// the position after Nc3 has no tablebase moves
	if !strings.HasPrefix(lines[4], "ERROR "+next+": ") {
		t.Errorf("repl printed %q, want an error for %q", lines[4], next)
	}
}

func TestSelfTest(t *testing.T) {
	color.NoColor = true

	table := tablebase.NewTable()
	if err := table.Decode(data.Tablebase, "tablebase.yaml"); err != nil {
		t.Fatalf("Decode: %v", err)
	}

	var out bytes.Buffer
	if failed := selfTest(&out, oracle.New(table)); failed != 0 {
		t.Errorf("selfTest failed %d positions:\n%s", failed, out.String())
	}

	if passed := strings.Count(out.String(), "PASSED"); passed != len(data.Fixtures) {
		t.Errorf("selfTest passed %d positions, want %d", passed, len(data.Fixtures))
	}

	out.Reset()
	if failed := selfTest(&out, oracle.New(tablebase.Noop{})); failed != len(data.Fixtures) {
		t.Errorf("selfTest without a tablebase failed %d positions, want %d", failed, len(data.Fixtures))
	}
}

func TestPlay(t *testing.T) {
	root := Root()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"play", "Nc3", "8/8/8/8/8/8/8/KN5k", "w", "-", "-"})

	if err := root.Execute(); err != nil {
		t.Fatalf("play: %v", err)
	}

	if got, want := out.String(), "8/8/8/8/8/2N5/8/K6k b - - 1 1\n"; got != want {
		t.Errorf("play printed %q, want %q", got, want)
	}

	root = Root()
	root.SetOut(&out)
	root.SetArgs([]string{"play", "Nb5", knFEN})
	if err := root.Execute(); err == nil {
		t.Error("play with an illegal move succeeded")
	}
}
