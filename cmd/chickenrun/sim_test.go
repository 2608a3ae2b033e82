package main

import (
	"bytes"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/chicken-run/internal/config"
	"github.com/vovakirdan/chicken-run/internal/game"
)

func decodeSnapshots(t *testing.T, out string) []game.Snapshot {
	t.Helper()
	dec := yaml.NewDecoder(strings.NewReader(out))
	var snaps []game.Snapshot
	for {
		var s game.Snapshot
		if err := dec.Decode(&s); err != nil {
			break
		}
		snaps = append(snaps, s)
	}
	return snaps
}

func TestWriteSimEvery(t *testing.T) {
	var buf bytes.Buffer
	if err := writeSim(&buf, config.Default(), 2024, 10, 5); err != nil {
		t.Fatalf("writeSim() failed: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "# seed: 2024\n") {
		t.Errorf("output should start with the seed, got %q", out[:min(len(out), 40)])
	}

	snaps := decodeSnapshots(t, out)
	if len(snaps) != 2 || snaps[0].Frame != 5 || snaps[1].Frame != 10 {
		t.Fatalf("decoded %d snapshots: %+v", len(snaps), snaps)
	}
	if len(snaps[1].Enemies) != 13 {
		t.Errorf("snapshot has %d enemies, expected 13", len(snaps[1].Enemies))
	}
	if snaps[1].Player != (game.Point{X: 140, Y: 380}) {
		t.Errorf("idle player moved to %+v", snaps[1].Player)
	}
}

func TestWriteSimDeterministic(t *testing.T) {
	var a, b bytes.Buffer
	if err := writeSim(&a, config.Default(), 7, 300, 0); err != nil {
		t.Fatalf("writeSim() failed: %v", err)
	}
	if err := writeSim(&b, config.Default(), 7, 300, 0); err != nil {
		t.Fatalf("writeSim() failed: %v", err)
	}
	if a.String() != b.String() {
		t.Error("same seed produced different output")
	}
	if strings.Count(a.String(), "frame:") != 1 {
		t.Error("final-only run should print one snapshot")
	}
}
