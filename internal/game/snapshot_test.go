package game

import (
	"testing"

	"github.com/vovakirdan/breach-runner/internal/core"
)

// scriptedInput returns the input frame for tick i, shared by both sides
// of the resume comparisons.
func scriptedInput(i int) core.InputFrame {
	in := core.NewInputFrame()
	switch (i / 25) % 3 {
	case 0:
		in.Set(core.ActionLeft)
	case 1:
		in.Set(core.ActionRight)
	case 2:
		in.Set(core.ActionDown)
	}
	return in
}

func TestSnapshotRoundTripMidEncounter(t *testing.T) {
	runtime := core.RuntimeConfig{FieldW: 80, FieldH: 24, TickRate: 60, Seed: 321}

	g1 := New()
	g1.Reset(runtime)

	// Drive into a live encounter and an arbitrary mix of line flags.
	// Shields keep firewall hits from ending the run before the
	// comparison window closes; they are part of the snapshot, so both
	// sides see the same protection.
	g1.World().Player.Shields = 50
	g1.World().Score = 32999.9
	g1.Step(stepDT, core.NewInputFrame())
	b := g1.World().Boss
	if b == nil {
		t.Fatal("setup: expected a boss")
	}
	for i := 0; i < 120; i++ {
		g1.Step(stepDT, scriptedInput(i))
	}
	b.Lines[0].Destroyed = true
	b.Lines[5].Destroyed = true
	b.Lines[17].Destroyed = true
	b.Lines[2].Vulnerable = true
	b.Lines[20].Vulnerable = true

	snap := g1.Snapshot()

	// Uninterrupted continuation.
	for i := 0; i < 300; i++ {
		g1.Step(stepDT, scriptedInput(i))
	}
	want := g1.Snapshot()

	// Resume from the snapshot in a fresh instance and replay the same
	// input stream.
	g2 := New()
	g2.Reset(runtime)
	g2.ApplySnapshot(snap)
	for i := 0; i < 300; i++ {
		g2.Step(stepDT, scriptedInput(i))
	}
	got := g2.Snapshot()

	if got.Hash() != want.Hash() {
		t.Errorf("resumed run diverged from uninterrupted run: %x vs %x", got.Hash(), want.Hash())
	}
}

func TestSnapshotRestoresEncounterState(t *testing.T) {
	runtime := core.RuntimeConfig{FieldW: 80, FieldH: 24, TickRate: 60, Seed: 11}

	g1 := New()
	g1.Reset(runtime)
	g1.World().Score = 98999.5
	g1.Step(stepDT, core.NewInputFrame())
	b1 := g1.World().Boss
	if b1 == nil || b1.Level != 3 {
		t.Fatalf("setup: expected a level-3 boss, got %+v", b1)
	}
	b1.Lines[3].Destroyed = true
	b1.Lines[19].Vulnerable = true
	b1.OuterAngle = 123.5
	b1.InnerAngle = 300.25

	snap := g1.Snapshot()

	g2 := New()
	g2.Reset(runtime)
	g2.ApplySnapshot(snap)
	b2 := g2.World().Boss
	if b2 == nil {
		t.Fatal("boss lost in round-trip")
	}

	if b2.Level != 3 || b2.OuterAngle != 123.5 || b2.InnerAngle != 300.25 {
		t.Errorf("encounter pose not restored: %+v", b2)
	}
	if !b2.Lines[3].Destroyed || !b2.Lines[19].Vulnerable {
		t.Error("line flags not restored")
	}
	if len(b2.Lines) != len(b1.Lines) {
		t.Fatalf("geometry mismatch: %d vs %d lines", len(b2.Lines), len(b1.Lines))
	}
	for i := range b2.Lines {
		if b2.Lines[i].A != b1.Lines[i].A || b2.Lines[i].B != b1.Lines[i].B {
			t.Fatalf("line %d local geometry differs after rebuild", i)
		}
	}

	if g2.Snapshot().Hash() != snap.Hash() {
		t.Error("immediate re-snapshot hash differs")
	}
}

func TestSnapshotWithoutBoss(t *testing.T) {
	runtime := core.RuntimeConfig{FieldW: 80, FieldH: 24, TickRate: 60, Seed: 2}

	g1 := New()
	g1.Reset(runtime)
	for i := 0; i < 90; i++ {
		g1.Step(stepDT, scriptedInput(i))
	}
	snap := g1.Snapshot()
	if snap.HasBoss {
		t.Fatal("no boss expected this early")
	}

	g2 := New()
	g2.Reset(runtime)
	g2.ApplySnapshot(snap)
	if g2.World().Boss != nil {
		t.Error("boss materialized from a bossless snapshot")
	}
	if g2.Snapshot().Hash() != snap.Hash() {
		t.Error("bossless round-trip hash differs")
	}
}
