package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadBackfillsPartialBossConfig(t *testing.T) {
	// Thresholds without periods must not leave the encounter unrunnable:
	// missing boss fields fall back to the defaults.
	yaml := `
boss:
  thresholds: [1000, 2000]
`
	path := filepath.Join(t.TempDir(), "breach.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	def := DefaultConfig()
	if len(cfg.Boss.Thresholds) != 2 {
		t.Fatalf("user thresholds not kept: %v", cfg.Boss.Thresholds)
	}
	if len(cfg.Boss.RotationPeriods) != len(def.Boss.RotationPeriods) {
		t.Errorf("rotation periods not backfilled: %v", cfg.Boss.RotationPeriods)
	}
	if cfg.Boss.VulnInterval != def.Boss.VulnInterval {
		t.Errorf("vulnerability interval not backfilled: %v", cfg.Boss.VulnInterval)
	}
	if cfg.Boss.SizeFactor != def.Boss.SizeFactor {
		t.Errorf("size factor not backfilled: %v", cfg.Boss.SizeFactor)
	}
}

func TestLoadRejectsUnreadableCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing custom config path")
	}
}
