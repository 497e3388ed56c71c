package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(cfg.Sales.Name) == 0 {
		t.Fatal("defaults missing sales name synonyms")
	}
	if cfg.UnitPriceOverrides["쇼핑백 중"] != 100 || cfg.UnitPriceOverrides["쇼핑백 대"] != 200 {
		t.Fatalf("default bag overrides = %v", cfg.UnitPriceOverrides)
	}
	if len(cfg.Merge.Segments) != 2 {
		t.Fatalf("default vendor segments = %d, want 2", len(cfg.Merge.Segments))
	}
}

func TestLoad_PartialFileKeepsOtherDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "output_dir: /tmp/out\nsales:\n  name: [\"custom name\"]\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.OutputDir != "/tmp/out" {
		t.Fatalf("OutputDir = %q", cfg.OutputDir)
	}
	if len(cfg.Sales.Name) != 1 || cfg.Sales.Name[0] != "custom name" {
		t.Fatalf("Sales.Name = %v", cfg.Sales.Name)
	}
	// Untouched sections keep their defaults.
	if len(cfg.JoinKeyGroups) != 3 {
		t.Fatalf("JoinKeyGroups = %d groups, want 3", len(cfg.JoinKeyGroups))
	}
}

func TestLoad_RejectsNegativeOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "unit_price_overrides:\n  쇼핑백 중: -5\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load() accepted a negative unit price override")
	}
}

func TestLoad_RejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(":\n\t- ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load() accepted malformed YAML")
	}
}
