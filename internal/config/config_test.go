package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"voxelworld/internal/physics"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.ChunkSize != 16 || cfg.RenderDistance != 8 {
		t.Errorf("unexpected defaults: size %d, render distance %d", cfg.ChunkSize, cfg.RenderDistance)
	}
	if got := cfg.VerticalSpan(); got != 64 {
		t.Errorf("VerticalSpan = %d, want 64", got)
	}
	if cfg.RaycastStep != physics.DefaultStepSize || cfg.RaycastMaxSteps != physics.DefaultMaxSteps {
		t.Errorf("raycast defaults = %g/%d, want %g/%d",
			cfg.RaycastStep, cfg.RaycastMaxSteps, physics.DefaultStepSize, physics.DefaultMaxSteps)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(*World){
		"chunk size":   func(c *World) { c.ChunkSize = 0 },
		"render dist":  func(c *World) { c.RenderDistance = -1 },
		"band":         func(c *World) { c.MinChunkY, c.MaxChunkY = 2, 1 },
		"atlas":        func(c *World) { c.AtlasTiles = 0 },
		"ray step":     func(c *World) { c.RaycastStep = 0 },
		"ray steps":    func(c *World) { c.RaycastMaxSteps = 0 },
		"cache":        func(c *World) { c.HeightCacheSize = 0 },
		"generator":    func(c *World) { c.Generator = "islands" },
		"heights":      func(c *World) { c.Natural.MinHeight, c.Natural.MaxHeight = 10, 5 },
		"cave octaves": func(c *World) { c.Natural.CaveOctaves = 0 },
	}
	for name, mutate := range cases {
		cfg := Default()
		mutate(&cfg)
		err := cfg.Validate()
		if !errors.Is(err, ErrInvalid) {
			t.Errorf("%s: expected ErrInvalid, got %v", name, err)
		}
	}
}

func TestFlatSkipsNaturalValidation(t *testing.T) {
	cfg := Default()
	cfg.Generator = GeneratorFlat
	cfg.Natural.CaveOctaves = 0
	if err := cfg.Validate(); err != nil {
		t.Fatalf("flat config should ignore natural settings: %v", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.yaml")
	data := []byte("render_distance: 3\nseed: 42\ngenerator: flat\nflat:\n  surface_y: 20\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.RenderDistance != 3 || cfg.Seed != 42 || cfg.Generator != GeneratorFlat {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Flat.SurfaceY != 20 {
		t.Errorf("flat.surface_y = %d, want 20", cfg.Flat.SurfaceY)
	}
	if cfg.ChunkSize != 16 {
		t.Errorf("chunk_size should keep its default, got %d", cfg.ChunkSize)
	}
	if cfg.Natural.MaxHeight != 64 {
		t.Errorf("natural defaults lost: %+v", cfg.Natural)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.yaml")
	if err := os.WriteFile(path, []byte("chunk_size: -4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
