package config

import (
	"errors"
	"fmt"
	"os"

	"voxelworld/internal/physics"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid world config")

// Generator kinds accepted by World.Generator.
const (
	GeneratorNatural = "natural"
	GeneratorFlat    = "flat"
)

// World holds the tunables of one voxel world. It is passed by value and
// never mutated after construction, so several worlds with different
// settings can coexist.
type World struct {
	ChunkSize      int   `yaml:"chunk_size"`
	RenderDistance int   `yaml:"render_distance"` // in chunks
	MinChunkY      int   `yaml:"min_chunk_y"`
	MaxChunkY      int   `yaml:"max_chunk_y"`
	Seed           int64 `yaml:"seed"`

	// FollowViewer centres streaming on the viewer; when false the
	// required set is pinned around the origin.
	FollowViewer bool   `yaml:"follow_viewer"`
	Generator    string `yaml:"generator"`

	// AtlasTiles is K, the number of tiles per row of the square atlas.
	AtlasTiles int `yaml:"atlas_tiles"`

	RaycastStep     float32 `yaml:"raycast_step"`
	RaycastMaxSteps int     `yaml:"raycast_max_steps"`

	// HeightCacheSize bounds the column-height memo of the natural generator.
	HeightCacheSize int `yaml:"height_cache_size"`

	Flat    FlatGen    `yaml:"flat"`
	Natural NaturalGen `yaml:"natural"`
}

// Default returns the stock settings.
func Default() World {
	return World{
		ChunkSize:       16,
		RenderDistance:  8,
		MinChunkY:       0,
		MaxChunkY:       3,
		Seed:            0,
		FollowViewer:    true,
		Generator:       GeneratorNatural,
		AtlasTiles:      16,
		RaycastStep:     physics.DefaultStepSize,
		RaycastMaxSteps: physics.DefaultMaxSteps,
		HeightCacheSize: 1 << 16,
		Flat:            DefaultFlatGen(),
		Natural:         DefaultNaturalGen(),
	}
}

// Load reads a YAML file on top of Default and validates the result.
func Load(path string) (World, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first setting that cannot produce a working world.
func (c World) Validate() error {
	switch {
	case c.ChunkSize <= 0:
		return fmt.Errorf("%w: chunk_size must be positive, got %d", ErrInvalid, c.ChunkSize)
	case c.RenderDistance < 0:
		return fmt.Errorf("%w: render_distance must not be negative, got %d", ErrInvalid, c.RenderDistance)
	case c.MaxChunkY < c.MinChunkY:
		return fmt.Errorf("%w: max_chunk_y %d below min_chunk_y %d", ErrInvalid, c.MaxChunkY, c.MinChunkY)
	case c.AtlasTiles <= 0:
		return fmt.Errorf("%w: atlas_tiles must be positive, got %d", ErrInvalid, c.AtlasTiles)
	case c.RaycastStep <= 0:
		return fmt.Errorf("%w: raycast_step must be positive, got %g", ErrInvalid, c.RaycastStep)
	case c.RaycastMaxSteps <= 0:
		return fmt.Errorf("%w: raycast_max_steps must be positive, got %d", ErrInvalid, c.RaycastMaxSteps)
	case c.HeightCacheSize <= 0:
		return fmt.Errorf("%w: height_cache_size must be positive, got %d", ErrInvalid, c.HeightCacheSize)
	}
	switch c.Generator {
	case GeneratorNatural:
		return c.Natural.validate()
	case GeneratorFlat:
		return nil
	default:
		return fmt.Errorf("%w: unknown generator %q", ErrInvalid, c.Generator)
	}
}

// VerticalSpan is the height in blocks of the streamed vertical band.
// Cave carving scales its depth threshold by it.
func (c World) VerticalSpan() int {
	return (c.MaxChunkY - c.MinChunkY + 1) * c.ChunkSize
}
