package config

import "fmt"

// FlatGen configures the stratified flat generator.
type FlatGen struct {
	SurfaceY int `yaml:"surface_y"`
}

// DefaultFlatGen puts the grass layer at y=16.
func DefaultFlatGen() FlatGen {
	return FlatGen{SurfaceY: 16}
}

// NaturalGen configures the noise based generator. Scales are in blocks
// per noise unit.
type NaturalGen struct {
	MinHeight       float64 `yaml:"min_height"`
	MaxHeight       float64 `yaml:"max_height"`
	TerrainScale    float64 `yaml:"terrain_scale"`
	CaveScale       float64 `yaml:"cave_scale"`
	CaveOctaves     int     `yaml:"cave_octaves"`
	ForestScale     float64 `yaml:"forest_scale"`
	ForestThreshold float64 `yaml:"forest_threshold"`
}

// DefaultNaturalGen returns heights 32..64 with a 64 block terrain scale.
func DefaultNaturalGen() NaturalGen {
	return NaturalGen{
		MinHeight:       32,
		MaxHeight:       64,
		TerrainScale:    64,
		CaveScale:       32,
		CaveOctaves:     4,
		ForestScale:     48,
		ForestThreshold: 0.2,
	}
}

func (n NaturalGen) validate() error {
	switch {
	case n.MaxHeight < n.MinHeight:
		return fmt.Errorf("%w: natural.max_height %g below natural.min_height %g", ErrInvalid, n.MaxHeight, n.MinHeight)
	case n.TerrainScale <= 0, n.CaveScale <= 0, n.ForestScale <= 0:
		return fmt.Errorf("%w: natural scales must be positive", ErrInvalid)
	case n.CaveOctaves <= 0:
		return fmt.Errorf("%w: natural.cave_octaves must be positive, got %d", ErrInvalid, n.CaveOctaves)
	}
	return nil
}
