package world

import (
	"fmt"

	"voxelworld/internal/config"
)

// TerrainGenerator fills the storage of the chunk at coord. Output must
// depend on (coord, seed) only: chunks are regenerated from scratch every
// time they re-enter the streamed set.
type TerrainGenerator interface {
	Generate(s *Storage, coord ChunkCoord, seed int64)
}

// NewGenerator builds the generator selected by cfg.Generator.
func NewGenerator(cfg config.World) (TerrainGenerator, error) {
	switch cfg.Generator {
	case config.GeneratorFlat:
		return NewFlatGenerator(cfg.Flat.SurfaceY), nil
	case config.GeneratorNatural:
		return NewNaturalGenerator(cfg.Natural, cfg.VerticalSpan(), cfg.HeightCacheSize)
	default:
		return nil, fmt.Errorf("%w: unknown generator %q", config.ErrInvalid, cfg.Generator)
	}
}

// FlatGenerator produces one surface layer at SurfaceY, filler below it
// and air above, independent of x, z and seed.
type FlatGenerator struct {
	SurfaceY int
	Surface  BlockType
	Filler   BlockType
}

// NewFlatGenerator creates a grass-over-dirt generator with its surface at y.
func NewFlatGenerator(surfaceY int) *FlatGenerator {
	return &FlatGenerator{
		SurfaceY: surfaceY,
		Surface:  BlockTypeGrass,
		Filler:   BlockTypeDirt,
	}
}

// HeightAt returns the y of the surface layer.
func (g *FlatGenerator) HeightAt(_, _ int) int {
	return g.SurfaceY
}

func (g *FlatGenerator) blockAt(gy int) BlockType {
	switch {
	case gy == g.SurfaceY:
		return g.Surface
	case gy < g.SurfaceY:
		return g.Filler
	default:
		return BlockTypeAir
	}
}

// Generate fills s layer by layer.
func (g *FlatGenerator) Generate(s *Storage, coord ChunkCoord, _ int64) {
	size := s.Size()
	baseY := coord.Y * size
	for ly := 0; ly < size; ly++ {
		id := g.blockAt(baseY + ly)
		for lz := 0; lz < size; lz++ {
			for lx := 0; lx < size; lx++ {
				s.Set(lx, ly, lz, id)
			}
		}
	}
}
