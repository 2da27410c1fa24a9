package world

import (
	"math"

	lru "github.com/hashicorp/golang-lru"
	"github.com/ojrac/opensimplex-go"

	"voxelworld/internal/config"
	"voxelworld/internal/profiling"
)

// Stratum depths below the height field, in blocks.
const (
	stoneDepth  = 10
	dirtDepth   = 6
	gravelDepth = 2
)

// noiseFields holds the coherent noise of one seed.
type noiseFields struct {
	seed    int64
	terrain opensimplex.Noise // 2D heights and 3D caves
	forest  opensimplex.Noise // independent 2D overlay
}

func newNoiseFields(seed int64) *noiseFields {
	return &noiseFields{
		seed:    seed,
		terrain: opensimplex.New(seed),
		forest:  opensimplex.New(nextSeed(seed)),
	}
}

// nextSeed advances seed by one step of a 64-bit linear congruential
// generator so the forest field is decorrelated from the terrain field.
func nextSeed(seed int64) int64 {
	return int64(uint64(seed)*6364136223846793005 + 1442695040888963407)
}

type columnKey struct {
	seed int64
	x, z int
}

// NaturalGenerator builds rolling terrain from layered opensimplex noise:
// a height field, stone/dirt/gravel/grass strata, a forest overlay on the
// surface cell and fractal 3D cave carving.
type NaturalGenerator struct {
	cfg          config.NaturalGen
	verticalSpan float64

	fields  *noiseFields
	heights *lru.Cache // columnKey -> float64
}

// NewNaturalGenerator creates a generator for the given settings.
// verticalSpan is the streamed band height in blocks; cacheSize bounds the
// column height memo.
func NewNaturalGenerator(cfg config.NaturalGen, verticalSpan, cacheSize int) (*NaturalGenerator, error) {
	heights, err := lru.New(cacheSize)
	if err != nil {
		return nil, err
	}
	return &NaturalGenerator{
		cfg:          cfg,
		verticalSpan: float64(verticalSpan),
		heights:      heights,
	}, nil
}

func (g *NaturalGenerator) fieldsFor(seed int64) *noiseFields {
	if g.fields == nil || g.fields.seed != seed {
		g.fields = newNoiseFields(seed)
	}
	return g.fields
}

// HeightAt returns the height field h(x, z); cells with y < h are below
// ground.
func (g *NaturalGenerator) HeightAt(x, z int, seed int64) float64 {
	key := columnKey{seed: seed, x: x, z: z}
	if v, ok := g.heights.Get(key); ok {
		return v.(float64)
	}
	f := g.fieldsFor(seed)
	n := f.terrain.Eval2(float64(x)/g.cfg.TerrainScale, float64(z)/g.cfg.TerrainScale)
	h := g.cfg.MinHeight + (n+1)*0.5*(g.cfg.MaxHeight-g.cfg.MinHeight)
	g.heights.Add(key, h)
	return h
}

// IsForest reports whether the forest overlay covers column (x, z).
func (g *NaturalGenerator) IsForest(x, z int, seed int64) bool {
	f := g.fieldsFor(seed)
	return f.forest.Eval2(float64(x)/g.cfg.ForestScale, float64(z)/g.cfg.ForestScale) > g.cfg.ForestThreshold
}

// caveDensity is a fractal sum: amplitude halves and frequency doubles
// every octave, starting at 1 and 1/CaveScale.
func (g *NaturalGenerator) caveDensity(f *noiseFields, x, y, z int) float64 {
	value := 0.0
	amplitude := 1.0
	frequency := 1 / g.cfg.CaveScale
	for range g.cfg.CaveOctaves {
		value += f.terrain.Eval3(float64(x)*frequency, float64(y)*frequency, float64(z)*frequency) * amplitude
		amplitude *= 0.5
		frequency *= 2
	}
	return value
}

// IsCave reports whether the cell at (x, y, z) is carved. The threshold
// is 0.5 - y/(2*verticalSpan): it falls as y rises.
func (g *NaturalGenerator) IsCave(x, y, z int, seed int64) bool {
	threshold := 0.5 - float64(y)/(2*g.verticalSpan)
	return g.caveDensity(g.fieldsFor(seed), x, y, z) > threshold
}

// stratum picks the solid id of an uncarved cell below the surface.
func stratum(y int, h float64, surfaceY int, forest bool) BlockType {
	fy := float64(y)
	switch {
	case fy < h-stoneDepth:
		return BlockTypeStone
	case fy < h-dirtDepth:
		return BlockTypeDirt
	case fy < h-gravelDepth:
		return BlockTypeGravel
	case forest && y == surfaceY:
		return BlockTypeOakWood
	default:
		return BlockTypeGrass
	}
}

// Generate fills s column by column.
func (g *NaturalGenerator) Generate(s *Storage, coord ChunkCoord, seed int64) {
	defer profiling.Track("world.NaturalGenerator.Generate")()
	size := s.Size()
	baseX, baseY, baseZ := coord.X*size, coord.Y*size, coord.Z*size
	for lz := 0; lz < size; lz++ {
		gz := baseZ + lz
		for lx := 0; lx < size; lx++ {
			gx := baseX + lx
			h := g.HeightAt(gx, gz, seed)
			surfaceY := int(math.Ceil(h)) - 1
			forest := g.IsForest(gx, gz, seed)
			for ly := 0; ly < size; ly++ {
				gy := baseY + ly
				id := BlockTypeAir
				if float64(gy) < h && !g.IsCave(gx, gy, gz, seed) {
					id = stratum(gy, h, surfaceY, forest)
				}
				s.Set(lx, ly, lz, id)
			}
		}
	}
}
