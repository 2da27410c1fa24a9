package main

import (
	"fmt"
	"log/slog"
	"math"

	"voxelworld/internal/physics"
	"voxelworld/internal/preview"
	"voxelworld/internal/profiling"
	"voxelworld/internal/registry"
	"voxelworld/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	eyeHeight  = 1.62
	bodyHeight = 1.8
)

// lookDir points forward and down at 45 degrees, so every tick digs into
// the ground just ahead of the viewer.
var lookDir = mgl32.Vec3{1, -1, 0}

// simulation walks a viewer across the world and edits one block per tick.
type simulation struct {
	world *world.World
	log   *slog.Logger
	feet  mgl32.Vec3
	speed float32
	place world.BlockType

	ticks  int
	broken int
	placed int
}

func newSimulation(w *world.World, log *slog.Logger, speed float32, place world.BlockType) *simulation {
	return &simulation{
		world: w,
		log:   log,
		feet:  mgl32.Vec3{0.5, 0, 0.5},
		speed: speed,
		place: place,
	}
}

// step advances one tick: move, stream, stand on the ground, then break
// the block in view and place the configured block against whatever the
// ray reaches next.
func (s *simulation) step() world.UpdateStats {
	profiling.ResetFrame()

	s.feet[0] += s.speed
	stats := s.world.UpdateChunks(s.feet)

	cfg := s.world.Config()
	top := float32((cfg.MaxChunkY+1)*cfg.ChunkSize - 1)
	if ground, ok := physics.FindGroundLevel(s.feet.X(), s.feet.Z(), top, cfg.MinChunkY*cfg.ChunkSize, s.world); ok {
		s.feet[1] = ground
	}

	eye := s.eye()
	if _, ok := s.world.BreakBlock(eye, lookDir); ok {
		s.broken++
	}
	if hit, ok := s.world.PlaceBlock(eye, lookDir, s.place); ok {
		s.placed++
		// Never leave the viewer embedded in its own block.
		if physics.Collides(s.feet, bodyHeight, s.world) {
			p := hit.AdjacentPosition
			s.world.SetBlockAt(p[0], p[1], p[2], world.BlockTypeAir)
			s.placed--
		}
	}

	s.ticks++
	return stats
}

func (s *simulation) eye() mgl32.Vec3 {
	return s.feet.Add(mgl32.Vec3{0, eyeHeight, 0})
}

func (s *simulation) logTick(stats world.UpdateStats) {
	s.log.Info("tick",
		"tick", s.ticks,
		"x", s.feet.X(), "y", s.feet.Y(), "z", s.feet.Z(),
		"generated", stats.Generated,
		"meshed", stats.Meshed,
		"unloaded", stats.Unloaded,
		"loaded", stats.Loaded,
		"top", profiling.TopN(5))
}

// writePreview renders the loaded area around the viewer to path.
func (s *simulation) writePreview(path string) error {
	cfg := s.world.Config()
	img := preview.Render(s.world, preview.Options{
		CenterX: int(math.Floor(float64(s.feet.X()))),
		CenterZ: int(math.Floor(float64(s.feet.Z()))),
		Radius:  cfg.RenderDistance * cfg.ChunkSize,
		Scale:   2,
		Caption: fmt.Sprintf("seed %d tick %d %s", cfg.Seed, s.ticks, registry.Name(s.place)),
	})
	return preview.WritePNG(path, img)
}
