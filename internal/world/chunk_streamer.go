package world

import (
	"voxelworld/internal/config"

	"github.com/go-gl/mathgl/mgl32"
)

// Streamer computes which chunks must be loaded for a viewer position:
// a square of side 2*Radius+1 chunks around the centre column, over a
// fixed vertical band that ignores the viewer's height.
type Streamer struct {
	Size         int
	Radius       int
	MinChunkY    int
	MaxChunkY    int
	FollowViewer bool
}

// NewStreamer takes the streaming settings from cfg.
func NewStreamer(cfg config.World) Streamer {
	return Streamer{
		Size:         cfg.ChunkSize,
		Radius:       cfg.RenderDistance,
		MinChunkY:    cfg.MinChunkY,
		MaxChunkY:    cfg.MaxChunkY,
		FollowViewer: cfg.FollowViewer,
	}
}

// Center returns the chunk column the required set is built around.
func (s Streamer) Center(viewer mgl32.Vec3) (cx, cz int) {
	if !s.FollowViewer {
		return 0, 0
	}
	return floorDiv(floorInt(viewer.X()), s.Size), floorDiv(floorInt(viewer.Z()), s.Size)
}

// Required returns the set of chunk coordinates to keep loaded.
func (s Streamer) Required(viewer mgl32.Vec3) map[ChunkCoord]struct{} {
	cx, cz := s.Center(viewer)
	side := 2*s.Radius + 1
	required := make(map[ChunkCoord]struct{}, side*side*(s.MaxChunkY-s.MinChunkY+1))
	for dx := -s.Radius; dx <= s.Radius; dx++ {
		for dz := -s.Radius; dz <= s.Radius; dz++ {
			for cy := s.MinChunkY; cy <= s.MaxChunkY; cy++ {
				required[ChunkCoord{X: cx + dx, Y: cy, Z: cz + dz}] = struct{}{}
			}
		}
	}
	return required
}
