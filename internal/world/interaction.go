package world

import (
	"voxelworld/internal/physics"

	"github.com/go-gl/mathgl/mgl32"
)

// BreakBlock replaces the first solid block along the ray with air.
func (w *World) BreakBlock(origin, dir mgl32.Vec3) (physics.RaycastResult, bool) {
	hit := w.Raycast(origin, dir)
	if !hit.Hit {
		return hit, false
	}
	p := hit.HitPosition
	if !w.SetBlockAt(p[0], p[1], p[2], BlockTypeAir) {
		return hit, false
	}
	w.log.Debug("block broken", "x", p[0], "y", p[1], "z", p[2])
	return hit, true
}

// PlaceBlock puts id in the cell in front of the face the ray hits. It
// does nothing when that cell is already occupied or not loaded.
func (w *World) PlaceBlock(origin, dir mgl32.Vec3, id BlockType) (physics.RaycastResult, bool) {
	hit := w.Raycast(origin, dir)
	if !hit.Hit || id == BlockTypeAir {
		return hit, false
	}
	p := hit.AdjacentPosition
	if w.IsSolid(p[0], p[1], p[2]) {
		return hit, false
	}
	if !w.SetBlockAt(p[0], p[1], p[2], id) {
		return hit, false
	}
	w.log.Debug("block placed", "x", p[0], "y", p[1], "z", p[2], "id", int(id))
	return hit, true
}
