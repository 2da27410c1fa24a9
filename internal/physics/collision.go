package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// HalfWidth is half the horizontal extent of an upright body.
const HalfWidth = 0.3

func floorInt(v float32) int {
	return int(math.Floor(float64(v)))
}

// Collides reports whether an upright box of the given height with its
// feet centred at feet overlaps any solid block. Block (x, y, z) occupies
// [x, x+1) on every axis.
func Collides(feet mgl32.Vec3, height float32, w Solidity) bool {
	minX, maxX := feet.X()-HalfWidth, feet.X()+HalfWidth
	minY, maxY := feet.Y(), feet.Y()+height
	minZ, maxZ := feet.Z()-HalfWidth, feet.Z()+HalfWidth

	for x := floorInt(minX); x <= floorInt(maxX); x++ {
		for y := floorInt(minY); y <= floorInt(maxY); y++ {
			for z := floorInt(minZ); z <= floorInt(maxZ); z++ {
				if !w.IsSolid(x, y, z) {
					continue
				}
				if float32(x) < maxX && float32(x+1) > minX &&
					float32(y) < maxY && float32(y+1) > minY &&
					float32(z) < maxZ && float32(z+1) > minZ {
					return true
				}
			}
		}
	}
	return false
}

// FindGroundLevel finds the highest block below fromY under a body centred
// on (x, z) and returns the height of its top face. The scan stops at
// minY; ok is false when nothing solid was found.
func FindGroundLevel(x, z, fromY float32, minY int, w Solidity) (ground float32, ok bool) {
	ground = float32(minY)
	for bx := floorInt(x - HalfWidth); bx <= floorInt(x+HalfWidth); bx++ {
		for bz := floorInt(z - HalfWidth); bz <= floorInt(z+HalfWidth); bz++ {
			for by := floorInt(fromY); by >= minY; by-- {
				if w.IsSolid(bx, by, bz) {
					if top := float32(by + 1); !ok || top > ground {
						ground = top
					}
					ok = true
					break
				}
			}
		}
	}
	return ground, ok
}
