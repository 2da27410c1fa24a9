package physics

import (
	"math"

	"voxelworld/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// DefaultStepSize is the distance between ray samples in blocks.
	DefaultStepSize = 0.1
	// DefaultMaxSteps bounds the ray to DefaultMaxSteps*DefaultStepSize blocks.
	DefaultMaxSteps = 100
)

// Solidity is the single query the ray march needs from a world.
type Solidity interface {
	IsSolid(x, y, z int) bool
}

// RaycastResult stores the result of a raycast operation
type RaycastResult struct {
	HitPosition      [3]int
	Normal           [3]int
	AdjacentPosition [3]int // HitPosition + Normal, where a placed block goes
	Distance         float32
	Hit              bool
}

// Raycast marches from start along direction in fixed steps of stepSize,
// sampling at most maxSteps points, and reports the first solid block.
// It is a coarse query for block picking, not a voxel traversal: thin
// corners can be skipped between samples.
func Raycast(start, direction mgl32.Vec3, stepSize float32, maxSteps int, w Solidity) RaycastResult {
	defer profiling.Track("physics.Raycast")()
	result := RaycastResult{Hit: false}
	if stepSize <= 0 || direction.Len() == 0 {
		return result
	}
	step := direction.Normalize().Mul(stepSize)

	for i := 1; i <= maxSteps; i++ {
		pos := start.Add(step.Mul(float32(i)))
		blockPos := [3]int{
			int(math.Floor(float64(pos.X()))),
			int(math.Floor(float64(pos.Y()))),
			int(math.Floor(float64(pos.Z()))),
		}
		if !w.IsSolid(blockPos[0], blockPos[1], blockPos[2]) {
			continue
		}

		normal := ApproximateNormal(pos, blockPos)
		result.HitPosition = blockPos
		result.Normal = normal
		result.AdjacentPosition = [3]int{
			blockPos[0] + normal[0],
			blockPos[1] + normal[1],
			blockPos[2] + normal[2],
		}
		result.Distance = float32(i) * stepSize
		result.Hit = true
		return result
	}

	return result
}

// ApproximateNormal picks the axis along which sample lies furthest from
// the centre of block, with ties going to x, then y, then z. A zero
// offset on the chosen axis counts as positive.
func ApproximateNormal(sample mgl32.Vec3, block [3]int) [3]int {
	var off [3]float32
	for k := 0; k < 3; k++ {
		off[k] = sample[k] - (float32(block[k]) + 0.5)
	}

	axis := 0
	for k := 1; k < 3; k++ {
		if abs32(off[k]) > abs32(off[axis]) {
			axis = k
		}
	}

	var n [3]int
	if off[axis] < 0 {
		n[axis] = -1
	} else {
		n[axis] = 1
	}
	return n
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
