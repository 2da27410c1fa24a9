package world

import (
	"fmt"
	"math"
)

// ChunkCoord identifies a chunk in chunk units, not world units.
type ChunkCoord struct {
	X, Y, Z int
}

func (c ChunkCoord) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// Add offsets the coordinate by (dx, dy, dz) chunks.
func (c ChunkCoord) Add(dx, dy, dz int) ChunkCoord {
	return ChunkCoord{X: c.X + dx, Y: c.Y + dy, Z: c.Z + dz}
}

// Less orders coordinates by X, then Y, then Z.
func (c ChunkCoord) Less(o ChunkCoord) bool {
	if c.X != o.X {
		return c.X < o.X
	}
	if c.Y != o.Y {
		return c.Y < o.Y
	}
	return c.Z < o.Z
}

// faceOffsets are the six axis neighbours of a cell or chunk.
var faceOffsets = [6][3]int{
	{1, 0, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// mod returns a non-negative remainder in [0, b) for b > 0.
func mod(a, b int) int {
	return ((a % b) + b) % b
}

// ChunkCoordOf maps one world axis value to its chunk axis value.
func ChunkCoordOf(v, size int) int {
	return floorDiv(v, size)
}

// LocalCoord maps one world axis value into [0, size).
func LocalCoord(v, size int) int {
	return mod(v, size)
}

// WorldToChunk returns the chunk holding the block at (x, y, z) and the
// block's local coordinates inside it.
func WorldToChunk(x, y, z, size int) (ChunkCoord, [3]int) {
	cc := ChunkCoord{X: floorDiv(x, size), Y: floorDiv(y, size), Z: floorDiv(z, size)}
	return cc, [3]int{mod(x, size), mod(y, size), mod(z, size)}
}

// floorInt floors a float coordinate to the block that contains it.
func floorInt(v float32) int {
	return int(math.Floor(float64(v)))
}
