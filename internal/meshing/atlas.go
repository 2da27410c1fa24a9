package meshing

// TileUV returns the UV rectangle of tile in a square atlas of k×k tiles.
// Tile rows are counted top-down in the image while V grows upward, so the
// row is flipped: invTileY = k-1-tileY.
func TileUV(tile, k int) (uMin, vMin, uMax, vMax float32) {
	tileX := tile % k
	tileY := tile / k
	invTileY := k - 1 - tileY

	size := 1 / float32(k)
	uMin = float32(tileX) * size
	vMin = float32(invTileY) * size
	return uMin, vMin, uMin + size, vMin + size
}
