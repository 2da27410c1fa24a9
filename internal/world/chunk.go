package world

// Chunk is one cubic partition of the world. Generation and meshing are
// tracked separately: a chunk is generated exactly once, then remeshed
// whenever its voxels or a shared boundary change.
type Chunk struct {
	coord   ChunkCoord
	storage *Storage

	generated bool
	dirty     bool

	meshes []*Mesh
}

// NewChunk creates an empty, ungenerated chunk.
func NewChunk(coord ChunkCoord, size int) *Chunk {
	return &Chunk{
		coord:   coord,
		storage: NewStorage(size),
		dirty:   true,
	}
}

// Coord returns the chunk coordinate.
func (c *Chunk) Coord() ChunkCoord {
	return c.coord
}

// Size returns the chunk edge length.
func (c *Chunk) Size() int {
	return c.storage.Size()
}

// Origin returns the world coordinates of the chunk's minimum corner.
func (c *Chunk) Origin() (x, y, z int) {
	s := c.storage.Size()
	return c.coord.X * s, c.coord.Y * s, c.coord.Z * s
}

// Storage exposes the voxel array.
func (c *Chunk) Storage() *Storage {
	return c.storage
}

// Generate fills the chunk once. Later calls do nothing and return false,
// so edits made after generation survive remeshing.
func (c *Chunk) Generate(gen TerrainGenerator, seed int64) bool {
	if c.generated {
		return false
	}
	gen.Generate(c.storage, c.coord, seed)
	c.generated = true
	c.dirty = true
	return true
}

// IsGenerated reports whether terrain has been produced.
func (c *Chunk) IsGenerated() bool {
	return c.generated
}

// GetBlock returns the block at local coordinates.
func (c *Chunk) GetBlock(x, y, z int) BlockType {
	return c.storage.Get(x, y, z)
}

// SetBlock stores a block at local coordinates and marks the mesh stale.
func (c *Chunk) SetBlock(x, y, z int, id BlockType) {
	c.storage.Set(x, y, z, id)
	c.dirty = true
}

// IsAir checks if the block at the local coordinates is air.
func (c *Chunk) IsAir(x, y, z int) bool {
	return c.storage.Get(x, y, z) == BlockTypeAir
}

// IsDirty reports whether the meshes no longer match the voxels.
func (c *Chunk) IsDirty() bool {
	return c.dirty
}

// MarkDirty flags the meshes as stale.
func (c *Chunk) MarkDirty() {
	c.dirty = true
}

// SetClean marks the meshes as current.
func (c *Chunk) SetClean() {
	c.dirty = false
}

// Meshes returns the meshes currently attached to the renderer.
func (c *Chunk) Meshes() []*Mesh {
	return c.meshes
}

// rebuildMesh replaces the chunk's meshes with a fresh whole-chunk build.
func (c *Chunk) rebuildMesh(m Mesher, src BlockSource, sink RenderSink) {
	c.releaseMeshes(sink)
	if mesh := m.BuildMesh(c, src); !mesh.Empty() {
		c.meshes = append(c.meshes, mesh)
		sink.Attach(c.coord, mesh)
	}
	c.dirty = false
}

func (c *Chunk) releaseMeshes(sink RenderSink) {
	for _, mesh := range c.meshes {
		sink.Release(c.coord, mesh)
	}
	c.meshes = nil
}
