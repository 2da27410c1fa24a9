package world

// Mesh is one drawable triangle mesh: 3 floats per position and normal,
// 2 per UV, and 6 indices per quad.
type Mesh struct {
	Positions []float32
	Normals   []float32
	UVs       []float32
	Indices   []uint32
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions) / 3
}

// QuadCount returns the number of emitted faces.
func (m *Mesh) QuadCount() int {
	return len(m.Indices) / 6
}

// Empty reports whether the mesh has no geometry.
func (m *Mesh) Empty() bool {
	return m == nil || len(m.Indices) == 0
}

// BlockSource resolves world block coordinates across chunk borders.
// Unloaded space must read as air.
type BlockSource interface {
	GetBlockAt(x, y, z int) BlockType
}

// Mesher turns the voxels of one chunk into geometry, reading outside the
// chunk through src.
type Mesher interface {
	BuildMesh(c *Chunk, src BlockSource) *Mesh
}

// RenderSink is the rendering collaborator. Attach is called once for
// every mesh a chunk starts exposing, Release once when that mesh is
// replaced or its chunk is unloaded.
type RenderSink interface {
	Attach(coord ChunkCoord, m *Mesh)
	Release(coord ChunkCoord, m *Mesh)
}

type nopRenderSink struct{}

func (nopRenderSink) Attach(ChunkCoord, *Mesh)  {}
func (nopRenderSink) Release(ChunkCoord, *Mesh) {}
