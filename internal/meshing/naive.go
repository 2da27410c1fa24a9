package meshing

import (
	"voxelworld/internal/profiling"
	"voxelworld/internal/registry"
	"voxelworld/internal/world"
)

// faceDef is one cube face of a unit voxel: its corners relative to the
// voxel's minimum corner and the index order that winds the two triangles
// counter-clockwise when seen from outside.
type faceDef struct {
	face    world.BlockFace
	corners [4][3]float32
	indices [6]uint32
}

var faceDefs = [6]faceDef{
	{world.FaceTop, [4][3]float32{{0, 1, 0}, {1, 1, 0}, {1, 1, 1}, {0, 1, 1}}, [6]uint32{0, 2, 1, 0, 3, 2}},
	{world.FaceBottom, [4][3]float32{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}}, [6]uint32{0, 1, 2, 0, 2, 3}},
	{world.FaceEast, [4][3]float32{{1, 0, 0}, {1, 1, 0}, {1, 1, 1}, {1, 0, 1}}, [6]uint32{0, 1, 2, 0, 2, 3}},
	{world.FaceWest, [4][3]float32{{0, 0, 0}, {0, 1, 0}, {0, 1, 1}, {0, 0, 1}}, [6]uint32{0, 2, 1, 0, 3, 2}},
	{world.FaceNorth, [4][3]float32{{0, 0, 1}, {0, 1, 1}, {1, 1, 1}, {1, 0, 1}}, [6]uint32{0, 2, 1, 0, 3, 2}},
	{world.FaceSouth, [4][3]float32{{0, 0, 0}, {0, 1, 0}, {1, 1, 0}, {1, 0, 0}}, [6]uint32{0, 1, 2, 0, 2, 3}},
}

// Mesher builds one mesh per chunk by naive face culling: every face of a
// solid voxel that borders air becomes a quad. Faces are never merged.
type Mesher struct {
	atlasTiles int
}

// New creates a mesher for an atlas of atlasTiles×atlasTiles tiles.
func New(atlasTiles int) *Mesher {
	if atlasTiles <= 0 {
		atlasTiles = 1
	}
	return &Mesher{atlasTiles: atlasTiles}
}

// BuildMesh meshes the whole chunk. Neighbours outside the chunk are read
// through src; a nil src, like an unloaded chunk, reads as air.
func (m *Mesher) BuildMesh(c *world.Chunk, src world.BlockSource) *world.Mesh {
	defer profiling.Track("meshing.BuildMesh")()
	if c == nil {
		return &world.Mesh{}
	}

	size := c.Size()
	ox, oy, oz := c.Origin()
	storage := c.Storage()

	// Rough guess: a surface chunk exposes about one face per column.
	mesh := &world.Mesh{
		Positions: make([]float32, 0, size*size*12),
		Normals:   make([]float32, 0, size*size*12),
		UVs:       make([]float32, 0, size*size*8),
		Indices:   make([]uint32, 0, size*size*6),
	}

	neighbor := func(lx, ly, lz int) world.BlockType {
		if lx >= 0 && lx < size && ly >= 0 && ly < size && lz >= 0 && lz < size {
			return storage.Get(lx, ly, lz)
		}
		if src == nil {
			return world.BlockTypeAir
		}
		return src.GetBlockAt(ox+lx, oy+ly, oz+lz)
	}

	var vertexIndex uint32
	for lz := 0; lz < size; lz++ {
		for ly := 0; ly < size; ly++ {
			for lx := 0; lx < size; lx++ {
				block := storage.Get(lx, ly, lz)
				if block == world.BlockTypeAir {
					continue
				}
				tile, ok := registry.TextureTile(block)
				if !ok {
					continue
				}
				uMin, vMin, uMax, vMax := TileUV(tile, m.atlasTiles)
				gx, gy, gz := float32(ox+lx), float32(oy+ly), float32(oz+lz)

				for i := range faceDefs {
					fd := &faceDefs[i]
					n := fd.face.Normal()
					if neighbor(lx+n[0], ly+n[1], lz+n[2]) != world.BlockTypeAir {
						continue
					}
					for _, corner := range fd.corners {
						mesh.Positions = append(mesh.Positions, gx+corner[0], gy+corner[1], gz+corner[2])
						mesh.Normals = append(mesh.Normals, float32(n[0]), float32(n[1]), float32(n[2]))
					}
					mesh.UVs = append(mesh.UVs,
						uMin, vMax,
						uMax, vMax,
						uMax, vMin,
						uMin, vMin,
					)
					for _, idx := range fd.indices {
						mesh.Indices = append(mesh.Indices, vertexIndex+idx)
					}
					vertexIndex += 4
				}
			}
		}
	}
	return mesh
}
