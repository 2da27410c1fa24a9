package meshing

import (
	"testing"

	"voxelworld/internal/config"
	"voxelworld/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

var _ world.Mesher = (*Mesher)(nil)

// emptyWorld streams a 3x3x1 ring of all-air chunks around the origin.
func emptyWorld(t *testing.T) *world.World {
	t.Helper()
	cfg := config.Default()
	cfg.RenderDistance = 1
	cfg.MinChunkY, cfg.MaxChunkY = 0, 0
	w, err := world.New(cfg, New(cfg.AtlasTiles), world.WithGenerator(world.NewFlatGenerator(-1000)))
	if err != nil {
		t.Fatal(err)
	}
	w.UpdateChunks(mgl32.Vec3{8, 8, 8})
	return w
}

func quadNormal(m *world.Mesh, q int) mgl32.Vec3 {
	i := q * 4 * 3
	return mgl32.Vec3{m.Normals[i], m.Normals[i+1], m.Normals[i+2]}
}

func TestSingleBlockMesh(t *testing.T) {
	c := world.NewChunk(world.ChunkCoord{X: 1, Y: 0, Z: -1}, 16)
	c.SetBlock(3, 4, 5, world.BlockTypeStone)
	m := New(16).BuildMesh(c, nil)

	if m.QuadCount() != 6 || m.VertexCount() != 24 || len(m.UVs) != 48 {
		t.Fatalf("single block: got %d quads, %d vertices, %d uvs", m.QuadCount(), m.VertexCount(), len(m.UVs))
	}

	seen := make(map[mgl32.Vec3]bool)
	for q := 0; q < 6; q++ {
		n := quadNormal(m, q)
		if seen[n] {
			t.Errorf("normal %v emitted twice", n)
		}
		seen[n] = true
		if n.Len() != 1 {
			t.Errorf("normal %v is not an axis unit vector", n)
		}
	}

	// Chunk (1,0,-1) starts at world (16,0,-16).
	for v := 0; v < m.VertexCount(); v++ {
		x, y, z := m.Positions[v*3], m.Positions[v*3+1], m.Positions[v*3+2]
		if x < 19 || x > 20 || y < 4 || y > 5 || z < -11 || z > -10 {
			t.Fatalf("vertex %d at (%v,%v,%v) outside the voxel", v, x, y, z)
		}
	}
}

func TestTwoBlocksSeparated(t *testing.T) {
	c := world.NewChunk(world.ChunkCoord{}, 16)
	c.SetBlock(0, 0, 0, world.BlockTypeGrass)
	c.SetBlock(2, 0, 0, world.BlockTypeGrass)
	if q := New(16).BuildMesh(c, nil).QuadCount(); q != 12 {
		t.Fatalf("two separated blocks: got %d quads, want 12", q)
	}
}

func TestTwoBlocksTouching(t *testing.T) {
	c := world.NewChunk(world.ChunkCoord{}, 16)
	c.SetBlock(4, 4, 4, world.BlockTypeGrass)
	c.SetBlock(4, 5, 4, world.BlockTypeDirt)
	m := New(16).BuildMesh(c, nil)
	if m.QuadCount() != 10 {
		t.Fatalf("two touching blocks: got %d quads, want 10", m.QuadCount())
	}
	for q := 0; q < m.QuadCount(); q++ {
		n := quadNormal(m, q)
		// The only vertical faces left are the outer top and bottom.
		if n.Y() != 0 {
			y := m.Positions[q*12+1]
			if (n.Y() > 0 && y != 6) || (n.Y() < 0 && y != 4) {
				t.Errorf("shared face emitted: normal %v at y=%v", n, y)
			}
		}
	}
}

func TestCrossChunkFaceCulling(t *testing.T) {
	w := emptyWorld(t)
	// One block at the +X edge of chunk (0,0,0) and its neighbour in chunk (1,0,0).
	w.SetBlockAt(15, 3, 3, world.BlockTypeStone)
	w.SetBlockAt(16, 3, 3, world.BlockTypeStone)

	m := New(16).BuildMesh(w.Chunk(world.ChunkCoord{}), w)
	if m.QuadCount() != 5 {
		t.Fatalf("cross-chunk culling: got %d quads, want 5", m.QuadCount())
	}

	// Without a neighbour lookup the far side reads as air.
	if q := New(16).BuildMesh(w.Chunk(world.ChunkCoord{}), nil).QuadCount(); q != 6 {
		t.Fatalf("unloaded neighbour: got %d quads, want 6", q)
	}
}

func TestUnloadedNeighbourIsAir(t *testing.T) {
	w := emptyWorld(t)
	// y=-1 is below the streamed band, so the bottom face stays visible.
	w.SetBlockAt(5, 0, 5, world.BlockTypeStone)
	m := New(16).BuildMesh(w.Chunk(world.ChunkCoord{}), w)
	if m.QuadCount() != 6 {
		t.Fatalf("got %d quads, want 6", m.QuadCount())
	}
}

func TestWorldRemeshesOnEdit(t *testing.T) {
	w := emptyWorld(t)
	w.SetBlockAt(1, 1, 1, world.BlockTypeStone)
	w.UpdateChunks(mgl32.Vec3{8, 8, 8})
	meshes := w.Chunk(world.ChunkCoord{}).Meshes()
	if len(meshes) != 1 || meshes[0].QuadCount() != 6 {
		t.Fatalf("Expected one 6-quad mesh after edit, got %d meshes", len(meshes))
	}

	w.SetBlockAt(1, 1, 1, world.BlockTypeAir)
	w.UpdateChunks(mgl32.Vec3{8, 8, 8})
	if n := len(w.Chunk(world.ChunkCoord{}).Meshes()); n != 0 {
		t.Fatalf("Expected no mesh for an empty chunk, got %d", n)
	}
}

func TestWindingMatchesNormal(t *testing.T) {
	c := world.NewChunk(world.ChunkCoord{X: -1, Y: 2, Z: 3}, 8)
	c.SetBlock(2, 2, 2, world.BlockTypeBrick)
	m := New(16).BuildMesh(c, nil)

	vertex := func(i uint32) mgl32.Vec3 {
		return mgl32.Vec3{m.Positions[i*3], m.Positions[i*3+1], m.Positions[i*3+2]}
	}
	for tri := 0; tri < len(m.Indices)/3; tri++ {
		p0 := vertex(m.Indices[tri*3])
		p1 := vertex(m.Indices[tri*3+1])
		p2 := vertex(m.Indices[tri*3+2])
		facing := p1.Sub(p0).Cross(p2.Sub(p0))
		n := quadNormal(m, tri/2)
		if facing.Dot(n) <= 0 {
			t.Errorf("triangle %d winds against normal %v", tri, n)
		}
	}
}

func TestTileUV(t *testing.T) {
	cases := []struct {
		tile, k                int
		uMin, vMin, uMax, vMax float32
	}{
		// Tile 0 sits in the top-left of the image, which is the top of UV space.
		{0, 16, 0, 15.0 / 16, 1.0 / 16, 1},
		{1, 16, 1.0 / 16, 15.0 / 16, 2.0 / 16, 1},
		{17, 16, 1.0 / 16, 14.0 / 16, 2.0 / 16, 15.0 / 16},
		{3, 2, 0.5, 0, 1, 0.5},
	}
	for _, tc := range cases {
		uMin, vMin, uMax, vMax := TileUV(tc.tile, tc.k)
		if uMin != tc.uMin || vMin != tc.vMin || uMax != tc.uMax || vMax != tc.vMax {
			t.Errorf("TileUV(%d, %d) = (%v,%v,%v,%v), want (%v,%v,%v,%v)",
				tc.tile, tc.k, uMin, vMin, uMax, vMax, tc.uMin, tc.vMin, tc.uMax, tc.vMax)
		}
	}
}

func TestMeshUVsUseBlockTile(t *testing.T) {
	c := world.NewChunk(world.ChunkCoord{}, 4)
	c.SetBlock(0, 0, 0, world.BlockTypeDirt) // id 2
	m := New(16).BuildMesh(c, nil)

	uMin, vMin, uMax, vMax := TileUV(int(world.BlockTypeDirt), 16)
	want := []float32{uMin, vMax, uMax, vMax, uMax, vMin, uMin, vMin}
	for q := 0; q < m.QuadCount(); q++ {
		for i, w := range want {
			if got := m.UVs[q*8+i]; got != w {
				t.Fatalf("quad %d uv[%d] = %v, want %v", q, i, got, w)
			}
		}
	}
}
