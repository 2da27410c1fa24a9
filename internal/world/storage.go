package world

// Storage is the dense voxel array of one chunk: size³ ids laid out as
// x + y*size + z*size². Local coordinates must lie in [0, size); the
// world layer never passes anything else.
type Storage struct {
	size   int
	area   int
	blocks []BlockType
}

// NewStorage allocates an all-air storage for a chunk of edge length size.
func NewStorage(size int) *Storage {
	return &Storage{
		size:   size,
		area:   size * size,
		blocks: make([]BlockType, size*size*size),
	}
}

// Size returns the chunk edge length.
func (s *Storage) Size() int {
	return s.size
}

func (s *Storage) index(x, y, z int) int {
	return x + y*s.size + z*s.area
}

// Get returns the id at the local coordinates.
func (s *Storage) Get(x, y, z int) BlockType {
	return s.blocks[s.index(x, y, z)]
}

// Set stores id at the local coordinates.
func (s *Storage) Set(x, y, z int, id BlockType) {
	s.blocks[s.index(x, y, z)] = id
}

// Fill overwrites every cell with id.
func (s *Storage) Fill(id BlockType) {
	for i := range s.blocks {
		s.blocks[i] = id
	}
}

// Voxels exposes the backing array in index order. Callers must not
// modify it.
func (s *Storage) Voxels() []BlockType {
	return s.blocks
}

// CountNonAir returns the number of occupied cells.
func (s *Storage) CountNonAir() int {
	n := 0
	for _, b := range s.blocks {
		if b != BlockTypeAir {
			n++
		}
	}
	return n
}
