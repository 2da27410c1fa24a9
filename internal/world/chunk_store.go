package world

import "sort"

// ChunkStore maps chunk coordinates to loaded chunks. It is owned by a
// single World and accessed from the tick goroutine only.
type ChunkStore struct {
	chunks map[ChunkCoord]*Chunk
	size   int
}

// NewChunkStore creates an empty store for chunks of edge length size.
func NewChunkStore(size int) *ChunkStore {
	return &ChunkStore{
		chunks: make(map[ChunkCoord]*Chunk),
		size:   size,
	}
}

// GetChunk returns the loaded chunk at coord, or nil.
func (cs *ChunkStore) GetChunk(coord ChunkCoord) *Chunk {
	return cs.chunks[coord]
}

// HasChunk reports whether coord is loaded.
func (cs *ChunkStore) HasChunk(coord ChunkCoord) bool {
	_, ok := cs.chunks[coord]
	return ok
}

// AddChunk stores c under its coordinate unless that slot is taken.
func (cs *ChunkStore) AddChunk(c *Chunk) bool {
	if _, ok := cs.chunks[c.coord]; ok {
		return false
	}
	cs.chunks[c.coord] = c
	return true
}

// RemoveChunk drops coord and returns the chunk that was there.
func (cs *ChunkStore) RemoveChunk(coord ChunkCoord) *Chunk {
	c, ok := cs.chunks[coord]
	if !ok {
		return nil
	}
	delete(cs.chunks, coord)
	return c
}

// GetChunkFromBlockCoords returns the chunk holding world block (x, y, z)
// and the block's local coordinates. The chunk is nil when not loaded.
func (cs *ChunkStore) GetChunkFromBlockCoords(x, y, z int) (*Chunk, [3]int) {
	coord, local := WorldToChunk(x, y, z, cs.size)
	return cs.chunks[coord], local
}

// Get returns the block at world coordinates; unloaded space is air.
func (cs *ChunkStore) Get(x, y, z int) BlockType {
	c, l := cs.GetChunkFromBlockCoords(x, y, z)
	if c == nil {
		return BlockTypeAir
	}
	return c.GetBlock(l[0], l[1], l[2])
}

// Len returns the number of loaded chunks.
func (cs *ChunkStore) Len() int {
	return len(cs.chunks)
}

// Coords returns the loaded coordinates sorted by X, Y, Z.
func (cs *ChunkStore) Coords() []ChunkCoord {
	keys := make([]ChunkCoord, 0, len(cs.chunks))
	for k := range cs.chunks {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
	return keys
}
