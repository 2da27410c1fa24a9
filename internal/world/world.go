package world

import (
	"errors"
	"fmt"
	"log/slog"

	"voxelworld/internal/config"
	"voxelworld/internal/physics"
	"voxelworld/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// World owns the loaded chunks around a viewer. It is not safe for
// concurrent use: every call is expected on the tick goroutine.
type World struct {
	cfg      config.World
	store    *ChunkStore
	streamer Streamer
	gen      TerrainGenerator
	mesher   Mesher
	sink     RenderSink
	log      *slog.Logger
}

// Option customises a World at construction.
type Option func(*World)

// WithGenerator replaces the generator selected by the config.
func WithGenerator(g TerrainGenerator) Option {
	return func(w *World) { w.gen = g }
}

// WithRenderSink sets the collaborator that receives mesh lifecycle events.
func WithRenderSink(s RenderSink) Option {
	return func(w *World) { w.sink = s }
}

// WithLogger sets the logger used for streaming and edit events.
func WithLogger(l *slog.Logger) Option {
	return func(w *World) { w.log = l }
}

// UpdateStats summarises one UpdateChunks call.
type UpdateStats struct {
	Required  int
	Generated int
	Meshed    int
	Unloaded  int
	Loaded    int
}

// New validates cfg and creates an empty world. Nothing is loaded until
// the first UpdateChunks.
func New(cfg config.World, mesher Mesher, opts ...Option) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if mesher == nil {
		return nil, errors.New("world: nil mesher")
	}
	if cfg.AtlasTiles*cfg.AtlasTiles < NumBlockTypes {
		return nil, fmt.Errorf("world: %w: atlas_tiles %d cannot hold %d block tiles",
			config.ErrInvalid, cfg.AtlasTiles, NumBlockTypes)
	}
	w := &World{
		cfg:      cfg,
		store:    NewChunkStore(cfg.ChunkSize),
		streamer: NewStreamer(cfg),
		mesher:   mesher,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.gen == nil {
		gen, err := NewGenerator(cfg)
		if err != nil {
			return nil, fmt.Errorf("world: %w", err)
		}
		w.gen = gen
	}
	if w.sink == nil {
		w.sink = nopRenderSink{}
	}
	if w.log == nil {
		w.log = slog.New(slog.DiscardHandler)
	}
	return w, nil
}

// Config returns the settings the world was built with.
func (w *World) Config() config.World {
	return w.cfg
}

// ChunkSize returns the chunk edge length in blocks.
func (w *World) ChunkSize() int {
	return w.cfg.ChunkSize
}

// GetBlockAt returns the block at world coordinates. Unloaded space is air.
func (w *World) GetBlockAt(x, y, z int) BlockType {
	return w.store.Get(x, y, z)
}

// SetBlockAt writes id at world coordinates. It returns false, changing
// nothing, when the containing chunk is not loaded. An id outside the
// registered range is a programming error and panics.
func (w *World) SetBlockAt(x, y, z int, id BlockType) bool {
	if !id.Valid() {
		panic(fmt.Sprintf("world: invalid block id %d", id))
	}
	c, l := w.store.GetChunkFromBlockCoords(x, y, z)
	if c == nil {
		return false
	}
	c.SetBlock(l[0], l[1], l[2], id)
	// Any face-adjacent chunk may show or hide a face on the shared border.
	w.markNeighborsDirty(c.coord)
	return true
}

// IsSolid reports whether a non-air block occupies the cell.
func (w *World) IsSolid(x, y, z int) bool {
	return w.GetBlockAt(x, y, z) != BlockTypeAir
}

// IsVoid reports whether the cell holds air. Unloaded space is void.
func (w *World) IsVoid(x, y, z int) bool {
	return w.GetBlockAt(x, y, z) == BlockTypeAir
}

// Chunk returns the loaded chunk at coord, or nil.
func (w *World) Chunk(coord ChunkCoord) *Chunk {
	return w.store.GetChunk(coord)
}

// LoadedCoords returns every loaded chunk coordinate, sorted.
func (w *World) LoadedCoords() []ChunkCoord {
	return w.store.Coords()
}

// LoadedCount returns the number of loaded chunks.
func (w *World) LoadedCount() int {
	return w.store.Len()
}

// RequiredCoords returns the chunks UpdateChunks would keep for viewer.
func (w *World) RequiredCoords(viewer mgl32.Vec3) map[ChunkCoord]struct{} {
	return w.streamer.Required(viewer)
}

// UpdateChunks brings the loaded set to exactly the required set for
// viewer: missing chunks are generated, dirty required chunks are
// remeshed, and chunks outside the set are released and dropped.
func (w *World) UpdateChunks(viewer mgl32.Vec3) UpdateStats {
	defer profiling.Track("world.UpdateChunks")()

	required := w.streamer.Required(viewer)
	stats := UpdateStats{Required: len(required)}

	for coord := range required {
		if w.store.HasChunk(coord) {
			continue
		}
		w.loadChunk(coord)
		stats.Generated++
	}

	// Loaded chunks outside required are dropped below, so remeshing them is wasted.
	for coord := range required {
		c := w.store.GetChunk(coord)
		if !c.IsDirty() {
			continue
		}
		w.remesh(c)
		stats.Meshed++
	}

	for _, coord := range w.store.Coords() {
		if _, ok := required[coord]; ok {
			continue
		}
		w.unloadChunk(coord)
		stats.Unloaded++
	}

	stats.Loaded = w.store.Len()
	if stats.Generated > 0 || stats.Unloaded > 0 {
		cx, cz := w.streamer.Center(viewer)
		w.log.Debug("chunks streamed",
			"center_x", cx, "center_z", cz,
			"generated", stats.Generated,
			"meshed", stats.Meshed,
			"unloaded", stats.Unloaded,
			"loaded", stats.Loaded)
	}
	return stats
}

func (w *World) loadChunk(coord ChunkCoord) {
	c := NewChunk(coord, w.cfg.ChunkSize)
	c.Generate(w.gen, w.cfg.Seed)
	w.store.AddChunk(c)
	// Neighbours meshed against empty space here must cull their border.
	w.markNeighborsDirty(coord)
}

func (w *World) unloadChunk(coord ChunkCoord) {
	c := w.store.RemoveChunk(coord)
	if c == nil {
		return
	}
	c.releaseMeshes(w.sink)
	// The border now reads as air, so neighbours must expose it.
	w.markNeighborsDirty(coord)
}

func (w *World) remesh(c *Chunk) {
	defer profiling.Track("world.remesh")()
	c.rebuildMesh(w.mesher, w, w.sink)
}

func (w *World) markNeighborsDirty(coord ChunkCoord) {
	for _, off := range faceOffsets {
		if n := w.store.GetChunk(coord.Add(off[0], off[1], off[2])); n != nil {
			n.MarkDirty()
		}
	}
}

// Raycast picks the first solid block along dir from origin using the
// configured step size and step count.
func (w *World) Raycast(origin, dir mgl32.Vec3) physics.RaycastResult {
	return physics.Raycast(origin, dir, w.cfg.RaycastStep, w.cfg.RaycastMaxSteps, w)
}

// TopBlockAt scans the loaded column at (x, z) from the top of the
// vertical band down and returns the highest non-air block.
func (w *World) TopBlockAt(x, z int) (y int, id BlockType, ok bool) {
	size := w.cfg.ChunkSize
	top := (w.cfg.MaxChunkY+1)*size - 1
	bottom := w.cfg.MinChunkY * size
	for gy := top; gy >= bottom; gy-- {
		if b := w.GetBlockAt(x, gy, z); b != BlockTypeAir {
			return gy, b, true
		}
	}
	return 0, BlockTypeAir, false
}

// Close releases every mesh and drops all chunks.
func (w *World) Close() {
	for _, coord := range w.store.Coords() {
		if c := w.store.RemoveChunk(coord); c != nil {
			c.releaseMeshes(w.sink)
		}
	}
}
