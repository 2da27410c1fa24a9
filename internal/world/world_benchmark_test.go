package world

import (
	"testing"

	"voxelworld/internal/config"

	"github.com/go-gl/mathgl/mgl32"
)

// Benchmark streaming around a moving viewer with the natural generator
func BenchmarkUpdateChunks(b *testing.B) {
	cfg := config.Default()
	// Keep RD small to avoid long warm-up in CI; adjust if needed
	cfg.RenderDistance = 4
	w, err := New(cfg, newCountingMesher())
	if err != nil {
		b.Fatal(err)
	}

	// Warm-up populate once
	w.UpdateChunks(mgl32.Vec3{0, 64, 0})

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// Simulate slight movement to exercise load/unload
		w.UpdateChunks(mgl32.Vec3{float32(16 * (i % 3)), 64, float32(16 * ((i / 3) % 3))})
	}
}

func BenchmarkGetBlockAt(b *testing.B) {
	cfg := config.Default()
	cfg.Generator = config.GeneratorFlat
	cfg.RenderDistance = 2
	w, err := New(cfg, newCountingMesher())
	if err != nil {
		b.Fatal(err)
	}
	w.UpdateChunks(mgl32.Vec3{})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = w.GetBlockAt(i%32-16, i%64, (i*7)%32-16)
	}
}
