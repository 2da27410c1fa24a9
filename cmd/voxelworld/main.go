package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"voxelworld/internal/config"
	"voxelworld/internal/meshing"
	"voxelworld/internal/registry"
	"voxelworld/internal/world"

	"github.com/xlab/closer"
)

func main() {
	cfg := config.Default()

	configPath := flag.String("config", "", "YAML world config; flags given explicitly override it")
	seed := flag.Int64("seed", cfg.Seed, "terrain seed")
	renderDistance := flag.Int("render-distance", cfg.RenderDistance, "streaming radius in chunks")
	generator := flag.String("generator", cfg.Generator, "terrain generator: natural or flat")
	ticks := flag.Int("ticks", 200, "number of ticks to simulate")
	tps := flag.Int("tps", 20, "ticks per second, 0 for unlimited")
	speed := flag.Float64("speed", 0.5, "viewer speed along +X in blocks per tick")
	placeName := flag.String("place", "stone", "block placed every tick")
	previewPath := flag.String("preview", "", "write a top-down PNG of the loaded area on exit")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		fmt.Fprintln(os.Stderr, "invalid -log-level:", err)
		os.Exit(2)
	}
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Error("load config", "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seed
		case "render-distance":
			cfg.RenderDistance = *renderDistance
		case "generator":
			cfg.Generator = *generator
		}
	})

	place, ok := registry.ByName(*placeName)
	if !ok || place == world.BlockTypeAir {
		log.Error("unknown block", "place", *placeName)
		os.Exit(2)
	}

	w, err := world.New(cfg, meshing.New(cfg.AtlasTiles), world.WithLogger(log.With("component", "world")))
	if err != nil {
		log.Error("create world", "error", err)
		os.Exit(1)
	}
	log.Info("world created",
		"seed", cfg.Seed,
		"generator", cfg.Generator,
		"render_distance", cfg.RenderDistance,
		"chunk_size", cfg.ChunkSize)

	sim := newSimulation(w, log, float32(*speed), place)

	// Ticks and shutdown both hold mu, so a signal waits for the
	// current tick before the world is torn down.
	var mu sync.Mutex
	closer.Bind(func() {
		mu.Lock()
		defer mu.Unlock()
		if *previewPath != "" {
			if err := sim.writePreview(*previewPath); err != nil {
				log.Error("write preview", "error", err)
			} else {
				log.Info("preview written", "path", *previewPath)
			}
		}
		log.Info("shutdown",
			"ticks", sim.ticks,
			"broken", sim.broken,
			"placed", sim.placed,
			"loaded", w.LoadedCount())
		w.Close()
	})
	defer closer.Close()

	limiter := NewTickLimiter(*tps)
	for range *ticks {
		mu.Lock()
		stats := sim.step()
		if stats.Generated > 0 || sim.ticks%20 == 0 {
			sim.logTick(stats)
		}
		mu.Unlock()
		limiter.Wait()
	}
}
