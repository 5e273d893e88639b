package renderer

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/df07/go-phong-raycaster/pkg/core"
	"github.com/df07/go-phong-raycaster/pkg/scene"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// ParallelConfig controls how a frame is split across workers
type ParallelConfig struct {
	TileSize   int // Size of each square tile in pixels
	NumWorkers int // Number of parallel workers (0 = use CPU count, 1 = render sequentially)
}

// DefaultParallelConfig returns sensible default values
func DefaultParallelConfig() ParallelConfig {
	return ParallelConfig{
		TileSize:   64,
		NumWorkers: 0, // Auto-detect CPU count
	}
}

// Renderer drives a full frame: one primary ray per pixel, written into an RGBA buffer
type Renderer struct {
	scene  *scene.Scene
	config ParallelConfig
	logger core.Logger
}

// NewRenderer creates a renderer for s
func NewRenderer(s *scene.Scene, config ParallelConfig, logger core.Logger) *Renderer {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Renderer{
		scene:  s,
		config: config,
		logger: logger,
	}
}

// newTileRenderer builds a tile renderer over the renderer's scene
func (r *Renderer) newTileRenderer() *TileRenderer {
	camera := NewCamera(r.scene.Eye, r.scene.Config)
	return NewTileRenderer(camera, NewRaycaster(r.scene), r.logger)
}

// Render validates the scene once and renders the whole frame.
// The image is complete when the returned error is nil.
func (r *Renderer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	if err := r.scene.Validate(); err != nil {
		return nil, RenderStats{}, fmt.Errorf("invalid scene: %w", err)
	}

	config := r.scene.Config
	img := image.NewRGBA(image.Rect(0, 0, config.Width, config.Height))
	tiles := NewTileGrid(config.Width, config.Height, r.config.TileSize)

	startTime := time.Now()
	var stats RenderStats
	var err error
	if r.config.NumWorkers == 1 {
		r.logger.Printf("Rendering %dx%d sequentially (%d tiles)...\n", config.Width, config.Height, len(tiles))
		stats, err = r.renderSequential(ctx, tiles, img)
	} else {
		stats, err = r.renderParallel(ctx, tiles, img)
	}
	stats.Duration = time.Since(startTime)
	if err != nil {
		return nil, stats, err
	}

	r.logger.Printf("Render completed in %v: %d pixels, %d casts (%.2f per pixel), %d failed\n",
		stats.Duration, stats.TotalPixels, stats.Rays.Casts, stats.CastsPerPixel(), stats.FailedPixels)

	return img, stats, nil
}

// renderSequential renders the tiles one after another on the calling goroutine
func (r *Renderer) renderSequential(ctx context.Context, tiles []*Tile, img *image.RGBA) (RenderStats, error) {
	tileRenderer := r.newTileRenderer()

	var stats RenderStats
	for _, tile := range tiles {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		stats.Merge(tileRenderer.RenderTileBounds(tile.Bounds, img))
	}
	return stats, nil
}

// renderParallel distributes the tiles over a worker pool
func (r *Renderer) renderParallel(ctx context.Context, tiles []*Tile, img *image.RGBA) (RenderStats, error) {
	pool := NewWorkerPool(r.newTileRenderer, len(tiles), r.config.NumWorkers)
	r.logger.Printf("Rendering %dx%d with %d workers (%d tiles)...\n",
		r.scene.Config.Width, r.scene.Config.Height, pool.GetNumWorkers(), len(tiles))

	pool.Start(ctx)

	submitted := 0
	for taskID, tile := range tiles {
		if ctx.Err() != nil {
			break
		}
		pool.SubmitTask(TileTask{Tile: tile, TaskID: taskID, Image: img})
		submitted++
	}

	var stats RenderStats
	var firstErr error
	for i := 0; i < submitted; i++ {
		result, ok := pool.GetResult()
		if !ok {
			firstErr = fmt.Errorf("worker pool closed unexpectedly")
			break
		}
		if result.Error != nil {
			if firstErr == nil {
				firstErr = result.Error
			}
			continue
		}
		stats.Merge(result.Stats)
	}
	pool.Stop()

	if firstErr != nil {
		return stats, firstErr
	}
	if err := ctx.Err(); err != nil {
		return stats, err
	}
	return stats, nil
}
