package renderer

import (
	"image"

	"github.com/df07/go-phong-raycaster/pkg/core"
)

// TileRenderer renders rectangular regions of the frame
type TileRenderer struct {
	camera    *Camera
	raycaster *Raycaster
	logger    core.Logger
}

// NewTileRenderer creates a new tile renderer
func NewTileRenderer(camera *Camera, raycaster *Raycaster, logger core.Logger) *TileRenderer {
	return &TileRenderer{
		camera:    camera,
		raycaster: raycaster,
		logger:    logger,
	}
}

// RenderTileBounds renders every pixel inside bounds into img.
// Callers must not render overlapping bounds into the same image concurrently.
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, img *image.RGBA) RenderStats {
	stats := RenderStats{TotalPixels: bounds.Dx() * bounds.Dy()}

	for h := bounds.Min.Y; h < bounds.Max.Y; h++ {
		for w := bounds.Min.X; w < bounds.Max.X; w++ {
			color, err := tr.renderPixel(w, h, &stats.Rays)
			if err != nil {
				// A bad pixel stays black; the rest of the frame continues
				tr.logger.Printf("Skipping pixel: %v\n", err)
				stats.FailedPixels++
			}
			img.SetRGBA(w, h, color.RGBA())
		}
	}

	return stats
}

// renderPixel casts the primary ray for pixel (w, h)
func (tr *TileRenderer) renderPixel(w, h int, rays *RayStats) (core.Color, error) {
	ray, err := tr.camera.GetRay(w, h)
	if err != nil {
		return core.Black, err
	}
	return tr.raycaster.Trace(ray, rays)
}
