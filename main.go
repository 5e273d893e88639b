package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-phong-raycaster/pkg/core"
	"github.com/df07/go-phong-raycaster/pkg/loaders"
	"github.com/df07/go-phong-raycaster/pkg/renderer"
	"github.com/df07/go-phong-raycaster/pkg/scene"
)

const scenesDir = "scenes"

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Scene name ('default', 'reflect', a file in scenes/) or path to a .json scene")
	width := flag.Int("width", 0, "Image width override (0 = scene value)")
	height := flag.Int("height", 0, "Image height override (0 = scene value)")
	maxDepth := flag.Int("depth", -1, "Maximum reflection depth override (-1 = scene value)")
	ambient := flag.String("ambient", "", "Ambient mode override: 'per-light' or 'once'")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = CPU count, 1 = sequential)")
	tileSize := flag.Int("tile", 64, "Tile size in pixels")
	output := flag.String("out", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	list := flag.Bool("list", false, "List available scenes")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Phong Raycaster")
		fmt.Println("Usage: raycaster [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Output will be saved to output/<scene_type>/render_<timestamp>.png")
		return
	}

	if *list {
		if err := listScenes(); err != nil {
			fmt.Printf("Error listing scenes: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Println("Starting Phong Raycaster...")

	selectedScene, err := createScene(*sceneType)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if err := applyOverrides(selectedScene, *width, *height, *maxDepth, *ambient); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	raycaster := renderer.NewRenderer(selectedScene, renderer.ParallelConfig{
		TileSize:   *tileSize,
		NumWorkers: *workers,
	}, renderer.NewDefaultLogger())

	img, stats, err := raycaster.Render(context.Background())
	if err != nil {
		fmt.Printf("Error rendering: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Rays: %d casts, %d hits, %d shadow rays, deepest reflection %d\n",
		stats.Rays.Casts, stats.Rays.Hits, stats.Rays.ShadowRays, stats.Rays.DeepestDepth)
	fmt.Printf("Average luminance: %.3f\n", renderer.CalculateAverageLuminance(img))

	filename := *output
	if filename == "" {
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join(createOutputDir(*sceneType), fmt.Sprintf("render_%s.png", timestamp))
	}

	if err := loaders.SavePNG(filename, img); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", filename)
}

// createScene resolves a built-in scene name or a JSON scene file
func createScene(sceneType string) (*scene.Scene, error) {
	if sceneType == "" {
		return nil, fmt.Errorf("no scene specified")
	}

	if s, err := scene.NewBuiltinScene(sceneType); err == nil {
		fmt.Printf("Using %s scene...\n", sceneType)
		return s, nil
	}

	s, err := tryLoadJSONScene(sceneType)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("unknown scene type: %s", sceneType)
	}
	fmt.Printf("Using scene file for %s...\n", sceneType)
	return s, nil
}

// tryLoadJSONScene loads sceneType as a path or as a name under scenes/.
// It returns nil without an error when no matching file exists; other
// filesystem errors are returned.
func tryLoadJSONScene(sceneType string) (*scene.Scene, error) {
	path := sceneType
	if !strings.HasSuffix(path, ".json") {
		path = filepath.Join(scenesDir, sceneType+".json")
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}
	return loaders.LoadSceneFile(path)
}

// applyOverrides applies command line overrides to the scene configuration
func applyOverrides(s *scene.Scene, width, height, maxDepth int, ambient string) error {
	s.Config = core.MergeRenderConfig(s.Config, core.RenderConfig{Width: width, Height: height})
	if maxDepth >= 0 {
		s.Config.MaxDepth = maxDepth
	}
	if ambient != "" {
		mode, err := core.ParseAmbientMode(ambient)
		if err != nil {
			return err
		}
		s.Config.Ambient = mode
	}
	return s.Config.Validate()
}

// createOutputDir returns output/<scene name> for a scene name or file path
func createOutputDir(sceneType string) string {
	name := strings.TrimSuffix(filepath.Base(sceneType), filepath.Ext(sceneType))
	if name == "" || name == "." {
		name = "scene"
	}
	return filepath.Join("output", name)
}

// listScenes prints the built-in scenes and the scene files in scenes/
func listScenes() error {
	scenes, err := scene.ListAllScenes(scenesDir)
	if err != nil {
		return err
	}

	fmt.Println("Available scenes:")
	for _, info := range scenes {
		if info.Type == "json" {
			fmt.Printf("  %-16s %s (%s)\n", info.ID, info.DisplayName, info.FilePath)
		} else {
			fmt.Printf("  %-16s %s - %s\n", info.ID, info.DisplayName, info.Description)
		}
	}
	return nil
}
