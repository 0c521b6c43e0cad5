package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/lawnchairsociety/terragen/internal/config"
	"github.com/lawnchairsociety/terragen/internal/export"
	"github.com/lawnchairsociety/terragen/internal/logger"
	"github.com/lawnchairsociety/terragen/internal/render"
	"github.com/lawnchairsociety/terragen/internal/sample"
	"github.com/lawnchairsociety/terragen/internal/wfc"
)

func main() {
	samplePath := flag.String("sample", "resources/sample.png", "Path to sample PNG image")
	configFile := flag.String("config", "data/terragen.yaml", "Path to generator config YAML file")
	width := flag.Int("width", 0, "Output grid width (overrides config)")
	height := flag.Int("height", 0, "Output grid height (overrides config)")
	seed := flag.Int64("seed", 0, "Generation seed (default: random based on current time)")
	rotate := flag.Bool("rotate", false, "Learn each adjacency under all four directions")
	outFile := flag.String("out", "", "Write the generated map as YAML to this path")
	showLegend := flag.Bool("legend", true, "Show legend")
	flag.Parse()

	// Initialize logger first (before any logging)
	logConfig, _ := logger.LoadConfig(*configFile)
	logger.Initialize(logConfig)

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		logger.Warning("Failed to parse config, using defaults", "path", *configFile, "error", err)
	}
	if *width > 0 {
		cfg.Grid.Width = *width
	}
	if *height > 0 {
		cfg.Grid.Height = *height
	}
	if *rotate {
		cfg.Rules.Rotate = true
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Use provided seed or generate from time
	runSeed := *seed
	if runSeed == 0 {
		runSeed = time.Now().UnixNano()
		logger.Info("Generation seed selected", "seed", runSeed, "random", true)
	} else {
		logger.Info("Generation seed selected", "seed", runSeed, "random", false)
	}

	palette, err := sample.NewPalette(cfg.Palette)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	img, err := sample.LoadPNG(*samplePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	sampleW, sampleH := img.Dimensions()
	logger.Info("Sample loaded", "path", *samplePath, "width", sampleW, "height", sampleH)

	// Rule extraction aborts the whole run on an unclassifiable pixel;
	// a partial rule set is unusable.
	gen, err := wfc.Learn(sample.NewClassifiedImage(img, palette), cfg.Rules.Rotate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: rule extraction failed: %v\n", err)
		os.Exit(1)
	}
	logger.Info("Rules learned",
		"rules", len(gen.Rules),
		"tile_types", len(gen.Rules.TileTypes()),
		"rotate", cfg.Rules.Rotate)
	if len(gen.Rules) == 0 {
		logger.Warning("No adjacency rules learned; every cell will resolve to the invalid tile")
	}

	solver := wfc.NewSolver(gen, runSeed)
	board := solver.Synthesize(cfg.Grid.Width, cfg.Grid.Height)

	logCounts(board, palette)

	fmt.Print(render.Board(board, palette))
	if *showLegend {
		fmt.Print(render.Legend(palette))
	}

	if *outFile != "" {
		if err := export.WriteMapYAML(board, palette, *outFile, *samplePath, runSeed); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing map file: %v\n", err)
			os.Exit(1)
		}
		logger.Info("Map written", "path", *outFile)
	}
}

// logCounts reports the tile distribution of the finished board.
func logCounts(board *wfc.Board, palette *sample.Palette) {
	counts := board.Counts()

	tiles := make([]wfc.TileType, 0, len(counts))
	for t := range counts {
		tiles = append(tiles, t)
	}
	sort.Slice(tiles, func(i, j int) bool { return tiles[i] < tiles[j] })

	for _, t := range tiles {
		if t == wfc.TileInvalid {
			continue
		}
		logger.Debug("Tile count", "tile", palette.Name(t), "count", counts[t])
	}

	logger.Info("Synthesis complete",
		"cells", board.Width*board.Height,
		"exhausted", counts[wfc.TileInvalid])
}
