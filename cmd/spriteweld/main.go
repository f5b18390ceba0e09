package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/smasonuk/spritemesh"
)

func main() {
	var (
		in       = flag.String("in", "", "sprite sheet (.json) or mesh (.ply) to optimise")
		out      = flag.String("out", "", "output file, defaults to stdout for sheets")
		cfgPath  = flag.String("config", "spritemesh.json", "config file")
		pngPath  = flag.String("png", "", "write a wireframe PNG of the first optimised sprite")
		pngScale = flag.Float64("png-scale", 2, "wireframe scale")
		preview  = flag.Bool("preview", false, "show the optimised sheet in a window")
		verbose  = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	spritemesh.SetLogger(logger)

	if err := run(*in, *out, *cfgPath, *pngPath, *pngScale, *preview); err != nil {
		fmt.Fprintln(os.Stderr, "spriteweld:", err)
		os.Exit(1)
	}
}

func run(in, out, cfgPath, pngPath string, pngScale float64, preview bool) error {
	if in == "" {
		flag.Usage()
		return fmt.Errorf("-in is required")
	}

	cfg, err := spritemesh.LoadConfig(cfgPath)
	if err != nil {
		return err
	}

	if strings.EqualFold(filepath.Ext(in), ".ply") {
		return weldPLY(in, out, cfg)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sheet, err := spritemesh.LoadSheetFile(in)
	if err != nil {
		return err
	}

	opt, err := spritemesh.NewOptimizer(cfg)
	if err != nil {
		return err
	}
	results, err := opt.Optimize(ctx, sheet)
	if err != nil {
		return err
	}

	if pngPath != "" {
		if err := writeWireframe(pngPath, results, pngScale); err != nil {
			return err
		}
	}
	if preview {
		if err := runPreview(results); err != nil {
			return err
		}
	}

	n := spritemesh.Apply(results)
	slog.Info("sheet optimized", "sprites", len(results), "changed", n)

	if out == "" {
		return spritemesh.WriteSheet(os.Stdout, sheet)
	}
	return spritemesh.SaveSheetFile(out, sheet)
}

func weldPLY(in, out string, cfg *spritemesh.Config) error {
	if out == "" {
		return fmt.Errorf("-out is required for PLY input")
	}
	m, err := spritemesh.LoadMeshFromPLYFile(in)
	if err != nil {
		return err
	}
	welded, err := m.Weld(cfg.Weld)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}
	slog.Info("mesh welded",
		"points_before", len(m.Points),
		"points_after", len(welded.Points),
		"degenerate", welded.DegenerateCount())
	return spritemesh.SaveMeshToPLYFile(out, welded)
}

func writeWireframe(path string, results []spritemesh.Result, scale float64) error {
	for _, r := range results {
		if r.Geometry == nil {
			continue
		}
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("could not create PNG file %s: %w", path, err)
		}
		defer file.Close()
		if err := spritemesh.RenderWireframe(file, r.Geometry, r.Sprite.Rect, scale); err != nil {
			return fmt.Errorf("error writing PNG file %s: %w", path, err)
		}
		return file.Close()
	}
	return fmt.Errorf("no optimised sprite to draw")
}
