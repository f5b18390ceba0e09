package spritemesh

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestOptimizerSheet(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Weld = WeldConfig{Threshold: 0.01, CellSize: 100}
	cfg.Workers = 2

	opt, err := NewOptimizer(cfg)
	if err != nil {
		t.Fatalf("NewOptimizer() error = %v", err)
	}

	sheet := testSheet()
	results, err := opt.Optimize(context.Background(), sheet)
	if err != nil {
		t.Fatalf("Optimize() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	crate := results[0]
	if crate.Sprite != sheet.Sprites[0] {
		t.Errorf("result 0 is not for the first sprite")
	}
	wantVerts := []Vector2{{0, 0}, {32, 0}, {32, 32}, {0, 32}}
	if !vec2AlmostEqual(crate.Geometry.Vertices, wantVerts) {
		t.Errorf("crate vertices = %v, want %v", crate.Geometry.Vertices, wantVerts)
	}
	if want := []uint16{0, 1, 2, 0, 2, 3}; !reflect.DeepEqual(crate.Geometry.Triangles, want) {
		t.Errorf("crate triangles = %v, want %v", crate.Geometry.Triangles, want)
	}
	if len(sheet.Sprites[0].Vertices) != 5 {
		t.Errorf("Optimize() modified the sheet")
	}

	if n := Apply(results); n != 2 {
		t.Errorf("Apply() = %d, want 2", n)
	}
	wantLocal := []Vector2{{-0.5, -0.5}, {0.5, -0.5}, {0.5, 0.5}, {-0.5, 0.5}}
	if !vec2AlmostEqual(sheet.Sprites[0].Vertices, wantLocal) {
		t.Errorf("applied vertices = %v, want %v", sheet.Sprites[0].Vertices, wantLocal)
	}
	if len(sheet.Sprites[1].Vertices) != 3 {
		t.Errorf("barrel has %d vertices, want 3", len(sheet.Sprites[1].Vertices))
	}
}

func TestOptimizerSkipsSheet(t *testing.T) {
	opt, err := NewOptimizer(nil)
	if err != nil {
		t.Fatalf("NewOptimizer() error = %v", err)
	}

	sheet := testSheet()
	sheet.Import.AssetPath = "Assets/UI/props.png"
	results, err := opt.Optimize(context.Background(), sheet)
	if err != nil {
		t.Fatalf("Optimize() error = %v", err)
	}
	for i, r := range results {
		if r.Geometry != nil {
			t.Errorf("result %d has geometry for a skipped sheet", i)
		}
	}
	if n := Apply(results); n != 0 {
		t.Errorf("Apply() = %d, want 0", n)
	}
	if !reflect.DeepEqual(sheet.Sprites, testSheet().Sprites) {
		t.Errorf("skipped sheet was modified")
	}
}

func TestOptimizerFailure(t *testing.T) {
	opt, err := NewOptimizer(DefaultConfig())
	if err != nil {
		t.Fatalf("NewOptimizer() error = %v", err)
	}

	sheet := testSheet()
	sheet.Sprites[1].PixelsPerUnit = 0
	results, err := opt.Optimize(context.Background(), sheet)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("Optimize() error = %v, want ErrInvalidInput", err)
	}
	if results != nil {
		t.Errorf("Optimize() returned results alongside an error")
	}
}

func TestOptimizerCanceled(t *testing.T) {
	opt, err := NewOptimizer(DefaultConfig())
	if err != nil {
		t.Fatalf("NewOptimizer() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := opt.Optimize(ctx, testSheet()); !errors.Is(err, context.Canceled) {
		t.Errorf("Optimize() error = %v, want context.Canceled", err)
	}
}

func TestNewOptimizerRejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Weld.CellSize = 0
	if _, err := NewOptimizer(cfg); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("NewOptimizer() error = %v, want ErrInvalidInput", err)
	}
}

func TestOptimizerNilSprite(t *testing.T) {
	sheet := testSheet()
	sheet.Sprites = append(sheet.Sprites, nil)

	opt, err := NewOptimizer(DefaultConfig())
	if err != nil {
		t.Fatalf("NewOptimizer() error = %v", err)
	}
	results, err := opt.Optimize(context.Background(), sheet)
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Optimize() error = %v, want ErrInvalidInput", err)
	}
	if results != nil {
		t.Errorf("Optimize() returned results on failure")
	}
}

func TestApplySkipsNilSprite(t *testing.T) {
	results := []Result{{Geometry: &Geometry{}}}
	if n := Apply(results); n != 0 {
		t.Errorf("Apply() = %d, want 0", n)
	}
}
