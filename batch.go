package spritemesh

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Result is the outcome for one sprite of a sheet.
type Result struct {
	Sprite *Sprite
	// Geometry is nil when the sprite was skipped.
	Geometry *Geometry
}

// Optimizer welds the sprites of whole sheets. Sprites are independent, so
// they are spread over a bounded number of goroutines; each weld itself is
// sequential.
type Optimizer struct {
	cfg *Config
}

func NewOptimizer(cfg *Config) (*Optimizer, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Optimizer{cfg: cfg}, nil
}

// Optimize computes new geometry for every sprite of sheet. It does not
// modify the sheet; see Apply. The first failing sprite aborts the run and
// no results are returned.
func (o *Optimizer) Optimize(ctx context.Context, sheet *Sheet) ([]Result, error) {
	results := make([]Result, len(sheet.Sprites))
	for i, s := range sheet.Sprites {
		results[i].Sprite = s
	}

	if !o.cfg.ShouldProcess(sheet.Import) {
		Logger().Debug("sheet skipped",
			"asset", sheet.Import.AssetPath,
			"texture_type", sheet.Import.TextureType,
			"import_mode", sheet.Import.SpriteImportMode)
		return results, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.cfg.workerCount())

	for i, s := range sheet.Sprites {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if s == nil {
				return invalidInputf("sprite %d is nil", i)
			}
			geom, err := OptimizeSprite(s, o.cfg.Weld, o.cfg.ClampToRect)
			if err != nil {
				return fmt.Errorf("sprite %q: %w", s.Name, err)
			}
			results[i].Geometry = geom
			Logger().Info("sprite mesh optimized",
				"sprite", s.Name,
				"vertices_before", len(s.Vertices),
				"vertices_after", len(geom.Vertices))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Apply writes the optimised geometry back into the sprites. Skipped
// sprites are left as they were.
func Apply(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Sprite == nil || r.Geometry == nil {
			continue
		}
		r.Sprite.OverrideGeometry(r.Geometry)
		n++
	}
	return n
}
