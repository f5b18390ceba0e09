package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/smasonuk/spritemesh"
)

const (
	screenWidth  = 640
	screenHeight = 480
)

// previewGame shows one sprite at a time; left click or space moves on.
type previewGame struct {
	results []spritemesh.Result
	current int
	err     error
}

func runPreview(results []spritemesh.Result) error {
	g := &previewGame{}
	for _, r := range results {
		if r.Geometry != nil {
			g.results = append(g.results, r)
		}
	}
	if len(g.results) == 0 {
		return fmt.Errorf("nothing to preview")
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("spriteweld preview")
	if err := ebiten.RunGame(g); err != nil {
		return err
	}
	return g.err
}

func (g *previewGame) Update() error {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.current = (g.current + 1) % len(g.results)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	r := g.results[g.current]
	rect := r.Sprite.Rect
	scale := float32(1)
	if rect.Width > 0 && rect.Height > 0 {
		scale = min(float32(screenWidth-40)/float32(rect.Width), float32(screenHeight-60)/float32(rect.Height))
	}

	op := &spritemesh.DrawOptions{
		X:       20,
		Y:       40,
		Scale:   scale,
		Height:  float32(rect.Height),
		Fill:    color.RGBA{R: 40, G: 90, B: 200, A: 255},
		Outline: color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
	if err := spritemesh.DrawGeometry(screen, r.Geometry, op); err != nil {
		g.err = err
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  %d -> %d vertices  (%d/%d)  FPS: %0.2f",
		r.Sprite.Name, len(r.Sprite.Vertices), len(r.Geometry.Vertices),
		g.current+1, len(g.results), ebiten.ActualFPS()))
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
