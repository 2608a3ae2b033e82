// Package render rasterizes game frames onto a character-cell screen.
package render

import (
	"github.com/vovakirdan/chicken-run/internal/assets"
	"github.com/vovakirdan/chicken-run/internal/config"
	"github.com/vovakirdan/chicken-run/internal/core"
	"github.com/vovakirdan/chicken-run/internal/game"
)

// Glyphs used for each layer.
const (
	BarChar        = '█'
	PlayerChar     = '▲'
	EnemyLeftChar  = '◀'
	EnemyRightChar = '▶'
)

// Rasterizer maps window pixels to terminal cells and draws the layers of a frame.
type Rasterizer struct {
	cellW, cellH int
	cols, rows   int
	textures     assets.Set
}

// NewRasterizer creates a rasterizer for the given game constants and textures.
func NewRasterizer(rules config.Game, textures assets.Set) *Rasterizer {
	cols, rows := rules.GridSize()
	return &Rasterizer{
		cellW:    rules.Render.CellWidth,
		cellH:    rules.Render.CellHeight,
		cols:     cols,
		rows:     rows,
		textures: textures,
	}
}

// Size returns the grid needed for the whole window, in cells.
func (r *Rasterizer) Size() (cols, rows int) {
	return r.cols, r.rows
}

// NewScreen returns a screen sized for this rasterizer.
func (r *Rasterizer) NewScreen() *core.Screen {
	return core.NewScreen(r.cols, r.rows)
}

// CellRect converts a pixel rectangle to the cell rectangle that represents it.
// Positions round to the nearest cell so a sprite keeps a constant cell size
// while it moves; every visible sprite covers at least one cell.
func (r *Rasterizer) CellRect(px core.Rect) core.Rect {
	return core.NewRect(
		core.FloorDiv(px.X+r.cellW/2, r.cellW),
		core.FloorDiv(px.Y+r.cellH/2, r.cellH),
		core.Max(1, px.W/r.cellW),
		core.Max(1, px.H/r.cellH),
	)
}

// Draw paints f onto dst in back-to-front order: background, bars, player,
// enemies. A layer whose texture is nil is skipped.
func (r *Rasterizer) Draw(dst *core.Screen, f game.Frame) {
	dst.Clear()

	if tex := r.textures.Background; tex != nil {
		dst.PaintBackground(r.CellRect(f.Background), tex.Tint)
	}

	if tex := r.textures.Bar; tex != nil {
		dst.FillRect(r.CellRect(f.TopBar), BarChar, tex.Tint)
		dst.FillRect(r.CellRect(f.BottomBar), BarChar, tex.Tint)
	}

	if tex := r.textures.Player; tex != nil {
		dst.FillRect(r.CellRect(f.Player), PlayerChar, tex.Tint)
	}

	if tex := r.textures.Enemy; tex != nil {
		for _, e := range f.Enemies {
			if !e.Pos.Intersects(f.Background) {
				continue
			}
			glyph := EnemyRightChar
			if e.Dir == game.DirLeft {
				glyph = EnemyLeftChar
			}
			dst.FillRect(r.CellRect(e.Pos), glyph, tex.Tint)
		}
	}
}

// ScreenRenderer is a game.Renderer that rasterizes every frame into a Screen.
type ScreenRenderer struct {
	raster *Rasterizer
	screen *core.Screen
}

// NewScreenRenderer creates a renderer with its own screen buffer.
func NewScreenRenderer(raster *Rasterizer) *ScreenRenderer {
	return &ScreenRenderer{raster: raster, screen: raster.NewScreen()}
}

// Render implements game.Renderer.
func (s *ScreenRenderer) Render(f game.Frame) {
	s.raster.Draw(s.screen, f)
}

// Screen returns the most recently rendered buffer.
func (s *ScreenRenderer) Screen() *core.Screen {
	return s.screen
}
