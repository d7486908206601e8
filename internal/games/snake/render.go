package snake

import (
	"fmt"

	"github.com/vovakirdan/pocket-snake/internal/core"
)

// Screen footprint of the board: every cell is two columns wide and the
// frame adds one row/column on each side.
const (
	ScreenW = Width*2 + 2
	ScreenH = Height + 2
)

// Glyphs, two columns per board cell.
const (
	glyphBody       = "██"
	glyphHead       = "▓▓"
	glyphFruit      = "○○"
	glyphFruitSolid = "●●" // Endless off
)

// RenderOptions carry presentation state that is not part of the game.
type RenderOptions struct {
	Flash bool // frame flourish after eating
}

// Render draws the snapshot into dst with the board's top-left corner at
// (0, 0). The caller clears dst beforehand.
func Render(dst *core.Screen, s Snapshot, opts RenderOptions) {
	rec := &s.Record
	frame := core.NewRect(0, 0, ScreenW, ScreenH)

	frameColor := core.ColorGreen
	if opts.Flash {
		frameColor = core.ColorBrightRed
	}
	dst.DrawBox(frame, frameColor)

	fruit := glyphFruit
	if !rec.Endless {
		fruit = glyphFruitSolid
	}
	drawCell(dst, rec.Fruit, fruit, core.ColorRed)

	for i, p := range rec.Body.Live() {
		if i == 0 {
			drawCell(dst, p, glyphHead, core.ColorBrightGreen)
			continue
		}
		drawCell(dst, p, glyphBody, core.ColorGreen)
	}

	if banner := s.Banner(); banner != "" {
		renderOverlay(dst, frame, s, banner)
	}
}

// drawCell paints one board cell. Off-board cells are skipped.
func drawCell(dst *core.Screen, c Cell, glyph string, color core.Color) {
	if CollidesWithFrame(c) {
		return
	}
	dst.DrawTextColored(1+int(c.X)*2, 1+int(c.Y), glyph, color)
}

// renderOverlay draws the pause/game-over panels: help strip on top, the
// result box in the middle and progress at the bottom.
func renderOverlay(dst *core.Screen, frame core.Rect, s Snapshot, banner string) {
	rec := &s.Record
	inner := core.NewRect(frame.X+1, frame.Y+1, frame.W-2, frame.H-2)

	top := core.NewRect(inner.X+8, inner.Y, inner.W-16, 2)
	dst.DrawRect(top, ' ')
	dst.DrawTextCentered(top, top.Y, "Hold ⌫ to Exit App")
	endless := "◀ Endless mode OFF ▶"
	if rec.Endless {
		endless = "◀ Endless mode ON  ▶"
	}
	dst.DrawTextCentered(top, top.Y+1, endless)

	box := inner.Centered(28, 5)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextColored(box.X+(box.W-len([]rune(banner)))/2, box.Y+1, banner, core.ColorBrightWhite)
	dst.DrawTextCentered(box, box.Y+3, fmt.Sprintf("Score: %d", rec.Score()))

	elapsed := s.Elapsed
	progress := fmt.Sprintf("%-5.1f%% (%02d:%02d:%02d)",
		rec.Percent(), elapsed/3600, elapsed/60%60, elapsed%60)
	bottom := core.NewRect(inner.X+8, inner.Bottom()-1, inner.W-16, 1)
	dst.DrawRect(bottom, ' ')
	dst.DrawTextCentered(bottom, bottom.Y, progress)
}
