// Package render draws the particle field onto a tcell screen. World
// coordinates are scaled down to terminal cells; each particle becomes one
// block cell whose color is its own color alpha-blended into the field
// background, so the fade-out is visible even on low-color terminals.
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samsarge/particles/core"
	"github.com/samsarge/particles/sim"
)

// Renderer owns the world-to-cell mapping for one screen.
type Renderer struct {
	screen tcell.Screen
	cols   int
	rows   int
	bg     tcell.Style
}

func New(screen tcell.Screen) *Renderer {
	r := &Renderer{
		screen: screen,
		bg:     tcell.StyleDefault.Background(toTcell(core.RGBBackground)),
	}
	r.Resize()
	return r
}

// Resize re-reads the screen dimensions after a terminal resize event.
func (r *Renderer) Resize() {
	r.cols, r.rows = r.screen.Size()
}

// Frame draws the current population and a status line, then flushes.
func (r *Renderer) Frame(w *sim.World) {
	r.screen.Fill(' ', r.bg)

	bounds := w.Bounds()
	for _, p := range w.Particles() {
		x := int(p.Position.X / bounds.X * float64(r.cols))
		y := int(p.Position.Y / bounds.Y * float64(r.rows))
		if x < 0 || x >= r.cols || y < 0 || y >= r.rows {
			continue
		}

		c := p.Color()
		fg := core.RGBBackground.Blend(c.RGB, c.A)
		r.screen.SetContent(x, y, '█', nil, r.bg.Foreground(toTcell(fg)))
	}

	r.status(w)
	r.screen.Show()
}

// status draws the tick and population counters in the top-left corner.
// The text is dimmed below the particles' full white so the counters do not
// read as part of the field.
func (r *Renderer) status(w *sim.World) {
	text := fmt.Sprintf(" tick=%d particles=%d ", w.TickCount(), w.Len())
	style := r.bg.Foreground(toTcell(core.RGBWhite.Scale(0.8)))
	for i, ch := range text {
		if i >= r.cols {
			break
		}
		r.screen.SetContent(i, 0, ch, nil, style)
	}
}

func toTcell(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
