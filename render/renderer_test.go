package render

import (
	"io"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samsarge/particles/alloc"
	"github.com/samsarge/particles/sim"
)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)
	return screen
}

func newTestWorld(seed int64) *sim.World {
	a := alloc.NewReportingAllocatorWithSink(alloc.NewSystemAllocator(), io.Discard)
	return sim.NewWorld(1280, 960, &sim.WorldConfig{Seed: seed, Allocator: a})
}

func TestFrameDrawsParticles(t *testing.T) {
	screen := newTestScreen(t)
	w := newTestWorld(3)
	w.Spawn(1)

	// Move the particle somewhere mid-field so it maps inside the screen
	p := w.Particles()[0]
	p.Position.X = 640
	p.Position.Y = 480

	r := New(screen)
	r.Frame(w)

	cells, cols, _ := screen.GetContents()
	x := int(p.Position.X / 1280 * 80)
	y := int(p.Position.Y / 960 * 24)

	cell := cells[y*cols+x]
	if len(cell.Runes) == 0 || cell.Runes[0] != '█' {
		t.Errorf("cell (%d,%d) = %q, want block rune", x, y, cell.Runes)
	}
}

func TestFrameDrawsStatusLine(t *testing.T) {
	screen := newTestScreen(t)
	w := newTestWorld(3)
	w.Spawn(5)

	New(screen).Frame(w)

	cells, cols, _ := screen.GetContents()
	got := make([]rune, 0, 16)
	for i := 0; i < cols; i++ {
		if len(cells[i].Runes) > 0 {
			got = append(got, cells[i].Runes[0])
		}
	}
	if want := " tick=0 particles=5 "; len(got) < len(want) || string(got[:len(want)]) != want {
		t.Errorf("status line = %q, want prefix %q", string(got), want)
	}
}

func TestFrameSkipsOffscreenParticles(t *testing.T) {
	screen := newTestScreen(t)
	w := newTestWorld(3)
	w.Spawn(1)

	// Off the top edge: particles rise past y=0 before being despawned
	w.Particles()[0].Position.Y = -50

	r := New(screen)
	r.Frame(w) // must not panic or write out of range
}
