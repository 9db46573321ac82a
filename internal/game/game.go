package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/Ed-Visinheski/WaveController/internal/config"
	"github.com/Ed-Visinheski/WaveController/internal/remote"
	"github.com/Ed-Visinheski/WaveController/internal/synth"
)

// Game is the main loop: it polls input, runs the knobs, pushes their
// values to the oscillator and draws the waveform trace each frame.
type Game struct {
	params  *synth.Params
	ring    *synth.Ring
	pointer *remote.Pointer

	frequency *Knob
	phase     *Knob
	amplitude *Knob
	knobs     []*Knob

	// input edge detection
	prevKey map[ebiten.Key]bool

	lastErr error
}

func New(params *synth.Params, ring *synth.Ring, pointer *remote.Pointer) *Game {
	knobY := float64(config.WindowHeight - config.KnobPanelHeight/2)
	g := &Game{
		params:    params,
		ring:      ring,
		pointer:   pointer,
		frequency: NewKnob(150, knobY, 50, 2000, params.Frequency(), "Frequency"),
		phase:     NewKnob(350, knobY, 0, 1, params.PhaseOffset(), "Phase"),
		amplitude: NewKnob(550, knobY, 0, 1, params.Amplitude(), "Amplitude"),
		prevKey:   map[ebiten.Key]bool{},
	}
	g.knobs = []*Knob{g.frequency, g.phase, g.amplitude}
	return g
}

func (g *Game) Update() error {

	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if justPressed(ebiten.KeyS) {
		if err := g.exportSnapshot(); err != nil {
			g.lastErr = err
		}
	}

	px, py, engaged := g.pointerSample()
	for _, k := range g.knobs {
		k.Update(px, py, engaged)
	}

	g.params.SetFrequency(g.frequency.Value)
	g.params.SetPhaseOffset(g.phase.Value)
	g.params.SetAmplitude(g.amplitude.Value)

	return nil
}

// pointerSample merges the two pointing devices into one pointer: a
// pinching hand tracker drives the knobs, otherwise the mouse does.
func (g *Game) pointerSample() (x, y float64, engaged bool) {
	if g.pointer.Active() {
		hx, hy := g.pointer.Position()
		return float64(hx), float64(hy), true
	}
	mx, my := ebiten.CursorPosition()
	return float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawGrid(screen)
	g.drawWaveform(screen)
	g.drawControlPanel(screen)
	g.drawHandCursor(screen)

	status := "Sawtooth Wave Generator - drag knobs, S: save snapshot, Esc: quit"
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
