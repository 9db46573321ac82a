package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Ed-Visinheski/WaveController/internal/config"
)

// waveArea is the portion of the window above the control panel.
const waveArea = config.WindowHeight - config.KnobPanelHeight

func (g *Game) drawGrid(screen *ebiten.Image) {
	grid := color.RGBA{R: 64, G: 64, B: 64, A: 255}

	// Center line
	vector.StrokeLine(screen, 0, waveArea/2, config.WindowWidth, waveArea/2, 1, grid, false)

	// Vertical lines
	for i := 0; i <= 10; i++ {
		x := float32(i * config.WindowWidth / 10)
		vector.StrokeLine(screen, x, 0, x, waveArea, 1, grid, false)
	}

	// Horizontal lines
	for i := 0; i <= 8; i++ {
		y := float32(i * waveArea / 8)
		vector.StrokeLine(screen, 0, y, config.WindowWidth, y, 1, grid, false)
	}

	// Separator between waveform and controls
	vector.StrokeLine(screen, 0, waveArea, config.WindowWidth, waveArea, 1, color.RGBA{R: 128, G: 128, B: 128, A: 255}, false)
}

// drawWaveform draws the ring snapshot as a polyline, oldest sample on the
// left, scaled so a full-amplitude wave fills 80% of the wave area.
func (g *Game) drawWaveform(screen *ebiten.Image) {
	samples := g.ring.Snapshot()
	if len(samples) < 2 {
		return
	}

	centerY := float64(waveArea) / 2
	scaleY := float64(waveArea) * 0.4
	red := color.RGBA{R: 255, A: 255}

	for i := 0; i < len(samples)-1; i++ {
		x1 := float32(i * config.WindowWidth / len(samples))
		y1 := float32(centerY - samples[i]*scaleY)
		x2 := float32((i + 1) * config.WindowWidth / len(samples))
		y2 := float32(centerY - samples[i+1]*scaleY)
		vector.StrokeLine(screen, x1, y1, x2, y2, 1, red, false)
	}
}

func (g *Game) drawControlPanel(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, waveArea, config.WindowWidth, config.KnobPanelHeight, color.RGBA{R: 30, G: 30, B: 30, A: 255}, false)
	for _, k := range g.knobs {
		k.Draw(screen)
	}
}

// drawHandCursor overlays the remote pointer position: pink while
// pinching, cyan otherwise. Nothing is drawn before the first packet.
func (g *Game) drawHandCursor(screen *ebiten.Image) {
	if !g.pointer.Seen() {
		return
	}
	x, y := g.pointer.Position()
	c := color.RGBA{G: 200, B: 255, A: 100}
	if g.pointer.Active() {
		c = color.RGBA{R: 255, G: 80, B: 180, A: 120}
	}
	vector.DrawFilledCircle(screen, float32(x), float32(y), config.HandCursorRadius, c, false)
}
