package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Ed-Visinheski/WaveController/internal/config"
)

// Knob is a rotary control bound to one oscillator parameter. A drag
// starts when the pointer engages within KnobRadius of the center and ends
// when engagement stops, wherever the pointer is by then. While dragging,
// config.DragRangePixels pixels of vertical travel sweep the whole
// min..max range, upward movement raising the value.
type Knob struct {
	X, Y     float64
	Min, Max float64
	Value    float64
	Label    string

	dragging       bool
	dragStartY     float64
	dragStartValue float64
}

func NewKnob(x, y, min, max, initial float64, label string) *Knob {
	return &Knob{X: x, Y: y, Min: min, Max: max, Value: initial, Label: label}
}

// Update advances the drag state machine with the current pointer sample.
func (k *Knob) Update(px, py float64, engaged bool) {
	if engaged && !k.dragging {
		if math.Hypot(px-k.X, py-k.Y) <= config.KnobRadius {
			k.dragging = true
			k.dragStartY = py
			k.dragStartValue = k.Value
		}
	}

	if k.dragging {
		if !engaged {
			k.dragging = false
			return
		}
		deltaY := k.dragStartY - py // inverted so dragging up raises the value
		sensitivity := (k.Max - k.Min) / config.DragRangePixels
		k.Value = clamp(k.dragStartValue+deltaY*sensitivity, k.Min, k.Max)
	}
}

func (k *Knob) Dragging() bool { return k.dragging }

func (k *Knob) Draw(screen *ebiten.Image) {
	// Base
	vector.DrawFilledCircle(screen, float32(k.X), float32(k.Y), config.KnobRadius, color.RGBA{R: 60, G: 60, B: 60, A: 255}, false)

	// Value indicator sweeping 288 degrees from min to max
	angle := (k.Value-k.Min)/(k.Max-k.Min)*2*math.Pi*0.8 - 0.8*math.Pi
	ix := k.X + (config.KnobRadius-8)*math.Cos(angle)
	iy := k.Y + (config.KnobRadius-8)*math.Sin(angle)
	vector.DrawFilledCircle(screen, float32(ix), float32(iy), 4, color.RGBA{R: 255, G: 100, B: 100, A: 255}, false)

	// Border
	vector.StrokeCircle(screen, float32(k.X), float32(k.Y), config.KnobRadius, 1, color.RGBA{R: 200, G: 200, B: 200, A: 255}, false)

	ebitenutil.DebugPrintAt(screen, k.Label, int(k.X)-25, int(k.Y)+config.KnobRadius+10)
	ebitenutil.DebugPrintAt(screen, k.formatValue(), int(k.X)-15, int(k.Y)+config.KnobRadius+25)
}

// formatValue renders wide ranges as whole numbers and unit ranges with
// two decimals.
func (k *Knob) formatValue() string {
	if k.Max > 100 {
		return fmt.Sprintf("%.0f", k.Value)
	}
	return fmt.Sprintf("%.2f", k.Value)
}
