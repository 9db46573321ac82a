package synth

import (
	"math"
	"sync/atomic"
)

// Params holds the oscillator settings shared between the UI loop and the
// audio goroutine. The UI writes whole values, the streamer loads them once
// per block; atomic bit-casts keep the audio path free of locks.
type Params struct {
	frequency   atomic.Uint64
	phaseOffset atomic.Uint64
	amplitude   atomic.Uint64
}

func NewParams(frequency, phaseOffset, amplitude float64) *Params {
	p := &Params{}
	p.SetFrequency(frequency)
	p.SetPhaseOffset(phaseOffset)
	p.SetAmplitude(amplitude)
	return p
}

func (p *Params) Frequency() float64 { return math.Float64frombits(p.frequency.Load()) }
func (p *Params) SetFrequency(v float64) { p.frequency.Store(math.Float64bits(v)) }

func (p *Params) PhaseOffset() float64 { return math.Float64frombits(p.phaseOffset.Load()) }
func (p *Params) SetPhaseOffset(v float64) { p.phaseOffset.Store(math.Float64bits(v)) }

func (p *Params) Amplitude() float64 { return math.Float64frombits(p.amplitude.Load()) }
func (p *Params) SetAmplitude(v float64) { p.amplitude.Store(math.Float64bits(v)) }
