package game

import (
	"errors"
	"os"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
	"github.com/ncruces/zenity"

	"github.com/Ed-Visinheski/WaveController/internal/config"
)

// bufferStreamer plays a captured snapshot back once, duplicating the mono
// trace to both channels.
type bufferStreamer struct {
	samples []float64
	pos     int
}

func (b *bufferStreamer) Stream(samples [][2]float64) (int, bool) {
	n := 0
	for i := range samples {
		if b.pos >= len(b.samples) {
			break
		}
		v := b.samples[b.pos]
		samples[i][0] = v
		samples[i][1] = v
		b.pos++
		n++
	}
	return n, n > 0
}

func (b *bufferStreamer) Err() error { return nil }

// exportSnapshot writes the current ring contents to a WAV file chosen via
// a save dialog. The ring holds every VisualDownsample-th frame, so the
// file's sample rate is reduced accordingly to preserve pitch. Cancelling
// the dialog is not an error.
func (g *Game) exportSnapshot() error {
	filename, err := zenity.SelectFileSave(
		zenity.Title("Save Waveform Snapshot"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "WAV",
			Patterns: []string{"*.wav"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}

	format := beep.Format{
		SampleRate:  beep.SampleRate(config.SampleRate / config.VisualDownsample),
		NumChannels: 2,
		Precision:   2,
	}
	if err := wav.Encode(f, &bufferStreamer{samples: g.ring.Snapshot()}, format); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
