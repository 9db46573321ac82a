package synth

import "math"

// sawSample computes one sawtooth sample for a phase and offset. The
// remainder is folded back into [0,1) when it comes out negative, so the
// result is always in [-amplitude, amplitude].
func sawSample(phase, offset, amplitude float64) float64 {
	adjusted := math.Mod(phase+offset, 1.0)
	if adjusted < 0 {
		adjusted += 1.0
	}
	return (2.0*adjusted - 1.0) * amplitude
}

// Saw streams an endless sawtooth wave and mirrors a downsampled copy of
// its output into a Ring for the renderer. Stream runs on the speaker's
// playback goroutine, so it must not block or allocate: the phase and the
// frame counter are owned by the streamer alone, the shared parameters are
// atomics, and the only lock it ever takes is the ring's O(1) write.
type Saw struct {
	Params *Params
	Ring   *Ring

	sampleRate float64
	downsample int
	phase      float64
	frame      int
}

func NewSaw(params *Params, ring *Ring, sampleRate, downsample int) *Saw {
	return &Saw{
		Params:     params,
		Ring:       ring,
		sampleRate: float64(sampleRate),
		downsample: downsample,
	}
}

func (s *Saw) Stream(samples [][2]float64) (int, bool) {
	freq := s.Params.Frequency()
	offset := s.Params.PhaseOffset()
	amp := s.Params.Amplitude()

	inc := freq / s.sampleRate
	for i := range samples {
		v := sawSample(s.phase, offset, amp)
		samples[i][0] = v
		samples[i][1] = v

		if s.frame%s.downsample == 0 {
			s.Ring.Write(v)
		}
		s.frame++

		s.phase += inc
		if s.phase >= 1.0 {
			s.phase -= 1.0
		}
	}
	return len(samples), true
}

func (s *Saw) Err() error { return nil }
