package synth

import (
	"math"
	"testing"
)

func TestSawSample(t *testing.T) {
	tests := []struct {
		name                     string
		phase, offset, amplitude float64
		want                     float64
	}{
		{"start of ramp", 0, 0, 1, -1},
		{"mid ramp", 0.5, 0, 1, 0},
		{"late ramp", 0.75, 0, 1, 0.5},
		{"offset wraps to zero", 0.5, 0.5, 1, -1},
		{"offset wraps past one", 0.75, 0.5, 0.3, -0.15},
		{"scaled by amplitude", 0.25, 0, 0.3, -0.15},
		{"offset only", 0, 0.25, 1, -0.5},
		{"negative remainder folds back", -0.25, 0, 1, 0.5},
		{"zero amplitude is silence", 0.9, 0.9, 0, 0},
	}
	for _, tt := range tests {
		got := sawSample(tt.phase, tt.offset, tt.amplitude)
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("%s: sawSample(%v, %v, %v) = %v, want %v",
				tt.name, tt.phase, tt.offset, tt.amplitude, got, tt.want)
		}
	}
}

func TestSawSampleStaysWithinAmplitude(t *testing.T) {
	const amp = 0.3
	for p := 0.0; p < 1.0; p += 0.01 {
		for o := 0.0; o < 1.0; o += 0.01 {
			got := sawSample(p, o, amp)
			if got < -amp-1e-12 || got > amp+1e-12 {
				t.Fatalf("sawSample(%v, %v, %v) = %v out of range", p, o, amp, got)
			}
			adjusted := math.Mod(p+o, 1.0)
			want := (2*adjusted - 1) * amp
			if math.Abs(got-want) > 1e-12 {
				t.Fatalf("sawSample(%v, %v, %v) = %v, want %v", p, o, amp, got, want)
			}
		}
	}
}

func TestStreamKeepsPhaseWrapped(t *testing.T) {
	for _, freq := range []float64{1, 261.63, 440, 2000, 22050, 44099} {
		s := NewSaw(NewParams(freq, 0, 0.3), NewRing(800), 44100, 4)
		buf := make([][2]float64, 256)
		for block := 0; block < 50; block++ {
			n, ok := s.Stream(buf)
			if n != len(buf) || !ok {
				t.Fatalf("freq %v: Stream = (%d, %v), want (%d, true)", freq, n, ok, len(buf))
			}
			if s.phase < 0 || s.phase >= 1 {
				t.Fatalf("freq %v: phase %v escaped [0,1) after block %d", freq, s.phase, block)
			}
		}
	}
}

func TestStreamDuplicatesChannels(t *testing.T) {
	s := NewSaw(NewParams(440, 0.25, 0.5), NewRing(800), 44100, 4)
	buf := make([][2]float64, 256)
	s.Stream(buf)

	if want := sawSample(0, 0.25, 0.5); buf[0][0] != want {
		t.Errorf("first sample = %v, want %v", buf[0][0], want)
	}
	for i, frame := range buf {
		if frame[0] != frame[1] {
			t.Fatalf("frame %d: channels differ (%v vs %v)", i, frame[0], frame[1])
		}
	}
}

func TestStreamDownsamplesIntoRing(t *testing.T) {
	ring := NewRing(800)
	s := NewSaw(NewParams(440, 0, 0.3), ring, 44100, 4)

	// Exactly enough frames to fill the ring once at 1-in-4.
	buf := make([][2]float64, 800*4)
	s.Stream(buf)

	snap := ring.Snapshot()
	for k, got := range snap {
		if want := buf[4*k][0]; got != want {
			t.Fatalf("ring[%d] = %v, want output frame %d = %v", k, got, 4*k, want)
		}
	}
}

// The downsampled trace of a 440 Hz sawtooth should reset every
// 44100/440/4 ≈ 25.06 ring entries.
func TestRingTraceHasSawtoothPeriod(t *testing.T) {
	ring := NewRing(800)
	s := NewSaw(NewParams(440, 0, 0.3), ring, 44100, 4)
	s.Stream(make([][2]float64, 800*4))

	snap := ring.Snapshot()
	var resets []int
	for i := 0; i < len(snap)-1; i++ {
		if snap[i+1] < snap[i] {
			resets = append(resets, i)
		}
	}
	if len(resets) < 2 {
		t.Fatalf("found %d resets in trace, want several", len(resets))
	}
	for i := 1; i < len(resets); i++ {
		gap := resets[i] - resets[i-1]
		if gap != 25 && gap != 26 {
			t.Fatalf("reset gap %d entries, want 25 or 26", gap)
		}
	}
}

func TestStreamTracksParamChanges(t *testing.T) {
	params := NewParams(440, 0, 0.3)
	s := NewSaw(params, NewRing(800), 44100, 4)
	buf := make([][2]float64, 256)
	s.Stream(buf)

	params.SetAmplitude(0)
	s.Stream(buf)
	for i, frame := range buf {
		if frame[0] != 0 {
			t.Fatalf("frame %d: got %v after amplitude set to 0", i, frame[0])
		}
	}
}
