package config

const (
	WindowWidth  = 1000
	WindowHeight = 600

	// Audio parameters
	SampleRate      = 44100
	FramesPerBuffer = 256

	// Visualization feed: ring capacity and how often the audio callback
	// contributes a sample to it (1 in VisualDownsample frames).
	WaveSamples      = 800
	VisualDownsample = 4

	// Knob geometry and interaction
	KnobRadius      = 30
	KnobPanelHeight = 120
	// Pixels of vertical drag that span the full min..max range of a knob.
	DragRangePixels = 100

	// Remote pointer (hand tracker) listener
	RemotePort       = 5005
	HandCursorRadius = 25
)
