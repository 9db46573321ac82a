package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Ed-Visinheski/WaveController/internal/config"
	"github.com/Ed-Visinheski/WaveController/internal/game"
	"github.com/Ed-Visinheski/WaveController/internal/remote"
	"github.com/Ed-Visinheski/WaveController/internal/synth"
)

func main() {
	params := synth.NewParams(440, 0, 0.3)
	ring := synth.NewRing(config.WaveSamples)
	osc := synth.NewSaw(params, ring, config.SampleRate, config.VisualDownsample)

	if err := speaker.Init(beep.SampleRate(config.SampleRate), config.FramesPerBuffer); err != nil {
		log.Fatalf("audio init failed: %v", err)
	}
	speaker.Play(osc)

	var pointer remote.Pointer
	listener, err := remote.Listen(config.RemotePort, &pointer)
	if err != nil {
		log.Fatalf("hand tracker listener failed: %v", err)
	}
	defer listener.Close()

	fmt.Println("Sawtooth wave generator with interactive knobs!")
	fmt.Println("Drag knobs (mouse or hand tracker) to adjust parameters:")
	fmt.Println("- Frequency: 50-2000 Hz")
	fmt.Println("- Phase: 0-1 (phase offset)")
	fmt.Println("- Amplitude: 0-1 (volume)")
	fmt.Println("Press ESC or close window to exit")

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Sawtooth Wave Generator with Controls")

	if err := ebiten.RunGame(game.New(params, ring, &pointer)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
