package main

import (
	"fmt"
	"os"

	"github.com/braheezy/qoa"
	"github.com/ebitengine/oto/v3"
)

// soundPlayer plays short QOA cues. A nil *soundPlayer is valid and silent.
type soundPlayer struct {
	context *oto.Context
	cues    map[string][]int16
	// channel count per cue
	channels map[string]int
}

func newSoundPlayer() (*soundPlayer, error) {
	// Prepare an Oto context (this will use the default audio device)
	ctx, ready, err := oto.NewContext(
		&oto.NewContextOptions{
			SampleRate: 44100,
			// only 1 or 2 are supported by oto
			ChannelCount: 2,
			// QOA is always 16 bit
			Format: oto.FormatSignedInt16LE,
		})
	if err != nil {
		return nil, fmt.Errorf("oto.NewContext failed: %w", err)
	}

	// Wait for the audio context to be ready
	<-ready
	return &soundPlayer{
		context:  ctx,
		cues:     make(map[string][]int16),
		channels: make(map[string]int),
	}, nil
}

// load decodes the QOA file at path and keeps it under name.
func (s *soundPlayer) load(name, path string) error {
	if s == nil {
		return nil
	}
	qoaBytes, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading QOA file: %w", err)
	}
	qoaMetadata, qoaAudioData, err := qoa.Decode(qoaBytes)
	if err != nil {
		return fmt.Errorf("error decoding QOA data %s: %w", path, err)
	}
	s.cues[name] = qoaAudioData
	s.channels[name] = int(qoaMetadata.Channels)
	return nil
}

// play starts the named cue and returns immediately. Unknown names are ignored.
func (s *soundPlayer) play(name string) {
	if s == nil {
		return
	}
	data, ok := s.cues[name]
	if !ok {
		return
	}
	reader := qoa.NewReader(data, s.channels[name])
	player := s.context.NewPlayer(reader)
	player.Play()
}
