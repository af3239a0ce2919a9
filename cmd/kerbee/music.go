package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	log "github.com/sirupsen/logrus"
)

// PlayMusic loops the mp3 at file until the process exits. volume is in powers of two,
// 0 plays the file unchanged.
func PlayMusic(file string, volume float64) error {
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("opening music: %w", err)
	}
	streamer, format, err := mp3.Decode(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("decoding %s: %w", file, err)
	}

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Millisecond*100)); err != nil {
		streamer.Close()
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(&effects.Volume{
		Streamer: beep.Loop(-1, streamer),
		Base:     2,
		Volume:   volume,
	})
	log.WithFields(log.Fields{"file": file, "rate": format.SampleRate}).Info("Playing music")
	return nil
}
