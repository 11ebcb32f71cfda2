package audio

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/logger"
)

// pollInterval is how often the loop checks whether a pass has finished.
const pollInterval = 10 * time.Millisecond

// Backend turns PCM samples into sound.
type Backend interface {
	// Loop plays pcm repeatedly until the returned Playback is stopped.
	Loop(ctx context.Context, format Format, pcm []byte) (Playback, error)
}

// Playback is a running tone.
type Playback interface {
	Stop()
}

// Oto plays samples through the system audio device.
// oto allows only one context per process, so the first format wins.
type Oto struct {
	once    sync.Once
	context *oto.Context
	format  Format
	initErr error
}

// NewOto returns a backend that opens the audio device on first use.
func NewOto() *Oto {
	return new(Oto)
}

// Loop starts a looping playback.
func (o *Oto) Loop(ctx context.Context, format Format, pcm []byte) (Playback, error) {
	if err := o.init(format); err != nil {
		return nil, err
	}

	if format != o.format {
		return nil, fmt.Errorf("audio device is open with %+v, tone is %+v: %w",
			o.format, format, domain.ErrSinkFailure)
	}

	p := &otoPlayback{
		stopChan: make(chan struct{}),
	}

	go p.playLoop(logger.WithName(ctx, "oto"), o.context, pcm)

	return p, nil
}

func (o *Oto) init(format Format) error {
	o.once.Do(func() {
		options := &oto.NewContextOptions{
			SampleRate:   format.SampleRate,
			ChannelCount: format.Channels,
			Format:       oto.FormatSignedInt16LE,
		}

		otoContext, readyChan, err := oto.NewContext(options)
		if err != nil {
			o.initErr = fmt.Errorf("open audio device: %w: %w", domain.ErrCollaboratorUnavailable, err)

			return
		}

		// Wait for the hardware audio devices to be ready.
		<-readyChan

		o.context = otoContext
		o.format = format
	})

	return o.initErr
}

type otoPlayback struct {
	stopChan chan struct{}
	stopOnce sync.Once
}

func (p *otoPlayback) playLoop(ctx context.Context, otoContext *oto.Context, pcm []byte) {
	for {
		player := otoContext.NewPlayer(bytes.NewReader(pcm))
		player.Play()

		for player.IsPlaying() {
			select {
			case <-p.stopChan:
				player.Pause()
				_ = player.Close()

				logger.Debug(ctx, "Audio player closed")

				return
			case <-time.After(pollInterval):
			}
		}

		if err := player.Close(); err != nil {
			logger.WarnKV(ctx, "Failed to close audio player", "error", err)
		}

		select {
		case <-p.stopChan:
			return
		default:
		}
	}
}

// Stop ends the loop. It is safe to call more than once.
func (p *otoPlayback) Stop() {
	p.stopOnce.Do(func() {
		close(p.stopChan)
	})
}
