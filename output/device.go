// SPDX-License-Identifier: EPL-2.0

package output

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/ik5/granulizer/graph"
)

// oto allows a single context per process.
var (
	otoOnce    sync.Once
	otoCtx     *oto.Context
	otoInitErr error
	otoRate    int
	otoCh      int
)

func getContext(sampleRate, channels int, buffer time.Duration) (*oto.Context, error) {
	otoOnce.Do(func() {
		var ready chan struct{}
		otoCtx, ready, otoInitErr = oto.NewContext(&oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: channels,
			Format:       oto.FormatFloat32LE,
			BufferSize:   buffer,
		})
		if otoInitErr == nil {
			<-ready
			otoRate, otoCh = sampleRate, channels
		}
	})

	if otoInitErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrDevice, otoInitErr)
	}

	if otoRate != sampleRate || otoCh != channels {
		return nil, fmt.Errorf("%w: have %d Hz/%d ch, want %d Hz/%d ch",
			ErrFormatMismatch, otoRate, otoCh, sampleRate, channels)
	}

	return otoCtx, nil
}

type Options struct {
	// BufferSize is the device buffer; zero lets oto choose.
	BufferSize time.Duration
	Logger     *slog.Logger
}

// Device plays a graph until closed.
type Device struct {
	player *oto.Player
	log    *slog.Logger
}

// Open starts playing g on the default audio device.
func Open(g *graph.Context, opts Options) (*Device, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	ctx, err := getContext(g.SampleRate(), g.Channels(), opts.BufferSize)
	if err != nil {
		return nil, err
	}

	d := &Device{
		player: ctx.NewPlayer(NewStream(g)),
		log:    opts.Logger.With("component", "output"),
	}
	d.player.Play()

	d.log.Info("audio device open",
		"sample_rate", g.SampleRate(),
		"channels", g.Channels(),
		"buffer", opts.BufferSize,
	)

	return d, nil
}

// Close stops playback.
func (d *Device) Close() error {
	d.player.Pause()
	if err := d.player.Close(); err != nil {
		return fmt.Errorf("close player: %w", err)
	}

	d.log.Info("audio device closed")

	return nil
}
