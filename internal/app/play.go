// SPDX-License-Identifier: EPL-2.0

package app

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/ik5/granulizer/eventloop"
	"github.com/ik5/granulizer/graph"
	"github.com/ik5/granulizer/output"
)

// play drives the engine on the audio device until ctx is done or the
// device or decode fails.
func (a *App) play(ctx context.Context, data []byte) error {
	g, err := a.newGraph()
	if err != nil {
		return err
	}
	out := observe(g)

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	var (
		mtx    sync.Mutex
		device io.Closer
	)

	// The device opens on the first grain request, with the pipeline.
	factory := func() (graph.AudioContext, error) {
		d, err := a.openDevice(g, output.Options{
			BufferSize: a.cfg.Output.Buffer,
			Logger:     a.logger,
		})
		if err != nil {
			err = fmt.Errorf("opening audio device: %w", err)
			cancel(err)
			return nil, err
		}

		mtx.Lock()
		device = d
		mtx.Unlock()

		return out, nil
	}

	loop := eventloop.New(eventloop.WithLogger(a.logger))
	if _, err := a.newEngine(data, factory, loop); err != nil {
		return err
	}

	go func() {
		select {
		case err := <-out.failed:
			cancel(fmt.Errorf("decoding %s: %w", a.cfg.Asset, err))
		case <-ctx.Done():
		}
	}()

	a.logger.Info("playing", "asset", a.cfg.Asset, "interval", a.cfg.Trigger.Interval)

	runErr := loop.Run(ctx)

	mtx.Lock()
	if device != nil {
		if err := device.Close(); err != nil {
			a.logger.Warn("closing device", "error", err)
		}
	}
	mtx.Unlock()

	if cause := context.Cause(ctx); cause != nil && cause != runErr {
		return cause
	}

	return ignoreCanceled(runErr)
}

func openDevice(g *graph.Context, opts output.Options) (io.Closer, error) {
	d, err := output.Open(g, opts)
	if err != nil {
		return nil, err
	}

	return d, nil
}
