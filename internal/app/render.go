// SPDX-License-Identifier: EPL-2.0

package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/ik5/granulizer/engine"
	"github.com/ik5/granulizer/eventloop"
	"github.com/ik5/granulizer/formats/wav"
	"github.com/ik5/granulizer/graph"
)

// renderBlocks is the number of render steps per second of output.
const renderBlocks = 100

// render writes opts.Duration of the grain cloud to opts.RenderPath. The
// event loop runs on a mock clock that advances with the rendered frames,
// so the result does not depend on wall time.
func (a *App) render(ctx context.Context, data []byte) error {
	g, err := a.newGraph()
	if err != nil {
		return err
	}
	out := observe(g)

	mock := clock.NewMock()
	loop := eventloop.New(eventloop.WithClock(mock), eventloop.WithLogger(a.logger))

	e, err := a.newEngine(data, func() (graph.AudioContext, error) { return out, nil }, loop)
	if err != nil {
		return err
	}

	f, err := os.Create(a.opts.RenderPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", a.opts.RenderPath, err)
	}
	defer f.Close()

	rate, channels := g.SampleRate(), g.Channels()
	enc := wav.NewEncoder(f, rate, channels)

	total := int(a.opts.Duration.Seconds() * float64(rate))
	block := max(rate/renderBlocks, 1)
	buf := make([]float32, block*channels)

	a.logger.Info("rendering",
		"asset", a.cfg.Asset,
		"path", a.opts.RenderPath,
		"duration", a.opts.Duration,
	)

	for done := 0; done < total; {
		loop.RunDue()

		if err := a.awaitDecode(ctx, e, out); err != nil {
			return err
		}

		n := min(block, total-done)
		pcm := buf[:n*channels]
		if err := g.Render(pcm); err != nil {
			return err
		}
		if err := enc.Write(pcm); err != nil {
			return err
		}

		done += n
		mock.Add(time.Duration(n) * time.Second / time.Duration(rate))
	}

	if err := enc.Close(); err != nil {
		return err
	}

	a.logger.Info("render complete",
		"path", a.opts.RenderPath,
		"frames", enc.Frames(),
		"grains", e.Stats().Scheduled,
	)

	return nil
}

// awaitDecode blocks while the engine is decoding, so no rendered time is
// lost to it.
func (a *App) awaitDecode(ctx context.Context, e *engine.Engine, out *observedContext) error {
	if e.Phase() != engine.Initializing {
		return nil
	}

	select {
	case <-e.Ready():
		return nil
	case err := <-out.failed:
		return fmt.Errorf("decoding %s: %w", a.cfg.Asset, err)
	case <-ctx.Done():
		return ctx.Err()
	}
}
