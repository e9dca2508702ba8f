// SPDX-License-Identifier: EPL-2.0

package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/ik5/granulizer"
	"github.com/ik5/granulizer/config"
	"github.com/ik5/granulizer/engine"
	"github.com/ik5/granulizer/eventloop"
	"github.com/ik5/granulizer/graph"
	"github.com/ik5/granulizer/loader"
	"github.com/ik5/granulizer/output"
)

// App is one run of the program.
type App struct {
	opts   Options
	cfg    config.Config
	logger *slog.Logger
	loader *loader.Loader

	openDevice func(*graph.Context, output.Options) (io.Closer, error)
}

// New resolves the configuration and builds a logger writing to outW.
func New(outW io.Writer, opts Options) (*App, error) {
	cfg, err := opts.Resolve()
	if err != nil {
		return nil, err
	}

	logger := newLogger(cfg.Log.Level, cfg.Log.Format, outW)
	logger.Debug("configuration resolved", "config", cfg)

	return &App{
		opts:   opts,
		cfg:    cfg,
		logger: logger,
		loader: loader.New(loader.WithLogger(logger)),

		openDevice: openDevice,
	}, nil
}

// Config is the resolved configuration.
func (a *App) Config() config.Config { return a.cfg }

// Run plays until ctx is done, or renders offline when a render path was
// given.
func (a *App) Run(ctx context.Context) error {
	data, err := a.load(ctx)
	if err != nil {
		return err
	}

	if a.opts.RenderPath != "" {
		return a.render(ctx, data)
	}

	return a.play(ctx, data)
}

// load bridges the asynchronous loader to a blocking call.
func (a *App) load(ctx context.Context) ([]byte, error) {
	type result struct {
		data []byte
		err  error
	}

	done := make(chan result, 1)
	a.loader.Load(ctx, a.cfg.Asset,
		func(data []byte) { done <- result{data: data} },
		func(err error) { done <- result{err: err} },
	)

	select {
	case r := <-done:
		return r.data, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (a *App) newGraph() (*graph.Context, error) {
	return graph.NewContext(graph.Options{
		SampleRate: a.cfg.Output.SampleRate,
		Channels:   a.cfg.Output.Channels,
		Registry:   granulizer.NewRegistry(),
		Logger:     a.logger,
	})
}

func (a *App) newEngine(data []byte, out engine.OutputFactory, loop *eventloop.Loop) (*engine.Engine, error) {
	e, err := engine.New(data, out, loop,
		engine.WithMasterVolume(a.cfg.Output.Volume),
		engine.WithLogger(a.logger),
	)
	if err != nil {
		return nil, fmt.Errorf("creating engine: %w", err)
	}

	newTrigger(e, loop,
		a.cfg.Trigger.Interval,
		a.cfg.Trigger.MaxPosition,
		a.cfg.Trigger.Seed,
		a.logger,
	).start()

	return e, nil
}

func ignoreCanceled(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}
