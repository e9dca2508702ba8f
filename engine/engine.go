// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"log/slog"
	"sync"

	"github.com/ik5/granulizer/audio"
	"github.com/ik5/granulizer/graph"
)

// Stats are counters for observation only; nothing is capped by them.
type Stats struct {
	// Scheduled grains since creation.
	Scheduled uint64
	// Dropped requests that produced no grain.
	Dropped uint64
	// Active grains scheduled and not yet cleaned up.
	Active int
}

// Engine is a granular synthesizer over one encoded asset. All methods are
// safe for concurrent use.
type Engine struct {
	mtx   sync.Mutex
	state State
	raw   []byte
	ready chan struct{}
	stats Stats
	seq   uint64

	newOutput OutputFactory
	loop      Deferrer
	clock     ClockSource
	volume    float64
	hasVolume bool
	log       *slog.Logger

	output graph.AudioContext
	master graph.GainNode
}

// New creates an engine for the encoded asset raw. Nothing is decoded and
// no output is opened until the first PlayGrain.
func New(raw []byte, newOutput OutputFactory, loop Deferrer, opts ...Option) (*Engine, error) {
	if newOutput == nil {
		return nil, ErrNoOutput
	}

	if loop == nil {
		return nil, ErrNoLoop
	}

	e := &Engine{
		raw:       raw,
		ready:     make(chan struct{}),
		newOutput: newOutput,
		loop:      loop,
		log:       slog.Default(),
	}

	for _, opt := range opts {
		opt(e)
	}

	e.log = e.log.With("component", "engine")

	return e, nil
}

// PlayGrain requests one grain starting position seconds into the asset.
// It returns the scheduled grain, or nil when the request produced none:
// the first call only starts initialization, calls during initialization
// are dropped, and a grain the output rejects is discarded.
func (e *Engine) PlayGrain(position float64) *Grain {
	e.mtx.Lock()

	switch e.state.Phase {
	case Uninitialized:
		e.state = Transition(e.state, EventPlayRequested{})
		e.stats.Dropped++
		raw := e.raw
		e.raw = nil
		e.mtx.Unlock()

		// Opening the output can block on the device, and the output may
		// answer the decode synchronously, so both run outside the lock.
		// Requests arriving meanwhile see Initializing and are dropped.
		e.initialize(raw)

		return nil

	case Initializing:
		e.stats.Dropped++
		e.mtx.Unlock()
		e.log.Debug("grain dropped while initializing", "position", position)

		return nil
	}

	defer e.mtx.Unlock()

	return e.schedule(position)
}

// initialize builds the output pipeline and starts decoding raw. When the
// pipeline cannot be built the engine stays Initializing.
func (e *Engine) initialize(raw []byte) {
	out, err := e.newOutput()
	if err != nil {
		e.log.Error("unable to open output", "error", err)
		return
	}

	master := out.NewGain()
	if e.hasVolume {
		master.Gain().SetValue(e.volume)
	}

	if err := master.Connect(out.Destination()); err != nil {
		e.log.Error("unable to connect master gain", "error", err)
		return
	}

	e.mtx.Lock()
	e.output = out
	e.master = master
	if e.clock == nil {
		e.clock = contextClock{ctx: out}
	}
	e.mtx.Unlock()

	e.log.Info("decoding asset", "bytes", len(raw), "sample_rate", out.SampleRate())
	out.DecodeAudioData(raw, e.decoded, e.decodeFailed)
}

func (e *Engine) decoded(buf *audio.Buffer) {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	prev := e.state.Phase
	e.state = Transition(e.state, EventDecoded{Buffer: buf})
	if prev == Ready || e.state.Phase != Ready {
		return
	}

	close(e.ready)
	e.log.Info("engine ready",
		"frames", buf.Frames(),
		"channels", buf.Channels(),
		"duration", buf.Duration(),
	)
}

func (e *Engine) decodeFailed(err error) {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	e.state = Transition(e.state, EventDecodeFailed{Err: err})
	e.log.Warn("decode failed, grains will not play", "error", err)
}

// schedule builds and starts one grain. Callers hold e.mtx.
func (e *Engine) schedule(position float64) *Grain {
	now := e.clock.Now()
	src := e.output.NewBufferSource(e.state.Buffer)
	gain := e.output.NewGain()

	discard := func(msg string, err error) *Grain {
		src.Disconnect()
		gain.Disconnect()
		e.stats.Dropped++
		e.log.Debug(msg, "position", position, "error", err)

		return nil
	}

	if err := src.Connect(gain); err != nil {
		return discard("unable to connect grain source", err)
	}

	if err := gain.Connect(e.master); err != nil {
		return discard("unable to connect grain gain", err)
	}

	if err := src.Start(now, position, Duration); err != nil {
		return discard("grain rejected", err)
	}

	envelope(gain.Gain(), now)

	stop := now + Duration + StopPadding
	if err := src.Stop(stop); err != nil {
		e.log.Debug("unable to schedule grain stop", "error", err)
	}

	e.seq++
	e.stats.Scheduled++
	e.stats.Active++

	g := &Grain{
		ID:       e.seq,
		Position: position,
		Start:    now,
		Duration: Duration,
		Stop:     stop,
		Cleanup:  CleanupDelay,
		source:   src,
		gain:     gain,
	}

	e.loop.After(CleanupDelay, func() {
		gain.Disconnect()

		e.mtx.Lock()
		e.stats.Active--
		e.mtx.Unlock()
	})

	return g
}

func (e *Engine) Phase() Phase {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	return e.state.Phase
}

// State returns a copy of the lifecycle state.
func (e *Engine) State() State {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	return e.state
}

// Ready is closed when the asset has been decoded.
func (e *Engine) Ready() <-chan struct{} { return e.ready }

// Buffer is the decoded asset, nil until Ready.
func (e *Engine) Buffer() *audio.Buffer {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	return e.state.Buffer
}

func (e *Engine) Stats() Stats {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	return e.stats
}
