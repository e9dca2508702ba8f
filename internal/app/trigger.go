// SPDX-License-Identifier: EPL-2.0

package app

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/ik5/granulizer/engine"
	"github.com/ik5/granulizer/eventloop"
)

// trigger requests a grain at a random position every interval, the first
// one immediately.
type trigger struct {
	engine      *engine.Engine
	loop        *eventloop.Loop
	rng         *rand.Rand
	interval    time.Duration
	maxPosition float64
	log         *slog.Logger
}

func newTrigger(e *engine.Engine, loop *eventloop.Loop, interval time.Duration, maxPosition float64, seed uint64, log *slog.Logger) *trigger {
	if seed == 0 {
		seed = rand.Uint64()
	}

	return &trigger{
		engine:      e,
		loop:        loop,
		rng:         rand.New(rand.NewPCG(seed, seed)),
		interval:    interval,
		maxPosition: maxPosition,
		log:         log,
	}
}

func (t *trigger) start() { t.loop.Post(t.tick) }

func (t *trigger) tick() {
	position := t.rng.Float64() * t.maxPosition
	if g := t.engine.PlayGrain(position); g != nil {
		t.log.Debug("grain", "id", g.ID, "position", g.Position, "start", g.Start)
	}

	t.loop.After(t.interval, t.tick)
}
