// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"
)

type viewRequest struct {
	gen  uint64
	xMin float64
	xMax float64
}

// Dispatcher decimates viewport requests on a background goroutine with
// last-request-wins semantics.
type Dispatcher struct {
	engine  *Engine
	pending chan viewRequest
	latest  atomic.Uint64

	published atomic.Uint64
	dropped   atomic.Uint64
}

func NewDispatcher(e *Engine) *Dispatcher {
	return &Dispatcher{
		engine:  e,
		pending: make(chan viewRequest, 1),
	}
}

// RequestViewport queues [xMin, xMax], replacing any request not yet picked
// up by Run. It never blocks.
func (d *Dispatcher) RequestViewport(xMin, xMax float64) {
	req := viewRequest{gen: d.latest.Add(1), xMin: xMin, xMax: xMax}

	for {
		select {
		case d.pending <- req:
			return
		default:
		}

		select {
		case old := <-d.pending:
			if old.gen > req.gen {
				req = old
			}
			d.dropped.Add(1)
		default:
		}
	}
}

// Run serves requests until ctx is done.
func (d *Dispatcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case req := <-d.pending:
			d.handle(req)
		}
	}
}

// Stats reports how many requests were published and how many were dropped.
func (d *Dispatcher) Stats() (published, dropped uint64) {
	return d.published.Load(), d.dropped.Load()
}

func (d *Dispatcher) handle(req viewRequest) {
	e := d.engine

	if req.gen != d.latest.Load() {
		d.dropped.Add(1)
		return
	}

	e.mu.Lock()
	wave, view := e.wave, e.view
	e.mu.Unlock()

	p, ok := e.plan(wave, view, req.xMin, req.xMax)
	if !ok {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if req.gen != d.latest.Load() {
		e.logger.Debug("viewport request superseded", zap.Uint64("generation", req.gen))
		d.dropped.Add(1)
		return
	}

	if e.apply(p) {
		d.published.Add(1)
	} else {
		d.dropped.Add(1)
	}
}
