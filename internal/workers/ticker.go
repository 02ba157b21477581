// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/code-sharing-box/internal/logger"
)

// tickerWorker calls tick every interval until stopped. An interval of zero
// or less disables the worker: Run does nothing.
type tickerWorker struct {
	name     string
	interval time.Duration
	tick     func(ctx context.Context)

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

func newTickerWorker(name string, interval time.Duration, tick func(ctx context.Context), logger *logger.Logger) *tickerWorker {
	return &tickerWorker{
		name:     name,
		interval: interval,
		tick:     tick,
		logger:   logger,
	}
}

// Run stops any previous run, then launches the ticker goroutine.
func (w *tickerWorker) Run(ctx context.Context) {
	if w.interval <= 0 {
		w.logger.Debug().Str("worker", w.name).Msg("worker disabled")
		return
	}

	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	w.logger.Info().Str("worker", w.name).Dur("interval", w.interval).Msg("worker started")

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				w.tick(jobCtx)
			}
		}
	}()
}

func (w *tickerWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
