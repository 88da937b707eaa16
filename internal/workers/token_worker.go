package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/siterelay/internal/logger"
	"github.com/MKhiriev/siterelay/internal/upstream"
)

// tokenWorker proactively refreshes the cart platform's cached access token
// on an interval, so inbound /foxycart requests rarely pay the token
// round-trip themselves. The checkout client still refreshes lazily when a
// request finds the cached token stale; this worker only keeps it warm.
type tokenWorker struct {
	ctx      context.Context
	checkout upstream.CheckoutClient
	interval time.Duration

	logger *logger.Logger
}

// NewTokenWorker constructs a [Worker] that refreshes the checkout token
// every interval until ctx is cancelled.
func NewTokenWorker(ctx context.Context, checkout upstream.CheckoutClient, interval time.Duration, logger *logger.Logger) Worker {
	return &tokenWorker{
		ctx:      ctx,
		checkout: checkout,
		interval: interval,
		logger:   logger,
	}
}

// Run implements [Worker]. It blocks until the worker's context is cancelled.
// A failed refresh is logged and retried on the next tick; requests fall back
// to the lazy refresh path in the meantime.
func (w *tokenWorker) Run() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			w.logger.Info().Msg("token worker stopped")
			return
		case <-ticker.C:
			if err := w.checkout.Refresh(w.ctx); err != nil {
				w.logger.Error().Err(err).Msg("scheduled token refresh failed")
			}
		}
	}
}
