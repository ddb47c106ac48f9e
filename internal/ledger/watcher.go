package ledger

import (
	"context"
	"time"

	"resto-pos/internal/model"

	"github.com/rs/zerolog"
)

// DefaultPollInterval matches the staff order-picking view's refresh rate.
const DefaultPollInterval = 10 * time.Second

// Watcher re-reads the ledger on a fixed interval so a staff view can
// observe orders placed from other terminals sharing the durable store. It
// is plain read-only polling, not a subscription.
type Watcher struct {
	ledger   *Ledger
	interval time.Duration
	logger   zerolog.Logger
}

// NewWatcher creates a watcher over the ledger. A non-positive interval
// falls back to DefaultPollInterval.
func NewWatcher(l *Ledger, interval time.Duration, logger zerolog.Logger) *Watcher {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Watcher{
		ledger:   l,
		interval: interval,
		logger:   logger.With().Str("service", "ledger_watcher").Logger(),
	}
}

// Run delivers a ledger snapshot to fn immediately and then once per
// interval until ctx is cancelled. Read failures are logged and the next
// tick retried.
func (w *Watcher) Run(ctx context.Context, fn func([]model.Order)) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.poll(ctx, fn)
	for {
		select {
		case <-ctx.Done():
			w.logger.Debug().Msg("watcher stopped")
			return
		case <-ticker.C:
			w.poll(ctx, fn)
		}
	}
}

func (w *Watcher) poll(ctx context.Context, fn func([]model.Order)) {
	orders, err := w.ledger.List(ctx)
	if err != nil {
		w.logger.Error().Err(err).Msg("failed to refresh orders")
		return
	}
	fn(orders)
}
