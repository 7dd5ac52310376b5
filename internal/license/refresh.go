package license

import (
	"context"
	"time"

	"github.com/WojtekL7/claude-voice-assistant/internal/logger"
)

const defaultRefreshInterval = 6 * time.Hour

// Refresher revalidates the license in the background so expiry or a
// server-side revocation shows up without restarting the app.
type Refresher struct {
	manager  *Manager
	log      *logger.Logger
	interval time.Duration
	onChange func(Status)
}

// RefresherOption configures a Refresher.
type RefresherOption func(*Refresher)

// WithRefreshInterval sets how often the license is revalidated.
func WithRefreshInterval(d time.Duration) RefresherOption {
	return func(r *Refresher) { r.interval = d }
}

// WithOnChange registers a callback invoked when the status changes
// between refreshes. Called from the refresher goroutine.
func WithOnChange(fn func(Status)) RefresherOption {
	return func(r *Refresher) { r.onChange = fn }
}

// NewRefresher builds a background revalidator for the manager.
func NewRefresher(m *Manager, log *logger.Logger, opts ...RefresherOption) *Refresher {
	r := &Refresher{
		manager:  m,
		log:      log,
		interval: defaultRefreshInterval,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run revalidates on a ticker until ctx is cancelled. Blocks; run it
// in a goroutine.
func (r *Refresher) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.log.Info("license refresher started (interval=%s)", r.interval)
	last := r.manager.Status()

	for {
		select {
		case <-ctx.Done():
			r.log.Info("license refresher stopped")
			return
		case <-ticker.C:
			status := r.manager.Refresh(ctx)
			if status == last {
				continue
			}
			r.log.Info("license status changed: %s -> %s", last, status)
			last = status
			if r.onChange != nil {
				r.onChange(status)
			}
		}
	}
}
