// Package health tracks backend reachability. The probe only flips a
// connectivity flag; it never touches domain data.
package health

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/lamdoan/classdesk/internal/logger"
	"github.com/lamdoan/classdesk/internal/model"
)

// Probe pings the backend health endpoint on a fixed interval and
// exposes the last known reachability.
type Probe struct {
	api      model.HealthAPI
	interval time.Duration
	logger   *logger.Logger
	online   atomic.Bool
}

// NewProbe creates a probe. It starts pessimistic: the backend is
// considered offline until the first successful check.
func NewProbe(api model.HealthAPI, interval time.Duration, logger *logger.Logger) *Probe {
	return &Probe{
		api:      api,
		interval: interval,
		logger:   logger,
	}
}

// Online reports the result of the most recent check.
func (p *Probe) Online() bool {
	return p.online.Load()
}

// Check pings the backend once and updates the connectivity flag.
func (p *Probe) Check(ctx context.Context) bool {
	err := p.api.Ping(ctx)
	online := err == nil

	if was := p.online.Swap(online); was != online {
		if online {
			p.logger.Info("Health probe: backend reachable")
		} else {
			p.logger.Info("Health probe: backend unreachable, switching to demo data",
				"error", err.Error())
		}
	}

	return online
}

// Run checks immediately and then on every interval tick until the
// context is cancelled.
func (p *Probe) Run(ctx context.Context) {
	p.Check(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.Check(ctx)
		}
	}
}
