// Package scheduler drives the arrival-notification poll loop as a delivery,
// next to the HTTP server in the application lifecycle.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"bustracker/config"
	"bustracker/internal/delivery"
	"bustracker/internal/domain/service"
	"bustracker/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var (
	// ErrMissingCredential is returned by Start when the schedule feed client
	// is absent, which means no API key was configured
	ErrMissingCredential = errors.New("schedule feed credential is not configured")
	// ErrMissingMessenger is returned by Start when no push messaging client
	// is configured
	ErrMissingMessenger = errors.New("push messaging client is not configured")
)

// Poller runs poll cycles at a fixed interval from a single goroutine, so
// cycles never overlap. A cycle that outlives the interval delays the next
// tick's cycle instead of racing it.
type Poller struct {
	poller   usecase.PollerUsecase
	schedule service.ScheduleService
	notifier service.NotificationService
	cfg      *config.Config
	logger   *slog.Logger

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// PollerParams holds dependencies for the poll scheduler
type PollerParams struct {
	fx.In

	Lc       fx.Lifecycle
	Poller   usecase.PollerUsecase
	Schedule service.ScheduleService     `optional:"true"`
	Notifier service.NotificationService `optional:"true"`
	Cfg      *config.Config
	Logger   *slog.Logger
}

// NewPoller creates the poll scheduler delivery
func NewPoller(params PollerParams) (delivery.Delivery, error) {
	p := &Poller{
		poller:   params.Poller,
		schedule: params.Schedule,
		notifier: params.Notifier,
		cfg:      params.Cfg,
		logger:   params.Logger,
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			p.Stop()
			return nil
		},
	})

	return p, nil
}

// Serve starts the poll loop and blocks until Stop is called
func (p *Poller) Serve(ctx context.Context) error {
	if err := p.Start(ctx); err != nil {
		return err
	}

	p.mu.Lock()
	done := p.doneCh
	p.mu.Unlock()

	<-done
	return nil
}

// Start begins the poll loop. The first cycle runs immediately, subsequent
// cycles on the configured interval. Calling Start on a running poller is a
// no-op.
func (p *Poller) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running {
		p.logger.Warn("poll scheduler already running, ignoring start")
		return nil
	}

	if p.schedule == nil {
		return errors.WithStack(ErrMissingCredential)
	}
	if p.notifier == nil {
		return errors.WithStack(ErrMissingMessenger)
	}

	p.running = true
	p.stopCh = make(chan struct{})
	p.doneCh = make(chan struct{})

	go p.run(ctx, p.stopCh, p.doneCh)

	p.logger.Info("poll scheduler started",
		slog.Duration("interval", p.cfg.Poller.Interval),
	)

	return nil
}

// Stop halts the loop. An in-flight cycle completes before the loop exits;
// Stop waits for that.
func (p *Poller) Stop() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.running = false
	close(p.stopCh)
	done := p.doneCh
	p.mu.Unlock()

	<-done
	p.logger.Info("poll scheduler stopped")
}

// IsRunning reports whether the loop is active.
func (p *Poller) IsRunning() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.running
}

func (p *Poller) run(ctx context.Context, stopCh, doneCh chan struct{}) {
	defer close(doneCh)

	p.runCycle(ctx)

	ticker := time.NewTicker(p.cfg.Poller.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.runCycle(ctx)
		}
	}
}

// runCycle executes one cycle and absorbs its error. The loop is the
// outermost boundary and never terminates on a failed cycle.
func (p *Poller) runCycle(ctx context.Context) {
	if _, err := p.poller.RunCycle(ctx, time.Now()); err != nil {
		p.logger.Error("poll cycle failed",
			slog.Any("error", err),
		)
	}
}
