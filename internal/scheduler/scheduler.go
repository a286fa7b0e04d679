// Package scheduler periodically enqueues sync and feed generation jobs for
// every active shop, staggering publishes so the shops' external APIs are not
// hit all at once.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/MichalMitros/catalog-feed-sync/internal/platform/models"
	"github.com/MichalMitros/catalog-feed-sync/pkg/v1/jobs"
	"github.com/rs/zerolog"
)

//go:generate mockery --name Storage --filename storage.go
//go:generate mockery --name Commander --filename commander.go

const defaultFeedDelay = 5 * time.Minute

// Storage is shops storage.
type Storage interface {
	// ListActiveShops returns all shops which are not deleted.
	ListActiveShops(ctx context.Context) ([]models.Shop, error)
}

// Commander sends job commands.
type Commander interface {
	SendSyncCommand(ctx context.Context, shopID int, mode string, itemID string) error
	SendFeedCommand(ctx context.Context, shopID int) error
}

// Option is custom configuration of Scheduler.
type Option func(s *Scheduler)

// Scheduler enqueues periodic jobs for active shops.
type Scheduler struct {
	storage   Storage
	commander Commander
	interval  time.Duration
	stagger   time.Duration
	feedDelay time.Duration
	logger    zerolog.Logger
}

// NewScheduler returns new Scheduler publishing one scheduling pass every
// interval and waiting stagger between shops within a pass.
func NewScheduler(storage Storage, commander Commander, interval, stagger time.Duration, ops ...Option) *Scheduler {
	sch := &Scheduler{
		storage:   storage,
		commander: commander,
		interval:  interval,
		stagger:   stagger,
		feedDelay: defaultFeedDelay,
		logger:    zerolog.Nop(),
	}

	for _, op := range ops {
		op(sch)
	}

	return sch
}

// Run runs scheduling passes until the context is closed. The first pass
// starts immediately.
func (s *Scheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		if err := s.Schedule(ctx); err != nil {
			s.logger.Error().
				Err(err).
				Msg("can't run scheduling pass")
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Schedule runs one scheduling pass: staggered incremental sync jobs for
// every active shop, then, after a delay, staggered feed generation jobs for
// the shops whose sync was enqueued. A single shop's publish failure never
// blocks the rest of the pass.
func (s *Scheduler) Schedule(ctx context.Context) error {
	shops, err := s.storage.ListActiveShops(ctx)
	if err != nil {
		return fmt.Errorf("can't list active shops: %w", err)
	}

	synced := make([]models.Shop, 0, len(shops))
	for ix := range shops {
		if ix > 0 {
			if err := wait(ctx, s.stagger); err != nil {
				return err
			}
		}

		if err := s.commander.SendSyncCommand(ctx, shops[ix].ID, jobs.ModeIncremental, ""); err != nil {
			s.logger.Error().
				Err(err).
				Int("shopId", shops[ix].ID).
				Msg("can't schedule sync")
			continue
		}

		synced = append(synced, shops[ix])
	}

	// Feed generation trails the syncs so it picks up the fresh catalogs.
	if err := wait(ctx, s.feedDelay); err != nil {
		return err
	}

	for ix := range synced {
		if ix > 0 {
			if err := wait(ctx, s.stagger); err != nil {
				return err
			}
		}

		if err := s.commander.SendFeedCommand(ctx, synced[ix].ID); err != nil {
			s.logger.Error().
				Err(err).
				Int("shopId", synced[ix].ID).
				Msg("can't schedule feed generation")
		}
	}

	return nil
}

func wait(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// WithFeedDelay sets delay between a shop's sync and feed generation jobs.
func WithFeedDelay(delay time.Duration) Option {
	return func(s *Scheduler) {
		s.feedDelay = delay
	}
}

// WithLogger sets Scheduler's logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Scheduler) {
		s.logger = logger
	}
}
