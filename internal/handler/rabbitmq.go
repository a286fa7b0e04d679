// Package handler routes queued jobs to their processors and owns the retry
// policy: transient failures are republished with backoff, statuses flip to
// FAILED only when the final attempt is exhausted.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MichalMitros/catalog-feed-sync/internal/feed"
	"github.com/MichalMitros/catalog-feed-sync/internal/platform"
	"github.com/MichalMitros/catalog-feed-sync/internal/platform/metrics"
	"github.com/MichalMitros/catalog-feed-sync/internal/platform/models"
	"github.com/MichalMitros/catalog-feed-sync/internal/platform/rabbitmq"
	"github.com/MichalMitros/catalog-feed-sync/internal/reprocess"
	"github.com/MichalMitros/catalog-feed-sync/internal/syncer"
	"github.com/MichalMitros/catalog-feed-sync/pkg/v1/jobs"
	"github.com/rs/zerolog"
)

//go:generate mockery --name Syncer --filename syncer.go
//go:generate mockery --name FeedGenerator --filename feed_generator.go
//go:generate mockery --name Reprocessor --filename reprocessor.go
//go:generate mockery --name StatusStore --filename status_store.go
//go:generate mockery --name Commander --filename commander.go

const defaultRetryDelay = 30 * time.Second

// Maximum delivery attempts per job type.
const (
	syncMaxAttempts      = 3
	feedMaxAttempts      = 3
	reprocessMaxAttempts = 2
)

// Syncer synchronizes shop catalogs.
type Syncer interface {
	Sync(ctx context.Context, shopID int, mode syncer.Mode, itemID string) (syncer.Result, error)
}

// FeedGenerator generates feed artifacts and retires expired ones.
type FeedGenerator interface {
	Generate(ctx context.Context, shopID int) (feed.Result, error)
	Retire(ctx context.Context, shopID int) (int, error)
}

// Reprocessor re-derives stored item attributes.
type Reprocessor interface {
	Reprocess(ctx context.Context, shopID int, changedFields []string, overridesToClear []string) (reprocess.Result, error)
}

// StatusStore updates shop job statuses.
type StatusStore interface {
	SetSyncStatus(ctx context.Context, shopID int, status string) error
	SetFeedStatus(ctx context.Context, shopID int, status string) error
}

// Commander republishes job commands.
type Commander interface {
	SendCommand(ctx context.Context, cmd jobs.Command) error
}

// Option is custom configuration of RMQHandler.
type Option func(h *RMQHandler)

// RMQHandler handles RMQ job messages.
type RMQHandler struct {
	rmq         *rabbitmq.RabbitMQ
	syncer      Syncer
	generator   FeedGenerator
	reprocessor Reprocessor
	statuses    StatusStore
	commander   Commander
	metrics     *metrics.Metrics
	logger      *zerolog.Logger
	retryDelay  time.Duration
}

// NewHandler returns new RMQHandler.
func NewHandler(
	rmq *rabbitmq.RabbitMQ,
	syn Syncer,
	generator FeedGenerator,
	reprocessor Reprocessor,
	statuses StatusStore,
	commander Commander,
	mtr *metrics.Metrics,
	logger *zerolog.Logger,
	ops ...Option,
) *RMQHandler {
	handler := &RMQHandler{
		rmq:         rmq,
		syncer:      syn,
		generator:   generator,
		reprocessor: reprocessor,
		statuses:    statuses,
		commander:   commander,
		metrics:     mtr,
		logger:      logger,
		retryDelay:  defaultRetryDelay,
	}

	for _, op := range ops {
		op(handler)
	}

	return handler
}

// Start starts consuming and handling job commands from RMQ.
func (h *RMQHandler) Start(ctx context.Context, queue string) error {
	errorsChan, err := h.rmq.Consume(ctx, queue, h.Handle)
	if err != nil {
		return err
	}

	go func() {
		for err := range errorsChan {
			h.logger.Error().
				Err(err).
				Msg("can't handle message")
		}
	}()

	return nil
}

// Handle handles one job message. Returned errors are final: either the
// message is malformed or every attempt is exhausted.
func (h *RMQHandler) Handle(ctx context.Context, message []byte) error {
	cmd, err := decodeMessage(message)
	if err != nil {
		return err
	}

	h.logger.Debug().
		Int("shopId", cmd.ShopID).
		Str("type", cmd.Type).
		Int("attempt", cmd.Attempt).
		Msg("job started")

	started := time.Now()
	status, err := h.process(ctx, cmd)
	h.metrics.ObserveJob(cmd.Type, status, time.Since(started).Seconds())

	if err == nil {
		h.logger.Debug().
			Int("shopId", cmd.ShopID).
			Str("type", cmd.Type).
			Str("status", status).
			Msg("job finished")
	}

	return err
}

// process runs the job and applies the retry policy. Returned status is the
// metrics label of the outcome.
func (h *RMQHandler) process(ctx context.Context, cmd *jobs.Command) (string, error) {
	var err error
	switch cmd.Type {
	case jobs.TypeSync:
		err = h.processSync(ctx, cmd)
	case jobs.TypeFeedGeneration:
		err = h.processFeed(ctx, cmd)
	case jobs.TypeReprocess:
		err = h.processReprocess(ctx, cmd)
	default:
		return metrics.StatusFailed, fmt.Errorf("unknown job type %q", cmd.Type)
	}

	if err == nil {
		return metrics.StatusOK, nil
	}

	if errors.Is(err, errSkipped) {
		return metrics.StatusSkipped, nil
	}

	return h.retryOrFail(ctx, cmd, err)
}

// errSkipped marks a clean no-op outcome, not a failure.
var errSkipped = errors.New("job skipped")

func (h *RMQHandler) processSync(ctx context.Context, cmd *jobs.Command) error {
	result, err := h.syncer.Sync(ctx, cmd.ShopID, syncer.Mode(cmd.Mode), cmd.ItemID)
	if errors.Is(err, platform.ErrAlreadyRunning) {
		h.logger.Debug().
			Int("shopId", cmd.ShopID).
			Msg("sync already running")
		return errSkipped
	}
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	h.metrics.ItemsSynced.Add(float64(result.Created + result.Updated))

	return nil
}

func (h *RMQHandler) processFeed(ctx context.Context, cmd *jobs.Command) error {
	result, err := h.generator.Generate(ctx, cmd.ShopID)
	if err != nil {
		return fmt.Errorf("feed generation failed: %w", err)
	}
	if result.Skipped {
		h.logger.Debug().
			Int("shopId", cmd.ShopID).
			Msg("shop awaits catalog reselection, feed kept")
		return errSkipped
	}

	if err := h.statuses.SetFeedStatus(ctx, cmd.ShopID, models.StatusCompleted); err != nil {
		return fmt.Errorf("can't set feed status: %w", err)
	}

	h.metrics.FeedItems.Add(float64(result.Eligible))

	// Retention runs piggybacked on generation. A failed cleanup pass is
	// retried on the next feed cycle and never fails the fresh feed.
	retired, err := h.generator.Retire(ctx, cmd.ShopID)
	if err != nil {
		h.logger.Warn().
			Err(err).
			Int("shopId", cmd.ShopID).
			Msg("can't retire expired snapshots")
		return nil
	}
	h.metrics.SnapshotsDeleted.Add(float64(retired))

	return nil
}

func (h *RMQHandler) processReprocess(ctx context.Context, cmd *jobs.Command) error {
	if _, err := h.reprocessor.Reprocess(ctx, cmd.ShopID, cmd.ChangedFields, cmd.OverridesToClear); err != nil {
		return fmt.Errorf("reprocessing failed: %w", err)
	}

	return nil
}

// retryOrFail republishes the job with the next attempt number, or flips the
// shop status to FAILED when attempts are exhausted.
func (h *RMQHandler) retryOrFail(ctx context.Context, cmd *jobs.Command, jobErr error) (string, error) {
	if cmd.Attempt >= maxAttempts(cmd.Type) {
		h.markFailed(ctx, cmd)
		return metrics.StatusFailed, fmt.Errorf("job failed after %d attempts: %w", cmd.Attempt, jobErr)
	}

	if err := h.wait(ctx, h.retryDelay<<(cmd.Attempt-1)); err != nil {
		return metrics.StatusFailed, fmt.Errorf("job interrupted: %w", jobErr)
	}

	retry := *cmd
	retry.Attempt++
	if err := h.commander.SendCommand(ctx, retry); err != nil {
		h.markFailed(ctx, cmd)
		return metrics.StatusFailed, fmt.Errorf("can't republish job: %w (job error: %w)", err, jobErr)
	}

	h.logger.Warn().
		Err(jobErr).
		Int("shopId", cmd.ShopID).
		Str("type", cmd.Type).
		Int("attempt", cmd.Attempt).
		Msg("job failed, retrying")

	return metrics.StatusRetried, nil
}

// markFailed flips the status owned by the job type. Reprocessing has no
// dedicated status.
func (h *RMQHandler) markFailed(ctx context.Context, cmd *jobs.Command) {
	var err error
	switch cmd.Type {
	case jobs.TypeSync:
		err = h.statuses.SetSyncStatus(ctx, cmd.ShopID, models.StatusFailed)
	case jobs.TypeFeedGeneration:
		err = h.statuses.SetFeedStatus(ctx, cmd.ShopID, models.StatusFailed)
	default:
		return
	}

	if err != nil {
		h.logger.Error().
			Err(err).
			Int("shopId", cmd.ShopID).
			Str("type", cmd.Type).
			Msg("can't mark job failed")
	}
}

func (h *RMQHandler) wait(ctx context.Context, delay time.Duration) error {
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

func maxAttempts(jobType string) int {
	switch jobType {
	case jobs.TypeSync:
		return syncMaxAttempts
	case jobs.TypeFeedGeneration:
		return feedMaxAttempts
	case jobs.TypeReprocess:
		return reprocessMaxAttempts
	default:
		return 1
	}
}

func decodeMessage(msg []byte) (*jobs.Command, error) {
	var cmd jobs.Command
	err := json.Unmarshal(msg, &cmd)
	if err != nil {
		return nil, fmt.Errorf("can't decode job command: %w", err)
	}
	if cmd.Attempt < 1 {
		cmd.Attempt = 1
	}

	return &cmd, err
}

// WithRetryDelay sets base delay before a failed job is republished.
// The delay doubles with every attempt.
func WithRetryDelay(delay time.Duration) Option {
	return func(h *RMQHandler) {
		h.retryDelay = delay
	}
}
