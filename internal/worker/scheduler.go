package worker

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/cinenotify/notification-service/internal/model"
)

//go:generate mockgen -source=scheduler.go -destination=../mocks/worker/scheduler_mock.go -package=mocks

type dueClaimer interface {
	ClaimDue(ctx context.Context, limit int) ([]model.Notification, error)
	ReleaseClaim(ctx context.Context, id uuid.UUID) error
}

type notificationPublisher interface {
	Publish(msg model.QueueMessage, strategy retry.Strategy) error
}

// Scheduler promotes due notifications to the send queue on a fixed poll
// interval. Claiming flips unsent to enqueued atomically in the store, so
// neither a concurrent scheduler instance nor the next poll cycle can
// publish the same notification twice.
type Scheduler struct {
	repo      dueClaimer
	queue     notificationPublisher
	interval  time.Duration
	batchSize int
	strategy  retry.Strategy
}

func NewScheduler(repo dueClaimer, queue notificationPublisher, interval time.Duration, batchSize int, strategy retry.Strategy) *Scheduler {
	return &Scheduler{
		repo:      repo,
		queue:     queue,
		interval:  interval,
		batchSize: batchSize,
		strategy:  strategy,
	}
}

// Run polls until ctx is cancelled: query and publish, then sleep.
func (s *Scheduler) Run(ctx context.Context) {
	zlog.Logger.Info().Dur("interval", s.interval).Msg("scheduler started")

	for {
		s.promoteDue(ctx)

		select {
		case <-ctx.Done():
			zlog.Logger.Info().Msg("scheduler stopped")
			return
		case <-time.After(s.interval):
		}
	}
}

// promoteDue claims one batch of due notifications and publishes each to the
// send queue. A publish failure releases that claim and moves on to the next
// notification; one bad message must not stall the batch.
func (s *Scheduler) promoteDue(ctx context.Context) {
	notifications, err := s.repo.ClaimDue(ctx, s.batchSize)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to claim due notifications")
		return
	}

	for _, n := range notifications {
		msg := model.QueueMessage{
			Message:        n.Message,
			Channel:        n.Channel,
			Data:           n.Data,
			NotificationID: n.ID,
		}

		if err := s.queue.Publish(msg, s.strategy); err != nil {
			zlog.Logger.Error().Err(err).Str("id", n.ID.String()).Msg("failed to publish due notification")

			if relErr := s.repo.ReleaseClaim(ctx, n.ID); relErr != nil {
				zlog.Logger.Error().Err(relErr).Str("id", n.ID.String()).Msg("failed to release claim")
			}
			continue
		}

		zlog.Logger.Info().Str("id", n.ID.String()).Str("channel", n.Channel).Msg("notification promoted to send queue")
	}
}
