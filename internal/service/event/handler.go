// Package event routes inbound domain events to their registered handlers
// and turns them into per-recipient, per-channel notifications.
package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/cinenotify/notification-service/internal/model"
)

var (
	// ErrUnknownEventType marks an event whose type has no registered
	// handler. Permanent: the message is dropped, not redelivered.
	ErrUnknownEventType = errors.New("unknown event type")

	// ErrInvalidEvent marks a malformed inbound event. The worker retries it
	// a bounded number of times and then dead-letters it.
	ErrInvalidEvent = errors.New("invalid event")
)

//go:generate mockgen -source=handler.go -destination=../../mocks/service/event/mock.go -package=mocks

type eventRepository interface {
	CreateEvent(ctx context.Context, event model.Event) (uuid.UUID, error)
}

type notificationRepository interface {
	CreateNotification(ctx context.Context, n model.Notification) (uuid.UUID, error)
	ReleaseClaim(ctx context.Context, id uuid.UUID) error
}

type notificationPublisher interface {
	Publish(msg model.QueueMessage, strategy retry.Strategy) error
}

// EnrichClients is the scoped set of upstream service clients acquired per
// dispatched event.
type EnrichClients interface {
	GetUserProfile(ctx context.Context, userID uuid.UUID) (model.UserProfile, error)
	GetEpisodeInfo(ctx context.Context, filmworkID, episodeID uuid.UUID) (model.EpisodeInfo, error)
	GetSubscribers(ctx context.Context, filmworkID uuid.UUID) ([]uuid.UUID, error)
	Close()
}

type renderer interface {
	Render(eventType, channel string, context map[string]string) (string, error)
}

type sendTimeCalculator interface {
	Calculate(userTimezone string, sendDate *time.Time) (*time.Time, error)
}

// Handler processes one parsed event of its registered type.
type Handler interface {
	ProcessEvent(ctx context.Context, event model.Event) error
}

// processor bundles the dependencies shared by all handlers for one
// dispatched event, including the scoped upstream clients.
type processor struct {
	events        eventRepository
	notifications notificationRepository
	queue         notificationPublisher
	renderer      renderer
	sendTime      sendTimeCalculator
	clients       EnrichClients
	validate      *validator.Validate
	strategy      retry.Strategy
}

// parseData decodes and validates the type-specific event payload.
func (p *processor) parseData(event model.Event, out interface{}) error {
	if err := json.Unmarshal(event.Data, out); err != nil {
		return fmt.Errorf("%w: payload of %s: %v", ErrInvalidEvent, event.Type, err)
	}

	if err := p.validate.Struct(out); err != nil {
		return fmt.Errorf("%w: payload of %s: %v", ErrInvalidEvent, event.Type, err)
	}

	return nil
}

// createNotification persists a notification and, when it has no send date,
// enqueues it for immediate delivery exactly once. Immediate notifications
// are inserted already claimed (status enqueued), so the scheduler cannot
// pick them up between the insert and the publish here.
func (p *processor) createNotification(ctx context.Context, n model.Notification) error {
	id, err := p.notifications.CreateNotification(ctx, n)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("channel", n.Channel).Msg("failed to save notification")
		return fmt.Errorf("failed to save notification: %w", err)
	}

	zlog.Logger.Info().Str("id", id.String()).Str("channel", n.Channel).Msg("notification saved")

	if n.SendDate != nil {
		// deferred: the scheduler promotes it once the send date passes
		return nil
	}

	msg := model.QueueMessage{
		Message:        n.Message,
		Channel:        n.Channel,
		Data:           n.Data,
		NotificationID: id,
	}

	if err := p.queue.Publish(msg, p.strategy); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to publish notification, leaving it to the scheduler")

		// release the claim so a later poll promotes it; only a failed
		// release makes the event itself fail and redeliver
		if relErr := p.notifications.ReleaseClaim(ctx, id); relErr != nil {
			zlog.Logger.Error().Err(relErr).Str("id", id.String()).Msg("failed to release claim")
			return fmt.Errorf("failed to publish notification: %w", err)
		}

		return nil
	}

	return nil
}
