// Package delivery sends queued notifications over their channel and records
// the final status.
package delivery

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/cinenotify/notification-service/internal/model"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/delivery/mock.go -package=mocks

type statusUpdater interface {
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
}

type emailSender interface {
	Send(to, subject, msg string) error
}

type textSender interface {
	Send(to, msg string) error
}

type websocketSender interface {
	Send(userID uuid.UUID, msg string) error
	Broadcast(msg string) error
}

// Service delivers one queue message per call, retrying per the configured
// strategy, then transitions the notification to sent or failed.
type Service struct {
	repo     statusUpdater
	email    emailSender
	telegram textSender
	hub      websocketSender
	strategy retry.Strategy
}

func NewService(repo statusUpdater, email emailSender, telegram textSender, hub websocketSender, strategy retry.Strategy) *Service {
	return &Service{
		repo:     repo,
		email:    email,
		telegram: telegram,
		hub:      hub,
		strategy: strategy,
	}
}

// Deliver sends the message over its channel and updates the stored status.
func (s *Service) Deliver(ctx context.Context, msg model.QueueMessage) {
	err := retry.Do(func() error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			return s.send(msg)
		}
	}, s.strategy)

	status := model.StatusSent
	if err != nil {
		zlog.Logger.Error().Err(err).Str("id", msg.NotificationID.String()).Msg("delivery failed")
		status = model.StatusFailed
	}

	if setErr := s.repo.UpdateStatus(ctx, msg.NotificationID, status); setErr != nil {
		zlog.Logger.Error().Err(setErr).Str("id", msg.NotificationID.String()).Msgf("failed to set status=%s", status)
	}
}

func (s *Service) send(msg model.QueueMessage) error {
	switch msg.Channel {
	case model.ChannelEmail:
		var data model.EmailData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			return fmt.Errorf("failed to unmarshal email data: %w", err)
		}

		return s.email.Send(data.Email, data.Subject, msg.Message)
	case model.ChannelTelegram:
		var data model.TelegramData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			return fmt.Errorf("failed to unmarshal telegram data: %w", err)
		}

		return s.telegram.Send(data.ChatID, msg.Message)
	case model.ChannelWebsocket:
		var data model.WebsocketData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			return fmt.Errorf("failed to unmarshal websocket data: %w", err)
		}

		if data.Broadcast {
			return s.hub.Broadcast(msg.Message)
		}

		return s.hub.Send(data.UserID, msg.Message)
	default:
		return fmt.Errorf("unknown channel %q", msg.Channel)
	}
}
