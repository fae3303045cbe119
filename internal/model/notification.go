package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Notification delivery channels.
const (
	ChannelEmail     = "email"
	ChannelWebsocket = "websocket"
	ChannelTelegram  = "telegram"
)

// Notification statuses. A notification starts unsent, is claimed by the
// scheduler as enqueued, and ends up sent or failed after delivery.
const (
	StatusUnsent   = "unsent"
	StatusEnqueued = "enqueued"
	StatusSent     = "sent"
	StatusFailed   = "failed"
)

// Notification is a rendered, channel-specific message pending or completed
// delivery. A nil SendDate means "send immediately".
type Notification struct {
	ID        uuid.UUID       `json:"id"`
	Message   string          `json:"message"`
	Channel   string          `json:"channel"`
	SendDate  *time.Time      `json:"send_date"`
	Data      json.RawMessage `json:"data"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// QueueMessage is the ephemeral projection of a Notification placed on the
// send queue. It is never persisted.
type QueueMessage struct {
	Message        string          `json:"message"`
	Channel        string          `json:"channel"`
	Data           json.RawMessage `json:"data"`
	NotificationID uuid.UUID       `json:"notification_id"`
}

// EmailData is the channel-specific payload of an email notification.
type EmailData struct {
	Email   string `json:"email"`
	Subject string `json:"subject"`
}

// TelegramData is the channel-specific payload of a telegram notification.
type TelegramData struct {
	ChatID string `json:"chat_id"`
}

// WebsocketData is the channel-specific payload of a websocket notification.
type WebsocketData struct {
	UserID    uuid.UUID `json:"user_id,omitempty"`
	Broadcast bool      `json:"broadcast,omitempty"`
}
