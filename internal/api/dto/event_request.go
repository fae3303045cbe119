package dto

import (
	"encoding/json"
	"time"
)

// EventRequest is the inbound wire format of a domain event.
type EventRequest struct {
	Type      string          `json:"type" validate:"required"`
	EventDate time.Time       `json:"event_date" validate:"required"`
	Data      json.RawMessage `json:"data" validate:"required"`
	SendDate  *time.Time      `json:"send_date"`
}
