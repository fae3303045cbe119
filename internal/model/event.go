package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event types accepted on the events queue.
const (
	EventNewUser = "new_user"
	EventSeries  = "series"
	EventLike    = "like"
	EventNews    = "news"
)

// Event is an immutable record of something that happened. It is persisted
// once on receipt (ID assigned by the store) and never mutated afterwards.
type Event struct {
	ID        uuid.UUID       `json:"id"`
	Type      string          `json:"type" validate:"required"`
	EventDate time.Time       `json:"event_date" validate:"required"`
	Data      json.RawMessage `json:"data" validate:"required"`
	SendDate  *time.Time      `json:"send_date"`
}

// NewUserData is the payload of a new_user event.
type NewUserData struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
	URL    string    `json:"url" validate:"required"`
}

// NewEpisodeData is the payload of a series event.
type NewEpisodeData struct {
	FilmworkID uuid.UUID `json:"filmwork_id" validate:"required"`
	EpisodeID  uuid.UUID `json:"episode_id" validate:"required"`
}

// LikeData is the payload of a like event. AuthorID is the review author
// being notified, UserID is the user who left the like.
type LikeData struct {
	AuthorID uuid.UUID `json:"author_id" validate:"required"`
	FilmID   uuid.UUID `json:"film_id" validate:"required"`
	ReviewID uuid.UUID `json:"review_id" validate:"required"`
	UserID   uuid.UUID `json:"user_id" validate:"required"`
	Score    int       `json:"score" validate:"min=0,max=10"`
}

// NewsData is the payload of a news broadcast event.
type NewsData struct {
	Message string `json:"message" validate:"required"`
}
