// Package event persists inbound events as an immutable audit trail.
package event

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/cinenotify/notification-service/internal/model"
)

// Repository provides methods to interact with the events table.
type Repository struct {
	db          *dbpg.DB
	insertQuery string
}

// NewRepository creates a new event repository over the given table.
func NewRepository(db *dbpg.DB, table string) *Repository {
	return &Repository{
		db: db,
		insertQuery: fmt.Sprintf(`
		INSERT INTO %s (
		    type, event_date, data, send_date
		) VALUES ($1, $2, $3, $4)
		RETURNING id;
    `, table),
	}
}

// CreateEvent inserts a new event and returns its generated ID. Events are
// never updated afterwards.
func (r *Repository) CreateEvent(ctx context.Context, event model.Event) (uuid.UUID, error) {
	var id uuid.UUID

	err := r.db.Master.QueryRowContext(
		ctx, r.insertQuery, event.Type, event.EventDate, []byte(event.Data), event.SendDate,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create event: %w", err)
	}

	return id, nil
}
