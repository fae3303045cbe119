// Package notification persists notifications and drives their status
// transitions: unsent -> enqueued -> sent/failed.
package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/cinenotify/notification-service/internal/model"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
)

// Repository provides methods to interact with the notifications table.
type Repository struct {
	db    *dbpg.DB
	table string
}

// NewRepository creates a new notification repository over the given table.
func NewRepository(db *dbpg.DB, table string) *Repository {
	return &Repository{db: db, table: table}
}

// CreateNotification inserts a new notification and returns its ID. Deferred
// notifications start unsent and wait for the scheduler. Immediate ones (nil
// send date) are born enqueued: the creator publishes them right after the
// insert, and the claimed status keeps the scheduler's next poll from
// publishing the same row a second time.
func (r *Repository) CreateNotification(ctx context.Context, n model.Notification) (uuid.UUID, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (
		    message, channel, send_date, data, status
		) VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
    `, r.table)

	status := model.StatusUnsent
	if n.SendDate == nil {
		status = model.StatusEnqueued
	}

	var id uuid.UUID
	err := r.db.Master.QueryRowContext(
		ctx, query, n.Message, n.Channel, n.SendDate, []byte(n.Data), status,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create notification: %w", err)
	}

	return id, nil
}

// ClaimDue atomically claims up to limit due notifications, flipping them
// from unsent to enqueued so a concurrent scheduler instance or the next poll
// cycle cannot pick the same rows again. Due means send_date is NULL or has
// already passed.
func (r *Repository) ClaimDue(ctx context.Context, limit int) ([]model.Notification, error) {
	query := fmt.Sprintf(`
		UPDATE %[1]s
		SET status = 'enqueued', updated_at = now()
		WHERE id IN (
		    SELECT id FROM %[1]s
		    WHERE status = 'unsent'
		      AND (send_date IS NULL OR send_date <= now())
		    ORDER BY send_date NULLS FIRST
		    LIMIT $1
		    FOR UPDATE SKIP LOCKED
		)
		RETURNING id, message, channel, data;
    `, r.table)

	// the claim mutates rows, so it must run on the master, never a replica
	rows, err := r.db.Master.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to claim due notifications: %w", err)
	}
	defer rows.Close()

	var notifications []model.Notification
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(&n.ID, &n.Message, &n.Channel, &n.Data); err != nil {
			return nil, err
		}

		n.Status = model.StatusEnqueued
		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}

// ReleaseClaim puts an enqueued notification back to unsent so a later poll
// cycle retries it. Used when publishing a claimed notification failed.
func (r *Repository) ReleaseClaim(ctx context.Context, id uuid.UUID) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET status = 'unsent', updated_at = now()
		WHERE id = $1 AND status = 'enqueued';
    `, r.table)

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to release claim: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

// UpdateStatus updates the status of a notification by its ID.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET status = $1, updated_at = now()
		WHERE id = $2;
    `, r.table)

	res, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update notification: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrNotificationNotFound
	}

	return nil
}
