package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Notification represents one dashboard notification row
type Notification struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Kind      string    `json:"kind"`
	Title     string    `json:"title"`
	Body      string    `json:"body,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateNotification inserts a notification and returns its ID
func (db *DB) CreateNotification(ctx context.Context, userID uuid.UUID, kind, title, body string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO notifications (user_id, kind, title, body, read)
		 VALUES ($1, $2, $3, $4, false)
		 RETURNING id`,
		userID, kind, title, body,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create notification: %w", err)
	}
	return id, nil
}

// ListNotifications returns a user's notifications, newest first
func (db *DB) ListNotifications(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]Notification, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `SELECT id, user_id, kind, title, body, read, created_at
		FROM notifications WHERE user_id = $1`
	if unreadOnly {
		query += ` AND read = false`
	}
	query += ` ORDER BY created_at DESC LIMIT $2`

	rows, err := db.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	notifications := make([]Notification, 0)
	for rows.Next() {
		var n Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Kind, &n.Title, &n.Body, &n.Read, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read notifications: %w", err)
	}
	return notifications, nil
}

// MarkNotificationRead flags a notification as read. Returns false when the
// notification does not exist.
func (db *DB) MarkNotificationRead(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := db.pool.Exec(ctx,
		`UPDATE notifications SET read = true WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to mark notification read: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
