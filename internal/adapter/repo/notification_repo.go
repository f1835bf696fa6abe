package repo

import (
	"context"
	"time"

	"maryjoy/internal/domain"
	"maryjoy/internal/infra"
	"maryjoy/internal/sqlinline"
)

// NotificationRepositoryPG implements domain.NotificationRepository using PostgreSQL.
type NotificationRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewNotificationRepository creates a new notification repo.
func NewNotificationRepository(sql infra.SQLExecutor) *NotificationRepositoryPG {
	return &NotificationRepositoryPG{sql: sql}
}

// Create inserts a notification row. An empty sponsor id persists as NULL in
// both key columns, which readers interpret as a broadcast.
func (r *NotificationRepositoryPG) Create(ctx context.Context, n *domain.Notification) error {
	_, err := r.sql.Exec(ctx, sqlinline.QInsertNotification,
		n.ID, n.SponsorID.Cluster, n.SponsorID.Specific,
		n.Message, string(n.Type), string(n.Priority))
	return err
}

// List returns notifications newest first, optionally scoped to one sponsor
// or to unread rows only.
func (r *NotificationRepositoryPG) List(ctx context.Context, sponsorID domain.SponsorID, unreadOnly bool, limit int) ([]domain.Notification, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListNotifications,
		sponsorID.Cluster, sponsorID.Specific, unreadOnly, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Notification
	for rows.Next() {
		var n domain.Notification
		var typ, priority string
		if err := rows.Scan(&n.ID, &n.SponsorID.Cluster, &n.SponsorID.Specific,
			&n.Message, &typ, &priority, &n.IsRead, &n.ReadAt, &n.CreatedAt); err != nil {
			return nil, err
		}
		n.Type = domain.NotificationType(typ)
		n.Priority = domain.NotificationPriority(priority)
		items = append(items, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// MarkRead stamps a notification read. Marking an already-read row is a no-op
// reported as ErrNotFound so callers can distinguish it.
func (r *NotificationRepositoryPG) MarkRead(ctx context.Context, id string, at time.Time) error {
	tag, err := r.sql.Exec(ctx, sqlinline.QMarkNotificationRead, id, at)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a notification permanently.
func (r *NotificationRepositoryPG) Delete(ctx context.Context, id string) error {
	tag, err := r.sql.Exec(ctx, sqlinline.QDeleteNotification, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ExistsToday is the deduplication gate: it reports whether any notification
// of the given type was created for the sponsor since local midnight. The
// check and the subsequent insert are two statements with no lock between
// them, so concurrent sweeps can still double-insert; that race is tolerated.
func (r *NotificationRepositoryPG) ExistsToday(ctx context.Context, sponsorID domain.SponsorID, typ domain.NotificationType) (bool, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QCountNotificationsToday,
		sponsorID.Cluster, sponsorID.Specific, string(typ))
	var count int
	if err := row.Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

var _ domain.NotificationRepository = (*NotificationRepositoryPG)(nil)
