package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/Stoick643/elara/ent"
	entnotification "github.com/Stoick643/elara/ent/notification"
	apperrors "github.com/Stoick643/elara/internal/pkg/errors"
)

// Inbox is the read side of the notification system.
type Inbox struct {
	client *ent.Client
}

// NewInbox creates an Inbox over the shared Ent client.
func NewInbox(client *ent.Client) *Inbox {
	return &Inbox{client: client}
}

// List returns the user's notifications newest first. unreadOnly narrows to
// rows not yet marked read.
func (i *Inbox) List(ctx context.Context, userID string, unreadOnly bool) ([]*ent.Notification, error) {
	q := i.client.Notification.Query().
		Where(entnotification.UserIDEQ(userID))
	if unreadOnly {
		q = q.Where(entnotification.ReadEQ(false))
	}
	rows, err := q.
		Order(ent.Desc(entnotification.FieldCreatedAt), ent.Desc(entnotification.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notifications for user %s: %w", userID, err)
	}
	return rows, nil
}

// MarkRead marks one notification read. Already-read rows are an idempotent
// success and keep their original read_at.
func (i *Inbox) MarkRead(ctx context.Context, id string) (*ent.Notification, error) {
	row, err := i.client.Notification.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeNotifNotFound,
				fmt.Sprintf("notification %s not found", id))
		}
		return nil, fmt.Errorf("fetch notification %s: %w", id, err)
	}
	if row.Read {
		return row, nil
	}
	updated, err := i.client.Notification.UpdateOneID(id).
		SetRead(true).
		SetReadAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("mark notification %s read: %w", id, err)
	}
	return updated, nil
}

// DeleteOlderThan removes notifications created before the cutoff,
// regardless of read state. Used by the retention cleanup job.
func (i *Inbox) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := i.client.Notification.Delete().
		Where(entnotification.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete notifications older than %s: %w", cutoff, err)
	}
	return n, nil
}
