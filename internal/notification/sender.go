// Package notification implements the in-app inbox.
//
// Notifications are synchronous DB writes. State-transition notifications
// (unlock, award, milestone, insight) are written through the caller's
// transaction so a transition and its inbox row commit together; there is
// no external push channel.
package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Stoick643/elara/ent"
	entnotification "github.com/Stoick643/elara/ent/notification"
	"github.com/Stoick643/elara/internal/pkg/logger"
)

// Type constants matching ent/schema/notification.go enum values.
const (
	TypeFeatureUnlocked    = "FEATURE_UNLOCKED"
	TypeAchievementAwarded = "ACHIEVEMENT_AWARDED"
	TypeStreakMilestone    = "STREAK_MILESTONE"
	TypeInsightReady       = "INSIGHT_READY"
)

// Params holds the required fields for creating a notification.
type Params struct {
	RecipientID  string // User ID of the recipient
	Type         string // One of Type* constants above
	Title        string // Human-readable title
	Message      string // Body text
	ResourceType string // e.g. "feature", "achievement", "habit", "insight"
	ResourceID   string // ID of the related resource for navigation
}

// Sender writes inbox rows. When tx is non-nil the write joins the caller's
// transaction; otherwise it commits on its own.
type Sender interface {
	Send(ctx context.Context, tx *ent.Tx, params Params) error
}

// InboxSender is the synchronous DB-write implementation.
type InboxSender struct {
	client *ent.Client
}

// NewInboxSender creates a new inbox sender.
func NewInboxSender(client *ent.Client) *InboxSender {
	return &InboxSender{client: client}
}

// Send stores a single notification.
func (s *InboxSender) Send(ctx context.Context, tx *ent.Tx, params Params) error {
	if err := validateParams(params); err != nil {
		return fmt.Errorf("notification params invalid: %w", err)
	}

	notifType, err := toEntType(params.Type)
	if err != nil {
		return err
	}

	builder := s.client.Notification
	if tx != nil {
		builder = tx.Notification
	}
	_, err = builder.Create().
		SetID(uuid.Must(uuid.NewV7()).String()).
		SetType(notifType).
		SetTitle(params.Title).
		SetMessage(params.Message).
		SetResourceType(params.ResourceType).
		SetResourceID(params.ResourceID).
		SetRead(false).
		SetUserID(params.RecipientID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create notification for user %s: %w", params.RecipientID, err)
	}

	logger.Debug("notification sent",
		zap.String("recipient", params.RecipientID),
		zap.String("type", params.Type),
		zap.String("title", params.Title),
	)

	return nil
}

// compile-time check
var _ Sender = (*InboxSender)(nil)

// --- Helpers ---

func validateParams(p Params) error {
	if p.RecipientID == "" {
		return fmt.Errorf("recipient_id is required")
	}
	if p.Title == "" {
		return fmt.Errorf("title is required")
	}
	if p.Message == "" {
		return fmt.Errorf("message is required")
	}
	return nil
}

func toEntType(t string) (entnotification.Type, error) {
	switch t {
	case TypeFeatureUnlocked:
		return entnotification.TypeFEATURE_UNLOCKED, nil
	case TypeAchievementAwarded:
		return entnotification.TypeACHIEVEMENT_AWARDED, nil
	case TypeStreakMilestone:
		return entnotification.TypeSTREAK_MILESTONE, nil
	case TypeInsightReady:
		return entnotification.TypeINSIGHT_READY, nil
	default:
		return "", fmt.Errorf("unknown notification type: %s", t)
	}
}
