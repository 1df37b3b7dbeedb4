package notification

import (
	"context"
	"fmt"

	"github.com/Stoick643/elara/ent"
	"github.com/Stoick643/elara/internal/streak"
	"github.com/Stoick643/elara/internal/unlock"
)

// Triggers adapts the engines' notifier interfaces onto the Sender. Each
// trigger runs inside the engine's state-transition transaction: if the
// inbox write fails the transition rolls back, so a committed transition
// always has exactly one notification.
type Triggers struct {
	sender Sender
}

// NewTriggers creates the notification trigger service.
func NewTriggers(sender Sender) *Triggers {
	return &Triggers{sender: sender}
}

// StreakMilestone fires when a habit streak crosses a celebration point.
func (t *Triggers) StreakMilestone(ctx context.Context, tx *ent.Tx, m streak.Milestone) error {
	title := fmt.Sprintf("%d-day streak on %s", m.Current, m.HabitName)
	message := fmt.Sprintf("You have kept %s going for %d days in a row.", m.HabitName, m.Current)
	if m.PersonalBest {
		title = fmt.Sprintf("New personal best on %s", m.HabitName)
		message = fmt.Sprintf("%d days in a row on %s, your longest streak yet.", m.Current, m.HabitName)
	}

	return t.sender.Send(ctx, tx, Params{
		RecipientID:  m.UserID,
		Type:         TypeStreakMilestone,
		Title:        title,
		Message:      message,
		ResourceType: "habit",
		ResourceID:   m.HabitID,
	})
}

// FeatureUnlocked fires when a feature unlock row is created.
func (t *Triggers) FeatureUnlocked(ctx context.Context, tx *ent.Tx, userID string, f unlock.Feature) error {
	return t.sender.Send(ctx, tx, Params{
		RecipientID:  userID,
		Type:         TypeFeatureUnlocked,
		Title:        fmt.Sprintf("%s unlocked", f.Name),
		Message:      f.Description,
		ResourceType: "feature",
		ResourceID:   f.ID,
	})
}

// AchievementAwarded fires when an award row is created.
func (t *Triggers) AchievementAwarded(ctx context.Context, tx *ent.Tx, userID string, a *ent.Achievement) error {
	return t.sender.Send(ctx, tx, Params{
		RecipientID:  userID,
		Type:         TypeAchievementAwarded,
		Title:        fmt.Sprintf("Achievement earned: %s", a.Name),
		Message:      a.Description,
		ResourceType: "achievement",
		ResourceID:   a.ID,
	})
}

// InsightReady fires when a detector persists a new insight.
func (t *Triggers) InsightReady(ctx context.Context, tx *ent.Tx, userID string, ins *ent.Insight) error {
	return t.sender.Send(ctx, tx, Params{
		RecipientID:  userID,
		Type:         TypeInsightReady,
		Title:        "A new insight is ready",
		Message:      ins.Description,
		ResourceType: "insight",
		ResourceID:   ins.ID,
	})
}
