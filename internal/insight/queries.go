package insight

import (
	"context"
	"fmt"

	"github.com/Stoick643/elara/ent"
	entinsight "github.com/Stoick643/elara/ent/insight"
	apperrors "github.com/Stoick643/elara/internal/pkg/errors"
)

// List returns the user's insights newest first, optionally filtered by
// status ("new", "viewed", "actioned"; empty means all).
func (e *Engine) List(ctx context.Context, userID, status string) ([]*ent.Insight, error) {
	q := e.client.Insight.Query().
		Where(entinsight.UserIDEQ(userID))
	if status != "" {
		st := entinsight.Status(status)
		if err := entinsight.StatusValidator(st); err != nil {
			return nil, apperrors.BadRequest(apperrors.CodeInvalidStatus,
				fmt.Sprintf("unknown insight status %q", status))
		}
		q = q.Where(entinsight.StatusEQ(st))
	}
	rows, err := q.
		Order(ent.Desc(entinsight.FieldGeneratedAt), ent.Desc(entinsight.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list insights for user %s: %w", userID, err)
	}
	return rows, nil
}

// MarkStatus advances an insight's status. Transitions only move forward:
// new -> viewed -> actioned; moving back to "new" is rejected.
func (e *Engine) MarkStatus(ctx context.Context, insightID, status string) (*ent.Insight, error) {
	st := entinsight.Status(status)
	if st != entinsight.StatusViewed && st != entinsight.StatusActioned {
		return nil, apperrors.BadRequest(apperrors.CodeInvalidStatus,
			fmt.Sprintf("status must be viewed or actioned, got %q", status))
	}

	row, err := e.client.Insight.Get(ctx, insightID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeInsightNotFound,
				fmt.Sprintf("insight %s not found", insightID))
		}
		return nil, fmt.Errorf("fetch insight %s: %w", insightID, err)
	}

	if row.Status == entinsight.StatusActioned && st == entinsight.StatusViewed {
		// Idempotent success: the stronger status stands.
		return row, nil
	}
	updated, err := e.client.Insight.UpdateOneID(insightID).
		SetStatus(st).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update insight %s status: %w", insightID, err)
	}
	return updated, nil
}
