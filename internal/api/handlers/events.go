package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Stoick643/elara/internal/domain"
	"github.com/Stoick643/elara/internal/eventstore"
	apperrors "github.com/Stoick643/elara/internal/pkg/errors"
	"github.com/Stoick643/elara/internal/usecase"
)

// ingestRequest is the POST /events body.
type ingestRequest struct {
	UserID         string          `json:"user_id" binding:"required"`
	Type           string          `json:"type" binding:"required"`
	Payload        json.RawMessage `json:"payload"`
	OccurredAt     *time.Time      `json:"occurred_at"`
	IdempotencyKey string          `json:"idempotency_key"`
}

// eventResponse is the wire shape of one event.
type eventResponse struct {
	ID             string          `json:"id"`
	UserID         string          `json:"user_id"`
	Type           string          `json:"type"`
	Payload        json.RawMessage `json:"payload"`
	OccurredAt     time.Time       `json:"occurred_at"`
	LocalDate      string          `json:"local_date"`
	IdempotencyKey string          `json:"idempotency_key,omitempty"`
}

func toEventResponse(e *domain.Event) eventResponse {
	return eventResponse{
		ID:             e.ID,
		UserID:         e.UserID,
		Type:           string(e.Type),
		Payload:        json.RawMessage(e.Payload),
		OccurredAt:     e.OccurredAt,
		LocalDate:      e.LocalDate.String(),
		IdempotencyKey: e.IdempotencyKey,
	}
}

// IngestEvent handles POST /events. A replayed idempotency key answers 200
// with the existing event's ID instead of 201, so retrying clients can tell
// the difference without treating it as a failure.
func (s *Server) IngestEvent(c *gin.Context) {
	var req ingestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidPayload, err.Error()))
		return
	}

	in := usecase.IngestInput{
		UserID:         req.UserID,
		Type:           domain.EventType(req.Type),
		Payload:        req.Payload,
		IdempotencyKey: req.IdempotencyKey,
	}
	if req.OccurredAt != nil {
		in.OccurredAt = *req.OccurredAt
	}

	evt, err := s.ingest.Ingest(c.Request.Context(), in)
	if err != nil {
		if dup, ok := apperrors.IsDuplicateEvent(err); ok {
			c.JSON(http.StatusOK, gin.H{
				"id":        dup.ExistingID,
				"duplicate": true,
			})
			return
		}
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, toEventResponse(evt))
}

// QueryEvents handles GET /events with user_id, type, from and to filters.
func (s *Server) QueryEvents(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidPayload, "user_id query parameter is required"))
		return
	}

	var filter eventstore.Filter
	if t := c.Query("type"); t != "" {
		typ := domain.EventType(t)
		if !typ.Valid() {
			_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidPayload, "unrecognized event type "+t))
			return
		}
		filter.Type = &typ
	}
	if raw := c.Query("from"); raw != "" {
		ts, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidPayload, "from must be RFC3339"))
			return
		}
		filter.From = &ts
	}
	if raw := c.Query("to"); raw != "" {
		ts, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidPayload, "to must be RFC3339"))
			return
		}
		filter.To = &ts
	}

	events, err := s.store.Query(c.Request.Context(), userID, filter)
	if err != nil {
		_ = c.Error(err)
		return
	}
	out := make([]eventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, toEventResponse(e))
	}
	c.JSON(http.StatusOK, gin.H{"events": out, "count": len(out)})
}

// DeleteEvent handles DELETE /events/:id, the explicit correction path.
func (s *Server) DeleteEvent(c *gin.Context) {
	if err := s.corrector.DeleteEvent(c.Request.Context(), c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
