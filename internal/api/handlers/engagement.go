package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/Stoick643/elara/internal/pkg/errors"
)

// GetHabitStreak handles GET /habits/:id/streak.
func (s *Server) GetHabitStreak(c *gin.Context) {
	habitID := c.Param("id")
	state, err := s.streaks.Get(c.Request.Context(), habitID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	last := ""
	if !state.LastCompleted.IsZero() {
		last = state.LastCompleted.String()
	}
	c.JSON(http.StatusOK, gin.H{
		"habit_id":            habitID,
		"current_streak":      state.Current,
		"longest_streak":      state.Longest,
		"last_completed_date": last,
	})
}

// GetUserFeatures handles GET /users/:id/features.
func (s *Server) GetUserFeatures(c *gin.Context) {
	features, err := s.unlocks.Unlocked(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"features": features, "count": len(features)})
}

// GetUserAchievements handles GET /users/:id/achievements.
func (s *Server) GetUserAchievements(c *gin.Context) {
	awards, err := s.achievements.Awarded(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"achievements": awards, "count": len(awards)})
}

// ListUserInsights handles GET /users/:id/insights with an optional status
// filter. Results are newest first.
func (s *Server) ListUserInsights(c *gin.Context) {
	rows, err := s.insights.List(c.Request.Context(), c.Param("id"), c.Query("status"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"insights": rows, "count": len(rows)})
}

// markInsightRequest is the POST /insights/:id/status body.
type markInsightRequest struct {
	Status string `json:"status" binding:"required"`
}

// MarkInsightStatus handles POST /insights/:id/status.
func (s *Server) MarkInsightStatus(c *gin.Context) {
	var req markInsightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidStatus, err.Error()))
		return
	}
	row, err := s.insights.MarkStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, row)
}

// RunUserInsights handles POST /users/:id/insights/run, the scheduler hook
// for an on-demand detector pass. An optional as_of anchors the window for
// reproducible runs.
func (s *Server) RunUserInsights(c *gin.Context) {
	asOf := time.Now().UTC()
	if raw := c.Query("as_of"); raw != "" {
		ts, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidPayload, "as_of must be RFC3339"))
			return
		}
		asOf = ts
	}

	created, err := s.insights.RunPass(c.Request.Context(), c.Param("id"), asOf)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"new_insights": created, "count": len(created)})
}

// ListUserNotifications handles GET /users/:id/notifications with an
// optional unread=true filter.
func (s *Server) ListUserNotifications(c *gin.Context) {
	unreadOnly := c.Query("unread") == "true"
	rows, err := s.inbox.List(c.Request.Context(), c.Param("id"), unreadOnly)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": rows, "count": len(rows)})
}

// MarkNotificationRead handles POST /notifications/:id/read.
func (s *Server) MarkNotificationRead(c *gin.Context) {
	row, err := s.inbox.MarkRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, row)
}
