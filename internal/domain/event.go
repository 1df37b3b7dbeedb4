// Package domain defines the activity event model of the engagement core.
//
// An ActivityEvent is the immutable unit of truth: everything downstream
// (streaks, unlocks, insights, achievements) is derived from the ordered
// per-user event log and is safely recomputable from it.
package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// EventType identifies the kind of user activity an event records.
type EventType string

const (
	EventJournalEntry     EventType = "journal_entry"
	EventTaskCompleted    EventType = "task_completed"
	EventHabitLogged      EventType = "habit_logged"
	EventWeeklyReview     EventType = "weekly_review_completed"
	EventWheelAssessment  EventType = "wheel_assessment_completed"
)

// AllEventTypes lists every recognized event type.
var AllEventTypes = []EventType{
	EventJournalEntry,
	EventTaskCompleted,
	EventHabitLogged,
	EventWeeklyReview,
	EventWheelAssessment,
}

// Valid reports whether t is a recognized event type.
func (t EventType) Valid() bool {
	switch t {
	case EventJournalEntry, EventTaskCompleted, EventHabitLogged,
		EventWeeklyReview, EventWheelAssessment:
		return true
	}
	return false
}

// Event is the in-memory view of one activity log row.
type Event struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	Type           EventType `json:"type"`
	Payload        []byte    `json:"payload"`
	OccurredAt     time.Time `json:"occurred_at"`
	LocalDate      LocalDate `json:"local_date"`
	IdempotencyKey string    `json:"idempotency_key"`
}

// JournalEntryPayload records a journal entry. MoodScore is 1-10, zero when
// the entry carried no mood; Tags are caller-extracted keywords.
type JournalEntryPayload struct {
	EntryID   string   `json:"entry_id"`
	MoodScore int      `json:"mood_score,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	WordCount int      `json:"word_count,omitempty"`
}

// TaskCompletedPayload records a completed task.
type TaskCompletedPayload struct {
	TaskID      string `json:"task_id"`
	EnergyLevel string `json:"energy_level,omitempty"` // low, medium, high
}

// HabitLoggedPayload records a habit check-in.
type HabitLoggedPayload struct {
	HabitID string `json:"habit_id"`
}

// WeeklyReviewPayload records a completed weekly review.
type WeeklyReviewPayload struct {
	ReviewID string `json:"review_id,omitempty"`
}

// WheelAssessmentPayload records a wheel-of-life assessment with per-area
// scores (1-10).
type WheelAssessmentPayload struct {
	AssessmentID string         `json:"assessment_id,omitempty"`
	Scores       map[string]int `json:"scores,omitempty"`
}

// ToJSON converts a payload to JSON bytes.
func (p JournalEntryPayload) ToJSON() ([]byte, error)    { return json.Marshal(p) }
func (p TaskCompletedPayload) ToJSON() ([]byte, error)   { return json.Marshal(p) }
func (p HabitLoggedPayload) ToJSON() ([]byte, error)     { return json.Marshal(p) }
func (p WeeklyReviewPayload) ToJSON() ([]byte, error)    { return json.Marshal(p) }
func (p WheelAssessmentPayload) ToJSON() ([]byte, error) { return json.Marshal(p) }

// ValidatePayload checks that raw decodes as the payload shape for t and
// that type-specific required fields are present.
func ValidatePayload(t EventType, raw []byte) error {
	if len(raw) == 0 {
		raw = []byte("{}")
	}
	switch t {
	case EventJournalEntry:
		var p JournalEntryPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return fmt.Errorf("decode journal_entry payload: %w", err)
		}
		if p.MoodScore < 0 || p.MoodScore > 10 {
			return fmt.Errorf("journal_entry mood_score %d out of range [0,10]", p.MoodScore)
		}
	case EventTaskCompleted:
		var p TaskCompletedPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return fmt.Errorf("decode task_completed payload: %w", err)
		}
	case EventHabitLogged:
		var p HabitLoggedPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return fmt.Errorf("decode habit_logged payload: %w", err)
		}
		if p.HabitID == "" {
			return fmt.Errorf("habit_logged payload requires habit_id")
		}
	case EventWeeklyReview:
		var p WeeklyReviewPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return fmt.Errorf("decode weekly_review_completed payload: %w", err)
		}
	case EventWheelAssessment:
		var p WheelAssessmentPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return fmt.Errorf("decode wheel_assessment_completed payload: %w", err)
		}
		for area, score := range p.Scores {
			if score < 1 || score > 10 {
				return fmt.Errorf("wheel assessment score for %q out of range [1,10]: %d", area, score)
			}
		}
	default:
		return fmt.Errorf("unrecognized event type %q", t)
	}
	return nil
}

// HabitID extracts the habit ID from a habit_logged event, or "" for other
// types.
func (e *Event) HabitID() string {
	if e.Type != EventHabitLogged {
		return ""
	}
	var p HabitLoggedPayload
	if err := json.Unmarshal(e.Payload, &p); err != nil {
		return ""
	}
	return p.HabitID
}
