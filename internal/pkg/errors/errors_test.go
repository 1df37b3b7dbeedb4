package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppErrorWrapUnwrap(t *testing.T) {
	underlying := fmt.Errorf("boom")
	err := Wrap(underlying, CodeInternal, "something broke", http.StatusInternalServerError)

	appErr, ok := IsAppError(err)
	require.True(t, ok)
	require.Equal(t, CodeInternal, appErr.Code)
	require.ErrorIs(t, err, underlying)
}

func TestIsAppErrorThroughWrapping(t *testing.T) {
	inner := BadRequest(CodeInvalidPayload, "bad occurred_at")
	wrapped := fmt.Errorf("ingest: %w", inner)

	appErr, ok := IsAppError(wrapped)
	require.True(t, ok)
	require.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
}

func TestDuplicateEventError(t *testing.T) {
	err := fmt.Errorf("append: %w", &DuplicateEventError{ExistingID: "evt-1"})

	dup, ok := IsDuplicateEvent(err)
	require.True(t, ok)
	require.Equal(t, "evt-1", dup.ExistingID)

	_, ok = IsDuplicateEvent(fmt.Errorf("plain"))
	require.False(t, ok)
}

func TestAnalysisErrorMessage(t *testing.T) {
	err := &AnalysisError{UserID: "u1", Detector: "mood_trend", Err: fmt.Errorf("short window")}
	require.Contains(t, err.Error(), "mood_trend")
	require.Contains(t, err.Error(), "u1")
}
