package errors

// Machine-readable error codes returned by the API layer.
const (
	CodeDuplicateEvent   = "DUPLICATE_EVENT"
	CodeInvalidPayload   = "INVALID_PAYLOAD"
	CodeUserNotFound     = "USER_NOT_FOUND"
	CodeHabitNotFound    = "HABIT_NOT_FOUND"
	CodeEventNotFound    = "EVENT_NOT_FOUND"
	CodeInsightNotFound  = "INSIGHT_NOT_FOUND"
	CodeNotifNotFound    = "NOTIFICATION_NOT_FOUND"
	CodeAnalysisFailed   = "ANALYSIS_FAILED"
	CodePassInProgress   = "PASS_IN_PROGRESS"
	CodeInvalidStatus    = "INVALID_STATUS"
	CodeInternal         = "INTERNAL_ERROR"
)
