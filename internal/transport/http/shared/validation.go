package shared

import (
	"net/http"

	"nippo/internal/domain/report"
	"nippo/internal/transport/http/api"
)

type ValidationIssue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// IssuesFromProblems converts domain validation problems into the wire
// shape.
func IssuesFromProblems(problems []report.Problem) []ValidationIssue {
	if len(problems) == 0 {
		return nil
	}
	issues := make([]ValidationIssue, len(problems))
	for i, p := range problems {
		issues[i] = ValidationIssue{Field: p.Field, Reason: p.Reason}
	}
	return issues
}

func FailValidation(w http.ResponseWriter, requestID string, issues []ValidationIssue) {
	api.FailWithDetails(
		w,
		http.StatusBadRequest,
		"validation_error",
		"payload validation failed",
		map[string]any{"fields": issues},
		requestID,
	)
}
