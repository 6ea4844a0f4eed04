package export_dto

import "time"

type ExportDecisionResponse struct {
	RequestID string     `json:"request_id"`
	Status    string     `json:"status"`
	CourseIDs []string   `json:"course_ids,omitempty"`
	DecidedBy string     `json:"decided_by"`
	DecidedAt *time.Time `json:"decided_at,omitempty"`
}
