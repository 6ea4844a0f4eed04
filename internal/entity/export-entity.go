package entity

import "time"

type ExportRequestStatus string

const (
	ExportPending  ExportRequestStatus = "Pending"
	ExportApproved ExportRequestStatus = "Approved"
	ExportDenied   ExportRequestStatus = "Denied"
)

func (s ExportRequestStatus) IsValid() bool {
	switch s {
	case ExportPending, ExportApproved, ExportDenied:
		return true
	}

	return false
}

// ExportRequestEntity ist ein Antrag auf Export personenbezogener Daten.
// CourseFilter schränkt den genehmigten Export optional auf Kurse ein.
type ExportRequestEntity struct {
	ID           string              `json:"id"`
	RequesterID  string              `json:"requester_id"`
	Status       ExportRequestStatus `json:"status"`
	CourseFilter []string            `json:"course_filter,omitempty"`
	DecidedBy    *string             `json:"decided_by,omitempty"`
	DecidedAt    *time.Time          `json:"decided_at,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
}
