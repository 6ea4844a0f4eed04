package workshop_dto

import "time"

type SwitchPhaseResponse struct {
	WorkshopID string `json:"workshop_id"`
	OldPhase   string `json:"old_phase"`
	NewPhase   string `json:"new_phase"`
}

type WorkshopResponse struct {
	ID                    string     `json:"workshop_id"`
	CourseID              string     `json:"course_id"`
	Name                  string     `json:"workshop_name"`
	Phase                 string     `json:"phase"`
	SubmissionStart       *time.Time `json:"submission_start,omitempty"`
	SubmissionEnd         *time.Time `json:"submission_end,omitempty"`
	AssessmentStart       *time.Time `json:"assessment_start,omitempty"`
	AssessmentEnd         *time.Time `json:"assessment_end,omitempty"`
	PhaseSwitchAssessment bool       `json:"phase_switch_assessment"`
	CustomEmail           string     `json:"custom_email"`
}

type NotificationRuleResponse struct {
	Phase   string `json:"phase"`
	RoleID  int64  `json:"role_id"`
	Enabled bool   `json:"enabled"`
}

type UpdateNotificationRulesResponse struct {
	WorkshopID string                     `json:"workshop_id"`
	Rules      []NotificationRuleResponse `json:"rules"`
}
