package entity

import "time"

// Phase ist die Lebenszyklusstufe eines Workshops. Die Codes sind stabil
// und werden so in der Datenbank und in Task-Payloads gespeichert.
type Phase int

const (
	PhaseSetup      Phase = 10
	PhaseSubmission Phase = 20
	PhaseAssessment Phase = 30
	PhaseEvaluation Phase = 40
	PhaseClosed     Phase = 50
)

func (p Phase) IsValid() bool {
	switch p {
	case PhaseSetup, PhaseSubmission, PhaseAssessment, PhaseEvaluation, PhaseClosed:
		return true
	}

	return false
}

// Name liefert den sprechenden Phasennamen, wie er in Regeln und
// Benachrichtigungen verwendet wird.
func (p Phase) Name() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhaseSubmission:
		return "submission"
	case PhaseAssessment:
		return "assessment"
	case PhaseEvaluation:
		return "evaluation"
	case PhaseClosed:
		return "closed"
	}

	return "unknown"
}

func PhaseByName(name string) (Phase, bool) {
	switch name {
	case "setup":
		return PhaseSetup, true
	case "submission":
		return PhaseSubmission, true
	case "assessment":
		return PhaseAssessment, true
	case "evaluation":
		return PhaseEvaluation, true
	case "closed":
		return PhaseClosed, true
	}

	return 0, false
}

// WorkshopEntity repräsentiert eine Peer-Assessment-Aktivität.
// CustomEmail ist eine kommaseparierte Liste von Adressen, die der
// Betreiber frei pflegt; sie wird erst beim Versand aufgelöst.
type WorkshopEntity struct {
	ID                    string     `json:"id"`
	CourseID              string     `json:"course_id"`
	Name                  string     `json:"name"`
	Phase                 Phase      `json:"phase"`
	SubmissionStart       *time.Time `json:"submission_start,omitempty"`
	SubmissionEnd         *time.Time `json:"submission_end,omitempty"`
	AssessmentStart       *time.Time `json:"assessment_start,omitempty"`
	AssessmentEnd         *time.Time `json:"assessment_end,omitempty"`
	PhaseSwitchAssessment bool       `json:"phase_switch_assessment"`
	CustomEmail           string     `json:"custom_email"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

// NotificationRuleEntity schaltet Benachrichtigungen pro Phase und Rolle.
// RoleID 0 ist die Sonderregel für die Custom-E-Mail-Liste des Workshops.
type NotificationRuleEntity struct {
	ID         string `json:"id"`
	WorkshopID string `json:"workshop_id"`
	Phase      Phase  `json:"phase"`
	RoleID     int64  `json:"role_id"`
	Enabled    bool   `json:"enabled"`
}

// CustomEmailRole markiert die Regel, die statt einer Kursrolle die
// Custom-E-Mail-Liste des Workshops adressiert.
const CustomEmailRole int64 = 0
