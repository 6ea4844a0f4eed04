package entity

import "time"

// CourseEntity repräsentiert einen Kurs. Kurse werden extern provisioniert
// und hier nur gelesen.
type CourseEntity struct {
	ID        string    `json:"id"`
	ShortName string    `json:"short_name"`
	FullName  string    `json:"full_name"`
	Visible   bool      `json:"visible"`
	CreatedAt time.Time `json:"created_at"`
}

// CourseModuleEntity verknüpft eine Aktivität (Workshop) mit ihrem Kurs.
// Die ID ist Bestandteil des Deep-Links in Benachrichtigungen.
type CourseModuleEntity struct {
	ID         string `json:"id"`
	CourseID   string `json:"course_id"`
	WorkshopID string `json:"workshop_id"`
}
