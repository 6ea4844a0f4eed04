package notify

import (
	"time"

	"github.com/Xenn-00/werkstatt-meister/internal/entity"
)

// PreparedRun ist der unveränderliche Zustand eines Benachrichtigungslaufs:
// einmal in der Vorbereitungsphase gebaut, danach nur noch gelesen.
type PreparedRun struct {
	Course   entity.CourseEntity
	Module   entity.CourseModuleEntity
	Workshop entity.WorkshopEntity
	OldPhase entity.Phase
	NewPhase entity.Phase

	// OpenDate/CloseDate sind das Phasenfenster der Zielphase; nil, wenn
	// die Phase kein Fenster hat oder keines konfiguriert ist.
	OpenDate  *time.Time
	CloseDate *time.Time

	// Recipients in Auflösungsreihenfolge. Ein Konto, das von mehreren
	// Regeln getroffen wird, steht mehrfach in der Liste.
	Recipients []entity.UserEntity

	// SkippedCount zählt still verworfene Adressen (Custom-Eintrag ohne
	// Konto, Konto ohne E-Mail), damit der Lauf sie zusammengefasst
	// berichten kann.
	SkippedCount int
}

// RunResult ist das typisierte Ergebnis eines Laufs.
type RunResult struct {
	SentCount    int `json:"sent_count"`
	ErrorCount   int `json:"error_count"`
	SkippedCount int `json:"skipped_count"`
}
