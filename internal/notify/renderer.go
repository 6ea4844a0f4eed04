package notify

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/Xenn-00/werkstatt-meister/internal/entity"
)

//go:embed templates/phase_change_email.tmpl
var templateFS embed.FS

const emailDateLayout = "02 Jan 2006 15:04 MST"

// Renderer baut Betreff und HTML-Rumpf der Phasenwechsel-Mail.
type Renderer struct {
	tmpl    *template.Template
	baseURL string
}

type phaseChangeEmailData struct {
	FirstName       string
	CourseShortName string
	CourseFullName  string
	WorkshopName    string
	OldPhase        string
	NewPhase        string
	OpenDate        string
	CloseDate       string
	WorkshopLink    string
}

func NewRenderer(baseURL string) (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/phase_change_email.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse phase change template: %w", err)
	}

	return &Renderer{
		tmpl:    tmpl,
		baseURL: baseURL,
	}, nil
}

// Subject liefert den Betreff der Mail, der Kurzname des Kurses vorangestellt.
func (r *Renderer) Subject(run *PreparedRun) string {
	return fmt.Sprintf("%s: %s ist jetzt in der Phase %q", run.Course.ShortName, run.Workshop.Name, run.NewPhase.Name())
}

// WorkshopLink ist der Deep-Link auf die Workshop-Ansicht des Kursmoduls.
func (r *Renderer) WorkshopLink(run *PreparedRun) string {
	return fmt.Sprintf("%s/mod/workshop/view?id=%s", r.baseURL, run.Module.ID)
}

// Render baut den HTML-Rumpf für einen einzelnen Empfänger.
func (r *Renderer) Render(run *PreparedRun, recipient *entity.UserEntity) (string, error) {
	data := phaseChangeEmailData{
		FirstName:       recipient.FirstName,
		CourseShortName: run.Course.ShortName,
		CourseFullName:  run.Course.FullName,
		WorkshopName:    run.Workshop.Name,
		OldPhase:        run.OldPhase.Name(),
		NewPhase:        run.NewPhase.Name(),
		OpenDate:        formatEmailDate(run.OpenDate),
		CloseDate:       formatEmailDate(run.CloseDate),
		WorkshopLink:    r.WorkshopLink(run),
	}

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "phase_change_email", data); err != nil {
		return "", fmt.Errorf("render phase change email: %w", err)
	}

	return buf.String(), nil
}

func formatEmailDate(t *time.Time) string {
	if t == nil {
		return ""
	}

	return t.Format(emailDateLayout)
}
