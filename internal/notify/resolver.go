package notify

import (
	"context"
	"strings"
	"time"

	"github.com/Xenn-00/werkstatt-meister/internal/entity"
	app_errors "github.com/Xenn-00/werkstatt-meister/internal/errors"
	course_repo "github.com/Xenn-00/werkstatt-meister/internal/repo/course-repo"
	user_repo "github.com/Xenn-00/werkstatt-meister/internal/repo/user-repo"
	workshop_repo "github.com/Xenn-00/werkstatt-meister/internal/repo/workshop-repo"
)

// Resolver baut aus den Benachrichtigungsregeln eines Workshops die
// Empfängerliste für einen Phasenwechsel.
type Resolver struct {
	wr workshop_repo.WorkshopRepoContract
	cr course_repo.CourseRepoContract
	ur user_repo.UserRepoContract
}

func NewResolver(wr workshop_repo.WorkshopRepoContract, cr course_repo.CourseRepoContract, ur user_repo.UserRepoContract) *Resolver {
	return &Resolver{
		wr: wr,
		cr: cr,
		ur: ur,
	}
}

// PhaseWindow liefert das Zeitfenster der Zielphase. Nur die Einreichungs-
// und die Begutachtungsphase haben eines; alle anderen Phasen liefern nil/nil.
func PhaseWindow(workshop *entity.WorkshopEntity, newPhase entity.Phase) (*time.Time, *time.Time) {
	switch newPhase {
	case entity.PhaseSubmission:
		return workshop.SubmissionStart, workshop.SubmissionEnd
	case entity.PhaseAssessment:
		return workshop.AssessmentStart, workshop.AssessmentEnd
	}

	return nil, nil
}

// Prepare löst Regeln, Fenster und Empfänger auf und friert sie als
// PreparedRun ein. Fehler hier sind fatal für den Lauf; es wurde noch
// nichts versendet.
func (r *Resolver) Prepare(ctx context.Context, course *entity.CourseEntity, module *entity.CourseModuleEntity, workshop *entity.WorkshopEntity, oldPhase, newPhase entity.Phase) (*PreparedRun, *app_errors.AppError) {
	openDate, closeDate := PhaseWindow(workshop, newPhase)

	rules, err := r.wr.ListNotificationRules(ctx, workshop.ID, newPhase)
	if err != nil {
		return nil, err
	}

	run := &PreparedRun{
		Course:    *course,
		Module:    *module,
		Workshop:  *workshop,
		OldPhase:  oldPhase,
		NewPhase:  newPhase,
		OpenDate:  openDate,
		CloseDate: closeDate,
	}

	for _, rule := range rules {
		if !rule.Enabled {
			continue
		}

		if rule.RoleID == entity.CustomEmailRole {
			// Die Custom-Liste umgeht die Sichtbarkeitsprüfung bewusst:
			// der Betreiber hat die Adressen selbst eingetragen.
			for _, raw := range strings.Split(workshop.CustomEmail, ",") {
				email := strings.ToLower(strings.TrimSpace(raw))
				if email == "" {
					continue
				}

				user, err := r.ur.FindByEmail(ctx, email)
				if err != nil {
					return nil, err
				}
				if user == nil {
					// Adresse ohne Konto: still verwerfen, aber zählen.
					run.SkippedCount++
					continue
				}
				run.Recipients = append(run.Recipients, *user)
			}
			continue
		}

		users, err := r.cr.ListRoleUsers(ctx, rule.RoleID, course.ID)
		if err != nil {
			return nil, err
		}
		for _, user := range users {
			if !course.Visible {
				canView, err := r.cr.HasCapability(ctx, user.ID, course.ID, entity.CapabilityViewHiddenCourses)
				if err != nil {
					return nil, err
				}
				if !canView {
					// Der Kurs ist verborgen und das Konto darf ihn nicht sehen.
					continue
				}
			}
			if user.Email == "" {
				run.SkippedCount++
				continue
			}
			run.Recipients = append(run.Recipients, user)
		}
	}

	return run, nil
}
