package worker_handler

import (
	"context"
	"testing"

	"github.com/Xenn-00/werkstatt-meister/internal/entity"
	app_errors "github.com/Xenn-00/werkstatt-meister/internal/errors"
	"github.com/Xenn-00/werkstatt-meister/internal/mail"
	"github.com/Xenn-00/werkstatt-meister/internal/notify"
	worker_task "github.com/Xenn-00/werkstatt-meister/internal/worker/tasks"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendPhaseChangeNotification(email *mail.PhaseChangeEmail) error {
	args := m.Called(email)
	return args.Error(0)
}

func newTestHandler(wr *notify.MockWorkshopRepo, cr *notify.MockCourseRepo, ur *notify.MockUserRepo, mailer *MockMailer) *WorkerHandler {
	renderer, err := notify.NewRenderer("https://lms.example.com")
	if err != nil {
		panic(err)
	}

	return &WorkerHandler{
		wr:       wr,
		cr:       cr,
		resolver: notify.NewResolver(wr, cr, ur),
		renderer: renderer,
		mailer:   mailer,
	}
}

func testPayload() *worker_task.SendPhaseChangeNotificationsPayload {
	return &worker_task.SendPhaseChangeNotificationsPayload{
		WorkshopID: "workshop-1",
		CourseID:   "course-1",
		CMID:       "cm-1",
		OldPhase:   entity.PhaseSubmission,
		NewPhase:   entity.PhaseAssessment,
	}
}

func expectRunFixtures(ctx context.Context, wr *notify.MockWorkshopRepo, cr *notify.MockCourseRepo) {
	course := &entity.CourseEntity{
		ID:        "course-1",
		ShortName: "WS101",
		FullName:  "Workshop Basics",
		Visible:   true,
	}
	module := &entity.CourseModuleEntity{
		ID:         "cm-1",
		CourseID:   "course-1",
		WorkshopID: "workshop-1",
	}
	workshop := &entity.WorkshopEntity{
		ID:       "workshop-1",
		CourseID: "course-1",
		Name:     "Peer Review 1",
		Phase:    entity.PhaseAssessment,
	}

	cr.On("FindCourseByID", ctx, "course-1").Return(course, (*app_errors.AppError)(nil))
	wr.On("FindCourseModuleByID", ctx, "cm-1").Return(module, (*app_errors.AppError)(nil))
	wr.On("FindWorkshopByID", ctx, "workshop-1").Return(workshop, (*app_errors.AppError)(nil))
}

// Every recipient is mailed once; the result counts match the list.
func TestProcessPhaseChange_AllSent(t *testing.T) {
	ctx := context.Background()

	wr := new(notify.MockWorkshopRepo)
	cr := new(notify.MockCourseRepo)
	ur := new(notify.MockUserRepo)
	mailer := new(MockMailer)
	handler := newTestHandler(wr, cr, ur, mailer)

	expectRunFixtures(ctx, wr, cr)

	rules := []entity.NotificationRuleEntity{
		{ID: "rule-1", WorkshopID: "workshop-1", Phase: entity.PhaseAssessment, RoleID: 3, Enabled: true},
	}
	users := []entity.UserEntity{
		{ID: "user-1", Email: "anna@example.com", FirstName: "Anna"},
		{ID: "user-2", Email: "ben@example.com", FirstName: "Ben"},
	}

	wr.On("ListNotificationRules", ctx, "workshop-1", entity.PhaseAssessment).Return(rules, (*app_errors.AppError)(nil))
	cr.On("ListRoleUsers", ctx, int64(3), "course-1").Return(users, (*app_errors.AppError)(nil))

	mailer.On("SendPhaseChangeNotification", mock.MatchedBy(func(e *mail.PhaseChangeEmail) bool {
		return e.To == "anna@example.com" && e.Subject != "" && e.HTMLBody != ""
	})).Return(nil)
	mailer.On("SendPhaseChangeNotification", mock.MatchedBy(func(e *mail.PhaseChangeEmail) bool {
		return e.To == "ben@example.com"
	})).Return(nil)

	result, err := handler.ProcessPhaseChange(ctx, testPayload())

	assert.Nil(t, err)
	assert.Equal(t, 2, result.SentCount)
	assert.Equal(t, 0, result.ErrorCount)
	assert.Equal(t, 0, result.SkippedCount)

	wr.AssertExpectations(t)
	cr.AssertExpectations(t)
	mailer.AssertExpectations(t)
}

// A failed send is counted and the run continues with the next
// recipient instead of aborting.
func TestProcessPhaseChange_SendFailureIsNonFatal(t *testing.T) {
	ctx := context.Background()

	wr := new(notify.MockWorkshopRepo)
	cr := new(notify.MockCourseRepo)
	ur := new(notify.MockUserRepo)
	mailer := new(MockMailer)
	handler := newTestHandler(wr, cr, ur, mailer)

	expectRunFixtures(ctx, wr, cr)

	rules := []entity.NotificationRuleEntity{
		{ID: "rule-1", WorkshopID: "workshop-1", Phase: entity.PhaseAssessment, RoleID: 3, Enabled: true},
	}
	users := []entity.UserEntity{
		{ID: "user-1", Email: "anna@example.com", FirstName: "Anna"},
		{ID: "user-2", Email: "ben@example.com", FirstName: "Ben"},
	}

	wr.On("ListNotificationRules", ctx, "workshop-1", entity.PhaseAssessment).Return(rules, (*app_errors.AppError)(nil))
	cr.On("ListRoleUsers", ctx, int64(3), "course-1").Return(users, (*app_errors.AppError)(nil))

	mailer.On("SendPhaseChangeNotification", mock.MatchedBy(func(e *mail.PhaseChangeEmail) bool {
		return e.To == "anna@example.com"
	})).Return(assert.AnError)
	mailer.On("SendPhaseChangeNotification", mock.MatchedBy(func(e *mail.PhaseChangeEmail) bool {
		return e.To == "ben@example.com"
	})).Return(nil)

	result, err := handler.ProcessPhaseChange(ctx, testPayload())

	assert.Nil(t, err)
	assert.Equal(t, 1, result.SentCount)
	assert.Equal(t, 1, result.ErrorCount)

	mailer.AssertExpectations(t)
}

// A missing course is fatal before anything is sent.
func TestProcessPhaseChange_CourseNotFound(t *testing.T) {
	ctx := context.Background()

	wr := new(notify.MockWorkshopRepo)
	cr := new(notify.MockCourseRepo)
	ur := new(notify.MockUserRepo)
	mailer := new(MockMailer)
	handler := newTestHandler(wr, cr, ur, mailer)

	notFound := app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "course_not_found", nil)
	cr.On("FindCourseByID", ctx, "course-1").Return(nil, notFound)

	result, err := handler.ProcessPhaseChange(ctx, testPayload())

	assert.Nil(t, result)
	assert.Equal(t, notFound, err)

	mailer.AssertNotCalled(t, "SendPhaseChangeNotification")
}

// A module that does not belong to the payload's course and workshop
// is treated as missing.
func TestProcessPhaseChange_ModuleMismatch(t *testing.T) {
	ctx := context.Background()

	wr := new(notify.MockWorkshopRepo)
	cr := new(notify.MockCourseRepo)
	ur := new(notify.MockUserRepo)
	mailer := new(MockMailer)
	handler := newTestHandler(wr, cr, ur, mailer)

	course := &entity.CourseEntity{ID: "course-1", Visible: true}
	module := &entity.CourseModuleEntity{
		ID:         "cm-1",
		CourseID:   "course-other",
		WorkshopID: "workshop-1",
	}

	cr.On("FindCourseByID", ctx, "course-1").Return(course, (*app_errors.AppError)(nil))
	wr.On("FindCourseModuleByID", ctx, "cm-1").Return(module, (*app_errors.AppError)(nil))

	result, err := handler.ProcessPhaseChange(ctx, testPayload())

	assert.Nil(t, result)
	assert.NotNil(t, err)
	assert.Equal(t, fiber.StatusNotFound, err.Code)
	assert.Equal(t, "module_not_found", err.MessageKey)

	mailer.AssertNotCalled(t, "SendPhaseChangeNotification")
}

// Skipped addresses from resolution show up in the result.
func TestProcessPhaseChange_SkippedCountPropagated(t *testing.T) {
	ctx := context.Background()

	wr := new(notify.MockWorkshopRepo)
	cr := new(notify.MockCourseRepo)
	ur := new(notify.MockUserRepo)
	mailer := new(MockMailer)
	handler := newTestHandler(wr, cr, ur, mailer)

	course := &entity.CourseEntity{ID: "course-1", ShortName: "WS101", Visible: true}
	module := &entity.CourseModuleEntity{ID: "cm-1", CourseID: "course-1", WorkshopID: "workshop-1"}
	workshop := &entity.WorkshopEntity{
		ID:          "workshop-1",
		CourseID:    "course-1",
		Name:        "Peer Review 1",
		Phase:       entity.PhaseAssessment,
		CustomEmail: "ghost@example.com",
	}

	cr.On("FindCourseByID", ctx, "course-1").Return(course, (*app_errors.AppError)(nil))
	wr.On("FindCourseModuleByID", ctx, "cm-1").Return(module, (*app_errors.AppError)(nil))
	wr.On("FindWorkshopByID", ctx, "workshop-1").Return(workshop, (*app_errors.AppError)(nil))

	rules := []entity.NotificationRuleEntity{
		{ID: "rule-0", WorkshopID: "workshop-1", Phase: entity.PhaseAssessment, RoleID: entity.CustomEmailRole, Enabled: true},
	}
	wr.On("ListNotificationRules", ctx, "workshop-1", entity.PhaseAssessment).Return(rules, (*app_errors.AppError)(nil))
	ur.On("FindByEmail", ctx, "ghost@example.com").Return(nil, (*app_errors.AppError)(nil))

	result, err := handler.ProcessPhaseChange(ctx, testPayload())

	assert.Nil(t, err)
	assert.Equal(t, 0, result.SentCount)
	assert.Equal(t, 0, result.ErrorCount)
	assert.Equal(t, 1, result.SkippedCount)

	mailer.AssertNotCalled(t, "SendPhaseChangeNotification")
}
