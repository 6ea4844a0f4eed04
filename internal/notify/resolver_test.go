package notify

import (
	"context"
	"testing"
	"time"

	"github.com/Xenn-00/werkstatt-meister/internal/entity"
	app_errors "github.com/Xenn-00/werkstatt-meister/internal/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func visibleCourse() *entity.CourseEntity {
	return &entity.CourseEntity{
		ID:        "course-1",
		ShortName: "WS101",
		FullName:  "Workshop Basics",
		Visible:   true,
	}
}

func hiddenCourse() *entity.CourseEntity {
	c := visibleCourse()
	c.Visible = false
	return c
}

func testModule() *entity.CourseModuleEntity {
	return &entity.CourseModuleEntity{
		ID:         "cm-1",
		CourseID:   "course-1",
		WorkshopID: "workshop-1",
	}
}

func testWorkshop() *entity.WorkshopEntity {
	return &entity.WorkshopEntity{
		ID:       "workshop-1",
		CourseID: "course-1",
		Name:     "Peer Review 1",
		Phase:    entity.PhaseSubmission,
	}
}

// Role rule on a visible course: every role holder is a recipient and
// no capability check happens.
func TestPrepare_RoleRuleVisibleCourse(t *testing.T) {
	ctx := context.Background()

	wr := new(MockWorkshopRepo)
	cr := new(MockCourseRepo)
	ur := new(MockUserRepo)
	resolver := NewResolver(wr, cr, ur)

	rules := []entity.NotificationRuleEntity{
		{ID: "rule-1", WorkshopID: "workshop-1", Phase: entity.PhaseAssessment, RoleID: 3, Enabled: true},
	}
	users := []entity.UserEntity{
		{ID: "user-1", Email: "anna@example.com", FirstName: "Anna"},
		{ID: "user-2", Email: "ben@example.com", FirstName: "Ben"},
	}

	wr.On("ListNotificationRules", ctx, "workshop-1", entity.PhaseAssessment).Return(rules, (*app_errors.AppError)(nil))
	cr.On("ListRoleUsers", ctx, int64(3), "course-1").Return(users, (*app_errors.AppError)(nil))

	run, err := resolver.Prepare(ctx, visibleCourse(), testModule(), testWorkshop(), entity.PhaseSubmission, entity.PhaseAssessment)

	assert.Nil(t, err)
	assert.Len(t, run.Recipients, 2)
	assert.Equal(t, "anna@example.com", run.Recipients[0].Email)
	assert.Equal(t, "ben@example.com", run.Recipients[1].Email)
	assert.Equal(t, 0, run.SkippedCount)

	wr.AssertExpectations(t)
	cr.AssertExpectations(t)
	cr.AssertNotCalled(t, "HasCapability")
}

// Role rule on a hidden course: only accounts that may view hidden
// courses stay in the list.
func TestPrepare_RoleRuleHiddenCourse(t *testing.T) {
	ctx := context.Background()

	wr := new(MockWorkshopRepo)
	cr := new(MockCourseRepo)
	ur := new(MockUserRepo)
	resolver := NewResolver(wr, cr, ur)

	rules := []entity.NotificationRuleEntity{
		{ID: "rule-1", WorkshopID: "workshop-1", Phase: entity.PhaseAssessment, RoleID: 3, Enabled: true},
	}
	users := []entity.UserEntity{
		{ID: "user-1", Email: "anna@example.com"},
		{ID: "user-2", Email: "ben@example.com"},
	}

	wr.On("ListNotificationRules", ctx, "workshop-1", entity.PhaseAssessment).Return(rules, (*app_errors.AppError)(nil))
	cr.On("ListRoleUsers", ctx, int64(3), "course-1").Return(users, (*app_errors.AppError)(nil))
	cr.On("HasCapability", ctx, "user-1", "course-1", entity.CapabilityViewHiddenCourses).Return(true, (*app_errors.AppError)(nil))
	cr.On("HasCapability", ctx, "user-2", "course-1", entity.CapabilityViewHiddenCourses).Return(false, (*app_errors.AppError)(nil))

	run, err := resolver.Prepare(ctx, hiddenCourse(), testModule(), testWorkshop(), entity.PhaseSubmission, entity.PhaseAssessment)

	assert.Nil(t, err)
	assert.Len(t, run.Recipients, 1)
	assert.Equal(t, "user-1", run.Recipients[0].ID)
	assert.Equal(t, 0, run.SkippedCount)

	wr.AssertExpectations(t)
	cr.AssertExpectations(t)
}

// Custom email rule: entries are trimmed and lowercased, addresses
// without an account are silently dropped but counted, and visibility
// is not checked.
func TestPrepare_CustomEmailRule(t *testing.T) {
	ctx := context.Background()

	wr := new(MockWorkshopRepo)
	cr := new(MockCourseRepo)
	ur := new(MockUserRepo)
	resolver := NewResolver(wr, cr, ur)

	workshop := testWorkshop()
	workshop.CustomEmail = " Anna@Example.com ,ghost@example.com, , ben@example.com"

	rules := []entity.NotificationRuleEntity{
		{ID: "rule-0", WorkshopID: "workshop-1", Phase: entity.PhaseAssessment, RoleID: entity.CustomEmailRole, Enabled: true},
	}

	anna := &entity.UserEntity{ID: "user-1", Email: "anna@example.com", FirstName: "Anna"}
	ben := &entity.UserEntity{ID: "user-2", Email: "ben@example.com", FirstName: "Ben"}

	wr.On("ListNotificationRules", ctx, "workshop-1", entity.PhaseAssessment).Return(rules, (*app_errors.AppError)(nil))
	ur.On("FindByEmail", ctx, "anna@example.com").Return(anna, (*app_errors.AppError)(nil))
	ur.On("FindByEmail", ctx, "ghost@example.com").Return(nil, (*app_errors.AppError)(nil))
	ur.On("FindByEmail", ctx, "ben@example.com").Return(ben, (*app_errors.AppError)(nil))

	run, err := resolver.Prepare(ctx, hiddenCourse(), testModule(), workshop, entity.PhaseSubmission, entity.PhaseAssessment)

	assert.Nil(t, err)
	assert.Len(t, run.Recipients, 2)
	assert.Equal(t, "anna@example.com", run.Recipients[0].Email)
	assert.Equal(t, "ben@example.com", run.Recipients[1].Email)
	assert.Equal(t, 1, run.SkippedCount)

	wr.AssertExpectations(t)
	ur.AssertExpectations(t)
	cr.AssertNotCalled(t, "HasCapability")
}

// An account matched by the custom list and by a role rule receives
// two messages.
func TestPrepare_NoDeduplicationAcrossRules(t *testing.T) {
	ctx := context.Background()

	wr := new(MockWorkshopRepo)
	cr := new(MockCourseRepo)
	ur := new(MockUserRepo)
	resolver := NewResolver(wr, cr, ur)

	workshop := testWorkshop()
	workshop.CustomEmail = "anna@example.com"

	rules := []entity.NotificationRuleEntity{
		{ID: "rule-0", WorkshopID: "workshop-1", Phase: entity.PhaseAssessment, RoleID: entity.CustomEmailRole, Enabled: true},
		{ID: "rule-1", WorkshopID: "workshop-1", Phase: entity.PhaseAssessment, RoleID: 3, Enabled: true},
	}

	anna := entity.UserEntity{ID: "user-1", Email: "anna@example.com"}

	wr.On("ListNotificationRules", ctx, "workshop-1", entity.PhaseAssessment).Return(rules, (*app_errors.AppError)(nil))
	ur.On("FindByEmail", ctx, "anna@example.com").Return(&anna, (*app_errors.AppError)(nil))
	cr.On("ListRoleUsers", ctx, int64(3), "course-1").Return([]entity.UserEntity{anna}, (*app_errors.AppError)(nil))

	run, err := resolver.Prepare(ctx, visibleCourse(), testModule(), workshop, entity.PhaseSubmission, entity.PhaseAssessment)

	assert.Nil(t, err)
	assert.Len(t, run.Recipients, 2)
	assert.Equal(t, run.Recipients[0].ID, run.Recipients[1].ID)

	wr.AssertExpectations(t)
	cr.AssertExpectations(t)
	ur.AssertExpectations(t)
}

// Disabled rules contribute nothing.
func TestPrepare_DisabledRuleSkipped(t *testing.T) {
	ctx := context.Background()

	wr := new(MockWorkshopRepo)
	cr := new(MockCourseRepo)
	ur := new(MockUserRepo)
	resolver := NewResolver(wr, cr, ur)

	rules := []entity.NotificationRuleEntity{
		{ID: "rule-1", WorkshopID: "workshop-1", Phase: entity.PhaseAssessment, RoleID: 3, Enabled: false},
	}

	wr.On("ListNotificationRules", ctx, "workshop-1", entity.PhaseAssessment).Return(rules, (*app_errors.AppError)(nil))

	run, err := resolver.Prepare(ctx, visibleCourse(), testModule(), testWorkshop(), entity.PhaseSubmission, entity.PhaseAssessment)

	assert.Nil(t, err)
	assert.Empty(t, run.Recipients)
	assert.Equal(t, 0, run.SkippedCount)

	wr.AssertExpectations(t)
	cr.AssertNotCalled(t, "ListRoleUsers")
}

// Accounts without an email address are skipped and counted.
func TestPrepare_EmptyEmailSkipped(t *testing.T) {
	ctx := context.Background()

	wr := new(MockWorkshopRepo)
	cr := new(MockCourseRepo)
	ur := new(MockUserRepo)
	resolver := NewResolver(wr, cr, ur)

	rules := []entity.NotificationRuleEntity{
		{ID: "rule-1", WorkshopID: "workshop-1", Phase: entity.PhaseAssessment, RoleID: 3, Enabled: true},
	}
	users := []entity.UserEntity{
		{ID: "user-1", Email: ""},
		{ID: "user-2", Email: "ben@example.com"},
	}

	wr.On("ListNotificationRules", ctx, "workshop-1", entity.PhaseAssessment).Return(rules, (*app_errors.AppError)(nil))
	cr.On("ListRoleUsers", ctx, int64(3), "course-1").Return(users, (*app_errors.AppError)(nil))

	run, err := resolver.Prepare(ctx, visibleCourse(), testModule(), testWorkshop(), entity.PhaseSubmission, entity.PhaseAssessment)

	assert.Nil(t, err)
	assert.Len(t, run.Recipients, 1)
	assert.Equal(t, "user-2", run.Recipients[0].ID)
	assert.Equal(t, 1, run.SkippedCount)

	wr.AssertExpectations(t)
	cr.AssertExpectations(t)
}

// A repo failure during resolution is fatal for the run.
func TestPrepare_RepoFailureIsFatal(t *testing.T) {
	ctx := context.Background()

	wr := new(MockWorkshopRepo)
	cr := new(MockCourseRepo)
	ur := new(MockUserRepo)
	resolver := NewResolver(wr, cr, ur)

	repoErr := app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", nil)
	wr.On("ListNotificationRules", ctx, "workshop-1", entity.PhaseAssessment).Return(nil, repoErr)

	run, err := resolver.Prepare(ctx, visibleCourse(), testModule(), testWorkshop(), entity.PhaseSubmission, entity.PhaseAssessment)

	assert.Nil(t, run)
	assert.Equal(t, repoErr, err)

	wr.AssertExpectations(t)
}

func TestPhaseWindow(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 15, 18, 0, 0, 0, time.UTC)

	workshop := testWorkshop()
	workshop.SubmissionStart = &start
	workshop.SubmissionEnd = &end
	workshop.AssessmentStart = &end

	open, close := PhaseWindow(workshop, entity.PhaseSubmission)
	assert.Equal(t, &start, open)
	assert.Equal(t, &end, close)

	open, close = PhaseWindow(workshop, entity.PhaseAssessment)
	assert.Equal(t, &end, open)
	assert.Nil(t, close)

	open, close = PhaseWindow(workshop, entity.PhaseClosed)
	assert.Nil(t, open)
	assert.Nil(t, close)
}
