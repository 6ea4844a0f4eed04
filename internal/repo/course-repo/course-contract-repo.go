package course_repo

import (
	"context"

	"github.com/Xenn-00/werkstatt-meister/internal/entity"
	app_errors "github.com/Xenn-00/werkstatt-meister/internal/errors"
)

type CourseRepoContract interface {
	FindCourseByID(ctx context.Context, courseID string) (*entity.CourseEntity, *app_errors.AppError)
	ListRoleUsers(ctx context.Context, roleID int64, courseID string) ([]entity.UserEntity, *app_errors.AppError)
	HasCapability(ctx context.Context, userID, courseID, capability string) (bool, *app_errors.AppError)
}
