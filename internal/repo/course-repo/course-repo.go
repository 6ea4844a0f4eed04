package course_repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Xenn-00/werkstatt-meister/internal/entity"
	app_errors "github.com/Xenn-00/werkstatt-meister/internal/errors"
	"github.com/Xenn-00/werkstatt-meister/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type CourseRepo struct {
	db    *pgxpool.Pool
	redis *redis.Client
}

func NewCourseRepo(db *pgxpool.Pool, redis *redis.Client) CourseRepoContract {
	return &CourseRepo{
		db:    db,
		redis: redis,
	}
}

func (r *CourseRepo) FindCourseByID(ctx context.Context, courseID string) (*entity.CourseEntity, *app_errors.AppError) {
	cacheKey := fmt.Sprintf("course:%s", courseID)
	if r.redis != nil {
		cached, _ := utils.GetCacheData[entity.CourseEntity](ctx, r.redis, cacheKey)
		if cached != nil {
			return cached, nil
		}
	}

	query := `
		SELECT id, short_name, full_name, visible, created_at FROM courses WHERE id = $1 LIMIT 1
	`
	row := r.db.QueryRow(ctx, query, courseID)

	var c entity.CourseEntity
	if err := row.Scan(&c.ID, &c.ShortName, &c.FullName, &c.Visible, &c.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "course_not_found", nil)
		}
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	if r.redis != nil {
		_ = utils.SetCacheData(ctx, r.redis, cacheKey, &c, 5*time.Minute)
	}
	return &c, nil
}

// ListRoleUsers liefert alle Konten mit der Rolle im Kurskontext, mit
// vollem Profil, damit der Versand keine Nachladung braucht.
func (r *CourseRepo) ListRoleUsers(ctx context.Context, roleID int64, courseID string) ([]entity.UserEntity, *app_errors.AppError) {
	query := `
		SELECT u.id, u.email, u.username, u.first_name, u.last_name,
		       u.password_hash, u.is_active, u.created_at, u.updated_at
		FROM users u
		JOIN role_assignments ra ON ra.user_id = u.id
		WHERE ra.role_id = $1 AND ra.course_id = $2
		ORDER BY u.created_at
	`
	rows, err := r.db.Query(ctx, query, roleID, courseID)
	if err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	defer rows.Close()

	users := []entity.UserEntity{}
	for rows.Next() {
		var u entity.UserEntity
		if err := rows.Scan(&u.ID, &u.Email, &u.Username, &u.FirstName, &u.LastName,
			&u.PasswordHash, &u.IsActive, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
		}
		users = append(users, u)
	}

	return users, nil
}

func (r *CourseRepo) HasCapability(ctx context.Context, userID, courseID, capability string) (bool, *app_errors.AppError) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM course_capabilities
			WHERE user_id = $1 AND course_id = $2 AND capability = $3
		)
	`
	var exists bool
	if err := r.db.QueryRow(ctx, query, userID, courseID, capability).Scan(&exists); err != nil {
		return false, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	return exists, nil
}
