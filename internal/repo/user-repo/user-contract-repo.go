package user_repo

import (
	"context"

	"github.com/Xenn-00/werkstatt-meister/internal/entity"
	app_errors "github.com/Xenn-00/werkstatt-meister/internal/errors"
)

type UserRepoContract interface {
	// FindByEmail liefert (nil, nil), wenn kein Konto zur Adresse existiert.
	FindByEmail(ctx context.Context, email string) (*entity.UserEntity, *app_errors.AppError)
	FindByUserID(ctx context.Context, userID string) (*entity.UserEntity, *app_errors.AppError)
}
