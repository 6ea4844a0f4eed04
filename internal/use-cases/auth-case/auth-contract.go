package auth_case

import (
	"context"

	auth_dto "github.com/Xenn-00/werkstatt-meister/internal/dtos/auth-dto"
	app_errors "github.com/Xenn-00/werkstatt-meister/internal/errors"
)

// AuthServiceContract reicht die Methoden für den AuthService weiter.
type AuthServiceContract interface {
	LoginUser(ctx context.Context, req *auth_dto.LoginRequest) (*auth_dto.LoginResponse, *app_errors.AppError)
	LogoutUser(ctx context.Context, sessionID string) *app_errors.AppError
}
