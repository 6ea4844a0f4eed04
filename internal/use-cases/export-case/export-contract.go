package export_case

import (
	"context"

	export_dto "github.com/Xenn-00/werkstatt-meister/internal/dtos/export-dto"
	app_errors "github.com/Xenn-00/werkstatt-meister/internal/errors"
)

type ExportServiceContract interface {
	ApproveRequest(ctx context.Context, requestID, deciderID string, req *export_dto.ApproveExportRequest) (*export_dto.ExportDecisionResponse, *app_errors.AppError)
	DenyRequest(ctx context.Context, requestID, deciderID string) (*export_dto.ExportDecisionResponse, *app_errors.AppError)
}
