package workshop_dto

import (
	"github.com/Xenn-00/werkstatt-meister/internal/entity"
	"github.com/go-playground/validator/v10"
)

type ParamWorkshopID struct {
	ID string `params:"workshop_id" validate:"required,uuid"`
}

type SwitchPhaseRequest struct {
	NewPhase string `json:"new_phase" validate:"required,phase"`
}

// NotificationRuleItem ist eine Regel im Upsert-Request. RoleID 0
// adressiert die Custom-E-Mail-Liste des Workshops.
type NotificationRuleItem struct {
	Phase   string `json:"phase" validate:"required,phase"`
	RoleID  int64  `json:"role_id" validate:"min=0"`
	Enabled bool   `json:"enabled"`
}

type UpdateNotificationRulesRequest struct {
	Rules []NotificationRuleItem `json:"rules" validate:"required,min=1,dive"`
}

// IsValidPhase ist der benutzerdefinierte Validator für Phasennamen.
func IsValidPhase(fl validator.FieldLevel) bool {
	_, ok := entity.PhaseByName(fl.Field().String())
	return ok
}
