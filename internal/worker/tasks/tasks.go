package worker_task

import "github.com/Xenn-00/werkstatt-meister/internal/entity"

const TaskSendPhaseChangeNotifications = "email:send_phase_change_notifications"

const TaskAutoSwitchAssessmentPhase = "low:auto_switch_assessment_phase"

type SendPhaseChangeNotificationsPayload struct {
	WorkshopID string       `json:"workshop_id"`
	CourseID   string       `json:"course_id"`
	CMID       string       `json:"cm_id"`
	OldPhase   entity.Phase `json:"old_phase"`
	NewPhase   entity.Phase `json:"new_phase"`
}
