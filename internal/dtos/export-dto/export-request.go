package export_dto

type ParamExportRequestID struct {
	ID string `params:"request_id" validate:"required,uuid"`
}

type ApproveExportRequest struct {
	// CourseIDs schränkt den Export optional auf Kurskontexte ein.
	CourseIDs []string `json:"course_ids" validate:"omitempty,dive,uuid"`
}
