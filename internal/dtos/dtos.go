package dtos

// ApplicationRequest is the body of POST /api/applications.
type ApplicationRequest struct {
	ProfileName string         `json:"profile_name" binding:"required"`
	CompanyName string         `json:"company_name" binding:"required"`
	JobLink     string         `json:"job_link" binding:"required"`
	RoleName    string         `json:"role_name" binding:"required"`
	Resume      map[string]any `json:"resume" binding:"required"`
}

// ScheduleUpdateRequest is the body of POST /api/schedules.
type ScheduleUpdateRequest struct {
	ProfileName string `json:"profile_name" binding:"required"`
	CompanyName string `json:"company_name" binding:"required"`
	RoleName    string `json:"role_name" binding:"required"`
	JobLink     string `json:"job_link" binding:"required"`
	ResumeID    string `json:"resumeid" binding:"required"`

	InterviewStage string `json:"interview_stage"`
	NextSteps      string `json:"next_steps"`
	// Passed is accepted for wire compatibility with existing clients
	// but is not persisted anywhere.
	Passed            *bool   `json:"passed"`
	Status            *string `json:"status"`
	InterviewLink     string  `json:"interview_link"`
	InterviewDatetime string  `json:"interview_datetime"`
	Assignee          string  `json:"assignee"`
	Duration          string  `json:"duration"`
}
