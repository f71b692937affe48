package models

// Application is one submitted job application: the posting link plus the
// id of the resume snapshot that was sent with it.
type Application struct {
	Link     string `json:"link"`
	ResumeID string `json:"resumeid"`
}

// DayDocument holds every application recorded for one profile on one
// calendar day, nested company -> role -> application. Within a day the
// (company, role) pair is unique; re-applying the same day overwrites.
type DayDocument map[string]map[string]Application

// ScheduleEntry is the tracked interview-pipeline state for one
// (company, role) pair of a profile.
type ScheduleEntry struct {
	// ProfileName is filled in only when listing across all profiles.
	ProfileName string `json:"profile_name,omitempty"`

	CompanyName string `json:"company_name"`
	RoleName    string `json:"role_name"`
	Link        string `json:"link"`
	ResumeID    string `json:"resumeid"`

	InterviewStage string `json:"interview_stage"`
	NextSteps      string `json:"next_steps"`
	// PreviousSteps is the append-only history of displaced interview
	// stages; it never holds two equal values back to back.
	PreviousSteps     []string `json:"previous_steps"`
	Status            string   `json:"status"`
	InterviewLink     string   `json:"interview_link"`
	InterviewDatetime string   `json:"interview_datetime"`
	Assignee          string   `json:"assignee"`
	Duration          string   `json:"duration"`
}
