package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolak/job-tracker/internal/dtos"
	"github.com/nikolak/job-tracker/internal/services"
)

type ScheduleHandler struct {
	Schedules *services.ScheduleService
}

func NewScheduleHandler(schedules *services.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Schedules: schedules}
}

// UpsertSchedule is the POST /api/schedules endpoint.
func (h *ScheduleHandler) UpsertSchedule(c *gin.Context) {
	var req dtos.ScheduleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid JSON format: " + err.Error()})
		return
	}

	// Absent status defaults to waiting; an explicit value, empty
	// included, is stored as sent.
	status := "waiting"
	if req.Status != nil {
		status = *req.Status
	}

	entries, err := h.Schedules.Upsert(services.ScheduleUpdate{
		ProfileName:       req.ProfileName,
		CompanyName:       req.CompanyName,
		RoleName:          req.RoleName,
		Link:              req.JobLink,
		ResumeID:          req.ResumeID,
		InterviewStage:    req.InterviewStage,
		NextSteps:         req.NextSteps,
		Status:            status,
		InterviewLink:     req.InterviewLink,
		InterviewDatetime: req.InterviewDatetime,
		Assignee:          req.Assignee,
		Duration:          req.Duration,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":        true,
		"schedules": entries,
	})
}

// GetSchedules is the GET /api/schedules endpoint. Omitting profile_name
// lists every profile; date and assignee narrow the result.
func (h *ScheduleHandler) GetSchedules(c *gin.Context) {
	profile := c.Query("profile_name")
	date := c.Query("date")
	assignee := c.Query("assignee")

	items, err := h.Schedules.List(profile, date, assignee)
	if err != nil {
		respondError(c, err)
		return
	}

	name := profile
	if name == "" {
		name = "all"
	}
	// Absent filters echo back as null, not as empty strings.
	var dateOut, assigneeOut any
	if date != "" {
		dateOut = date
	}
	if assignee != "" {
		assigneeOut = assignee
	}
	c.JSON(http.StatusOK, gin.H{
		"ok":           true,
		"data":         items,
		"profile_name": name,
		"date":         dateOut,
		"assignee":     assigneeOut,
	})
}

// DeleteSchedule is the DELETE /api/schedules endpoint.
func (h *ScheduleHandler) DeleteSchedule(c *gin.Context) {
	profile := c.Query("profile_name")
	company := c.Query("company_name")
	role := c.Query("role_name")
	if profile == "" || company == "" || role == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "profile_name, company_name and role_name are required"})
		return
	}

	remaining, err := h.Schedules.Delete(profile, company, role)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok": true,
		"deleted": gin.H{
			"company_name": company,
			"role_name":    role,
		},
		"remaining": remaining,
	})
}
