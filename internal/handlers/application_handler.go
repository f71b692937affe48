package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolak/job-tracker/internal/dtos"
	"github.com/nikolak/job-tracker/internal/services"
)

type ApplicationHandler struct {
	Applications *services.ApplicationService
}

func NewApplicationHandler(applications *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{Applications: applications}
}

// CreateApplication is the POST /api/applications endpoint.
func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	var req dtos.ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid JSON format: " + err.Error()})
		return
	}

	result, err := h.Applications.Submit(req.ProfileName, req.CompanyName, req.RoleName, req.JobLink, req.Resume)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":       true,
		"saved_to": result.SavedTo,
		"date":     result.Date,
		"data":     result.Data,
	})
}

// GetApplied is the GET /api/applied endpoint. Omitting date merges
// every recorded day of the profile.
func (h *ApplicationHandler) GetApplied(c *gin.Context) {
	profile := c.Query("profile_name")
	if profile == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "profile_name is required"})
		return
	}
	date := c.Query("date")

	data, err := h.Applications.Applied(profile, date)
	if err != nil {
		respondError(c, err)
		return
	}

	if date == "" {
		date = "all"
	}
	c.JSON(http.StatusOK, gin.H{
		"ok":           true,
		"data":         data,
		"profile_name": profile,
		"date":         date,
	})
}
