package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolak/job-tracker/internal/storage"
)

type ResumeHandler struct {
	Resumes *storage.ResumeStore
}

func NewResumeHandler(resumes *storage.ResumeStore) *ResumeHandler {
	return &ResumeHandler{Resumes: resumes}
}

// GetResume is the GET /api/resumes/:resume_id endpoint.
func (h *ResumeHandler) GetResume(c *gin.Context) {
	id := c.Param("resume_id")

	resume, err := h.Resumes.Load(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":        true,
		"resume_id": id,
		"resume":    resume,
	})
}
