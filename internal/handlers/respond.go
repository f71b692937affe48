package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolak/job-tracker/internal/storage"
)

// respondError maps store errors onto the API's error shape: 404 for
// missing resources, 500 for everything else. The error text goes out
// verbatim in the detail field.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, storage.ErrNotFound) {
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{"detail": err.Error()})
}
