package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"jobsearch-agent/internal/logging"
	"jobsearch-agent/pkg/models"
)

// UploadLister lists archived resume files
type UploadLister interface {
	List() ([]string, error)
}

// UploadListHandler returns the archive directory's current entries
func UploadListHandler(store UploadLister) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := requestID(c)
		logger := logging.LogWithRequestID(requestID)

		files, err := store.List()
		if err != nil {
			logger.Error("Failed to list archived uploads", map[string]interface{}{"error": err.Error()})
			return errorResponse(c, http.StatusInternalServerError, "archive_list_failed", "Failed to list uploaded files", requestID)
		}

		return c.JSON(http.StatusOK, models.UploadListResponse{Files: files})
	}
}
