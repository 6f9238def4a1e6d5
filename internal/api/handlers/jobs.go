package handlers

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"jobsearch-agent/internal/logging"
	"jobsearch-agent/internal/search"
	"jobsearch-agent/pkg/models"
	"jobsearch-agent/pkg/utils"
)

var validate = validator.New()

// JobSearcher is the slice of the search service the API depends on
type JobSearcher interface {
	Search(ctx context.Context, in search.Input) (*models.JobSearchResponse, error)
	ExtractTechnologies(ctx context.Context, model, resumeText string) ([]string, error)
}

// JobSearchHandler handles job search requests. Accepts a JSON body for
// free-text-only searches and a multipart form when a resume file is
// uploaded alongside.
func JobSearchHandler(svc JobSearcher) echo.HandlerFunc {
	return func(c echo.Context) error {
		startTime := time.Now()
		requestID := requestID(c)
		logger := logging.LogWithRequestID(requestID)

		logger.Info("Job search request received")

		var req models.SearchRequest
		var file *search.UploadedFile

		contentType := c.Request().Header.Get(echo.HeaderContentType)
		if strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
			req.Model = c.FormValue("model")
			req.FreeTextInput = c.FormValue("free_text_input")

			uploaded, err := readUploadedFile(c)
			if err != nil {
				logger.Error("Failed to read uploaded file", map[string]interface{}{"error": err.Error()})
				return errorResponse(c, http.StatusBadRequest, "invalid_upload", "Failed to read uploaded file", requestID)
			}
			file = uploaded
		} else {
			if err := c.Bind(&req); err != nil {
				logger.Error("Failed to bind request", map[string]interface{}{"error": err.Error()})
				return errorResponse(c, http.StatusBadRequest, "invalid_request", "Invalid request format", requestID)
			}
		}

		if err := validate.Struct(&req); err != nil {
			logger.Error("Request validation failed", map[string]interface{}{"error": err.Error()})
			return errorResponse(c, http.StatusBadRequest, "validation_failed", err.Error(), requestID)
		}

		result, err := svc.Search(c.Request().Context(), search.Input{
			Model:    req.Model,
			FreeText: req.FreeTextInput,
			File:     file,
		})
		if err != nil {
			logger.Error("Job search failed", map[string]interface{}{"error": err.Error()})
			return appErrorResponse(c, err, requestID)
		}

		result.RequestID = requestID

		logger.Info("Job search request completed", map[string]interface{}{
			"jobs_count":      result.JobsCount,
			"processing_time": utils.FormatDuration(time.Since(startTime)),
		})

		return c.JSON(http.StatusOK, result)
	}
}

// TechExtractionHandler handles the chained technology extraction entry
// point
func TechExtractionHandler(svc JobSearcher) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := requestID(c)
		logger := logging.LogWithRequestID(requestID)

		var req models.TechExtractionRequest
		if err := c.Bind(&req); err != nil {
			return errorResponse(c, http.StatusBadRequest, "invalid_request", "Invalid request format", requestID)
		}

		if err := validate.Struct(&req); err != nil {
			return errorResponse(c, http.StatusBadRequest, "validation_failed", err.Error(), requestID)
		}

		technologies, err := svc.ExtractTechnologies(c.Request().Context(), req.Model, req.ResumeText)
		if err != nil {
			logger.Error("Technology extraction failed", map[string]interface{}{"error": err.Error()})
			return appErrorResponse(c, err, requestID)
		}

		return c.JSON(http.StatusOK, models.TechExtractionResponse{
			ListOfTech: technologies,
			RequestID:  requestID,
		})
	}
}

// readUploadedFile pulls the optional resume file out of the multipart form
func readUploadedFile(c echo.Context) (*search.UploadedFile, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		// No file part present; the free text field may still carry input
		return nil, nil
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}

	return &search.UploadedFile{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Data:        data,
	}, nil
}

func requestID(c echo.Context) string {
	if id, ok := c.Get("request_id").(string); ok && id != "" {
		return id
	}
	return utils.GenerateRequestID()
}

func errorResponse(c echo.Context, status int, code, message, requestID string) error {
	return c.JSON(status, models.ErrorResponse{
		Error:     code,
		Message:   message,
		RequestID: requestID,
		Timestamp: time.Now(),
	})
}

// appErrorResponse maps pipeline errors to the error envelope using the
// taxonomy kind as the error code
func appErrorResponse(c echo.Context, err error, requestID string) error {
	code := string(utils.KindOf(err))
	if code == "" {
		code = "internal_error"
	}

	return c.JSON(utils.HTTPStatus(err), models.ErrorResponse{
		Error:     code,
		Message:   err.Error(),
		RequestID: requestID,
		Timestamp: time.Now(),
	})
}
