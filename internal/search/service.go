package search

import (
	"bytes"
	"context"
	"io"
	"strings"

	"jobsearch-agent/internal/config"
	"jobsearch-agent/internal/extractor"
	"jobsearch-agent/internal/logging"
	"jobsearch-agent/pkg/models"
	"jobsearch-agent/pkg/utils"
)

// Gateway is the slice of the LLM manager the search pipeline depends on
type Gateway interface {
	ExtractTechnologies(ctx context.Context, model, instruction string) ([]string, error)
	SearchJobs(ctx context.Context, model, instruction string) ([]models.Job, error)
}

// Archiver persists uploaded resume files
type Archiver interface {
	Save(filename, ext string, r io.Reader) (string, error)
}

// UploadedFile carries an uploaded resume through the pipeline
type UploadedFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Input is one job-search request: free text, an uploaded resume, or both
type Input struct {
	Model    string
	FreeText string
	File     *UploadedFile
}

// Service orchestrates the search pipeline: archive, extract, build the
// instruction, call the model, normalize the reply.
type Service struct {
	config  *config.Config
	gateway Gateway
	archive Archiver
	extract func(data []byte, contentType string) (string, error)
	logger  logging.Logger
}

// NewService creates a new search service
func NewService(cfg *config.Config, gateway Gateway, archive Archiver) *Service {
	return &Service{
		config:  cfg,
		gateway: gateway,
		archive: archive,
		extract: extractor.Extract,
		logger:  logging.GetGlobalLogger(),
	}
}

// Search runs the full pipeline for one request. When a resume is present
// the technology extraction call runs first and its output is folded into
// the job-search instruction, so the two remote calls are strictly
// sequential.
func (s *Service) Search(ctx context.Context, in Input) (*models.JobSearchResponse, error) {
	resumeText := ""

	if in.File != nil {
		if err := s.archiveUpload(in.File); err != nil {
			return nil, err
		}

		text, err := s.extract(in.File.Data, in.File.ContentType)
		if err != nil {
			return nil, err
		}
		resumeText = strings.TrimSpace(text)
	}

	freeText := strings.TrimSpace(in.FreeText)

	// Reject before any upstream call; an empty extraction result counts as
	// no resume input
	if freeText == "" && resumeText == "" {
		return nil, utils.NewMissingInputError()
	}

	var technologies []string
	if resumeText != "" {
		instruction := BuildTechExtractionPrompt(resumeText, s.config.Search.MaxTechnologies)

		techs, err := s.gateway.ExtractTechnologies(ctx, in.Model, instruction)
		if err != nil {
			return nil, err
		}
		technologies = techs

		s.logger.Info("Extracted technologies from resume", map[string]interface{}{
			"model":      in.Model,
			"tech_count": len(technologies),
		})
	}

	instruction, err := BuildJobSearchPrompt(freeText, technologies, s.config.Search.MaxResults)
	if err != nil {
		return nil, err
	}

	jobs, err := s.gateway.SearchJobs(ctx, in.Model, instruction)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Job search completed", map[string]interface{}{
		"model":      in.Model,
		"jobs_count": len(jobs),
	})

	return normalizeResult(freeText, technologies, jobs), nil
}

// ExtractTechnologies serves the chained technology extraction entry point
func (s *Service) ExtractTechnologies(ctx context.Context, model, resumeText string) ([]string, error) {
	if strings.TrimSpace(resumeText) == "" {
		return nil, utils.NewMissingInputError()
	}

	instruction := BuildTechExtractionPrompt(resumeText, s.config.Search.MaxTechnologies)
	return s.gateway.ExtractTechnologies(ctx, model, instruction)
}

// archiveUpload writes the uploaded file to the archive before extraction.
// Best-effort by default: a write failure is logged and the pipeline
// continues. With archive.strict enabled the failure aborts the request.
func (s *Service) archiveUpload(file *UploadedFile) error {
	ext := extractor.Extension(file.ContentType)

	_, err := s.archive.Save(file.Filename, ext, bytes.NewReader(file.Data))
	if err == nil {
		return nil
	}

	if s.config.Archive.Strict {
		return err
	}

	s.logger.Warn("Failed to archive uploaded resume, continuing search", map[string]interface{}{
		"file":  file.Filename,
		"error": err.Error(),
	})
	return nil
}
