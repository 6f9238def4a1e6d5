package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobsearch-agent/internal/search"
	"jobsearch-agent/pkg/models"
	"jobsearch-agent/pkg/utils"
)

type fakeSearcher struct {
	gotInput search.Input
	result   *models.JobSearchResponse
	techs    []string
	err      error
}

func (f *fakeSearcher) Search(ctx context.Context, in search.Input) (*models.JobSearchResponse, error) {
	f.gotInput = in
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func (f *fakeSearcher) ExtractTechnologies(ctx context.Context, model, resumeText string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.techs, nil
}

func doJSON(t *testing.T, handler echo.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs/search", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler(c))
	return rec
}

func TestJobSearchHandler_JSONRequest(t *testing.T) {
	searcher := &fakeSearcher{
		result: &models.JobSearchResponse{
			SummaryText: "Based on your request: remote React job, 5 years experience",
			Jobs:        []models.Job{{Title: "React Developer"}},
			JobsCount:   1,
		},
	}

	rec := doJSON(t, JobSearchHandler(searcher),
		`{"model":"sonar-pro","free_text_input":"remote React job, 5 years experience"}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.JobSearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.JobsCount)
	assert.Equal(t, "Based on your request: remote React job, 5 years experience", resp.SummaryText)
	assert.NotEmpty(t, resp.RequestID)

	assert.Equal(t, "sonar-pro", searcher.gotInput.Model)
	assert.Equal(t, "remote React job, 5 years experience", searcher.gotInput.FreeText)
	assert.Nil(t, searcher.gotInput.File)
}

func TestJobSearchHandler_MissingModel(t *testing.T) {
	rec := doJSON(t, JobSearchHandler(&fakeSearcher{}), `{"free_text_input":"anything"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "validation_failed", resp.Error)
}

func TestJobSearchHandler_MissingInputMapsTo400(t *testing.T) {
	searcher := &fakeSearcher{err: utils.NewMissingInputError()}

	rec := doJSON(t, JobSearchHandler(searcher), `{"model":"sonar-pro"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "missing_input", resp.Error)
}

func TestJobSearchHandler_UpstreamFailureMapsTo502(t *testing.T) {
	searcher := &fakeSearcher{err: utils.NewUpstreamUnavailableError(errors.New("status 500"))}

	rec := doJSON(t, JobSearchHandler(searcher), `{"model":"sonar-pro","free_text_input":"x"}`)

	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "upstream_unavailable", resp.Error)
}

func TestJobSearchHandler_MultipartUpload(t *testing.T) {
	searcher := &fakeSearcher{
		result: &models.JobSearchResponse{Jobs: []models.Job{}, JobsCount: 0},
	}

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("model", "sonar-pro"))

	header := make(map[string][]string)
	header["Content-Disposition"] = []string{`form-data; name="file"; filename="resume.pdf"`}
	header["Content-Type"] = []string{"application/pdf"}
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	part.Write([]byte("%PDF-1.4 fake"))
	require.NoError(t, writer.Close())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs/search", body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, JobSearchHandler(searcher)(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, searcher.gotInput.File)
	assert.Equal(t, "resume.pdf", searcher.gotInput.File.Filename)
	assert.Equal(t, "application/pdf", searcher.gotInput.File.ContentType)
	assert.Equal(t, []byte("%PDF-1.4 fake"), searcher.gotInput.File.Data)
	assert.Equal(t, "sonar-pro", searcher.gotInput.Model)
}

func TestTechExtractionHandler(t *testing.T) {
	searcher := &fakeSearcher{techs: []string{"Go", "Docker"}}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/technologies",
		strings.NewReader(`{"model":"sonar","resume_text":"Go and Docker experience"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, TechExtractionHandler(searcher)(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.TechExtractionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Go", "Docker"}, resp.ListOfTech)
}

func TestTechExtractionHandler_MissingResumeText(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/technologies",
		strings.NewReader(`{"model":"sonar"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, TechExtractionHandler(&fakeSearcher{})(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

type fakeLister struct {
	files []string
	err   error
}

func (f *fakeLister) List() ([]string, error) {
	return f.files, f.err
}

func TestUploadListHandler(t *testing.T) {
	lister := &fakeLister{files: []string{"resume_20260828_143005.pdf", "cv_20260828_143006.docx"}}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/uploads", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, UploadListHandler(lister)(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.UploadListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, lister.files, resp.Files)
}

func TestUploadListHandler_Failure(t *testing.T) {
	lister := &fakeLister{err: errors.New("directory unreadable")}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/uploads", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, UploadListHandler(lister)(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
