package models

import "time"

// JobSearchResponse is the client-facing envelope for a job search.
// JobsCount is always computed from len(Jobs), never taken from upstream.
type JobSearchResponse struct {
	SummaryText    string   `json:"summary_text"`
	TechnologyList []string `json:"technology_list,omitempty"`
	Jobs           []Job    `json:"jobs"`
	JobsCount      int      `json:"jobs_count"`
	RequestID      string   `json:"request_id,omitempty"`
}

// TechExtractionResponse is the envelope for the technology extraction
// entry point
type TechExtractionResponse struct {
	ListOfTech []string `json:"list_of_tech"`
	RequestID  string   `json:"request_id,omitempty"`
}

// UploadListResponse lists archived resume files
type UploadListResponse struct {
	Files []string `json:"files"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    time.Duration     `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}
