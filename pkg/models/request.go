package models

// SearchRequest represents the JSON payload for a job search request.
// The multipart variant carries the same fields as form values plus an
// uploaded resume file.
type SearchRequest struct {
	Model         string `json:"model" form:"model" validate:"required"`
	FreeTextInput string `json:"free_text_input,omitempty" form:"free_text_input"`
}

// TechExtractionRequest represents the payload for the chained technology
// extraction entry point
type TechExtractionRequest struct {
	Model      string `json:"model" validate:"required"`
	ResumeText string `json:"resume_text" validate:"required"`
}
