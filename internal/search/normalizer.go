package search

import (
	"fmt"
	"strings"

	"jobsearch-agent/pkg/models"
)

// normalizeResult shapes the decoded job list into the client-facing
// envelope. The count is always computed from the decoded sequence, never
// taken from an externally supplied field. No filtering, deduplication or
// ranking happens here: trust-the-model is an explicit design choice.
func normalizeResult(freeText string, technologies []string, jobs []models.Job) *models.JobSearchResponse {
	if jobs == nil {
		jobs = []models.Job{}
	}

	return &models.JobSearchResponse{
		SummaryText:    buildSummary(freeText, technologies),
		TechnologyList: technologies,
		Jobs:           jobs,
		JobsCount:      len(jobs),
	}
}

// buildSummary builds the user-facing summary line from which inputs were
// present. Pure formatting, no external call.
func buildSummary(freeText string, technologies []string) string {
	freeText = strings.TrimSpace(freeText)
	skills := strings.Join(technologies, ", ")

	switch {
	case freeText != "" && len(technologies) > 0:
		return fmt.Sprintf("Based on your request: %s and your resume skills: %s", freeText, skills)
	case freeText != "":
		return fmt.Sprintf("Based on your request: %s", freeText)
	default:
		return fmt.Sprintf("Based on your resume skills: %s", skills)
	}
}
