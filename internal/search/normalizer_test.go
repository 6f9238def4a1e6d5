package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jobsearch-agent/pkg/models"
)

func TestNormalizeResult_NilJobsBecomesEmptySlice(t *testing.T) {
	result := normalizeResult("backend roles", nil, nil)

	assert.NotNil(t, result.Jobs)
	assert.Equal(t, 0, result.JobsCount)
}

func TestNormalizeResult_CountNeverTrustsUpstream(t *testing.T) {
	jobs := []models.Job{{Title: "A"}, {Title: "B"}, {Title: "C"}}

	result := normalizeResult("", []string{"Go"}, jobs)
	assert.Equal(t, 3, result.JobsCount)
}

func TestBuildSummary(t *testing.T) {
	assert.Equal(t,
		"Based on your request: remote React job, 5 years experience",
		buildSummary("remote React job, 5 years experience", nil))

	assert.Equal(t,
		"Based on your resume skills: Go, Python",
		buildSummary("", []string{"Go", "Python"}))

	assert.Equal(t,
		"Based on your request: remote only and your resume skills: Go",
		buildSummary("remote only", []string{"Go"}))
}
