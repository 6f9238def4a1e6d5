package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobsearch-agent/pkg/utils"
)

func TestBuildJobSearchPrompt_FreeTextOnly(t *testing.T) {
	prompt, err := BuildJobSearchPrompt("remote React job, 5 years experience", nil, 10)
	require.NoError(t, err)

	assert.Contains(t, prompt, "my request is: remote React job, 5 years experience")
	assert.NotContains(t, prompt, "my technical skills are:")
	assert.Contains(t, prompt, "title, company, location, url, salary, skills, type, education requirement, description")
	assert.Contains(t, prompt, "top 10 job listings")
}

func TestBuildJobSearchPrompt_TechnologiesOnly(t *testing.T) {
	prompt, err := BuildJobSearchPrompt("", []string{"Go", "Python", "Kubernetes"}, 10)
	require.NoError(t, err)

	assert.Contains(t, prompt, "my technical skills are: Go, Python, Kubernetes")
	assert.NotContains(t, prompt, "my request is:")
}

func TestBuildJobSearchPrompt_ContainsEveryTechnology(t *testing.T) {
	technologies := []string{"wordpress", "Python", "Java", "React", "PostgreSQL"}

	prompt, err := BuildJobSearchPrompt("", technologies, 10)
	require.NoError(t, err)

	for _, tech := range technologies {
		assert.Contains(t, prompt, tech)
	}
}

func TestBuildJobSearchPrompt_BothInputs(t *testing.T) {
	prompt, err := BuildJobSearchPrompt("remote only", []string{"Go"}, 10)
	require.NoError(t, err)

	requestIdx := strings.Index(prompt, "my request is: remote only")
	skillsIdx := strings.Index(prompt, "my technical skills are: Go")
	require.GreaterOrEqual(t, requestIdx, 0)
	require.GreaterOrEqual(t, skillsIdx, 0)

	// Free text clause comes first
	assert.Less(t, requestIdx, skillsIdx)
}

func TestBuildJobSearchPrompt_MissingInput(t *testing.T) {
	_, err := BuildJobSearchPrompt("   ", nil, 10)
	require.Error(t, err)
	assert.Equal(t, utils.KindMissingInput, utils.KindOf(err))
}

func TestBuildJobSearchPrompt_ConfigurableResultCount(t *testing.T) {
	prompt, err := BuildJobSearchPrompt("backend roles", nil, 25)
	require.NoError(t, err)
	assert.Contains(t, prompt, "top 25 job listings")
}

func TestBuildTechExtractionPrompt(t *testing.T) {
	prompt := BuildTechExtractionPrompt("Senior engineer, Go and Terraform", 10)

	assert.Contains(t, prompt, "top 10 technologies")
	assert.Contains(t, prompt, "Senior engineer, Go and Terraform")
	assert.Contains(t, prompt, "Do not give me any explanation")
}
