package search

import (
	"fmt"
	"strings"

	"jobsearch-agent/pkg/utils"
)

// BuildTechExtractionPrompt wraps resume text with an instruction to return
// a bounded flat list of technology keywords. The instruction forbids prose;
// the model is expected, not guaranteed, to comply, so decoding downstream
// never assumes compliance.
func BuildTechExtractionPrompt(resumeText string, maxTechnologies int) string {
	return fmt.Sprintf(`Fetch the top %d technologies from the resume content.
Just give me the keywords of the technology like wordpress, Python, Java etc..
Do not give me any explanation or any other text.
The content is : %s`, maxTechnologies, resumeText)
}

// BuildJobSearchPrompt composes the job-search instruction from the free
// text input and/or the technology list derived from a resume. Fails with a
// missing-input error when neither source is present.
func BuildJobSearchPrompt(freeText string, technologies []string, maxResults int) (string, error) {
	freeText = strings.TrimSpace(freeText)

	if freeText == "" && len(technologies) == 0 {
		return "", utils.NewMissingInputError()
	}

	var sb strings.Builder

	if freeText != "" {
		sb.WriteString(fmt.Sprintf("my request is: %s\n", freeText))
	}

	if len(technologies) > 0 {
		sb.WriteString(fmt.Sprintf("my technical skills are: %s\n", strings.Join(technologies, ", ")))
	}

	sb.WriteString(`Search all job listings based on my preferences and skills.
For each job provide the following fields: title, company, location, url, salary, skills, type, education requirement, description.
`)
	sb.WriteString(fmt.Sprintf("Please give me the top %d job listings.", maxResults))

	return sb.String(), nil
}
