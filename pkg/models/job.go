package models

// Job represents a single job listing returned by the model. Every field is
// supplied verbatim by the remote model; no local validation or URL checking
// is performed beyond schema-shape decoding.
type Job struct {
	Title                  string   `json:"title"`
	CompanyName            string   `json:"company_name"`
	Location               string   `json:"location"`
	URL                    string   `json:"url"`
	Salary                 string   `json:"salary"`
	Skills                 []string `json:"skills"`
	JobType                string   `json:"job_type"`
	EducationQualification string   `json:"education_qualification"`
	Description            string   `json:"description"`
}

// JobList is the schema shape requested from the model for job searches
type JobList struct {
	Jobs []Job `json:"jobs"`
}

// TechnologyList is the schema shape requested from the model for
// technology extraction. Capped at 10 entries by prompt instruction only;
// the model is expected, not guaranteed, to comply.
type TechnologyList struct {
	ListOfTech []string `json:"list_of_tech"`
}
