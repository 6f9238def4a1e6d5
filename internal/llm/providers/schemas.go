package providers

// JSON schemas sent in the response_format field so the remote model
// returns decodable documents. Shapes mirror pkg/models.TechnologyList and
// pkg/models.JobList.

func technologyListSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"list_of_tech": map[string]interface{}{
				"type":  "array",
				"items": map[string]interface{}{"type": "string"},
			},
		},
		"required": []string{"list_of_tech"},
	}
}

func jobListSchema() map[string]interface{} {
	stringField := map[string]interface{}{"type": "string"}

	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"jobs": map[string]interface{}{
				"type": "array",
				"items": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"title":        stringField,
						"company_name": stringField,
						"location":     stringField,
						"url":          stringField,
						"salary":       stringField,
						"skills": map[string]interface{}{
							"type":  "array",
							"items": map[string]interface{}{"type": "string"},
						},
						"job_type":                stringField,
						"education_qualification": stringField,
						"description":             stringField,
					},
					"required": []string{
						"title", "company_name", "location", "url", "salary",
						"skills", "job_type", "education_qualification", "description",
					},
				},
			},
		},
		"required": []string{"jobs"},
	}
}
