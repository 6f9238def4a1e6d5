package llm

import (
	"context"

	"jobsearch-agent/pkg/models"
)

// Provider defines the interface for remote completion providers. Each call
// is a single attempt: no retries, no caching, no deduplication. Identical
// calls intentionally hit the remote API again since the purpose is fresh
// search results.
type Provider interface {
	// ExtractTechnologies sends a technology-extraction instruction and
	// decodes the reply into a flat keyword list
	ExtractTechnologies(ctx context.Context, model, instruction string) ([]string, error)

	// SearchJobs sends a job-search instruction and decodes the reply into
	// structured job listings
	SearchJobs(ctx context.Context, model, instruction string) ([]models.Job, error)

	// IsHealthy checks if the provider is configured and available
	IsHealthy(ctx context.Context) error

	// GetProviderName returns the name of the provider
	GetProviderName() string
}
