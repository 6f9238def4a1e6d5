package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"jobsearch-agent/internal/config"
	"jobsearch-agent/internal/logging"
	"jobsearch-agent/pkg/models"
	"jobsearch-agent/pkg/utils"
)

const systemPrompt = "Be precise and concise. Do not give any explanation or any other text."

// PerplexityProvider implements the completion provider interface against
// the Perplexity chat/completions API
type PerplexityProvider struct {
	config     *config.Config
	httpClient *http.Client
	logger     logging.Logger
}

// NewPerplexityProvider creates a new Perplexity provider instance
func NewPerplexityProvider(cfg *config.Config) *PerplexityProvider {
	return &PerplexityProvider{
		config: cfg,
		httpClient: &http.Client{
			Timeout: cfg.LLM.Timeout,
		},
		logger: logging.GetGlobalLogger(),
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type       string     `json:"type"`
	JSONSchema jsonSchema `json:"json_schema"`
}

type jsonSchema struct {
	Schema map[string]interface{} `json:"schema"`
}

type chatRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	ResponseFormat responseFormat `json:"response_format"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// ExtractTechnologies sends the instruction with the technology-list schema
// and decodes the keyword list
func (p *PerplexityProvider) ExtractTechnologies(ctx context.Context, model, instruction string) ([]string, error) {
	var result models.TechnologyList
	if err := p.complete(ctx, model, instruction, technologyListSchema(), &result); err != nil {
		return nil, err
	}
	return result.ListOfTech, nil
}

// SearchJobs sends the instruction with the job-list schema and decodes the
// job listings
func (p *PerplexityProvider) SearchJobs(ctx context.Context, model, instruction string) ([]models.Job, error) {
	var result models.JobList
	if err := p.complete(ctx, model, instruction, jobListSchema(), &result); err != nil {
		return nil, err
	}
	return result.Jobs, nil
}

// IsHealthy verifies the provider is configured. The remote API has no
// cheap ping endpoint, so this only checks that credentials are present.
func (p *PerplexityProvider) IsHealthy(ctx context.Context) error {
	if p.config.LLM.APIKey == "" {
		return fmt.Errorf("perplexity API key is not configured")
	}
	return nil
}

// GetProviderName returns the name of the provider
func (p *PerplexityProvider) GetProviderName() string {
	return "perplexity"
}

// complete issues one chat completion request with the given output schema
// and unmarshals the inner message content into out. Single attempt: the
// remote API enforces its own quota and the caller is interactive.
func (p *PerplexityProvider) complete(ctx context.Context, model, instruction string, schema map[string]interface{}, out interface{}) error {
	startTime := time.Now()

	// The model identifier is passed through unvalidated; an invalid one is
	// rejected by the remote service
	reqBody := chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: instruction},
		},
		ResponseFormat: responseFormat{
			Type:       "json_schema",
			JSONSchema: jsonSchema{Schema: schema},
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("failed to marshal completion request: %w", err)
	}

	url := p.config.LLM.BaseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create completion request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.config.LLM.APIKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return utils.NewUpstreamUnavailableError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return utils.NewUpstreamUnavailableError(err)
	}

	if resp.StatusCode != http.StatusOK {
		return utils.NewUpstreamUnavailableError(
			fmt.Errorf("completion API returned status %d: %s", resp.StatusCode, truncate(string(body), 512)))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return utils.NewUpstreamDecodeError(err)
	}

	if len(chatResp.Choices) == 0 {
		return utils.NewUpstreamDecodeError(fmt.Errorf("no choices in completion response"))
	}

	// The inner content must itself be a JSON document matching the
	// requested schema. A non-JSON explanatory message from the model is a
	// decode failure, never coerced to an empty result.
	content := chatResp.Choices[0].Message.Content
	if err := json.Unmarshal([]byte(content), out); err != nil {
		return utils.NewUpstreamDecodeError(fmt.Errorf("model reply is not valid JSON: %w", err))
	}

	p.logger.Debug("Completion request finished", map[string]interface{}{
		"provider":        "perplexity",
		"model":           model,
		"processing_time": time.Since(startTime).String(),
	})

	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
