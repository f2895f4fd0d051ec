package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	openai "github.com/sashabaranov/go-openai"

	"github.com/studydeck/studydeck-api/internal/config"
	"github.com/studydeck/studydeck-api/internal/domain"
	"github.com/studydeck/studydeck-api/internal/generation"
)

// chatClient is the slice of the go-openai client the generator uses.
// Narrowing it to one method keeps the generator testable without a server.
type chatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Generator implements generation.Generator using an Azure OpenAI
// chat-completion deployment. The underlying client is built once at
// startup and is safe for concurrent use; the generator itself holds no
// mutable per-request state.
type Generator struct {
	logger      *slog.Logger
	client      chatClient
	deployment  string
	temperature float32
}

// NewGenerator creates a Generator from the LLM configuration.
// The endpoint, key, API version and deployment name come from the
// environment-derived config assembled at startup.
func NewGenerator(logger *slog.Logger, cfg config.LLMConfig) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("%w: endpoint cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.Deployment == "" {
		return nil, fmt.Errorf("%w: deployment name cannot be empty", generation.ErrInvalidConfig)
	}

	clientConfig := openai.DefaultAzureConfig(cfg.APIKey, cfg.Endpoint)
	if cfg.APIVersion != "" {
		clientConfig.APIVersion = cfg.APIVersion
	}

	return &Generator{
		logger:      logger,
		client:      openai.NewClientWithConfig(clientConfig),
		deployment:  cfg.Deployment,
		temperature: cfg.Temperature,
	}, nil
}

// GenerateStudySet issues one chat-completion call with the composed
// prompt, then parses and validates the model's JSON output. JSON mode
// asks the model for a single JSON object; the response is still treated
// as untrusted text and fully validated before use. No retries: a
// malformed response is reported to the caller with the raw text attached.
func (g *Generator) GenerateStudySet(
	ctx context.Context,
	req generation.Request,
) (*domain.StudySet, error) {
	userPrompt, err := generation.UserPrompt(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
	}

	g.logger.InfoContext(ctx, "requesting study set from model",
		"deployment", g.deployment,
		"notes_length", len(req.Notes))

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.deployment,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: generation.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: g.temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		g.logger.ErrorContext(ctx, "chat completion call failed", "error", err)
		return nil, fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
	}

	if len(resp.Choices) == 0 {
		return nil, &generation.InvalidResponseError{
			Reason: errors.New("response contains no choices"),
		}
	}

	raw := resp.Choices[0].Message.Content
	set, err := parseStudySet(raw)
	if err != nil {
		g.logger.WarnContext(ctx, "model output failed validation",
			"error", err,
			"raw_length", len(raw))
		return nil, &generation.InvalidResponseError{Raw: raw, Reason: err}
	}

	g.logger.InfoContext(ctx, "study set generated",
		"flashcards", len(set.Flashcards),
		"practice_items", len(set.Practice))

	return set, nil
}

// parseStudySet parses raw model output as JSON and validates it against
// the study set schema. Defaults are applied before the strict checks so
// an absent difficulty does not fail enum validation.
func parseStudySet(raw string) (*domain.StudySet, error) {
	var set domain.StudySet
	if err := json.Unmarshal([]byte(raw), &set); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	set.Normalize()
	if err := set.Validate(); err != nil {
		return nil, err
	}

	return &set, nil
}
