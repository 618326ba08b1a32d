package models

import (
	"encoding/json"
	"errors"
)

// Chat roles accepted by the provider.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// ChatMessage is a single turn of a chat conversation.
type ChatMessage struct {
	Role    string `json:"role" validate:"required,oneof=system user assistant tool"`
	Content string `json:"content"`
	Name    string `json:"name,omitempty"`
}

// ChatCompletionRequest mirrors the provider's chat completion request.
type ChatCompletionRequest struct {
	Messages         []ChatMessage `json:"messages" validate:"required,min=1,dive"`
	Model            string        `json:"model,omitempty"`
	Temperature      *float64      `json:"temperature,omitempty" validate:"omitempty,gte=0,lte=2"`
	MaxTokens        *int          `json:"max_tokens,omitempty" validate:"omitempty,gt=0"`
	TopP             *float64      `json:"top_p,omitempty" validate:"omitempty,gte=0,lte=1"`
	FrequencyPenalty *float64      `json:"frequency_penalty,omitempty" validate:"omitempty,gte=-2,lte=2"`
	PresencePenalty  *float64      `json:"presence_penalty,omitempty" validate:"omitempty,gte=-2,lte=2"`
	Stop             []string      `json:"stop,omitempty" validate:"omitempty,max=4"`
	Stream           bool          `json:"stream,omitempty"`
	User             string        `json:"user,omitempty"`
}

// ChatCompletionChoice is one generated alternative.
type ChatCompletionChoice struct {
	Index        int         `json:"index"`
	Message      ChatMessage `json:"message"`
	FinishReason string      `json:"finish_reason,omitempty"`
}

// ChatCompletionResponse mirrors the provider's chat completion response.
type ChatCompletionResponse struct {
	ID      string                 `json:"id"`
	Object  string                 `json:"object"`
	Created int64                  `json:"created"`
	Model   string                 `json:"model"`
	Choices []ChatCompletionChoice `json:"choices"`
	Usage   map[string]any         `json:"usage,omitempty"`
}

// StringList decodes either a single JSON string or an array of strings.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler.
func (s *StringList) UnmarshalJSON(b []byte) error {
	var single string
	if err := json.Unmarshal(b, &single); err == nil {
		*s = StringList{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(b, &many); err != nil {
		return errors.New("expected a string or an array of strings")
	}
	*s = many
	return nil
}

// EmbeddingRequest mirrors the provider's embeddings request.
type EmbeddingRequest struct {
	Input          StringList `json:"input" validate:"required,min=1,dive,required"`
	Model          string     `json:"model,omitempty"`
	EncodingFormat string     `json:"encoding_format,omitempty" validate:"omitempty,oneof=float base64"`
	Dimensions     *int       `json:"dimensions,omitempty" validate:"omitempty,gt=0"`
	User           string     `json:"user,omitempty"`
}

// EmbeddingData is a single embedding vector.
type EmbeddingData struct {
	Object    string    `json:"object"`
	Embedding []float64 `json:"embedding"`
	Index     int       `json:"index"`
}

// EmbeddingResponse mirrors the provider's embeddings response.
type EmbeddingResponse struct {
	Object string          `json:"object"`
	Data   []EmbeddingData `json:"data"`
	Model  string          `json:"model"`
	Usage  map[string]any  `json:"usage,omitempty"`
}

// ImageGenerationRequest mirrors the provider's image generation request.
type ImageGenerationRequest struct {
	Prompt  string `json:"prompt" validate:"required,max=4000"`
	Model   string `json:"model,omitempty"`
	Size    string `json:"size,omitempty" validate:"omitempty,oneof=256x256 512x512 1024x1024 1792x1024 1024x1792"`
	Quality string `json:"quality,omitempty" validate:"omitempty,oneof=standard hd"`
	N       int    `json:"n,omitempty" validate:"omitempty,gte=1,lte=10"`
	Style   string `json:"style,omitempty" validate:"omitempty,oneof=vivid natural"`
}

// ImageData is a single generated image.
type ImageData struct {
	URL           string `json:"url,omitempty"`
	B64JSON       string `json:"b64_json,omitempty"`
	RevisedPrompt string `json:"revised_prompt,omitempty"`
}

// ImageResponse mirrors the provider's image generation response.
type ImageResponse struct {
	Created int64       `json:"created"`
	Data    []ImageData `json:"data"`
}

// ModerationRequest mirrors the provider's moderation request.
type ModerationRequest struct {
	Input StringList `json:"input" validate:"required,min=1"`
	Model string     `json:"model,omitempty"`
}

// ModerationResult is the verdict for one input.
type ModerationResult struct {
	Flagged        bool               `json:"flagged"`
	Categories     map[string]bool    `json:"categories"`
	CategoryScores map[string]float64 `json:"category_scores"`
}

// ModerationResponse mirrors the provider's moderation response.
type ModerationResponse struct {
	ID      string             `json:"id"`
	Model   string             `json:"model"`
	Results []ModerationResult `json:"results"`
}

// ModelInfo describes one provider model.
type ModelInfo struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Created int64  `json:"created"`
	OwnedBy string `json:"owned_by"`
}

// ModelList is the provider's model listing.
type ModelList struct {
	Object string      `json:"object"`
	Data   []ModelInfo `json:"data"`
}

// HealthResponse reports the health of an upstream-dependent service.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version,omitempty"`
}
