// Package openai implements the inference.Client interface against the
// OpenAI HTTP API: chat completions for structured lookups and stories,
// image generation for illustrations and speech synthesis for audio.
package openai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/at-ishikawa/lingopop/internal/inference"
	"github.com/avast/retry-go"
	"resty.dev/v3"
)

// Config holds the client settings. Model serves text lookups and stories;
// ImageModel and SpeechModel serve the best-effort calls.
type Config struct {
	APIKey        string
	Model         string
	ImageModel    string
	SpeechModel   string
	Voice         string
	Timeout       time.Duration
	RetryAttempts uint
}

type Client struct {
	httpClient       *resty.Client
	model            string
	imageModel       string
	speechModel      string
	voice            string
	maxRetryAttempts uint
}

func NewClient(cfg Config) *Client {
	client := resty.New()
	client.SetBaseURL("https://api.openai.com/v1")
	client.SetHeader("Authorization", "Bearer "+cfg.APIKey)
	client.SetHeader("Content-Type", "application/json")
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}

	return &Client{
		httpClient:       client,
		model:            cfg.Model,
		imageModel:       cfg.ImageModel,
		speechModel:      cfg.SpeechModel,
		voice:            cfg.Voice,
		maxRetryAttempts: cfg.RetryAttempts,
	}
}

func (client Client) Close() error {
	return client.httpClient.Close()
}

// GetModel returns the chat model name configured for this client
func (client Client) GetModel() string {
	return client.model
}

type ChatCompletionRequest struct {
	Model          string          `json:"model"`
	Messages       []Message       `json:"messages"`
	Temperature    float32         `json:"temperature,omitempty"`
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
}

type ResponseFormat struct {
	Type       string      `json:"type"`
	JSONSchema *JSONSchema `json:"json_schema,omitempty"`
}

type JSONSchema struct {
	Name   string          `json:"name"`
	Strict bool            `json:"strict"`
	Schema json.RawMessage `json:"schema"`
}

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type ChatCompletionResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

type Choice struct {
	Index        int           `json:"index"`
	Message      ChoiceMessage `json:"message"`
	FinishReason string        `json:"finish_reason"`
}

type ChoiceMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// lookupTermSchema pins the reply of LookupTerm to the exact field set the
// dictionary entry needs, so the content parses without free-text scraping.
const lookupTermSchema = `{
  "type": "object",
  "properties": {
    "definition": {"type": "string"},
    "phonetic": {"type": "string"},
    "examples": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "target": {"type": "string"},
          "native": {"type": "string"}
        },
        "required": ["target", "native"],
        "additionalProperties": false
      }
    },
    "usageNote": {"type": "string"}
  },
  "required": ["definition", "phonetic", "examples", "usageNote"],
  "additionalProperties": false
}`

// LookupTerm implements the inference.Client interface
func (client *Client) LookupTerm(
	ctx context.Context,
	params inference.LookupTermRequest,
) (inference.LookupTermResponse, error) {
	var result inference.LookupTermResponse
	if err := retry.Do(
		func() error {
			response, err := client.lookupTerm(ctx, params)
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			result = response
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	); err != nil {
		return inference.LookupTermResponse{}, err
	}
	return result, nil
}

func (client *Client) lookupTerm(
	ctx context.Context,
	params inference.LookupTermRequest,
) (inference.LookupTermResponse, error) {
	systemPrompt := `You are a dictionary for language learners. The user gives you a word or phrase in their target language. Reply with a JSON object containing:
- "definition": a natural language definition in the user's native language
- "phonetic": a phonetic transcription if applicable, otherwise an empty string
- "examples": exactly 2 objects, each with "target" (a sentence in the target language) and "native" (its translation in the native language)
- "usageNote": a fun, lively, casual explanation of cultural nuance, tone, or common confusion. You MUST mention related words (synonyms or words that look similar) and briefly explain how they differ in usage. Keep it concise. No greetings.

Return ONLY JSON.`

	userMessage := fmt.Sprintf(`Analyze the text %q.
Target language: %s.
User's native language: %s.`, params.Term, params.TargetLanguage, params.NativeLanguage)

	requestBody := ChatCompletionRequest{
		Model:       client.model,
		Temperature: 0.3,
		Messages: []Message{
			{Role: RoleSystem, Content: systemPrompt},
			{Role: RoleUser, Content: userMessage},
		},
		ResponseFormat: &ResponseFormat{
			Type: "json_schema",
			JSONSchema: &JSONSchema{
				Name:   "dictionary_lookup",
				Strict: true,
				Schema: json.RawMessage(lookupTermSchema),
			},
		},
	}

	content, err := client.completeChat(ctx, requestBody)
	if err != nil {
		return inference.LookupTermResponse{}, err
	}

	var decoded inference.LookupTermResponse
	if err := json.NewDecoder(strings.NewReader(content)).Decode(&decoded); err != nil {
		slog.Default().Error("Failed to parse OpenAI lookup response as JSON",
			"term", params.Term,
			"error", err)
		return inference.LookupTermResponse{}, fmt.Errorf("json.Unmarshal(%s) > %w", content, err)
	}
	return decoded, nil
}

// completeChat posts a chat completion request and returns the first choice's content.
func (client *Client) completeChat(ctx context.Context, requestBody ChatCompletionRequest) (string, error) {
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(requestBody).
		SetResult(&ChatCompletionResponse{}).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return "", fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}

	responseBody := response.Result().(*ChatCompletionResponse)
	if responseBody == nil || len(responseBody.Choices) == 0 {
		return "", fmt.Errorf("empty response body or choices: %s", response.String())
	}

	content := responseBody.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("empty response content: %s", response.String())
	}
	slog.Default().Debug("openai response content",
		"request", requestBody,
		"response", responseBody,
	)
	return content, nil
}

type ImageGenerationRequest struct {
	Model          string `json:"model"`
	Prompt         string `json:"prompt"`
	N              int    `json:"n"`
	Size           string `json:"size"`
	ResponseFormat string `json:"response_format"`
}

type ImageGenerationResponse struct {
	Created int64       `json:"created"`
	Data    []ImageData `json:"data"`
}

type ImageData struct {
	B64JSON string `json:"b64_json"`
}

// GenerateIllustration implements the inference.Client interface. A failed or
// imageless reply returns an error; callers treat that as an absent
// illustration rather than a hard failure.
func (client *Client) GenerateIllustration(ctx context.Context, term string) (inference.Illustration, error) {
	requestBody := ImageGenerationRequest{
		Model:          client.imageModel,
		Prompt:         fmt.Sprintf("Create a bright, fun, vector-art style illustration representing the concept of: %q. Minimalist, colorful, flat design.", term),
		N:              1,
		Size:           "1024x1024",
		ResponseFormat: "b64_json",
	}

	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(requestBody).
		SetResult(&ImageGenerationResponse{}).
		Post("/images/generations")
	if err != nil {
		return inference.Illustration{}, fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return inference.Illustration{}, fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}

	responseBody := response.Result().(*ImageGenerationResponse)
	if responseBody == nil || len(responseBody.Data) == 0 || responseBody.Data[0].B64JSON == "" {
		return inference.Illustration{}, fmt.Errorf("no image in response: %s", response.String())
	}

	data, err := base64.StdEncoding.DecodeString(responseBody.Data[0].B64JSON)
	if err != nil {
		return inference.Illustration{}, fmt.Errorf("base64.DecodeString > %w", err)
	}
	return inference.Illustration{
		Present:  true,
		MIMEType: "image/png",
		Data:     data,
	}, nil
}

type SpeechRequest struct {
	Model          string `json:"model"`
	Input          string `json:"input"`
	Voice          string `json:"voice"`
	ResponseFormat string `json:"response_format"`
}

// GenerateSpeech implements the inference.Client interface. The reply body is
// the raw audio container, not JSON.
func (client *Client) GenerateSpeech(ctx context.Context, text string) (inference.Speech, error) {
	requestBody := SpeechRequest{
		Model:          client.speechModel,
		Input:          text,
		Voice:          client.voice,
		ResponseFormat: "wav",
	}

	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(requestBody).
		Post("/audio/speech")
	if err != nil {
		return inference.Speech{}, fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return inference.Speech{}, fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}

	data := response.Bytes()
	if len(data) == 0 {
		return inference.Speech{}, fmt.Errorf("empty audio response")
	}
	return inference.Speech{
		Present: true,
		Format:  "wav",
		Data:    data,
	}, nil
}

// GenerateStory implements the inference.Client interface. An empty term list
// short-circuits without a remote call.
func (client *Client) GenerateStory(
	ctx context.Context,
	params inference.GenerateStoryRequest,
) (string, error) {
	if len(params.Terms) == 0 {
		return "", nil
	}

	var result string
	if err := retry.Do(
		func() error {
			response, err := client.generateStory(ctx, params)
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			result = response
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	); err != nil {
		return "", err
	}
	return result, nil
}

func (client *Client) generateStory(
	ctx context.Context,
	params inference.GenerateStoryRequest,
) (string, error) {
	userMessage := fmt.Sprintf(`Create a short, funny story (max 150 words) in %s using these words: %s.
After the story, provide a brief summary in %s.
Highlight the used words in bold (markdown) if possible.
Keep it simple and educational.`,
		params.TargetLanguage,
		strings.Join(params.Terms, ", "),
		params.NativeLanguage,
	)

	requestBody := ChatCompletionRequest{
		Model:       client.model,
		Temperature: 0.7,
		Messages: []Message{
			{Role: RoleUser, Content: userMessage},
		},
	}

	content, err := client.completeChat(ctx, requestBody)
	if err != nil {
		return "", err
	}
	return content, nil
}
