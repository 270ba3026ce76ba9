package llm

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/chng-cli/chng/logger"
	"github.com/sashabaranov/go-openai"
)

// OpenAIModel implements the LLM interface against any endpoint speaking
// the OpenAI chat-completions schema, including local servers.
type OpenAIModel struct {
	client      *openai.Client
	modelName   string
	maxTokens   int
	temperature float32
	apiTimeout  int // in seconds
}

// NewOpenAI creates a client for the given base URL. An empty API key is
// allowed: the Authorization header is dropped entirely so unauthenticated
// local servers accept the request.
func NewOpenAI(baseURL, apiKey string, opts ...Option) *OpenAIModel {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	if apiKey == "" {
		config.HTTPClient = &http.Client{Transport: anonymousTransport{http.DefaultTransport}}
	}

	model := &OpenAIModel{
		client:      openai.NewClientWithConfig(config),
		modelName:   openai.GPT3Dot5Turbo,
		maxTokens:   1000,
		temperature: 0.3,
		apiTimeout:  60,
	}

	for _, opt := range opts {
		switch opt.Type {
		case ModelNameOption:
			if modelName, ok := opt.Value.(string); ok {
				model.modelName = modelName
			}
		case MaxTokensOption:
			if maxTokens, ok := opt.Value.(int); ok {
				model.maxTokens = maxTokens
			}
		case TemperatureOption:
			if temperature, ok := opt.Value.(float32); ok {
				model.temperature = temperature
			}
		case APITimeoutOption:
			if timeout, ok := opt.Value.(int); ok {
				model.apiTimeout = timeout
			}
		}
	}

	logger.Debugf("OpenAI client initialized with base URL: %s, model: %s, max tokens: %d, timeout: %d seconds",
		config.BaseURL, model.modelName, model.maxTokens, model.apiTimeout)

	return model
}

// Prompt sends a single chat completion request and returns the response
func (o *OpenAIModel) Prompt(req Request) Response {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(o.apiTimeout)*time.Second)
	defer cancel()

	var messages []openai.ChatCompletionMessage
	if req.SystemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.SystemPrompt,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.UserPrompt,
	})

	chatReq := openai.ChatCompletionRequest{
		Model:       o.modelName,
		Messages:    messages,
		MaxTokens:   o.maxTokens,
		Temperature: o.temperature,
	}

	logger.Infof("Sending request to %s with max tokens %d", o.modelName, o.maxTokens)

	resp, err := o.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		classified := classifyError(err)
		logger.Errorf("Chat completion failed: %v", classified)
		return Response{Error: classified}
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		logger.Error("Chat completion response contained no usable content")
		return Response{Error: ErrMalformedResponse}
	}

	return Response{Content: resp.Choices[0].Message.Content}
}

// classifyError maps transport and API failures onto the error taxonomy.
func classifyError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if isAuthStatus(apiErr.HTTPStatusCode) {
			return &AuthError{StatusCode: apiErr.HTTPStatusCode, Message: apiErr.Message}
		}
		return &APIError{StatusCode: apiErr.HTTPStatusCode, Message: apiErr.Message}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		if isAuthStatus(reqErr.HTTPStatusCode) {
			return &AuthError{StatusCode: reqErr.HTTPStatusCode, Message: reqErr.Error()}
		}
		return &APIError{StatusCode: reqErr.HTTPStatusCode, Message: reqErr.Error()}
	}

	return &NetworkError{Err: err}
}

// anonymousTransport strips any Authorization header so unauthenticated
// local servers never see an empty bearer token.
type anonymousTransport struct {
	base http.RoundTripper
}

func (t anonymousTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Del("Authorization")
	return t.base.RoundTrip(req)
}
