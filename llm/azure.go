package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bitrise-io/bitrise-plugins-ai-testgen/common"
	"github.com/bitrise-io/bitrise-plugins-ai-testgen/config"
	"github.com/bitrise-io/bitrise-plugins-ai-testgen/logger"
	"github.com/sashabaranov/go-openai"
)

// Temperature is the fixed sampling temperature for test generation.
const Temperature float32 = 0.3

// ErrNoChoices is returned when the completion response carries no choices.
var ErrNoChoices = errors.New("azure openai response contained no choices")

// ChatCompleter is the part of *openai.Client the Azure model needs.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// WithRetryConfig replaces the transport retry policy.
func WithRetryConfig(retry common.RetryConfig) Option {
	return Option{
		Type:  RetryConfigOption,
		Value: retry,
	}
}

// WithChatCompleter bypasses client construction and sends requests through c.
func WithChatCompleter(c ChatCompleter) Option {
	return Option{
		Type:  ChatCompleterOption,
		Value: c,
	}
}

// AzureOpenAIModel implements the LLM interface on an Azure OpenAI deployment
type AzureOpenAIModel struct {
	client     ChatCompleter
	deployment string
	modelName  string
	maxTokens  int
	apiTimeout int // in seconds
}

// NewLLM returns the client for providerName built from cfg.
func NewLLM(providerName string, cfg config.Config, opts ...Option) (LLM, error) {
	switch providerName {
	case ProviderAzureOpenAI:
		return NewAzureOpenAI(cfg, opts...)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", providerName)
	}
}

// NewAzureOpenAI creates a chat completion client bound to the configured deployment.
func NewAzureOpenAI(cfg config.Config, opts ...Option) (*AzureOpenAIModel, error) {
	if cfg.APIKey() == "" || cfg.Endpoint() == "" || cfg.DeploymentName() == "" {
		errMsg := "azure openai configuration is incomplete"
		logger.Error(errMsg)
		return nil, errors.New(errMsg)
	}

	model := &AzureOpenAIModel{
		deployment: cfg.DeploymentName(),
		modelName:  cfg.ModelName(),
		apiTimeout: common.DefaultAPITimeout,
	}

	retry := common.DefaultRetryConfig()
	for _, opt := range opts {
		switch opt.Type {
		case MaxTokensOption:
			if maxTokens, ok := opt.Value.(int); ok && maxTokens >= 0 {
				model.maxTokens = maxTokens
			}
		case APITimeoutOption:
			if timeout, ok := opt.Value.(int); ok && timeout > 0 {
				model.apiTimeout = timeout
			}
		case RetryConfigOption:
			if r, ok := opt.Value.(common.RetryConfig); ok {
				retry = r
			}
		case ChatCompleterOption:
			if c, ok := opt.Value.(ChatCompleter); ok && c != nil {
				model.client = c
			}
		}
	}

	if model.client == nil {
		clientConfig := openai.DefaultAzureConfig(cfg.APIKey(), cfg.Endpoint())
		clientConfig.APIVersion = cfg.APIVersion()
		// Every model name resolves to the one configured deployment.
		deployment := cfg.DeploymentName()
		clientConfig.AzureModelMapperFunc = func(string) string { return deployment }
		clientConfig.HTTPClient = common.NewRetryableHTTPClient(retry)
		model.client = openai.NewClientWithConfig(clientConfig)
	}

	logger.Debugf("Azure OpenAI client initialized: %s, max tokens: %d, timeout: %d seconds",
		cfg, model.maxTokens, model.apiTimeout)

	return model, nil
}

// Prompt sends a request to the deployment and returns the first choice
func (a *AzureOpenAIModel) Prompt(ctx context.Context, req Request) Response {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, time.Duration(a.apiTimeout)*time.Second)
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
	logger.Debug("User prompt:")
	logger.Debug(req.UserPrompt)

	chatReq := openai.ChatCompletionRequest{
		Model:       a.modelName,
		Messages:    messages,
		MaxTokens:   a.maxTokens,
		Temperature: Temperature,
	}

	logger.Infof("Sending request to Azure OpenAI deployment %s with model %s", a.deployment, a.modelName)

	resp, err := a.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return Response{
			Error: fmt.Errorf("failed to create chat completion: %w", err),
		}
	}

	if len(resp.Choices) == 0 {
		return Response{
			Error: ErrNoChoices,
		}
	}

	return Response{
		Content: resp.Choices[0].Message.Content,
	}
}
