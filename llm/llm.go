package llm

import "context"

// ProviderAzureOpenAI selects the Azure OpenAI chat completion client in NewLLM.
const ProviderAzureOpenAI = "azure-openai"

// OptionType defines the type of option
type OptionType string

const (
	MaxTokensOption     OptionType = "max_tokens"
	APITimeoutOption    OptionType = "api_timeout"
	RetryConfigOption   OptionType = "retry_config"
	ChatCompleterOption OptionType = "chat_completer"
)

// Option represents a generic configuration option for an LLM provider
type Option struct {
	Type  OptionType
	Value any
}

// WithMaxTokens caps the completion length. Zero leaves it to the deployment.
func WithMaxTokens(maxTokens int) Option {
	return Option{
		Type:  MaxTokensOption,
		Value: maxTokens,
	}
}

// WithAPITimeout sets the per request timeout in seconds, retries included.
func WithAPITimeout(timeout int) Option {
	return Option{
		Type:  APITimeoutOption,
		Value: timeout,
	}
}

// Request is a single prompt for the model.
type Request struct {
	SystemPrompt string
	UserPrompt   string
}

// Response carries either the model's text or the reason there is none.
type Response struct {
	Content string
	Error   error
}

// LLM defines the interface for language model prompting
type LLM interface {
	// Prompt sends a request to the language model and returns its response
	Prompt(ctx context.Context, req Request) Response
}
