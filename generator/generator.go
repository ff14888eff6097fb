// Package generator turns a code snippet into generated unit tests.
package generator

import (
	"context"
	"errors"
	"strings"

	"github.com/bitrise-io/bitrise-plugins-ai-testgen/llm"
	"github.com/bitrise-io/bitrise-plugins-ai-testgen/logger"
	"github.com/bitrise-io/bitrise-plugins-ai-testgen/prompt"
)

// ErrEmptyResponse is reported when the model answered with only whitespace.
var ErrEmptyResponse = errors.New("model returned an empty response")

// Result is either generated tests or the reason there are none.
type Result struct {
	Tests string
	Err   error
}

// Ok reports whether tests were generated.
func (r Result) Ok() bool {
	return r.Err == nil
}

// Generator asks a model for unit tests of a code snippet.
type Generator struct {
	client llm.LLM
	render func(codeSnippet string) string
}

// New returns a Generator that prompts client with the test generation template.
func New(client llm.LLM) *Generator {
	return &Generator{
		client: client,
		render: prompt.GetTestGenerationPrompt,
	}
}

// Generate sends one request for codeSnippet. Failures never escape as panics
// or returned errors; they are logged and carried in Result.Err.
func (g *Generator) Generate(ctx context.Context, codeSnippet string) Result {
	resp := g.client.Prompt(ctx, llm.Request{
		UserPrompt: g.render(codeSnippet),
	})
	if resp.Error != nil {
		logger.Errorf("Error generating tests: %v", resp.Error)
		return Result{Err: resp.Error}
	}

	tests := strings.TrimSpace(resp.Content)
	if tests == "" {
		logger.Errorf("Error generating tests: %v", ErrEmptyResponse)
		return Result{Err: ErrEmptyResponse}
	}

	logger.Debugf("Generated %d bytes of tests", len(tests))
	return Result{Tests: tests}
}
