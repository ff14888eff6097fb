package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/bitrise-io/bitrise-plugins-ai-testgen/config"
	"github.com/bitrise-io/bitrise-plugins-ai-testgen/generator"
	"github.com/bitrise-io/bitrise-plugins-ai-testgen/llm"
	"github.com/bitrise-io/bitrise-plugins-ai-testgen/logger"
	"github.com/bitrise-io/bitrise-plugins-ai-testgen/output"
)

type generateOptions struct {
	getenv      func(string) string
	newLLM      func(cfg config.Config, opts ...llm.Option) (llm.LLM, error)
	codeSnippet string
	outputFile  string
	llmOptions  []llm.Option
}

// runGenerate loads the configuration, asks for tests of opts.codeSnippet and
// saves them. Only configuration and client setup errors are returned; a failed
// generation or save is reported on out and ends the run normally.
func runGenerate(ctx context.Context, out io.Writer, opts generateOptions) error {
	cfg, err := config.Load(opts.getenv)
	if err != nil {
		fmt.Fprintf(out, "Configuration error: %v\n", err)
		fmt.Fprintln(out, "Please check your environment variables and try again.")
		return err
	}
	logger.Debugf("Using configuration: %s", cfg)

	client, err := opts.newLLM(cfg, opts.llmOptions...)
	if err != nil {
		fmt.Fprintf(out, "Failed to create client for Azure OpenAI: %v\n", err)
		return err
	}

	fmt.Fprint(out, "🧪 Generating unit tests for the provided code...\n\n")

	result := generator.New(client).Generate(ctx, opts.codeSnippet)
	if !result.Ok() {
		fmt.Fprintln(out, "Failed to generate tests. Please check your configuration and try again.")
		return nil
	}

	fmt.Fprint(out, "✅ Successfully generated tests:\n\n")
	fmt.Fprintln(out, result.Tests)

	if err := output.Save(opts.outputFile, result.Tests); err != nil {
		logger.Errorf("Saving tests failed: %v", err)
		fmt.Fprintf(out, "Error saving tests to file: %v\n", err)
		return nil
	}
	fmt.Fprintf(out, "\n💾 Tests saved to '%s'\n", opts.outputFile)

	return nil
}
