package cmd

import (
	"fmt"
	"os"

	"github.com/bitrise-io/bitrise-plugins-ai-testgen/common"
	"github.com/bitrise-io/bitrise-plugins-ai-testgen/config"
	"github.com/bitrise-io/bitrise-plugins-ai-testgen/llm"
	"github.com/bitrise-io/bitrise-plugins-ai-testgen/logger"
	"github.com/bitrise-io/bitrise-plugins-ai-testgen/prompt"
	"github.com/spf13/cobra"
)

// rootFlags holds the command line flags of one root command instance.
type rootFlags struct {
	logLevel     string
	inputFile    string
	outputFile   string
	settingsFile string
	envFile      string
	maxTokens    int
	apiTimeout   int
}

// rootDeps are the process facing collaborators of the root command.
type rootDeps struct {
	getenv func(string) string
	newLLM func(cfg config.Config, opts ...llm.Option) (llm.LLM, error)
}

var rootCmd = newRootCmd(rootDeps{
	getenv: os.Getenv,
	newLLM: newAzureLLM,
})

func newRootCmd(deps rootDeps) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "ai-testgen",
		Short: "Bitrise AI Test Generator - generate unit tests using Azure OpenAI",
		Long: `Bitrise AI Test Generator sends a code snippet to an Azure OpenAI chat deployment
and asks it for pytest unit tests. The tests are printed and saved to a file.

The deployment is configured through the AZURE_OPENAI_DEPLOYMENT_NAME, AZURE_OPENAI_MODEL_NAME,
AZURE_OPENAI_API_KEY, AZURE_OPENAI_API_VERSION and AZURE_OPENAI_ENDPOINT environment variables,
which may also be provided in a .env file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Init(flags.logLevel)
			logger.Debugf("Log level set to: %s", flags.logLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadDotEnv(flags.envFile); err != nil {
				logger.Warnf("Ignoring env file: %v", err)
			}

			settings := parseSettings(cmd, flags)
			logger.Debugf("Using settings: %+v", settings)

			codeSnippet := prompt.SampleCode
			if flags.inputFile != "" {
				data, err := os.ReadFile(flags.inputFile)
				if err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "Error reading input file: %v\n", err)
					return err
				}
				codeSnippet = string(data)
			}

			return runGenerate(cmd.Context(), cmd.OutOrStdout(), generateOptions{
				getenv:      deps.getenv,
				newLLM:      deps.newLLM,
				codeSnippet: codeSnippet,
				outputFile:  settings.OutputFile,
				llmOptions: []llm.Option{
					llm.WithMaxTokens(settings.MaxTokens),
					llm.WithAPITimeout(settings.APITimeout),
				},
			})
		},
	}

	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info",
		"Set the logging level (debug, info, warn, error, dpanic, panic, fatal)")

	cmd.Flags().StringVarP(&flags.inputFile, "input", "i", "", "File with the code to generate tests for (defaults to a built-in sample)")
	cmd.Flags().StringVarP(&flags.outputFile, "output", "o", common.DefaultOutputFile, "File the generated tests are written to")
	cmd.Flags().StringVar(&flags.settingsFile, "settings", "", "Settings file (defaults to testgen.bitrise.yml in the working directory)")
	cmd.Flags().StringVar(&flags.envFile, "env-file", ".env", "Env file loaded before reading the configuration")
	cmd.Flags().IntVar(&flags.maxTokens, "max-tokens", 0, "Maximum completion tokens, 0 leaves it to the deployment")
	cmd.Flags().IntVar(&flags.apiTimeout, "api-timeout", common.DefaultAPITimeout, "Request timeout in seconds")

	return cmd
}

// Execute runs the root command and handles errors
func Execute() error {
	return rootCmd.Execute()
}

func newAzureLLM(cfg config.Config, opts ...llm.Option) (llm.LLM, error) {
	return llm.NewLLM(llm.ProviderAzureOpenAI, cfg, opts...)
}

// parseSettings applies explicitly set flags on top of the settings file.
func parseSettings(cmd *cobra.Command, flags *rootFlags) common.Settings {
	settings := common.WithYamlFile(flags.settingsFile)

	if cmd.Flags().Changed("output") && flags.outputFile != "" {
		settings.OutputFile = flags.outputFile
	}
	if cmd.Flags().Changed("max-tokens") && flags.maxTokens >= 0 {
		settings.MaxTokens = flags.maxTokens
	}
	if cmd.Flags().Changed("api-timeout") && flags.apiTimeout > 0 {
		settings.APITimeout = flags.apiTimeout
	}
	return settings
}
