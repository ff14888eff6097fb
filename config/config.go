// Package config loads the Azure OpenAI connection settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bitrise-io/bitrise-plugins-ai-testgen/logger"
	"github.com/joho/godotenv"
)

// Environment variables read by Load, in reporting order.
const (
	EnvDeploymentName = "AZURE_OPENAI_DEPLOYMENT_NAME"
	EnvModelName      = "AZURE_OPENAI_MODEL_NAME"
	EnvAPIKey         = "AZURE_OPENAI_API_KEY"
	EnvAPIVersion     = "AZURE_OPENAI_API_VERSION"
	EnvEndpoint       = "AZURE_OPENAI_ENDPOINT"
)

// RequiredEnvVars lists every setting Load needs.
var RequiredEnvVars = []string{
	EnvDeploymentName,
	EnvModelName,
	EnvAPIKey,
	EnvAPIVersion,
	EnvEndpoint,
}

// ConfigurationError reports the settings that were unset or empty.
type ConfigurationError struct {
	Missing []string
}

func (e *ConfigurationError) Error() string {
	return "missing required environment variables: " + strings.Join(e.Missing, ", ")
}

// Config holds the values needed to reach an Azure OpenAI deployment.
// It is read once at startup and never mutated.
type Config struct {
	deploymentName string
	modelName      string
	apiKey         string
	apiVersion     string
	endpoint       string
}

// New validates the five values and returns them as a Config.
func New(deploymentName, modelName, apiKey, apiVersion, endpoint string) (Config, error) {
	values := map[string]string{
		EnvDeploymentName: deploymentName,
		EnvModelName:      modelName,
		EnvAPIKey:         apiKey,
		EnvAPIVersion:     apiVersion,
		EnvEndpoint:       endpoint,
	}

	var missing []string
	for _, name := range RequiredEnvVars {
		if values[name] == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return Config{}, &ConfigurationError{Missing: missing}
	}

	return Config{
		deploymentName: deploymentName,
		modelName:      modelName,
		apiKey:         apiKey,
		apiVersion:     apiVersion,
		endpoint:       endpoint,
	}, nil
}

// Load reads the configuration through getenv, usually os.Getenv.
func Load(getenv func(string) string) (Config, error) {
	return New(
		getenv(EnvDeploymentName),
		getenv(EnvModelName),
		getenv(EnvAPIKey),
		getenv(EnvAPIVersion),
		getenv(EnvEndpoint),
	)
}

// LoadDotEnv loads .env style files into the process environment.
// Variables already set are kept. Files that do not exist are skipped.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				logger.Debugf("No env file at %s", path)
				continue
			}
			return fmt.Errorf("failed to stat env file %s: %w", path, err)
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("failed to load env file %s: %w", path, err)
		}
		logger.Debugf("Loaded environment from %s", path)
	}
	return nil
}

// DeploymentName is the Azure deployment every request is routed to.
func (c Config) DeploymentName() string { return c.deploymentName }

// ModelName is sent as the model of each chat completion request.
func (c Config) ModelName() string { return c.modelName }

// APIKey authenticates against the Azure OpenAI resource.
func (c Config) APIKey() string { return c.apiKey }

// APIVersion is passed as the api-version query parameter.
func (c Config) APIVersion() string { return c.apiVersion }

// Endpoint is the base URL of the Azure OpenAI resource.
func (c Config) Endpoint() string { return c.endpoint }

// String hides the API key.
func (c Config) String() string {
	return fmt.Sprintf("deployment=%s model=%s api_version=%s endpoint=%s",
		c.deploymentName, c.modelName, c.apiVersion, c.endpoint)
}
