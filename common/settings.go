package common

import (
	"os"

	"github.com/bitrise-io/bitrise-plugins-ai-testgen/logger"
	"gopkg.in/yaml.v3"
)

const (
	DefaultOutputFile = "generated_tests.py"
	DefaultAPITimeout = 60
)

// SettingsFileNames are looked up in the working directory when no path is given.
var SettingsFileNames = []string{"testgen.bitrise.yml", "testgen.bitrise.yaml"}

// Settings are the optional knobs read from the settings file.
type Settings struct {
	OutputFile string `yaml:"output_file"`
	// APITimeout is the per request timeout in seconds.
	APITimeout int `yaml:"api_timeout"`
	// MaxTokens caps the completion length, 0 leaves it to the deployment.
	MaxTokens int `yaml:"max_tokens"`
}

// WithDefaultSettings returns the settings used when no file is present.
func WithDefaultSettings() Settings {
	return Settings{
		OutputFile: DefaultOutputFile,
		APITimeout: DefaultAPITimeout,
	}
}

// WithYamlFile overlays the settings file at path, or the first of
// SettingsFileNames found in the working directory, on the defaults.
func WithYamlFile(path string) Settings {
	settings := WithDefaultSettings()

	if path == "" {
		for _, name := range SettingsFileNames {
			if _, err := os.Stat(name); err == nil {
				path = name
				break
			}
		}
	}

	if path == "" {
		logger.Debug("No settings file found in the current directory. Using default settings.")
		return settings
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warnf("Failed to read settings file %s: %v", path, err)
		return settings
	}

	parsed := settings
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		logger.Warnf("Failed to parse YAML file %s: %v", path, err)
		return settings
	}
	logger.Infof("Using settings from YAML file: %s", path)

	return parsed.withFallbacks()
}

func (s Settings) withFallbacks() Settings {
	defaults := WithDefaultSettings()
	if s.OutputFile == "" {
		s.OutputFile = defaults.OutputFile
	}
	if s.APITimeout <= 0 {
		s.APITimeout = defaults.APITimeout
	}
	if s.MaxTokens < 0 {
		s.MaxTokens = 0
	}
	return s
}
