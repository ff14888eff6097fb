package common

import (
	"net/http"
	"time"

	"github.com/bitrise-io/bitrise-plugins-ai-testgen/logger"
	"github.com/hashicorp/go-retryablehttp"
)

// DefaultRetryMax is the number of transport level retries for a completion request.
const DefaultRetryMax = 3

// RetryConfig controls the retrying transport used for completion requests.
type RetryConfig struct {
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
	// CheckRetry decides whether a response or error is retried. Nil keeps the library default.
	CheckRetry retryablehttp.CheckRetry
}

// DefaultRetryConfig returns DefaultRetryMax retries with 1s to 5s backoff.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		RetryMax:     DefaultRetryMax,
		RetryWaitMin: 1 * time.Second,
		RetryWaitMax: 5 * time.Second,
		CheckRetry:   retryablehttp.DefaultRetryPolicy,
	}
}

// NewRetryableHTTPClient returns a plain *http.Client whose transport retries
// with exponential backoff, so it can be handed to SDKs expecting net/http.
func NewRetryableHTTPClient(config RetryConfig) *http.Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = config.RetryMax
	retryClient.RetryWaitMin = config.RetryWaitMin
	retryClient.RetryWaitMax = config.RetryWaitMax
	if config.CheckRetry != nil {
		retryClient.CheckRetry = config.CheckRetry
	}
	// Hand the final response back to the SDK so it can decode the API error body.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.Logger = &zapRetryLogger{}

	logger.Debugf("Created retryable client with max retries: %d, min wait: %s, max wait: %s",
		config.RetryMax, config.RetryWaitMin, config.RetryWaitMax)

	return retryClient.StandardClient()
}

// zapRetryLogger satisfies retryablehttp.LeveledLogger on top of the global logger.
// Attempt details are only interesting when debugging, failures surface through the SDK error.
type zapRetryLogger struct{}

func (z *zapRetryLogger) Error(msg string, keysAndValues ...interface{}) {
	logger.Sugar().Warnw(msg, keysAndValues...)
}

func (z *zapRetryLogger) Info(msg string, keysAndValues ...interface{}) {
	logger.Sugar().Debugw(msg, keysAndValues...)
}

func (z *zapRetryLogger) Debug(msg string, keysAndValues ...interface{}) {
	logger.Sugar().Debugw(msg, keysAndValues...)
}

func (z *zapRetryLogger) Warn(msg string, keysAndValues ...interface{}) {
	logger.Sugar().Warnw(msg, keysAndValues...)
}
