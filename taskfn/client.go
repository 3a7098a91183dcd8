package taskfn

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskfn/go-taskfn/media"
)

const (
	defaultBaseURL     = "https://function.api.taskfn.ai"
	defaultHTTPTimeout = 30 * time.Second
)

// APIKeyEnv is the environment variable read when no API key is passed at
// construction.
const APIKeyEnv = "TASKFN_API_KEY"

// Client talks to the TaskFn function service: it builds hosted functions
// from task descriptions and queries them with text and image input. The
// client is stateless aside from the underlying HTTP connection pool, so
// one instance can serve concurrent build, query and batch calls.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
	onWarning  func(string)
	detector   *media.Detector
}

type Option func(*Client)

// New creates a TaskFn client.
//
// If no API key is provided via options, New reads TASKFN_API_KEY from the
// environment. A client cannot be constructed without one.
func New(opts ...Option) (*Client, error) {
	client := &Client{
		apiKey:  strings.TrimSpace(os.Getenv(APIKeyEnv)),
		baseURL: defaultBaseURL,
		logger:  zerolog.Nop(),
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(client)
	}

	if strings.TrimSpace(client.apiKey) == "" {
		return nil, errors.New("taskfn: API key is required (set " + APIKeyEnv + " or use taskfn.WithAPIKey)")
	}

	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}

	if client.onWarning == nil {
		logger := client.logger
		client.onWarning = func(message string) {
			logger.Warn().Str("warning", message).Msg("remote warning")
		}
	}

	client.detector = media.NewDetector(client.httpClient)

	return client, nil
}

// WithAPIKey sets the API key used by the client.
func WithAPIKey(apiKey string) Option {
	return func(client *Client) {
		if strings.TrimSpace(apiKey) == "" {
			return
		}
		client.apiKey = strings.TrimSpace(apiKey)
	}
}

// WithBaseURL sets the service base URL used by the client.
func WithBaseURL(baseURL string) Option {
	return func(client *Client) {
		if strings.TrimSpace(baseURL) == "" {
			return
		}
		client.baseURL = strings.TrimSpace(baseURL)
	}
}

// WithHTTPClient sets the HTTP client used for dispatch, image probes and
// uploads.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(client *Client) {
		if httpClient == nil {
			return
		}
		client.httpClient = httpClient
	}
}

// WithTimeout sets the timeout on the client's HTTP client. It covers each
// request as a whole; no finer-grained timeout exists.
func WithTimeout(timeout time.Duration) Option {
	return func(client *Client) {
		if timeout <= 0 {
			return
		}
		if client.httpClient == nil {
			client.httpClient = &http.Client{}
		}
		client.httpClient.Timeout = timeout
	}
}

// WithLogger sets the logger used by the client. The default discards
// everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(client *Client) {
		client.logger = logger
	}
}

// WithWarningHandler sets the sink for warnings the service declares in
// its responses. The default logs them at warn level.
func WithWarningHandler(handler func(message string)) Option {
	return func(client *Client) {
		if handler == nil {
			return
		}
		client.onWarning = handler
	}
}

func (c *Client) emitWarnings(warnings []string) {
	for _, warning := range warnings {
		c.onWarning(warning)
	}
}
