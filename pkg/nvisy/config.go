package nvisy

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
)

const (
	// DefaultBaseURL is the production Nvisy API endpoint.
	DefaultBaseURL = "https://api.nvisy.com"

	// DefaultTimeout bounds each request when no timeout is configured.
	DefaultTimeout = 30 * time.Second

	// MaxTimeout is the largest accepted request timeout.
	MaxTimeout = 300 * time.Second

	// DefaultUserAgent identifies the SDK to the API.
	DefaultUserAgent = "nvisy-sdk-go/" + Version

	maskedKeyPlaceholder = "****"
	maskedKeyPrefixLen   = 4
)

// Config holds the connection parameters of a Client. It is immutable once
// built by NewConfig.
//
// The API key is only reachable through APIKey. Every printed or logged form
// of a Config (String, GoString, LogArgs) carries the masked key.
type Config struct {
	apiKey     string
	baseURL    string
	timeout    time.Duration
	userAgent  string
	httpClient *http.Client
	logger     hclog.Logger
	fs         afero.Fs
}

// ConfigOption customizes a Config built by NewConfig.
type ConfigOption func(*Config)

// WithBaseURL overrides DefaultBaseURL. A trailing slash is dropped when
// request paths are joined to it.
func WithBaseURL(baseURL string) ConfigOption {
	return func(c *Config) {
		c.baseURL = baseURL
	}
}

// WithTimeout overrides DefaultTimeout.
func WithTimeout(timeout time.Duration) ConfigOption {
	return func(c *Config) {
		c.timeout = timeout
	}
}

// WithTimeoutSecs overrides DefaultTimeout with a whole number of seconds.
func WithTimeoutSecs(secs int) ConfigOption {
	return WithTimeout(time.Duration(secs) * time.Second)
}

// WithHTTPClient injects a pre-built HTTP client. Its own Timeout is used
// as is; the configured timeout only applies to clients built by NewClient.
func WithHTTPClient(client *http.Client) ConfigOption {
	return func(c *Config) {
		c.httpClient = client
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger hclog.Logger) ConfigOption {
	return func(c *Config) {
		c.logger = logger
	}
}

// WithUserAgent overrides DefaultUserAgent.
func WithUserAgent(userAgent string) ConfigOption {
	return func(c *Config) {
		c.userAgent = userAgent
	}
}

// WithFs sets the filesystem used by the path-based upload and download
// helpers.
func WithFs(fs afero.Fs) ConfigOption {
	return func(c *Config) {
		c.fs = fs
	}
}

// NewConfig builds and validates a Config. All invalid settings are reported
// together in a single KindConfig error.
func NewConfig(apiKey string, opts ...ConfigOption) (*Config, error) {
	c := &Config{
		apiKey:    apiKey,
		baseURL:   DefaultBaseURL,
		timeout:   DefaultTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.validate(); err != nil {
		return nil, newError(KindConfig, "config", err)
	}

	if c.logger == nil {
		c.logger = hclog.NewNullLogger()
	}
	if c.fs == nil {
		c.fs = afero.NewOsFs()
	}
	if c.userAgent == "" {
		c.userAgent = DefaultUserAgent
	}

	return c, nil
}

func (c *Config) validate() error {
	return validation.Errors{
		"api_key": validation.Validate(strings.TrimSpace(c.apiKey),
			validation.Required.Error("cannot be empty")),
		"base_url": validation.Validate(c.baseURL,
			validation.Required.Error("cannot be empty"),
			validation.By(httpBaseURL)),
		"timeout": validation.Validate(c.timeout,
			validation.Required.Error("must be greater than 0"),
			validation.Min(time.Nanosecond).Error("must be greater than 0"),
			validation.Max(MaxTimeout).Error(fmt.Sprintf("cannot exceed %s", MaxTimeout))),
	}.Filter()
}

func httpBaseURL(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
		return errors.New("must start with http:// or https://")
	}
	u, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Host == "" {
		return errors.New("must include a host")
	}
	return nil
}

// APIKey returns the unmasked credential.
func (c *Config) APIKey() string {
	return c.apiKey
}

// MaskedAPIKey returns the first four characters of the key followed by
// "****", or just "****" for keys of four characters or fewer.
func (c *Config) MaskedAPIKey() string {
	return maskKey(c.apiKey)
}

// maskKey counts characters, not bytes.
func maskKey(key string) string {
	r := []rune(key)
	if len(r) > maskedKeyPrefixLen {
		return string(r[:maskedKeyPrefixLen]) + maskedKeyPlaceholder
	}
	return maskedKeyPlaceholder
}

// BaseURL returns the API endpoint as given.
func (c *Config) BaseURL() string {
	return c.baseURL
}

// Timeout returns the per-request timeout.
func (c *Config) Timeout() time.Duration {
	return c.timeout
}

// UserAgent returns the User-Agent header value.
func (c *Config) UserAgent() string {
	return c.userAgent
}

// HTTPClient returns the injected HTTP client, or nil.
func (c *Config) HTTPClient() *http.Client {
	return c.httpClient
}

// Logger returns the configured logger.
func (c *Config) Logger() hclog.Logger {
	return c.logger
}

// Fs returns the filesystem used by path helpers.
func (c *Config) Fs() afero.Fs {
	return c.fs
}

// LogArgs returns key/value pairs describing the config, suitable for
// hclog.
func (c *Config) LogArgs() []any {
	return []any{
		"api_key", c.MaskedAPIKey(),
		"base_url", c.baseURL,
		"timeout", c.timeout,
	}
}

// String implements fmt.Stringer with the key masked. The formatting
// methods use value receivers so that a dereferenced Config is masked too.
func (c Config) String() string {
	return fmt.Sprintf("Config{api_key: %s, base_url: %s, timeout: %s}",
		c.MaskedAPIKey(), c.baseURL, c.timeout)
}

// GoString implements fmt.GoStringer with the key masked.
func (c Config) GoString() string {
	return fmt.Sprintf("&nvisy.Config{apiKey: %q, baseURL: %q, timeout: %s}",
		c.MaskedAPIKey(), c.baseURL, c.timeout)
}

// Format implements fmt.Formatter so that no verb, including %+v, prints
// the raw key.
func (c Config) Format(f fmt.State, verb rune) {
	switch {
	case verb == 'v' && f.Flag('#'):
		fmt.Fprint(f, c.GoString())
	case verb == 'q':
		fmt.Fprintf(f, "%q", c.String())
	default:
		fmt.Fprint(f, c.String())
	}
}
