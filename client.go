package lemon

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/lemon-markets/lemon-go/internal/version"
)

// Environment selects which trading venue a Client talks to.
type Environment string

const (
	// EnvironmentPaper is the paper money (test) environment. Default.
	EnvironmentPaper Environment = "paper"
	// EnvironmentLive is the real money environment.
	EnvironmentLive Environment = "live"
)

const (
	paperBaseURL = "https://paper-trading.lemon.markets/v1"
	liveBaseURL  = "https://trading.lemon.markets/v1"
)

// Client provides access to the lemon.markets trading REST API.
//
// The underlying HTTP client, API key and base URL are shared read-only by
// all resource services and never mutated after construction, so a single
// Client is safe for concurrent use.
type Client struct {
	baseURL    string
	apiKey     string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger

	// Resource services.
	Account   *AccountService
	Orders    *OrdersService
	Positions *PositionsService
}

// Option configures a Client.
type Option func(*Client)

// New creates a client for the given API key. Requests go to the paper
// money environment unless WithEnvironment or WithBaseURL says otherwise.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:   paperBaseURL,
		apiKey:    apiKey,
		userAgent: version.UserAgent(),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.Account = &AccountService{client: c}
	c.Orders = &OrdersService{client: c}
	c.Positions = &PositionsService{client: c}

	return c
}

// WithEnvironment selects the paper or live trading environment.
func WithEnvironment(env Environment) Option {
	return func(c *Client) {
		if env == EnvironmentLive {
			c.baseURL = liveBaseURL
		} else {
			c.baseURL = paperBaseURL
		}
	}
}

// WithBaseURL overrides the base URL entirely. Options apply in order,
// so combined with WithEnvironment the later one wins.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}
