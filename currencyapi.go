// Package currencyapi provides a client for the currencyapi.com v3 REST API.
//
// A Client holds the api key and exposes one method per remote endpoint:
// Status, Currencies, Latest, Historical, Convert and Range. Each call issues
// a single GET request and decodes the JSON body into a typed response
// struct. The client keeps no state between calls and does no caching,
// retrying or rate arithmetic of its own.
package currencyapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Version of the client library, reported in the User-Agent header.
const Version = "1.0.0"

const defaultBaseURL = "https://api.currencyapi.com/v3"

const defaultTimeout = 10 * time.Second

const (
	apikeyHeader = "apikey"
	userAgent    = "currencyapi-go/" + Version
)

// HTTPClient executes HTTP requests on behalf of the Client. *http.Client
// satisfies it; substitute your own to route requests through a proxy or a
// recording transport.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client calls the currencyapi.com v3 endpoints with one api key. Construct
// it with New or NewWithClient; the zero value is not usable.
type Client struct {
	apiKey  string
	baseURL string
	client  HTTPClient
	log     *zap.Logger
}

// New returns a Client that talks to https://api.currencyapi.com/v3 using a
// plain http.Client with a 10 second timeout.
func New(apiKey string) (*Client, error) {
	return NewWithClient(apiKey, defaultBaseURL, nil)
}

// NewWithClient returns a Client sending its requests to baseURL through
// httpClient. An empty baseURL selects the production API, a nil httpClient
// the same default transport New uses.
func NewWithClient(apiKey, baseURL string, httpClient HTTPClient) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  httpClient,
		log:     zap.NewNop(),
	}, nil
}

// SetLogger routes the client's debug logging to l. The default is a nop
// logger.
func (c *Client) SetLogger(l *zap.Logger) {
	if l != nil {
		c.log = l
	}
}

func (c *Client) getJSON(ctx context.Context, endpoint string, params url.Values, out interface{}) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "currencyapi."+endpoint)
	defer span.Finish()

	start := time.Now()
	err := c.get(ctx, endpoint, params, out)
	elapsed := time.Since(start)

	observeRequest(endpoint, elapsed, err != nil)
	if err != nil {
		ext.Error.Set(span, true)
	}
	return err
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+endpoint, nil)
	if err != nil {
		return errors.Wrap(err, "building request")
	}

	// The key travels in a header only, never in the URL.
	req.Header.Set(apikeyHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.URL.RawQuery = params.Encode()

	c.log.Debug("requesting currencyapi", zap.String("url", req.URL.String()))

	res, err := c.client.Do(req)
	if err != nil {
		return errors.Wrap(err, endpoint+" request")
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return errors.Wrap(err, "reading response body")
	}

	c.log.Debug("response from currencyapi",
		zap.String("endpoint", endpoint),
		zap.Int("status", res.StatusCode),
		zap.Int("bytes", len(body)))

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return newAPIError(res, body)
	}

	if err = json.Unmarshal(body, out); err != nil {
		return &ParseError{Body: body, Err: err}
	}
	return nil
}
