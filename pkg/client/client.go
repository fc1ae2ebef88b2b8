package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/daniacca/genchem/internal/genchem"
	"github.com/daniacca/genchem/internal/genchem/render"
)

var (
	// ErrNotFound matches a StatusError for an unknown chemistry.
	ErrNotFound = errors.New("client: chemistry not found")
	// ErrThrottled matches a StatusError for a rate-limited request.
	ErrThrottled = errors.New("client: request throttled")
)

// StatusError is returned when the server answers with a non-success status.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server returned status %d: %s", e.Code, e.Message)
}

// Is maps well-known status codes onto the package sentinels.
func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Code == http.StatusNotFound
	case ErrThrottled:
		return e.Code == http.StatusTooManyRequests
	case genchem.ErrInvalidArgument:
		return e.Code == http.StatusBadRequest
	}
	return false
}

// Summary describes a chemistry stored on the server.
type Summary struct {
	ID          genchem.ChemistryID `json:"id"`
	Name        string              `json:"name"`
	Seed        *uint64             `json:"seed,omitempty"`
	Species     int                 `json:"species"`
	Reactions   int                 `json:"reactions"`
	MaxOrder    int                 `json:"max_order"`
	TrackCharge bool                `json:"track_charge"`
}

// GenerateRequest asks the server to draw a random system. Zero fields take
// the server defaults; a nil Seed is drawn from the server clock.
type GenerateRequest struct {
	Name     string                   `json:"name,omitempty"`
	Seed     *uint64                  `json:"seed,omitempty"`
	MaxOrder int                      `json:"max_order,omitempty"`
	Config   *genchem.GeneratorConfig `json:"config,omitempty"`
}

// WithSeed returns r with its seed set.
func (r GenerateRequest) WithSeed(seed uint64) GenerateRequest {
	r.Seed = &seed
	return r
}

// Client talks to a genchem-server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a client for the server at baseURL (e.g. "http://localhost:8080").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Generate draws and stores a random chemistry.
func (c *Client) Generate(ctx context.Context, req GenerateRequest) (Summary, error) {
	var out Summary
	err := c.do(ctx, http.MethodPost, []string{"chemistries", "generate"}, nil, req, &out)
	return out, err
}

// Load builds and stores the chemistry of a species system.
func (c *Client) Load(ctx context.Context, system *SystemBuilder) (Summary, error) {
	var out Summary
	err := c.do(ctx, http.MethodPost, []string{"chemistries"}, nil, system.Build(), &out)
	return out, err
}

// List returns every stored chemistry, ordered by id.
func (c *Client) List(ctx context.Context) ([]Summary, error) {
	var out struct {
		Chemistries []Summary `json:"chemistries"`
	}
	if err := c.do(ctx, http.MethodGet, []string{"chemistries"}, nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Chemistries, nil
}

// Get fetches the full document of a chemistry. temperature <= 0 uses the
// server default.
func (c *Client) Get(ctx context.Context, id genchem.ChemistryID, temperature float64) (render.Document, error) {
	var doc render.Document
	err := c.do(ctx, http.MethodGet, []string{"chemistries", string(id)}, renderQuery(render.FormatJSON, temperature), nil, &doc)
	return doc, err
}

// Render fetches a chemistry rendered in the given format.
func (c *Client) Render(ctx context.Context, id genchem.ChemistryID, format render.Format, temperature float64) (string, error) {
	var buf bytes.Buffer
	err := c.do(ctx, http.MethodGet, []string{"chemistries", string(id)}, renderQuery(format, temperature), nil, &buf)
	return buf.String(), err
}

// Delete removes a chemistry.
func (c *Client) Delete(ctx context.Context, id genchem.ChemistryID) error {
	return c.do(ctx, http.MethodDelete, []string{"chemistries", string(id)}, nil, nil, nil)
}

func renderQuery(format render.Format, temperature float64) url.Values {
	q := url.Values{}
	q.Set("format", string(format))
	if temperature > 0 {
		q.Set("temperature", strconv.FormatFloat(temperature, 'f', -1, 64))
	}
	return q
}

// do sends one request. A *bytes.Buffer out receives the raw body; any other
// non-nil out is decoded from JSON.
func (c *Client) do(ctx context.Context, method string, path []string, query url.Values, body, out any) error {
	u, err := url.JoinPath(c.baseURL, path...)
	if err != nil {
		return fmt.Errorf("failed to build URL: %w", err)
	}
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(resp.Body)
		return &StatusError{Code: resp.StatusCode, Message: strings.TrimSpace(string(msg))}
	}

	switch dst := out.(type) {
	case nil:
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	case *bytes.Buffer:
		_, err := dst.ReadFrom(resp.Body)
		return err
	default:
		if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
		return nil
	}
}
