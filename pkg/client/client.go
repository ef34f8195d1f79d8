// Package client provides a REST client for acryl node HTTP APIs.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/acryl-tech/acryl-go/config"
	"github.com/acryl-tech/acryl-go/internal/log"
)

const userAgent = "acryl-go client"

// Client is an HTTP client for a single node.
type Client struct {
	node   string
	apiKey string
	http   *http.Client
	log    zerolog.Logger
}

// New creates a client targeting the given node URL.
func New(node string) *Client {
	return NewWithTimeout(node, 10*time.Second)
}

// NewWithTimeout creates a client with a custom HTTP timeout.
func NewWithTimeout(node string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		node: node,
		http: &http.Client{
			Timeout: timeout,
		},
		log: log.Client,
	}
}

// FromConfig builds a client from a loaded configuration.
func FromConfig(cfg *config.Config) *Client {
	c := NewWithTimeout(cfg.NodeAddress, cfg.RequestTimeout)
	c.apiKey = cfg.APIKey
	return c
}

// SetAPIKey sets the X-API-Key header sent on privileged endpoints.
func (c *Client) SetAPIKey(key string) {
	c.apiKey = key
}

// Node returns the node URL the client talks to.
func (c *Client) Node() string {
	return c.node
}

// APIError is returned when the node responds with an error body.
type APIError struct {
	Code    int    `json:"error"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("node error %d: %s", e.Code, e.Message)
}

func (c *Client) get(path string, result any) error {
	req, err := http.NewRequest(http.MethodGet, c.node+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	return c.do(req, result)
}

func (c *Client) post(path string, body, result any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequest(http.MethodPost, c.node+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, result)
}

func (c *Client) do(req *http.Request, result any) error {
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	c.log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Msg("request")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr APIError
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Message != "" {
			return &apiErr
		}
		return fmt.Errorf("node returned status %d: %s", resp.StatusCode, bytes.TrimSpace(data))
	}

	if result != nil {
		if err := json.Unmarshal(data, result); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
