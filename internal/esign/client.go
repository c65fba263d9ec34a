package esign

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"loansign/internal/common/errors"
)

// Config holds provider client settings
type Config struct {
	BaseURL    string        // Provider API base URL
	APIKey     string        // API key sent on every request
	Timeout    time.Duration // Per-request timeout (default 30s)
	MaxRetries int           // Transport-level retries (default 2)
	RetryDelay time.Duration // Backoff base between retries (default 500ms)
}

// apiKeyHeader authenticates requests to the provider
const apiKeyHeader = "X-API-Key"

// Client is the HTTP implementation of Provider
type Client struct {
	config     *Config
	httpClient *http.Client
}

// NewClient creates a provider client. It is constructed once at process
// start and injected into the handlers.
func NewClient(config *Config) (*Client, error) {
	if config == nil || config.BaseURL == "" {
		return nil, fmt.Errorf("esign base URL is required")
	}
	if config.APIKey == "" {
		return nil, fmt.Errorf("esign API key is required")
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	if config.MaxRetries == 0 {
		config.MaxRetries = 2
	}
	if config.RetryDelay == 0 {
		config.RetryDelay = 500 * time.Millisecond
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}, nil
}

// SendForSignature creates a document from the template and sends it for
// signature, returning the provider-assigned document id.
func (c *Client) SendForSignature(ctx context.Context, req *SignRequest) (*DocumentCreated, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, errors.InternalError("failed to encode sign request", err)
	}

	respBody, err := c.do(ctx, http.MethodPost, "/v1/template/send", nil, body)
	if err != nil {
		return nil, err
	}

	var created DocumentCreated
	if err := json.Unmarshal(respBody, &created); err != nil {
		return nil, errors.ProviderError("provider returned an unreadable send response", err)
	}
	if created.DocumentID == "" {
		return nil, errors.ProviderError("provider response is missing the document id", nil)
	}

	return &created, nil
}

// EmbeddedSignLink mints a signing URL for loading into the signing iframe
func (c *Client) EmbeddedSignLink(ctx context.Context, documentID, signerEmail, redirectURL string) (string, error) {
	query := url.Values{}
	query.Set("documentId", documentID)
	query.Set("signerEmail", signerEmail)
	query.Set("redirectUrl", redirectURL)

	respBody, err := c.do(ctx, http.MethodGet, "/v1/document/getEmbeddedSignLink", query, nil)
	if err != nil {
		return "", err
	}

	var link struct {
		SignLink string `json:"signLink"`
	}
	if err := json.Unmarshal(respBody, &link); err != nil {
		return "", errors.ProviderError("provider returned an unreadable sign link response", err)
	}
	if link.SignLink == "" {
		return "", errors.ProviderError("provider response is missing the sign link", nil)
	}

	return link.SignLink, nil
}

// DownloadDocument fetches the completed document as PDF bytes
func (c *Client) DownloadDocument(ctx context.Context, documentID string) ([]byte, error) {
	query := url.Values{}
	query.Set("documentId", documentID)

	return c.do(ctx, http.MethodGet, "/v1/document/download", query, nil)
}

// do executes one provider call with bounded retries on transport failures.
// Non-2xx responses are not retried; the provider's errors are terminal.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body []byte) ([]byte, error) {
	reqURL := c.config.BaseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var lastErr error
	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, errors.ProviderError("provider request canceled", ctx.Err())
			case <-time.After(c.config.RetryDelay * time.Duration(attempt)):
			}
		}

		var bodyReader io.Reader
		if body != nil {
			bodyReader = bytes.NewReader(body)
		}

		httpReq, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
		if err != nil {
			return nil, errors.InternalError("failed to build provider request", err)
		}
		httpReq.Header.Set(apiKeyHeader, c.config.APIKey)
		if body != nil {
			httpReq.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.httpClient.Do(httpReq)
		if err != nil {
			lastErr = err
			continue
		}

		respBody, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, errors.ProviderError(
				fmt.Sprintf("provider responded %d for %s %s", resp.StatusCode, method, path), nil)
		}

		return respBody, nil
	}

	return nil, errors.ProviderError(
		fmt.Sprintf("provider request failed after %d attempts", c.config.MaxRetries+1), lastErr)
}
