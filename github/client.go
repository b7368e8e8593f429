// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/stacklok/skillproxy/ghref"
	"github.com/stacklok/skillproxy/httperr"
	"github.com/stacklok/skillproxy/integrity"
	validatehttp "github.com/stacklok/skillproxy/validation/http"
)

// defaultAPIBaseURL is the GitHub REST API endpoint.
const defaultAPIBaseURL = "https://api.github.com"

// requestTimeout bounds each remote call.
const requestTimeout = 20 * time.Second

// MaxContentSize is the maximum accepted size of a fetched skill document (1MB).
const MaxContentSize int64 = 1 * 1024 * 1024

// Remote operation errors.
var (
	// ErrNotFound indicates the skill file, repository, or branch does not exist.
	ErrNotFound = errors.New("remote resource not found")

	// ErrRemoteUnavailable indicates a transport failure or an unexpected
	// response status from the remote host.
	ErrRemoteUnavailable = errors.New("remote host error")

	// ErrContentTooLarge indicates the fetched document exceeds MaxContentSize.
	ErrContentTooLarge = errors.New("remote content exceeds maximum size")

	// ErrInvalidToken indicates the configured bearer token cannot be sent
	// as an HTTP header value.
	ErrInvalidToken = errors.New("invalid GitHub token")
)

// Compile-time interface checks.
var (
	_ integrity.ContentFetcher   = (*Client)(nil)
	_ integrity.RevisionResolver = (*Client)(nil)
)

// Client talks to GitHub's raw content host and REST API.
type Client struct {
	httpClient *http.Client
	apiBaseURL string
	token      string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithToken sets the bearer token used for API calls.
// An empty token means unauthenticated access.
func WithToken(token string) ClientOption {
	return func(c *Client) {
		c.token = token
	}
}

// WithAPIBaseURL overrides the GitHub API endpoint.
// Used by tests to point the client at an httptest server.
func WithAPIBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.apiBaseURL = baseURL
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a GitHub client with the given options.
func NewClient(opts ...ClientOption) (*Client, error) {
	c := &Client{
		apiBaseURL: defaultAPIBaseURL,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.token != "" {
		if err := validatehttp.ValidateBearerToken(c.token); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
		}
	}

	if err := validatehttp.ValidateBaseURL(c.apiBaseURL); err != nil {
		return nil, fmt.Errorf("invalid API base URL: %w", err)
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: requestTimeout}
	}

	return c, nil
}

// FetchRaw returns the exact bytes served at the given raw content URL.
// The bytes are returned as served, with no decoding or normalization, so
// checksums computed over them match what the host actually delivered.
func (c *Client) FetchRaw(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", url, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching %s: %v", ErrRemoteUnavailable, url, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, httperr.WithCode(fmt.Errorf("%w: %s", ErrNotFound, url), resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, httperr.WithCode(
			fmt.Errorf("%w: HTTP %d fetching %s", ErrRemoteUnavailable, resp.StatusCode, url),
			resp.StatusCode)
	}

	content, err := io.ReadAll(io.LimitReader(resp.Body, MaxContentSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrRemoteUnavailable, url, err)
	}
	if int64(len(content)) > MaxContentSize {
		return nil, fmt.Errorf("%w: %s", ErrContentTooLarge, url)
	}

	return content, nil
}

// ResolveBranch returns the commit SHA at the tip of the branch.
func (c *Client) ResolveBranch(ctx context.Context, owner, repo string, branch ghref.Branch) (ghref.CommitSHA, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/commits/%s", c.apiBaseURL, owner, repo, branch)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("building request for %s: %w", url, err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: resolving %s/%s@%s: %v", ErrRemoteUnavailable, owner, repo, branch, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", httperr.WithCode(
			fmt.Errorf("%w: repo or branch not found: %s/%s@%s", ErrNotFound, owner, repo, branch),
			resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return "", httperr.WithCode(
			fmt.Errorf("%w: GitHub API returned %d for %s/%s@%s", ErrRemoteUnavailable, resp.StatusCode, owner, repo, branch),
			resp.StatusCode)
	}

	var commit struct {
		SHA string `json:"sha"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, MaxContentSize)).Decode(&commit); err != nil {
		return "", fmt.Errorf("%w: decoding commit response: %v", ErrRemoteUnavailable, err)
	}
	if commit.SHA == "" {
		return "", fmt.Errorf("%w: commit response has no sha", ErrRemoteUnavailable)
	}

	return ghref.CommitSHA(commit.SHA), nil
}
