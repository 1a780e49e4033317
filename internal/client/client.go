// Package client fetches comment-feed data from the REST API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/colonyops/remark/internal/core/comment"
	"github.com/colonyops/remark/pkg/kv"
)

// HTTPClient abstracts HTTP request execution for testing and custom
// transports. The standard *http.Client satisfies this interface.
type HTTPClient interface {
	// Do sends an HTTP request and returns an HTTP response.
	Do(req *http.Request) (*http.Response, error)
}

// Client reads comments and user profiles from the feed API.
type Client struct {
	baseURL string
	httpc   HTTPClient
	users   *kv.Store[int, comment.User]
	logger  zerolog.Logger
}

// New creates a client for the API at baseURL.
func New(baseURL string, httpc HTTPClient, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   httpc,
		users:   kv.New[int, comment.User](),
		logger:  logger,
	}
}

// Comments fetches the full comment collection in one read.
func (c *Client) Comments(ctx context.Context) ([]comment.Comment, error) {
	var comments []comment.Comment
	if err := c.getJSON(ctx, "/comments", &comments); err != nil {
		return nil, fmt.Errorf("fetch comments: %w", err)
	}

	c.logger.Debug().Int("count", len(comments)).Msg("fetched comments")
	return comments, nil
}

// User fetches a user profile by ID. Profiles are cached for the
// lifetime of the client, so revisiting the profile view never
// refetches.
func (c *Client) User(ctx context.Context, id int) (comment.User, error) {
	if u, ok := c.users.Get(id); ok {
		return u, nil
	}

	var user comment.User
	if err := c.getJSON(ctx, fmt.Sprintf("/users/%d", id), &user); err != nil {
		return comment.User{}, fmt.Errorf("fetch user %d: %w", id, err)
	}

	c.users.Set(id, user)
	return user, nil
}

func (c *Client) getJSON(ctx context.Context, path string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
