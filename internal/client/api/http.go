package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mogligram/mogligram/internal/client/models"
)

// HTTPClient is the Client implementation over net/http.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a client against baseURL with the given per-request
// timeout. A zero timeout falls back to DefaultTimeout.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) ListPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := c.getJSON(ctx, "/posts", &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *HTTPClient) GetPost(ctx context.Context, id int) (models.Post, error) {
	var post models.Post
	if err := c.getJSON(ctx, fmt.Sprintf("/posts/%d", id), &post); err != nil {
		return models.Post{}, err
	}
	return post, nil
}

func (c *HTTPClient) ListComments(ctx context.Context, postID int) ([]models.Comment, error) {
	var comments []models.Comment
	if err := c.getJSON(ctx, fmt.Sprintf("/posts/%d/comments", postID), &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (c *HTTPClient) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.getJSON(ctx, "/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// getJSON issues a GET and decodes a 200 response into v. Transport errors,
// timeouts and non-2xx statuses all come back as a single error whose
// message can be shown on the retry screen.
func (c *HTTPClient) getJSON(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("building request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("request to %s failed: %s", path, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decoding response from %s: %w", path, err)
	}
	return nil
}
