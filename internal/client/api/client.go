// Package api implements the read-only REST client for the remote content
// service: posts, a single post, comments per post, and users.
package api

import (
	"context"
	"time"

	"github.com/mogligram/mogligram/internal/client/models"
)

// DefaultBaseURL is the public content service the app ships against.
const DefaultBaseURL = "https://jsonplaceholder.typicode.com"

// DefaultTimeout is the fixed client-side timeout after which a call is
// abandoned and reported as a failure.
const DefaultTimeout = 10 * time.Second

// Client is the remote content service contract. Implementations return
// either decoded payloads or an error whose message is fit to show the user
// on a retryable error screen.
type Client interface {
	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, id int) (models.Post, error)
	ListComments(ctx context.Context, postID int) ([]models.Comment, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}
