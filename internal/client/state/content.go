package state

import (
	"sync"

	"github.com/mogligram/mogligram/internal/client/models"
)

// ContentSnapshot is a point-in-time copy of the content container for
// rendering. Loading true implies Err empty.
type ContentSnapshot struct {
	Posts       []models.Post
	CurrentPost *models.Post
	Comments    []models.Comment
	Users       map[int]models.User
	Loading     bool
	Err         string
}

// ContentState caches fetched posts and comments for the current screen
// visit. Nothing here is ever persisted.
//
// Every fetch obtains a sequence number from BeginFetch; Apply*/Fail only
// take effect while that number is still current. A fetch that was
// superseded by a newer one (rapid retrigger, screen change) has its result
// discarded instead of overwriting fresher data.
type ContentState struct {
	mu       sync.Mutex
	posts    []models.Post
	current  *models.Post
	comments []models.Comment
	users    map[int]models.User
	loading  bool
	err      string
	seq      uint64
}

func NewContentState() *ContentState {
	return &ContentState{}
}

// BeginFetch marks a new in-flight request: loading on, error cleared,
// previous content kept. The returned sequence number must be passed to the
// matching Apply or Fail call.
func (c *ContentState) BeginFetch() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	c.loading = true
	c.err = ""
	return c.seq
}

// ApplyPosts replaces the post list. Returns false (and changes nothing) if
// the fetch identified by seq has been superseded.
func (c *ContentState) ApplyPosts(seq uint64, posts []models.Post) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.seq {
		return false
	}
	c.posts = posts
	c.loading = false
	c.err = ""
	return true
}

// ApplyPost sets the currently viewed post together with its comments.
// Partial results are never applied: the caller passes both or calls Fail.
func (c *ContentState) ApplyPost(seq uint64, post models.Post, comments []models.Comment) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.seq {
		return false
	}
	p := post
	c.current = &p
	c.comments = comments
	c.loading = false
	c.err = ""
	return true
}

// Fail records a fetch failure: loading off, message set, prior content
// untouched. Returns false if the fetch was superseded.
func (c *ContentState) Fail(seq uint64, msg string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.seq {
		return false
	}
	c.loading = false
	c.err = msg
	return true
}

// SetUsers replaces the author directory. Users are an enrichment fetched
// independently of the post flow, so no sequence check applies.
func (c *ContentState) SetUsers(users []models.User) {
	byID := make(map[int]models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	c.mu.Lock()
	c.users = byID
	c.mu.Unlock()
}

// Clear drops all cached content and invalidates any in-flight fetch.
func (c *ContentState) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	c.posts = nil
	c.current = nil
	c.comments = nil
	c.users = nil
	c.loading = false
	c.err = ""
}

// Snapshot returns a copy of the container for rendering.
func (c *ContentState) Snapshot() ContentSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := ContentSnapshot{
		Posts:    append([]models.Post(nil), c.posts...),
		Comments: append([]models.Comment(nil), c.comments...),
		Loading:  c.loading,
		Err:      c.err,
	}
	if c.current != nil {
		p := *c.current
		snap.CurrentPost = &p
	}
	if c.users != nil {
		snap.Users = make(map[int]models.User, len(c.users))
		for id, u := range c.users {
			snap.Users[id] = u
		}
	}
	return snap
}
