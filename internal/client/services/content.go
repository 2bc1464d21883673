package services

import (
	"context"

	"github.com/mogligram/mogligram/internal/client/api"
	"github.com/mogligram/mogligram/internal/client/state"
	"github.com/mogligram/mogligram/internal/logging"
)

// ContentService orchestrates fetches from the remote content service into
// Content State. Each load follows the same sequence: mark loading, fetch,
// then apply everything or record the failure — never partial results.
//
// Results land in the container only if the fetch has not been superseded by
// a newer one; callers learn the outcome by reading the content snapshot.
type ContentService struct {
	state *state.State
	api   api.Client
	log   logging.Logger
}

func NewContentService(st *state.State, client api.Client, log logging.Logger) *ContentService {
	return &ContentService{state: st, api: client, log: log}
}

// LoadPosts refreshes the feed. A refresh replaces the list wholesale; it
// never merges with stale content. On failure the previous posts stay and
// the error message is recorded for the retry screen.
func (s *ContentService) LoadPosts(ctx context.Context) {
	seq := s.state.Content.BeginFetch()

	posts, err := s.api.ListPosts(ctx)
	if err != nil {
		s.log.Warn(ctx, "failed to load posts", "error", err)
		s.state.Content.Fail(seq, err.Error())
		return
	}

	if !s.state.Content.ApplyPosts(seq, posts) {
		s.log.Debug(ctx, "discarding superseded posts fetch")
	}
}

// LoadPost fetches a single post and its comments. Both must succeed; a
// failure on either leaves prior content untouched and records the error.
func (s *ContentService) LoadPost(ctx context.Context, id int) {
	seq := s.state.Content.BeginFetch()

	post, err := s.api.GetPost(ctx, id)
	if err != nil {
		s.log.Warn(ctx, "failed to load post", "id", id, "error", err)
		s.state.Content.Fail(seq, err.Error())
		return
	}

	comments, err := s.api.ListComments(ctx, id)
	if err != nil {
		s.log.Warn(ctx, "failed to load comments", "id", id, "error", err)
		s.state.Content.Fail(seq, err.Error())
		return
	}

	if !s.state.Content.ApplyPost(seq, post, comments) {
		s.log.Debug(ctx, "discarding superseded post fetch", "id", id)
	}
}

// LoadUsers fetches the author directory used to caption feed entries. It
// is an enrichment: a failure is logged and the feed simply shows numeric
// author IDs.
func (s *ContentService) LoadUsers(ctx context.Context) {
	users, err := s.api.ListUsers(ctx)
	if err != nil {
		s.log.Warn(ctx, "failed to load users", "error", err)
		return
	}
	s.state.Content.SetUsers(users)
}
