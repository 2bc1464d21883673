// Package state holds the three in-memory state containers the screens read
// from and mutate through named operations: session, profile and content.
//
// Containers are constructor-injected (no package-level singletons) so tests
// can build isolated instances. Every operation is atomic: a mutex guards
// each container, and no transition can be observed half-applied. The
// containers never touch the persistent store themselves; mirroring a
// mutation to disk is the calling service's job.
package state

// State aggregates the three containers owned by the application context.
type State struct {
	Session *SessionState
	Profile *ProfileState
	Content *ContentState
}

// New builds a fresh, empty state aggregate: unauthenticated session, empty
// profile, no content.
func New() *State {
	return &State{
		Session: NewSessionState(),
		Profile: NewProfileState(),
		Content: NewContentState(),
	}
}
