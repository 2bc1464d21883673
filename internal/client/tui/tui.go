// Package tui implements the terminal user interface: splash, login, feed,
// post detail and profile screens, driven by the bubbletea event loop.
//
// Screens render from state snapshots and never mutate the containers
// directly; every mutation goes through a service, wrapped in a tea.Cmd so
// blocking work stays off the event loop.
package tui

import (
	"time"

	"github.com/mogligram/mogligram/internal/client/services"
	"github.com/mogligram/mogligram/internal/client/state"
	"github.com/mogligram/mogligram/internal/logging"
)

// Deps bundles everything the screens need. All fields are required except
// the durations, which fall back to sane values in New.
type Deps struct {
	State    *state.State
	Auth     *services.AuthService
	Profile  *services.ProfileService
	Content  *services.ContentService
	Hydrator *services.Hydrator
	Log      logging.Logger

	// SplashDelay is the minimum time the splash screen stays visible.
	SplashDelay time.Duration
	// LoginDelay simulates the round trip of a real credential check so the
	// submit spinner is actually visible. Tests set it to zero.
	LoginDelay time.Duration
}

type screen int

const (
	screenSplash screen = iota
	screenLogin
	screenFeed
	screenPost
	screenProfile
)
