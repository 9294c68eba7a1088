package session

import (
	"context"
	"sync"
	"time"

	"github.com/scicon-platform/scicon-cli/internal/logging"
)

// GuardState is the render decision for a protected view.
type GuardState int

const (
	StateUnknown GuardState = iota
	StateChecking
	StateAuthorized
	StateUnauthorized
)

func (s GuardState) String() string {
	switch s {
	case StateChecking:
		return "checking"
	case StateAuthorized:
		return "authorized"
	case StateUnauthorized:
		return "unauthorized"
	default:
		return "unknown"
	}
}

// Refresher mints a new access token from the stored refresh token and
// persists it. The API client's plain Refresh satisfies this; it must not
// clear the store on failure — render decisions belong to the guard, store
// lifecycle to the authenticated client.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Guard decides whether a protected view may render. One Guard serves one
// view instance ("mount"); Check runs the transition algorithm once and
// performs at most one refresh call.
//
// States: Unknown → Checking → Authorized | Unauthorized.
type Guard struct {
	store     Store
	refresher Refresher
	logger    logging.Logger
	now       func() time.Time

	mu        sync.Mutex
	state     GuardState
	cancelled bool
}

func NewGuard(store Store, refresher Refresher, logger logging.Logger) *Guard {
	return &Guard{
		store:     store,
		refresher: refresher,
		logger:    logger,
		now:       time.Now,
		state:     StateUnknown,
	}
}

// Check resolves the guard decision and returns it:
//
//  1. No access token stored → Unauthorized, no network call.
//  2. Access token malformed → Unauthorized, no network call: a corrupt
//     credential is not recoverable, same outcome as a failed refresh.
//  3. Access token expired: no refresh token → Unauthorized; otherwise
//     exactly one refresh call — success → Authorized (new access token
//     already persisted by the Refresher), failure → Unauthorized. The
//     store is left untouched on failure.
//  4. Access token unexpired → Authorized, zero network calls.
//
// The returned state is committed to the guard only if it is still live
// (not cancelled, ctx not done) — a resolution arriving after the view is
// gone must not mutate it.
func (g *Guard) Check(ctx context.Context) GuardState {
	g.commit(ctx, StateChecking)

	state := g.resolve(ctx)
	g.commit(ctx, state)
	return state
}

func (g *Guard) resolve(ctx context.Context) GuardState {
	access, err := g.store.Get(ctx, KeyAccessToken)
	if err != nil || access == "" {
		return StateUnauthorized
	}

	expiry := DecodeExpiry(access)
	if expiry.Malformed {
		return StateUnauthorized
	}
	if !expiry.ExpiredAt(g.now()) {
		return StateAuthorized
	}

	refresh, err := g.store.Get(ctx, KeyRefreshToken)
	if err != nil || refresh == "" {
		return StateUnauthorized
	}

	if err := g.refresher.Refresh(ctx); err != nil {
		g.logger.Warn(ctx, "session refresh failed", "error", err)
		return StateUnauthorized
	}
	return StateAuthorized
}

// Cancel marks the guard as gone. Later resolutions are computed but not
// committed.
func (g *Guard) Cancel() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cancelled = true
}

// State returns the last committed state.
func (g *Guard) State() GuardState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

func (g *Guard) commit(ctx context.Context, state GuardState) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.cancelled || ctx.Err() != nil {
		return
	}
	g.state = state
}
