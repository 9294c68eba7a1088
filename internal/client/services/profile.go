package services

import (
	"context"
	"sync"

	"github.com/scicon-platform/scicon-cli/internal/client/api"
)

// ProfileProvider is the single shared source of the current user's profile.
// Every role-aware view consumes it instead of re-fetching the profile on
// its own; the cache lives as long as the session and is invalidated on
// logout and on the session-invalidated signal.
type ProfileProvider struct {
	client api.Client

	mu     sync.Mutex
	cached *api.UserProfile
}

func NewProfileProvider(client api.Client) *ProfileProvider {
	return &ProfileProvider{client: client}
}

// Profile returns the cached profile, fetching it once per session.
// Concurrent callers during the first fetch wait for a single round trip.
func (p *ProfileProvider) Profile(ctx context.Context) (api.UserProfile, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cached != nil {
		return *p.cached, nil
	}

	profile, err := p.client.Profile(ctx)
	if err != nil {
		return api.UserProfile{}, err
	}
	p.cached = &profile
	return profile, nil
}

// Invalidate drops the cached profile. The next Profile call fetches fresh.
func (p *ProfileProvider) Invalidate() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cached = nil
}
