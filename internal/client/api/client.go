// Package api implements the authenticated REST client for the SciCon
// backend. Every outbound request carries the stored bearer token; a 401 is
// recovered transparently by at most one refresh-and-retry cycle per
// request. Unrecoverable auth failures clear the session store and emit a
// session-invalidated signal; routing on that signal belongs to the
// top-level listener, not to this layer.
package api

import "context"

type Client interface {
	// Login authenticates with the backend and persists both tokens in the
	// session store.
	Login(ctx context.Context, email, password string) (TokenPair, error)

	// Register creates a new account. It does not log the user in.
	Register(ctx context.Context, username, email, password string) error

	// Refresh mints a new access token from the stored refresh token and
	// persists it. It is plain: on failure it returns the error and leaves
	// the store untouched (the session guard depends on that).
	Refresh(ctx context.Context) error

	// Profile fetches the authenticated user's profile.
	Profile(ctx context.Context) (UserProfile, error)

	ListEvents(ctx context.Context) ([]Event, error)
	RegisterForEvent(ctx context.Context, eventID int64) error
	ListSubmissions(ctx context.Context) ([]Submission, error)
	SubmitPaper(ctx context.Context, paper PaperSubmission) (Submission, error)
	AssignReviewer(ctx context.Context, submissionID, reviewerID int64) error
}
