// Package session holds the client-side session state: a durable key/value
// store for the token pair and user display fields, unverified access-token
// expiry decoding, and the guard state machine that decides whether a
// protected view may render.
package session

import "context"

// Keys used in the session store. Tokens and display fields share the same
// table and are cleared together.
const (
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
	KeyUserName     = "user_name"
	KeyUserEmail    = "user_email"
)

// Store is durable key/value storage for session data. It performs no
// validation; interpretation of values belongs to the callers.
//
// Get returns an empty string when the key is absent. Clear removes all keys
// in a single statement (logout and unrecoverable auth failure rely on this
// being atomic).
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string]string, error)
	Clear(ctx context.Context) error
}
