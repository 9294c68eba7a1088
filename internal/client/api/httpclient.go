package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/scicon-platform/scicon-cli/internal/client/session"
	"github.com/scicon-platform/scicon-cli/internal/logging"
)

const (
	pathLogin    = "/api/token/get/"
	pathRefresh  = "/api/auth/refresh/"
	pathRegister = "/api/auth/register/"
	pathProfile  = "/api/auth/profile/"
	pathEvents   = "/api/events/"
	pathPapers   = "/api/submissions/"

	defaultTimeout = 15 * time.Second
)

// Config holds construction parameters for the HTTP client.
type Config struct {
	// BaseURL of the backend API, without a trailing slash.
	BaseURL string

	// Timeout applied per request attempt. Zero means the default.
	Timeout time.Duration

	// HTTPClient overrides the transport, mainly for tests.
	HTTPClient *http.Client
}

// HTTPClient is the Client implementation over net/http and a session store.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
	store   session.Store
	logger  logging.Logger

	// onInvalid is the session-invalidated signal. A single top-level
	// listener translates it into navigation back to the login screen.
	onInvalid func()

	// newRequestID is a test seam.
	newRequestID func() string
}

func NewHTTPClient(cfg Config, store session.Store, logger logging.Logger) *HTTPClient {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &HTTPClient{
		baseURL:      cfg.BaseURL,
		http:         httpClient,
		timeout:      timeout,
		store:        store,
		logger:       logger,
		newRequestID: uuid.NewString,
	}
}

// OnSessionInvalidated registers the listener fired after the store has been
// cleared on an unrecoverable auth failure.
func (c *HTTPClient) OnSessionInvalidated(fn func()) {
	c.onInvalid = fn
}

// pendingRequest is the retained descriptor of one logical request. It may
// be re-issued at most once after a successful refresh; the retried flag is
// the loop guard against a permanently invalid refresh token.
type pendingRequest struct {
	method  string
	path    string
	body    []byte
	id      string
	retried bool
}

// send issues one attempt of the request, attaching the stored access token
// as a bearer header when present, and returns the fully read response.
// Transport errors come back unwrapped in semantics: they were never
// answered by the backend and must not trigger a retry.
func (c *HTTPClient) send(ctx context.Context, pr *pendingRequest) (int, []byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if pr.body != nil {
		reader = bytes.NewReader(pr.body)
	}

	req, err := http.NewRequestWithContext(ctx, pr.method, c.baseURL+pr.path, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", pr.id)
	if pr.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	access, err := c.store.Get(ctx, session.KeyAccessToken)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read access token: %w", err)
	}
	if access != "" {
		req.Header.Set("Authorization", "Bearer "+access)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// The backend never answered; callers must not treat this as an
		// auth failure and must not retry.
		return 0, nil, fmt.Errorf("%w: %s", ErrUnavailable, err)
	}
	defer resp.Body.Close() // nolint:errcheck

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response: %w", err)
	}
	return resp.StatusCode, data, nil
}

// do runs the full request cycle: send, and on a 401 exactly one
// refresh-and-retry. With no refresh token stored the session is
// invalidated and the original 401 propagates as *APIError; a rejected
// refresh invalidates the session and propagates the refresh error.
// Non-401 statuses pass through as *APIError untouched.
func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	var body []byte
	if in != nil {
		var err error
		body, err = json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
	}
	pr := &pendingRequest{method: method, path: path, body: body, id: c.newRequestID()}

	status, data, err := c.send(ctx, pr)
	if err != nil {
		return err
	}

	if status == http.StatusUnauthorized && !pr.retried {
		pr.retried = true

		refresh, rerr := c.store.Get(ctx, session.KeyRefreshToken)
		if rerr != nil {
			return fmt.Errorf("failed to read refresh token: %w", rerr)
		}
		if refresh == "" {
			// Nothing to recover with; the caller gets the 401 it was
			// actually served.
			c.invalidateSession(ctx)
			return &APIError{Status: status, Body: string(data)}
		}

		if rerr := c.Refresh(ctx); rerr != nil {
			c.invalidateSession(ctx)
			return rerr
		}

		c.logger.Debug(ctx, "access token refreshed, retrying request", "request_id", pr.id)
		status, data, err = c.send(ctx, pr)
		if err != nil {
			return err
		}
	}

	if status < 200 || status >= 300 {
		return &APIError{Status: status, Body: string(data)}
	}
	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// invalidateSession clears the whole session store (both tokens go together,
// never one without the other) and fires the signal.
func (c *HTTPClient) invalidateSession(ctx context.Context) {
	if err := c.store.Clear(ctx); err != nil {
		c.logger.Error(ctx, "failed to clear session store", "error", err)
	}
	c.logger.Info(ctx, "session invalidated, sign-in required")
	if c.onInvalid != nil {
		c.onInvalid()
	}
}

// Login exchanges credentials for a token pair and persists it. The login
// and refresh endpoints are the two calls that bypass the 401 recovery: a
// 401 here means bad credentials, not an expired session.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (TokenPair, error) {
	var pair TokenPair

	in := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	body, err := json.Marshal(in)
	if err != nil {
		return pair, fmt.Errorf("failed to encode login request: %w", err)
	}

	pr := &pendingRequest{method: http.MethodPost, path: pathLogin, body: body, id: c.newRequestID()}
	status, data, err := c.send(ctx, pr)
	if err != nil {
		return pair, err
	}
	if status < 200 || status >= 300 {
		return pair, &APIError{Status: status, Body: string(data)}
	}
	if err := json.Unmarshal(data, &pair); err != nil {
		return pair, fmt.Errorf("failed to decode login response: %w", err)
	}

	if err := c.store.Set(ctx, session.KeyAccessToken, pair.Access); err != nil {
		return pair, err
	}
	if err := c.store.Set(ctx, session.KeyRefreshToken, pair.Refresh); err != nil {
		return pair, err
	}
	return pair, nil
}

func (c *HTTPClient) Register(ctx context.Context, username, email, password string) error {
	in := struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Username: username, Email: email, Password: password}

	return c.do(ctx, http.MethodPost, pathRegister, in, nil)
}

// Refresh posts the stored refresh token and persists the returned access
// token. It never clears the store: the guard relies on failure leaving the
// session exactly as it was, and do() handles clearing on its own path.
func (c *HTTPClient) Refresh(ctx context.Context) error {
	refresh, err := c.store.Get(ctx, session.KeyRefreshToken)
	if err != nil {
		return fmt.Errorf("failed to read refresh token: %w", err)
	}
	if refresh == "" {
		return fmt.Errorf("no refresh token stored: %w", ErrUnauthorized)
	}

	in := struct {
		Refresh string `json:"refresh"`
	}{Refresh: refresh}

	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to encode refresh request: %w", err)
	}

	pr := &pendingRequest{method: http.MethodPost, path: pathRefresh, body: body, id: c.newRequestID()}
	status, data, err := c.send(ctx, pr)
	if err != nil {
		return err
	}
	if status < 200 || status >= 300 {
		return fmt.Errorf("refresh rejected: %w", &APIError{Status: status, Body: string(data)})
	}

	var out struct {
		Access string `json:"access"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return fmt.Errorf("failed to decode refresh response: %w", err)
	}

	return c.store.Set(ctx, session.KeyAccessToken, out.Access)
}

func (c *HTTPClient) Profile(ctx context.Context) (UserProfile, error) {
	var profile UserProfile
	err := c.do(ctx, http.MethodGet, pathProfile, nil, &profile)
	return profile, err
}

func (c *HTTPClient) ListEvents(ctx context.Context) ([]Event, error) {
	var events []Event
	err := c.do(ctx, http.MethodGet, pathEvents, nil, &events)
	return events, err
}

func (c *HTTPClient) RegisterForEvent(ctx context.Context, eventID int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("%s%d/register/", pathEvents, eventID), nil, nil)
}

func (c *HTTPClient) ListSubmissions(ctx context.Context) ([]Submission, error) {
	var submissions []Submission
	err := c.do(ctx, http.MethodGet, pathPapers, nil, &submissions)
	return submissions, err
}

func (c *HTTPClient) SubmitPaper(ctx context.Context, paper PaperSubmission) (Submission, error) {
	var submission Submission
	err := c.do(ctx, http.MethodPost, pathPapers, paper, &submission)
	return submission, err
}

func (c *HTTPClient) AssignReviewer(ctx context.Context, submissionID, reviewerID int64) error {
	in := struct {
		Reviewer int64 `json:"reviewer"`
	}{Reviewer: reviewerID}

	return c.do(ctx, http.MethodPost, fmt.Sprintf("%s%d/reviewers/", pathPapers, submissionID), in, nil)
}
