package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/scicon-platform/scicon-cli/internal/client/api"
	"github.com/scicon-platform/scicon-cli/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// capturePrintln redirects printlnFn into a buffer for the duration of the
// test and returns a function that yields everything printed so far.
func capturePrintln(t *testing.T) func() string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(args ...any) (int, error) {
		lines = append(lines, strings.TrimRight(fmt.Sprintln(args...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return func() string { return strings.Join(lines, "\n") }
}

type fakeAuthService struct {
	loginEmail    string
	loginPassword string
	loginErr      error

	regUsername string
	regEmail    string
	regErr      error

	logoutCalls int
	logoutErr   error

	profile    api.UserProfile
	profileErr error

	name  string
	email string
}

func (f *fakeAuthService) Login(_ context.Context, email string, password []byte) error {
	f.loginEmail, f.loginPassword = email, string(password)
	return f.loginErr
}

func (f *fakeAuthService) Register(_ context.Context, username, email string, _ []byte) error {
	f.regUsername, f.regEmail = username, email
	return f.regErr
}

func (f *fakeAuthService) Logout(context.Context) error {
	f.logoutCalls++
	return f.logoutErr
}

func (f *fakeAuthService) Profile(context.Context) (api.UserProfile, error) {
	return f.profile, f.profileErr
}

func (f *fakeAuthService) CurrentUser(context.Context) (string, string, error) {
	return f.name, f.email, nil
}

type fakeConfService struct {
	events    []api.Event
	eventsErr error

	attendID  int64
	attendErr error

	submissions    []api.Submission
	submissionsErr error

	lastPaper    api.PaperSubmission
	submitResult api.Submission
	submitErr    error

	assignSubmissionID int64
	assignReviewerID   int64
	assignErr          error
}

func (f *fakeConfService) ListEvents(context.Context) ([]api.Event, error) {
	return f.events, f.eventsErr
}

func (f *fakeConfService) Attend(_ context.Context, eventID int64) error {
	f.attendID = eventID
	return f.attendErr
}

func (f *fakeConfService) ListSubmissions(context.Context) ([]api.Submission, error) {
	return f.submissions, f.submissionsErr
}

func (f *fakeConfService) SubmitPaper(_ context.Context, paper api.PaperSubmission) (api.Submission, error) {
	f.lastPaper = paper
	return f.submitResult, f.submitErr
}

func (f *fakeConfService) AssignReviewer(_ context.Context, submissionID, reviewerID int64) error {
	f.assignSubmissionID, f.assignReviewerID = submissionID, reviewerID
	return f.assignErr
}

// fakeClient backs the profile provider in dashboard tests. Only Profile is
// expected to be called.
type fakeClient struct {
	profile    api.UserProfile
	profileErr error
}

func (f *fakeClient) Login(context.Context, string, string) (api.TokenPair, error) {
	return api.TokenPair{}, nil
}
func (f *fakeClient) Register(context.Context, string, string, string) error { return nil }
func (f *fakeClient) Refresh(context.Context) error                          { return nil }
func (f *fakeClient) Profile(context.Context) (api.UserProfile, error) {
	return f.profile, f.profileErr
}
func (f *fakeClient) ListEvents(context.Context) ([]api.Event, error)            { return nil, nil }
func (f *fakeClient) RegisterForEvent(context.Context, int64) error              { return nil }
func (f *fakeClient) ListSubmissions(context.Context) ([]api.Submission, error)  { return nil, nil }
func (f *fakeClient) SubmitPaper(context.Context, api.PaperSubmission) (api.Submission, error) {
	return api.Submission{}, nil
}
func (f *fakeClient) AssignReviewer(context.Context, int64, int64) error { return nil }
