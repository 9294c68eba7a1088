package services

import (
	"context"

	"github.com/scicon-platform/scicon-cli/internal/client/api"
)

// fakeAPI is a test double for api.Client: inputs captured, outputs preset.
type fakeAPI struct {
	// inputs captured
	lastLoginEmail    string
	lastLoginPassword string
	lastRegisterName  string
	lastRegisterEmail string
	lastAttendID      int64
	lastPaper         api.PaperSubmission
	lastSubmissionID  int64
	lastReviewerID    int64

	// call counters
	loginCalls   int
	profileCalls int

	// outputs preset
	loginPair   api.TokenPair
	loginErr    error
	registerErr error
	refreshErr  error

	profile    api.UserProfile
	profileErr error

	events    []api.Event
	eventsErr error

	submissions    []api.Submission
	submissionsErr error

	submitResult api.Submission
	submitErr    error

	attendErr error
	assignErr error
}

func (f *fakeAPI) Login(ctx context.Context, email, password string) (api.TokenPair, error) {
	f.loginCalls++
	f.lastLoginEmail = email
	f.lastLoginPassword = password
	return f.loginPair, f.loginErr
}

func (f *fakeAPI) Register(ctx context.Context, username, email, password string) error {
	f.lastRegisterName = username
	f.lastRegisterEmail = email
	return f.registerErr
}

func (f *fakeAPI) Refresh(ctx context.Context) error {
	return f.refreshErr
}

func (f *fakeAPI) Profile(ctx context.Context) (api.UserProfile, error) {
	f.profileCalls++
	return f.profile, f.profileErr
}

func (f *fakeAPI) ListEvents(ctx context.Context) ([]api.Event, error) {
	return f.events, f.eventsErr
}

func (f *fakeAPI) RegisterForEvent(ctx context.Context, eventID int64) error {
	f.lastAttendID = eventID
	return f.attendErr
}

func (f *fakeAPI) ListSubmissions(ctx context.Context) ([]api.Submission, error) {
	return f.submissions, f.submissionsErr
}

func (f *fakeAPI) SubmitPaper(ctx context.Context, paper api.PaperSubmission) (api.Submission, error) {
	f.lastPaper = paper
	return f.submitResult, f.submitErr
}

func (f *fakeAPI) AssignReviewer(ctx context.Context, submissionID, reviewerID int64) error {
	f.lastSubmissionID = submissionID
	f.lastReviewerID = reviewerID
	return f.assignErr
}
