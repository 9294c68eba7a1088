package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/scicon-platform/scicon-cli/internal/client/api"
	"github.com/scicon-platform/scicon-cli/internal/common"
)

// ConferenceService is the thin domain surface: every call goes through the
// authenticated API client, so an expired access token is recovered without
// any of these methods noticing.
type ConferenceService interface {
	ListEvents(ctx context.Context) ([]api.Event, error)
	Attend(ctx context.Context, eventID int64) error
	ListSubmissions(ctx context.Context) ([]api.Submission, error)
	SubmitPaper(ctx context.Context, paper api.PaperSubmission) (api.Submission, error)
	AssignReviewer(ctx context.Context, submissionID, reviewerID int64) error
}

type conferenceService struct {
	client   api.Client
	validate *validator.Validate
}

func NewConferenceService(client api.Client) ConferenceService {
	return &conferenceService{client: client, validate: validator.New()}
}

func (s *conferenceService) ListEvents(ctx context.Context) ([]api.Event, error) {
	return s.client.ListEvents(ctx)
}

func (s *conferenceService) Attend(ctx context.Context, eventID int64) error {
	if eventID <= 0 {
		return fmt.Errorf("%w: event id must be positive", common.ErrValidation)
	}
	return s.client.RegisterForEvent(ctx, eventID)
}

func (s *conferenceService) ListSubmissions(ctx context.Context) ([]api.Submission, error) {
	return s.client.ListSubmissions(ctx)
}

type paperInput struct {
	EventID  int64  `validate:"required,gt=0"`
	Title    string `validate:"required,min=3,max=200"`
	Abstract string `validate:"required,min=10"`
}

func (s *conferenceService) SubmitPaper(ctx context.Context, paper api.PaperSubmission) (api.Submission, error) {
	in := paperInput{EventID: paper.EventID, Title: paper.Title, Abstract: paper.Abstract}
	if err := s.validate.Struct(in); err != nil {
		return api.Submission{}, fmt.Errorf("%w: %s", common.ErrValidation, err)
	}

	return s.client.SubmitPaper(ctx, paper)
}

func (s *conferenceService) AssignReviewer(ctx context.Context, submissionID, reviewerID int64) error {
	if submissionID <= 0 || reviewerID <= 0 {
		return fmt.Errorf("%w: submission and reviewer ids must be positive", common.ErrValidation)
	}
	return s.client.AssignReviewer(ctx, submissionID, reviewerID)
}
