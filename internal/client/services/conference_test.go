package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scicon-platform/scicon-cli/internal/client/api"
	"github.com/scicon-platform/scicon-cli/internal/common"
)

func TestConferenceService_ListEvents(t *testing.T) {
	ctx := context.Background()
	f := &fakeAPI{events: []api.Event{{ID: 1, Title: "GopherCon"}}}
	svc := NewConferenceService(f)

	events, err := svc.ListEvents(ctx)

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "GopherCon", events[0].Title)
}

func TestConferenceService_Attend(t *testing.T) {
	ctx := context.Background()
	f := &fakeAPI{}
	svc := NewConferenceService(f)

	require.NoError(t, svc.Attend(ctx, 7))
	assert.Equal(t, int64(7), f.lastAttendID)
}

func TestConferenceService_Attend_RejectsBadID(t *testing.T) {
	ctx := context.Background()
	svc := NewConferenceService(&fakeAPI{})

	err := svc.Attend(ctx, 0)
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestConferenceService_SubmitPaper(t *testing.T) {
	ctx := context.Background()
	f := &fakeAPI{submitResult: api.Submission{ID: 3, Status: "submitted"}}
	svc := NewConferenceService(f)

	paper := api.PaperSubmission{
		EventID:  1,
		Title:    "On Token Refresh",
		Abstract: "A study of silent session recovery in SPAs.",
		Keywords: "auth, jwt",
	}
	submission, err := svc.SubmitPaper(ctx, paper)

	require.NoError(t, err)
	assert.Equal(t, int64(3), submission.ID)
	assert.Equal(t, paper, f.lastPaper)
}

func TestConferenceService_SubmitPaper_Validates(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		paper api.PaperSubmission
	}{
		{name: "missing event", paper: api.PaperSubmission{Title: "T valid", Abstract: "long enough abstract"}},
		{name: "short title", paper: api.PaperSubmission{EventID: 1, Title: "ab", Abstract: "long enough abstract"}},
		{name: "short abstract", paper: api.PaperSubmission{EventID: 1, Title: "Valid title", Abstract: "nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewConferenceService(&fakeAPI{})
			_, err := svc.SubmitPaper(ctx, tt.paper)
			require.ErrorIs(t, err, common.ErrValidation)
		})
	}
}

func TestConferenceService_AssignReviewer(t *testing.T) {
	ctx := context.Background()
	f := &fakeAPI{}
	svc := NewConferenceService(f)

	require.NoError(t, svc.AssignReviewer(ctx, 5, 9))
	assert.Equal(t, int64(5), f.lastSubmissionID)
	assert.Equal(t, int64(9), f.lastReviewerID)

	require.ErrorIs(t, svc.AssignReviewer(ctx, 0, 9), common.ErrValidation)
	require.ErrorIs(t, svc.AssignReviewer(ctx, 5, -1), common.ErrValidation)
}
