package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/scicon-platform/scicon-cli/internal/client/api"
)

// getID is an indirection over the interactive ID prompt, swappable in tests.
var getID = GetID

func printEvents(events []api.Event) {
	if len(events) == 0 {
		printlnFn("No events found.")
		return
	}
	for _, e := range events {
		printlnFn(fmt.Sprintf("[%d] %s @ %s (%s to %s)", e.ID, e.Title, e.Venue, e.StartDate, e.EndDate))
	}
}

func printSubmissions(submissions []api.Submission) {
	if len(submissions) == 0 {
		printlnFn("No submissions found.")
		return
	}
	for _, s := range submissions {
		printlnFn(fmt.Sprintf("[%d] %s (event %d, %s)", s.ID, s.Title, s.EventID, s.Status))
	}
}

// Events lists published events.
func (a *App) Events(ctx context.Context) error {
	events, err := a.confService.ListEvents(ctx)
	if err != nil {
		a.reportAuthError(ctx, err)
		return err
	}
	printEvents(events)
	return nil
}

// Attend registers attendance for an event chosen by ID.
func (a *App) Attend(ctx context.Context) error {
	id, err := getID(a.reader, "Enter event id", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	if err := a.confService.Attend(ctx, id); err != nil {
		a.reportAuthError(ctx, err)
		return err
	}

	printlnFn("Registered for event", id)
	return nil
}

// Submissions lists paper submissions visible to the current user.
func (a *App) Submissions(ctx context.Context) error {
	submissions, err := a.confService.ListSubmissions(ctx)
	if err != nil {
		a.reportAuthError(ctx, err)
		return err
	}
	printSubmissions(submissions)
	return nil
}

// Submit collects the paper fields interactively and submits the paper.
func (a *App) Submit(ctx context.Context) error {
	eventID, err := getID(a.reader, "Enter event id", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}

	abstract, err := GetMultiline(a.reader, "Enter abstract", os.Stdout)
	if err != nil {
		return err
	}

	keywords, err := getSimpleText(a.reader, "Enter keywords (comma separated)", os.Stdout)
	if err != nil {
		return err
	}

	paper := api.PaperSubmission{EventID: eventID, Title: title, Abstract: abstract, Keywords: keywords}
	submission, err := a.confService.SubmitPaper(ctx, paper)
	if err != nil {
		a.reportAuthError(ctx, err)
		return err
	}

	printlnFn(fmt.Sprintf("Submitted paper [%d] %s (%s)", submission.ID, submission.Title, submission.Status))
	return nil
}

// Assign attaches a reviewer to a submission, both chosen by ID.
func (a *App) Assign(ctx context.Context) error {
	submissionID, err := getID(a.reader, "Enter submission id", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	reviewerID, err := getID(a.reader, "Enter reviewer id", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	if err := a.confService.AssignReviewer(ctx, submissionID, reviewerID); err != nil {
		a.reportAuthError(ctx, err)
		return err
	}

	printlnFn(fmt.Sprintf("Reviewer %d assigned to submission %d", reviewerID, submissionID))
	return nil
}
