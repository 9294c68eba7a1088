package cli

import (
	"context"
	"fmt"

	"github.com/scicon-platform/scicon-cli/internal/client/api"
	"github.com/scicon-platform/scicon-cli/internal/client/routes"
	"github.com/scicon-platform/scicon-cli/internal/client/session"
)

// Dashboard opens the role-aware dashboard.
//
// Every invocation runs a fresh session guard over the stored tokens. When
// the guard resolves unauthorized the user is sent to the login prompt; the
// dashboard itself never renders in that case. When authorized, the shared
// profile provider supplies the role and the matching dashboard view is
// rendered. Unknown roles land on the participant dashboard.
func (a *App) Dashboard(ctx context.Context) error {
	if state := a.newGuard().Check(ctx); state != session.StateAuthorized {
		a.setLoggedIn(false)
		printlnFn("Not signed in, redirecting to " + routes.Login + ".")
		return nil
	}

	profile, err := a.profiles.Profile(ctx)
	if err != nil {
		a.reportAuthError(ctx, err)
		return err
	}

	path := routes.DashboardFor(profile.Role)
	printlnFn("Opening " + path)

	switch path {
	case routes.DashboardOrganizer:
		return a.renderOrganizerDashboard(ctx, profile)
	case routes.DashboardAuthor:
		return a.renderAuthorDashboard(ctx, profile)
	case routes.DashboardReviewer:
		return a.renderReviewerDashboard(ctx, profile)
	default:
		return a.renderParticipantDashboard(ctx, profile)
	}
}

func (a *App) renderOrganizerDashboard(ctx context.Context, p api.UserProfile) error {
	printlnFn(fmt.Sprintf("Organizer dashboard for %s", p.Username))
	submissions, err := a.confService.ListSubmissions(ctx)
	if err != nil {
		a.reportAuthError(ctx, err)
		return err
	}
	printlnFn(fmt.Sprintf("Submissions awaiting review assignment: %d", len(submissions)))
	printSubmissions(submissions)
	return nil
}

func (a *App) renderAuthorDashboard(ctx context.Context, p api.UserProfile) error {
	printlnFn(fmt.Sprintf("Author dashboard for %s", p.Username))
	submissions, err := a.confService.ListSubmissions(ctx)
	if err != nil {
		a.reportAuthError(ctx, err)
		return err
	}
	printlnFn(fmt.Sprintf("Your submissions: %d", len(submissions)))
	printSubmissions(submissions)
	return nil
}

func (a *App) renderReviewerDashboard(ctx context.Context, p api.UserProfile) error {
	printlnFn(fmt.Sprintf("Reviewer dashboard for %s", p.Username))
	submissions, err := a.confService.ListSubmissions(ctx)
	if err != nil {
		a.reportAuthError(ctx, err)
		return err
	}
	printlnFn(fmt.Sprintf("Papers on your desk: %d", len(submissions)))
	printSubmissions(submissions)
	return nil
}

func (a *App) renderParticipantDashboard(ctx context.Context, p api.UserProfile) error {
	printlnFn(fmt.Sprintf("Participant dashboard for %s", p.Username))
	events, err := a.confService.ListEvents(ctx)
	if err != nil {
		a.reportAuthError(ctx, err)
		return err
	}
	printlnFn(fmt.Sprintf("Upcoming events: %d", len(events)))
	printEvents(events)
	return nil
}
