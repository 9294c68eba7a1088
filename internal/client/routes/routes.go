// Package routes is the single source of truth for client navigation
// targets, in particular the role → dashboard mapping. Views must never
// re-derive these paths locally.
package routes

// Roles recognized by the dispatcher. Anything else falls back to the
// participant dashboard.
const (
	RoleOrganizer   = "organizer"
	RoleAuthor      = "author"
	RoleReviewer    = "reviewer"
	RoleParticipant = "participant"
)

const (
	Login    = "/login"
	Register = "/register"

	DashboardOrganizer   = "/organizer/dashboard"
	DashboardAuthor      = "/author/dashboard"
	DashboardReviewer    = "/reviewer/dashboard"
	DashboardParticipant = "/participant/dashboard"
)

// DashboardFor maps a profile role to its canonical dashboard path. The
// mapping is total: unknown and empty roles land on the participant
// dashboard, never a dead end.
func DashboardFor(role string) string {
	switch role {
	case RoleOrganizer:
		return DashboardOrganizer
	case RoleAuthor:
		return DashboardAuthor
	case RoleReviewer:
		return DashboardReviewer
	default:
		return DashboardParticipant
	}
}
