package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"
	"sync"

	"github.com/scicon-platform/scicon-cli/internal/client/api"
	"github.com/scicon-platform/scicon-cli/internal/client/config"
	"github.com/scicon-platform/scicon-cli/internal/client/routes"
	"github.com/scicon-platform/scicon-cli/internal/client/services"
	"github.com/scicon-platform/scicon-cli/internal/client/session"
	"github.com/scicon-platform/scicon-cli/internal/logging"

	_ "modernc.org/sqlite"
)

// App is the interactive SciCon client. It owns the session store, the
// authenticated API client and the application services, and tracks a single
// UI-level flag: whether the user currently appears logged in. The source of
// truth for the session itself is always the store.
type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	store       session.Store
	client      *api.HTTPClient
	authService services.AuthService
	confService services.ConferenceService
	profiles    *services.ProfileProvider
	reader      *bufio.Reader

	// newGuard builds a fresh session guard per protected view. A factory
	// because a guard serves exactly one check.
	newGuard func() *session.Guard

	mu       sync.Mutex
	loggedIn bool
}

// NewApp builds the full client stack: sqlite-backed session store, API
// client, profile provider and services. It also installs the single
// session-invalidated listener, so an unrecoverable authentication failure
// anywhere in the app drops the user back to the login prompt exactly once.
func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	db, err := session.InitDatabase(ctx, cfg.StoragePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	store := session.NewSQLiteStore(db)
	apiClient := api.NewHTTPClient(api.Config{BaseURL: cfg.BaseURL, Timeout: cfg.RequestTimeout}, store, logger)
	profiles := services.NewProfileProvider(apiClient)

	app := &App{
		config:      cfg,
		logger:      logger,
		db:          db,
		store:       store,
		client:      apiClient,
		authService: services.NewAuthService(apiClient, store, profiles, logger),
		confService: services.NewConferenceService(apiClient),
		profiles:    profiles,
		reader:      bufio.NewReader(os.Stdin),
	}

	app.newGuard = func() *session.Guard {
		return session.NewGuard(store, apiClient, logger)
	}

	apiClient.OnSessionInvalidated(app.onSessionInvalidated)

	return app, nil
}

// onSessionInvalidated reacts to the API client's signal that the session
// could not be recovered. The client has already cleared the store; here we
// drop the cached profile, flip the UI state and tell the user where to go.
func (a *App) onSessionInvalidated() {
	a.setLoggedIn(false)
	a.profiles.Invalidate()
	printlnFn("Session expired. Please sign in again (" + routes.Login + ").")
}

func (a *App) isLoggedIn() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loggedIn
}

func (a *App) setLoggedIn(v bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.loggedIn = v
}

// restoreSession runs the session guard against whatever is on disk, so a
// restart continues a previous session without re-prompting for credentials.
func (a *App) restoreSession(ctx context.Context) {
	if a.newGuard().Check(ctx) == session.StateAuthorized {
		a.setLoggedIn(true)
		if name, _, err := a.authService.CurrentUser(ctx); err == nil && name != "" {
			printlnFn("Welcome back, " + name + "!")
		}
	}
}

func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return ""
	}
	name, _, err := a.authService.CurrentUser(context.Background())
	if err != nil || name == "" {
		return ""
	}
	return fmt.Sprintf("(%s) ", name)
}

// Run restores the previous session and starts the REPL. It blocks until
// the user exits or the context is cancelled.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	printlnFn("Welcome to SciCon CLI (type 'help' for commands)")
	a.restoreSession(ctx)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// Close releases the underlying storage.
func (a *App) Close() error {
	return a.db.Close()
}
