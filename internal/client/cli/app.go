package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/storydeck/storydeck/internal/client/api"
	"github.com/storydeck/storydeck/internal/client/config"
	"github.com/storydeck/storydeck/internal/client/models"
	"github.com/storydeck/storydeck/internal/client/repositories/credentials"
	"github.com/storydeck/storydeck/internal/client/services"
	"github.com/storydeck/storydeck/internal/client/views"
)

// App wires the services together and owns the application state: the
// current session and the last fetched story list. Commands mutate the
// state only by replacing it with service results, never in place.
type App struct {
	config   *config.Config
	sessions services.SessionService
	stories  services.StoryService
	log      zerolog.Logger

	session models.Session
	list    models.StoryList

	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the local credential store and constructs the service
// stack. A store that cannot be opened is a boot failure; the caller is
// expected to exit.
func NewApp(cfg *config.Config, log zerolog.Logger) (*App, error) {
	ctx := context.Background()

	db, err := credentials.Open(ctx, cfg.CredentialsDSN)
	if err != nil {
		return nil, err
	}

	apiClient := api.NewHTTPClient(cfg.ServerBaseURL, cfg.RequestTimeout, log)

	return &App{
		config:   cfg,
		sessions: services.NewSessionService(apiClient, db, log),
		stories:  services.NewStoryService(apiClient, log),
		log:      log,
		session:  models.AnonymousSession(),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

// Run boots the client and hands control to the REPL.
func (a *App) Run(ctx context.Context) {
	a.boot(ctx)
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

// boot mirrors the original page load: resolve the persisted session,
// fetch the feed, land on the main story list. A failed feed fetch must
// not block startup; the feed stays empty until the next refresh.
func (a *App) boot(ctx context.Context) {
	a.session = a.sessions.ResolveFromStore(ctx)

	list, err := a.stories.Refresh(ctx)
	if err != nil {
		a.log.Warn().Err(err).Msg("initial feed fetch failed")
	} else {
		a.list = list
	}

	a.show(views.SectionFeed)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) status() string {
	if username := a.session.Username(); username != "" {
		return username
	}
	return "anonymous"
}

// sync re-resolves the session and refetches the feed, the equivalent of
// the original client's post-mutation page regeneration. Keeping both in
// lockstep is what prevents the derived own/favorite views from drifting.
func (a *App) sync(ctx context.Context) {
	a.session = a.sessions.ResolveFromStore(ctx)

	list, err := a.stories.Refresh(ctx)
	if err != nil {
		a.log.Warn().Err(err).Msg("feed refresh failed, keeping previous list")
		return
	}
	a.list = list
}

// show dispatches the requested section against the current state and
// renders the result.
func (a *App) show(section views.Section) {
	state := views.Dispatch(a.session, a.list, section)
	renderView(a.out, state)
}
