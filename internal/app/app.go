package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/plantcare-app/plantcare/internal/backend"
	"github.com/plantcare-app/plantcare/internal/config"
	"github.com/plantcare-app/plantcare/internal/filex"
	"github.com/plantcare-app/plantcare/internal/logging"
	"github.com/plantcare-app/plantcare/internal/plants"
	"github.com/plantcare-app/plantcare/internal/prefs"
	"github.com/plantcare-app/plantcare/internal/session"
)

type App struct {
	config  *config.Config
	gateway session.Gateway
	store   plants.Store
	prefs   prefs.Repository
	logger  logging.Logger
	reader  *bufio.Reader
	out     io.Writer
	closers []io.Closer
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	if _, err := filex.EnsureDir(c.DataDir); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}

	logger, logFile, err := logging.NewFileLogger(c.DataDir)
	if err != nil {
		return nil, err
	}

	db, err := prefs.Open(ctx, filepath.Join(c.DataDir, "plantcare.db"))
	if err != nil {
		logger.Error(ctx, "error initializing preferences database", "error", err)
		return nil, err
	}

	client, err := backend.New(backend.Config{URL: c.BackendURL, APIKey: c.APIKey})
	if err != nil {
		return nil, err
	}

	gw := session.NewGateway(client.Auth())

	return &App{
		config:  c,
		gateway: gw,
		store:   plants.NewStore(client, gw),
		prefs:   prefs.NewSQLiteRepository(db),
		logger:  logger,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		closers: []io.Closer{db, logFile},
	}, nil
}

// Close releases the preferences database and the log file.
func (a *App) Close() {
	for _, c := range a.closers {
		_ = c.Close()
	}
}

// Run drives the navigation loop: each screen returns the next route and
// the loop dispatches until the user exits.
func (a *App) Run(ctx context.Context) {
	route := a.startRoute(ctx)
	for route.Name != routeExit {
		route = a.dispatch(ctx, route)
	}
	fmt.Fprintln(a.out, "Bye!")
}

// startRoute decides where the app opens: onboarding on first launch,
// otherwise the plant list when a session is live, the login screen when not.
func (a *App) startRoute(ctx context.Context) Route {
	done, err := a.prefs.Get(ctx, prefs.KeyOnboardingCompleted)
	if err != nil {
		a.logger.Warn(ctx, "error reading onboarding flag", "error", err)
	}
	if done != "true" {
		return to(routeIntro1)
	}
	if _, err := a.currentUser(ctx); err != nil {
		return to(routeLogin)
	}
	return to(routeTabs)
}

func (a *App) dispatch(ctx context.Context, r Route) Route {
	switch r.Name {
	case routeLogin:
		return a.loginScreen(ctx)
	case routeRegister:
		return a.registerScreen(ctx)
	case routeTabs:
		return a.plantListScreen(ctx)
	case routeAddPlant:
		return a.addPlantScreen(ctx)
	case routeEditPlant:
		return a.editPlantScreen(ctx, r.Params["id"])
	case routePlantDetail:
		return a.plantDetailScreen(ctx, r.Params["id"])
	case routeExplore:
		return a.exploreScreen(ctx)
	case routeTipDetail:
		return a.tipDetailScreen(ctx, r.Params)
	case routeProfile:
		return a.profileScreen(ctx)
	case routeIntro1:
		return a.introScreen(ctx, 1)
	case routeIntro2:
		return a.introScreen(ctx, 2)
	case routeIntro3:
		return a.introScreen(ctx, 3)
	default:
		a.logger.Warn(ctx, "unknown route", "route", r.Name)
		return to(routeLogin)
	}
}

// currentUser resolves the signed-in user with a request-scoped timeout.
func (a *App) currentUser(ctx context.Context) (*session.User, error) {
	cctx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	defer cancel()
	return a.gateway.CurrentUser(cctx)
}
