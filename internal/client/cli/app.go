package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/accountkeeper/internal/client/accounts"
	"github.com/dmitrijs2005/accountkeeper/internal/client/api"
	"github.com/dmitrijs2005/accountkeeper/internal/client/config"
	"github.com/dmitrijs2005/accountkeeper/internal/client/session"
	"github.com/dmitrijs2005/accountkeeper/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the client together: the HTTP API client, the session
// manager with its local store, the account store, and the terminal
// implementations of the UI collaborators.
type App struct {
	config   *config.Config
	client   api.Client
	session  *session.Manager
	accounts *accounts.Store
	nav      *TermNavigator
	log      logging.Logger
	reader   *bufio.Reader
	out      *os.File
	online   atomic.Bool
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := session.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("initializing local database: %w", err)
	}

	apiClient := api.NewHTTPClient(cfg.IAMBaseURL, cfg.AccountsBaseURL, cfg.RequestTimeout)

	nav := NewTermNavigator(os.Stdout)
	notifier := NewTermNotifier(os.Stdout)

	mgr := session.NewManager(apiClient, session.NewSQLiteStore(db), nav, notifier, log)
	apiClient.SetTokenSource(func() string {
		return mgr.AccessToken(context.Background())
	})

	app := &App{
		config:   cfg,
		client:   apiClient,
		session:  mgr,
		accounts: accounts.NewStore(apiClient, log),
		nav:      nav,
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}
	app.online.Store(true)
	return app, nil
}

// Run starts the online-status watcher and the REPL. It returns when
// the user exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	fmt.Fprintln(a.out, "Welcome to accountkeeper (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) getStatus() string {
	s := ""
	if user := a.session.CurrentUser(context.Background()); user != nil {
		s = user.Email + " "
	}
	if a.online.Load() {
		s += "online"
	} else {
		s += "offline"
	}
	if surface := a.nav.Current(); surface != "" {
		s += " " + surface
	}
	return "(" + s + ")"
}

// StartOnlineStatusWatcher periodically probes backend liveness and
// flips the online indicator shown in the prompt.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.client.Ping(pingCtx)
			cancel()

			online := err == nil
			if a.online.Swap(online) != online {
				if online {
					a.log.Info(ctx, "backend reachable")
				} else {
					a.log.Warn(ctx, "backend unreachable", "error", err)
				}
			}

		case <-ctx.Done():
			return
		}
	}
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.session.IsLoggedIn(ctx)
}
