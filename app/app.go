// Package app composes the client: configuration, local store, HTTP gateway,
// session lifecycle, query cache, and the per-page business logic.
package app

import (
	"fmt"
	"log/slog"

	"campus-connect-client/api"
	"campus-connect-client/config"
	"campus-connect-client/localstore"
	"campus-connect-client/query"
	"campus-connect-client/readstate"
	"campus-connect-client/session"
)

type Options struct {
	Config   *config.Config
	Notifier query.Notifier
	Logger   *slog.Logger
	// OnLoginRedirect fires after an unauthorized response purged the
	// session; the embedding UI routes to its login entry point.
	OnLoginRedirect func()
}

type App struct {
	Config   *config.Config
	Client   *api.Client
	Session  *session.Manager
	Cache    *query.Cache
	Reads    *readstate.Tracker
	Chat     *Chat
	Notifier query.Notifier

	local  *localstore.Store
	logger *slog.Logger
}

func New(opts Options) (*App, error) {
	cfg := opts.Config
	if cfg == nil {
		loaded, err := config.Load()
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	notifier := opts.Notifier
	if notifier == nil {
		notifier = query.NopNotifier{}
	}

	local, err := localstore.Open(cfg.StateFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}

	store := session.NewStore(local, logger)

	a := &App{
		Config:   cfg,
		Cache:    query.NewCache(cfg.CacheTTL),
		Notifier: notifier,
		local:    local,
		logger:   logger,
	}

	client, err := api.New(api.Options{
		BaseURL:       cfg.BaseURL,
		Timeout:       cfg.RequestTimeout,
		RateLimitRPM:  cfg.RateLimitRPM,
		MaxUploadSize: cfg.MaxUploadSize,
		IDCardMaxDim:  cfg.IDCardMaxDim,
		Credentials:   store,
		Logger:        logger,
		OnUnauthorized: func() {
			a.handleUnauthorized(opts.OnLoginRedirect)
		},
	})
	if err != nil {
		_ = local.Close()
		return nil, fmt.Errorf("failed to initialize API client: %w", err)
	}

	a.Client = client
	a.Session = session.NewManager(client, store, logger)

	reads, err := readstate.NewTracker(local, client.Announcements, func() bool {
		_, ok := a.Session.User()
		return ok
	}, logger)
	if err != nil {
		_ = local.Close()
		return nil, fmt.Errorf("failed to load read state: %w", err)
	}

	a.Reads = reads
	a.Chat = newChat(a)

	return a, nil
}

// handleUnauthorized runs after the gateway purged the stored credentials on
// a 401: drop the in-memory user and hand control to the login entry point.
func (a *App) handleUnauthorized(redirect func()) {
	a.Session.Expire()
	a.Cache.Invalidate("")
	a.logger.Info("session expired, redirecting to login")
	if redirect != nil {
		redirect()
	}
}

func (a *App) Close() error {
	a.Reads.Wait()
	return a.local.Close()
}
