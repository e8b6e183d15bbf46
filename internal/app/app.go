package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/bassista/tourdesk/internal/auth"
	"github.com/bassista/tourdesk/internal/config"
	"github.com/bassista/tourdesk/internal/dashboard"
	"github.com/bassista/tourdesk/internal/logger"
	"github.com/bassista/tourdesk/internal/session"
)

// Remote is everything the app calls on the tour-booking service.
// *remote.Client implements it.
type Remote interface {
	dashboard.Backend
	auth.OTPService
}

// App is the application container (immutable dependencies + lifecycle context).
// It is not a request context; handlers should still use gin's request context.
type App struct {
	Config    *config.Config
	Remote    Remote
	Session   *session.Session
	Dashboard *dashboard.Dashboard
	Auth      *auth.Flow

	BaseCtx    context.Context
	Cancel     context.CancelFunc
	closeStore func() error
}

// New opens the session store and builds the views. Views and the file-backed
// session store live until Shutdown.
func New(cfg *config.Config, rc Remote) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if rc == nil {
		return nil, errors.New("remote client is nil")
	}

	ctx, cancel := context.WithCancel(context.Background())

	store, closeStore, err := session.Open(ctx, cfg.Session)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("session store: %w", err)
	}
	sess := session.New(store)

	dash, err := dashboard.New(ctx, rc, cfg.Views)
	if err != nil {
		cancel()
		_ = closeStore()
		return nil, fmt.Errorf("dashboard: %w", err)
	}

	return &App{
		Config:     cfg,
		Remote:     rc,
		Session:    sess,
		Dashboard:  dash,
		Auth:       auth.NewFlow(rc, sess, dash),
		BaseCtx:    ctx,
		Cancel:     cancel,
		closeStore: closeStore,
	}, nil
}

// Shutdown cancels in-flight fetches and flushes the session store.
func (a *App) Shutdown() {
	if a == nil || a.Cancel == nil {
		return
	}
	a.Cancel()
	if a.Dashboard != nil {
		a.Dashboard.CloseAll()
	}
	if a.closeStore != nil {
		if err := a.closeStore(); err != nil {
			logger.WithComponent("app").Errorf("closing session store: %v", err)
		}
		a.closeStore = nil
	}
}
