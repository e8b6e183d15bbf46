package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"syscall"

	route "github.com/bassista/tourdesk/internal/api/route"
	appctx "github.com/bassista/tourdesk/internal/app"
	"github.com/bassista/tourdesk/internal/config"
	"github.com/bassista/tourdesk/internal/logger"
	"github.com/bassista/tourdesk/internal/remote"
	"github.com/gin-gonic/gin"

	"github.com/enrichman/httpgrace"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithComponent("main").Fatalf("configuration error: %v", err)
	}

	logLevel, err := logger.SetLevel(cfg.Misc.LogLevel)
	if err != nil {
		logger.WithComponent("main").Warnf("invalid log level '%s', using 'info': %v", cfg.Misc.LogLevel, err)
	}
	logger.SetFormat(cfg.Misc.LogFormat)
	logger.WithComponent("main").Debugf("log level set to: %s", logLevel.String())
	logger.WithComponent("main").Infof("App will run on port: %d", cfg.Server.Port)
	logger.WithComponent("main").Infof("Remote service: %s", cfg.Remote.BaseURL)

	rc, err := remote.New(remote.Config{BaseURL: cfg.Remote.BaseURL, Timeout: cfg.Remote.Timeout})
	if err != nil {
		logger.WithComponent("main").Fatalf("cannot init remote client: %v", err)
	}

	app, err := appctx.New(cfg, rc)
	if err != nil {
		logger.WithComponent("main").Fatalf("cannot init app: %v", err)
	}
	defer app.Shutdown()

	gin.SetMode(cfg.Misc.GinMode)
	gin.DefaultWriter = logger.Writer()
	gin.DefaultErrorWriter = logger.Writer()

	r := route.SetupRoutes(app)
	srv := createGraceHttpServer(app.BaseCtx, "main-server", app.Config.Server, r)

	if err := srv.ListenAndServe(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.WithComponent("main").Error(err)
	}
}

func createGraceHttpServer(ctx context.Context, name string, serverConfig config.ServerConfig, r *gin.Engine) *httpgrace.Server {
	slogLogger := slog.New(slog.NewTextHandler(logger.Writer(), nil))

	srv := httpgrace.NewServer(r,
		httpgrace.WithTimeout(serverConfig.ShutDownTimeout),
		httpgrace.WithSignals(syscall.SIGTERM, syscall.SIGINT),
		httpgrace.WithLogger(slogLogger),
		httpgrace.WithBeforeShutdown(func() {
			logger.WithComponent("http").Infof("Shutting down %s server....", name)
		}),
		httpgrace.WithServerOptions(
			httpgrace.WithReadTimeout(serverConfig.ReadTimeout),
			httpgrace.WithWriteTimeout(serverConfig.WriteTimeout),
			httpgrace.WithIdleTimeout(serverConfig.IdleTimeout),
			func(srv *http.Server) {
				srv.BaseContext = func(_ net.Listener) context.Context {
					return ctx
				}
			},
			func(srv *http.Server) {
				srv.ErrorLog = log.New(logger.Writer(), fmt.Sprintf("[%s] ", name), log.LstdFlags)
			},
		),
	)
	return srv
}
