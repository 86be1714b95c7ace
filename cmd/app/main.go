// @title Trembolona Gym API
// @version 1.0
// @description Plans and the members enrolled in them.
// @BasePath /
package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"gymapi/cmd/fx/config_fx"
	"gymapi/cmd/fx/controllers_fx"
	"gymapi/cmd/fx/db_fx"
	"gymapi/cmd/fx/members_fx"
	"gymapi/cmd/fx/plans_fx"
	"gymapi/internal/config"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		plans_fx.Module,
		members_fx.Module,
		controllers_fx.Module,

		fx.WithLogger(func(log *logrus.Logger) fxevent.Logger {
			return &fxevent.ConsoleLogger{W: log.WriterLevel(logrus.DebugLevel)}
		}),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, log *logrus.Logger, engine *gin.Engine) {
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			listener, err := net.Listen("tcp", server.Addr)
			if err != nil {
				return err
			}
			go func() {
				log.WithField("addr", server.Addr).Info("Starting HTTP server")
				if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.WithError(err).Fatal("HTTP server stopped unexpectedly")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Stopping HTTP server")
			return server.Shutdown(ctx)
		},
	})
}
