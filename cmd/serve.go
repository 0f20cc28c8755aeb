package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/desertthunder/watchlist/internal/auth"
	"github.com/desertthunder/watchlist/internal/server"
	"github.com/desertthunder/watchlist/internal/web"
	"github.com/urfave/cli/v3"
)

const insecureSecret = "dev"

// Serve starts the web application and blocks until SIGINT or SIGTERM.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	config, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.IsSet("host") {
		config.Server.Host = cmd.String("host")
	}
	if cmd.IsSet("port") {
		config.Server.Port = int(cmd.Int("port"))
	}
	if err := config.Validate(); err != nil {
		return err
	}
	if config.Server.SecretKey == insecureSecret {
		r.logger.Warn("server.secret_key is the development default; set WATCHLIST_SECRET_KEY before deploying")
	}

	db, err := r.openDatabase(config)
	if err != nil {
		return err
	}
	defer db.Close()

	app, err := web.NewApp(web.Options{
		Service:  r.newService(db),
		Sessions: auth.NewStore(config.Server.SecretKey, config.Auth.SessionName, config.Auth.MaxAge),
		Throttle: auth.NewThrottle(config.Auth.LoginRate, config.Auth.LoginBurst),
		Logger:   r.logger,
		Ping:     db.PingContext,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(config.Server.Address(), app.Handler(), server.Timeouts{
		Read:     config.Server.ReadTimeout.Duration,
		Write:    config.Server.WriteTimeout.Duration,
		Idle:     config.Server.IdleTimeout.Duration,
		Shutdown: config.Server.ShutdownTimeout.Duration,
	}, r.logger)
	return srv.Run(ctx)
}
