package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vodvud/shift-svg/logger"
	"github.com/vodvud/shift-svg/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve icons over HTTP",
	Long: `Serve icons over HTTP on http.host:http.port.

Routes:
  GET /?src=KEY        icon for KEY (render.default_key when empty)
  GET /icons/KEY.svg   same, key in the path
  GET /healthz         liveness`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newRenderer()
		if err != nil {
			return err
		}

		s := server.New(r, server.Config{DefaultKey: cfg.Render.DefaultKey})

		errc := make(chan error, 1)
		go func() {
			errc <- s.Listen(cfg.HTTP.Addr())
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case err := <-errc:
			return err
		case <-quit:
		}

		logger.Logger.Infow("Shutting down server")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.Shutdown(ctx)
	},
}
