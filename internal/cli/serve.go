package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/msomdec/board/internal/handler"
)

// Write endpoints allow a burst of 20 per client, refilling at one per second.
const (
	writeRate  = 1
	writeBurst = 20
)

func serveCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Graceful shutdown on SIGINT/SIGTERM.
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, err := openApp(ctx, g.cfg)
			if err != nil {
				return err
			}
			defer a.Close()
			slog.Info("database migrations applied")

			mux := http.NewServeMux()
			handler.RegisterRoutes(mux, handler.Services{
				Questions: a.questions,
				Answers:   a.answers,
				Users:     a.users,
			}, handler.NewTokenBucket(ctx, writeRate, writeBurst))

			srv := &http.Server{
				Addr:              ":" + g.cfg.Server.Port,
				Handler:           handler.Wrap(mux),
				ReadHeaderTimeout: 10 * time.Second,
				IdleTimeout:       120 * time.Second,
				MaxHeaderBytes:    1 << 20, // 1MB
			}

			errCh := make(chan error, 1)
			go func() {
				slog.Info("server starting", "addr", srv.Addr)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				if err != nil {
					slog.Error("server error", "error", err)
					return err
				}
			case <-ctx.Done():
			}
			slog.Info("shutting down server")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				slog.Error("server shutdown error", "error", err)
				return err
			}
			slog.Info("server stopped")
			return nil
		},
	}
}
