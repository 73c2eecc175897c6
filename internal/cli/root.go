// Package cli implements the board command line: the HTTP server plus
// maintenance commands that run against the configured database.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/msomdec/board/internal/config"
	"github.com/msomdec/board/internal/domain"
	"github.com/msomdec/board/internal/logger"
	"github.com/msomdec/board/internal/repository/gormstore"
	"github.com/msomdec/board/internal/repository/sqlite"
	"github.com/msomdec/board/internal/service"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// globals holds settings shared by every subcommand.
type globals struct {
	cfg    *config.Config
	driver string
	dsn    string
}

func newRootCmd() *cobra.Command {
	g := &globals{}

	cmd := &cobra.Command{
		Use:          "board",
		Short:        "board: a question and answer forum",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if g.driver != "" {
				cfg.Database.Driver = g.driver
			}
			if g.dsn != "" {
				cfg.Database.DSN = g.dsn
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			logger.Setup(cfg.Log)
			g.cfg = cfg
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&g.driver, "driver", "", "database driver: sqlite, gorm-sqlite or gorm-postgres (overrides BOARD_DATABASE_DRIVER)")
	cmd.PersistentFlags().StringVar(&g.dsn, "dsn", "", "database path or DSN (overrides BOARD_DATABASE_DSN)")

	cmd.AddCommand(
		serveCmd(g),
		seedCmd(g),
		userCmd(g),
		questionCmd(g),
	)
	return cmd
}

// app is an open, migrated database with the services built on it.
type app struct {
	db        domain.Database
	questions *service.QuestionService
	answers   *service.AnswerService
	users     *service.UserService
}

func (a *app) Close() {
	if err := a.db.Close(); err != nil {
		slog.Error("close database", "error", err)
	}
}

func openApp(ctx context.Context, cfg *config.Config) (*app, error) {
	db, err := openDatabase(cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	slog.Debug("database ready", "driver", cfg.Database.Driver)

	return &app{
		db:        db,
		questions: service.NewQuestionService(db.Questions(), nil),
		answers:   service.NewAnswerService(db.Answers(), db.Questions(), nil),
		users:     service.NewUserService(db.Users(), cfg.Security.BcryptCost, nil),
	}, nil
}

func openDatabase(settings config.DatabaseSettings) (domain.Database, error) {
	switch settings.Driver {
	case config.DriverSQLite:
		db, err := sqlite.New(settings.DSN)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		return db, nil
	case config.DriverGormSQLite, config.DriverGormPostgres:
		return gormstore.NewDBConnection(settings)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", settings.Driver)
	}
}
