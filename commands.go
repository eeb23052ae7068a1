package main

import (
	"fmt"

	api "notekeeper-backend/cmd/api"
	authdomain "notekeeper-backend/internal/auth/domain"
	"notekeeper-backend/internal/auth/password"
	authRepo "notekeeper-backend/internal/auth/repository"
	authUsecase "notekeeper-backend/internal/auth/usecase"
	notedomain "notekeeper-backend/internal/note/domain"
	noteRepo "notekeeper-backend/internal/note/repository"
	noteUsecase "notekeeper-backend/internal/note/usecase"
	"notekeeper-backend/pkg/config"
	"notekeeper-backend/pkg/database"
	"notekeeper-backend/pkg/logutil"
	"notekeeper-backend/pkg/revocation"
	"notekeeper-backend/pkg/token"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
	"gorm.io/gorm"
)

// models lists every table the service owns.
var models = []interface{}{
	&authdomain.User{},
	&notedomain.Note{},
	&revocation.RevokedToken{},
}

func configFlag(dest *string) cli.Flag {
	return &cli.StringFlag{
		Name:        "config",
		Aliases:     []string{"c"},
		Usage:       "Optional YAML config file; environment variables take precedence",
		EnvVars:     []string{"CONFIG_FILE"},
		Destination: dest,
	}
}

func serveCmd() *cli.Command {
	var configPath string
	var addr string
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP API",
		Flags: []cli.Flag{
			configFlag(&configPath),
			&cli.StringFlag{
				Name:        "addr",
				Usage:       "Address to bind, defaults to :$PORT",
				Destination: &addr,
			},
		},
		Action: func(appCtx *cli.Context) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			if addr == "" {
				addr = ":" + cfg.Port
			}

			log := logutil.New(cfg.LogLevel, cfg.LogFormat)
			ctx := logutil.WithLogger(appCtx.Context, log)

			db, err := openDatabase(cfg, log)
			if err != nil {
				return err
			}
			defer database.Close(db)

			store, closeStore, err := newRevocationStore(cfg, db, log)
			if err != nil {
				return err
			}
			defer closeStore()

			issuer := token.NewIssuer(cfg.JWTSecret, cfg.JWTExpiry)
			hasher := password.NewBcryptHasher(cfg.BcryptCost, 0)

			authUc := authUsecase.NewAuthUsecase(authRepo.NewUserRepository(db), hasher, issuer, store)
			noteUc := noteUsecase.NewNoteUsecase(noteRepo.NewGormNoteRepository(db))

			if store, ok := store.(*revocation.DBStore); ok {
				sweeper := revocation.NewSweeper(store, cfg.RevocationSweepInterval, log)
				sweeper.Start(ctx)
				defer sweeper.Stop()
			}

			log.Info().
				Str("addr", addr).
				Str("db_driver", cfg.DBDriver).
				Str("revocation_store", cfg.RevocationStore).
				Str("rate_limit_scope", cfg.RateLimitScope).
				Msg("Server starting")
			return api.NewHandler(authUc, noteUc, cfg, log).Start(ctx, addr)
		},
	}
}

func migrateCmd() *cli.Command {
	var configPath string
	return &cli.Command{
		Name:  "migrate",
		Usage: "Create or update the database tables and exit",
		Flags: []cli.Flag{
			configFlag(&configPath),
		},
		Action: func(appCtx *cli.Context) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			log := logutil.New(cfg.LogLevel, cfg.LogFormat)

			db, err := openDatabase(cfg, log)
			if err != nil {
				return err
			}
			defer database.Close(db)

			log.Info().Int("tables", len(models)).Msg("Migration completed")
			return nil
		},
	}
}

func openDatabase(cfg *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	db, err := database.NewConnection(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.Migrate(db, models...); err != nil {
		_ = database.Close(db)
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return db, nil
}

func newRevocationStore(cfg *config.Config, db *gorm.DB, log zerolog.Logger) (revocation.Store, func(), error) {
	switch cfg.RevocationStore {
	case config.RevocationDatabase:
		return revocation.NewDBStore(db), func() {}, nil
	default:
		mem, err := revocation.NewMemoryStore(cfg.JWTExpiry)
		if err != nil {
			return nil, nil, err
		}
		return mem, func() {
			if err := mem.Close(); err != nil {
				log.Warn().Err(err).Msg("closing revocation cache")
			}
		}, nil
	}
}
