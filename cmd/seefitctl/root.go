package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/2beens/seefit/internal/config"
	"github.com/2beens/seefit/internal/db"
	"github.com/2beens/seefit/internal/hiits"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type ctlStore interface {
	ListHiits(ctx context.Context) ([]hiits.Hiit, error)
	AddHiit(ctx context.Context, hiit hiits.Hiit) error
	FindHiit(ctx context.Context, id string) (hiits.Hiit, bool, error)
	ListHiitExercises(ctx context.Context, hiitID string) ([]hiits.Exercise, error)
	AddExercise(ctx context.Context, exercise hiits.Exercise) (hiits.Exercise, error)
}

var (
	envFlag     string
	configFlag  string
	dotEnvFlag  string
	timeoutFlag time.Duration

	// set up in PersistentPreRunE for the commands that talk to the db
	store  ctlStore
	dbPool *pgxpool.Pool

	// replaced in tests
	openStore = openDBStore
)

func openDBStore(ctx context.Context) (ctlStore, *pgxpool.Pool, error) {
	if err := godotenv.Load(dotEnvFlag); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warnf("load env file [%s]: %s", dotEnvFlag, err)
	}

	cfg, err := config.Load(envFlag, configFlag)
	if err != nil {
		return nil, nil, err
	}

	pool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: os.Getenv("SEEFIT_POSTGRES_PASS"),
	})
	if err != nil {
		return nil, nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("ping db: %w", err)
	}

	return hiits.NewRepo(pool), pool, nil
}

var rootCmd = &cobra.Command{
	Use:   "seefitctl",
	Short: "Admin tool for the SeeFit backend",
	Long: `seefitctl manages the SeeFit database: schema, default hiits and
quick looks at stored routines.

EXAMPLES:

  seefitctl migrate                 # create tables if missing
  seefitctl seed                    # insert the default hiits
  seefitctl hiits list              # list all hiits
  seefitctl hiits plan <hiit-id>    # show the countdown of a hiit
  seefitctl new-id                  # print a fresh hiit id`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Annotations["db"] != "true" {
			return nil
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), timeoutFlag)
		defer cancel()

		var err error
		store, dbPool, err = openStore(ctx)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if dbPool != nil {
			dbPool.Close()
			dbPool = nil
		}
		return nil
	},
}

// dbAnnotation marks commands that need the store.
var dbAnnotation = map[string]string{"db": "true"}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFlag, "env", "development", "environment [prod | production | dev | development]")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "./config.toml", "path for the TOML config file")
	rootCmd.PersistentFlags().StringVar(&dotEnvFlag, "dotenv", ".env", "optional .env file with secrets")
	rootCmd.PersistentFlags().DurationVar(&timeoutFlag, "timeout", 30*time.Second, "timeout for db operations")

	rootCmd.AddCommand(migrateCmd, seedCmd, hiitsCmd, newIDCmd)
}
