// Command fitctl runs one-off maintenance tasks against the fitgenius stores.
package main

import (
	"context"
	"fmt"
	"net"
	"os"

	"github.com/2beens/fitgenius/internal/config"
	"github.com/2beens/fitgenius/internal/db"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	envFlag     string
	configFlag  string
	verboseFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "fitctl",
	Short: "Maintenance tool for the fitgenius backend",
	Long: `fitctl runs maintenance tasks against the fitgenius postgres and redis.

Available commands:
  prune    - Remove old week plans
  sessions - Inspect and clean login sessions
  week     - Export a user's week plan
  accounts - Account statistics`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verboseFlag {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFlag, "env", "development", "environment [prod | production | dev | development]")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "./config.toml", "path for the TOML config file")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(pruneCmd, sessionsCmd, weekCmd, accountsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(envFlag, configFlag)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func openDB(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	pool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBPassword: os.Getenv("FITGENIUS_POSTGRES_PASS"),
		MaxConns:   2,
	})
	if err != nil {
		return nil, fmt.Errorf("db pool: %w", err)
	}
	return pool, nil
}

func openRedis(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: os.Getenv("FITGENIUS_REDIS_PASS"),
	})
}
