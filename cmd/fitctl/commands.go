package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/2beens/fitgenius/internal/auth"
	"github.com/2beens/fitgenius/internal/docstore"
	"github.com/2beens/fitgenius/internal/modules"
	"github.com/2beens/fitgenius/internal/plans"
	"github.com/2beens/fitgenius/internal/telemetry/metrics"
	"github.com/2beens/fitgenius/internal/users"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var errUnknownFormat = errors.New("unknown export format")

var (
	pruneOlderThan time.Duration
	pruneDryRun    bool

	exportUser   string
	exportWeekID string
	exportFormat string
	exportOut    string
)

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove week plans older than --older-than",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		olderThan := pruneOlderThan
		if olderThan == 0 {
			olderThan = cfg.PruneWeeksOlderThan
		}
		before := time.Now().Add(-olderThan)

		if pruneDryRun {
			fmt.Fprintf(cmd.OutOrStdout(), "would remove week plans before %s\n", plans.WeekID(before, time.UTC))
			return nil
		}

		pool, err := openDB(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer pool.Close()

		store := docstore.NewPsqlStore(pool)
		plansService := newPlansService(store, users.NewService(users.NewAccountRepo(pool), store))
		deleted, err := plansService.PruneWeeks(cmd.Context(), before)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "removed %d week plans\n", deleted)
		return nil
	},
}

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Manage login sessions",
}

var sessionsCleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Drop expired login sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		rdb := openRedis(cfg)
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Errorf("close redis: %s", err)
			}
		}()

		removed, err := auth.NewAuthService(cfg.SessionTTL, rdb).ScanAndClean(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "removed %d sessions\n", removed)
		return nil
	},
}

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Week plan tools",
}

var weekExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a stored week plan as ics or xlsx",
	RunE: func(cmd *cobra.Command, args []string) error {
		if exportUser == "" {
			return errors.New("--user is required")
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		pool, err := openDB(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer pool.Close()

		store := docstore.NewPsqlStore(pool)
		plansService := newPlansService(store, users.NewService(users.NewAccountRepo(pool), store))

		out := cmd.OutOrStdout()
		if exportOut != "" {
			f, err := os.Create(exportOut)
			if err != nil {
				return err
			}
			defer func() {
				if err := f.Close(); err != nil {
					log.Errorf("close %s: %s", exportOut, err)
				}
			}()
			out = f
		}

		return exportWeek(cmd.Context(), plansService, exportUser, exportWeekID, exportFormat, time.Now(), out)
	},
}

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "Account statistics",
}

var accountsCountCmd = &cobra.Command{
	Use:   "count",
	Short: "Print the number of registered accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		pool, err := openDB(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer pool.Close()

		count, err := users.NewAccountRepo(pool).Count(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), count)
		return nil
	},
}

func init() {
	pruneCmd.Flags().DurationVar(&pruneOlderThan, "older-than", 0, "age of week plans to remove (config value when 0)")
	pruneCmd.Flags().BoolVar(&pruneDryRun, "dry-run", false, "only print the cutoff")

	sessionsCmd.AddCommand(sessionsCleanCmd)

	weekExportCmd.Flags().StringVar(&exportUser, "user", "", "user id")
	weekExportCmd.Flags().StringVar(&exportWeekID, "week", "", "week id, e.g. week-2025-05-12 (current week when empty)")
	weekExportCmd.Flags().StringVar(&exportFormat, "format", "ics", "ics | xlsx")
	weekExportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (stdout when empty)")
	weekCmd.AddCommand(weekExportCmd)

	accountsCmd.AddCommand(accountsCountCmd)
}

func newPlansService(store docstore.Store, locations *users.Service) *plans.Service {
	return plans.NewService(plans.NewServiceParams{
		Store:          store,
		Modules:        modules.NewService(store),
		Locations:      locations,
		MetricsManager: metrics.NewManager("fitctl", "main", prometheus.NewRegistry()),
	})
}

type weekSource interface {
	GetWeek(ctx context.Context, uid string) (*plans.Week, error)
	GetWeekByID(ctx context.Context, uid, weekID string) (*plans.Week, error)
}

func exportWeek(
	ctx context.Context,
	weeks weekSource,
	uid, weekID, format string,
	now time.Time,
	out io.Writer,
) error {
	var (
		week *plans.Week
		err  error
	)
	if weekID == "" {
		week, err = weeks.GetWeek(ctx, uid)
	} else {
		week, err = weeks.GetWeekByID(ctx, uid, weekID)
	}
	if err != nil {
		return fmt.Errorf("get week: %w", err)
	}

	var data []byte
	switch format {
	case "ics":
		data = plans.ICS(*week, now)
	case "xlsx":
		if data, err = plans.XLSX(*week); err != nil {
			return fmt.Errorf("xlsx: %w", err)
		}
	default:
		return fmt.Errorf("%w: %s", errUnknownFormat, format)
	}

	_, err = out.Write(data)
	return err
}
