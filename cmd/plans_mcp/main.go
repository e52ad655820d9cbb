// Package main runs the week plan MCP server over stdio for a single user.
// The backend mounts the same tools at /mcp over HTTP for logged in users.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/2beens/fitgenius/internal/config"
	"github.com/2beens/fitgenius/internal/db"
	"github.com/2beens/fitgenius/internal/docstore"
	plansmcp "github.com/2beens/fitgenius/internal/mcp"
	"github.com/2beens/fitgenius/internal/modules"
	"github.com/2beens/fitgenius/internal/plans"
	"github.com/2beens/fitgenius/internal/telemetry/metrics"
	"github.com/2beens/fitgenius/internal/users"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	uid := flag.String("user", "", "id of the user whose plans are exposed")
	flag.Parse()

	if *uid == "" {
		log.Fatal("user id not set, use -user")
	}

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBPassword:     os.Getenv("FITGENIUS_POSTGRES_PASS"),
		TracingEnabled: false,
	})
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer dbPool.Close()

	store := docstore.NewPsqlStore(dbPool)
	modulesService := modules.NewService(store)
	plansService := plans.NewService(plans.NewServiceParams{
		Store:          store,
		Modules:        modulesService,
		Locations:      users.NewService(users.NewAccountRepo(dbPool), store),
		MetricsManager: metrics.NewManager("plans_mcp", "main", prometheus.NewRegistry()),
	})

	server := plansmcp.NewServer(plansmcp.NewPlanContextService(plansService, modulesService), *uid)
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}
