// Package main runs the athletehub MCP server over stdio (for local agent use).
// The same MCP server is also mounted on the main backend at /mcp over HTTP.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"github.com/shreyajaiswal17/athletehub/internal/athletes"
	"github.com/shreyajaiswal17/athletehub/internal/config"
	"github.com/shreyajaiswal17/athletehub/internal/dashboard"
	"github.com/shreyajaiswal17/athletehub/internal/db"
	"github.com/shreyajaiswal17/athletehub/internal/injuries"
	athletesmcp "github.com/shreyajaiswal17/athletehub/internal/mcp"
	"github.com/shreyajaiswal17/athletehub/internal/performance"
	"github.com/shreyajaiswal17/athletehub/internal/telemetry/metrics"
	"github.com/shreyajaiswal17/athletehub/internal/workload"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development | ddev | dockerdev]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	// stdout belongs to the MCP transport
	log.SetOutput(os.Stderr)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}
	secrets, err := config.LoadSecrets()
	if err != nil {
		log.Fatalf("load secrets: %s", err)
	}

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		DBPassword:     secrets.PostgresPassword,
		TracingEnabled: false,
	})
	if err != nil {
		log.Fatalf("db pool: %s", err)
	}
	defer dbPool.Close()

	// nothing scrapes these over stdio, the dashboard service needs a manager all the same
	metricsManager := metrics.NewManager("mcp", "stdio", prometheus.NewRegistry())
	athletesRepo := athletes.NewRepo(dbPool, workload.CanonicalSport)
	recordsRepo := performance.NewRepo(dbPool)
	dashboardService := dashboard.NewService(
		athletesRepo,
		recordsRepo,
		injuries.NewRepo(dbPool),
		dashboard.NewCache(cfg.MetricsCacheSizeMB, cfg.MetricsCacheTTL, metricsManager),
		metricsManager,
	)

	server := athletesmcp.NewServer(athletesmcp.NewContextService(
		athletesmcp.NewPoolSchemaRepo(dbPool),
		athletesRepo,
		recordsRepo,
		dashboardService,
	))

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Errorf("mcp server: %s", err)
	}
}
