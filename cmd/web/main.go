package main

import (
	"fmt"
	"net"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/alertiq/sales-atlas/pkg/server"
	"github.com/alertiq/sales-atlas/pkg/services/config"
	"github.com/alertiq/sales-atlas/pkg/services/report"
	"github.com/alertiq/sales-atlas/pkg/store/sqlite"
	"github.com/alertiq/sales-atlas/pkg/store/sqlite/orders"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Sales Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "config.yaml",
		"Path to the configuration file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	analytics, err := cfg.Analytics.AnalyticsConfig()
	if err != nil {
		return err
	}

	db, err := sqlite.NewDB(sqlite.Settings{DbPath: cfg.Store.DbPath})
	if err != nil {
		return fmt.Errorf("failed to open order cache: %w", err)
	}

	orderStore, err := orders.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create order store: %w", err)
	}

	reportService := report.NewService(orderStore, analytics)

	logger.Info().Msgf("Configuration found at `%s` successfully loaded.", cfgPath)

	addr := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
	api := server.NewWebAPI(logger, server.Config{
		Addr: addr,
		Dependencies: server.Dependencies{
			Reports: reportService,
		},
	})

	return api.Start()
}
