package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sheetmapper/pkg/api"
	"sheetmapper/pkg/config"
	"sheetmapper/pkg/sheets"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var (
	configFile     string
	verbosity      string
	structuredLogs bool
	v              = config.NewViper()
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sheetmapper-server",
		Short: "Serve Google Sheets as JSON records over HTTP",
		Long: `Serves the sheets of a Google Sheets document as records keyed by the
header row of each sheet.

Routes:
  GET /spreadsheets/{documentID}?sheet=Name&sheet=Other:2
  GET /spreadsheets/{documentID}/titles`,
		Args: cobra.NoArgs,
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&configFile, "config", "c", "sheetmapper.toml", "TOML config file, created with defaults if missing")
	rootCmd.Flags().StringVarP(&verbosity, "verbosity", "v", "info", "Log level (trace, debug, info, warn, error)")
	rootCmd.Flags().BoolVar(&structuredLogs, "structuredLogs", false, "Log as JSON")
	rootCmd.Flags().StringP(config.KeyListenAddress, "l", "", "Address to listen on")
	_ = v.BindPFlag(config.KeyListenAddress, rootCmd.Flags().Lookup(config.KeyListenAddress))
	rootCmd.Flags().String(config.KeyAPIKey, "", "Google API key")
	_ = v.BindPFlag(config.KeyAPIKey, rootCmd.Flags().Lookup(config.KeyAPIKey))
	rootCmd.Flags().String(config.KeyCredentialsFile, "", "Service account JSON key file")
	_ = v.BindPFlag(config.KeyCredentialsFile, rootCmd.Flags().Lookup(config.KeyCredentialsFile))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if err := configureLogger(log.StandardLogger(), verbosity, structuredLogs); err != nil {
		return err
	}

	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found")
	}

	cfg, err := config.NewDatastore(configFile)
	if err != nil {
		return err
	}
	cfg.ApplyOverrides(v)

	client, err := sheets.NewSheetClient(context.Background(), cfg.ClientConfig(), log.StandardLogger())
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              cfg.Store.ListenAddress,
		Handler:           api.GetRouter(client),
		ReadHeaderTimeout: 2 * time.Second,
	}
	go startServer(server)

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)
	<-signalChan
	log.Info("Signalled, shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(ctx)
}

// configureLogger sets the level and format of logger. The text format
// carries a leading timestamp in ISO8601 format.
func configureLogger(logger *log.Logger, level string, structured bool) error {
	logLevel, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level: %s", level)
	}
	logger.SetLevel(logLevel)
	if structured {
		logger.SetFormatter(&log.JSONFormatter{})
	} else {
		logger.SetFormatter(&log.TextFormatter{
			FullTimestamp: true,
		})
	}
	return nil
}

func startServer(server *http.Server) {
	log.Infof("listening for HTTP on: %s", server.Addr)
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatal("ListenAndServeError: ", err)
	}
}
