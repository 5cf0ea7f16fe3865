package main

import (
	"context"
	"fmt"
	"os"

	"sheetmapper/pkg/config"
	"sheetmapper/pkg/sheets"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var log = logrus.New()

// cli holds the state shared by the subcommands of one root command.
type cli struct {
	v          *viper.Viper
	configFile string
}

func newRootCmd() *cobra.Command {
	c := &cli{v: config.NewViper()}

	rootCmd := &cobra.Command{
		Use:   "sheetmapper",
		Short: "Read Google Sheets as records keyed by their header row",
		Long: `sheetmapper reads the sheets of a Google Sheets document and turns every
row into a record whose fields are named by the sheet's header row.

Sheets are selected with --sheet "Name" or --sheet "Name:<headerRowIndex>".
Without --sheet, the sheets listed in the config file are read, and if there
are none every sheet of the document is read with its header on row 0.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logVerbosity, _ := cmd.Flags().GetString("verbosity")
			structured, _ := cmd.Flags().GetBool("structuredLogs")
			if err := configureLogger(log, logVerbosity, structured); err != nil {
				return err
			}

			if err := godotenv.Load(); err != nil {
				log.Debug("No .env file found")
			}
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&c.configFile, "config", "c", "", "TOML config file")
	flags.StringP("verbosity", "v", "info", "Log level (trace, debug, info, warn, error)")
	flags.Bool("structuredLogs", false, "Log as JSON")

	flags.String(config.KeyAPIKey, "", "Google API key")
	_ = c.v.BindPFlag(config.KeyAPIKey, flags.Lookup(config.KeyAPIKey))
	flags.String(config.KeyCredentialsFile, "", "Service account JSON key file")
	_ = c.v.BindPFlag(config.KeyCredentialsFile, flags.Lookup(config.KeyCredentialsFile))
	flags.String(config.KeyEndpoint, "", "Sheets API base URL")
	_ = c.v.BindPFlag(config.KeyEndpoint, flags.Lookup(config.KeyEndpoint))
	flags.String(config.KeyProxy, "", "HTTP proxy URL")
	_ = c.v.BindPFlag(config.KeyProxy, flags.Lookup(config.KeyProxy))
	flags.Bool(config.KeyUnThrottle, false, "Disable client-side rate limiting")
	_ = c.v.BindPFlag(config.KeyUnThrottle, flags.Lookup(config.KeyUnThrottle))
	flags.Float64(config.KeyRequestsPerSecond, 0, "Client-side request rate limit")
	_ = c.v.BindPFlag(config.KeyRequestsPerSecond, flags.Lookup(config.KeyRequestsPerSecond))
	flags.Int(config.KeyTimeoutSeconds, 0, "Request timeout in seconds")
	_ = c.v.BindPFlag(config.KeyTimeoutSeconds, flags.Lookup(config.KeyTimeoutSeconds))

	rootCmd.AddCommand(newFetchCmd(c), newTitlesCmd(c))
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// configureLogger sets the level and format of logger from the command line.
func configureLogger(logger *logrus.Logger, verbosity string, structured bool) error {
	logLevel, err := logrus.ParseLevel(verbosity)
	if err != nil {
		return fmt.Errorf("invalid log level: %s", verbosity)
	}
	logger.SetLevel(logLevel)
	if structured {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return nil
}

// loadConfig reads the config file and applies flag and environment
// overrides. documentID comes from args when given.
func (c *cli) loadConfig(args []string) (*config.Config, string, error) {
	cfg, err := config.NewDatastore(c.configFile)
	if err != nil {
		return nil, "", err
	}
	cfg.ApplyOverrides(c.v)

	documentID := cfg.Store.DocumentID
	if len(args) > 0 {
		documentID = args[0]
	}
	if documentID == "" {
		return nil, "", fmt.Errorf("no document ID: pass it as an argument, set SPREADSHEET_ID or DocumentID in the config file")
	}
	return cfg, documentID, nil
}

func (c *cli) newClient(cfg *config.Config) (*sheets.SheetClient, error) {
	return sheets.NewSheetClient(context.Background(), cfg.ClientConfig(), log)
}
