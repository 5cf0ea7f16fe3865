package main

import (
	"fmt"
	"io"
	"os"

	"sheetmapper/pkg/config"
	"sheetmapper/pkg/export"
	"sheetmapper/pkg/sheets"

	"github.com/spf13/cobra"
)

// sheetFlag is repeatable and lands on the config.KeySheets viper key.
const sheetFlag = "sheet"

func newFetchCmd(c *cli) *cobra.Command {
	fetchCmd := &cobra.Command{
		Use:   "fetch [documentID]",
		Short: "Fetch sheets and print them as records",
		Example: `  # Every sheet of the document, as JSON
  sheetmapper fetch 1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms

  # Two sheets, the second with its header on row 2, into a workbook
  sheetmapper fetch $SPREADSHEET_ID --sheet Summary --sheet "Raw Data:2" --format xlsx --output out.xlsx`,
		Args: cobra.MaximumNArgs(1),
		RunE: c.runFetch,
	}

	fetchCmd.Flags().StringArrayP(sheetFlag, "s", nil, `Sheet to read, as "Name" or "Name:<headerRowIndex>" (repeatable)`)
	_ = c.v.BindPFlag(config.KeySheets, fetchCmd.Flags().Lookup(sheetFlag))
	fetchCmd.Flags().StringP("format", "f", "json", "Output format: json, csv or xlsx")
	fetchCmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
	fetchCmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
	fetchCmd.Flags().Bool("progress", false, "Show a progress bar on stderr while writing xlsx")
	return fetchCmd
}

func (c *cli) runFetch(cmd *cobra.Command, args []string) error {
	formatFlag, _ := cmd.Flags().GetString("format")
	format, err := export.ParseFormat(formatFlag)
	if err != nil {
		return err
	}
	outputPath, _ := cmd.Flags().GetString("output")
	if format == export.FormatXLSX && outputPath == "" {
		return fmt.Errorf("xlsx output needs --output")
	}

	cfg, documentID, err := c.loadConfig(args)
	if err != nil {
		return err
	}
	client, err := c.newClient(cfg)
	if err != nil {
		return err
	}

	options := cfg.SheetOptions()
	if len(options) == 0 {
		log.Infof("Reading every sheet of %s", documentID)
	} else {
		log.Infof("Reading %d sheets of %s", len(options), documentID)
	}

	mapped, err := sheets.MapSheetsToRecords(cmd.Context(), client, documentID, options)
	if err != nil {
		return err
	}
	for _, sheet := range mapped {
		log.Debugf("Sheet %s: %d records", sheet.ID, len(sheet.Data))
	}

	pretty, _ := cmd.Flags().GetBool("pretty")
	opts := export.Options{Format: format, Pretty: pretty}
	if showProgress, _ := cmd.Flags().GetBool("progress"); showProgress {
		opts.Progress = os.Stderr
	}

	var w io.Writer = cmd.OutOrStdout()
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := export.Write(w, mapped, opts); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if outputPath != "" {
		log.Infof("Records written to %s", outputPath)
	}
	return nil
}
