package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTitlesCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "titles [documentID]",
		Short: "List the sheet titles of a document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, documentID, err := c.loadConfig(args)
			if err != nil {
				return err
			}
			client, err := c.newClient(cfg)
			if err != nil {
				return err
			}

			titles, err := client.FetchSheetTitles(cmd.Context(), documentID)
			if err != nil {
				return err
			}
			for _, title := range titles {
				fmt.Fprintln(cmd.OutOrStdout(), title)
			}
			return nil
		},
	}
}
