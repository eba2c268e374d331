package main

import (
	"context"
	"encoding/json"
	"fmt"

	bearpage "bearpage/bearpage-lib"
	"github.com/spf13/cobra"
)

var speciesCmd = &cobra.Command{
	Use:   "species [page]",
	Short: "Print the species list as JSON",
	Long:  `Loads species for the given page (default from config) and prints them as JSON. Without --live the static fallback list is printed when loading fails.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSpecies,
}

func init() {
	speciesCmd.Flags().Bool("live", false, "fail instead of printing the fallback list")
	rootCmd.AddCommand(speciesCmd)
}

func runSpecies(cmd *cobra.Command, args []string) error {
	client, err := buildClient()
	if err != nil {
		return err
	}

	var pageID string
	if len(args) == 1 {
		pageID = args[0]
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	live, _ := cmd.Flags().GetBool("live")

	var list []bearpage.Species
	if live {
		list, err = client.LoadSpeciesLive(ctx, pageID)
		if err != nil {
			return fmt.Errorf("loading species: %w", err)
		}
	} else {
		list = client.LoadSpecies(ctx, pageID)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(list)
}
