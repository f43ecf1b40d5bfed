package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/bingwall-go/bingwall/internal/archive"
	"github.com/bingwall-go/bingwall/internal/wallpaper"
	"github.com/spf13/cobra"
)

func newStateCmd() *cobra.Command {
	var (
		showURL bool
		raw     bool
		frozen  bool
	)

	cmd := &cobra.Command{
		Use:   "state",
		Short: "Inspect the remote or local image state",
		Long: `Fetches the archive metadata endpoint and pretty-prints the decoded
catalog. With --raw the response is printed without imposing the catalog
schema, with --url only the endpoint URL is printed, and with --frozen the
local state file is printed instead of anything remote.`,
		Example: `  # What does the archive offer right now?
  bingwall state

  # What exactly is on the wire?
  bingwall state --raw

  # What do we have locally?
  bingwall state --frozen`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if frozen {
				state, err := wallpaper.LoadState(cfg.Project.StateFilePath)
				if err != nil {
					return err
				}
				contents, err := json.MarshalIndent(state, "", "  ")
				if err != nil {
					return fmt.Errorf("encode state: %w", err)
				}
				fmt.Fprintln(out, string(contents))
				return nil
			}

			url := cfg.MetadataURL()
			if showURL {
				fmt.Fprintln(out, url)
				return nil
			}

			client := archive.NewClient()
			var value any
			if raw {
				value, err = client.FetchRaw(cmd.Context(), url)
			} else {
				value, err = client.FetchCatalog(cmd.Context(), url)
			}
			if err != nil {
				return err
			}

			contents, err := json.MarshalIndent(value, "", "  ")
			if err != nil {
				return fmt.Errorf("encode metadata: %w", err)
			}
			fmt.Fprintln(out, string(contents))
			return nil
		},
	}

	cmd.Flags().BoolVar(&showURL, "url", false, "Print the metadata URL instead of fetching it")
	cmd.Flags().BoolVar(&raw, "raw", false, "Print the raw response without the catalog schema")
	cmd.Flags().BoolVar(&frozen, "frozen", false, "Print the local state file instead")

	return cmd
}
