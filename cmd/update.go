package cmd

import (
	"fmt"
	"log/slog"

	"github.com/bingwall-go/bingwall/internal/archive"
	"github.com/bingwall-go/bingwall/internal/wallpaper"
	"github.com/spf13/cobra"
)

func newUpdateCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Fetch the latest archive metadata and download new images",
		Long: `Fetches the current image-of-the-day catalog from the archive, merges it
into the local catalog, downloads any images not yet on disk, then picks a
new current image and saves the state.

Images the archive no longer offers stay tracked; update never prunes.`,
		Example: `  # Fetch today's catalog and rotate the current image
  bingwall update

  # Same, without the per-image tracking output
  bingwall update --quiet`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			if err := cfg.Project.EnsureDirs(); err != nil {
				return err
			}

			state, err := wallpaper.LoadState(cfg.Project.StateFilePath)
			if err != nil {
				return err
			}

			client := archive.NewClient()
			remote, err := client.FetchCatalog(cmd.Context(), cfg.MetadataURL())
			if err != nil {
				return err
			}
			slog.Debug("fetched archive catalog", "images", len(remote.Images))

			tracked, syncErr := wallpaper.Sync(cmd.Context(), &state.ImageData, remote, client, cfg)
			if !quiet {
				for _, title := range tracked {
					fmt.Fprintf(cmd.OutOrStdout(), "Tracking image %q...\n", title)
				}
			}
			if syncErr != nil {
				// The merged metadata is still worth keeping: the files that
				// failed will be retried by the next update.
				if saveErr := state.Save(cfg.Project.StateFilePath); saveErr != nil {
					return fmt.Errorf("%w (and saving state failed: %v)", syncErr, saveErr)
				}
				return syncErr
			}

			name, err := wallpaper.Pick(&state.ImageData, cfg, state.Current())
			if err != nil {
				return err
			}
			state.SetCurrent(name)

			return state.Save(cfg.Project.StateFilePath)
		},
	}

	cmd.Flags().BoolVar(&quiet, "quiet", false, "Suppress tracking output")

	return cmd
}
