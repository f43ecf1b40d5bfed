package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"
)

func newResetCmd() *cobra.Command {
	var (
		all    bool
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:       "reset [images] [state]",
		Short:     "Remove downloaded images and/or the state file",
		ValidArgs: []string{"images", "state"},
		Args:      cobra.OnlyValidArgs,
		Long: `Removes the data directory ("images"), the state directory ("state"), or
both (--all). With --dry-run nothing is removed; the paths that would go
are printed instead.`,
		Example: `  # See what would be removed
  bingwall reset --all --dry-run

  # Start the catalog over but keep the image files
  bingwall reset state`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !all && len(args) == 0 {
				return fmt.Errorf("nothing to reset; pass --all, \"images\" or \"state\"")
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if all || slices.Contains(args, "images") {
				dir := cfg.Project.DataDir
				if dryRun {
					suffix := ""
					if entries, err := os.ReadDir(dir); err == nil {
						if len(entries) == 1 {
							suffix = " (1 image)"
						} else {
							suffix = fmt.Sprintf(" (%d images)", len(entries))
						}
					}
					fmt.Fprintf(out, "[DRY RUN]: Removing %q%s...\n", dir, suffix)
				} else if err := os.RemoveAll(dir); err != nil {
					return fmt.Errorf("remove data directory: %w", err)
				}
			}

			if all || slices.Contains(args, "state") {
				dir := filepath.Dir(cfg.Project.StateFilePath)
				if dryRun {
					fmt.Fprintf(out, "[DRY RUN]: Removing %q...\n", dir)
				} else if err := os.RemoveAll(dir); err != nil {
					return fmt.Errorf("remove state directory: %w", err)
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Remove images and state")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print what would be removed without removing it")

	return cmd
}
