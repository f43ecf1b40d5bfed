package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/bingwall-go/bingwall/internal/wallpaper"
	"github.com/spf13/cobra"
)

// ErrNoCurrentImage is returned by "show current" before any image has been
// selected.
var ErrNoCurrentImage = errors.New("no current image set")

func newShowCmd() *cobra.Command {
	var update bool

	cmd := &cobra.Command{
		Use:       "show [current|random|latest]",
		Short:     "Print the path of a tracked image",
		ValidArgs: []string{"current", "random", "latest"},
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		Long: `Prints the absolute path of one tracked image without touching the
network. "current" (the default) prints the image recorded as current,
"latest" the most recent one by start date, and "random" a fresh weighted
pick. With --update the random pick is persisted as the new current image.`,
		Example: `  # Where is the current wallpaper?
  bingwall show

  # Point at the newest image
  bingwall show latest

  # Rotate and persist
  bingwall show random --update`,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := "current"
			if len(args) == 1 {
				kind = args[0]
			}
			if update && kind != "random" {
				return fmt.Errorf("--update only applies to \"show random\"")
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			state, err := wallpaper.LoadState(cfg.Project.StateFilePath)
			if err != nil {
				return err
			}

			var name string
			switch kind {
			case "current":
				if name = state.Current(); name == "" {
					return ErrNoCurrentImage
				}
			case "random":
				name, err = wallpaper.Pick(&state.ImageData, cfg, state.Current())
				if err != nil {
					return err
				}
				if update {
					state.SetCurrent(name)
					if err := state.Save(cfg.Project.StateFilePath); err != nil {
						return err
					}
				}
			case "latest":
				img, ok := state.ImageData.Latest()
				if !ok {
					return wallpaper.ErrNoImages
				}
				name = img.FileName(cfg)
			}

			fmt.Fprintln(cmd.OutOrStdout(), filepath.Join(cfg.Project.DataDir, name))
			return nil
		},
	}

	cmd.Flags().BoolVar(&update, "update", false, "Persist a random pick as the current image")

	return cmd
}
