package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/bingwall-go/bingwall/internal/config"
	"github.com/bingwall-go/bingwall/internal/wallpaper"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bingwall",
		Short: "Bing daily wallpaper fetcher and rotator",
		Long: `Bingwall tracks the Bing image-of-the-day archive, keeps the images on
disk and rotates a weighted-random pick of them as your current wallpaper.

Run with no subcommand to pick a new current image from the local catalog
and print its path. Run "bingwall update" to fetch the latest metadata and
images first.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			state, err := wallpaper.LoadState(cfg.Project.StateFilePath)
			if err != nil {
				return err
			}

			name, err := wallpaper.Pick(&state.ImageData, cfg, state.Current())
			if err != nil {
				return err
			}
			state.SetCurrent(name)

			if err := state.Save(cfg.Project.StateFilePath); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), filepath.Join(cfg.Project.DataDir, name))
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("config-path", "", "Path to config.json (defaults to the XDG config dir)")
	flags.String("data-dir", "", "Directory to store images in (defaults to the XDG data dir)")
	flags.String("state-file", "", "Path to the state file (defaults to the XDG state dir)")
	flags.Int("number", 0, "How many images to request from the archive")
	flags.Int("index", 0, "Archive offset; 0 is today's image")
	flags.String("market", "", "Market code, e.g. en-US")
	flags.String("size", "", "Image size token, e.g. UHD or 1920x1080")
	flags.String("ext", "", "Image extension token, e.g. jpg or webp")

	cmd.AddCommand(newUpdateCmd())
	cmd.AddCommand(newShowCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newStateCmd())
	cmd.AddCommand(newProjectDirsCmd())
	cmd.AddCommand(newResetCmd())

	return cmd
}

// loadConfig resolves the effective config for a command, letting flags the
// user actually set override the environment and config file.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()

	opts := config.Options{}
	opts.ConfigPath, _ = flags.GetString("config-path")
	opts.DataDir, _ = flags.GetString("data-dir")
	opts.StateFile, _ = flags.GetString("state-file")

	if flags.Changed("number") {
		v, _ := flags.GetInt("number")
		opts.Number = &v
	}
	if flags.Changed("index") {
		v, _ := flags.GetInt("index")
		opts.Index = &v
	}
	if flags.Changed("market") {
		v, _ := flags.GetString("market")
		opts.Market = &v
	}
	if flags.Changed("size") {
		v, _ := flags.GetString("size")
		opts.Size = &v
	}
	if flags.Changed("ext") {
		v, _ := flags.GetString("ext")
		opts.Ext = &v
	}

	return config.Load(opts)
}
