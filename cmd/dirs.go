package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newProjectDirsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "project-dirs",
		Short: "Print the resolved config, data and state paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			contents, err := json.MarshalIndent(cfg.Project, "", "  ")
			if err != nil {
				return fmt.Errorf("encode project dirs: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(contents))
			return nil
		},
	}
}
