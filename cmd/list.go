package cmd

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/bingwall-go/bingwall/internal/config"
	"github.com/bingwall-go/bingwall/internal/timefmt"
	"github.com/bingwall-go/bingwall/internal/wallpaper"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var allParts = []string{"path", "full-path", "title", "url", "time", "current"}

func newListCmd() *cobra.Command {
	var (
		parts    []string
		all      bool
		dateFmt  string
		relative bool
		short    bool
		rawSpan  bool
		approx   bool
		nowFlag  string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tracked images",
		Long: `Lists the local image catalog sorted by start date. Each --part adds a
column; with no --part (or with --all) every column is printed. Times are
absolute by default; --relative, --short and --raw-span switch to elapsed
spans, and --approx truncates those to whole days.`,
		Example: `  # Title and path of every tracked image
  bingwall list --part title --part path

  # Everything, with approximate ages, as YAML
  bingwall list --relative --approx --output yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			state, err := wallpaper.LoadState(cfg.Project.StateFilePath)
			if err != nil {
				return err
			}
			if len(state.ImageData.Images) == 0 {
				return wallpaper.ErrNoImages
			}

			now := time.Now()
			if nowFlag != "" {
				now, err = time.Parse(time.RFC3339, nowFlag)
				if err != nil {
					return fmt.Errorf("parse --now: %w", err)
				}
			}

			order := parts
			if all || len(order) == 0 {
				order = allParts
			}
			for _, part := range order {
				if !validPart(part) {
					return fmt.Errorf("unknown part %q (valid: %s)", part, strings.Join(allParts, ", "))
				}
			}

			style, spans := timefmt.Long, relative || short || rawSpan
			if short {
				style = timefmt.Short
			}
			if rawSpan {
				style = timefmt.Raw
			}

			var rows []map[string]string
			for _, img := range state.ImageData.Sorted() {
				row := make(map[string]string, len(order))
				for _, part := range order {
					row[part] = renderPart(part, img, cfg, state, now, dateFmt, spans, style, approx)
				}
				rows = append(rows, row)
			}

			out := cmd.OutOrStdout()
			switch output {
			case "tsv":
				for _, row := range rows {
					cols := make([]string, len(order))
					for i, part := range order {
						cols[i] = row[part]
					}
					fmt.Fprintln(out, strings.Join(cols, "\t"))
				}
			case "json":
				contents, err := json.MarshalIndent(rows, "", "  ")
				if err != nil {
					return fmt.Errorf("encode listing: %w", err)
				}
				fmt.Fprintln(out, string(contents))
			case "yaml":
				contents, err := yaml.Marshal(rows)
				if err != nil {
					return fmt.Errorf("encode listing: %w", err)
				}
				fmt.Fprint(out, string(contents))
			default:
				return fmt.Errorf("unknown output format %q (valid: tsv, json, yaml)", output)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringArrayVar(&parts, "part", nil, "Column to print (repeatable): "+strings.Join(allParts, ", "))
	flags.BoolVar(&all, "all", false, "Print every column")
	flags.StringVar(&dateFmt, "date", "", "Go time layout for absolute times")
	flags.BoolVar(&relative, "relative", false, "Print times as elapsed spans")
	flags.BoolVar(&short, "short", false, "Abbreviated span units (implies --relative)")
	flags.BoolVar(&rawSpan, "raw-span", false, "ISO-8601 spans (implies --relative)")
	flags.BoolVar(&approx, "approx", false, "Truncate spans to whole days")
	flags.StringVar(&nowFlag, "now", "", "Reference instant for spans, RFC 3339 (for testing)")
	flags.StringVarP(&output, "output", "o", "tsv", "Output format: tsv, json or yaml")

	return cmd
}

func validPart(part string) bool {
	for _, known := range allParts {
		if part == known {
			return true
		}
	}
	return false
}

func renderPart(part string, img wallpaper.Image, cfg *config.Config, state *wallpaper.AppState,
	now time.Time, dateFmt string, spans bool, style timefmt.Style, approx bool) string {
	switch part {
	case "path":
		return img.FileName(cfg)
	case "full-path":
		return filepath.Join(cfg.Project.DataDir, img.FileName(cfg))
	case "title":
		return img.Title
	case "url":
		return img.DownloadURL(cfg)
	case "time":
		if spans {
			return timefmt.Relative(img.FullStartDate.Time, now, style, approx)
		}
		if dateFmt != "" {
			return img.FullStartDate.Format(dateFmt)
		}
		return img.FullStartDate.Format(time.RFC3339)
	case "current":
		return strconv.FormatBool(state.Current() == img.FileName(cfg))
	}
	return ""
}
