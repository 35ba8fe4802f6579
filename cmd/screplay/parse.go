package main

import (
	"encoding/json"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/scrparse/screplay/rep"
	"github.com/scrparse/screplay/repparser"
)

func newParseCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a replay and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(resolveConfigPath())
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if !cmd.Flags().Changed("format") {
				format = cfg.Format
			}
			sections, err := sectionSet(cfg.Sections)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			replay, err := repparser.ParseFile(args[0])
			if err != nil {
				return fmt.Errorf("parsing %s: %w", args[0], err)
			}

			switch format {
			case "json":
				return printJSON(cmd, filterSections(replay, sections))
			case "text":
				return printText(cmd, replay, sections)
			default:
				return fmt.Errorf("unknown format %q (want json or text)", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "output format: json or text")
	return cmd
}

func printJSON(cmd *cobra.Command, replay *rep.ParsedReplay) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(replay)
}

func printText(cmd *cobra.Command, replay *rep.ParsedReplay, sections map[string]bool) error {
	out := cmd.OutOrStdout()

	if sections["header"] {
		fmt.Fprintf(out, "Version:  %s\n", replay.Header.Version)
	}

	if sections["gameinfo"] {
		gi := replay.GameInfo
		fmt.Fprintf(out, "Title:    %s\n", gi.Title)
		fmt.Fprintf(out, "Map:      %s (%s)\n", gi.Map, gi.MapSize())
		fmt.Fprintf(out, "Engine:   %s\n", gi.EngineName())
		fmt.Fprintf(out, "Duration: %s ms (%s frames)\n",
			humanize.Comma(int64(replay.DurationMs())), humanize.Comma(int64(gi.Frames)))

		for _, p := range gi.Players {
			if p == nil || p.Name == "" {
				continue
			}
			if sections["frames"] {
				fmt.Fprintf(out, "  [%d] %-24s %-8s APM=%s\n",
					p.SlotID, p.Name, p.Race.Name, humanize.Comma(int64(replay.PlayerAPM(p.ID))))
			} else {
				fmt.Fprintf(out, "  [%d] %-24s %-8s\n", p.SlotID, p.Name, p.Race.Name)
			}
		}
	}
	return nil
}
