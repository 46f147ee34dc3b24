package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Conceptual-Machines/ikovsky-api/internal/score"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	formatYAML = "yaml"
	formatJSON = "json"
)

func newInspectCmd() *cobra.Command {
	format := formatYAML

	cmd := &cobra.Command{
		Use:   "inspect <file.mid>",
		Short: "Summarise the tracks of a MIDI file",
		Long: `Summarise a Standard MIDI File: tempo, meter and, for every part,
its name, channel, program, note count and length in ticks.

Example:
  ikovsky inspect song.mid --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer f.Close()

			summary, err := score.Inspect(f)
			if err != nil {
				return err
			}
			return printSummary(cmd, summary, format)
		},
	}

	cmd.Flags().StringVar(&format, "format", formatYAML, "output format (yaml, json)")
	return cmd
}

func printSummary(cmd *cobra.Command, summary *score.Summary, format string) error {
	out := cmd.OutOrStdout()
	switch format {
	case formatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	case formatYAML:
		enc := yaml.NewEncoder(out)
		defer enc.Close()
		return enc.Encode(summary)
	default:
		return fmt.Errorf("unknown format %q, use yaml or json", format)
	}
}
