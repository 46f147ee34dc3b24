package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the ikovsky command tree
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ikovsky",
		Short: "Probabilistic song composer",
		Long: `ikovsky - compose songs from a key, a meter and a handful of weights.

Every random choice comes from one seed, so a seed and a request always
produce the same song.

Examples:
  # Compose with the defaults (C major, 4/4, 120 bpm)
  ikovsky generate -o song.mid

  # Compose from a request file and pin the seed
  ikovsky generate -f request.yaml --seed 42

  # Look inside a MIDI file
  ikovsky inspect song.mid`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newGenerateCmd(), newInspectCmd())
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
