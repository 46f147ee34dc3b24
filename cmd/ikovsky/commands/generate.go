package commands

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/Conceptual-Machines/ikovsky-api/internal/config"
	"github.com/Conceptual-Machines/ikovsky-api/internal/models"
	"github.com/Conceptual-Machines/ikovsky-api/internal/params"
	"github.com/Conceptual-Machines/ikovsky-api/internal/services"
	"github.com/Conceptual-Machines/ikovsky-api/internal/storage"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type generateOptions struct {
	requestFile string
	outputFile  string
	seed        uint64
	store       bool
	req         params.Request
}

type requestField struct {
	name  string
	usage string
	value *string
}

// requestFields lists the flag bound to each field of r, in a fixed order
func requestFields(r *params.Request) []requestField {
	return []requestField{
		{"key", "key, e.g. C, FS (F sharp), AM (A minor), CSM", &r.Key},
		{"tempo", "tempo in bpm", &r.Tempo},
		{"time-sig", "time signature, e.g. 3/4", &r.TimeSig},
		{"octave-low", "lowest octave", &r.OctaveLow},
		{"octave-high", "highest octave", &r.OctaveHigh},
		{"dynamics-low", "softest velocity", &r.DynamicsLow},
		{"dynamics-high", "loudest velocity", &r.DynamicsHigh},
		{"density", "chance in percent that an event is a note rather than a rest", &r.NoteDensity},
		{"instrument", "General MIDI program, 0-125", &r.Instrument},
		{"weight-a", "weight of chord I", &r.WeightA},
		{"weight-b", "weight of chord II", &r.WeightB},
		{"weight-c", "weight of chord III", &r.WeightC},
		{"weight-d", "weight of chord IV", &r.WeightD},
		{"weight-e", "weight of chord V", &r.WeightE},
		{"weight-f", "weight of chord VI", &r.WeightF},
		{"weight-g", "weight of chord VII", &r.WeightG},
	}
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Compose a song and write it as a MIDI file",
		Long: `Compose a song and write it as a Standard MIDI File.

Parameters start from the defaults, then the request file (-f), then any
flags given on the command line.

Example request file (request.yaml):
  key: AM
  tempo: "96"
  timeSig: 3/4
  noteDensity: "70"
  weightA: "0.4"
  weightF: "0.3"
  seed: 42

Set --store to keep the song in the backend named by STORAGE_BACKEND.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.requestFile, "file", "f", "", "request file (YAML or JSON)")
	cmd.Flags().StringVarP(&opts.outputFile, "output", "o", "", "output file (default: <song-name>.mid)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "seed for a reproducible song (default: random)")
	cmd.Flags().BoolVar(&opts.store, "store", false, "store the song in the configured backend")
	for _, f := range requestFields(&opts.req) {
		cmd.Flags().StringVar(f.value, f.name, "", f.usage)
	}

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	req := models.GenerateSongRequest{Request: params.DefaultRequest()}
	if opts.requestFile != "" {
		if err := loadRequest(opts.requestFile, &req); err != nil {
			return err
		}
	}
	flags := requestFields(&opts.req)
	for i, f := range requestFields(&req.Request) {
		if cmd.Flags().Changed(f.name) {
			*f.value = *flags[i].value
		}
	}
	if cmd.Flags().Changed("seed") {
		req.Seed = &opts.seed
	}

	store, backend, err := openStore(opts.store)
	if err != nil {
		return err
	}
	svc := services.NewSongService(store, services.SongServiceOptions{Backend: backend})

	song, err := svc.Generate(cmd.Context(), req)
	if err != nil {
		return err
	}

	midi, err := base64.StdEncoding.DecodeString(song.MidiBase64)
	if err != nil {
		return fmt.Errorf("failed to decode song: %w", err)
	}

	path := opts.outputFile
	if path == "" {
		path = fileName(song.SongName)
	}
	if err := os.WriteFile(path, midi, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s\n  file: %s\n  seed: %d\n  id:   %s\n", song.SongName, path, song.Seed, song.ID)
	return nil
}

func openStore(persist bool) (storage.SongStore, string, error) {
	if !persist {
		return storage.DiscardStore{}, storage.BackendNone, nil
	}

	// .env is optional
	_ = godotenv.Load()
	cfg := config.Load()
	store, err := storage.Open(cfg)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open %s storage: %w", cfg.StorageBackend, err)
	}
	return store, cfg.StorageBackend, nil
}

// fileName turns a song name into a .mid file name
func fileName(songName string) string {
	slug := strings.ToLower(strings.Join(strings.Fields(songName), "-"))
	if slug == "" {
		slug = "song"
	}
	return slug + ".mid"
}
