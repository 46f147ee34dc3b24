// Package main is the ikovsky command line tool.
//
// Usage:
//
//	ikovsky <command> [flags]
//
// Commands:
//
//	generate - Compose a song and write it as a Standard MIDI File
//	inspect  - Summarise the tracks of a MIDI file
package main

import (
	"fmt"
	"os"

	"github.com/Conceptual-Machines/ikovsky-api/cmd/ikovsky/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
