package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lowbyte/binio-go/binio"
)

var packCmd = &cobra.Command{
	Use:   "pack <file> <spec>:<value> [<spec>:<value>...]",
	Short: "Write typed values to a binary file",
	Long: `Pack creates (or truncates) a file and writes each value in sequence,
using exactly the width and byte order its spec names.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runPack,
}

func runPack(cmd *cobra.Command, args []string) error {
	f, err := os.Create(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	w, ic := binio.NewFileWriter(f)
	if err := ic.Err(); err != nil {
		return err
	}
	for _, arg := range args[1:] {
		spec, literal, ok := strings.Cut(arg, ":")
		if !ok {
			return fmt.Errorf("%q: want <spec>:<value>", arg)
		}
		if err := writeValue(w, spec, literal); err != nil {
			return fmt.Errorf("%s: %w", arg, err)
		}
	}
	return f.Close()
}
