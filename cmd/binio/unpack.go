package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lowbyte/binio-go/binio"
)

var unpackCmd = &cobra.Command{
	Use:   "unpack <file> <spec> [<spec>...]",
	Short: "Read typed values back from a binary file",
	Long: `Unpack reads the file sequentially, decoding one value per spec, and
prints each decoded value on its own line. The spec sequence must mirror
the pack that produced the file.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runUnpack,
}

func runUnpack(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	r, ic := binio.NewFileReader(f)
	if err := ic.Err(); err != nil {
		return err
	}
	for _, spec := range args[1:] {
		out, err := readValue(r, spec)
		if err != nil {
			return fmt.Errorf("%s: %w", spec, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
	}
	return nil
}
