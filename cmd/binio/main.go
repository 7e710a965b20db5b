// Command binio packs typed numeric values into raw binary files and reads
// them back. Values are written in exactly their fixed width, in the byte
// order the value spec names, with no framing or schema: an unpack must
// mirror its pack sequence spec for spec.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "binio",
	Short: "Pack and inspect fixed-width binary values",
	Long: `binio writes sequences of typed numeric values to raw binary files and
reads them back.

Each value is named by a spec: a type (u8-u64, i8-i64, f32, f64, or the
normalized forms nu8-nu64 and ni8-ni64) with an optional le/be byte-order
suffix. Without a suffix the host byte order is used.

Examples:
  binio pack out.bin u32le:42 f64be:3.14 ni16:0.25
  binio unpack out.bin u32le f64be ni16`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(packCmd)
	rootCmd.AddCommand(unpackCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
