// steganography hides an image inside the low-order bits of another.
//
// Usage:
//
//	steganography merge COVER SECRET OUT
//	steganography unmerge MERGED OUT
//	steganography cover -o cover.png [options]
//	steganography batch MANIFEST
//	steganography serve [--port 8080]
//	steganography help
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "steganography",
	Short: "Hide an image inside the low-order bits of another",
	Long: `steganography stores the high bits of a secret image in the low bits of
a cover image (merge) and recovers them again (unmerge). Merged images are
always written as PNG.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	report(os.Stderr, err)
	os.Exit(1)
}

// report prints err the way every failing command does. ReturnCode values
// carry their fixed message as Error().
func report(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %v\n", err)
	fmt.Fprintln(w, "try 'steganography help' for more information")
}
