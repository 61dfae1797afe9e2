package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xob0t/GoSteg/pkg/stego"
)

var unmergeCmd = &cobra.Command{
	Use:   "unmerge MERGED OUT",
	Short: "Recover the image hidden in MERGED",
	Long: `Recover the image hidden in MERGED and write it to OUT. OUT is written as
JPEG when it ends in .jpg, .jpeg, .JPG or .JPEG and as PNG otherwise.`,
	Args: cobra.ExactArgs(2),
	RunE: runUnmerge,
}

var (
	unmergeDepth   uint8
	unmergeQuality int
	unmergeVerbose bool
)

func init() {
	unmergeCmd.Flags().Uint8Var(&unmergeDepth, "depth", stego.DefaultDepth, "Secret bits stored per channel; must match merge")
	unmergeCmd.Flags().IntVar(&unmergeQuality, "quality", 0, "JPEG quality 1-100 (0: default)")
	unmergeCmd.Flags().BoolVarP(&unmergeVerbose, "verbose", "v", false, "Print a summary on success")
	rootCmd.AddCommand(unmergeCmd)
}

func runUnmerge(cmd *cobra.Command, args []string) error {
	merged, out := args[0], args[1]

	opts := stego.DefaultOptions()
	opts.Depth = unmergeDepth
	opts.JPEGQuality = unmergeQuality

	if err := stego.UnmergeWith(merged, out, opts); err != nil {
		return err
	}
	if unmergeVerbose {
		fmt.Fprintf(cmd.OutOrStdout(), "Recovered: %s -> %s (%s)\n", merged, out, stego.OutputType(out))
	}
	return nil
}
