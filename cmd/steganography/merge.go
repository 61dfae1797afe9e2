package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xob0t/GoSteg/pkg/stego"
)

var mergeCmd = &cobra.Command{
	Use:   "merge COVER SECRET OUT",
	Short: "Hide SECRET inside COVER and write the result to OUT as PNG",
	Args:  cobra.ExactArgs(3),
	RunE:  runMerge,
}

var (
	mergeDepth   uint8
	mergeFit     bool
	mergeVerbose bool
)

func init() {
	mergeCmd.Flags().Uint8Var(&mergeDepth, "depth", stego.DefaultDepth, "Secret bits stored per channel (1-7)")
	mergeCmd.Flags().BoolVar(&mergeFit, "fit", false, "Shrink a secret larger than the cover instead of failing")
	mergeCmd.Flags().BoolVarP(&mergeVerbose, "verbose", "v", false, "Print a summary on success")
	rootCmd.AddCommand(mergeCmd)
}

func runMerge(cmd *cobra.Command, args []string) error {
	cover, secret, out := args[0], args[1], args[2]

	opts := stego.DefaultOptions()
	opts.Depth = mergeDepth
	opts.FitSecret = mergeFit

	if err := stego.MergeWith(cover, secret, out, opts); err != nil {
		return err
	}
	if mergeVerbose {
		fmt.Fprintf(cmd.OutOrStdout(), "Merged: %s + %s -> %s (depth %d)\n", cover, secret, out, opts.Depth)
	}
	return nil
}
