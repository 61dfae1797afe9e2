package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/xob0t/GoSteg/pkg/batch"
)

var batchCmd = &cobra.Command{
	Use:   "batch MANIFEST",
	Short: "Run the merge and unmerge jobs listed in a YAML manifest",
	Args:  cobra.ExactArgs(1),
	RunE:  runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	m, err := batch.LoadManifest(args[0])
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Running %d jobs on %d workers\n", len(m.Jobs), m.Workers)

	results := batch.Run(ctx, m)
	for _, r := range results {
		status := "ok"
		if r.Err != nil {
			status = r.Err.Error()
		}
		fmt.Fprintf(out, "  [%d] %s %s: %s\n", r.Index+1, r.Job.Op, r.Job.Output, status)
	}

	if n := batch.Failed(results); n > 0 {
		return fmt.Errorf("%d of %d jobs failed", n, len(results))
	}
	fmt.Fprintf(out, "Done: %d jobs\n", len(results))
	return nil
}
