package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xob0t/GoSteg/clients/server"
	"github.com/xob0t/GoSteg/pkg/stego"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve merge, unmerge and classify over HTTP",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

var (
	servePort  int
	serveDepth uint8
)

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().Uint8Var(&serveDepth, "depth", stego.DefaultDepth, "Default depth for requests that do not set one")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	opts := stego.DefaultOptions()
	opts.Depth = serveDepth
	if err := opts.Validate(); err != nil {
		return err
	}
	return server.RunServe(fmt.Sprintf("localhost:%d", servePort), opts)
}
