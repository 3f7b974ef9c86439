// Package main is the entry point for the nexus CLI: the research sharing
// API server and its catalog maintenance commands.
package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/researchnexus/nexus/internal/pkg/config"
	"github.com/researchnexus/nexus/pkg/logger"
)

// version is set at build time via ldflags.
var version = "dev"

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "nexus",
	Short: "Research sharing platform API",
	Long: `nexus serves the research catalog, browser sessions, role dashboards and
the assistant chat over HTTP, and maintains the catalog in MongoDB.

Configuration comes from environment variables, optionally read from a .env
file in the working directory.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == versionCmd.Name() {
			return nil
		}

		c, err := config.Load(cmd.Context())
		if err != nil {
			return err
		}
		cfg = c

		// Only the server logs to stdout; the other commands print results there.
		var out io.Writer = os.Stderr
		if cmd.Name() == serveCmd.Name() {
			out = os.Stdout
		}
		logger.Init(logger.Options{
			Level:   cfg.LogLevel,
			Pretty:  cfg.LogPretty,
			Output:  out,
			Service: "nexus",
		})
		return nil
	},
}

// @title        Research Nexus API
// @version      1.0
// @description  Research catalog, sessions, dashboards and assistant chat.
// @BasePath     /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
