// Command studioweb runs the marketing site, its companion content server,
// and small maintenance tasks against the site database.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "studioweb",
		Short: "GC Studio marketing site",
		Long: `studioweb serves the studio's marketing site.

Pages are resolved from the request path, fetched from the content API and
rendered from their widget lists. The content-server command runs a
stand-alone content API from a JSON or YAML table.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().String("env-file", ".env", "dotenv file loaded before reading the environment")

	root.AddCommand(
		newSiteCommand(),
		newContentServerCommand(),
		newSubmissionsCommand(),
		newVersionCommand(),
	)
	return root
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the studioweb version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "studioweb %s\n", version)
		},
	}
}
