package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "styled",
		Short: "styled - CSS-in-Go style sheet tooling",
		Long: `styled injects component CSS into a browser document or a serializable
buffer exactly once per distinct style. This CLI runs the same engine
over CSS files on disk to produce the style blocks a server-rendered
page embeds ahead of hydration.`,
		Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("config", ".styled.yaml", "Config file path")
	rootCmd.AddCommand(newExtractCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
