// ABOUTME: Root command, persistent flags and client construction shared by subcommands
// ABOUTME: Settings come from the config file and BEARPAGE_* environment overrides

package main

import (
	"fmt"

	bearpage "bearpage/bearpage-lib"
	"bearpage/pkg/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	verbose  bool
	strategy string
)

// newClient builds the library client; replaced in tests
var newClient = func(opts ...bearpage.Option) (*bearpage.Client, error) {
	return bearpage.NewClient(opts...)
}

var rootCmd = &cobra.Command{
	Use:   "bearpage",
	Short: "Bear species cards and search highlighting for static pages",
	Long: `bearpage loads the list of bear species from the encyclopedia API,
renders it as cards into the .more_bears container of an HTML page and
highlights search matches inside the page's articles.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "bearpage.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&strategy, "strategy", "", "extraction strategy: wikitext or html (overrides config)")
}

// buildClient loads settings and applies the persistent flags
func buildClient() (*bearpage.Client, error) {
	settings, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if verbose {
		settings.Log.Level = "debug"
	}
	if strategy != "" {
		settings.Wiki.Strategy = strategy
	}

	opts := []bearpage.Option{
		bearpage.WithSettings(settings),
		bearpage.WithEnvFlags(""),
	}
	if !verbose && settings.Log.File == "" {
		// Keep stdout clean for command output
		opts = append(opts, bearpage.WithQuietMode())
	}

	return newClient(opts...)
}
