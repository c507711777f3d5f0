package cmd

import (
	"fmt"

	"github.com/hargabyte/cvx/internal/cache"
	"github.com/hargabyte/cvx/internal/config"
	"github.com/spf13/cobra"
)

// cacheCmd groups cache administration subcommands.
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or clear the parsed-document cache",
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show cache contents",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openCache()
		if err != nil {
			return err
		}
		defer c.Close()

		stats, err := c.GetStats()
		if err != nil {
			return err
		}
		fmt.Printf("path:    %s\n", c.Path())
		fmt.Printf("terms:   %d\n", stats.TermCount)
		fmt.Printf("header:  %d\n", stats.HeaderCount)
		if stats.SourceHash != "" {
			fmt.Printf("source:  sha256:%s\n", stats.SourceHash)
		} else {
			fmt.Println("source:  (empty)")
		}
		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the cached document",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openCache()
		if err != nil {
			return err
		}
		defer c.Close()

		if err := c.Clear(); err != nil {
			return err
		}
		fmt.Println("Cache cleared.")
		return nil
	},
}

// openCache opens the cache in the nearest .cvx directory.
func openCache() (*cache.Cache, error) {
	cvxDir, err := config.FindConfigDir(".")
	if err != nil {
		return nil, fmt.Errorf("no .cvx directory found: run 'cvx init' first")
	}
	return cache.Open(cvxDir)
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheStatsCmd)
	cacheCmd.AddCommand(cacheClearCmd)
}
