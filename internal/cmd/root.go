// Package cmd contains all CLI commands for cvx.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version is the current version of cvx
	Version = "0.1.0"

	// Global flags
	verbose    bool
	configPath string
	cvPath     string
	noCache    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cvx",
	Short: "Controlled vocabulary term extraction for mass spectrometry",
	Long: `cvx extracts term subsets from the PSI-MS controlled vocabulary and
emits annotated enum definitions for consumption by a code generator.

Given a category (or an explicit root accession), cvx computes the full
is-a closure of the root term, orders the collected terms by accession,
and prints one enum block with per-term annotations: accession, declared
name, value-type flags, parent accessions, and documentation.

Output is deterministic: the same CV snapshot always yields
byte-identical text, so generated blocks can be diffed across CV
releases.

Main capabilities:
  - Extract instrument component categories (mass analyzer, ionization
    type, inlet type, detector type, collision energy)
  - Extract the software term hierarchy with classification flags
  - Extract dissociation energy terms with a numeric payload
  - Extract native spectrum identifier formats as regex patterns
  - Print CV header metadata such as the data version
  - Serve the extraction pipeline over MCP for agent use

Examples:
  cvx component mass-analyzer          # MassAnalyzer enum
  cvx component - -c MS:1000443 -t MA  # explicit root and type name
  cvx software                         # SoftwareTerm enum
  cvx energy                           # DissociationEnergy enum
  cvx native-id                        # native ID format patterns
  cvx metadata data-version            # CV snapshot version

See 'cvx <command> --help' for command-specific options.`,
	Version: Version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags available to all commands
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: .cvx/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&cvPath, "cv", "", "Path to the CV document (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&noCache, "no-cache", false, "Bypass the parsed-document cache")
}
