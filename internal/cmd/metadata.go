package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// metadataCmd represents the metadata command
var metadataCmd = &cobra.Command{
	Use:   "metadata <clause>",
	Short: "Print a CV header metadata clause",
	Long: `Print the raw value of a document-level header clause.

Only the header section is consulted; term stanzas are ignored.

Supported clauses:
  data-version   the CV snapshot version, e.g. "4.1.130"

Examples:
  cvx metadata data-version`,
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"data-version"},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		doc, err := loadDocument(cfg)
		if err != nil {
			return err
		}
		for _, value := range doc.HeaderValues(args[0]) {
			fmt.Println(value)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(metadataCmd)
}
