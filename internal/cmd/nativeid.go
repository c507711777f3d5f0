package cmd

import (
	"github.com/hargabyte/cvx/internal/catalog"
	"github.com/spf13/cobra"
)

// nativeIDCmd represents the native-id command
var nativeIDCmd = &cobra.Command{
	Use:   "native-id",
	Short: "Generate the native spectrum identifier format enum",
	Long: `Generate the native spectrum identifier format enum (root MS:1000767).

Instead of value-type flags, each entry carries a regular expression
derived from the term definition's format template: every
"name=xsd:type" fragment becomes a named capture group matching that
type's lexical space. Definitions without a format template fall back
to a catch-all pattern.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExtraction(catalog.NativeID())
	},
}

func init() {
	rootCmd.AddCommand(nativeIDCmd)
}
