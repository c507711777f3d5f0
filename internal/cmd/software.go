package cmd

import (
	"github.com/hargabyte/cvx/internal/catalog"
	"github.com/spf13/cobra"
)

// softwareCmd represents the software command
var softwareCmd = &cobra.Command{
	Use:   "software",
	Short: "Generate the SoftwareTerm enum",
	Long: `Generate the SoftwareTerm enum from the software hierarchy (MS:1000531).

Each term's flags classify it by which software classification parents
it declares: acquisition (MS:1001455), analysis (MS:1001456), and data
processing (MS:1001457) each contribute one bit, combined with OR for
software filling several roles.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExtraction(catalog.Software())
	},
}

func init() {
	rootCmd.AddCommand(softwareCmd)
}
