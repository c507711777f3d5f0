package cmd

import (
	"github.com/hargabyte/cvx/internal/catalog"
	"github.com/spf13/cobra"
)

// energyCmd represents the energy command
var energyCmd = &cobra.Command{
	Use:   "energy",
	Short: "Generate the DissociationEnergy enum",
	Long: `Generate the DissociationEnergy enum.

The grouping unions the closures of several independent base categories
(collision energy MS:1000045 plus MS:1000138, MS:1002680, MS:1003410).
Each variant carries an f32 payload since these terms describe
continuous quantities.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExtraction(catalog.Energy())
	},
}

func init() {
	rootCmd.AddCommand(energyCmd)
}
