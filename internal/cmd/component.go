package cmd

import (
	"github.com/hargabyte/cvx/internal/catalog"
	"github.com/spf13/cobra"
)

var (
	componentCurie    string
	componentTypeName string
)

// componentCmd represents the component command
var componentCmd = &cobra.Command{
	Use:   "component <category>",
	Short: "Generate the enum for an instrument component category",
	Long: `Generate the annotated enum for one instrument component category.

Each category maps to a root term in the CV; the generated enum holds
every term in the root's is-a closure, ordered by accession, with
value-type flags accumulated from has_value_type relationships.

Categories:
  mass-analyzer     MS:1000443 -> MassAnalyzer
  ionization-type   MS:1000008 -> IonizationType
  inlet-type        MS:1000007 -> InletType
  detector-type     MS:1000026 -> DetectorType
  collision-energy  MS:1000045 -> CollisionEnergy
  -                 explicit root via --curie (and optional --type-name)

When --type-name is omitted for an explicit root, the type name derives
from the root term's own name by title-casing.

Examples:
  cvx component mass-analyzer
  cvx component - --curie MS:1000443
  cvx component - --curie MS:1000443 --type-name MassAnalyzer`,
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: append(catalog.ComponentCategories(), "-"),
	RunE: func(cmd *cobra.Command, args []string) error {
		job, err := catalog.Resolve(args[0], componentCurie, componentTypeName)
		if err != nil {
			return err
		}
		return runExtraction(job)
	},
}

func init() {
	rootCmd.AddCommand(componentCmd)
	componentCmd.Flags().StringVarP(&componentCurie, "curie", "c", "", "Explicit root accession (PREFIX:CODE) for category \"-\"")
	componentCmd.Flags().StringVarP(&componentTypeName, "type-name", "t", "", "Output enum type name (default: derived from the root term name)")
}
