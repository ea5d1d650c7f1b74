package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Manage the reference resin dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDatasetList(cmd, args)
	},
}

var datasetImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Load the resin dataset file into the store",
	RunE: func(cmd *cobra.Command, args []string) error {
		resins, err := client.ImportDataset(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("Imported %d resins\n", len(resins))
		return nil
	},
}

var datasetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored resins",
	RunE:  runDatasetList,
}

func runDatasetList(cmd *cobra.Command, args []string) error {
	resins, err := client.ListResins(cmd.Context())
	if err != nil {
		return err
	}
	if len(resins) == 0 {
		fmt.Println("No resins stored. Run: resinctl dataset import")
		return nil
	}
	fmt.Printf("%-20s %-18s %-20s %-12s %s\n", "NAME", "MANUFACTURER", "TYPE", "STRUCTURE", "IONIC FORM")
	for _, resin := range resins {
		fmt.Printf("%-20s %-18s %-20s %-12s %s\n",
			resin.Name, resin.Manufacturer, resin.Type, resin.Structure, resin.IonicForm)
	}
	return nil
}

var (
	tocContaminant string
	tocInitial     float64
	tocPH          float64
)

var tocCmd = &cobra.Command{
	Use:   "toc <resin name>",
	Short: "Simulate organic carbon removal for a stored resin",
	Long: `Predict total organic carbon removal for a stored resin under given water
conditions.

Examples:
  resinctl toc "CalRes 2304"
  resinctl toc "CalRes 2304" --contaminant "Humic Acid" --initial 25 --ph 8.5`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := client.SimulateTOCRemoval(cmd.Context(), args[0], tocContaminant, tocInitial, tocPH)
		if err != nil {
			return err
		}
		fmt.Printf("Removal efficiency: %.1f%%\n", result.RemovalEfficiency*100)
		fmt.Printf("Final TOC:          %.2f mg/L (from %.2f)\n", result.FinalTOC, tocInitial)
		return nil
	},
}

func init() {
	datasetCmd.AddCommand(datasetImportCmd)
	datasetCmd.AddCommand(datasetListCmd)

	tocCmd.Flags().StringVarP(&tocContaminant, "contaminant", "c", "Tannic Acid", "contaminant type")
	tocCmd.Flags().Float64VarP(&tocInitial, "initial", "i", 10, "initial TOC, mg/L")
	tocCmd.Flags().Float64VarP(&tocPH, "ph", "p", 7, "water pH")
}
