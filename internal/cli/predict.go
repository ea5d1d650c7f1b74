package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var trainRunID string

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train the property predictor on simulated states",
	Long: `Train the property predictor. Without --run a fresh catalog generation is
used as the training set; with --run the stored states of that run are used.

Examples:
  resinctl train
  resinctl train --run 6f3a...`,
	RunE: func(cmd *cobra.Command, args []string) error {
		summary, err := client.Train(cmd.Context(), trainRunID, resinProps())
		if err != nil {
			return err
		}
		fmt.Printf("Trained on run %s: %d samples, %d properties\n",
			summary.RunID, summary.SampleCount, len(summary.Properties))
		for _, property := range summary.Properties {
			fmt.Printf("  %s\n", property)
		}
		return nil
	},
}

var (
	predictCharge            float64
	predictRadius            float64
	predictHydrationEnergy   float64
	predictElectronegativity float64
	predictHydrationNumber   float64
	predictImportancesFor    string
)

var predictCmd = &cobra.Command{
	Use:   "predict [ion]",
	Short: "Predict resin properties for an ion from its physical descriptor",
	Long: `Predict resin properties for a cataloged ion, or for a hypothetical ion
described by raw physical features. The predictor is trained first, on a
fresh catalog generation or on the run named by --run.

Examples:
  resinctl predict K+
  resinctl predict --charge 2 --radius 0.8 --hydration-energy -1700 \
      --electronegativity 1.4 --hydration-number 7`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := client.Train(cmd.Context(), trainRunID, resinProps()); err != nil {
			return err
		}

		var predicted map[string]float64
		var err error
		if len(args) == 1 {
			predicted, err = client.PredictIon(args[0])
		} else {
			predicted, err = client.PredictCustom(predictCharge, predictRadius,
				predictHydrationEnergy, predictElectronegativity, predictHydrationNumber)
		}
		if err != nil {
			return err
		}

		properties := make([]string, 0, len(predicted))
		for property := range predicted {
			properties = append(properties, property)
		}
		sort.Strings(properties)
		for _, property := range properties {
			fmt.Printf("  %-25s %12.6g\n", property, predicted[property])
		}

		if predictImportancesFor != "" {
			importances := client.FeatureImportances(predictImportancesFor)
			if len(importances) == 0 {
				return fmt.Errorf("no trained model for property %s", predictImportancesFor)
			}
			fmt.Printf("\nFeature importances for %s:\n", predictImportancesFor)
			features := make([]string, 0, len(importances))
			for feature := range importances {
				features = append(features, feature)
			}
			sort.Strings(features)
			for _, feature := range features {
				fmt.Printf("  %-20s %8.4f\n", feature, importances[feature])
			}
		}
		return nil
	},
}

func init() {
	trainCmd.Flags().StringVarP(&trainRunID, "run", "r", "", "train on a stored run instead of a fresh generation")

	predictCmd.Flags().StringVarP(&trainRunID, "run", "r", "", "train on a stored run instead of a fresh generation")
	predictCmd.Flags().Float64Var(&predictCharge, "charge", 1, "ion charge")
	predictCmd.Flags().Float64Var(&predictRadius, "radius", 1.0, "ionic radius, angstrom")
	predictCmd.Flags().Float64Var(&predictHydrationEnergy, "hydration-energy", -400, "hydration energy, kJ/mol")
	predictCmd.Flags().Float64Var(&predictElectronegativity, "electronegativity", 1.0, "Pauling electronegativity")
	predictCmd.Flags().Float64Var(&predictHydrationNumber, "hydration-number", 5, "hydration number")
	predictCmd.Flags().StringVar(&predictImportancesFor, "importances", "", "also print feature importances for this property")
}
