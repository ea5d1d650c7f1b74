package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kleafrog-source/research-resin/internal/recommend"
)

var (
	recommendRunID    string
	recommendMinScore float64
	recommendBestOnly bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend <profile>",
	Short: "Recommend ionic forms for an application profile",
	Long: `Score the simulated ion catalog against an application profile and list
the ions that clear the score threshold, best first.

Built-in profiles: ` + strings.Join(recommend.Profiles(), ", ") + `.
The custom profile takes its ranges from the overrides file
(RESIN_OVERRIDES_FILE).

Examples:
  resinctl recommend catalysis
  resinctl recommend stability --min-score 0.8
  resinctl recommend custom --best`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profile := args[0]
		var custom recommend.Requirements
		if profile == recommend.ProfileCustom {
			custom = recommend.Requirements(overrides.CustomRequirements)
		}

		if recommendBestOnly {
			best, found, err := client.BestMatch(cmd.Context(), recommendRunID, profile, custom, recommendMinScore, resinProps())
			if err != nil {
				return err
			}
			if !found {
				fmt.Printf("No ion clears score %.2f for profile %s\n", recommendMinScore, profile)
				return nil
			}
			fmt.Printf("%s  score %.2f  matched: %s\n", best.Ion, best.Score, strings.Join(best.Matched, ", "))
			return nil
		}

		results, err := client.Recommend(cmd.Context(), recommendRunID, profile, custom, recommendMinScore, resinProps())
		if err != nil {
			return err
		}
		if len(results) == 0 {
			fmt.Printf("No ion clears score %.2f for profile %s\n", recommendMinScore, profile)
			return nil
		}
		fmt.Printf("Profile %s:\n", profile)
		for _, result := range results {
			fmt.Printf("  %-6s score %.2f  matched: %s\n", result.Ion, result.Score, strings.Join(result.Matched, ", "))
		}
		return nil
	},
}

func init() {
	recommendCmd.Flags().StringVarP(&recommendRunID, "run", "r", "", "score a stored run instead of a fresh generation")
	recommendCmd.Flags().Float64VarP(&recommendMinScore, "min-score", "s", 0.5, "minimum match score, 0 to 1")
	recommendCmd.Flags().BoolVarP(&recommendBestOnly, "best", "b", false, "print only the top match")
}
