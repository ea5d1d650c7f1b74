package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kleafrog-source/research-resin/internal/ion"
)

var applyCmd = &cobra.Command{
	Use:   "apply <ion>",
	Short: "Compute the resin state for one ionic form",
	Long: `Compute the physical property state of the resin loaded with a single
ionic form.

Examples:
  resinctl apply H+
  resinctl apply Ca2+`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := client.ApplyIon(args[0], resinProps())
		if err != nil {
			return err
		}
		fmt.Printf("Ionic form %s:\n", args[0])
		printState(state)
		return nil
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Compute states for the full ion catalog and persist them",
	RunE: func(cmd *cobra.Command, args []string) error {
		summary, err := client.GenerateStates(cmd.Context(), resinProps())
		if err != nil {
			return err
		}
		fmt.Printf("Run %s: %d ion states\n", summary.RunID, len(summary.States))
		for _, i := range ion.All() {
			state, ok := summary.States[i]
			if !ok {
				continue
			}
			fmt.Printf("\n%s:\n", i)
			printState(state)
		}
		return nil
	},
}

var mixFraction float64

var mixCmd = &cobra.Command{
	Use:   "mix <ion1> <ion2>",
	Short: "Compute the state of a two-ion loading",
	Long: `Compute the resin state when two ionic forms share the exchange sites.
The --fraction flag gives the share of the first ion.

Examples:
  resinctl mix H+ Na+ --fraction 0.3
  resinctl mix K+ Ca2+`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := client.MixIons(args[0], args[1], mixFraction, resinProps())
		if err != nil {
			return err
		}
		fmt.Printf("Mixture %.0f%% %s / %.0f%% %s:\n", mixFraction*100, args[0], (1-mixFraction)*100, args[1])
		printState(state)
		return nil
	},
}

var (
	degradeCycles int
	degradeGrade  string
)

var degradeCmd = &cobra.Command{
	Use:   "degrade <ion>",
	Short: "Age a resin over regeneration cycles",
	Long: `Apply an ionic form and then degrade the resulting state over repeated
regeneration cycles. The --grade flag selects the resin quality grade
(premium, first, basic).

Examples:
  resinctl degrade H+ --cycles 100
  resinctl degrade Na+ --cycles 50 --grade premium`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := client.DegradeIon(args[0], degradeCycles, degradeGrade, resinProps())
		if err != nil {
			return err
		}
		fmt.Printf("Ionic form %s after %d cycles (grade %s):\n", args[0], degradeCycles, degradeGrade)
		printState(state)
		return nil
	},
}

var programCmd = &cobra.Command{
	Use:   "program <ion> [ion...]",
	Short: "Run an ion replacement program and report the final state",
	Long: `Replace the ionic form step by step and report the state after the last
step. Each replacement fully displaces the previous form.

Example:
  resinctl program H+ Na+ Ca2+`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := client.RunProgram(args, resinProps())
		if err != nil {
			return err
		}
		fmt.Printf("Final state after program %s:\n", strings.Join(args, " -> "))
		printState(state)
		return nil
	},
}

func init() {
	mixCmd.Flags().Float64VarP(&mixFraction, "fraction", "f", 0.5, "fraction of the first ion, 0 to 1")
	degradeCmd.Flags().IntVarP(&degradeCycles, "cycles", "c", 100, "number of regeneration cycles")
	degradeCmd.Flags().StringVarP(&degradeGrade, "grade", "g", "basic", "resin quality grade")
}
