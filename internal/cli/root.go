// Package cli provides the command-line interface for resinctl.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/kleafrog-source/research-resin/internal/config"
	"github.com/kleafrog-source/research-resin/internal/model"
	"github.com/kleafrog-source/research-resin/pkg/resinsim"
)

var (
	// Version is set at build time.
	Version = "0.1.0"

	// Global config, overrides and client
	cfg       config.Config
	overrides config.Overrides
	client    *resinsim.Client

	logger     *slog.Logger
	logCleanup func() error
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "resinctl",
	Short: "Ion-exchange resin simulation toolkit",
	Long: `Resinctl models how an ion-exchange resin behaves under different ionic
forms: computing physical property states per ion, mixing two-ion loadings,
aging resins over regeneration cycles, training a property predictor on the
simulated catalog, and recommending ionic forms for application profiles.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "glossary" {
			return nil
		}

		cfg = config.Load()
		logger, logCleanup = config.SetupLogger(cfg.LogFile, cfg.LogLevel)

		var err error
		overrides, err = config.LoadOverrides(cfg.OverridesPath)
		if err != nil {
			return err
		}

		client, err = resinsim.New(resinsim.Options{
			StoreKind:   cfg.StoreKind,
			DBPath:      cfg.DBPath,
			DatasetPath: cfg.DatasetPath,
			ExportsDir:  cfg.ExportsDir,
			Logger:      logger,
		})
		if err != nil {
			return fmt.Errorf("create client: %w", err)
		}
		if err := client.Init(cmd.Context()); err != nil {
			return fmt.Errorf("initialize store: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if client != nil {
			if err := client.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to close store: %v\n", err)
			}
		}
		if logCleanup != nil {
			_ = logCleanup()
		}
	},
}

// resinProps is the reference property set with any configured overrides
// applied.
func resinProps() model.ResinProps {
	return model.ResinProps(overrides.ApplyResinProps(client.BaseResinProps()))
}

func printState(state model.ComputationalState) {
	values := state.ToMap()
	for _, name := range model.StateFieldNames {
		fmt.Printf("  %-25s %12.6g\n", name, values[name])
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(mixCmd)
	rootCmd.AddCommand(degradeCmd)
	rootCmd.AddCommand(programCmd)
	rootCmd.AddCommand(trainCmd)
	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(datasetCmd)
	rootCmd.AddCommand(tocCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(glossaryCmd)
}
