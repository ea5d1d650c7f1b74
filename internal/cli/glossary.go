package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kleafrog-source/research-resin/internal/glossary"
)

var glossaryCmd = &cobra.Command{
	Use:   "glossary [term]",
	Short: "Look up ion-exchange terminology",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			definition, ok := glossary.Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown term: %s", args[0])
			}
			fmt.Printf("%s: %s\n", args[0], definition)
			return nil
		}

		terms := glossary.Terms()
		for _, name := range glossary.Names() {
			fmt.Printf("%s\n  %s\n", name, terms[name])
		}
		return nil
	},
}
