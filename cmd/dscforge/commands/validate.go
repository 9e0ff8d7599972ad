package commands

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/dscforge/dscforge/pkg/config"
)

func newValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <manifest>",
		Short: "Validate an extraction manifest",
		Long: `Validate an extraction manifest without rendering anything.

This command checks:
  - YAML syntax validity
  - Required fields and value constraints
  - Declared kind names
  - Promotions against declared resource instances`,
		Example: `  # Validate a manifest
  dscforge validate farm.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := config.Load(args[0])
			if err != nil {
				return err
			}

			log.Info().
				Str("manifest", m.Name).
				Int("resources", len(m.Resources)).
				Int("promotions", len(m.Promotions)).
				Msg("Manifest is valid")

			fmt.Printf("%s: %d resources, %d promotions\n", m.Name, len(m.Resources), len(m.Promotions))
			return nil
		},
	}

	return cmd
}
