// SPDX-License-Identifier: Apache-2.0
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the configuration file",
		Long: `Check the configuration file and report every problem found:

  - build.dir is set and not empty
  - format.glob entries are not empty
  - format.style is a clang-format style name, file or file:<path>`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.doc.Validate(); err != nil {
				return fmt.Errorf("%s: %w", a.store.Path(), err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ %s is valid\n", a.store.Path())
			return nil
		},
	}
}
