// SPDX-License-Identifier: Apache-2.0
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	wererrors "github.com/wer-build/wer/pkg/errors"
)

func newBuildCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Build everything in the configured build directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, err := a.doc.BuildDir()
			if err != nil {
				return err
			}
			if !a.layout.DirExists(dir) {
				return withHint(
					fmt.Errorf("%w: %s does not exist", wererrors.ErrNotConfigured, dir),
					"run `wer configure` first")
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Building...")
			return a.runner.Run(cmd.Context(), a.builder.Build(dir))
		},
	}
}

func newCleanCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove the build directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, err := a.doc.BuildDir()
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Cleaning everything...")
			removed, err := a.layout.Remove(dir)
			if err != nil {
				return err
			}
			if !removed {
				fmt.Fprintln(cmd.OutOrStdout(), "Already cleaned up!")
			}
			return nil
		},
	}
}
