// SPDX-License-Identifier: Apache-2.0
package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wer-build/wer/pkg/command"
	wererrors "github.com/wer-build/wer/pkg/errors"
	"github.com/wer-build/wer/pkg/toolchain"
)

func newConfigureCommand(a *app) *cobra.Command {
	var (
		createCCS bool
		dryRun    bool
	)

	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Generate the build directory with cmake",
		Long: `Run cmake to generate the build directory from build.dir, using the
generator and compilers resolved for this platform. With vcpkg enabled the
vcpkg toolchain file is passed to cmake.`,
		Example: `  # Configure with compile_commands.json
  wer configure

  # Show the cmake invocation without running it
  wer configure --create-ccs=false --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, err := a.doc.BuildDir()
			if err != nil {
				return err
			}

			res := a.resolver.Resolve(a.doc)
			d, err := a.builder.Generate(a.doc, res, command.GenerateOptions{
				BuildDir:              dir,
				VcpkgDir:              toolchain.VcpkgDir,
				ExportCompileCommands: createCCS,
			})
			if err != nil {
				if errors.Is(err, wererrors.ErrVcpkgNotBootstrapped) {
					return withHint(err, "run `wer vcpkg setup`, or set enable = false under [vcpkg] in "+a.store.Path())
				}
				return err
			}

			if dryRun {
				fmt.Fprintln(cmd.OutOrStdout(), d.CommandLine())
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Configuring the project...")
			return a.runner.Run(cmd.Context(), d)
		},
	}

	cmd.Flags().BoolVar(&createCCS, "create-ccs", true, "create compile_commands.json")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the cmake command instead of running it")

	return cmd
}
