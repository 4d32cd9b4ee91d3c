// SPDX-License-Identifier: Apache-2.0
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	wererrors "github.com/wer-build/wer/pkg/errors"
	"github.com/wer-build/wer/pkg/toolchain"
)

func newVcpkgCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vcpkg",
		Short: "Manage the project-local vcpkg checkout",
	}

	cmd.AddCommand(newVcpkgInstallCommand(a))
	cmd.AddCommand(newVcpkgSetupCommand(a))
	cmd.AddCommand(newVcpkgUninstallCommand(a))

	return cmd
}

func newVcpkgInstallCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Install the packages listed in vcpkg.json",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !a.layout.DirExists(toolchain.VcpkgDir) {
				return withHint(
					fmt.Errorf("%w: %s does not exist", wererrors.ErrVcpkgNotBootstrapped, toolchain.VcpkgDir),
					"run `wer vcpkg setup` first")
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Installing packages...")
			return a.runner.Run(cmd.Context(), a.builder.VcpkgInstall())
		},
	}
}

func newVcpkgSetupCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Fetch and bootstrap vcpkg",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			if a.layout.DirExists(toolchain.VcpkgDir) {
				fmt.Fprintln(out, "vcpkg already fetched!")
			} else {
				fmt.Fprintln(out, "Fetching vcpkg...")
				if err := a.runner.Run(cmd.Context(), a.builder.VcpkgClone(toolchain.VcpkgDir)); err != nil {
					return err
				}
			}

			bootstrap := a.builder.VcpkgBootstrap()
			if !a.host.IsWindows() {
				if err := a.layout.EnsureExecutable(bootstrap.Name); err != nil {
					return err
				}
			}

			fmt.Fprintln(out, "Installing vcpkg...")
			return a.runner.Run(cmd.Context(), bootstrap)
		},
	}
}

func newVcpkgUninstallCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "uninstall",
		Short: "Remove the vcpkg checkout and installed packages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, dir := range []string{toolchain.VcpkgDir, toolchain.VcpkgInstalledDir} {
				removed, err := a.layout.Remove(dir)
				if err != nil {
					return err
				}
				if !removed {
					fmt.Fprintf(cmd.OutOrStdout(), "%s already removed!\n", dir)
				}
			}
			return nil
		},
	}
}
