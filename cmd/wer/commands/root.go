// SPDX-License-Identifier: Apache-2.0
// Package commands holds the wer command tree.
package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wer-build/wer/pkg/config"
)

// rootOptions are the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
	logLevel   string
	platform   string
	directory  string
}

// Execute runs the root command and reports a failure on stderr.
func Execute(ctx context.Context, version, built string) error {
	rootCmd := newRootCommand(version, built)
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		report(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func newRootCommand(version, built string) *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "wer",
		Short: "Build runner for CMake projects",
		Long: `wer reads wer.toml and turns it into cmake, clang-format and vcpkg
invocations, picking the generator and compilers for the current platform.`,
		Version:       fmt.Sprintf("%s (built %s)", version, built),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !needsProject(cmd) {
				return nil
			}
			return a.init(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.opts.configPath, "config", config.DefaultPath, "configuration file, relative to the project directory")
	flags.StringVar(&a.opts.logLevel, "log-level", "", "log level (trace, debug, info, warn, error); defaults to $WER_LOG_LEVEL or warn")
	flags.StringVar(&a.opts.platform, "platform", "", "resolve for this platform instead of the host (windows, linux, darwin, unix)")
	flags.StringVarP(&a.opts.directory, "directory", "C", ".", "run as if wer was started in this directory")

	rootCmd.AddCommand(newBuildCommand(a))
	rootCmd.AddCommand(newCleanCommand(a))
	rootCmd.AddCommand(newConfigureCommand(a))
	rootCmd.AddCommand(newFormatCommand(a))
	rootCmd.AddCommand(newVcpkgCommand(a))
	rootCmd.AddCommand(newInfoCommand(a))
	rootCmd.AddCommand(newValidateCommand(a))

	return rootCmd
}

// needsProject reports whether cmd works on a project. Help and shell
// completion run anywhere, without a configuration file.
func needsProject(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return false
		}
	}
	return true
}
