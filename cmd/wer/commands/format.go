// SPDX-License-Identifier: Apache-2.0
package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wer-build/wer/pkg/command"
	wererrors "github.com/wer-build/wer/pkg/errors"
)

func newFormatCommand(a *app) *cobra.Command {
	var (
		dryRun bool
		list   bool
	)

	cmd := &cobra.Command{
		Use:   "format",
		Short: "Format source files with clang-format",
		Long: `Format the files matched by format.glob, minus format.exclude, in place
with clang-format. The style comes from format.style; without it
clang-format falls back to its own default lookup.`,
		Example: `  # Show which files would be formatted
  wer format --list

  # Print the clang-format command line
  wer format --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			// Listing never starts the formatter, so it works without one installed.
			if !list {
				if _, err := a.runner.LookPath(command.ClangFormat); err != nil {
					return withHint(
						fmt.Errorf("%w: %w", wererrors.ErrFormatToolMissing, err),
						"install clang-format and make sure it is on PATH")
				}
			}

			files, err := a.selector.Select(a.doc)
			if err != nil {
				if errors.Is(err, wererrors.ErrNoFormatTargetsConfigured) {
					return withHint(err, "add glob patterns under [format] in "+a.store.Path())
				}
				return err
			}
			if len(files) == 0 {
				a.logger.Info("🔍 No files matched the format globs")
				return nil
			}

			if list {
				for _, file := range files {
					fmt.Fprintln(out, file)
				}
				return nil
			}

			style, _ := a.doc.FormatStyle()
			d := a.builder.Format(files, style, true)
			if dryRun {
				fmt.Fprintln(out, d.CommandLine())
				return nil
			}

			fmt.Fprintf(out, "Formatting %d files...\n", len(files))
			return a.runner.Run(cmd.Context(), d)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the clang-format command instead of running it")
	cmd.Flags().BoolVar(&list, "list", false, "print the selected files, one per line")

	return cmd
}
