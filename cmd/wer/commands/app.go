// SPDX-License-Identifier: Apache-2.0
package commands

import (
	"errors"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/wer-build/wer/internal/workspace"
	"github.com/wer-build/wer/pkg/command"
	"github.com/wer-build/wer/pkg/config"
	wererrors "github.com/wer-build/wer/pkg/errors"
	"github.com/wer-build/wer/pkg/formatset"
	"github.com/wer-build/wer/pkg/logging"
	"github.com/wer-build/wer/pkg/platform"
	"github.com/wer-build/wer/pkg/runner"
	"github.com/wer-build/wer/pkg/toolchain"
)

// app is constructed once per process before any subcommand runs and
// handed to every subcommand.
type app struct {
	opts rootOptions

	logger   hclog.Logger
	host     platform.OS
	store    *config.Store
	doc      *config.Document
	layout   *workspace.Layout
	resolver *toolchain.Resolver
	selector *formatset.Selector
	builder  *command.Builder
	runner   *runner.Runner
}

func (a *app) init(cmd *cobra.Command) error {
	level, err := logging.ResolveLevel(a.opts.logLevel)
	if err != nil {
		return err
	}
	a.logger = logging.NewLogger("wer", level, cmd.ErrOrStderr())

	a.host = platform.Current()
	if a.opts.platform != "" {
		if a.host, err = platform.Parse(a.opts.platform); err != nil {
			return err
		}
	}
	a.logger.Debug("🖥️ Host platform", "platform", a.host)

	root := a.opts.directory
	a.layout = workspace.NewLayout(root, a.logger.Named("workspace"))
	a.store = config.NewStore(a.layout.Path(a.opts.configPath), a.logger.Named("config"))

	// The document is needed by nearly every subcommand; a missing or
	// malformed file stops the run before any of them starts.
	if a.doc, err = a.store.Load(); err != nil {
		if errors.Is(err, wererrors.ErrConfigNotFound) {
			return withHint(err, "create "+config.DefaultPath+" in the project directory or pass --config")
		}
		return err
	}

	a.resolver = toolchain.NewResolver(a.host, a.logger.Named("toolchain"))
	a.selector = formatset.NewSelector(root, a.logger.Named("format"))
	a.builder = command.NewBuilder(a.layout, a.host, a.logger.Named("command"))
	a.runner = runner.New(root, a.logger.Named("runner")).WithOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())
	return nil
}
