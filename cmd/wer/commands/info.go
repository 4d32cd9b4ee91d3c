// SPDX-License-Identifier: Apache-2.0
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/wer-build/wer/pkg/toolchain"
)

// infoReport is everything wer resolved for this project and host.
type infoReport struct {
	Config   string `json:"config" yaml:"config"`
	BuildDir string `json:"build_dir" yaml:"build_dir"`

	toolchain.Resolution `yaml:",inline"`

	VcpkgFetched    bool   `json:"vcpkg_fetched" yaml:"vcpkg_fetched"`
	VcpkgBootstrap  string `json:"vcpkg_bootstrap" yaml:"vcpkg_bootstrap"`
	VcpkgExecutable string `json:"vcpkg_executable" yaml:"vcpkg_executable"`
}

func newInfoCommand(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show the toolchain resolved for this platform",
		Example: `  # Inspect what a Windows machine would use
  wer info --platform windows

  # Machine-readable
  wer info --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, err := a.doc.BuildDir()
			if err != nil {
				return err
			}

			report := infoReport{
				Config:          a.store.Path(),
				BuildDir:        dir,
				Resolution:      a.resolver.Resolve(a.doc),
				VcpkgFetched:    a.layout.DirExists(toolchain.VcpkgDir),
				VcpkgBootstrap:  toolchain.ResolveVcpkgBootstrapPath(a.host),
				VcpkgExecutable: toolchain.ResolveVcpkgExecutablePath(a.host),
			}
			return writeInfo(cmd.OutOrStdout(), output, report)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format (table, json, yaml)")

	return cmd
}

func writeInfo(w io.Writer, output string, report infoReport) error {
	switch output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()
	case "table":
		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("SETTING", "VALUE").
			Rows(
				[]string{"config", report.Config},
				[]string{"build dir", report.BuildDir},
				[]string{"host", report.Host.String()},
				[]string{"overlay", orNone(report.Overlay)},
				[]string{"generator", orNone(report.Generator)},
				[]string{"cc", orNone(report.CC)},
				[]string{"cxx", orNone(report.CXX)},
				[]string{"vcpkg", strconv.FormatBool(report.Vcpkg)},
				[]string{"vcpkg fetched", strconv.FormatBool(report.VcpkgFetched)},
				[]string{"vcpkg bootstrap", report.VcpkgBootstrap},
				[]string{"vcpkg executable", report.VcpkgExecutable},
			)
		_, err := fmt.Fprintln(w, t.Render())
		return err
	default:
		return fmt.Errorf("unknown output format %q (want table, json or yaml)", output)
	}
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
