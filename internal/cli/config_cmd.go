package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/roach88/planner/internal/config"
)

// NewConfigCommand creates the config command group.
func NewConfigCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}

	cmd.AddCommand(newConfigShowCommand(rootOpts))
	cmd.AddCommand(newConfigInitCommand(rootOpts))

	return cmd
}

func newConfigShowCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long: `Print the configuration after applying the config file, PLANNER_*
environment variables and command-line flags.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}
			cfg, err := loadConfig(opts)
			if err != nil {
				return out.FailWith(ExitCommandError, ErrCodeConfig, err.Error(), nil, err)
			}
			return out.Render(cfg, func(w io.Writer) error {
				enc := yaml.NewEncoder(w)
				enc.SetIndent(2)
				if err := enc.Encode(cfg); err != nil {
					return err
				}
				return enc.Close()
			})
		},
	}
}

func newConfigInitCommand(opts *RootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long: `Write the default configuration to the --config path (planner.yaml by
default). An existing file is left alone unless --force is given.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}
			path := opts.ConfigPath

			if _, err := os.Stat(path); err == nil && !force {
				err := fmt.Errorf("%s already exists (use --force to overwrite)", path)
				return out.FailWith(ExitCommandError, ErrCodeConfig, err.Error(), nil, err)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return out.FailWith(ExitCommandError, ErrCodeConfig, err.Error(), nil, err)
			}

			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return out.FailWith(ExitCommandError, ErrCodeConfig, fmt.Sprintf("write %s", path), err.Error(), err)
			}
			return out.Render(map[string]string{"path": path}, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "Configuration written to %s\n", path)
				return err
			})
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	return cmd
}
