package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/planner/internal/event"
	"github.com/roach88/planner/internal/report"
)

// Export formats accepted by --as.
const (
	ExportText = "text"
	ExportICS  = "ics"
)

// ExportOptions holds flags for the export command.
type ExportOptions struct {
	*RootOptions
	As     string // "text" | "ics"; empty picks from the output extension
	Output string // optional - defaults to export_file from config; "-" is stdout
}

// ExportResult is the JSON payload of the export command.
type ExportResult struct {
	Path   string `json:"path"`
	Format string `json:"format"`
	Events int    `json:"events"`
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the schedule as a text report or iCalendar file",
		Long: `Export every event to a readable text report, listed in date and time
order, or to an iCalendar (.ics) file. The stored order is not changed.

Without --as, a .ics output path selects iCalendar and anything else
selects the text report.

Examples:
  planner export
  planner export --output week.txt
  planner export --as ics --output schedule.ics
  planner export --as ics --output -`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.As, "as", "", "export format (text|ics)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file path, - for stdout (default from config)")

	return cmd
}

// exportFormat resolves the export format from an explicit choice or the
// path's extension.
func exportFormat(as, path string) (string, error) {
	switch strings.ToLower(as) {
	case ExportText:
		return ExportText, nil
	case ExportICS:
		return ExportICS, nil
	case "":
		if strings.EqualFold(filepath.Ext(path), ".ics") {
			return ExportICS, nil
		}
		return ExportText, nil
	}
	return "", fmt.Errorf("invalid export format %q: must be %s or %s", as, ExportText, ExportICS)
}

func runExport(opts *ExportOptions, cmd *cobra.Command) error {
	return withApp(opts.RootOptions, cmd, func(ctx context.Context, a *app) error {
		path := opts.Output
		if path == "" {
			path = a.cfg.ExportFile
		}
		format, err := exportFormat(opts.As, path)
		if err != nil {
			return a.out.FailWith(ExitCommandError, ErrCodeUsage, err.Error(), nil, err)
		}

		events := a.sched.List()
		if len(events) == 0 {
			return a.out.Render(ExportResult{Format: format}, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, "No events to export.")
				return err
			})
		}

		if path == "-" {
			if err := writeExport(cmd.OutOrStdout(), a, format, events); err != nil {
				return a.out.Fail(event.NewIO("write export", err))
			}
			return nil
		}

		if err := exportToFile(path, a, format, events); err != nil {
			return a.out.Fail(err)
		}
		a.logger.Info("schedule exported", "path", path, "format", format, "events", len(events))

		result := ExportResult{Path: path, Format: format, Events: len(events)}
		return a.out.Render(result, func(w io.Writer) error {
			_, err := fmt.Fprintf(w, "Schedule exported to %s successfully.\n", path)
			return err
		})
	})
}

func writeExport(w io.Writer, a *app, format string, events []event.Event) error {
	now := a.now().In(a.loc)
	if format == ExportICS {
		return report.WriteICS(w, events, now, a.loc)
	}
	return report.WriteText(w, events, now)
}

// exportToFile writes the export to path, creating or truncating it.
func exportToFile(path string, a *app, format string, events []event.Event) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return event.NewIO(fmt.Sprintf("open %s for writing", path), err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = event.NewIO(fmt.Sprintf("close %s", path), closeErr)
		}
	}()

	if err := writeExport(f, a, format, events); err != nil {
		return event.NewIO(fmt.Sprintf("write %s", path), err)
	}
	return nil
}
