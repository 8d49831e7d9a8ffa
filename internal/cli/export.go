package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/roster/internal/export"
)

// ExportOptions holds options for the export command.
type ExportOptions struct {
	*RootOptions
	Output string
	View   viewFlags
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export employees to CSV",
		Long: `Write employees to a UTF-8 CSV file with a byte order mark, in the
order and with the filter given by --search, --sort and --order.

Nothing is written when no employee matches.

Example:
  roster export
  roster export -o team.csv --sort salary --order desc`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file (default from config, employees.csv)")
	opts.View.register(cmd)

	return cmd
}

func runExport(cmd *cobra.Command, opts *ExportOptions) error {
	a, err := openApp(opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := opts.View.apply(a); err != nil {
		return err
	}

	path := opts.Output
	if path == "" {
		path = a.cfg.ExportFile
	}

	records := a.store.Filtered()
	written, err := export.ToFile(path, records)
	if err != nil {
		return a.out.Fail(ExitFailure, ErrCodeWriteFailed, "failed to write CSV", err)
	}
	if !written {
		return a.out.Success(message{
			text: "No employees to export; nothing written",
			data: map[string]any{"path": path, "written": false, "count": 0},
		})
	}

	return a.out.Success(message{
		text: fmt.Sprintf("Exported %d employee(s) to %s", len(records), path),
		data: map[string]any{"path": path, "written": true, "count": len(records)},
	})
}
