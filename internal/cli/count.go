package cli

import (
	"errors"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/roster/internal/slot"
)

// NewCountCommand creates the count command.
func NewCountCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count",
		Short: "Print the number of employees",
		Long: `Print the number of employees.

JSON output also reports when the roster was last saved. With --verbose the
time is printed to stderr.

Example:
  roster count
  roster count --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCount(cmd, rootOpts)
		},
	}

	return cmd
}

func runCount(cmd *cobra.Command, opts *RootOptions) error {
	a, err := openApp(opts, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	n := a.store.Count()
	data := map[string]any{"count": n}

	savedAt, err := a.slot.UpdatedAt(commandContext(cmd), a.cfg.Key)
	switch {
	case err == nil:
		data["saved_at"] = savedAt.UTC().Format(time.RFC3339)
		a.out.VerboseLog("last saved %s", savedAt.Format(time.RFC3339))
	case errors.Is(err, slot.ErrNotFound):
		a.out.VerboseLog("roster has never been saved")
	default:
		a.out.Warn("reading last save time failed: %v", err)
	}

	return a.out.Success(message{
		text: strconv.Itoa(n),
		data: data,
	})
}
