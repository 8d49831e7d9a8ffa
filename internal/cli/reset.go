package cli

import (
	"github.com/spf13/cobra"
)

// ResetOptions holds options for the reset command.
type ResetOptions struct {
	*RootOptions
	Yes bool
}

// NewResetCommand creates the reset command.
func NewResetCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ResetOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every employee",
		Long: `Replace the roster with an empty one.

The empty roster is saved, so the seed is not applied again on the next run.
Requires --yes.

Example:
  roster reset --yes`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReset(cmd, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Yes, "yes", "y", false, "confirm deleting every employee")

	return cmd
}

func runReset(cmd *cobra.Command, opts *ResetOptions) error {
	if !opts.Yes {
		out := newFormatter(opts.RootOptions, cmd)
		return out.Fail(ExitCommandError, ErrCodeInvalidFlag, "reset deletes every employee; pass --yes to confirm", nil)
	}

	a, err := openApp(opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	removed := a.store.Count()
	a.store.Reset(commandContext(cmd))

	return a.out.Success(message{
		text: "Roster cleared",
		data: map[string]int{"removed": removed},
	}, a.persistWarnings()...)
}
