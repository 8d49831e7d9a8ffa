package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one employee",
		Long: `Show every field of one employee.

Example:
  roster show 01928c3e-5f7a-7c1e-9b1a-3f0c2d4e5a6b
  roster show 2 --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, rootOpts, args[0])
		},
	}

	return cmd
}

func runShow(cmd *cobra.Command, opts *RootOptions, id string) error {
	a, err := openApp(opts, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	e, ok := a.store.Get(id)
	if !ok {
		return a.out.Fail(ExitFailure, ErrCodeNotFound, fmt.Sprintf("employee %q not found", id), nil)
	}
	return a.out.Success(employeeDetail(e))
}
