package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an employee",
		Long: `Delete the employee with the given id.

Exits 1 if no employee has that id; nothing is written in that case.

Example:
  roster delete 3`,
		Aliases:       []string{"rm"},
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(cmd, rootOpts, args[0])
		},
	}

	return cmd
}

func runDelete(cmd *cobra.Command, opts *RootOptions, id string) error {
	a, err := openApp(opts, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if !a.store.Delete(commandContext(cmd), id) {
		return a.out.Fail(ExitFailure, ErrCodeNotFound, fmt.Sprintf("employee %q not found", id), nil)
	}

	return a.out.Success(message{
		text: fmt.Sprintf("Deleted employee %s", id),
		data: map[string]any{"id": id, "deleted": true},
	}, a.persistWarnings()...)
}
