package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/roster/internal/employee"
	"github.com/roach88/roster/internal/store"
)

// EditOptions holds options for the edit command.
type EditOptions struct {
	*RootOptions
	Record     recordFlags
	ClearPhoto bool
}

// NewEditCommand creates the edit command.
func NewEditCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EditOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of an employee",
		Long: `Change fields of an existing employee. Only the flags given are changed;
the id never changes.

Example:
  roster edit 2 --salary 8000
  roster edit 2 --desig "Staff Engineer" --photo new.jpg
  roster edit 2 --clear-photo`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, opts, args[0])
		},
	}

	opts.Record.register(cmd)
	cmd.Flags().BoolVar(&opts.ClearPhoto, "clear-photo", false, "remove the stored photo")
	cmd.MarkFlagsMutuallyExclusive("photo", "clear-photo")

	return cmd
}

// buildPatch turns the flags that were set into a patch.
func buildPatch(cmd *cobra.Command, opts *EditOptions) (employee.Patch, error) {
	var p employee.Patch
	changed := cmd.Flags().Changed

	if changed("name") {
		name := strings.TrimSpace(opts.Record.Name)
		p.Name = &name
	}
	if changed("age") {
		age := employee.NumericString(strings.TrimSpace(opts.Record.Age))
		p.Age = &age
	}
	if changed("desig") {
		desig := strings.TrimSpace(opts.Record.Designation)
		p.Designation = &desig
	}
	if changed("salary") {
		salary := employee.NumericString(strings.TrimSpace(opts.Record.Salary))
		p.Salary = &salary
	}
	if changed("currency") {
		currency := strings.ToUpper(strings.TrimSpace(opts.Record.Currency))
		p.Currency = &currency
	}
	switch {
	case opts.ClearPhoto:
		empty := ""
		p.Photo = &empty
	case changed("photo"):
		photo, err := readPhoto(opts.Record.PhotoPath)
		if err != nil {
			return employee.Patch{}, err
		}
		p.Photo = &photo
	}
	return p, nil
}

func runEdit(cmd *cobra.Command, opts *EditOptions, id string) error {
	a, err := openApp(opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	current, ok := a.store.Get(id)
	if !ok {
		return a.out.Fail(ExitFailure, ErrCodeNotFound, fmt.Sprintf("employee %q not found", id), nil)
	}
	a.store.SetCurrentEmployee(current)
	defer a.store.ClearCurrentEmployee()

	p, err := buildPatch(cmd, opts)
	if err != nil {
		return a.out.Fail(ExitFailure, ErrCodePhoto, "failed to read photo", err)
	}
	if p.IsEmpty() {
		return a.out.Fail(ExitCommandError, ErrCodeInvalidFlag, "nothing to change: pass at least one field flag", nil)
	}

	if err := a.validator.ValidatePatch(current, p); err != nil {
		return a.out.Fail(ExitFailure, ErrCodeInvalidInput, "invalid employee", err)
	}

	updated, err := a.store.Update(commandContext(cmd), id, p)
	if errors.Is(err, store.ErrNotFound) {
		return a.out.Fail(ExitFailure, ErrCodeNotFound, fmt.Sprintf("employee %q not found", id), nil)
	}
	if err != nil {
		return a.out.Fail(ExitFailure, ErrCodeGeneric, "update failed", err)
	}

	return a.out.Success(message{
		text: fmt.Sprintf("Updated employee %s (%s)", updated.ID, updated.Name),
		data: employeeDetail(updated),
	}, a.persistWarnings()...)
}
