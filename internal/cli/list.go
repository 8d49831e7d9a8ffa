package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/roster/internal/employee"
)

// viewFlags are the search and sort flags shared by list and export.
type viewFlags struct {
	Search string
	Sort   string
	Order  string
}

func (v *viewFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&v.Search, "search", "s", "", "only records whose name, designation, age or salary contain this text")
	cmd.Flags().StringVar(&v.Sort, "sort", string(employee.SortByName), "sort field (uname|age|desig|salary)")
	cmd.Flags().StringVar(&v.Order, "order", string(employee.Ascending), "sort order (asc|desc)")
}

// apply validates the flags and sets the store's view state.
func (v *viewFlags) apply(a *app) error {
	field, err := employee.ParseSortField(v.Sort)
	if err != nil {
		return a.out.Fail(ExitCommandError, ErrCodeInvalidFlag, "invalid --sort", err)
	}
	dir, err := employee.ParseDirection(v.Order)
	if err != nil {
		return a.out.Fail(ExitCommandError, ErrCodeInvalidFlag, "invalid --order", err)
	}
	a.store.SetSearchTerm(v.Search)
	a.store.SetSorting(field, dir)
	return nil
}

// ListOptions holds options for the list command.
type ListOptions struct {
	*RootOptions
	View viewFlags
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List employees",
		Long: `List employees, optionally filtered by a search term and sorted by a field.

The search is case-insensitive and matches any part of the username or
designation, or any part of the age or salary as written.

Example:
  roster list
  roster list --search dev --sort salary --order desc
  roster list --format json`,
		Aliases:       []string{"ls"},
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, opts)
		},
	}

	opts.View.register(cmd)

	return cmd
}

func runList(cmd *cobra.Command, opts *ListOptions) error {
	a, err := openApp(opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := opts.View.apply(a); err != nil {
		return err
	}

	return a.out.Success(employeeTable(a.store.Filtered()))
}
