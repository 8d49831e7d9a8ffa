package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/roster/internal/employee"
)

// recordFlags are the per-field flags shared by add and edit.
type recordFlags struct {
	Name        string
	Age         string
	Designation string
	Salary      string
	Currency    string
	PhotoPath   string
}

func (r *recordFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&r.Name, "name", "n", "", "username")
	cmd.Flags().StringVar(&r.Age, "age", "", "age in years")
	cmd.Flags().StringVarP(&r.Designation, "desig", "d", "", "designation")
	cmd.Flags().StringVar(&r.Salary, "salary", "", "salary amount")
	cmd.Flags().StringVar(&r.Currency, "currency", "", "three-letter currency code (default from config)")
	cmd.Flags().StringVar(&r.PhotoPath, "photo", "", "path to an image file")
}

// AddOptions holds options for the add command.
type AddOptions struct {
	*RootOptions
	Record recordFlags
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AddOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an employee",
		Long: `Add an employee. The new record gets a generated id.

Username, age, designation and salary are required. Age and salary must be
positive numbers. The photo is required only when require_photo is set in
the config.

Example:
  roster add --name "Ann Lee" --age 30 --desig Developer --salary 5000
  roster add -n Zoe --age 41 -d Lead --salary 7200.50 --currency EUR --photo zoe.png`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, opts)
		},
	}

	opts.Record.register(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, opts *AddOptions) error {
	a, err := openApp(opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	in := employee.Input{
		Name:        strings.TrimSpace(opts.Record.Name),
		Age:         employee.NumericString(strings.TrimSpace(opts.Record.Age)),
		Designation: strings.TrimSpace(opts.Record.Designation),
		Salary:      employee.NumericString(strings.TrimSpace(opts.Record.Salary)),
		Currency:    strings.ToUpper(strings.TrimSpace(opts.Record.Currency)),
	}
	if in.Currency == "" {
		in.Currency = a.cfg.DefaultCurrency
	}
	if opts.Record.PhotoPath != "" {
		in.Photo, err = readPhoto(opts.Record.PhotoPath)
		if err != nil {
			return a.out.Fail(ExitFailure, ErrCodePhoto, "failed to read photo", err)
		}
	}

	if err := a.validator.Validate(in); err != nil {
		return a.out.Fail(ExitFailure, ErrCodeInvalidInput, "invalid employee", err)
	}

	e := a.store.Add(commandContext(cmd), in)
	a.out.VerboseLog("added %s", e.ID)

	return a.out.Success(message{
		text: fmt.Sprintf("Added employee %s (%s)", e.ID, e.Name),
		data: employeeDetail(e),
	}, a.persistWarnings()...)
}
