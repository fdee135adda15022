// Package header implements the header command: print the fields of the
// first line of a file, one per line.
package header

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/rcarmo/go-header/pkg/core"
	"github.com/rcarmo/go-header/pkg/core/textutil"
)

const (
	applet  = "header"
	version = "1.0"
)

var errWrite = errors.New("write error")

// Options is the parsed command line.
type Options struct {
	Delimiter string
	Number    bool
	Path      string
}

// Run executes the header command with the given arguments.
func Run(stdio *core.Stdio, args []string) int {
	if args == nil {
		// cobra falls back to os.Args on a nil slice
		args = []string{}
	}

	var opts Options
	cmd := newCommand(stdio, &opts)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return exitCode(stdio, cmd, err)
}

func newCommand(stdio *core.Stdio, opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     applet + " [-d DELIMITER] [-n] FILE",
		Short:   "Prints the first line of a file, optionally with field numbers.",
		Version: version,
		Args: func(_ *cobra.Command, args []string) error {
			switch len(args) {
			case 0:
				return core.Usagef("missing FILE operand")
			case 1:
				return nil
			default:
				return core.Usagef("extra operand '%s'", args[1])
			}
		},
		RunE: func(_ *cobra.Command, args []string) error {
			opts.Path = args[0]
			return process(stdio, *opts)
		},
		SilenceErrors:     true,
		SilenceUsage:      true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.Delimiter, "delimiter", "d", "\t", "Sets the field delimiter")
	flags.BoolVarP(&opts.Number, "number", "n", false, "Show the field number")
	flags.SortFlags = false

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &core.UsageError{Message: err.Error()}
	})
	cmd.SetIn(stdio.In)
	cmd.SetOut(stdio.Out)
	cmd.SetErr(stdio.Err)
	return cmd
}

// process prints the fields of the first line of opts.Path.
// "-" reads standard input.
func process(stdio *core.Stdio, opts Options) error {
	var r io.Reader
	if opts.Path == "-" {
		r = stdio.In
	} else {
		f, err := os.Open(opts.Path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	line, ok, err := core.ReadFirstLine(r)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	for i, field := range textutil.SplitFields(line, opts.Delimiter) {
		if err := core.WriteLine(stdio.Out, textutil.FormatField(field, i+1, opts.Number)); err != nil {
			return fmt.Errorf("%w: %w", errWrite, err)
		}
	}
	return nil
}

// exitCode maps the outcome of a run to the process exit code, printing
// diagnostics for the failures that need them.
func exitCode(stdio *core.Stdio, cmd *cobra.Command, err error) int {
	var usageErr *core.UsageError
	var pathErr *fs.PathError

	switch {
	case err == nil:
		return core.ExitSuccess
	case errors.Is(err, core.ErrOutputClosed):
		return core.ExitSuccess
	case errors.As(err, &usageErr):
		code := core.ReportUsage(stdio, applet, usageErr.Message)
		stdio.Errorf("%s", cmd.UsageString())
		return code
	case errors.Is(err, errWrite):
		stdio.Errorf("%s: %v\n", applet, err)
		return core.ExitFailure
	case errors.As(err, &pathErr):
		return core.FileError(stdio, applet, pathErr.Path, pathErr.Err)
	default:
		stdio.Errorf("%s: %v\n", applet, err)
		return core.ExitFailure
	}
}
