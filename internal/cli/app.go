// Package cli implements the prettytable command.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// App owns CLI wiring and execution configuration.
type App struct {
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Version string

	// TerminalWidth reports the width used by --fit. It fails when
	// standard output is not a terminal.
	TerminalWidth func() (int, error)
}

// NewApp constructs an App with default settings.
func NewApp() *App {
	return &App{
		Stdin:         os.Stdin,
		Stdout:        os.Stdout,
		Stderr:        os.Stderr,
		Version:       "dev",
		TerminalWidth: stdoutWidth,
	}
}

// Execute runs the CLI with the provided args.
func (a *App) Execute(ctx context.Context, args []string) error {
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetIn(a.Stdin)
	root.SetOut(a.Stdout)
	root.SetErr(a.Stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(a.Stderr, "prettytable: %v\n", err)
		var uerr *usageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(a.Stderr, "Run 'prettytable --help' for usage.")
		}
		return err
	}
	return nil
}

// RootCommand exposes the root Cobra command for tests.
func (a *App) RootCommand() *cobra.Command {
	return newRootCmd(a)
}
