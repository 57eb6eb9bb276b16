// Package cli wires the session driver to the command line.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"gridwalk/internal/interpreter"
	"gridwalk/internal/session"
)

type options struct {
	trace bool
	draw  bool
	input string
}

// NewRootCommand builds the gridwalk command.
func NewRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "gridwalk",
		Short: "Walk a robot through a rectangular room",
		Long: `gridwalk reads three lines: the room size ("5 5"), the starting
position and heading ("1 2 N") and a string of commands made of
F (forward), L (turn left) and R (turn right). It prints the final
position and heading, or the first error.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}
	cmd.Flags().BoolVarP(&opts.trace, "trace", "t", false, "print the pose after every command")
	cmd.Flags().BoolVar(&opts.draw, "draw", false, "draw the room after every command (implies --trace)")
	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "read input lines from `file` instead of stdin")
	return cmd
}

// Execute runs the root command with os.Args and prints any error.
func Execute() error {
	return execute(NewRootCommand())
}

func execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	if err != nil {
		printError(cmd.ErrOrStderr(), err)
	}
	return err
}

func run(cmd *cobra.Command, opts *options) error {
	out := cmd.OutOrStdout()
	st := newStyles(out)

	in := cmd.InOrStdin()
	if opts.input != "" {
		f, err := os.Open(opts.input)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	var observer interpreter.Observer
	var tr *tracer
	if opts.trace || opts.draw {
		fmt.Fprintln(out, "Trace activated")
		tr = &tracer{w: out, draw: opts.draw, styles: st}
		observer = tr
	}

	report, err := session.NewDriver(session.NewScanner(in), observer).Run()
	if err != nil {
		return err
	}
	if tr != nil && tr.Err() != nil {
		return tr.Err()
	}
	fmt.Fprintln(out, st.report.Render("Report:"), report)
	return nil
}

func printError(w io.Writer, err error) {
	fmt.Fprintln(w, newStyles(w).failure.Render("ERROR:"), err)
}
