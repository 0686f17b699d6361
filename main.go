package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/marcodamonte/concepts/swap-resolution/scenario"
	"github.com/marcodamonte/concepts/swap-resolution/swap"
)

// Each section shows one tier of swap resolution; the last one runs the
// scenario table.
//
// Run:
//
//	go run .
//	go run . --verbose
//	go run . --scenarios cases.yaml
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	scenarios string
	verbose   bool
	noColor   bool
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "swapdemo",
		Short: "Show which swap implementation wins for each kind of value",
		Long: `swapdemo swaps ints, strings, growable text and fixed-size containers
through a resolver that prefers an exact overload, then a container
specialization, then the generic copy-based swap.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.scenarios, "scenarios", "", "YAML file with swap cases (replaces the built-in ones)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log every dispatch, not only the first resolution per type")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable coloured section banners")
	return cmd
}

func run(stdout, stderr io.Writer, opts options) error {
	cases := scenario.Default()
	if opts.scenarios != "" {
		f, err := scenario.Load(opts.scenarios)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return err
		}
		cases = f
	}

	logger := log.New(stderr, "", log.LstdFlags|log.Lmicroseconds)
	d := &demo{
		out:   stdout,
		color: colorEnabled(stdout, opts.noColor),
		r:     swap.NewResolver(swap.Config{Logger: logger, Verbose: opts.verbose}),
	}

	failed := 0
	sections := []struct {
		title string
		fn    func() error
	}{
		{"Generic tier — ints copied through a temporary", d.demoInts},
		{"Exact tier — string and Text", d.demoStrings},
		{"Specialized tier — Triple[int]", d.demoTripleInts},
		{"Specialized tier — Triple[string]", d.demoTripleStrings},
		{"Generic tier — non-generic Labels", d.demoLabels},
		{"Length violation — four values into a Triple", d.demoLengthViolation},
		{"Registering an exact overload", d.demoRegisterExact},
		{"Scenario table", func() error { return d.demoScenarios(cases.Cases) }},
	}
	for _, s := range sections {
		if d.runSection(s.title, s.fn) {
			failed++
		}
	}

	m := d.r.Metrics()
	fmt.Fprintf(stdout, "\n  swaps by tier: exact=%d specialized=%d generic=%d\n", m.Exact, m.Specialized, m.Generic)

	if failed > 0 {
		err := fmt.Errorf("%d section(s) failed", failed)
		fmt.Fprintln(stderr, err)
		return err
	}
	return nil
}

// runSection prints the banner and runs fn, reporting anything it returns or
// panics with. A length violation is a known outcome and is only reported;
// any other error or panic counts as a failure.
func (d *demo) runSection(title string, fn func() error) (failed bool) {
	d.section(title)

	defer func() {
		if rec := recover(); rec != nil {
			fmt.Fprintf(d.out, "  ✗ unknown failure: %v\n", rec)
			failed = true
		}
	}()

	err := fn()
	var lenErr *swap.LengthError
	switch {
	case err == nil:
		return false
	case errors.As(err, &lenErr):
		fmt.Fprintf(d.out, "  ✗ length violation: %d values for capacity %d (%v)\n", lenErr.Got, lenErr.Max, err)
		return false
	default:
		fmt.Fprintf(d.out, "  ✗ unknown error: %v\n", err)
		return true
	}
}
