package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/propkit/dpll/formula"
	"github.com/propkit/dpll/solver"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		heuristic int
		verbose   bool
		path      string
	)
	cmd := &cobra.Command{
		Use:   "dpll [formula]",
		Short: "decide the satisfiability of a boolean formula with DPLL",
		Long: `dpll parses a boolean formula, translates it to CNF and decides its
satisfiability with the DPLL procedure.

Formulas use "=" for equivalence, "->" for implication, "|" for
disjunction, "&" for conjunction and "^" for negation, e.g.:

  dpll "(a -> b) & ^(a = c)"`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := parseInput(args, path)
			if err != nil {
				return err
			}
			return solve(f, solver.Heuristic(heuristic), verbose)
		},
	}
	cmd.Flags().IntVarP(&heuristic, "heuristic", "H", int(solver.HeurFreeDegree),
		"heuristic level, 0 (none) to 3 (pure/unit elimination ranked by degree)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log decisions and print the decision trace")
	cmd.Flags().StringVarP(&path, "file", "f", "", "read the formula from a file instead of the command line")
	return cmd
}

func parseInput(args []string, path string) (formula.Formula, error) {
	if path != "" {
		r, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrapf(err, "could not open %q", path)
		}
		defer r.Close()
		f, err := formula.Parse(r)
		return f, errors.Wrapf(err, "could not parse formula in %q", path)
	}
	if len(args) != 1 {
		return nil, errors.New("expected a formula argument or -f file")
	}
	f, err := formula.ParseString(args[0])
	return f, errors.Wrap(err, "could not parse formula")
}

func solve(f formula.Formula, level solver.Heuristic, verbose bool) error {
	s := solver.New(formula.CNF(f), level)
	if verbose {
		log := logrus.New()
		log.SetLevel(logrus.DebugLevel)
		s.Verbose = true
		s.Logger = log
	}
	if s.Solve() != solver.Sat {
		fmt.Println("UNSATISFIABLE")
		return nil
	}
	model, err := s.Model()
	if err != nil {
		return err
	}
	fmt.Println("SATISFIABLE")
	names := make(sort.StringSlice, 0, len(model))
	for l := range model {
		if !formula.Aux(l.Name) {
			names = append(names, l.Name)
		}
	}
	sort.Sort(names)
	for _, name := range names {
		fmt.Printf("%s: %t\n", name, model[solver.NewLit(name)])
	}
	if verbose {
		fmt.Printf("trace: %v\n", s.Trace())
	}
	return nil
}
