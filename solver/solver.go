package solver

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Status is the status of a problem at a given moment.
type Status byte

const (
	// Indet means the problem is not proven sat or unsat yet.
	Indet = Status(iota)
	// Sat means the problem is satisfiable.
	Sat
	// Unsat means the problem is unsatisfiable.
	Unsat
)

func (s Status) String() string {
	switch s {
	case Indet:
		return "INDETERMINATE"
	case Sat:
		return "SAT"
	case Unsat:
		return "UNSAT"
	default:
		panic("invalid status")
	}
}

// A Heuristic selects how aggressively the search prunes. Levels are
// cumulative thresholds: values above HeurFreeDegree behave like
// HeurFreeDegree, negative values like HeurNone.
type Heuristic int

const (
	// HeurNone branches exhaustively on the smallest unassigned literal.
	HeurNone Heuristic = iota
	// HeurDegree branches on the literal of highest degree first.
	HeurDegree
	// HeurFree additionally assigns pure literals and unit clauses
	// without branching, in the Lit total order.
	HeurFree
	// HeurFreeDegree ranks the pure/unit candidates by degree as well.
	HeurFreeDegree
)

// A Solver holds one satisfiability problem and the outcome of solving it.
type Solver struct {
	// Verbose makes the solver log every decision at debug level on
	// Logger. False by default.
	Verbose bool
	// Logger receives decision logs when Verbose is set. When nil, a
	// debug-level logger writing to stderr is used.
	Logger logrus.FieldLogger

	kb     KB
	level  Heuristic
	status Status
	model  map[string]bool
	trace  []Lit
}

// New makes a solver for the given knowledge base and heuristic level.
// The KB is not copied; callers must not modify it while solving.
func New(kb KB, level Heuristic) *Solver {
	return &Solver{kb: kb, level: level}
}

// Solve runs the DPLL search and returns its verdict, either Sat or
// Unsat. Calling Solve again re-runs the search from scratch.
func (s *Solver) Solve() Status {
	st := &state{
		model: make(map[string]bool),
		level: s.level,
	}
	if s.Verbose {
		st.log = s.logger()
	}
	if dpll(s.kb, map[string]bool{}, st) {
		s.status = Sat
	} else {
		s.status = Unsat
	}
	s.model = st.model
	s.trace = st.trace
	return s.status
}

// Model returns the satisfying assignment found by Solve. Keys are
// positive literals of the assigned variables; the assigned polarity is
// the value. It is an error to ask for a model before Solve has run or
// when the problem is unsatisfiable.
func (s *Solver) Model() (map[Lit]bool, error) {
	switch s.status {
	case Indet:
		return nil, errors.New("problem was not solved yet")
	case Unsat:
		return nil, errors.New("problem is unsatisfiable")
	}
	model := make(map[Lit]bool, len(s.model))
	for name, v := range s.model {
		model[NewLit(name)] = v
	}
	return model, nil
}

// Trace returns the decisions committed during the last Solve, in
// chronological order: every free simplification and every branching
// point, including branches that later failed.
func (s *Solver) Trace() []Lit {
	return s.trace
}

func (s *Solver) logger() logrus.FieldLogger {
	if s.Logger != nil {
		return s.Logger
	}
	l := logrus.New()
	l.SetLevel(logrus.DebugLevel)
	return l
}

// Solve decides the satisfiability of kb at the given heuristic level. It
// returns the verdict, the model when satisfiable (keyed by positive
// literal), and the chronological decision trace.
func Solve(kb KB, level Heuristic) (sat bool, model map[Lit]bool, trace []Lit) {
	s := New(kb, level)
	if s.Solve() != Sat {
		return false, nil, s.Trace()
	}
	model, _ = s.Model()
	return true, model, s.Trace()
}
