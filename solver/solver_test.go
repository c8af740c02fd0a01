package solver

import (
	"fmt"
	"io"
	"math/rand"
	"sort"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var levels = []Heuristic{HeurNone, HeurDegree, HeurFree, HeurFreeDegree}

func TestSingleUnitClause(t *testing.T) {
	kb := KB{NewClause(a)}
	for _, level := range levels {
		sat, model, trace := Solve(kb, level)
		require.True(t, sat, "level %d", level)
		assert.Equal(t, map[Lit]bool{a: true}, model, "level %d", level)
		assert.Equal(t, []Lit{a}, trace, "level %d", level)
	}
}

func TestContradiction(t *testing.T) {
	kb := KB{NewClause(a), NewClause(notA)}
	for _, level := range levels {
		sat, model, trace := Solve(kb, level)
		assert.False(t, sat, "level %d", level)
		assert.Nil(t, model, "level %d", level)
		assert.NotEmpty(t, trace, "a decision is needed to refute this KB")
	}
}

func TestTwoClauses(t *testing.T) {
	kb := KB{NewClause(a, b), NewClause(notA, c)}
	for _, level := range levels {
		sat, model, _ := Solve(kb, level)
		require.True(t, sat, "level %d", level)
		assert.True(t, kb.Eval(model), "level %d: model %v does not satisfy the KB", level, model)
	}
}

func TestEmptyKB(t *testing.T) {
	for _, level := range levels {
		sat, model, trace := Solve(KB{}, level)
		require.True(t, sat, "level %d", level)
		assert.Empty(t, model, "level %d", level)
		assert.Empty(t, trace, "level %d", level)
	}
}

func TestEmptyClause(t *testing.T) {
	for _, level := range levels {
		sat, _, trace := Solve(KB{NewClause()}, level)
		assert.False(t, sat, "level %d", level)
		assert.Empty(t, trace, "an empty clause should fail before any decision")
	}
}

func TestPureLiteralGoesFirst(t *testing.T) {
	// a is pure: with free simplification it must be assigned true before
	// any branching on b.
	kb := KB{NewClause(a, b), NewClause(a, notB)}
	for _, level := range []Heuristic{HeurFree, HeurFreeDegree} {
		sat, model, trace := Solve(kb, level)
		require.True(t, sat, "level %d", level)
		require.NotEmpty(t, trace, "level %d", level)
		assert.Equal(t, a, trace[0], "level %d", level)
		assert.Equal(t, map[Lit]bool{a: true}, model, "level %d", level)
	}
}

func TestUnitPropagation(t *testing.T) {
	// Both decisions are free: a is pure and ¬b is a unit clause. The
	// candidate order follows the Lit total order, so a comes first.
	kb := KB{NewClause(notB), NewClause(a, b)}
	sat, model, trace := Solve(kb, HeurFree)
	require.True(t, sat)
	assert.Equal(t, map[Lit]bool{a: true, b: false}, model)
	assert.Equal(t, []Lit{a, notB}, trace)
}

func TestOutOfRangeLevels(t *testing.T) {
	kb := KB{NewClause(a, b), NewClause(notA, c)}
	sat3, _, trace3 := Solve(kb, HeurFreeDegree)
	sat, _, trace := Solve(kb, Heuristic(42))
	assert.Equal(t, sat3, sat)
	assert.Equal(t, trace3, trace, "levels above 3 should behave like level 3")
	sat0, _, trace0 := Solve(kb, HeurNone)
	sat, _, trace = Solve(kb, Heuristic(-1))
	assert.Equal(t, sat0, sat)
	assert.Equal(t, trace0, trace, "negative levels should behave like level 0")
}

func TestModelBeforeSolve(t *testing.T) {
	s := New(KB{NewClause(a)}, HeurNone)
	_, err := s.Model()
	assert.Error(t, err)
	require.Equal(t, Sat, s.Solve())
	model, err := s.Model()
	require.NoError(t, err)
	assert.Equal(t, map[Lit]bool{a: true}, model)
}

func TestModelOnUnsat(t *testing.T) {
	s := New(KB{NewClause(a), NewClause(notA)}, HeurFreeDegree)
	require.Equal(t, Unsat, s.Solve())
	_, err := s.Model()
	assert.Error(t, err)
}

func TestVerboseSolve(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetLevel(logrus.DebugLevel)
	s := New(KB{NewClause(a, b), NewClause(notA, c)}, HeurFreeDegree)
	s.Verbose = true
	s.Logger = log
	assert.Equal(t, Sat, s.Solve())
	assert.Len(t, s.Trace(), 2)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "INDETERMINATE", Indet.String())
	assert.Equal(t, "SAT", Sat.String())
	assert.Equal(t, "UNSAT", Unsat.String())
}

// randKB generates a random KB over nbVars variables with clauses of one
// to three literals.
func randKB(rng *rand.Rand, nbVars, nbClauses int) KB {
	kb := make(KB, nbClauses)
	for i := range kb {
		width := 1 + rng.Intn(3)
		lits := make([]Lit, width)
		for j := range lits {
			lits[j] = Lit{
				Name: fmt.Sprintf("v%02d", rng.Intn(nbVars)),
				Sign: rng.Intn(2) == 0,
			}
		}
		kb[i] = NewClause(lits...)
	}
	return kb
}

// bruteForceSat enumerates every assignment over the KB's variables.
func bruteForceSat(kb KB) bool {
	set := make(map[string]struct{})
	for l := range kb.Lits() {
		set[l.Name] = struct{}{}
	}
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	for mask := 0; mask < 1<<len(names); mask++ {
		model := make(map[Lit]bool, len(names))
		for i, name := range names {
			model[NewLit(name)] = mask&(1<<i) != 0
		}
		if kb.Eval(model) {
			return true
		}
	}
	return false
}

func TestRandomKBsAgainstBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		kb := randKB(rng, 2+rng.Intn(5), 1+rng.Intn(12))
		expected := bruteForceSat(kb)
		for _, level := range levels {
			sat, model, _ := Solve(kb, level)
			require.Equal(t, expected, sat, "instance %d, level %d: %v", i, level, kb)
			if sat {
				require.True(t, kb.Eval(model),
					"instance %d, level %d: model %v does not satisfy %v", i, level, model, kb)
			}
		}
	}
}

func ExampleSolve() {
	kb := KB{
		NewClause(NewLit("a"), NewLit("b")),
		NewClause(Not("a"), NewLit("c")),
	}
	sat, model, _ := Solve(kb, HeurFreeDegree)
	fmt.Println(sat)
	fmt.Println(model[NewLit("a")], model[NewLit("b")])
	// Output:
	// true
	// false true
}

func ExampleSolver() {
	kb := KB{NewClause(NewLit("a")), NewClause(Not("a"))}
	s := New(kb, HeurFreeDegree)
	fmt.Println(s.Solve())
	// Output: UNSAT
}
