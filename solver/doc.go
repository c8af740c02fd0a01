/*
Package solver decides the satisfiability of a propositional knowledge base
in conjunctive normal form, using the classic DPLL backtracking procedure.

A knowledge base is a conjunction of clauses, each clause a set of literals.
Literals are named variables with a polarity:

	a := solver.NewLit("a")
	b := solver.NewLit("b")
	kb := solver.KB{
		solver.NewClause(a, b),
		solver.NewClause(a.Negation(), solver.NewLit("c")),
	}

The simplest way to solve a problem is the package-level Solve function,
which returns the verdict, a model when one exists, and the ordered trace
of decisions the search committed to:

	sat, model, trace := solver.Solve(kb, solver.HeurFreeDegree)

Alternatively, a Solver value gives access to the same search with a
gophersat-like surface:

	s := solver.New(kb, solver.HeurFreeDegree)
	if s.Solve() == solver.Sat {
		m, _ := s.Model()
		fmt.Println(m)
	}

The Heuristic argument selects how aggressively the search prunes:

	HeurNone        exhaustive branching only
	HeurDegree      branch on the highest-degree variable first
	HeurFree        additionally eliminate pure literals and unit clauses
	HeurFreeDegree  rank pure/unit candidates by degree as well

All four settings return the same verdict; they differ only in how many
decisions the search needs and therefore in the trace.

This is a reference solver: it favors clarity over raw speed and explores
up to 2^V assignments in the worst case. It has no clause learning, no
restarts, and no incremental interface.
*/
package solver
