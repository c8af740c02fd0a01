// Package formula offers facilities to test the satisfiability of generic
// boolean formulas.
//
// The DPLL solver in the solver package expects its input in CNF, a
// conjunction of clauses where each clause is a disjunction of literals.
// Manually translating a formula to CNF is tedious and error-prone, so
// this package provides logical connectors to build arbitrary formulas,
// either programmatically (Var, Not, And, Or, Implies, Eq, Xor, Unique)
// or parsed from an infix notation (Parse). Formulas are translated to an
// equisatisfiable CNF and handed to the solver.
//
// For example:
//
//	f, err := formula.ParseString("(a -> b) & ^(a = c)")
//	...
//	model := formula.Solve(f)
//
// yields a model such as map[a:false b:false c:true], or nil for an
// unsatisfiable formula. The translation may introduce auxiliary
// variables to stay polynomial in size; Solve strips them from the model,
// and callers working with CNF directly can recognize them with Aux.
package formula
