package formula

import "github.com/propkit/dpll/solver"

// Solve tests the satisfiability of the given formula.
// f is first converted to CNF, then given to the DPLL solver at its
// highest heuristic level. The function returns a model associating
// variable names with bindings, or nil if the formula was not satisfiable.
// Only variables the search had to constrain appear in the model; any
// absent variable may take either value. Auxiliary variables introduced
// by the CNF translation are stripped.
func Solve(f Formula) map[string]bool {
	sat, m, _ := solver.Solve(CNF(f), solver.HeurFreeDegree)
	if !sat {
		return nil
	}
	model := make(map[string]bool, len(m))
	for l, v := range m {
		if !Aux(l.Name) {
			model[l.Name] = v
		}
	}
	return model
}
