package solver

import (
	"sort"

	"github.com/sirupsen/logrus"
)

// state is the accumulator threaded through one call tree of the search:
// the winning model, the chronological decision trace and the heuristic
// level. It is created per top-level call and never shared across trees.
type state struct {
	model map[string]bool
	trace []Lit
	level Heuristic
	log   logrus.FieldLogger // nil when decision logging is off
}

// decide commits a decision: the literal is appended to the trace before
// the search recurses on it.
func (st *state) decide(l Lit, kind string) {
	st.trace = append(st.trace, l)
	if st.log != nil {
		st.log.WithFields(logrus.Fields{
			"literal":  l.String(),
			"kind":     kind,
			"decision": len(st.trace),
		}).Debug("decision")
	}
}

// simplify sweeps the residue of substitution: clauses holding a true
// constant are satisfied and dropped, false constants on the survivors are
// cleared since they can never satisfy their clause. Literal sets are
// shared with the input, which is safe because they are never mutated.
func simplify(kb KB) KB {
	res := make(KB, 0, len(kb))
	for _, c := range kb {
		if c.hasTrue {
			continue
		}
		res = append(res, Clause{lits: c.lits})
	}
	return res
}

// dpll is one decision level of the search. model is the partial
// assignment accumulated on the path to this call; it is committed to
// st.model only when a branch satisfies every clause.
func dpll(kb KB, model map[string]bool, st *state) bool {
	kb = simplify(kb)

	if len(kb) == 0 { // every clause satisfied
		for name, v := range model {
			st.model[name] = v
		}
		return true
	}
	for _, c := range kb {
		if len(c.lits) == 0 { // a clause nothing can satisfy
			return false
		}
	}

	// Pure literals and unit clauses are free: assigning their own
	// polarity cannot hurt, so a single continuation suffices.
	if st.level >= HeurFree {
		if sub, ok := freebie(kb, st.level); ok {
			st.decide(sub, "free")
			return dpll(
				Substitute(sub.Name, sub.Sign, kb),
				extend(model, sub.Name, sub.Sign),
				st,
			)
		}
	}

	sub := branchLit(kb, st.level)
	st.decide(sub, "branch")
	return dpll(Substitute(sub.Name, true, kb), extend(model, sub.Name, true), st) ||
		dpll(Substitute(sub.Name, false, kb), extend(model, sub.Name, false), st)
}

// freebie selects a literal whose assignment is safe or forced. Candidates
// are ordered by the Lit total order; at HeurFreeDegree they are re-ranked
// by descending degree, the sort being stable so the base order survives
// among equal degrees.
func freebie(kb KB, level Heuristic) (Lit, bool) {
	var candidates []Lit
	for _, l := range kb.sortedLits() {
		if Pure(l, kb) || Unit(l, kb) {
			candidates = append(candidates, l)
		}
	}
	if level >= HeurFreeDegree {
		sort.SliceStable(candidates, func(i, j int) bool {
			return Degree(candidates[i], kb) > Degree(candidates[j], kb)
		})
	}
	if len(candidates) == 0 {
		return Lit{}, false
	}
	return candidates[0], true
}

// branchLit picks the literal to branch on. With HeurDegree and above the
// highest-degree literal wins, ties broken by the Lit total order. Below
// that the smallest literal is taken: a deterministic stand-in for the
// arbitrary pick, so traces are reproducible at every level.
func branchLit(kb KB, level Heuristic) Lit {
	lits := kb.sortedLits()
	if level >= HeurDegree {
		sort.SliceStable(lits, func(i, j int) bool {
			return Degree(lits[i], kb) > Degree(lits[j], kb)
		})
	}
	return lits[0]
}

// extend returns a copy of model with one more binding. Each branch of the
// search owns an independent copy, so backtracking needs no undo.
func extend(model map[string]bool, name string, value bool) map[string]bool {
	next := make(map[string]bool, len(model)+1)
	for k, v := range model {
		next[k] = v
	}
	next[name] = value
	return next
}
