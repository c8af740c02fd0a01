package formula

import (
	"fmt"
	"strings"

	"github.com/propkit/dpll/solver"
)

// auxPrefix marks the variables invented during CNF conversion.
const auxPrefix = "_aux"

// Aux reports whether name names an auxiliary variable introduced by CNF.
// Caller-defined variables should not start with "_aux".
func Aux(name string) bool {
	return strings.HasPrefix(name, auxPrefix)
}

// CNF converts f into an equisatisfiable knowledge base for the solver.
// The formula is first rewritten to negation normal form; conjunctions
// nested under a disjunction then get a fresh auxiliary variable each,
// which keeps the clause count from exploding under distribution. Models
// of the result may bind auxiliary variables; filter them with Aux.
func CNF(f Formula) solver.KB {
	cv := &converter{}
	clauses := cv.rec(f.nnf())
	kb := make(solver.KB, len(clauses))
	for i, c := range clauses {
		kb[i] = solver.NewClause(c...)
	}
	return kb
}

type converter struct {
	nbAux int
}

func (cv *converter) fresh() solver.Lit {
	cv.nbAux++
	return solver.NewLit(fmt.Sprintf("%s%d", auxPrefix, cv.nbAux))
}

func (cv *converter) rec(f Formula) [][]solver.Lit {
	switch f := f.(type) {
	case lit:
		return [][]solver.Lit{{asLit(f)}}
	case and:
		var res [][]solver.Lit
		for _, sub := range f {
			res = append(res, cv.rec(sub)...)
		}
		return res
	case or:
		var res [][]solver.Lit
		var lits []solver.Lit
		for _, sub := range f {
			switch sub := sub.(type) {
			case lit:
				lits = append(lits, asLit(sub))
			case and:
				// d stands for the whole conjunction: d implies
				// every clause it generates.
				d := cv.fresh()
				lits = append(lits, d)
				for _, sub2 := range sub {
					for _, c := range cv.rec(sub2) {
						res = append(res, append(c, d.Negation()))
					}
				}
			default:
				panic("unexpected subformula in or")
			}
		}
		res = append(res, lits)
		return res
	case trueConst: // true contributes no clause
		return nil
	case falseConst: // false is an empty clause, unsatisfiable as is
		return [][]solver.Lit{{}}
	default:
		panic("invalid NNF formula")
	}
}

func asLit(l lit) solver.Lit {
	if l.negated {
		return solver.Not(l.name)
	}
	return solver.NewLit(l.name)
}
