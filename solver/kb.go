package solver

import (
	"sort"
	"strings"
)

// A Clause is a disjunction of literals, stored as a set: a literal appears
// at most once and order is irrelevant. Substituting a value for a variable
// collapses its literals into boolean constants; those constants are kept
// as marks on the clause until the search's simplify step sweeps them.
type Clause struct {
	lits     map[Lit]struct{}
	hasTrue  bool
	hasFalse bool
}

// NewClause builds a clause from the given literals. Duplicates collapse.
func NewClause(lits ...Lit) Clause {
	c := Clause{lits: make(map[Lit]struct{}, len(lits))}
	for _, l := range lits {
		c.lits[l] = struct{}{}
	}
	return c
}

// Len returns the number of distinct literals in the clause. Boolean
// constants left by substitution do not count.
func (c Clause) Len() int {
	return len(c.lits)
}

// Has reports whether l is one of the clause's literals.
func (c Clause) Has(l Lit) bool {
	_, ok := c.lits[l]
	return ok
}

// Lits returns the clause's literals as a fresh slice, sorted by the Lit
// total order.
func (c Clause) Lits() []Lit {
	lits := make([]Lit, 0, len(c.lits))
	for l := range c.lits {
		lits = append(lits, l)
	}
	sort.Slice(lits, func(i, j int) bool { return lits[i].Less(lits[j]) })
	return lits
}

func (c Clause) String() string {
	strs := make([]string, 0, len(c.lits)+2)
	if c.hasTrue {
		strs = append(strs, "⊤")
	}
	if c.hasFalse {
		strs = append(strs, "⊥")
	}
	for _, l := range c.Lits() {
		strs = append(strs, l.String())
	}
	return "{" + strings.Join(strs, ", ") + "}"
}

// A KB is a knowledge base: a conjunction of clauses in CNF. The slice
// order carries no meaning; it is kept for implementation simplicity.
type KB []Clause

// Lits returns the set of all literals appearing in any clause of the KB.
func (kb KB) Lits() map[Lit]struct{} {
	lits := make(map[Lit]struct{})
	for _, c := range kb {
		for l := range c.lits {
			lits[l] = struct{}{}
		}
	}
	return lits
}

// sortedLits returns the KB's literals sorted by the Lit total order.
func (kb KB) sortedLits() []Lit {
	set := kb.Lits()
	lits := make([]Lit, 0, len(set))
	for l := range set {
		lits = append(lits, l)
	}
	sort.Slice(lits, func(i, j int) bool { return lits[i].Less(lits[j]) })
	return lits
}

// Eval reports whether the model satisfies every clause of the KB, i.e.
// whether each clause contains at least one literal whose variable is bound
// to the literal's sign. Model keys are positive literals; variables with
// no binding satisfy nothing. A clause marked true by an earlier
// substitution counts as satisfied.
func (kb KB) Eval(model map[Lit]bool) bool {
	for _, c := range kb {
		if c.hasTrue {
			continue
		}
		sat := false
		for l := range c.lits {
			if v, ok := model[NewLit(l.Name)]; ok && v == l.Sign {
				sat = true
				break
			}
		}
		if !sat {
			return false
		}
	}
	return true
}

// Substitute assigns value to the variable name and returns the resulting
// KB. In every clause, each literal of that variable is replaced by the
// boolean constant (lit.Sign == value); all other literals are kept. The
// result has exactly as many clauses as the input: sweeping satisfied
// clauses and dead constants is the search's job, not Substitute's.
// Inputs are never mutated.
func Substitute(name string, value bool, kb KB) KB {
	res := make(KB, len(kb))
	for i, c := range kb {
		sub := Clause{
			lits:     make(map[Lit]struct{}, len(c.lits)),
			hasTrue:  c.hasTrue,
			hasFalse: c.hasFalse,
		}
		for l := range c.lits {
			if l.Name != name {
				sub.lits[l] = struct{}{}
			} else if l.Sign == value {
				sub.hasTrue = true
			} else {
				sub.hasFalse = true
			}
		}
		res[i] = sub
	}
	return res
}

// Pure reports whether l is a pure literal in kb: it appears somewhere and
// its negation appears nowhere. A pure literal can be assigned its own
// polarity without ever falsifying a clause.
func Pure(l Lit, kb KB) bool {
	lits := kb.Lits()
	if _, ok := lits[l]; !ok {
		return false
	}
	_, negated := lits[l.Negation()]
	return !negated
}

// Unit reports whether some clause of kb consists of exactly the single
// literal l. A unit clause forces its literal's assignment.
func Unit(l Lit, kb KB) bool {
	for _, c := range kb {
		if len(c.lits) == 1 && !c.hasTrue && !c.hasFalse && c.Has(l) {
			return true
		}
	}
	return false
}

// Degree counts the clauses of kb containing l or its negation. Variables
// of higher degree constrain more clauses and make good branching choices.
func Degree(l Lit, kb KB) int {
	neg := l.Negation()
	n := 0
	for _, c := range kb {
		if c.Has(l) || c.Has(neg) {
			n++
		}
	}
	return n
}
