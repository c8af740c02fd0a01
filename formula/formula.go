package formula

import "strings"

// A Formula is any kind of boolean formula, not necessarily in CNF. It is
// built with the Var, Not, And, Or, Implies, Eq, Xor and Unique
// constructors and can be handed to CNF or Solve.
type Formula interface {
	nnf() Formula
	String() string
	// Eval evaluates the formula under the given assignment. Variables
	// absent from the model evaluate to false.
	Eval(model map[string]bool) bool
}

// The "true" constant.
type trueConst struct{}

// True is the constant denoting a tautology.
var True Formula = trueConst{}

func (t trueConst) nnf() Formula                    { return t }
func (t trueConst) String() string                  { return "⊤" }
func (t trueConst) Eval(model map[string]bool) bool { return true }

// The "false" constant.
type falseConst struct{}

// False is the constant denoting a contradiction.
var False Formula = falseConst{}

func (f falseConst) nnf() Formula                    { return f }
func (f falseConst) String() string                  { return "⊥" }
func (f falseConst) Eval(model map[string]bool) bool { return false }

// Var generates a named boolean variable in a formula.
func Var(name string) Formula {
	return variable(name)
}

type variable string

func (v variable) nnf() Formula {
	return lit{name: string(v)}
}

func (v variable) String() string {
	return string(v)
}

func (v variable) Eval(model map[string]bool) bool {
	return model[string(v)]
}

// lit is a variable or its negation: the atoms of formulas in NNF.
type lit struct {
	name    string
	negated bool
}

func (l lit) nnf() Formula {
	return l
}

func (l lit) String() string {
	if l.negated {
		return "not(" + l.name + ")"
	}
	return l.name
}

func (l lit) Eval(model map[string]bool) bool {
	if l.negated {
		return !model[l.name]
	}
	return model[l.name]
}

// Not represents a negation of the given subformula.
func Not(f Formula) Formula {
	return not{f}
}

type not [1]Formula

func (n not) nnf() Formula {
	switch f := n[0].(type) {
	case variable:
		return lit{name: string(f), negated: true}
	case lit:
		f.negated = !f.negated
		return f
	case not:
		return f[0].nnf()
	case and:
		subs := make([]Formula, len(f))
		for i, sub := range f {
			subs[i] = not{sub}.nnf()
		}
		return or(subs).nnf()
	case or:
		subs := make([]Formula, len(f))
		for i, sub := range f {
			subs[i] = not{sub}.nnf()
		}
		return and(subs).nnf()
	case trueConst:
		return False
	case falseConst:
		return True
	default:
		panic("invalid formula type")
	}
}

func (n not) String() string {
	return "not(" + n[0].String() + ")"
}

func (n not) Eval(model map[string]bool) bool {
	return !n[0].Eval(model)
}

// And generates a conjunction of subformulas.
func And(subs ...Formula) Formula {
	return and(subs)
}

type and []Formula

func (a and) nnf() Formula {
	var res and
	for _, s := range a {
		switch nnf := s.nnf().(type) {
		case and: // nested "and"s flatten to the higher level
			res = append(res, nnf...)
		case trueConst: // true is neutral
		case falseConst:
			return False
		default:
			res = append(res, nnf)
		}
	}
	if len(res) == 1 {
		return res[0]
	}
	if len(res) == 0 {
		return True
	}
	return res
}

func (a and) String() string {
	strs := make([]string, len(a))
	for i, f := range a {
		strs[i] = f.String()
	}
	return "and(" + strings.Join(strs, ", ") + ")"
}

func (a and) Eval(model map[string]bool) bool {
	for _, s := range a {
		if !s.Eval(model) {
			return false
		}
	}
	return true
}

// Or generates a disjunction of subformulas.
func Or(subs ...Formula) Formula {
	return or(subs)
}

type or []Formula

func (o or) nnf() Formula {
	var res or
	for _, s := range o {
		switch nnf := s.nnf().(type) {
		case or: // nested "or"s flatten to the higher level
			res = append(res, nnf...)
		case falseConst: // false is neutral
		case trueConst:
			return True
		default:
			res = append(res, nnf)
		}
	}
	if len(res) == 1 {
		return res[0]
	}
	if len(res) == 0 {
		return False
	}
	return res
}

func (o or) String() string {
	strs := make([]string, len(o))
	for i, f := range o {
		strs[i] = f.String()
	}
	return "or(" + strings.Join(strs, ", ") + ")"
}

func (o or) Eval(model map[string]bool) bool {
	for _, s := range o {
		if s.Eval(model) {
			return true
		}
	}
	return false
}

// Implies indicates a subformula implies another one.
func Implies(f1, f2 Formula) Formula {
	return or{not{f1}, f2}
}

// Eq indicates a subformula is equivalent to another one.
func Eq(f1, f2 Formula) Formula {
	return and{or{not{f1}, f2}, or{f1, not{f2}}}
}

// Xor indicates exactly one of the two given subformulas is true.
func Xor(f1, f2 Formula) Formula {
	return and{or{not{f1}, not{f2}}, or{f1, f2}}
}

// Unique indicates exactly one of the given variables is true, using the
// pairwise encoding. The number of generated clauses is quadratic in the
// number of variables, which is fine at the scale this solver targets.
func Unique(vars ...string) Formula {
	forms := make([]Formula, len(vars))
	for i, v := range vars {
		forms[i] = Var(v)
	}
	res := make([]Formula, 1, 1+len(vars)*(len(vars)-1)/2)
	res[0] = Or(forms...)
	for i := 0; i < len(forms)-1; i++ {
		for j := i + 1; j < len(forms); j++ {
			res = append(res, Or(Not(forms[i]), Not(forms[j])))
		}
	}
	return And(res...)
}
