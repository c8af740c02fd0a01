package solver

// A Lit is a propositional literal: a named variable together with a
// polarity. Lit is a plain comparable value; two literals are equal iff
// both their name and their sign match, so a Lit can be used as a map key.
// The zero value is the positive literal of the empty name and has no
// special meaning.
type Lit struct {
	Name string
	Sign bool // true for a positive occurrence, false for a negated one
}

// NewLit returns the positive literal of the given variable name.
func NewLit(name string) Lit {
	return Lit{Name: name, Sign: true}
}

// Not returns the negative literal of the given variable name.
func Not(name string) Lit {
	return Lit{Name: name}
}

// Negation returns the literal of the same name with the opposite sign.
func (l Lit) Negation() Lit {
	return Lit{Name: l.Name, Sign: !l.Sign}
}

// Less defines a total order on literals: by name, then negative before
// positive. It is used for deterministic tie-breaking when the search
// sorts candidate literals.
func (l Lit) Less(other Lit) bool {
	if l.Name != other.Name {
		return l.Name < other.Name
	}
	return !l.Sign && other.Sign
}

func (l Lit) String() string {
	if l.Sign {
		return l.Name
	}
	return "¬" + l.Name
}
