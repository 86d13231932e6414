package grammar

import "github.com/ava12/quickparse/symbol"

// Rule is one production head -> body. Body may be empty (epsilon
// production). Immutable once built; Seq is assigned by the Builder in
// creation order and used only to break ties in Less.
type Rule struct {
	Head *symbol.Construct
	Body []symbol.Symbol
	Seq  int
}

// Less implements the grammar's rule order: longer bodies sort first;
// among equal-length bodies, earlier-created rules sort first. The
// parser relies on this order to try the "most specific" alternative
// before shorter, more general ones.
func (r *Rule) Less(o *Rule) bool {
	if len(r.Body) != len(o.Body) {
		return len(r.Body) > len(o.Body)
	}
	return r.Seq < o.Seq
}

func (r *Rule) String() string {
	s := r.Head.Name() + " ->"
	if len(r.Body) == 0 {
		return s + " /"
	}
	for _, sym := range r.Body {
		s += " " + sym.String()
	}
	return s
}
