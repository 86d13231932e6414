package symbol

// Dispatch delivers exactly one of the two callbacks depending on s's
// dynamic variant. It is the shared mechanism used by the parser and the
// typed interpreter; a Symbol of any other variant makes it panic
// instead of being silently skipped.
func Dispatch(s Symbol, onConstruct func(*Construct), onToken func(*Token)) {
	switch v := s.(type) {
	case *Construct:
		onConstruct(v)
	case *Token:
		onToken(v)
	default:
		panic("symbol: unknown Symbol variant")
	}
}
