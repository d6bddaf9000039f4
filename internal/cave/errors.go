package cave

import "fmt"

// EngineError is a fatal, assertion-style engine failure (spec.md §7):
// an element value the scan switch cannot classify. It is returned
// from Iterate rather than panicking through the caller's control
// path, per spec.md §7's "surface as a fatal engine error... unless
// the caller opts in."
type EngineError struct {
	X, Y    int
	Element Element
	Msg     string
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("cave: %s at (%d,%d): element=%d", e.Msg, e.X, e.Y, e.Element)
}

// ParseError models the "Invalid input" kind of spec.md §7: malformed
// BDCFF, an unknown element name, a truncated binary dump. The engine
// core itself never returns one (it only ever accepts a well-formed
// CaveStored); this type exists for the BDCFF/legacy-binary loading
// layer spec.md §6 describes, which is otherwise out of scope here.
type ParseError struct {
	Line    int
	Section string
	Msg     string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in [%s] at line %d: %s", e.Section, e.Line, e.Msg)
}
