package trie

// Automaton is the state of a matcher driven through an Index by GetMatches.
// States are immutable: Step returns the state after consuming one more rune
// and leaves the receiver untouched.
//
// IsAccepted must only report true when every continuation of the input
// consumed so far matches, because GetMatches then admits the whole subtree
// without stepping further. Once IsRejected reports true it must stay true for
// every state reachable by Step.
type Automaton interface {
	IsAccepted() bool
	IsRejected() bool
	Step(r rune) Automaton
}

// AcceptAll is an Automaton accepting every key.
var AcceptAll Automaton = constant(true)

// RejectAll is an Automaton rejecting every key.
var RejectAll Automaton = constant(false)

type constant bool

func (c constant) IsAccepted() bool    { return bool(c) }
func (c constant) IsRejected() bool    { return !bool(c) }
func (c constant) Step(rune) Automaton { return c }
