package domain

import (
	"iter"
	"slices"

	"github.com/mouse-blink/respec/internal/syntax"
)

const (
	shouldMethod    = "should"
	shouldNotMethod = "should_not"
	notMethod       = "not"
	beMethod        = "be"
)

// MatcherNode is a located expectation: the `should` call and the matcher
// expression it asserts with.
type MatcherNode struct {
	// Should is the `should`/`should_not` call.
	Should *syntax.Node
	// Matcher is the expression passed to, or called on, the expectation.
	Matcher *syntax.Node
	// Negative is set for `should_not` and `should.not`.
	Negative bool
	// Ancestors of Matcher, outermost first.
	Ancestors []*syntax.Node
}

// Locate returns every expectation under root in depth-first source order.
// Subtrees that are not shaped like an expectation are skipped.
func Locate(root *syntax.Node) iter.Seq[*MatcherNode] {
	return func(yield func(*MatcherNode) bool) {
		for n, ancestors := range syntax.Walk(root) {
			if !isShouldCall(n) {
				continue
			}

			matcher, ok := locateMatcher(n, ancestors)
			if !ok {
				continue
			}

			if !yield(matcher) {
				return
			}
		}
	}
}

func isShouldCall(n *syntax.Node) bool {
	return n.Is(syntax.TypeSend) && (n.Value == shouldMethod || n.Value == shouldNotMethod)
}

// locateMatcher accepts the shapes
//
//	subject.should matcher          (matcher is the argument)
//	subject.should <op> arg         (the operator call wraps the should call)
//	subject.should.not matcher
//	subject.should.not <op> arg
func locateMatcher(should *syntax.Node, ancestors []*syntax.Node) (*MatcherNode, bool) {
	located := &MatcherNode{
		Should:   should,
		Negative: should.Value == shouldNotMethod,
	}

	entry := should
	path := slices.Clone(ancestors)

	if len(should.Arguments()) == 0 {
		if parent := syntax.Parent(path); parent.Is(syntax.TypeSend) && parent.Value == notMethod &&
			parent.Receiver() == should && should.Value == shouldMethod {
			entry = parent
			path = path[:len(path)-1]
			located.Negative = true
		}
	}

	if args := entry.Arguments(); len(args) > 0 {
		located.Matcher = args[0]
		located.Ancestors = append(path, entry)

		return located, true
	}

	parent := syntax.Parent(path)
	if !parent.Is(syntax.TypeSend) || parent.Receiver() != entry || len(parent.Arguments()) == 0 {
		return nil, false
	}

	located.Matcher = parent
	located.Ancestors = path[:len(path)-1]

	return located, true
}

// isEntry reports whether n is an argument-less `should`, `should_not` or
// `should.not` call, the receiver an operator matcher is called on.
func isEntry(n *syntax.Node) bool {
	if !n.Is(syntax.TypeSend) || len(n.Arguments()) > 0 {
		return false
	}

	if isShouldCall(n) {
		return true
	}

	receiver := n.Receiver()

	return n.Value == notMethod && receiver.Is(syntax.TypeSend) && receiver.Value == shouldMethod &&
		len(receiver.Arguments()) == 0
}
