package domain

import (
	"github.com/mouse-blink/respec/internal/syntax"
)

// IsDynamicAnalysisTarget reports whether node is the argument of an
// operator matcher whose conversion depends on the argument's runtime type,
// such as `variable` in `subject.should =~ variable`. ancestors are node's
// ancestors, outermost first, as yielded by syntax.Walk.
func IsDynamicAnalysisTarget(node *syntax.Node, ancestors []*syntax.Node) bool {
	if len(ancestors) == 0 || node.Is(syntax.TypeRegexp, syntax.TypeArray) {
		return false
	}

	operator := ancestors[len(ancestors)-1]
	if !operator.Is(syntax.TypeSend) || operator.Loc.Selector == nil {
		return false
	}

	if kind, ok := ClassifyOperator(operator.Value); !ok || kind != OperatorPatternMatch {
		return false
	}

	args := operator.Arguments()
	if len(args) != 1 || args[0] != node {
		return false
	}

	receiver := operator.Receiver()
	if isEntry(receiver) {
		return true
	}

	if !receiver.IsBareCall(beMethod) || len(ancestors) < 2 {
		return false
	}

	entry := ancestors[len(ancestors)-2]
	entryArgs := entry.Arguments()

	return len(entryArgs) > 0 && entryArgs[0] == operator &&
		(isShouldCall(entry) || (entry.Value == notMethod && isShouldCall(entry.Receiver())))
}

// DynamicAnalysisTargets returns every node in tree for which
// IsDynamicAnalysisTarget holds, in source order.
func DynamicAnalysisTargets(tree *syntax.Tree) []*syntax.Node {
	var targets []*syntax.Node

	for n, ancestors := range syntax.Walk(tree.Root) {
		if IsDynamicAnalysisTarget(n, ancestors) {
			targets = append(targets, n)
		}
	}

	return targets
}
