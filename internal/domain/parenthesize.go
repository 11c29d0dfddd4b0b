package domain

import (
	"strings"

	"github.com/mouse-blink/respec/internal/rewrite"
	"github.com/mouse-blink/respec/internal/syntax"
)

// argumentParenthesesEdits returns the edits that put the arguments of call
// in parentheses directly after its selector. The rules, in order:
//
//   - a heredoc argument is never touched
//   - arguments already in call parentheses are left alone
//   - an argument starting on a later line is always wrapped, and the closing
//     parenthesis goes on its own line at the indentation of the call
//   - a parenthesized expression is joined to the selector
//   - with always, or for a sole braced hash, the arguments are wrapped
//   - otherwise an argument glued to the selector gets a separating space
func argumentParenthesesEdits(source *syntax.Source, call *syntax.Node, always bool) []rewrite.Edit {
	args := call.Arguments()
	if len(args) == 0 || call.Loc.Selector == nil {
		return nil
	}

	for _, arg := range args {
		if arg.IsVerbatim() {
			return nil
		}
	}

	selector := *call.Loc.Selector
	if call.Loc.Begin != nil && call.Loc.Begin.Begin == selector.End {
		return nil
	}

	first, last := args[0], args[len(args)-1]
	gap := syntax.NewRange(selector.End, first.Loc.Expression.Begin)
	end := syntax.Point(last.Loc.Expression.End)

	switch {
	case strings.Contains(source.Slice(gap), "\n"):
		indent := source.LineIndentation(selector.Begin)

		return []rewrite.Edit{
			rewrite.InsertAfter(selector, "("),
			rewrite.Replace(end, "\n"+indent+")"),
		}
	case len(args) == 1 && first.IsParenthesized():
		if gap.IsEmpty() {
			return nil
		}

		return []rewrite.Edit{rewrite.Remove(gap)}
	case always || (len(args) == 1 && first.HasBraces()):
		return []rewrite.Edit{
			rewrite.Replace(gap, "("),
			rewrite.Replace(end, ")"),
		}
	case gap.IsEmpty():
		return []rewrite.Edit{rewrite.InsertAfter(selector, " ")}
	default:
		return nil
	}
}
