package domain

import (
	"errors"
	"fmt"

	m "github.com/mouse-blink/respec/internal/model"
	"github.com/mouse-blink/respec/internal/rewrite"
	"github.com/mouse-blink/respec/internal/syntax"
)

// ErrNotOperatorMatcher is returned when a conversion is requested for a
// matcher that does not classify as an operator matcher.
var ErrNotOperatorMatcher = errors.New("not an operator matcher")

// Oracle answers what an instrumented test run observed about a node.
// Implementations must be safe for concurrent lookups.
type Oracle interface {
	Lookup(id syntax.NodeID) (m.Observation, bool)
}

// OperatorMatcher converts one located expectation written with an operator
// (`should == 1`) into its explicit matcher form (`should eq(1)`).
// It never mutates the tree; changes are applied to a rewrite.Buffer.
type OperatorMatcher struct {
	source *syntax.Source
	node   *MatcherNode
	oracle Oracle

	kind       OperatorKind
	classified bool
	records    []m.Record
}

// NewOperatorMatcher binds a matcher to one located expectation. oracle may
// be nil.
func NewOperatorMatcher(source *syntax.Source, node *MatcherNode, oracle Oracle) *OperatorMatcher {
	om := &OperatorMatcher{source: source, node: node, oracle: oracle}
	om.kind, om.classified = om.classify()

	return om
}

func (om *OperatorMatcher) classify() (OperatorKind, bool) {
	n := om.node.Matcher
	if !n.Is(syntax.TypeSend) || n.Loc.Selector == nil || len(n.Arguments()) != 1 {
		return 0, false
	}

	kind, ok := ClassifyOperator(n.Value)
	if !ok {
		return 0, false
	}

	receiver := n.Receiver()
	if receiver == nil || (!receiver.IsBareCall(beMethod) && receiver != om.node.Should && !isEntry(receiver)) {
		return 0, false
	}

	return kind, true
}

// Kind returns the operator kind, or false when the matcher is not written
// with a convertible operator.
func (om *OperatorMatcher) Kind() (OperatorKind, bool) {
	return om.kind, om.classified
}

// MethodName returns the method actually invoked by the matcher: the
// operator for operator matchers, the matcher name otherwise. Converter does
// not need it; it is there for callers inspecting matchers one at a time.
func (om *OperatorMatcher) MethodName() string {
	return om.node.Matcher.MethodName()
}

// Node returns the located expectation.
func (om *OperatorMatcher) Node() *MatcherNode {
	return om.node
}

// Records returns the conversions applied so far.
func (om *OperatorMatcher) Records() []m.Record {
	return om.records
}

// RequiresRuntimeTypeInfo reports whether the conversion depends on what the
// argument evaluates to at runtime. It agrees with IsDynamicAnalysisTarget
// on the matcher's argument.
func (om *OperatorMatcher) RequiresRuntimeTypeInfo() bool {
	if !om.classified || om.kind != OperatorPatternMatch {
		return false
	}

	return !om.argument().Is(syntax.TypeRegexp, syntax.TypeArray)
}

func (om *OperatorMatcher) argument() *syntax.Node {
	return om.node.Matcher.Arguments()[0]
}

// be returns the `be` placeholder the operator is called on, or nil.
func (om *OperatorMatcher) be() *syntax.Node {
	if receiver := om.node.Matcher.Receiver(); receiver.IsBareCall(beMethod) {
		return receiver
	}

	return nil
}

// CorrectOperator rewrites the operator into its explicit matcher form.
// Either every edit is applied and one record is added, or nothing changes.
func (om *OperatorMatcher) CorrectOperator(buf *rewrite.Buffer, parenthesizeArg bool) error {
	if !om.classified {
		return fmt.Errorf("%s: %w", om.source.Slice(om.node.Matcher.Loc.Expression), ErrNotOperatorMatcher)
	}

	if om.argument().IsVerbatim() {
		return nil
	}

	var (
		edits  []rewrite.Edit
		record *m.Record
	)

	switch om.kind {
	case OperatorEquality:
		edits = om.convertToMethod("eq", parenthesizeArg)
		record = &m.Record{OriginalSyntax: "== expected", ConvertedSyntax: "eq(expected)"}
	case OperatorComparison:
		edits = om.prefixWithBe()
		if edits != nil {
			op := om.node.Matcher.Value
			record = &m.Record{OriginalSyntax: op + " expected", ConvertedSyntax: "be " + op + " expected"}
		}
	case OperatorPatternMatch:
		method := om.patternMatchMethod()
		edits = om.convertToMethod(method, parenthesizeArg)
		record = patternMatchRecord(om.argument(), method)
	default:
		panic(fmt.Sprintf("unhandled operator kind %s", om.kind))
	}

	if len(edits) == 0 {
		return nil
	}

	if err := buf.Apply(edits...); err != nil {
		return fmt.Errorf("convert %s at line %d: %w",
			om.node.Matcher.Value, om.source.Line(om.node.Matcher.Loc.Expression.Begin), err)
	}

	if record != nil {
		om.records = append(om.records, *record)
	}

	return nil
}

// Parenthesize wraps the matcher's arguments in parentheses right after the
// method name. Without always, only arguments that would not parse
// otherwise are wrapped. CorrectOperator already does this for converted
// matchers; Parenthesize is for callers fixing up named matchers.
func (om *OperatorMatcher) Parenthesize(buf *rewrite.Buffer, always bool) error {
	edits := argumentParenthesesEdits(om.source, om.node.Matcher, always)
	if len(edits) == 0 {
		return nil
	}

	if err := buf.Apply(edits...); err != nil {
		return fmt.Errorf("parenthesize %s: %w", om.node.Matcher.MethodName(), err)
	}

	return nil
}

// convertToMethod replaces the operator, and the `be` before it, with
// method and fixes the argument boundary.
func (om *OperatorMatcher) convertToMethod(method string, parenthesizeArg bool) []rewrite.Edit {
	n := om.node.Matcher
	selector := *n.Loc.Selector

	var edits []rewrite.Edit

	if be := om.be(); be != nil {
		edits = append(edits, rewrite.Remove(syntax.NewRange(be.Loc.Expression.Begin, selector.Begin)))
	} else {
		edits = append(edits, om.separateFromReceiver(" ")...)
	}

	edits = append(edits, rewrite.Replace(selector, method))

	return append(edits, argumentParenthesesEdits(om.source, n, parenthesizeArg)...)
}

// prefixWithBe inserts `be` before a comparison operator. It returns nil
// when `be` is already there.
func (om *OperatorMatcher) prefixWithBe() []rewrite.Edit {
	if om.be() != nil {
		return nil
	}

	n := om.node.Matcher
	if n.Loc.Dot != nil || n.Receiver().Loc.Expression.End == n.Loc.Selector.Begin {
		return om.separateFromReceiver(" be ")
	}

	return []rewrite.Edit{rewrite.InsertBefore(*n.Loc.Selector, "be ")}
}

// separateFromReceiver makes sep the text between the expectation and the
// operator when they are joined by a dot or nothing at all.
func (om *OperatorMatcher) separateFromReceiver(sep string) []rewrite.Edit {
	n := om.node.Matcher
	selector := *n.Loc.Selector
	between := syntax.NewRange(n.Receiver().Loc.Expression.End, selector.Begin)

	switch {
	case n.Loc.Dot != nil:
		return []rewrite.Edit{rewrite.Replace(between, sep)}
	case between.IsEmpty():
		return []rewrite.Edit{rewrite.InsertBefore(selector, sep)}
	default:
		return nil
	}
}

func (om *OperatorMatcher) patternMatchMethod() string {
	arg := om.argument()

	switch {
	case arg.Is(syntax.TypeArray):
		return "match_array"
	case arg.Is(syntax.TypeRegexp):
		return "match"
	case om.oracle == nil:
		return "match"
	}

	if observed, ok := om.oracle.Lookup(om.source.ID(arg)); ok && observed.ArrayLike() {
		return "match_array"
	}

	return "match"
}

// patternMatchRecord returns the record for a literal argument. Conversions
// decided by runtime observations are not recorded.
func patternMatchRecord(arg *syntax.Node, method string) *m.Record {
	switch {
	case arg.Is(syntax.TypeArray):
		return &m.Record{OriginalSyntax: "=~ [1, 2]", ConvertedSyntax: method + "([1, 2])"}
	case arg.Is(syntax.TypeRegexp):
		return &m.Record{OriginalSyntax: "=~ /pattern/", ConvertedSyntax: method + "(/pattern/)"}
	default:
		return nil
	}
}
