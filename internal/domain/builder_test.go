package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/respec/internal/model"
	"github.com/mouse-blink/respec/internal/syntax"
)

// treeBuilder assembles syntax trees by hand. Tokens must be requested in
// source order: each tok call searches from the end of the previous one.
type treeBuilder struct {
	t      *testing.T
	src    string
	cursor int
}

func newTreeBuilder(t *testing.T, src string) *treeBuilder {
	t.Helper()

	return &treeBuilder{t: t, src: src}
}

func (b *treeBuilder) tok(text string) syntax.Range {
	b.t.Helper()

	i := strings.Index(b.src[b.cursor:], text)
	require.GreaterOrEqual(b.t, i, 0, "token %q not found after offset %d in %q", text, b.cursor, b.src)

	r := syntax.NewRange(b.cursor+i, b.cursor+i+len(text))
	b.cursor = r.End

	return r
}

func (b *treeBuilder) lit(typ syntax.Type, text string) *syntax.Node {
	b.t.Helper()

	return &syntax.Node{Type: typ, Value: text, Loc: syntax.Loc{Expression: b.tok(text)}}
}

// ident builds a receiver-less call without arguments, such as `subject`.
func (b *treeBuilder) ident(name string) *syntax.Node {
	b.t.Helper()

	return send(nil, name, b.tok(name))
}

// chain builds `receiver.name`.
func (b *treeBuilder) chain(receiver *syntax.Node, name string) *syntax.Node {
	b.t.Helper()

	dot := b.tok(".")

	return withDot(send(receiver, name, b.tok(name)), dot)
}

func (b *treeBuilder) hash(text string) *syntax.Node {
	b.t.Helper()

	r := b.tok(text)
	open := syntax.NewRange(r.Begin, r.Begin+1)
	closing := syntax.NewRange(r.End-1, r.End)

	return &syntax.Node{Type: syntax.TypeHash, Loc: syntax.Loc{Expression: r, Begin: &open, End: &closing}}
}

func (b *treeBuilder) heredocOpener(opener string, interpolated bool) *syntax.Node {
	b.t.Helper()

	typ := syntax.TypeStr
	if interpolated {
		typ = syntax.TypeDstr
	}

	return &syntax.Node{Type: typ, Loc: syntax.Loc{Expression: b.tok(opener)}}
}

func (b *treeBuilder) heredocBody(heredoc *syntax.Node, body, terminator string) {
	b.t.Helper()

	bodyRange := b.tok(body)
	endRange := b.tok(terminator)
	heredoc.Loc.HeredocBody = &bodyRange
	heredoc.Loc.HeredocEnd = &endRange
}

func (b *treeBuilder) program(exprs ...*syntax.Node) *syntax.Tree {
	return &syntax.Tree{
		Source: syntax.NewSource("spec/example_spec.rb", b.src),
		Root: &syntax.Node{
			Type:     syntax.TypeProgram,
			Children: exprs,
			Loc:      syntax.Loc{Expression: syntax.NewRange(0, len(b.src))},
		},
		Comments: lineComments(b.src),
	}
}

// lineComments treats everything from a `# ` to the end of its line as a
// comment. Fixtures keep `#` out of strings.
func lineComments(src string) []syntax.Range {
	var comments []syntax.Range

	offset := 0
	for _, line := range strings.SplitAfter(src, "\n") {
		if i := strings.Index(line, "# "); i >= 0 {
			comments = append(comments, syntax.NewRange(offset+i, offset+len(strings.TrimRight(line, "\n"))))
		}

		offset += len(line)
	}

	return comments
}

func send(receiver *syntax.Node, name string, selector syntax.Range, args ...*syntax.Node) *syntax.Node {
	begin := selector.Begin
	if receiver != nil {
		begin = receiver.Loc.Expression.Begin
	}

	end := selector.End
	if len(args) > 0 {
		end = max(end, args[len(args)-1].Loc.Expression.End)
	}

	return &syntax.Node{
		Type:     syntax.TypeSend,
		Value:    name,
		Children: append([]*syntax.Node{receiver}, args...),
		Loc:      syntax.Loc{Expression: syntax.NewRange(begin, end), Selector: &selector},
	}
}

func withDot(n *syntax.Node, dot syntax.Range) *syntax.Node {
	n.Loc.Dot = &dot

	return n
}

func withParens(n *syntax.Node, open, closing syntax.Range) *syntax.Node {
	n.Loc.Begin = &open
	n.Loc.End = &closing
	n.Loc.Expression.End = closing.End

	return n
}

func group(open, closing syntax.Range, inner *syntax.Node) *syntax.Node {
	return &syntax.Node{
		Type:     syntax.TypeBegin,
		Children: []*syntax.Node{inner},
		Loc:      syntax.Loc{Expression: syntax.NewRange(open.Begin, closing.End), Begin: &open, End: &closing},
	}
}

// shouldOperator builds `subject.should <op> <arg>`.
func shouldOperator(t *testing.T, src, op string, arg func(b *treeBuilder) *syntax.Node) *syntax.Tree {
	t.Helper()

	b := newTreeBuilder(t, src)
	should := b.chain(b.ident("subject"), "should")
	selector := b.tok(op)

	return b.program(send(should, op, selector, arg(b)))
}

// shouldMatcher builds `subject.<entry> <matcher>` where the matcher is the
// argument of the entry call.
func shouldMatcher(t *testing.T, src, entry string, matcher func(b *treeBuilder) *syntax.Node) *syntax.Tree {
	t.Helper()

	b := newTreeBuilder(t, src)
	subject := b.ident("subject")
	dot := b.tok(".")
	selector := b.tok(entry)

	return b.program(withDot(send(subject, entry, selector, matcher(b)), dot))
}

// beOperator builds the matcher `be <op> <arg>`.
func beOperator(op string, arg func(b *treeBuilder) *syntax.Node) func(b *treeBuilder) *syntax.Node {
	return func(b *treeBuilder) *syntax.Node {
		be := b.ident("be")
		selector := b.tok(op)

		return send(be, op, selector, arg(b))
	}
}

// namedMatcher builds `name arg, ...` or, with parens, `name(arg, ...)`.
func namedMatcher(name string, parens bool, args ...func(b *treeBuilder) *syntax.Node) func(b *treeBuilder) *syntax.Node {
	return func(b *treeBuilder) *syntax.Node {
		selector := b.tok(name)

		var open syntax.Range
		if parens {
			open = b.tok("(")
		}

		built := make([]*syntax.Node, 0, len(args))
		for i, arg := range args {
			if i > 0 {
				b.tok(",")
			}

			built = append(built, arg(b))
		}

		n := send(nil, name, selector, built...)
		if parens {
			n = withParens(n, open, b.tok(")"))
		}

		return n
	}
}

func literal(typ syntax.Type, text string) func(b *treeBuilder) *syntax.Node {
	return func(b *treeBuilder) *syntax.Node {
		return b.lit(typ, text)
	}
}

func intArg(text string) func(b *treeBuilder) *syntax.Node {
	return literal(syntax.TypeInt, text)
}

// heredocArg builds a heredoc argument, optionally followed by `.gsub('foo', 'bar')`.
func heredocArg(interpolated, chained bool, body string) func(b *treeBuilder) *syntax.Node {
	return func(b *treeBuilder) *syntax.Node {
		heredoc := b.heredocOpener("<<-END", interpolated)
		arg := heredoc

		if chained {
			dot := b.tok(".")
			selector := b.tok("gsub")
			open := b.tok("(")
			from := b.lit(syntax.TypeStr, "'foo'")
			b.tok(",")
			to := b.lit(syntax.TypeStr, "'bar'")
			arg = withParens(withDot(send(heredoc, "gsub", selector, from, to), dot), open, b.tok(")"))
		}

		b.heredocBody(heredoc, body, "END")

		return arg
	}
}

func locateOne(t *testing.T, tree *syntax.Tree) *MatcherNode {
	t.Helper()

	var found []*MatcherNode
	for located := range Locate(tree.Root) {
		found = append(found, located)
	}

	require.Len(t, found, 1)

	return found[0]
}

type fakeOracle map[syntax.NodeID]m.Observation

func (o fakeOracle) Lookup(id syntax.NodeID) (m.Observation, bool) {
	observation, ok := o[id]

	return observation, ok
}
