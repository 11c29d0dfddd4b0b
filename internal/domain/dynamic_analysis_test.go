package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/respec/internal/syntax"
)

func findNode(t *testing.T, tree *syntax.Tree, text string) (*syntax.Node, []*syntax.Node) {
	t.Helper()

	for n, ancestors := range syntax.Walk(tree.Root) {
		if tree.Source.Slice(n.Loc.Expression) == text {
			return n, append([]*syntax.Node(nil), ancestors...)
		}
	}

	require.Failf(t, "node not found", "%q", text)

	return nil, nil
}

func TestIsDynamicAnalysisTarget(t *testing.T) {
	tests := []struct {
		name string
		tree func(t *testing.T) *syntax.Tree
		node string
		want bool
	}{
		{
			name: "variable after should",
			tree: func(t *testing.T) *syntax.Tree {
				return shouldOperator(t, "subject.should =~ variable", "=~", literal(syntax.TypeLvar, "variable"))
			},
			node: "variable",
			want: true,
		},
		{
			name: "variable after be",
			tree: func(t *testing.T) *syntax.Tree {
				return shouldMatcher(t, "subject.should be =~ variable", "should",
					beOperator("=~", literal(syntax.TypeLvar, "variable")))
			},
			node: "variable",
			want: true,
		},
		{
			name: "regexp",
			tree: func(t *testing.T) *syntax.Tree {
				return shouldOperator(t, "subject.should =~ /pattern/", "=~", literal(syntax.TypeRegexp, "/pattern/"))
			},
			node: "/pattern/",
			want: false,
		},
		{
			name: "array",
			tree: func(t *testing.T) *syntax.Tree {
				return shouldOperator(t, "subject.should =~ [1, 2]", "=~", literal(syntax.TypeArray, "[1, 2]"))
			},
			node: "[1, 2]",
			want: false,
		},
		{
			name: "equality argument",
			tree: func(t *testing.T) *syntax.Tree {
				return shouldOperator(t, "subject.should == variable", "==", literal(syntax.TypeLvar, "variable"))
			},
			node: "variable",
			want: false,
		},
		{
			name: "subject of the expectation",
			tree: func(t *testing.T) *syntax.Tree {
				return shouldOperator(t, "subject.should =~ variable", "=~", literal(syntax.TypeLvar, "variable"))
			},
			node: "subject",
			want: false,
		},
		{
			name: "pattern match outside an expectation",
			tree: func(t *testing.T) *syntax.Tree {
				b := newTreeBuilder(t, "text =~ variable")
				text := b.lit(syntax.TypeLvar, "text")
				selector := b.tok("=~")

				return b.program(send(text, "=~", selector, b.lit(syntax.TypeLvar, "variable")))
			},
			node: "variable",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := tt.tree(t)
			node, ancestors := findNode(t, tree, tt.node)

			assert.Equal(t, tt.want, IsDynamicAnalysisTarget(node, ancestors))
		})
	}
}

func TestDynamicAnalysisTargets(t *testing.T) {
	b := newTreeBuilder(t, "a.should =~ items\nb.should =~ /x/\nc.should =~ other\n")

	var exprs []*syntax.Node

	for _, recv := range []string{"a", "b", "c"} {
		should := b.chain(b.ident(recv), "should")
		selector := b.tok("=~")

		var arg *syntax.Node

		switch recv {
		case "a":
			arg = b.lit(syntax.TypeLvar, "items")
		case "b":
			arg = b.lit(syntax.TypeRegexp, "/x/")
		default:
			arg = b.lit(syntax.TypeLvar, "other")
		}

		exprs = append(exprs, send(should, "=~", selector, arg))
	}

	tree := b.program(exprs...)

	targets := DynamicAnalysisTargets(tree)
	require.Len(t, targets, 2)
	assert.Equal(t, "items", tree.Source.Slice(targets[0].Loc.Expression))
	assert.Equal(t, "other", tree.Source.Slice(targets[1].Loc.Expression))
}

func TestRequiresRuntimeTypeInfo_MatchesTargets(t *testing.T) {
	src := "it do\n" +
		"  a.should =~ items\n" +
		"  b.should =~ /x/\n" +
		"  c.should =~ [1]\n" +
		"  d.should == items\n" +
		"  e.should be =~ other\n" +
		"end\n"
	tree := parseSpec(t, src)

	targets := make(map[syntax.NodeID]bool)
	for _, n := range DynamicAnalysisTargets(tree) {
		targets[tree.Source.ID(n)] = true
	}

	require.Len(t, targets, 2)

	matchers := 0
	for located := range Locate(tree.Root) {
		om := NewOperatorMatcher(tree.Source, located, nil)
		if _, ok := om.Kind(); !ok {
			continue
		}

		matchers++
		arg := located.Matcher.Arguments()[0]
		assert.Equal(t, targets[tree.Source.ID(arg)], om.RequiresRuntimeTypeInfo(), tree.Source.Slice(located.Matcher.Loc.Expression))
	}

	assert.Equal(t, 5, matchers)
}
