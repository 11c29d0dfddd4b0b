package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/respec/internal/syntax"
)

func TestParseIgnoreDirective_All(t *testing.T) {
	r, ok := parseIgnoreDirective("# respec:ignore")
	require.True(t, ok)
	assert.True(t, r.all)
	assert.Nil(t, r.kinds)
}

func TestParseIgnoreDirective_Kinds(t *testing.T) {
	r, ok := parseIgnoreDirective("# respec:ignore Equality, comparison ")
	require.True(t, ok)
	assert.False(t, r.all)
	assert.Len(t, r.kinds, 2)
	assert.True(t, r.ignores(OperatorEquality))
	assert.True(t, r.ignores(OperatorComparison))
	assert.False(t, r.ignores(OperatorPatternMatch))
}

func TestParseIgnoreDirective_UnknownKind(t *testing.T) {
	for _, comment := range []string{"# respec:ignore flaky", "# respec:ignore equality, flaky"} {
		r, ok := parseIgnoreDirective(comment)
		require.True(t, ok, comment)
		assert.True(t, r.all, comment)
		assert.True(t, r.ignores(OperatorPatternMatch), comment)
	}
}

func TestParseIgnoreDirective_NotADirective(t *testing.T) {
	for _, comment := range []string{"# respec:ignored", "# regular comment", "# see respec:ignore", ""} {
		_, ok := parseIgnoreDirective(comment)
		assert.False(t, ok, comment)
	}

	r, ok := parseIgnoreDirective("#respec:ignore ,")
	require.True(t, ok)
	assert.True(t, r.all, "an empty kind list ignores everything")
}

func TestMergeIgnoreRule(t *testing.T) {
	var rule ignoreRule

	mergeIgnoreRule(&rule, ignoreRule{kinds: map[string]struct{}{"equality": {}}})
	assert.True(t, rule.ignores(OperatorEquality))

	mergeIgnoreRule(&rule, ignoreRule{all: true})
	assert.True(t, rule.all)
	assert.Nil(t, rule.kinds)

	mergeIgnoreRule(&rule, ignoreRule{kinds: map[string]struct{}{"comparison": {}}})
	assert.True(t, rule.all)
}

func TestBuildIgnoreIndex_FileHeader(t *testing.T) {
	src := "# frozen_string_literal: true\n# respec:ignore pattern-match\n\na.should =~ x # respec:ignore\n"
	tree := &syntax.Tree{Source: syntax.NewSource("spec/a_spec.rb", src), Comments: lineComments(src)}

	idx := buildIgnoreIndex(tree)

	assert.True(t, idx.file.ignores(OperatorPatternMatch))
	assert.False(t, idx.file.ignores(OperatorEquality))
	assert.True(t, idx.ignores(OperatorEquality, 4), "trailing directive covers its own line")
	assert.False(t, idx.ignores(OperatorEquality, 3))
}

func TestBuildIgnoreIndex_LineAndBlockScopes(t *testing.T) {
	src := "x\n" +
		"# respec:ignore equality\n" +
		"it do\n" +
		"  a.should == 1\n" +
		"end\n" +
		"b.should == 2\n" +
		"# respec:ignore\n" +
		"c.should == 3\n"

	begin := strings.Index(src, "it do")
	end := strings.Index(src, "end\n") + len("end")
	block := &syntax.Node{Type: syntax.TypeBlock, Loc: syntax.Loc{Expression: syntax.NewRange(begin, end)}}

	tree := &syntax.Tree{
		Source:   syntax.NewSource("spec/a_spec.rb", src),
		Root:     &syntax.Node{Type: syntax.TypeProgram, Children: []*syntax.Node{block}},
		Comments: lineComments(src),
	}

	idx := buildIgnoreIndex(tree)

	assert.True(t, idx.file.empty())
	assert.True(t, idx.ignores(OperatorEquality, 3))
	assert.True(t, idx.ignores(OperatorEquality, 4), "block body is covered")
	assert.True(t, idx.ignores(OperatorEquality, 5))
	assert.False(t, idx.ignores(OperatorComparison, 4))
	assert.False(t, idx.ignores(OperatorEquality, 6))
	assert.True(t, idx.ignores(OperatorComparison, 8), "leading directive covers the next line")
}

// ignoredSpec builds
//
//	a.should == 1 # respec:ignore
//	b.should == 2
func ignoredSpec(t *testing.T) *syntax.Tree {
	t.Helper()

	b := newTreeBuilder(t, "a.should == 1 # respec:ignore\nb.should == 2\n")

	a := b.chain(b.ident("a"), "should")
	selector := b.tok("==")
	first := send(a, "==", selector, b.lit(syntax.TypeInt, "1"))

	recv := b.chain(b.ident("b"), "should")
	selector = b.tok("==")
	second := send(recv, "==", selector, b.lit(syntax.TypeInt, "2"))

	return b.program(first, second)
}

func TestConverter_SkipsIgnoredMatchers(t *testing.T) {
	tree := ignoredSpec(t)
	converter := NewConverter()

	conversion, err := converter.Convert(tree, ConvertOptions{ParenthesizeMatcherArg: true})
	require.NoError(t, err)

	assert.Equal(t, "a.should == 1 # respec:ignore\nb.should eq(2)\n", conversion.Text)
	assert.Equal(t, 1, converter.CountOperatorMatchers(tree))
}

func TestConverter_IgnoreDirectiveOnlyInComments(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "marker in a string",
			src:  "a.should == 1; b = '# respec:ignore'\nc.should == 2\n",
			want: "a.should eq(1); b = '# respec:ignore'\nc.should eq(2)\n",
		},
		{
			name: "marker in a heredoc",
			src:  "it do\n  text = <<-END\n  # respec:ignore\n  END\n  a.should == 1\nend\n",
			want: "it do\n  text = <<-END\n  # respec:ignore\n  END\n  a.should eq(1)\nend\n",
		},
		{
			name: "marker in a comment",
			src:  "a.should == 1 # respec:ignore flaky\nc.should == 2\n",
			want: "a.should == 1 # respec:ignore flaky\nc.should eq(2)\n",
		},
		{
			name: "leading marker covers the next line",
			src:  "x = 1\n# respec:ignore\na.should == 1\nc.should == 2\n",
			want: "x = 1\n# respec:ignore\na.should == 1\nc.should eq(2)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conversion, err := NewConverter().Convert(parseSpec(t, tt.src), ConvertOptions{ParenthesizeMatcherArg: true})
			require.NoError(t, err)

			assert.Equal(t, tt.want, conversion.Text)
		})
	}
}
