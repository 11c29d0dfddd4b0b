package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/respec/internal/rewrite"
	"github.com/mouse-blink/respec/internal/syntax"
)

func TestOperatorMatcher_Parenthesize(t *testing.T) {
	str := literal(syntax.TypeStr, "'string'")

	tests := []struct {
		name   string
		src    string
		always bool
		args   []func(b *treeBuilder) *syntax.Node
		parens bool
		method string
		want   string
	}{
		{
			name:   "already parenthesized",
			src:    "subject.should eq(1)",
			always: true,
			args:   []func(b *treeBuilder) *syntax.Node{intArg("1")},
			parens: true,
			method: "eq",
			want:   "subject.should eq(1)",
		},
		{
			name:   "always",
			src:    "subject.should eq 1",
			always: true,
			args:   []func(b *treeBuilder) *syntax.Node{intArg("1")},
			method: "eq",
			want:   "subject.should eq(1)",
		},
		{
			name:   "not required",
			src:    "subject.should eq 1",
			always: false,
			args:   []func(b *treeBuilder) *syntax.Node{intArg("1")},
			method: "eq",
			want:   "subject.should eq 1",
		},
		{
			name:   "multiple arguments",
			src:    "subject.should include 1, 2",
			always: true,
			args:   []func(b *treeBuilder) *syntax.Node{intArg("1"), intArg("2")},
			method: "include",
			want:   "subject.should include(1, 2)",
		},
		{
			name:   "string argument",
			src:    "subject.should eq 'string'",
			always: true,
			args:   []func(b *treeBuilder) *syntax.Node{str},
			method: "eq",
			want:   "subject.should eq('string')",
		},
		{
			name:   "argument on the next line",
			src:    "  subject.should include \\\n    1, 2",
			always: false,
			args:   []func(b *treeBuilder) *syntax.Node{intArg("1"), intArg("2")},
			method: "include",
			want:   "  subject.should include( \\\n    1, 2\n  )",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := shouldMatcher(t, tt.src, "should", namedMatcher(tt.method, tt.parens, tt.args...))
			om := NewOperatorMatcher(tree.Source, locateOne(t, tree), nil)
			buf := rewrite.NewBuffer(tree.Source.Text)

			require.NoError(t, om.Parenthesize(buf, tt.always))

			assert.Equal(t, tt.want, buf.Render())
			assert.Empty(t, om.Records())
		})
	}
}

func TestOperatorMatcher_Parenthesize_Heredoc(t *testing.T) {
	tests := []struct {
		name         string
		src          string
		interpolated bool
		chained      bool
		body         string
	}{
		{"plain", "subject.should eq <<-END\n  foo\nEND\n", false, false, "  foo\n"},
		{"with chained method", "subject.should eq <<-END.gsub('foo', 'bar')\n  foo\nEND\n", false, true, "  foo\n"},
		{"with interpolation", "subject.should eq <<-END\n  #{foo}\nEND\n", true, false, "  #{foo}\n"},
		{"with interpolation and chained method", "subject.should eq <<-END.gsub('foo', 'bar')\n  #{foo}\nEND\n", true, true, "  #{foo}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := shouldMatcher(t, tt.src, "should",
				namedMatcher("eq", false, heredocArg(tt.interpolated, tt.chained, tt.body)))
			om := NewOperatorMatcher(tree.Source, locateOne(t, tree), nil)
			buf := rewrite.NewBuffer(tree.Source.Text)

			require.NoError(t, om.Parenthesize(buf, true))

			assert.Equal(t, 0, buf.Len())
			assert.Equal(t, tt.src, buf.Render())
		})
	}
}
