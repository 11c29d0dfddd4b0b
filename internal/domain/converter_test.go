package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/respec/internal/model"
	"github.com/mouse-blink/respec/internal/syntax"
)

// mixedSpec builds
//
//	a.should == 1
//	b.should be < 2
//	c.should eq(3)
//	d.should =~ list
func mixedSpec(t *testing.T) *syntax.Tree {
	t.Helper()

	b := newTreeBuilder(t, "a.should == 1\nb.should be < 2\nc.should eq(3)\nd.should =~ list\n")

	a := b.chain(b.ident("a"), "should")
	selector := b.tok("==")
	first := send(a, "==", selector, b.lit(syntax.TypeInt, "1"))

	recv := b.ident("b")
	dot := b.tok(".")
	selector = b.tok("should")
	second := withDot(send(recv, "should", selector, beOperator("<", intArg("2"))(b)), dot)

	recv = b.ident("c")
	dot = b.tok(".")
	selector = b.tok("should")
	third := withDot(send(recv, "should", selector, namedMatcher("eq", true, intArg("3"))(b)), dot)

	d := b.chain(b.ident("d"), "should")
	selector = b.tok("=~")
	fourth := send(d, "=~", selector, b.lit(syntax.TypeLvar, "list"))

	return b.program(first, second, third, fourth)
}

func TestConverter_Convert(t *testing.T) {
	tree := mixedSpec(t)
	list, _ := findNode(t, tree, "list")

	conversion, err := NewConverter().Convert(tree, ConvertOptions{
		ParenthesizeMatcherArg: true,
		Oracle:                 fakeOracle{tree.Source.ID(list): {ClassName: "Array", Enumerable: true}},
	})
	require.NoError(t, err)

	assert.Equal(t, "a.should eq(1)\nb.should be < 2\nc.should eq(3)\nd.should match_array(list)\n", conversion.Text)
	assert.True(t, conversion.Changed)
	assert.Equal(t, []m.Record{equalityRecord}, conversion.Records)
}

func TestConverter_Convert_WithoutParentheses(t *testing.T) {
	conversion, err := NewConverter().Convert(mixedSpec(t), ConvertOptions{})
	require.NoError(t, err)

	assert.Equal(t, "a.should eq 1\nb.should be < 2\nc.should eq(3)\nd.should match list\n", conversion.Text)
}

func TestConverter_Convert_NothingToDo(t *testing.T) {
	tree := shouldMatcher(t, "subject.should be < 1", "should", beOperator("<", intArg("1")))

	conversion, err := NewConverter().Convert(tree, ConvertOptions{ParenthesizeMatcherArg: true})
	require.NoError(t, err)

	assert.False(t, conversion.Changed)
	assert.Equal(t, tree.Source.Text, conversion.Text)
	assert.Empty(t, conversion.Records)
}

func TestConverter_Convert_Overlap(t *testing.T) {
	// Two expectations sharing one operator node, as a broken parser might
	// produce, must fail the file instead of producing garbage.
	b := newTreeBuilder(t, "subject.should == 1")
	should := b.chain(b.ident("subject"), "should")
	selector := b.tok("==")
	expr := send(should, "==", selector, b.lit(syntax.TypeInt, "1"))
	tree := b.program(expr, expr)

	conversion, err := NewConverter().Convert(tree, ConvertOptions{ParenthesizeMatcherArg: true})
	require.Error(t, err)
	assert.ErrorContains(t, err, "spec/example_spec.rb")
	assert.Empty(t, conversion.Text)
}

func TestConverter_CountOperatorMatchers(t *testing.T) {
	assert.Equal(t, 3, NewConverter().CountOperatorMatchers(mixedSpec(t)))
}

func TestConverter_Targets(t *testing.T) {
	tree := mixedSpec(t)
	source := m.Source{Origin: "spec/example_spec.rb", Hash: "abc"}

	targets := NewConverter().Targets(tree, source)

	require.Len(t, targets, 1)
	assert.Equal(t, m.Target{
		Source: source,
		ID:     "spec/example_spec.rb_57_61",
		Line:   4,
		Text:   "list",
	}, targets[0])
}
