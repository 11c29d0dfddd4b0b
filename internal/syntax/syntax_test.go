package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRange_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Range
		want bool
	}{
		{"disjoint", NewRange(0, 2), NewRange(3, 5), false},
		{"adjacent", NewRange(0, 2), NewRange(2, 4), false},
		{"sharing a byte", NewRange(0, 3), NewRange(2, 4), true},
		{"nested", NewRange(0, 10), NewRange(2, 4), true},
		{"point at start", NewRange(2, 4), Point(2), false},
		{"point at end", NewRange(2, 4), Point(4), false},
		{"point inside", NewRange(2, 4), Point(3), true},
		{"same point", Point(3), Point(3), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestRange_Helpers(t *testing.T) {
	r := NewRange(3, 7)

	assert.Equal(t, 4, r.Len())
	assert.False(t, r.IsEmpty())
	assert.True(t, Point(5).IsEmpty())
	assert.Equal(t, NewRange(1, 7), r.Join(NewRange(1, 2)))
	assert.Equal(t, "3...7", r.String())
}

func TestSource(t *testing.T) {
	src := NewSource("spec/a_spec.rb", "describe do\n    it { x }\n\tend\n")

	assert.Equal(t, "describe", src.Slice(NewRange(0, 8)))
	assert.Equal(t, "end\n", src.Slice(NewRange(26, 99)))
	assert.Equal(t, 1, src.Line(0))
	assert.Equal(t, 2, src.Line(16))
	assert.Equal(t, 3, src.Line(27))
	assert.Equal(t, "    ", src.LineIndentation(18))
	assert.Equal(t, "\t", src.LineIndentation(27))
	assert.Equal(t, "", src.LineIndentation(3))

	n := &Node{Type: TypeSend, Loc: Loc{Expression: NewRange(16, 24)}}
	assert.Equal(t, NodeID{File: "spec/a_spec.rb", Begin: 16, End: 24}, src.ID(n))
	assert.Equal(t, "spec/a_spec.rb_16_24", src.ID(n).String())
}

func TestNode_Accessors(t *testing.T) {
	subject := &Node{Type: TypeSend, Value: "subject", Children: []*Node{nil}}
	one := &Node{Type: TypeInt, Value: "1"}
	call := &Node{Type: TypeSend, Value: "eq", Children: []*Node{subject, one}}

	assert.Same(t, subject, call.Receiver())
	assert.Equal(t, "eq", call.MethodName())
	assert.Equal(t, []*Node{one}, call.Arguments())
	assert.True(t, subject.IsBareCall("subject"))
	assert.False(t, call.IsBareCall("eq"))

	assert.Nil(t, one.Receiver())
	assert.Empty(t, one.MethodName())
	assert.Nil(t, one.Arguments())

	var missing *Node
	assert.False(t, missing.Is(TypeSend))
	assert.False(t, missing.IsBareCall("be"))
}

func TestNode_IsParenthesizedAndHasBraces(t *testing.T) {
	open := NewRange(0, 1)
	group := &Node{Type: TypeBegin, Loc: Loc{Expression: NewRange(0, 7), Begin: &open}}
	bare := &Node{Type: TypeBegin, Loc: Loc{Expression: NewRange(0, 7)}}
	braced := &Node{Type: TypeHash, Loc: Loc{Expression: NewRange(0, 7), Begin: &open}}
	braceless := &Node{Type: TypeHash, Loc: Loc{Expression: NewRange(0, 7)}}

	assert.True(t, group.IsParenthesized())
	assert.False(t, bare.IsParenthesized())
	assert.True(t, braced.HasBraces())
	assert.False(t, braceless.HasBraces())
}

func TestNode_IsVerbatim(t *testing.T) {
	body := NewRange(10, 20)
	heredoc := &Node{Type: TypeStr, Loc: Loc{Expression: NewRange(0, 6), HeredocBody: &body}}
	interpolated := &Node{Type: TypeDstr, Loc: Loc{Expression: NewRange(0, 6), HeredocBody: &body}}
	chained := &Node{Type: TypeSend, Value: "gsub", Children: []*Node{heredoc, {Type: TypeStr}}}
	chainedTwice := &Node{Type: TypeSend, Value: "strip", Children: []*Node{chained}}
	grouped := &Node{Type: TypeBegin, Children: []*Node{interpolated}}
	plain := &Node{Type: TypeStr}
	call := &Node{Type: TypeSend, Value: "foo", Children: []*Node{nil, heredoc}}

	assert.True(t, heredoc.IsVerbatim())
	assert.True(t, interpolated.IsVerbatim())
	assert.True(t, chained.IsVerbatim())
	assert.True(t, chainedTwice.IsVerbatim())
	assert.True(t, grouped.IsVerbatim())
	assert.False(t, plain.IsVerbatim())
	assert.False(t, call.IsVerbatim())
}

func TestWalk(t *testing.T) {
	one := &Node{Type: TypeInt}
	two := &Node{Type: TypeInt}
	inner := &Node{Type: TypeSend, Children: []*Node{nil, one}}
	root := &Node{Type: TypeProgram, Children: []*Node{inner, two}}

	var (
		visited []*Node
		depths  []int
	)

	for n, ancestors := range Walk(root) {
		visited = append(visited, n)
		depths = append(depths, len(ancestors))

		if n == one {
			assert.Same(t, inner, Parent(ancestors))
		}
	}

	assert.Equal(t, []*Node{root, inner, one, two}, visited)
	assert.Equal(t, []int{0, 1, 2, 1}, depths)
	assert.Nil(t, Parent(nil))

	count := 0
	for range Walk(root) {
		count++
		if count == 2 {
			break
		}
	}

	assert.Equal(t, 2, count)
}
