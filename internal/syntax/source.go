package syntax

import (
	"fmt"
	"strings"
)

// Range is a half-open byte span [Begin, End) of a source text.
type Range struct {
	Begin int
	End   int
}

// NewRange returns the range [begin, end).
func NewRange(begin, end int) Range {
	return Range{Begin: begin, End: end}
}

// Point returns the zero-width range at offset.
func Point(offset int) Range {
	return Range{Begin: offset, End: offset}
}

// Len returns the number of bytes covered by r.
func (r Range) Len() int {
	return r.End - r.Begin
}

// IsEmpty reports whether r covers no bytes.
func (r Range) IsEmpty() bool {
	return r.End <= r.Begin
}

// Join returns the smallest range covering both r and other.
func (r Range) Join(other Range) Range {
	return Range{Begin: min(r.Begin, other.Begin), End: max(r.End, other.End)}
}

// Overlaps reports whether r and other share at least one byte. A zero-width
// range overlaps only a range that strictly contains its offset.
func (r Range) Overlaps(other Range) bool {
	return r.Begin < other.End && other.Begin < r.End
}

func (r Range) String() string {
	return fmt.Sprintf("%d...%d", r.Begin, r.End)
}

// Source is the text of one parsed file.
type Source struct {
	Name string
	Text string
}

// NewSource returns a Source for the named text.
func NewSource(name, text string) *Source {
	return &Source{Name: name, Text: text}
}

// Slice returns the text covered by r, clamped to the source bounds.
func (s *Source) Slice(r Range) string {
	begin := max(0, min(r.Begin, len(s.Text)))
	end := max(begin, min(r.End, len(s.Text)))

	return s.Text[begin:end]
}

// Line returns the 1-based line number of offset.
func (s *Source) Line(offset int) int {
	offset = max(0, min(offset, len(s.Text)))

	return strings.Count(s.Text[:offset], "\n") + 1
}

// LineIndentation returns the leading blanks of the line containing offset.
func (s *Source) LineIndentation(offset int) string {
	offset = max(0, min(offset, len(s.Text)))
	start := strings.LastIndexByte(s.Text[:offset], '\n') + 1

	end := start
	for end < len(s.Text) && (s.Text[end] == ' ' || s.Text[end] == '\t') {
		end++
	}

	return s.Text[start:end]
}

// ID returns the identity of n within s.
func (s *Source) ID(n *Node) NodeID {
	return NodeID{File: s.Name, Begin: n.Loc.Expression.Begin, End: n.Loc.Expression.End}
}

// NodeID identifies a node by file and expression range. It is stable across
// parses of the same text, which lets runtime observations recorded by an
// instrumented run be matched back to nodes.
type NodeID struct {
	File  string
	Begin int
	End   int
}

func (id NodeID) String() string {
	return fmt.Sprintf("%s_%d_%d", id.File, id.Begin, id.End)
}

// Tree is a parsed file.
type Tree struct {
	Source *Source
	Root   *Node
	// Comments holds the ranges of the comments in Source, in order.
	Comments []Range
}
