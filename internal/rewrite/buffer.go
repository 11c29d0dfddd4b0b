// Package rewrite accumulates non-overlapping text edits against one source
// text and renders the patched result.
package rewrite

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/mouse-blink/respec/internal/syntax"
)

// ErrOverlap is matched by every *OverlapError.
var ErrOverlap = errors.New("overlapping edit")

// OverlapError reports an edit that clashes with one already accepted.
type OverlapError struct {
	Existing    syntax.Range
	Conflicting syntax.Range
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("overlapping edit: %s conflicts with %s", e.Conflicting, e.Existing)
}

// Is makes errors.Is(err, ErrOverlap) hold.
func (e *OverlapError) Is(target error) bool {
	return target == ErrOverlap
}

// Edit replaces Range with Text. A zero-width Range is an insertion.
type Edit struct {
	Range syntax.Range
	Text  string
}

// Replace returns an edit replacing r with text.
func Replace(r syntax.Range, text string) Edit {
	return Edit{Range: r, Text: text}
}

// Remove returns an edit deleting r.
func Remove(r syntax.Range) Edit {
	return Edit{Range: r}
}

// InsertBefore returns an edit inserting text at the start of r.
func InsertBefore(r syntax.Range, text string) Edit {
	return Edit{Range: syntax.Point(r.Begin), Text: text}
}

// InsertAfter returns an edit inserting text at the end of r.
func InsertAfter(r syntax.Range, text string) Edit {
	return Edit{Range: syntax.Point(r.End), Text: text}
}

// Buffer collects edits against a source text. Edits are accepted in groups:
// a group is either accepted whole or rejected whole.
type Buffer struct {
	source string
	edits  []Edit
}

// NewBuffer returns an empty Buffer over source.
func NewBuffer(source string) *Buffer {
	return &Buffer{source: source}
}

// Apply accepts edits atomically. It fails with an *OverlapError when an edit
// overlaps an accepted edit or another edit of the same group, and with an
// error wrapping ErrOverlap when an edit is out of bounds. On failure nothing
// is accepted.
func (b *Buffer) Apply(edits ...Edit) error {
	for i, edit := range edits {
		r := edit.Range
		if r.Begin < 0 || r.End < r.Begin || r.End > len(b.source) {
			return fmt.Errorf("edit %s out of bounds [0, %d]: %w", r, len(b.source), ErrOverlap)
		}

		for _, accepted := range b.edits {
			if accepted.Range.Overlaps(r) {
				return &OverlapError{Existing: accepted.Range, Conflicting: r}
			}
		}

		for _, pending := range edits[:i] {
			if pending.Range.Overlaps(r) {
				return &OverlapError{Existing: pending.Range, Conflicting: r}
			}
		}
	}

	b.edits = append(b.edits, edits...)

	return nil
}

// Len returns the number of accepted edits.
func (b *Buffer) Len() int {
	return len(b.edits)
}

// Edits returns a copy of the accepted edits in acceptance order.
func (b *Buffer) Edits() []Edit {
	return slices.Clone(b.edits)
}

// Source returns the original text.
func (b *Buffer) Source() string {
	return b.source
}

// Render returns the source with all accepted edits applied. Insertions at
// the same offset keep their acceptance order and come before a
// replacement starting at that offset.
func (b *Buffer) Render() string {
	if len(b.edits) == 0 {
		return b.source
	}

	ordered := slices.Clone(b.edits)
	slices.SortStableFunc(ordered, func(a, c Edit) int {
		if a.Range.Begin != c.Range.Begin {
			return a.Range.Begin - c.Range.Begin
		}

		return a.Range.End - c.Range.End
	})

	var out strings.Builder

	out.Grow(len(b.source))

	cursor := 0
	for _, edit := range ordered {
		out.WriteString(b.source[cursor:edit.Range.Begin])
		out.WriteString(edit.Text)
		cursor = edit.Range.End
	}

	out.WriteString(b.source[cursor:])

	return out.String()
}
