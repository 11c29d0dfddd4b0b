package domain

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const diffContextLines = 3

type diffLine struct {
	op   diffmatchpatch.Operation
	text string
}

// UnifiedDiff renders the line diff between before and after in unified
// format. It returns an empty string when the texts are equal.
func UnifiedDiff(name, before, after string) string {
	if before == after {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToRunes(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMainRunes(a, b, false), lines)

	var ops []diffLine

	for _, d := range diffs {
		if d.Text == "" {
			continue
		}

		for _, line := range splitLines(d.Text) {
			ops = append(ops, diffLine{op: d.Type, text: line})
		}
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, "--- a/%s\n+++ b/%s\n", name, name)

	for _, h := range hunks(ops) {
		writeHunk(&sb, ops, h)
	}

	return sb.String()
}

type hunk struct {
	start, end int // indexes into ops
	oldStart   int // 0-based line in before
	newStart   int
}

func hunks(ops []diffLine) []hunk {
	oldLine := make([]int, len(ops))
	newLine := make([]int, len(ops))

	o, n := 0, 0

	for i, op := range ops {
		oldLine[i], newLine[i] = o, n

		switch op.op {
		case diffmatchpatch.DiffEqual:
			o++
			n++
		case diffmatchpatch.DiffDelete:
			o++
		case diffmatchpatch.DiffInsert:
			n++
		}
	}

	var out []hunk

	for i, op := range ops {
		if op.op == diffmatchpatch.DiffEqual {
			continue
		}

		start := max(0, i-diffContextLines)
		end := min(len(ops), i+1+diffContextLines)

		if len(out) > 0 && start <= out[len(out)-1].end {
			out[len(out)-1].end = end

			continue
		}

		out = append(out, hunk{start: start, end: end, oldStart: oldLine[start], newStart: newLine[start]})
	}

	return out
}

func writeHunk(sb *strings.Builder, ops []diffLine, h hunk) {
	var oldCount, newCount int

	for _, op := range ops[h.start:h.end] {
		if op.op != diffmatchpatch.DiffInsert {
			oldCount++
		}

		if op.op != diffmatchpatch.DiffDelete {
			newCount++
		}
	}

	fmt.Fprintf(sb, "@@ -%s +%s @@\n", hunkRange(h.oldStart, oldCount), hunkRange(h.newStart, newCount))

	for _, op := range ops[h.start:h.end] {
		switch op.op {
		case diffmatchpatch.DiffEqual:
			sb.WriteByte(' ')
		case diffmatchpatch.DiffDelete:
			sb.WriteByte('-')
		case diffmatchpatch.DiffInsert:
			sb.WriteByte('+')
		}

		sb.WriteString(op.text)
		sb.WriteByte('\n')
	}
}

// hunkRange formats a 0-based start and a line count as unified diff does:
// an empty range names the line before it.
func hunkRange(start, count int) string {
	if count == 0 {
		return fmt.Sprintf("%d,0", start)
	}

	if count == 1 {
		return fmt.Sprintf("%d", start+1)
	}

	return fmt.Sprintf("%d,%d", start+1, count)
}

func splitLines(text string) []string {
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
