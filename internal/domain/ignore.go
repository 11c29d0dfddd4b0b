package domain

import (
	"regexp"
	"strings"

	"github.com/mouse-blink/respec/internal/syntax"
)

// ignoreDirective matches a `# respec:ignore` comment with an optional
// comma separated list of operator kinds.
var ignoreDirective = regexp.MustCompile(`^#\s*respec:ignore\b(.*)$`)

type ignoreRule struct {
	all   bool
	kinds map[string]struct{}
}

func (r ignoreRule) ignores(kind OperatorKind) bool {
	if r.all {
		return true
	}

	if len(r.kinds) == 0 {
		return false
	}

	_, ok := r.kinds[kind.String()]

	return ok
}

func (r ignoreRule) empty() bool {
	return !r.all && len(r.kinds) == 0
}

func mergeIgnoreRule(dst *ignoreRule, src ignoreRule) {
	if src.all {
		dst.all = true
		dst.kinds = nil

		return
	}

	if dst.all || len(src.kinds) == 0 {
		return
	}

	if dst.kinds == nil {
		dst.kinds = make(map[string]struct{}, len(src.kinds))
	}

	for kind := range src.kinds {
		dst.kinds[kind] = struct{}{}
	}
}

func knownKindName(name string) bool {
	for _, kind := range []OperatorKind{OperatorEquality, OperatorComparison, OperatorPatternMatch} {
		if kind.String() == name {
			return true
		}
	}

	return false
}

// parseIgnoreDirective reads the directive from the text of one comment.
// A list naming anything but operator kinds, such as a free form reason,
// ignores every kind.
func parseIgnoreDirective(comment string) (ignoreRule, bool) {
	match := ignoreDirective.FindStringSubmatch(strings.TrimSpace(comment))
	if match == nil {
		return ignoreRule{}, false
	}

	rule := ignoreRule{kinds: make(map[string]struct{})}

	for _, part := range strings.Split(match[1], ",") {
		kind := strings.ToLower(strings.TrimSpace(part))
		if kind == "" {
			continue
		}

		if !knownKindName(kind) {
			return ignoreRule{all: true}, true
		}

		rule.kinds[kind] = struct{}{}
	}

	if len(rule.kinds) == 0 {
		return ignoreRule{all: true}, true
	}

	return rule, true
}

// ignoreIndex holds the ignore directives of one file. Directives in the
// comment header before the first line of code apply to the whole file. A
// trailing directive applies to its own line and a directive on a line of
// its own applies to the next line. When that next line opens a block, the
// whole block is covered.
type ignoreIndex struct {
	file ignoreRule
	line map[int]ignoreRule
}

func buildIgnoreIndex(tree *syntax.Tree) ignoreIndex {
	idx := ignoreIndex{line: make(map[int]ignoreRule)}
	src := tree.Source.Text
	inHeader := true
	prevEnd := 0

	for _, comment := range tree.Comments {
		if strings.TrimSpace(src[prevEnd:comment.Begin]) != "" {
			inHeader = false
		}

		prevEnd = comment.End

		rule, ok := parseIgnoreDirective(tree.Source.Slice(comment))
		if !ok {
			continue
		}

		lineStart := strings.LastIndexByte(src[:comment.Begin], '\n') + 1
		leading := strings.TrimSpace(src[lineStart:comment.Begin]) == ""

		if inHeader && leading {
			mergeIgnoreRule(&idx.file, rule)

			continue
		}

		target := tree.Source.Line(comment.Begin)
		if leading {
			target++
		}

		current := idx.line[target]
		mergeIgnoreRule(&current, rule)
		idx.line[target] = current
	}

	idx.extendToBlocks(tree)

	return idx
}

func (idx ignoreIndex) extendToBlocks(tree *syntax.Tree) {
	if len(idx.line) == 0 || tree.Root == nil {
		return
	}

	for n := range syntax.Walk(tree.Root) {
		if !n.Is(syntax.TypeBlock) {
			continue
		}

		first := tree.Source.Line(n.Loc.Expression.Begin)

		rule, ok := idx.line[first]
		if !ok {
			continue
		}

		last := tree.Source.Line(n.Loc.Expression.End)
		for line := first + 1; line <= last; line++ {
			current := idx.line[line]
			mergeIgnoreRule(&current, rule)
			idx.line[line] = current
		}
	}
}

// ignores reports whether an operator of kind written on line is excluded
// from conversion.
func (idx ignoreIndex) ignores(kind OperatorKind, line int) bool {
	if idx.file.ignores(kind) {
		return true
	}

	rule, ok := idx.line[line]

	return ok && rule.ignores(kind)
}

func (idx ignoreIndex) ignoresMatcher(source *syntax.Source, om *OperatorMatcher) bool {
	kind, ok := om.Kind()
	if !ok {
		return false
	}

	if idx.file.empty() && len(idx.line) == 0 {
		return false
	}

	matcher := om.Node().Matcher

	offset := matcher.Loc.Expression.Begin
	if matcher.Loc.Selector != nil {
		offset = matcher.Loc.Selector.Begin
	}

	return idx.ignores(kind, source.Line(offset))
}
