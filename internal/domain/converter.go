package domain

import (
	"fmt"

	m "github.com/mouse-blink/respec/internal/model"
	"github.com/mouse-blink/respec/internal/rewrite"
	"github.com/mouse-blink/respec/internal/syntax"
)

// ConvertOptions tunes a file conversion.
type ConvertOptions struct {
	// ParenthesizeMatcherArg wraps converted matcher arguments in
	// parentheses: `eq(1)` rather than `eq 1`.
	ParenthesizeMatcherArg bool
	// Oracle supplies runtime observations; nil means none were collected.
	Oracle Oracle
}

// Converter converts the operator matchers of one parsed file at a time.
type Converter interface {
	Convert(tree *syntax.Tree, opts ConvertOptions) (m.Conversion, error)
	CountOperatorMatchers(tree *syntax.Tree) int
	Targets(tree *syntax.Tree, source m.Source) []m.Target
}

type converter struct{}

// NewConverter creates a Converter. It holds no state and is safe for
// concurrent use.
func NewConverter() Converter {
	return &converter{}
}

// Convert rewrites every operator matcher in tree that no `respec:ignore`
// directive excludes. On error nothing is rendered and the returned
// conversion is empty.
func (c *converter) Convert(tree *syntax.Tree, opts ConvertOptions) (m.Conversion, error) {
	buf := rewrite.NewBuffer(tree.Source.Text)
	ignored := buildIgnoreIndex(tree)

	var records []m.Record

	for located := range Locate(tree.Root) {
		om := NewOperatorMatcher(tree.Source, located, opts.Oracle)
		if _, ok := om.Kind(); !ok || ignored.ignoresMatcher(tree.Source, om) {
			continue
		}

		if err := om.CorrectOperator(buf, opts.ParenthesizeMatcherArg); err != nil {
			return m.Conversion{}, fmt.Errorf("%s: %w", tree.Source.Name, err)
		}

		records = append(records, om.Records()...)
	}

	text := buf.Render()

	return m.Conversion{
		Text:    text,
		Records: records,
		Changed: text != tree.Source.Text,
	}, nil
}

// CountOperatorMatchers returns the number of expectations in tree written
// with a convertible operator and not ignored.
func (c *converter) CountOperatorMatchers(tree *syntax.Tree) int {
	ignored := buildIgnoreIndex(tree)
	count := 0

	for located := range Locate(tree.Root) {
		om := NewOperatorMatcher(tree.Source, located, nil)
		if _, ok := om.Kind(); ok && !ignored.ignoresMatcher(tree.Source, om) {
			count++
		}
	}

	return count
}

// Targets lists the dynamic analysis targets of tree.
func (c *converter) Targets(tree *syntax.Tree, source m.Source) []m.Target {
	nodes := DynamicAnalysisTargets(tree)
	targets := make([]m.Target, 0, len(nodes))

	for _, n := range nodes {
		targets = append(targets, m.Target{
			Source: source,
			ID:     tree.Source.ID(n).String(),
			Line:   tree.Source.Line(n.Loc.Expression.Begin),
			Text:   tree.Source.Slice(n.Loc.Expression),
		})
	}

	return targets
}
