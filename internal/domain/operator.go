package domain

import "fmt"

// OperatorKind classifies the operators an operator matcher may use.
type OperatorKind int

// Available OperatorKind values.
const (
	// OperatorEquality is `==`, converted to `eq(arg)`.
	OperatorEquality OperatorKind = iota + 1
	// OperatorComparison covers `===`, `<`, `<=`, `>` and `>=`, converted to `be <op> arg`.
	OperatorComparison
	// OperatorPatternMatch is `=~`, converted to `match(arg)` or `match_array(arg)`.
	OperatorPatternMatch
)

var operatorKinds = map[string]OperatorKind{
	"==":  OperatorEquality,
	"===": OperatorComparison,
	"<":   OperatorComparison,
	"<=":  OperatorComparison,
	">":   OperatorComparison,
	">=":  OperatorComparison,
	"=~":  OperatorPatternMatch,
}

// ClassifyOperator returns the kind of the operator token, or false when the
// token is not a convertible operator.
func ClassifyOperator(token string) (OperatorKind, bool) {
	kind, ok := operatorKinds[token]

	return kind, ok
}

func (k OperatorKind) String() string {
	switch k {
	case OperatorEquality:
		return "equality"
	case OperatorComparison:
		return "comparison"
	case OperatorPatternMatch:
		return "pattern-match"
	default:
		return fmt.Sprintf("OperatorKind(%d)", int(k))
	}
}
