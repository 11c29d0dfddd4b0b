// Package syntax defines the immutable syntax tree the conversion engine
// reads. Nodes follow the shape of a classic Ruby s-expression tree: a type
// tag, ordered children and a source map of byte ranges.
package syntax

// Type tags a node.
type Type string

// Node types produced by the Ruby parser adapter. Node kinds that have no
// dedicated tag keep the parser's own kind name.
const (
	TypeProgram Type = "program"
	TypeBegin   Type = "begin"
	TypeSend    Type = "send"
	TypeBlock   Type = "block"
	TypeArgs    Type = "args"
	TypeAnd     Type = "and"
	TypeOr      Type = "or"

	TypeInt    Type = "int"
	TypeFloat  Type = "float"
	TypeStr    Type = "str"
	TypeDstr   Type = "dstr"
	TypeXstr   Type = "xstr"
	TypeSym    Type = "sym"
	TypeRegexp Type = "regexp"
	TypeArray  Type = "array"
	TypeHash   Type = "hash"
	TypePair   Type = "pair"
	TypeNil    Type = "nil"
	TypeTrue   Type = "true"
	TypeFalse  Type = "false"
	TypeSelf   Type = "self"

	TypeLvar   Type = "lvar"
	TypeIvar   Type = "ivar"
	TypeGvar   Type = "gvar"
	TypeCvar   Type = "cvar"
	TypeConst  Type = "const"
	TypeLvasgn Type = "lvasgn"
)

// Node is a parsed source node. Nodes are never mutated after the parser
// returns them; every change to the source is expressed as a text edit.
//
// For TypeSend, Children is [receiver, args...] where the receiver may be
// nil and Value holds the method name. For TypeBlock, Children is
// [send, args, body].
type Node struct {
	Type     Type
	Value    string
	Children []*Node
	Loc      Loc
}

// Loc is the source map of a node.
type Loc struct {
	Expression Range
	// Selector is the method name or operator token of a send.
	Selector *Range
	// Dot is the `.` or `&.` between receiver and selector.
	Dot *Range
	// Begin and End are the opening and closing delimiters: argument
	// parentheses of a send, brackets of an array, braces of a hash.
	Begin *Range
	End   *Range
	// HeredocBody and HeredocEnd are set on heredoc strings. The
	// expression of such a string covers only its opener.
	HeredocBody *Range
	HeredocEnd  *Range
}

// Is reports whether the node has one of the given types. It is false for a
// nil node.
func (n *Node) Is(types ...Type) bool {
	if n == nil {
		return false
	}

	for _, t := range types {
		if n.Type == t {
			return true
		}
	}

	return false
}

// Receiver returns the receiver of a send, or nil.
func (n *Node) Receiver() *Node {
	if !n.Is(TypeSend) || len(n.Children) == 0 {
		return nil
	}

	return n.Children[0]
}

// MethodName returns the method name of a send, or "".
func (n *Node) MethodName() string {
	if !n.Is(TypeSend) {
		return ""
	}

	return n.Value
}

// Arguments returns the arguments of a send.
func (n *Node) Arguments() []*Node {
	if !n.Is(TypeSend) || len(n.Children) < 2 {
		return nil
	}

	return n.Children[1:]
}

// IsBareCall reports whether n is a receiver-less, argument-less send of
// the named method, such as `be` or `subject`.
func (n *Node) IsBareCall(name string) bool {
	return n.Is(TypeSend) && n.Value == name && n.Receiver() == nil && len(n.Arguments()) == 0
}

// IsParenthesized reports whether the node opens with a parenthesis that
// starts the expression, like `(2 - 1)`.
func (n *Node) IsParenthesized() bool {
	return n.Is(TypeBegin) && n.Loc.Begin != nil && n.Loc.Begin.Begin == n.Loc.Expression.Begin
}

// HasBraces reports whether a hash literal is delimited by its own braces.
func (n *Node) HasBraces() bool {
	return n.Is(TypeHash) && n.Loc.Begin != nil
}

// IsHeredoc reports whether n is a heredoc string.
func (n *Node) IsHeredoc() bool {
	return n.Is(TypeStr, TypeDstr, TypeXstr) && n.Loc.HeredocBody != nil
}

// IsVerbatim reports whether n is, or is rooted in, a heredoc: a bare heredoc,
// a heredoc with interpolation, or a heredoc followed by chained method calls.
// Edits around such nodes would break the parser's heredoc scanning.
func (n *Node) IsVerbatim() bool {
	for cur := n; cur != nil; {
		switch {
		case cur.IsHeredoc():
			return true
		case cur.Is(TypeSend):
			cur = cur.Receiver()
		case cur.Is(TypeBegin) && len(cur.Children) == 1:
			cur = cur.Children[0]
		default:
			return false
		}
	}

	return false
}
