package adapter

import (
	"context"
	"errors"
	"fmt"
	"slices"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/ruby"

	"github.com/mouse-blink/respec/internal/syntax"
)

// ErrInvalidSyntax is returned for sources the Ruby grammar cannot parse.
var ErrInvalidSyntax = errors.New("invalid ruby syntax")

// RubyParser parses Ruby sources into syntax trees.
type RubyParser interface {
	Parse(ctx context.Context, name string, src []byte) (*syntax.Tree, error)
}

// TreeSitterRubyParser implements RubyParser with the tree-sitter Ruby
// grammar. It is safe for concurrent use; each call gets its own parser.
type TreeSitterRubyParser struct{}

// NewTreeSitterRubyParser constructs a TreeSitterRubyParser.
func NewTreeSitterRubyParser() *TreeSitterRubyParser {
	return &TreeSitterRubyParser{}
}

// Parse parses src. Byte offsets in the returned tree index into src.
func (p *TreeSitterRubyParser) Parse(ctx context.Context, name string, src []byte) (*syntax.Tree, error) {
	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(ruby.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, fmt.Errorf("%s:%d: %w", name, firstErrorLine(root), ErrInvalidSyntax)
	}

	c := newCSTConverter(src, root)

	return &syntax.Tree{
		Source:   syntax.NewSource(name, string(src)),
		Root:     c.convert(root),
		Comments: collectComments(root, nil),
	}, nil
}

// collectComments appends the ranges of the comment nodes under n in source
// order.
func collectComments(n *sitter.Node, dst []syntax.Range) []syntax.Range {
	if n.Type() == "comment" {
		return append(dst, syntax.NewRange(int(n.StartByte()), int(n.EndByte())))
	}

	for i := range int(n.ChildCount()) {
		if child := n.Child(i); child != nil {
			dst = collectComments(child, dst)
		}
	}

	return dst
}

func firstErrorLine(n *sitter.Node) int {
	if n.Type() == "ERROR" || n.IsMissing() {
		return int(n.StartPoint().Row) + 1
	}

	for i := range int(n.ChildCount()) {
		if child := n.Child(i); child != nil && child.HasError() {
			return firstErrorLine(child)
		}
	}

	return int(n.StartPoint().Row) + 1
}

// cstConverter maps the concrete tree-sitter tree onto syntax nodes.
type cstConverter struct {
	src []byte
	// heredocBodies are the heredoc bodies in document order; openers
	// claim them in the same order.
	heredocBodies []*sitter.Node
	nextHeredoc   int
	// locals maps a local variable name to the offset of its first
	// definition.
	locals map[string]uint32
}

func newCSTConverter(src []byte, root *sitter.Node) *cstConverter {
	c := &cstConverter{src: src, locals: make(map[string]uint32)}
	c.scan(root)

	slices.SortFunc(c.heredocBodies, func(a, b *sitter.Node) int {
		return int(a.StartByte()) - int(b.StartByte())
	})

	return c
}

// scan collects heredoc bodies and local variable definitions.
func (c *cstConverter) scan(n *sitter.Node) {
	switch n.Type() {
	case "heredoc_body":
		c.heredocBodies = append(c.heredocBodies, n)

		return
	case "assignment", "operator_assignment":
		if left := n.ChildByFieldName("left"); left != nil && left.Type() == "identifier" {
			c.defineLocal(left)
		}
	case "block_parameters", "method_parameters", "lambda_parameters", "parameters":
		for i := range int(n.NamedChildCount()) {
			param := n.NamedChild(i)
			if param.Type() == "identifier" {
				c.defineLocal(param)
			} else if id := param.ChildByFieldName("name"); id != nil && id.Type() == "identifier" {
				c.defineLocal(id)
			}
		}
	}

	for i := range int(n.ChildCount()) {
		if child := n.Child(i); child != nil {
			c.scan(child)
		}
	}
}

func (c *cstConverter) defineLocal(id *sitter.Node) {
	name := id.Content(c.src)
	if offset, ok := c.locals[name]; !ok || id.StartByte() < offset {
		c.locals[name] = id.StartByte()
	}
}

func (c *cstConverter) isLocal(id *sitter.Node) bool {
	offset, ok := c.locals[id.Content(c.src)]

	return ok && offset <= id.StartByte()
}

func rangeOf(n *sitter.Node) syntax.Range {
	return syntax.NewRange(int(n.StartByte()), int(n.EndByte()))
}

func ptr(r syntax.Range) *syntax.Range {
	return &r
}

//nolint:cyclop // one case per node kind
func (c *cstConverter) convert(n *sitter.Node) *syntax.Node {
	loc := syntax.Loc{Expression: rangeOf(n)}

	switch n.Type() {
	case "program":
		return &syntax.Node{Type: syntax.TypeProgram, Children: c.namedChildren(n), Loc: loc}
	case "binary":
		return c.convertBinary(n)
	case "call":
		return c.convertCall(n)
	case "identifier":
		if c.isLocal(n) {
			return &syntax.Node{Type: syntax.TypeLvar, Value: n.Content(c.src), Loc: loc}
		}

		loc.Selector = ptr(loc.Expression)

		return &syntax.Node{Type: syntax.TypeSend, Value: n.Content(c.src), Children: []*syntax.Node{nil}, Loc: loc}
	case "integer":
		return &syntax.Node{Type: syntax.TypeInt, Value: n.Content(c.src), Loc: loc}
	case "float":
		return &syntax.Node{Type: syntax.TypeFloat, Value: n.Content(c.src), Loc: loc}
	case "string":
		return &syntax.Node{Type: stringType(n), Value: n.Content(c.src), Loc: loc}
	case "subshell":
		return &syntax.Node{Type: syntax.TypeXstr, Value: n.Content(c.src), Loc: loc}
	case "simple_symbol", "delimited_symbol", "hash_key_symbol":
		return &syntax.Node{Type: syntax.TypeSym, Value: n.Content(c.src), Loc: loc}
	case "regex":
		return &syntax.Node{Type: syntax.TypeRegexp, Value: n.Content(c.src), Loc: loc}
	case "array", "string_array", "symbol_array":
		c.delimit(n, &loc)

		return &syntax.Node{Type: syntax.TypeArray, Children: c.namedChildren(n), Loc: loc}
	case "hash":
		c.delimit(n, &loc)

		return &syntax.Node{Type: syntax.TypeHash, Children: c.namedChildren(n), Loc: loc}
	case "pair":
		return &syntax.Node{Type: syntax.TypePair, Children: c.namedChildren(n), Loc: loc}
	case "parenthesized_statements":
		c.delimit(n, &loc)

		return &syntax.Node{Type: syntax.TypeBegin, Children: c.namedChildren(n), Loc: loc}
	case "heredoc_beginning":
		return c.convertHeredoc(n)
	case "nil":
		return &syntax.Node{Type: syntax.TypeNil, Loc: loc}
	case "true":
		return &syntax.Node{Type: syntax.TypeTrue, Loc: loc}
	case "false":
		return &syntax.Node{Type: syntax.TypeFalse, Loc: loc}
	case "self":
		return &syntax.Node{Type: syntax.TypeSelf, Loc: loc}
	case "constant", "scope_resolution":
		return &syntax.Node{Type: syntax.TypeConst, Value: n.Content(c.src), Loc: loc}
	case "instance_variable":
		return &syntax.Node{Type: syntax.TypeIvar, Value: n.Content(c.src), Loc: loc}
	case "global_variable":
		return &syntax.Node{Type: syntax.TypeGvar, Value: n.Content(c.src), Loc: loc}
	case "class_variable":
		return &syntax.Node{Type: syntax.TypeCvar, Value: n.Content(c.src), Loc: loc}
	case "assignment":
		if left := n.ChildByFieldName("left"); left != nil && left.Type() == "identifier" {
			var children []*syntax.Node
			if right := n.ChildByFieldName("right"); right != nil {
				children = append(children, c.convert(right))
			}

			return &syntax.Node{Type: syntax.TypeLvasgn, Value: left.Content(c.src), Children: children, Loc: loc}
		}
	}

	return &syntax.Node{Type: syntax.Type(n.Type()), Children: c.namedChildren(n), Loc: loc}
}

// namedChildren converts the named children of n, leaving out comments and
// heredoc bodies. Their text is reachable through the source map.
func (c *cstConverter) namedChildren(n *sitter.Node) []*syntax.Node {
	var children []*syntax.Node

	for i := range int(n.NamedChildCount()) {
		child := n.NamedChild(i)

		switch child.Type() {
		case "comment", "heredoc_body":
			continue
		}

		children = append(children, c.convert(child))
	}

	return children
}

// delimit records the opening and closing tokens of a delimited literal.
func (c *cstConverter) delimit(n *sitter.Node, loc *syntax.Loc) {
	count := int(n.ChildCount())
	if count < 2 {
		return
	}

	first, last := n.Child(0), n.Child(count-1)
	if first.IsNamed() || last.IsNamed() {
		return
	}

	loc.Begin = ptr(rangeOf(first))
	loc.End = ptr(rangeOf(last))
}

func stringType(n *sitter.Node) syntax.Type {
	for i := range int(n.NamedChildCount()) {
		if n.NamedChild(i).Type() == "interpolation" {
			return syntax.TypeDstr
		}
	}

	return syntax.TypeStr
}

func (c *cstConverter) convertBinary(n *sitter.Node) *syntax.Node {
	left := n.ChildByFieldName("left")
	operator := n.ChildByFieldName("operator")
	right := n.ChildByFieldName("right")

	if left == nil || operator == nil || right == nil {
		return &syntax.Node{Type: syntax.Type(n.Type()), Children: c.namedChildren(n), Loc: syntax.Loc{Expression: rangeOf(n)}}
	}

	loc := syntax.Loc{Expression: rangeOf(n)}
	children := []*syntax.Node{c.convert(left), c.convert(right)}

	switch operator.Type() {
	case "&&", "and":
		return &syntax.Node{Type: syntax.TypeAnd, Children: children, Loc: loc}
	case "||", "or":
		return &syntax.Node{Type: syntax.TypeOr, Children: children, Loc: loc}
	}

	loc.Selector = ptr(rangeOf(operator))

	return &syntax.Node{Type: syntax.TypeSend, Value: operator.Content(c.src), Children: children, Loc: loc}
}

func (c *cstConverter) convertCall(n *sitter.Node) *syntax.Node {
	method := n.ChildByFieldName("method")
	if method == nil {
		return &syntax.Node{Type: syntax.Type(n.Type()), Children: c.namedChildren(n), Loc: syntax.Loc{Expression: rangeOf(n)}}
	}

	send := &syntax.Node{Type: syntax.TypeSend, Value: method.Content(c.src)}
	send.Loc.Selector = ptr(rangeOf(method))

	var receiver *syntax.Node
	if r := n.ChildByFieldName("receiver"); r != nil {
		receiver = c.convert(r)
	}

	send.Children = []*syntax.Node{receiver}

	for i := range int(n.ChildCount()) {
		switch child := n.Child(i); child.Type() {
		case ".", "&.", "::":
			send.Loc.Dot = ptr(rangeOf(child))
		}
	}

	end := method.EndByte()

	if args := n.ChildByFieldName("arguments"); args != nil {
		send.Children = append(send.Children, c.convertArguments(args, &send.Loc)...)
		end = args.EndByte()
	}

	begin := n.StartByte()
	send.Loc.Expression = syntax.NewRange(int(begin), int(end))

	block := n.ChildByFieldName("block")
	if block == nil {
		return send
	}

	return c.convertBlock(n, send, block)
}

// convertArguments converts an argument list. Trailing `key => value` pairs
// become one brace-less hash argument.
func (c *cstConverter) convertArguments(args *sitter.Node, loc *syntax.Loc) []*syntax.Node {
	var (
		converted []*syntax.Node
		pairs     *syntax.Node
	)

	for i := range int(args.ChildCount()) {
		child := args.Child(i)

		switch {
		case child.Type() == "(":
			loc.Begin = ptr(rangeOf(child))

			continue
		case child.Type() == ")":
			loc.End = ptr(rangeOf(child))

			continue
		case !child.IsNamed(), child.Type() == "comment", child.Type() == "heredoc_body":
			continue
		}

		if child.Type() != "pair" {
			pairs = nil
			converted = append(converted, c.convert(child))

			continue
		}

		pair := c.convert(child)
		if pairs == nil {
			pairs = &syntax.Node{Type: syntax.TypeHash, Loc: syntax.Loc{Expression: pair.Loc.Expression}}
			converted = append(converted, pairs)
		}

		pairs.Children = append(pairs.Children, pair)
		pairs.Loc.Expression = pairs.Loc.Expression.Join(pair.Loc.Expression)
	}

	return converted
}

func (c *cstConverter) convertBlock(call *sitter.Node, send *syntax.Node, block *sitter.Node) *syntax.Node {
	params := &syntax.Node{Type: syntax.TypeArgs, Loc: syntax.Loc{Expression: syntax.Point(int(block.StartByte()))}}

	var body []*syntax.Node

	for i := range int(block.NamedChildCount()) {
		child := block.NamedChild(i)

		switch child.Type() {
		case "block_parameters":
			params = &syntax.Node{Type: syntax.TypeArgs, Children: c.namedChildren(child), Loc: syntax.Loc{Expression: rangeOf(child)}}
		case "block_body", "body_statement":
			body = append(body, c.namedChildren(child)...)
		case "comment", "heredoc_body":
		default:
			body = append(body, c.convert(child))
		}
	}

	var bodyNode *syntax.Node

	switch len(body) {
	case 0:
	case 1:
		bodyNode = body[0]
	default:
		bodyNode = &syntax.Node{
			Type:     syntax.TypeBegin,
			Children: body,
			Loc:      syntax.Loc{Expression: body[0].Loc.Expression.Join(body[len(body)-1].Loc.Expression)},
		}
	}

	return &syntax.Node{
		Type:     syntax.TypeBlock,
		Children: []*syntax.Node{send, params, bodyNode},
		Loc: syntax.Loc{
			Expression: rangeOf(call),
			Begin:      ptr(rangeOf(block.Child(0))),
			End:        ptr(rangeOf(block.Child(int(block.ChildCount()) - 1))),
		},
	}
}

// convertHeredoc pairs an opener like `<<-END` with the next unclaimed
// heredoc body. The expression covers the opener only.
func (c *cstConverter) convertHeredoc(n *sitter.Node) *syntax.Node {
	heredoc := &syntax.Node{Type: syntax.TypeStr, Value: n.Content(c.src), Loc: syntax.Loc{Expression: rangeOf(n)}}

	if c.nextHeredoc >= len(c.heredocBodies) {
		return heredoc
	}

	body := c.heredocBodies[c.nextHeredoc]
	c.nextHeredoc++

	bodyRange := rangeOf(body)

	for i := range int(body.NamedChildCount()) {
		switch child := body.NamedChild(i); child.Type() {
		case "interpolation":
			heredoc.Type = syntax.TypeDstr
		case "heredoc_end":
			end := rangeOf(child)
			heredoc.Loc.HeredocEnd = &end
			bodyRange.End = end.Begin
		}
	}

	heredoc.Loc.HeredocBody = &bodyRange

	return heredoc
}
