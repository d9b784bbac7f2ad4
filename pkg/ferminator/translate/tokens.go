package translate

import (
	"strings"

	"github.com/xuri/efp"
)

// Leaf kinds. The rewrite passes only need to distinguish numbers, the
// percent postfix operator, and range/address operands; everything else is
// carried through verbatim.
const (
	leafOther = iota
	leafNumber
	leafPercent
	leafRange
	leafSpace
)

// node is one fragment of a parsed formula: either a literal leaf or a
// function call / parenthesized group with fully parsed arguments.
type node struct {
	text string
	kind int
	call *callNode
}

// callNode is a function call, or a bare parenthesized group when name is
// empty and group is set. Each argument is itself a node sequence.
type callNode struct {
	name  string
	group bool
	args  []nodes
}

type nodes []node

// parseFormula tokenizes a bare formula (no leading "=") and folds the token
// stream into a call tree. It reports false when the tokenizer rejects the
// input or parentheses do not balance; callers pass the formula through
// unchanged in that case.
func parseFormula(formula string) (nodes, bool) {
	ps := efp.ExcelParser()
	tokens := ps.Parse(formula)
	if tokens == nil {
		return nil, false
	}

	type frame struct {
		call *callNode
		cur  nodes
	}
	root := &frame{}
	stack := []*frame{root}
	top := func() *frame { return stack[len(stack)-1] }

	for _, tok := range tokens {
		switch {
		case tok.TType == efp.TokenTypeFunction && tok.TSubType == efp.TokenSubTypeStart:
			stack = append(stack, &frame{call: &callNode{name: tok.TValue}})

		case tok.TType == efp.TokenTypeSubexpression && tok.TSubType == efp.TokenSubTypeStart:
			stack = append(stack, &frame{call: &callNode{group: true}})

		case tok.TSubType == efp.TokenSubTypeStop &&
			(tok.TType == efp.TokenTypeFunction || tok.TType == efp.TokenTypeSubexpression):
			if len(stack) == 1 {
				return nil, false
			}
			f := top()
			f.call.args = append(f.call.args, f.cur)
			stack = stack[:len(stack)-1]
			top().cur = append(top().cur, node{call: f.call})

		case tok.TType == efp.TokenTypeArgument:
			f := top()
			if f.call == nil {
				return nil, false
			}
			f.call.args = append(f.call.args, f.cur)
			f.cur = nil

		default:
			f := top()
			f.cur = append(f.cur, leafFromToken(tok))
		}
	}

	if len(stack) != 1 {
		return nil, false
	}
	return root.cur, true
}

func leafFromToken(tok efp.Token) node {
	switch tok.TType {
	case efp.TokenTypeOperand:
		switch tok.TSubType {
		case efp.TokenSubTypeNumber:
			return node{text: tok.TValue, kind: leafNumber}
		case efp.TokenSubTypeRange:
			return node{text: tok.TValue, kind: leafRange}
		case efp.TokenSubTypeText:
			// The tokenizer unescapes doubled quotes; restore them so the
			// literal re-renders as written.
			return node{text: `"` + strings.ReplaceAll(tok.TValue, `"`, `""`) + `"`}
		}
		return node{text: tok.TValue}
	case efp.TokenTypeOperatorPostfix:
		if tok.TValue == "%" {
			return node{text: "%", kind: leafPercent}
		}
		return node{text: tok.TValue}
	case efp.TokenTypeWhitespace:
		return node{text: " ", kind: leafSpace}
	case efp.TokenTypeOperatorInfix:
		if tok.TSubType == efp.TokenSubTypeIntersection {
			return node{text: " ", kind: leafSpace}
		}
		return node{text: tok.TValue}
	default:
		return node{text: tok.TValue}
	}
}

// render reassembles the fragment sequence into formula text.
func (ns nodes) render() string {
	var b strings.Builder
	for _, n := range ns {
		if n.call != nil {
			b.WriteString(n.call.render())
		} else {
			b.WriteString(n.text)
		}
	}
	return b.String()
}

func (c *callNode) render() string {
	parts := make([]string, 0, len(c.args))
	for _, arg := range c.args {
		parts = append(parts, arg.render())
	}
	if c.group {
		return "(" + strings.Join(parts, ",") + ")"
	}
	return c.name + "(" + strings.Join(parts, ",") + ")"
}

// soleLeaf returns the single non-whitespace leaf of an argument, when the
// argument is exactly one leaf.
func (ns nodes) soleLeaf() (node, bool) {
	var leaf node
	found := false
	for _, n := range ns {
		if n.kind == leafSpace {
			continue
		}
		if n.call != nil || found {
			return node{}, false
		}
		leaf = n
		found = true
	}
	return leaf, found
}

// isEmpty reports whether the argument holds no non-whitespace content.
func (ns nodes) isEmpty() bool {
	for _, n := range ns {
		if n.call != nil || n.kind != leafSpace {
			return false
		}
	}
	return true
}
