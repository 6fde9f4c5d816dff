package lemons

import (
	"strconv"
)

// link is one operand of a chain and the operator that follows it.
type link struct {
	operand *Node
	op      *Node
}

// chain is a flat "a op b op ... op z" sequence, resolved strictly left to
// right. Parenthesised groups appear as single operands.
type chain struct {
	links []link
	last  *Node
}

// Eval evaluates the parse tree n. It never fails: problems such as division
// by zero or an unbound variable come back as error values.
func (e *Env) Eval(n *Node) Value {
	switch {
	case n.IsTerminal() && n.Is("identifier"):
		return e.lookup(n.Contents)
	case n.IsTerminal() && n.Is("operator"):
		op, ok := LookupOperator(n.Contents)
		if !ok {
			return Error(ErrBadOperator)
		}
		return OpValue(op)
	case n.IsTerminal() && n.Is("number"):
		i, err := strconv.ParseInt(n.Contents, 10, 64)
		if err != nil {
			return Error(ErrInvalidNumber)
		}
		return Number(i)
	case n.Is("assign"):
		return e.assign(n)
	case n.Is("listexpr"):
		return e.list(n)
	case n.Is("expr"), n.Is("bracexpr"), n.Is("equation"):
		c, ok := lower(n)
		if !ok {
			return Error(ErrBadOperator)
		}
		return e.fold(c)
	}
	return Error(ErrBadOperator)
}

func (e *Env) lookup(name string) Value {
	expr, ok := e.vars[name]
	if !ok {
		return Error(ErrUndefinedVariable)
	}
	if e.active[name] {
		return Error(ErrRecursiveVariable)
	}
	e.active[name] = true
	defer delete(e.active, name)
	return e.Eval(expr)
}

func (e *Env) assign(n *Node) Value {
	if len(n.Children) != 3 || !n.Children[0].Is("identifier") {
		return Error(ErrBadOperator)
	}
	name := n.Children[0].Contents
	e.Set(name, n.Children[2])
	return VarRef(name)
}

// list evaluates every element; the first error wins over the list.
func (e *Env) list(n *Node) Value {
	var vs []Value
	for _, c := range n.Children {
		if c.Is("separator") || (c.Is("char") && (c.Contents == "[" || c.Contents == "]")) {
			continue
		}
		v := e.Eval(c)
		if v.IsError() {
			return v
		}
		vs = append(vs, v)
	}
	return List(vs...)
}

func lower(n *Node) (*chain, bool) {
	items := flatten(n, nil)
	if len(items)%2 == 0 {
		return nil, false
	}
	c := &chain{last: items[len(items)-1]}
	for i := 0; i+1 < len(items); i += 2 {
		if !items[i+1].IsTerminal() || !items[i+1].Is("operator") {
			return nil, false
		}
		c.links = append(c.links, link{operand: items[i], op: items[i+1]})
	}
	return c, true
}

// flatten appends the operands and operators of n to items. Nested chain
// tails are spliced in; the contents of parentheses stay one operand.
func flatten(n *Node, items []*Node) []*Node {
	grouped := false
	for _, c := range n.Children {
		switch {
		case grouped:
			items = append(items, c)
			grouped = false
		case c.Is("char") && c.Contents == "(":
			grouped = true
		case c.Is("char") && c.Contents == ")":
		case !c.IsTerminal() && (c.Is("equation") || c.Is("expr") || c.Is("bracexpr")):
			items = flatten(c, items)
		default:
			items = append(items, c)
		}
	}
	return items
}

func (e *Env) fold(c *chain) Value {
	if len(c.links) == 0 {
		return e.Eval(c.last)
	}
	total := e.Eval(c.links[0].operand)
	for i, l := range c.links {
		if total.IsError() {
			return total
		}
		op, ok := e.Eval(l.op).Op()
		if !ok {
			return Error(ErrBadOperator)
		}
		next := c.last
		if i+1 < len(c.links) {
			next = c.links[i+1].operand
		}
		total = apply(total, op, e.Eval(next))
	}
	return total
}
