package lemons

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Node is a node of a parse tree. Tag names every rule the node matched,
// joined by '|', outermost first.
type Node struct {
	Tag      string
	Contents string
	Pos      int
	Children []*Node
}

// Is reports whether the node matched the rule called name.
func (n *Node) Is(name string) bool {
	for _, t := range strings.Split(n.Tag, "|") {
		if t == name {
			return true
		}
	}
	return false
}

func (n *Node) IsTerminal() bool {
	return len(n.Children) == 0
}

// Copy returns a deep copy of the tree rooted at n.
func (n *Node) Copy() *Node {
	if n == nil {
		return nil
	}
	c := &Node{
		Tag:      n.Tag,
		Contents: n.Contents,
		Pos:      n.Pos,
	}
	if len(n.Children) > 0 {
		c.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			c.Children[i] = child.Copy()
		}
	}
	return c
}

func (n *Node) String() string {
	if n == nil {
		return "nil"
	}
	var buf bytes.Buffer
	if n.IsTerminal() {
		fmt.Fprintf(&buf, "%s:%q", n.Tag, n.Contents)
		return buf.String()
	}
	fmt.Fprintf(&buf, "(%s", n.Tag)
	for _, child := range n.Children {
		fmt.Fprint(&buf, " ", child)
	}
	fmt.Fprint(&buf, ")")
	return buf.String()
}

// Print writes the tree as an indented outline, one node per line.
func (n *Node) Print(w io.Writer) error {
	return n.print(w, 0)
}

func (n *Node) print(w io.Writer, depth int) error {
	indent := strings.Repeat("  ", depth)
	var err error
	if n.IsTerminal() {
		_, err = fmt.Fprintf(w, "%s%s:1:%d '%s'\n", indent, n.Tag, n.Pos+1, n.Contents)
		return err
	}
	if _, err = fmt.Fprintf(w, "%s%s\n", indent, n.Tag); err != nil {
		return err
	}
	for _, child := range n.Children {
		if err = child.print(w, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// SyntaxError describes input that does not match the grammar. It points at
// the furthest position any rule reached.
type SyntaxError struct {
	Filename string
	Line     int
	Col      int
	Expected []string
	Found    string
}

func (e *SyntaxError) Error() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s:%d:%d: error: expected ", e.Filename, e.Line, e.Col)
	switch len(e.Expected) {
	case 0:
		fmt.Fprint(&buf, "nothing")
	case 1:
		fmt.Fprint(&buf, e.Expected[0])
	default:
		fmt.Fprint(&buf, strings.Join(e.Expected[:len(e.Expected)-1], ", "))
		fmt.Fprint(&buf, " or ", e.Expected[len(e.Expected)-1])
	}
	fmt.Fprint(&buf, " at ", e.Found)
	return buf.String()
}

// Parser matches input against a grammar. It keeps no state between calls.
type Parser struct {
	g *Grammar
}

func NewParser(g *Grammar) *Parser {
	return &Parser{g: g}
}

// Parse matches the whole of input against the start rule. filename is only
// used in error messages.
func (p *Parser) Parse(filename, input string) (*Node, error) {
	s := &state{
		g:     p.g,
		input: input,
	}
	_, nodes, ok := ref(p.g.start).match(s, 0)
	if !ok {
		return nil, s.syntaxError(filename)
	}
	if len(nodes) != 1 {
		return nil, fmt.Errorf("rule %v produced %d nodes", p.g.start, len(nodes))
	}
	return nodes[0], nil
}

var defaultParser = NewParser(LemonScript)

// Parse parses one line of LemonScript.
func Parse(line string) (*Node, error) {
	return defaultParser.Parse("<stdin>", line)
}

type state struct {
	g        *Grammar
	input    string
	far      int
	expected []string
	label    string
}

func (s *state) skipWhite(pos int) int {
	for pos < len(s.input) {
		switch s.input[pos] {
		case ' ', '\t', '\r', '\n':
			pos++
		default:
			return pos
		}
	}
	return pos
}

func (s *state) fail(pos int, what string) {
	if s.label != "" {
		what = s.label
	}
	if pos > s.far {
		s.far = pos
		s.expected = s.expected[:0]
	}
	if pos < s.far {
		return
	}
	for _, e := range s.expected {
		if e == what {
			return
		}
	}
	s.expected = append(s.expected, what)
}

func (s *state) syntaxError(filename string) *SyntaxError {
	line, col := 1, 1
	for _, r := range s.input[:s.far] {
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	found := "end of input"
	if s.far < len(s.input) {
		found = fmt.Sprintf("'%c'", []rune(s.input[s.far:])[0])
	}
	return &SyntaxError{
		Filename: filename,
		Line:     line,
		Col:      col,
		Expected: append([]string(nil), s.expected...),
		Found:    found,
	}
}

func (l lit) match(s *state, pos int) (int, []*Node, bool) {
	pos = s.skipWhite(pos)
	if !strings.HasPrefix(s.input[pos:], string(l)) {
		s.fail(pos, fmt.Sprintf("'%s'", string(l)))
		return pos, nil, false
	}
	tag := "char"
	if len(l) > 1 {
		tag = "string"
	}
	return pos + len(l), []*Node{{Tag: tag, Contents: string(l), Pos: pos}}, true
}

func (r *regex) match(s *state, pos int) (int, []*Node, bool) {
	pos = s.skipWhite(pos)
	loc := r.re.FindStringIndex(s.input[pos:])
	if loc == nil {
		s.fail(pos, "/"+r.src+"/")
		return pos, nil, false
	}
	end := pos + loc[1]
	return end, []*Node{{Tag: "regex", Contents: s.input[pos:end], Pos: pos}}, true
}

func (r ref) match(s *state, pos int) (int, []*Node, bool) {
	rule := s.g.rules[string(r)]
	label := s.label
	if rule.Token && label == "" {
		s.label = rule.Name
	}
	end, nodes, ok := rule.Expr.match(s, pos)
	s.label = label
	if !ok {
		return pos, nil, false
	}
	if len(nodes) == 1 {
		nodes[0].Tag = rule.Name + "|" + nodes[0].Tag
		return end, nodes, true
	}
	node := &Node{
		Tag:      rule.Name,
		Pos:      s.skipWhite(pos),
		Children: nodes,
	}
	if len(nodes) > 0 {
		node.Pos = nodes[0].Pos
	}
	return end, []*Node{node}, true
}

func (e seq) match(s *state, pos int) (int, []*Node, bool) {
	var nodes []*Node
	cur := pos
	for _, c := range e {
		end, ns, ok := c.match(s, cur)
		if !ok {
			return pos, nil, false
		}
		nodes = append(nodes, ns...)
		cur = end
	}
	return cur, nodes, true
}

func (e alt) match(s *state, pos int) (int, []*Node, bool) {
	for _, c := range e {
		if end, ns, ok := c.match(s, pos); ok {
			return end, ns, true
		}
	}
	return pos, nil, false
}

func (e many) match(s *state, pos int) (int, []*Node, bool) {
	var nodes []*Node
	for {
		end, ns, ok := e.e.match(s, pos)
		if !ok || end == pos {
			return pos, nodes, true
		}
		nodes = append(nodes, ns...)
		pos = end
	}
}

func (e opt) match(s *state, pos int) (int, []*Node, bool) {
	if end, ns, ok := e.e.match(s, pos); ok {
		return end, ns, true
	}
	return pos, nil, true
}

func (soi) match(s *state, pos int) (int, []*Node, bool) {
	if pos != 0 {
		s.fail(pos, "start of input")
		return pos, nil, false
	}
	return pos, nil, true
}

func (eoi) match(s *state, pos int) (int, []*Node, bool) {
	end := s.skipWhite(pos)
	if end != len(s.input) {
		s.fail(end, "end of input")
		return pos, nil, false
	}
	return end, nil, true
}
