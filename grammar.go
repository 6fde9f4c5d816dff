package lemons

import (
	"fmt"
	"regexp"
)

// Expr is one piece of a grammar rule.
type Expr interface {
	match(s *state, pos int) (int, []*Node, bool)
}

// Rule is a named production. Token rules report their own name, rather than
// the literals inside them, when a syntax error is described.
type Rule struct {
	Name  string
	Expr  Expr
	Token bool
}

// Grammar is an immutable set of rules with a start rule.
type Grammar struct {
	start string
	rules map[string]*Rule
}

type lit string

type regex struct {
	src string
	re  *regexp.Regexp
}

type ref string

type seq []Expr

type alt []Expr

type many struct{ e Expr }

type opt struct{ e Expr }

type soi struct{}

type eoi struct{}

// Lit matches the literal string s.
func Lit(s string) Expr { return lit(s) }

// Regex matches the regular expression pattern at the current position.
func Regex(pattern string) Expr {
	return &regex{
		src: pattern,
		re:  regexp.MustCompile(`^(?:` + pattern + `)`),
	}
}

// Ref matches the rule called name.
func Ref(name string) Expr { return ref(name) }

// Seq matches every expression in order.
func Seq(es ...Expr) Expr { return seq(es) }

// Alt matches the first expression that succeeds.
func Alt(es ...Expr) Expr { return alt(es) }

// Many matches e zero or more times.
func Many(e Expr) Expr { return many{e} }

// Opt matches e zero or one time.
func Opt(e Expr) Expr { return opt{e} }

// SOI matches the start of the input.
func SOI() Expr { return soi{} }

// EOI matches the end of the input, ignoring trailing whitespace.
func EOI() Expr { return eoi{} }

// NewGrammar builds a grammar and checks that every Ref names a rule.
func NewGrammar(start string, rules ...Rule) (*Grammar, error) {
	g := &Grammar{
		start: start,
		rules: make(map[string]*Rule),
	}
	for i := range rules {
		r := rules[i]
		if _, ok := g.rules[r.Name]; ok {
			return nil, fmt.Errorf("duplicate rule: %v", r.Name)
		}
		g.rules[r.Name] = &r
	}
	if _, ok := g.rules[start]; !ok {
		return nil, fmt.Errorf("undefined start rule: %v", start)
	}
	for _, r := range g.rules {
		if err := g.check(r.Name, r.Expr); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// MustGrammar is like NewGrammar but panics on error.
func MustGrammar(start string, rules ...Rule) *Grammar {
	g, err := NewGrammar(start, rules...)
	if err != nil {
		panic(err)
	}
	return g
}

func (g *Grammar) check(name string, e Expr) error {
	switch e := e.(type) {
	case ref:
		if _, ok := g.rules[string(e)]; !ok {
			return fmt.Errorf("rule %v: undefined rule: %v", name, string(e))
		}
	case seq:
		for _, c := range e {
			if err := g.check(name, c); err != nil {
				return err
			}
		}
	case alt:
		for _, c := range e {
			if err := g.check(name, c); err != nil {
				return err
			}
		}
	case many:
		return g.check(name, e.e)
	case opt:
		return g.check(name, e.e)
	}
	return nil
}

func operand() Expr {
	return Alt(Ref("number"), Ref("identifier"))
}

func chained() Expr {
	return Alt(Ref("bracexpr"), Ref("expr"))
}

// LemonScript is the grammar of the calculator language. Operators have no
// precedence; chains are resolved left to right by the evaluator.
var LemonScript = MustGrammar("language",
	Rule{Name: "number", Expr: Regex(`-?[0-9]+`), Token: true},
	Rule{Name: "operator", Expr: Alt(Lit("+"), Lit("-"), Lit("*"), Lit("/"), Lit("%"), Lit("^")), Token: true},
	Rule{Name: "identifier", Expr: Regex(`[a-zA-Z_][a-zA-Z0-9_]*`), Token: true},
	Rule{Name: "equation", Expr: Seq(operand(), Ref("operator"))},
	Rule{Name: "expr", Expr: Seq(Many(Ref("equation")), operand())},
	Rule{Name: "bracexpr", Expr: Seq(
		Many(Ref("equation")),
		Lit("("), chained(), Lit(")"),
		Opt(Seq(Ref("operator"), chained())),
	)},
	Rule{Name: "separator", Expr: Lit(","), Token: true},
	Rule{Name: "listexpr", Expr: Seq(
		Lit("["),
		Opt(Seq(chained(), Many(Seq(Ref("separator"), chained())))),
		Lit("]"),
	)},
	Rule{Name: "assign", Expr: Seq(Ref("identifier"), Lit("="), Alt(Ref("bracexpr"), Ref("listexpr"), Ref("expr")))},
	Rule{Name: "language", Expr: Seq(SOI(), Alt(Ref("assign"), Ref("bracexpr"), Ref("listexpr"), Ref("expr")), EOI())},
)
