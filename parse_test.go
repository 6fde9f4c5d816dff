package lemons

import (
	"bytes"
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{
			input: "1",
			want:  `language|expr|number|regex:"1"`,
		},
		{
			input: "  x  ",
			want:  `language|expr|identifier|regex:"x"`,
		},
		{
			input: "1 + 2",
			want:  `(language|expr (equation number|regex:"1" operator|char:"+") number|regex:"2")`,
		},
		{
			input: "1-2",
			want:  `(language|expr (equation number|regex:"1" operator|char:"-") number|regex:"2")`,
		},
		{
			input: "x = 5",
			want:  `(language|assign identifier|regex:"x" char:"=" expr|number|regex:"5")`,
		},
		{
			input: "(1)",
			want:  `(language|bracexpr char:"(" expr|number|regex:"1" char:")")`,
		},
		{
			input: "(1) * 2",
			want:  `(language|bracexpr char:"(" expr|number|regex:"1" char:")" operator|char:"*" expr|number|regex:"2")`,
		},
		{
			input: "2 ^ (1)",
			want:  `(language|bracexpr (equation number|regex:"2" operator|char:"^") char:"(" expr|number|regex:"1" char:")")`,
		},
		{
			input: "[1, 2]",
			want:  `(language|listexpr char:"[" expr|number|regex:"1" separator|char:"," expr|number|regex:"2" char:"]")`,
		},
		{
			input: "[]",
			want:  `(language|listexpr char:"[" char:"]")`,
		},
	}
	for _, test := range tests {
		t.Logf("%q", test.input)
		node, err := Parse(test.input)
		if err != nil {
			t.Error(err)
			continue
		}
		got := node.String()

		if got != test.want {
			t.Errorf("want %q for %q but got %q", test.want, test.input, got)
		}
	}
}

func TestParseError(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{
			input: "",
			want:  "<stdin>:1:1: error: expected identifier, number, '(' or '[' at end of input",
		},
		{
			input: "2 +",
			want:  "<stdin>:1:4: error: expected number, identifier or '(' at end of input",
		},
		{
			input: "1 2",
			want:  "<stdin>:1:3: error: expected operator or end of input at '2'",
		},
		{
			input: "x = y = 1",
			want:  "<stdin>:1:7: error: expected operator or end of input at '='",
		},
		{
			input: "[1 2]",
			want:  "<stdin>:1:4: error: expected operator, separator or ']' at '2'",
		},
		{
			input: "2 $ 3",
			want:  "<stdin>:1:3: error: expected operator or end of input at '$'",
		},
	}
	for _, test := range tests {
		t.Logf("%q", test.input)
		_, err := Parse(test.input)
		var se *SyntaxError
		if !errors.As(err, &se) {
			t.Errorf("want syntax error for %q but got %v", test.input, err)
			continue
		}
		if got := se.Error(); got != test.want {
			t.Errorf("want %q for %q but got %q", test.want, test.input, got)
		}
	}
}

func TestCopy(t *testing.T) {
	node, err := Parse("x = (1 + 2) * y")
	if err != nil {
		t.Fatal(err)
	}
	c := node.Copy()
	if c.String() != node.String() {
		t.Fatalf("want %q but got %q", node.String(), c.String())
	}
	node.Children[2].Children[0].Contents = "changed"
	if c.String() == node.String() {
		t.Fatal("copy shares nodes with the original")
	}
}

func TestPrint(t *testing.T) {
	node, err := Parse("x = 1 + y")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err = node.Print(&buf); err != nil {
		t.Fatal(err)
	}
	want := `language|assign
  identifier|regex:1:1 'x'
  char:1:3 '='
  expr
    equation
      number|regex:1:5 '1'
      operator|char:1:7 '+'
    identifier|regex:1:9 'y'
`
	if got := buf.String(); got != want {
		t.Errorf("want %q but got %q", want, got)
	}
}

func TestNewGrammar(t *testing.T) {
	if _, err := NewGrammar("start", Rule{Name: "start", Expr: Ref("missing")}); err == nil {
		t.Error("want error for undefined rule")
	}
	if _, err := NewGrammar("nope", Rule{Name: "start", Expr: Lit("a")}); err == nil {
		t.Error("want error for undefined start rule")
	}
	g, err := NewGrammar("start",
		Rule{Name: "word", Expr: Regex(`[a-z]+`), Token: true},
		Rule{Name: "start", Expr: Seq(SOI(), Ref("word"), Many(Seq(Lit(";"), Ref("word"))), Opt(Lit(";")), EOI())},
	)
	if err != nil {
		t.Fatal(err)
	}
	node, err := NewParser(g).Parse("test", "a; b;")
	if err != nil {
		t.Fatal(err)
	}
	want := `(start word|regex:"a" char:";" word|regex:"b" char:";")`
	if got := node.String(); got != want {
		t.Errorf("want %q but got %q", want, got)
	}
	_, err = NewParser(g).Parse("test", "a;;")
	want = "test:1:3: error: expected word or end of input at ';'"
	if err == nil || err.Error() != want {
		t.Errorf("want %q but got %v", want, err)
	}
}
