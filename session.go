package lemons

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Prefix is written before every evaluated result.
const Prefix = "=> "

// LineReader supplies input one line at a time. ReadLine returns io.EOF when
// the input is exhausted.
type LineReader interface {
	ReadLine() (string, error)
}

type scannerReader struct {
	scanner *bufio.Scanner
}

// NewScannerReader reads lines from r.
func NewScannerReader(r io.Reader) LineReader {
	return &scannerReader{scanner: bufio.NewScanner(r)}
}

func (r *scannerReader) ReadLine() (string, error) {
	if r.scanner.Scan() {
		return r.scanner.Text(), nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// Session reads lines, evaluates them against one Env and prints one line of
// output for each.
type Session struct {
	Filename string
	// ShowTree prints the parse tree of each line before its result.
	ShowTree bool
	// ErrorStyle decorates error and syntax error lines.
	ErrorStyle func(a ...interface{}) string

	env    *Env
	parser *Parser
	out    io.Writer
}

func NewSession(env *Env, out io.Writer) *Session {
	return &Session{
		Filename:   "<stdin>",
		ErrorStyle: fmt.Sprint,
		env:        env,
		parser:     defaultParser,
		out:        out,
	}
}

func (s *Session) Env() *Env {
	return s.env
}

// Do parses and evaluates one line. Blank lines are ignored. Syntax errors are
// printed, not returned; the returned error is only for failed writes.
func (s *Session) Do(line string) error {
	line = strings.TrimRight(line, "\r\n")
	if strings.TrimSpace(line) == "" {
		return nil
	}
	node, err := s.parser.Parse(s.Filename, line)
	if err != nil {
		var se *SyntaxError
		if !errors.As(err, &se) {
			return err
		}
		_, err = fmt.Fprintln(s.out, s.ErrorStyle(se.Error()))
		return err
	}
	if s.ShowTree {
		if err = node.Print(s.out); err != nil {
			return err
		}
	}
	v := s.env.Eval(node)
	out := Prefix + v.String()
	if v.IsError() {
		out = s.ErrorStyle(out)
	}
	_, err = fmt.Fprintln(s.out, out)
	return err
}

// Run processes lines from r until it reports io.EOF.
func (s *Session) Run(r LineReader) error {
	for {
		line, err := r.ReadLine()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err = s.Do(line); err != nil {
			return err
		}
	}
}
