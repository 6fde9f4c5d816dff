package lemons

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSession(t *testing.T) {
	var buf bytes.Buffer
	session := NewSession(NewEnv(), &buf)
	input := "x = 2\n\n  \nx ^ 3\r\n2 +\n(x\n"
	if err := session.Run(NewScannerReader(strings.NewReader(input))); err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"=> x",
		"=> 8",
		"<stdin>:1:4: error: expected number, identifier or '(' at end of input",
		"<stdin>:1:3: error: expected operator or ')' at end of input",
		"",
	}, "\n")
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Error(diff)
	}
}

func TestSessionErrorStyle(t *testing.T) {
	var buf bytes.Buffer
	session := NewSession(NewEnv(), &buf)
	session.ErrorStyle = func(a ...interface{}) string {
		return "!" + a[0].(string)
	}
	for _, line := range []string{"1 / 0", "1 + 1", "+"} {
		if err := session.Do(line); err != nil {
			t.Fatal(err)
		}
	}
	want := "!=> Error: Division By Zero!\n=> 2\n!<stdin>:1:1: error: expected identifier, number, '(' or '[' at '+'\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Error(diff)
	}
}

func TestSessionShowTree(t *testing.T) {
	var buf bytes.Buffer
	session := NewSession(NewEnv(), &buf)
	session.ShowTree = true
	if err := session.Do("7"); err != nil {
		t.Fatal(err)
	}
	want := "language|expr|number|regex:1:1 '7'\n=> 7\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Error(diff)
	}
}

type failingReader struct{}

func (failingReader) ReadLine() (string, error) {
	return "", errors.New("broken input")
}

func TestSessionReadError(t *testing.T) {
	session := NewSession(NewEnv(), io.Discard)
	if err := session.Run(failingReader{}); err == nil || err.Error() != "broken input" {
		t.Fatalf("want read error but got %v", err)
	}
}
