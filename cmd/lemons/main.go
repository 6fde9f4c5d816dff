package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/lmorg/readline"
	"github.com/mattn/go-isatty"
	"github.com/mattn/lemons"
)

const version = "0.1.0"

var (
	prelude  = flag.Bool("prelude", false, "load the bundled library before reading input")
	showTree = flag.Bool("ast", false, "print the parse tree of every line")
)

type readlineReader struct {
	rl *readline.Instance
}

// ReadLine treats every readline error, Ctrl+C included, as the end of input.
func (r *readlineReader) ReadLine() (string, error) {
	line, err := r.rl.Readline()
	if err != nil {
		return "", io.EOF
	}
	return line, nil
}

func completer(env *lemons.Env) func([]rune, int, readline.DelayedTabContext) (string, []string, map[string]string, readline.TabDisplayType) {
	return func(line []rune, pos int, dtx readline.DelayedTabContext) (string, []string, map[string]string, readline.TabDisplayType) {
		start := pos
		for start > 0 && isIdentRune(line[start-1]) {
			start--
		}
		prefix := string(line[start:pos])
		var suggestions []string
		for _, name := range env.Names() {
			if strings.HasPrefix(name, prefix) {
				suggestions = append(suggestions, name[len(prefix):])
			}
		}
		return prefix, suggestions, nil, readline.TabDisplayGrid
	}
}

func isIdentRune(r rune) bool {
	return r == '_' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9')
}

func repl(session *lemons.Session) error {
	fmt.Printf("LemonScript Version %s\n", version)
	fmt.Println("Press Ctrl+c to Exit")
	fmt.Println()

	rl := readline.NewInstance()
	rl.SetPrompt("lemons> ")
	rl.TabCompleter = completer(session.Env())
	return session.Run(&readlineReader{rl: rl})
}

func main() {
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	env := lemons.NewEnv()
	defer env.Close()
	if *prelude {
		if err := lemons.LoadLib(env); err != nil {
			log.Fatal(err)
		}
	}

	session := lemons.NewSession(env, os.Stdout)
	session.ShowTree = *showTree
	session.ErrorStyle = color.New(color.FgRed).SprintFunc()

	var f *os.File
	var err error

	if flag.NArg() == 0 {
		if isatty.IsTerminal(os.Stdin.Fd()) {
			if err = repl(session); err != nil {
				log.Fatal(err)
			}
			return
		}
		f = os.Stdin
	}

	if flag.NArg() == 1 {
		f, err = os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		session.Filename = flag.Arg(0)
	}

	if err = session.Run(lemons.NewScannerReader(f)); err != nil {
		log.Fatal(err)
	}
}
