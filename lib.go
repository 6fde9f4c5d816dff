package lemons

import (
	"bufio"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/rakyll/statik/fs"

	_ "github.com/mattn/lemons/statik"
)

//go:generate statik -src=lib -f

// LoadLib evaluates the bundled library files into env. Lines starting with
// '#' are comments.
func LoadLib(env *Env) error {
	statikFS, err := fs.New()
	if err != nil {
		return err
	}
	dir, err := statikFS.Open("/")
	if err != nil {
		return err
	}
	defer dir.Close()

	fis, err := dir.Readdir(-1)
	if err != nil {
		return err
	}
	sort.Slice(fis, func(i, j int) bool { return fis[i].Name() < fis[j].Name() })
	for _, fi := range fis {
		if fi.IsDir() {
			continue
		}
		f, err := statikFS.Open(path.Join("/", fi.Name()))
		if err != nil {
			return err
		}
		err = loadFile(env, fi.Name(), bufio.NewScanner(f))
		f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func loadFile(env *Env, name string, scanner *bufio.Scanner) error {
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		node, err := defaultParser.Parse(name, line)
		if err != nil {
			var se *SyntaxError
			if errors.As(err, &se) {
				se.Line = lineno
			}
			return err
		}
		if v := env.Eval(node); v.IsError() {
			return fmt.Errorf("%s:%d: %v", name, lineno, v.Err())
		}
	}
	return scanner.Err()
}
