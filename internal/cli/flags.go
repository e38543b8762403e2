package cli

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
)

// enumFlag is a pflag.Value that parses its text on Set, so bad values
// fail during flag parsing.
type enumFlag[T any] struct {
	value *T
	text  string
	typ   string
	parse func(string) (T, error)
}

func newEnumFlag[T any](p *T, def, typ string, parse func(string) (T, error)) *enumFlag[T] {
	return &enumFlag[T]{value: p, text: def, typ: typ, parse: parse}
}

func (f *enumFlag[T]) String() string { return f.text }
func (f *enumFlag[T]) Type() string   { return f.typ }

func (f *enumFlag[T]) Set(s string) error {
	v, err := f.parse(s)
	if err != nil {
		return err
	}
	*f.value = v
	f.text = s
	return nil
}

// parseDelimiter accepts a single character or one of "tab", `\t`.
func parseDelimiter(s string) (rune, error) {
	switch s {
	case "tab", `\t`:
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || r == utf8.RuneError || r == '"' || r == '\n' || r == '\r' {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s)
	}
	return r, nil
}

// parseBorderChars accepts either eleven space separated entries or an
// eleven character string.
func parseBorderChars(s string) []string {
	if strings.ContainsRune(strings.TrimSpace(s), ' ') {
		return strings.Fields(s)
	}
	chars := make([]string, 0, len(s))
	for _, r := range s {
		chars = append(chars, string(r))
	}
	return chars
}

func splitList(s string) []string {
	var out []string
	for f := range strings.SplitSeq(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

func stdoutWidth() (int, error) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0, fmt.Errorf("standard output is not a terminal")
	}
	w, _, err := term.GetSize(fd)
	return w, err
}
