package prettytable

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Wrap splits s into lines no wider than width display columns. Explicit
// newlines always break. Lines that already fit are returned unchanged;
// longer lines are word wrapped greedily at whitespace, and words wider
// than width are broken at exactly width columns. The result always has
// at least one line. A width of zero or less disables wrapping.
func Wrap(s string, width int) []string {
	var lines []string
	for line := range strings.SplitSeq(s, "\n") {
		lines = append(lines, wrapLine(line, width)...)
	}
	return lines
}

func wrapLine(s string, width int) []string {
	if width <= 0 || DisplayWidth(s) <= width {
		return []string{s}
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var (
		lines []string
		cur   strings.Builder
		curW  int
	)
	flush := func() {
		lines = append(lines, cur.String())
		cur.Reset()
		curW = 0
	}
	for _, word := range words {
		ww := DisplayWidth(word)
		if ww > width {
			if curW > 0 {
				flush()
			}
			chunks := hardBreak(word, width)
			lines = append(lines, chunks[:len(chunks)-1]...)
			last := chunks[len(chunks)-1]
			cur.WriteString(last)
			curW = DisplayWidth(last)
			continue
		}
		switch {
		case curW == 0:
			cur.WriteString(word)
			curW = ww
		case curW+1+ww <= width:
			cur.WriteByte(' ')
			cur.WriteString(word)
			curW += 1 + ww
		default:
			flush()
			cur.WriteString(word)
			curW = ww
		}
	}
	if curW > 0 {
		flush()
	}
	return lines
}

// hardBreak splits s at exactly width columns. ANSI sequences take no
// space and are never split. A rune wider than width gets a chunk of its
// own.
func hardBreak(s string, width int) []string {
	var (
		chunks []string
		cur    strings.Builder
		curW   int
	)
	for i := 0; i < len(s); {
		if s[i] == '\x1b' {
			if loc := ansiRe.FindStringIndex(s[i:]); loc != nil && loc[0] == 0 {
				cur.WriteString(s[i : i+loc[1]])
				i += loc[1]
				continue
			}
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		rw := runewidth.RuneWidth(r)
		if curW > 0 && curW+rw > width {
			chunks = append(chunks, cur.String())
			cur.Reset()
			curW = 0
		}
		cur.WriteString(s[i : i+size])
		curW += rw
		i += size
	}
	if cur.Len() > 0 || len(chunks) == 0 {
		chunks = append(chunks, cur.String())
	}
	return chunks
}

// fitLines pads a wrapped cell to height lines according to valign.
func fitLines(lines []string, height int, valign VAlign) []string {
	d := height - len(lines)
	if d <= 0 {
		return lines
	}
	out := make([]string, 0, height)
	top := 0
	switch valign {
	case VAlignMiddle:
		top = d / 2
	case VAlignBottom:
		top = d
	}
	for range top {
		out = append(out, "")
	}
	out = append(out, lines...)
	for len(out) < height {
		out = append(out, "")
	}
	return out
}
