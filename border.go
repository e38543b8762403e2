package prettytable

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// BorderStyle selects the characters used to draw rules and separators.
type BorderStyle int

const (
	BorderASCII    BorderStyle = iota // +-|
	BorderMarkdown                    // |---|, header separator only
	BorderNone                        // no rules, no vertical characters
	BorderSingle                      // ┌─┐└┘│┬┴├┤┼
	BorderDouble                      // ╔═╗╚╝║╦╩╠╣╬
	BorderRounded                     // ╭─╮╰╯│┬┴├┤┼
	BorderHeavy                       // ┏━┓┗┛┃┳┻┣┫╋
	BorderCustom                      // Options.CustomBorder
)

// BorderCharCount is the number of entries a custom border set must
// supply, in the order: top-left, top-tee, top-right, left-tee, cross,
// right-tee, bottom-left, bottom-tee, bottom-right, horizontal, vertical.
const BorderCharCount = 11

var borderNames = map[string]BorderStyle{
	"ascii":    BorderASCII,
	"default":  BorderASCII,
	"markdown": BorderMarkdown,
	"none":     BorderNone,
	"single":   BorderSingle,
	"double":   BorderDouble,
	"rounded":  BorderRounded,
	"heavy":    BorderHeavy,
	"custom":   BorderCustom,
}

// ParseBorderStyle parses a border style name such as "ascii" or "double".
func ParseBorderStyle(s string) (BorderStyle, error) {
	if b, ok := borderNames[strings.ToLower(s)]; ok {
		return b, nil
	}
	return BorderASCII, fmt.Errorf("%w: %q", ErrInvalidBorderStyle, s)
}

func (b BorderStyle) String() string {
	for name, style := range borderNames {
		if style == b && name != "default" {
			return name
		}
	}
	return fmt.Sprintf("BorderStyle(%d)", int(b))
}

type borderChars struct {
	topLeft, topTee, topRight          string
	leftTee, cross, rightTee           string
	bottomLeft, bottomTee, bottomRight string
	horizontal, vertical               string
}

func newBorderChars(c []string) borderChars {
	return borderChars{
		topLeft: c[0], topTee: c[1], topRight: c[2],
		leftTee: c[3], cross: c[4], rightTee: c[5],
		bottomLeft: c[6], bottomTee: c[7], bottomRight: c[8],
		horizontal: c[9], vertical: c[10],
	}
}

var borderSets = map[BorderStyle]borderChars{
	BorderASCII:    newBorderChars(strings.Split("+ + + + + + + + + - |", " ")),
	BorderMarkdown: newBorderChars(strings.Split("| | | | | | | | | - |", " ")),
	BorderSingle:   newBorderChars(strings.Split("┌ ┬ ┐ ├ ┼ ┤ └ ┴ ┘ ─ │", " ")),
	BorderDouble:   newBorderChars(strings.Split("╔ ╦ ╗ ╠ ╬ ╣ ╚ ╩ ╝ ═ ║", " ")),
	BorderRounded:  newBorderChars(strings.Split("╭ ┬ ╮ ├ ┼ ┤ ╰ ┴ ╯ ─ │", " ")),
	BorderHeavy:    newBorderChars(strings.Split("┏ ┳ ┓ ┣ ╋ ┫ ┗ ┻ ┛ ━ ┃", " ")),
}

// borderChars resolves the character set for the configured style.
// BorderNone has no characters and returns the zero set.
func (o Options) borderChars() (borderChars, error) {
	switch o.Border {
	case BorderNone:
		return borderChars{}, nil
	case BorderCustom:
		if len(o.CustomBorder) < BorderCharCount {
			return borderChars{}, fmt.Errorf("%w: custom border has %d characters, need %d",
				ErrInvalidBorderStyle, len(o.CustomBorder), BorderCharCount)
		}
		for i, c := range o.CustomBorder[:BorderCharCount] {
			if runewidth.StringWidth(c) != 1 {
				return borderChars{}, fmt.Errorf("%w: custom border entry %d (%q) must be one column wide",
					ErrInvalidBorderStyle, i, c)
			}
		}
		return newBorderChars(o.CustomBorder), nil
	}
	bc, ok := borderSets[o.Border]
	if !ok {
		return borderChars{}, fmt.Errorf("%w: %d", ErrInvalidBorderStyle, int(o.Border))
	}
	return bc, nil
}
