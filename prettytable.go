package prettytable

import (
	"errors"
	"fmt"
	"maps"
	"runtime"
	"slices"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrShapeMismatch        = errors.New("shape mismatch")
	ErrInvalidBorderStyle   = errors.New("invalid border style")
	ErrUnsupportedValueType = errors.New("unsupported value type")
	ErrDuplicateColumn      = errors.New("duplicate column")
	ErrUnknownColumn        = errors.New("unknown column")
	ErrRowIndex             = errors.New("row index out of range")
	ErrInvalidOption        = errors.New("invalid option")
	ErrMalformedInput       = errors.New("malformed input")
	ErrUnsupportedFormat    = errors.New("unsupported format")
	ErrInvalidTemplate      = errors.New("invalid template")
)

// Alignment controls horizontal text alignment within a column.
// The zero value defers to the table-wide default.
type Alignment int

const (
	AlignDefault Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// VAlign controls where a short cell sits within a multi-line row.
// The zero value defers to the table-wide default.
type VAlign int

const (
	VAlignDefault VAlign = iota
	VAlignTop
	VAlignMiddle
	VAlignBottom
)

// RuleStyle controls which horizontal or vertical rules are drawn.
type RuleStyle int

const (
	RuleFrame  RuleStyle = iota // outer frame (and header separator for HRules)
	RuleAll                     // every rule
	RuleHeader                  // header separator only; HRules only
	RuleNone                    // nothing
)

// HeaderStyle transforms header labels before rendering.
type HeaderStyle int

const (
	HeaderAsIs HeaderStyle = iota
	HeaderCap
	HeaderTitle
	HeaderUpper
	HeaderLower
)

// ColumnStyle overrides table-wide options for one column. Zero fields
// inherit from [Options].
type ColumnStyle struct {
	Align    Alignment
	VAlign   VAlign
	MinWidth int
	MaxWidth int

	// IntFormat and FloatFormat are printf flag/width/precision fragments
	// applied as %<IntFormat>d and %<FloatFormat>f, e.g. "03" or ".2".
	IntFormat   string
	FloatFormat string
}

// Options configures rendering. Start from [DefaultOptions] and override
// fields; a zero Options has no padding and hides the header.
type Options struct {
	Border       BorderStyle
	CustomBorder []string // used when Border is BorderCustom

	HRules RuleStyle
	VRules RuleStyle

	Header      bool
	HeaderStyle HeaderStyle
	Title       string

	Align  Alignment
	VAlign VAlign

	PaddingLeft  int
	PaddingRight int

	MinWidth int
	MaxWidth int

	MinTableWidth int
	MaxTableWidth int

	Columns map[string]ColumnStyle

	// Fields limits rendering to the named columns. Nil renders all.
	Fields []string

	// PrintEmpty renders the header and borders of a table with columns
	// but no rows. Without it such a table renders nothing.
	PrintEmpty bool

	LineSeparator string
}

// DefaultOptions returns the default rendering options: ASCII borders,
// framed horizontal rules, all vertical rules, a visible header,
// left alignment and one space of padding on each side.
func DefaultOptions() Options {
	return Options{
		Border:        BorderASCII,
		HRules:        RuleFrame,
		VRules:        RuleAll,
		Header:        true,
		Align:         AlignLeft,
		VAlign:        VAlignTop,
		PaddingLeft:   1,
		PaddingRight:  1,
		PrintEmpty:    true,
		LineSeparator: defaultLineSeparator(),
	}
}

func defaultLineSeparator() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

func (o Options) clone() Options {
	o.CustomBorder = slices.Clone(o.CustomBorder)
	o.Fields = slices.Clone(o.Fields)
	o.Columns = maps.Clone(o.Columns)
	return o
}

func (o Options) column(name string) ColumnStyle {
	cs := o.Columns[name]
	if cs.Align == AlignDefault {
		cs.Align = o.Align
	}
	if cs.Align == AlignDefault {
		cs.Align = AlignLeft
	}
	if cs.VAlign == VAlignDefault {
		cs.VAlign = o.VAlign
	}
	if cs.VAlign == VAlignDefault {
		cs.VAlign = VAlignTop
	}
	if cs.MinWidth == 0 {
		cs.MinWidth = o.MinWidth
	}
	if cs.MaxWidth == 0 {
		cs.MaxWidth = o.MaxWidth
	}
	return cs
}

func (o Options) lineSeparator() string {
	if o.LineSeparator == "" {
		return "\n"
	}
	return o.LineSeparator
}

func (o Options) validate() error {
	switch {
	case o.PaddingLeft < 0 || o.PaddingRight < 0:
		return fmt.Errorf("%w: padding must be non-negative", ErrInvalidOption)
	case o.MinWidth < 0 || o.MaxWidth < 0:
		return fmt.Errorf("%w: column widths must be non-negative", ErrInvalidOption)
	case o.MinTableWidth < 0 || o.MaxTableWidth < 0:
		return fmt.Errorf("%w: table widths must be non-negative", ErrInvalidOption)
	case o.VRules == RuleHeader:
		return fmt.Errorf("%w: vertical rules cannot be %q", ErrInvalidOption, "header")
	}
	for name, cs := range o.Columns {
		if cs.MinWidth < 0 || cs.MaxWidth < 0 {
			return fmt.Errorf("%w: column %q widths must be non-negative", ErrInvalidOption, name)
		}
		if !validIntFormat(cs.IntFormat) {
			return fmt.Errorf("%w: column %q int format %q", ErrInvalidOption, name, cs.IntFormat)
		}
		if !validFloatFormat(cs.FloatFormat) {
			return fmt.Errorf("%w: column %q float format %q", ErrInvalidOption, name, cs.FloatFormat)
		}
	}
	_, err := o.borderChars()
	return err
}

// ParseAlignment parses "l", "c", "r" or their long forms.
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(s) {
	case "l", "left":
		return AlignLeft, nil
	case "c", "center", "centre":
		return AlignCenter, nil
	case "r", "right":
		return AlignRight, nil
	}
	return AlignDefault, fmt.Errorf("%w: alignment %q", ErrInvalidOption, s)
}

// ParseVAlign parses "t", "m", "b" or their long forms.
func ParseVAlign(s string) (VAlign, error) {
	switch strings.ToLower(s) {
	case "t", "top":
		return VAlignTop, nil
	case "m", "middle":
		return VAlignMiddle, nil
	case "b", "bottom":
		return VAlignBottom, nil
	}
	return VAlignDefault, fmt.Errorf("%w: vertical alignment %q", ErrInvalidOption, s)
}

// ParseRuleStyle parses "frame", "all", "header" or "none".
func ParseRuleStyle(s string) (RuleStyle, error) {
	switch strings.ToLower(s) {
	case "frame":
		return RuleFrame, nil
	case "all":
		return RuleAll, nil
	case "header":
		return RuleHeader, nil
	case "none":
		return RuleNone, nil
	}
	return RuleFrame, fmt.Errorf("%w: rule style %q", ErrInvalidOption, s)
}

// ParseHeaderStyle parses "", "none", "cap", "title", "upper" or "lower".
func ParseHeaderStyle(s string) (HeaderStyle, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return HeaderAsIs, nil
	case "cap":
		return HeaderCap, nil
	case "title":
		return HeaderTitle, nil
	case "upper":
		return HeaderUpper, nil
	case "lower":
		return HeaderLower, nil
	}
	return HeaderAsIs, fmt.Errorf("%w: header style %q", ErrInvalidOption, s)
}
