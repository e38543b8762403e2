package prettytable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/prettytable"
)

func TestParseOptions(t *testing.T) {
	t.Parallel()

	a, err := prettytable.ParseAlignment("C")
	require.NoError(t, err)
	assert.Equal(t, prettytable.AlignCenter, a)
	_, err = prettytable.ParseAlignment("middle")
	require.ErrorIs(t, err, prettytable.ErrInvalidOption)

	v, err := prettytable.ParseVAlign("bottom")
	require.NoError(t, err)
	assert.Equal(t, prettytable.VAlignBottom, v)
	_, err = prettytable.ParseVAlign("x")
	require.ErrorIs(t, err, prettytable.ErrInvalidOption)

	r, err := prettytable.ParseRuleStyle("header")
	require.NoError(t, err)
	assert.Equal(t, prettytable.RuleHeader, r)
	_, err = prettytable.ParseRuleStyle("some")
	require.ErrorIs(t, err, prettytable.ErrInvalidOption)

	h, err := prettytable.ParseHeaderStyle("title")
	require.NoError(t, err)
	assert.Equal(t, prettytable.HeaderTitle, h)
	_, err = prettytable.ParseHeaderStyle("shout")
	require.ErrorIs(t, err, prettytable.ErrInvalidOption)
}

func TestParseBorderStyle(t *testing.T) {
	t.Parallel()
	tests := map[string]prettytable.BorderStyle{
		"default":  prettytable.BorderASCII,
		"ASCII":    prettytable.BorderASCII,
		"markdown": prettytable.BorderMarkdown,
		"none":     prettytable.BorderNone,
		"single":   prettytable.BorderSingle,
		"double":   prettytable.BorderDouble,
		"rounded":  prettytable.BorderRounded,
		"heavy":    prettytable.BorderHeavy,
		"custom":   prettytable.BorderCustom,
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			t.Parallel()
			got, err := prettytable.ParseBorderStyle(in)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}

	_, err := prettytable.ParseBorderStyle("wavy")
	require.ErrorIs(t, err, prettytable.ErrInvalidBorderStyle)
	assert.Equal(t, "double", prettytable.BorderDouble.String())
	assert.Equal(t, "ascii", prettytable.BorderASCII.String())
}

func TestUnknownBorderStyleValue(t *testing.T) {
	t.Parallel()
	tbl := cities(t)
	opts := tbl.Options()
	opts.Border = prettytable.BorderStyle(99)
	tbl.SetOptions(opts)
	_, err := tbl.Render()
	require.ErrorIs(t, err, prettytable.ErrInvalidBorderStyle)
}

func TestOptionsAreCopied(t *testing.T) {
	t.Parallel()
	opts := prettytable.DefaultOptions()
	opts.Fields = []string{"City"}
	tbl, err := prettytable.NewWithOptions(opts, "City", "Pop")
	require.NoError(t, err)
	opts.Fields[0] = "Pop"
	assert.Equal(t, []string{"City"}, tbl.Options().Fields)

	got := tbl.Options()
	got.Fields[0] = "Pop"
	assert.Equal(t, []string{"City"}, tbl.Options().Fields)
}

func TestDefaultOptions(t *testing.T) {
	t.Parallel()
	opts := prettytable.DefaultOptions()
	assert.Equal(t, prettytable.BorderASCII, opts.Border)
	assert.Equal(t, prettytable.RuleFrame, opts.HRules)
	assert.Equal(t, prettytable.RuleAll, opts.VRules)
	assert.True(t, opts.Header)
	assert.True(t, opts.PrintEmpty)
	assert.Equal(t, 1, opts.PaddingLeft)
	assert.Equal(t, 1, opts.PaddingRight)
	assert.NotEmpty(t, opts.LineSeparator)
}
