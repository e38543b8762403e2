package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLevels(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	l := New(&buf, false, FormatText)
	l.Debug("hidden")
	l.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")

	buf.Reset()
	l = New(&buf, true, FormatText)
	l.WithField("key", "value").Debug("visible")
	assert.Contains(t, buf.String(), "msg=visible")
	assert.Contains(t, buf.String(), "key=value")
}

func TestNewJSON(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	l := New(&buf, false, FormatJSON)
	l.WithField("rows", 2).Info("loaded")
	assert.Contains(t, buf.String(), `"msg":"loaded"`)
	assert.Contains(t, buf.String(), `"rows":2`)
}

func TestNewNilWriter(t *testing.T) {
	t.Parallel()
	l := New(nil, false, FormatText)
	assert.NotNil(t, l.Out)
}

func TestFormatter(t *testing.T) {
	t.Parallel()
	assert.IsType(t, &logrus.TextFormatter{}, Formatter(FormatText))
	assert.IsType(t, &logrus.JSONFormatter{}, Formatter(FormatJSON))
	assert.True(t, Formatter(FormatJSONPretty).(*logrus.JSONFormatter).PrettyPrint)
	assert.IsType(t, &logrus.TextFormatter{}, Formatter("other"))
}

func TestParseFormat(t *testing.T) {
	t.Parallel()
	for _, f := range Formats {
		got, err := ParseFormat(f)
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
	_, err := ParseFormat("xml")
	require.Error(t, err)
}
