// Package logging configures the CLI logger.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

const (
	FormatText       = "text"
	FormatJSON       = "json"
	FormatJSONPretty = "json-pretty"
)

// Formats lists the accepted log formats.
var Formats = []string{FormatText, FormatJSON, FormatJSONPretty}

// New returns a logger writing to w (stderr when nil). Debug lowers the
// level from info to debug.
func New(w io.Writer, debug bool, format string) *logrus.Logger {
	if w == nil {
		w = os.Stderr
	}
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(Formatter(format))
	l.SetLevel(logrus.InfoLevel)
	if debug {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}

// Formatter maps a format name to a logrus formatter. Unknown names get
// the text formatter.
func Formatter(format string) logrus.Formatter {
	switch format {
	case FormatJSON:
		return &logrus.JSONFormatter{}
	case FormatJSONPretty:
		return &logrus.JSONFormatter{PrettyPrint: true}
	default:
		return &logrus.TextFormatter{DisableTimestamp: true}
	}
}

// ParseFormat validates a log format name.
func ParseFormat(s string) (string, error) {
	for _, f := range Formats {
		if s == f {
			return s, nil
		}
	}
	return "", fmt.Errorf("invalid log format %q", s)
}
