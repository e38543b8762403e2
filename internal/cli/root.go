package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/bjaus/prettytable"
	"github.com/bjaus/prettytable/internal/config"
	"github.com/bjaus/prettytable/internal/logging"
)

type rootFlags struct {
	configPath string
	debug      bool
	logFormat  string

	csv, md, html bool
	delimiter     rune

	output string
	format prettytable.Format

	border      prettytable.BorderStyle
	borderChars string
	align       prettytable.Alignment
	valign      prettytable.VAlign
	hrules      prettytable.RuleStyle
	vrules      prettytable.RuleStyle
	headerStyle prettytable.HeaderStyle

	padding       int
	minWidth      int
	maxWidth      int
	maxTableWidth int
	fit           bool
	noHeader      bool
	title         string
	fields        string

	sortBy string
	desc   bool
}

func newRootCmd(app *App) *cobra.Command {
	f := &rootFlags{
		logFormat: logging.FormatText,
		format:    prettytable.Text,
		hrules:    prettytable.RuleFrame,
		vrules:    prettytable.RuleAll,
	}

	cmd := &cobra.Command{
		Use:   "prettytable [file]",
		Short: "Render CSV, Markdown or HTML tables as aligned text",
		Long: `Read a table from a file or standard input and print it as an aligned
plain-text grid or in another format.

Defaults can be set in ~/.config/prettytable/config.yaml or in the file
named by $PRETTYTABLE_CONFIG.`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 1 {
				return usageErrorf("accepts at most one file, received %d", len(args))
			}
			return nil
		},
		Version:       app.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(f.configPath)
			if err != nil {
				return err
			}
			logFormat := f.logFormat
			if !cmd.Flags().Changed("log-format") && cfg.LogFormat != "" {
				if logFormat, err = logging.ParseFormat(cfg.LogFormat); err != nil {
					return fmt.Errorf("%w: %w", config.ErrInvalidConfig, err)
				}
			}
			log := logging.New(app.Stderr, f.debug, logFormat)
			return run(cmd.Context(), app, cmd.Flags(), f, cfg, log, args)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	fs := cmd.Flags()
	fs.StringVar(&f.configPath, "config", "", "Config file (default $PRETTYTABLE_CONFIG or ~/.config/prettytable/config.yaml)")
	fs.BoolVar(&f.debug, "debug", false, "Enable debug logging")
	fs.Var(newEnumFlag(&f.logFormat, logging.FormatText, "string", logging.ParseFormat), "log-format", "Log format: text|json|json-pretty")

	fs.BoolVar(&f.csv, "csv", false, "Read CSV input (default)")
	fs.BoolVar(&f.md, "md", false, "Read a Markdown table")
	fs.BoolVar(&f.html, "html", false, "Read an HTML table")
	fs.Var(newEnumFlag(&f.delimiter, "", "char", parseDelimiter), "delimiter", "CSV field delimiter (default: detected)")

	fs.StringVarP(&f.output, "output", "o", "", "Write to file instead of standard output")
	fs.VarP(newEnumFlag(&f.format, string(prettytable.Text), "format", prettytable.ParseFormat), "format", "f",
		"Output format: text|markdown|rst|html|csv|tsv|json|jsonl|yaml|latex|go-template=<tmpl>")

	fs.Var(newEnumFlag(&f.border, "ascii", "style", prettytable.ParseBorderStyle), "border", "Border style: ascii|markdown|none|single|double|rounded|heavy|custom")
	fs.StringVar(&f.borderChars, "border-chars", "", "Custom border characters (implies --border custom)")
	fs.Var(newEnumFlag(&f.align, "l", "align", prettytable.ParseAlignment), "align", "Horizontal alignment: l|c|r")
	fs.Var(newEnumFlag(&f.valign, "t", "valign", prettytable.ParseVAlign), "valign", "Vertical alignment: t|m|b")
	fs.Var(newEnumFlag(&f.hrules, "frame", "rules", prettytable.ParseRuleStyle), "hrules", "Horizontal rules: frame|all|header|none")
	fs.Var(newEnumFlag(&f.vrules, "all", "rules", prettytable.ParseRuleStyle), "vrules", "Vertical rules: frame|all|none")
	fs.Var(newEnumFlag(&f.headerStyle, "none", "style", prettytable.ParseHeaderStyle), "header-style", "Header casing: none|cap|title|upper|lower")

	fs.IntVar(&f.padding, "padding", 1, "Spaces on each side of a cell")
	fs.IntVar(&f.minWidth, "min-width", 0, "Minimum column width")
	fs.IntVar(&f.maxWidth, "max-width", 0, "Maximum column width; longer cells wrap (0 = none)")
	fs.IntVar(&f.maxTableWidth, "max-table-width", 0, "Maximum table width (0 = none)")
	fs.BoolVar(&f.fit, "fit", false, "Limit the table to the terminal width")
	fs.BoolVar(&f.noHeader, "no-header", false, "Do not print the header")
	fs.StringVar(&f.title, "title", "", "Title printed above the table")
	fs.StringVar(&f.fields, "fields", "", "Comma-separated columns to print")

	fs.StringVar(&f.sortBy, "sort-by", "", "Sort rows by column")
	fs.BoolVar(&f.desc, "desc", false, "Sort in descending order")

	return cmd
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

type inputType int

const (
	inputCSV inputType = iota
	inputMarkdown
	inputHTML
)

func (f *rootFlags) inputType() (inputType, error) {
	n := 0
	in := inputCSV
	for _, c := range []struct {
		set bool
		in  inputType
	}{{f.csv, inputCSV}, {f.md, inputMarkdown}, {f.html, inputHTML}} {
		if c.set {
			n++
			in = c.in
		}
	}
	if n > 1 {
		return 0, usageErrorf("--csv, --md and --html are mutually exclusive")
	}
	return in, nil
}

func run(ctx context.Context, app *App, fs *pflag.FlagSet, f *rootFlags, cfg *config.Config, log *logrus.Logger, args []string) error {
	in, err := f.inputType()
	if err != nil {
		return err
	}
	if in != inputCSV && fs.Changed("delimiter") {
		return usageErrorf("--delimiter only applies to CSV input")
	}
	opts, err := buildOptions(fs, f, cfg)
	if err != nil {
		return err
	}
	format, err := outputFormat(fs, f, cfg)
	if err != nil {
		return err
	}
	if f.fit && !fs.Changed("max-table-width") {
		termWidth := app.TerminalWidth
		if termWidth == nil {
			termWidth = stdoutWidth
		}
		if width, err := termWidth(); err != nil {
			log.WithError(err).Debug("Ignoring --fit")
		} else {
			opts.MaxTableWidth = width
		}
	}

	name, r, closeInput, err := openInput(app, args)
	if err != nil {
		return err
	}
	defer closeInput()
	if err := ctx.Err(); err != nil {
		return err
	}

	t, err := readTable(r, in, f.delimiter)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	log.WithFields(logrus.Fields{
		"source":  name,
		"rows":    t.RowCount(),
		"columns": t.ColumnCount(),
	}).Debug("Table loaded")

	if f.sortBy != "" {
		if err := t.Sort(f.sortBy, f.desc); err != nil {
			return err
		}
	}

	// Column styles and titles that came with the input survive.
	imported := t.Options()
	opts.Columns = imported.Columns
	if opts.Title == "" {
		opts.Title = imported.Title
	}
	t.SetOptions(opts)

	if err := ctx.Err(); err != nil {
		return err
	}
	out, err := t.Marshal(format)
	if err != nil {
		return err
	}
	log.WithField("format", format.String()).Debug("Table rendered")
	return writeOutput(app, f.output, out)
}

func openInput(app *App, args []string) (name string, r io.Reader, closeFn func(), err error) {
	if len(args) == 0 || args[0] == "-" {
		return "<stdin>", app.Stdin, func() {}, nil
	}
	file, err := os.Open(args[0])
	if err != nil {
		return "", nil, nil, err
	}
	return args[0], file, func() { _ = file.Close() }, nil
}

func readTable(r io.Reader, in inputType, delimiter rune) (*prettytable.Table, error) {
	switch in {
	case inputMarkdown:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return prettytable.FromMarkdown(string(data))
	case inputHTML:
		return prettytable.FromHTMLOne(r)
	default:
		var opts []prettytable.CSVOption
		if delimiter != 0 {
			opts = append(opts, prettytable.WithDelimiter(delimiter))
		}
		return prettytable.FromCSV(r, opts...)
	}
}

func writeOutput(app *App, path string, out []byte) error {
	if path == "" || path == "-" {
		_, err := io.Copy(app.Stdout, bytes.NewReader(out))
		return err
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
