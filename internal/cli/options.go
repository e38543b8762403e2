package cli

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/bjaus/prettytable"
	"github.com/bjaus/prettytable/internal/config"
)

// buildOptions layers the config file and then explicitly set flags over
// the library defaults.
func buildOptions(fs *pflag.FlagSet, f *rootFlags, cfg *config.Config) (prettytable.Options, error) {
	opts := prettytable.DefaultOptions()
	if err := applyConfig(&opts, cfg); err != nil {
		return opts, fmt.Errorf("%w: %w", config.ErrInvalidConfig, err)
	}

	if fs.Changed("border") {
		opts.Border = f.border
	}
	if fs.Changed("border-chars") {
		opts.Border = prettytable.BorderCustom
		opts.CustomBorder = parseBorderChars(f.borderChars)
	}
	if fs.Changed("align") {
		opts.Align = f.align
	}
	if fs.Changed("valign") {
		opts.VAlign = f.valign
	}
	if fs.Changed("hrules") {
		opts.HRules = f.hrules
	}
	if fs.Changed("vrules") {
		if f.vrules == prettytable.RuleHeader {
			return opts, usageErrorf("--vrules must be frame, all or none")
		}
		opts.VRules = f.vrules
	}
	if fs.Changed("header-style") {
		opts.HeaderStyle = f.headerStyle
	}
	if fs.Changed("padding") {
		if f.padding < 0 {
			return opts, usageErrorf("--padding must be non-negative")
		}
		opts.PaddingLeft, opts.PaddingRight = f.padding, f.padding
	}
	for _, w := range []struct {
		name string
		val  int
		dst  *int
	}{
		{"min-width", f.minWidth, &opts.MinWidth},
		{"max-width", f.maxWidth, &opts.MaxWidth},
		{"max-table-width", f.maxTableWidth, &opts.MaxTableWidth},
	} {
		if !fs.Changed(w.name) {
			continue
		}
		if w.val < 0 {
			return opts, usageErrorf("--%s must be non-negative", w.name)
		}
		*w.dst = w.val
	}
	if f.noHeader {
		opts.Header = false
	}
	if f.title != "" {
		opts.Title = f.title
	}
	if f.fields != "" {
		opts.Fields = splitList(f.fields)
	}
	opts.LineSeparator = "\n"
	return opts, nil
}

func applyConfig(opts *prettytable.Options, cfg *config.Config) error {
	var err error
	if cfg.Border != "" {
		if opts.Border, err = prettytable.ParseBorderStyle(cfg.Border); err != nil {
			return err
		}
	}
	if cfg.BorderChars != "" {
		opts.Border = prettytable.BorderCustom
		opts.CustomBorder = parseBorderChars(cfg.BorderChars)
	}
	if cfg.Align != "" {
		if opts.Align, err = prettytable.ParseAlignment(cfg.Align); err != nil {
			return err
		}
	}
	if cfg.VAlign != "" {
		if opts.VAlign, err = prettytable.ParseVAlign(cfg.VAlign); err != nil {
			return err
		}
	}
	if cfg.HRules != "" {
		if opts.HRules, err = prettytable.ParseRuleStyle(cfg.HRules); err != nil {
			return err
		}
	}
	if cfg.VRules != "" {
		if opts.VRules, err = prettytable.ParseRuleStyle(cfg.VRules); err != nil {
			return err
		}
	}
	if cfg.HeaderStyle != "" {
		if opts.HeaderStyle, err = prettytable.ParseHeaderStyle(cfg.HeaderStyle); err != nil {
			return err
		}
	}
	if cfg.Padding != nil {
		opts.PaddingLeft, opts.PaddingRight = *cfg.Padding, *cfg.Padding
	}
	if cfg.Header != nil {
		opts.Header = *cfg.Header
	}
	if cfg.MinWidth != 0 {
		opts.MinWidth = cfg.MinWidth
	}
	if cfg.MaxWidth != 0 {
		opts.MaxWidth = cfg.MaxWidth
	}
	if cfg.MaxTableWidth != 0 {
		opts.MaxTableWidth = cfg.MaxTableWidth
	}
	return nil
}

func outputFormat(fs *pflag.FlagSet, f *rootFlags, cfg *config.Config) (prettytable.Format, error) {
	if fs.Changed("format") || cfg.Format == "" {
		return f.format, nil
	}
	format, err := prettytable.ParseFormat(cfg.Format)
	if err != nil {
		return "", fmt.Errorf("%w: %w", config.ErrInvalidConfig, err)
	}
	return format, nil
}
