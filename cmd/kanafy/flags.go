package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/at-ishikawa/kanafy/internal/conversion"
	"github.com/at-ishikawa/kanafy/internal/report"
)

// ModeFlag overrides conversion.mode of the configuration.
type ModeFlag string

// Set implements pflag.Value.
func (m *ModeFlag) Set(v string) error {
	switch conversion.Mode(v) {
	case conversion.ModeConcurrent, conversion.ModeBatch:
		*m = ModeFlag(v)
	default:
		return fmt.Errorf("invalid value %q, valid values are %q or %q", v, conversion.ModeConcurrent, conversion.ModeBatch)
	}
	return nil
}

// String implements pflag.Value.
func (m *ModeFlag) String() string {
	if m == nil {
		return ""
	}
	return string(*m)
}

// Type implements pflag.Value.
func (m *ModeFlag) Type() string {
	return "ModeFlag"
}

type FormatFlag report.Format

func (f *FormatFlag) Set(v string) error {
	for _, format := range report.Formats {
		if v == string(format) {
			*f = FormatFlag(format)
			return nil
		}
	}
	return fmt.Errorf("invalid format: %s, valid values are %v", v, report.Formats)
}

func (f FormatFlag) String() string {
	return string(f)
}

func (f *FormatFlag) Type() string {
	return "FormatFlag"
}

var (
	_ pflag.Value = (*ModeFlag)(nil)
	_ pflag.Value = (*FormatFlag)(nil)
)
