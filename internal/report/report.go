// Package report renders conversion results for people and for other programs.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/kanafy/internal/lrc"
	"github.com/at-ishikawa/kanafy/internal/pipeline"
)

type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

var Formats = []Format{FormatText, FormatYAML, FormatJSON}

// Write writes output in format. Details are included in text output only if withDetails is set.
func Write(w io.Writer, output pipeline.Output, format Format, withDetails bool) error {
	switch format {
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(output); err != nil {
			return fmt.Errorf("encoder.Encode() > %w", err)
		}
		return encoder.Close()
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		encoder.SetEscapeHTML(false)
		if err := encoder.Encode(output); err != nil {
			return fmt.Errorf("encoder.Encode() > %w", err)
		}
		return nil
	case FormatText, "":
		if withDetails {
			if err := WriteTable(w, output.Details); err != nil {
				return err
			}
			if err := WriteSummary(w, output); err != nil {
				return err
			}
			return nil
		}
		_, err := io.WriteString(w, output.Processed)
		return err
	default:
		return fmt.Errorf("unknown format: %q", format)
	}
}

// WriteTable writes one row per line, with failed lines in red.
func WriteTable(w io.Writer, details []lrc.LineDetail) error {
	faint := color.New(color.Faint)
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	for _, detail := range details {
		var err error
		switch {
		case detail.Error != "":
			_, err = red.Fprintf(w, "%4d  %-12s  %s  %s  (%s)\n",
				detail.LineNumber, detail.Type, detail.Timestamp, detail.OriginalLyrics, detail.Error)
		case detail.Type == lrc.KindLyric:
			_, err = green.Fprintf(w, "%4d  %-12s  %s  %s -> %s\n",
				detail.LineNumber, detail.Type, detail.Timestamp, detail.OriginalLyrics, detail.ConvertedLyrics)
		default:
			_, err = faint.Fprintf(w, "%4d  %-12s  %s\n",
				detail.LineNumber, detail.Type, detail.Original)
		}
		if err != nil {
			return fmt.Errorf("Fprintf() > %w", err)
		}
	}
	return nil
}

func WriteSummary(w io.Writer, output pipeline.Output) error {
	bold := color.New(color.Bold)
	if _, err := bold.Fprintf(w, "%d lines: %d lyrics, %d metadata\n",
		output.TotalLines, output.LyricsLines, output.MetadataLines); err != nil {
		return fmt.Errorf("Fprintf() > %w", err)
	}
	if output.ErrorLines > 0 {
		if _, err := color.New(color.FgRed, color.Bold).Fprintf(w, "%d lines could not be converted\n", output.ErrorLines); err != nil {
			return fmt.Errorf("Fprintf() > %w", err)
		}
	}
	return nil
}
