package report

import (
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"github.com/at-ishikawa/kanafy/internal/lrc"
	"github.com/at-ishikawa/kanafy/internal/pipeline"
)

const fallbackTemplateName = "lrc-report.md.go.tmpl"

//go:embed templates/lrc-report.md.go.tmpl
var fallbackReportTemplate string

// MarkdownReport is the data passed to report templates.
type MarkdownReport struct {
	Title         string
	Artist        string
	JobID         string
	UseG2pk       bool
	TotalLines    int
	LyricsLines   int
	MetadataLines int
	ErrorLines    int
	Lines         []MarkdownLine
}

// MarkdownLine is a lyric line of a report. Lines are listed in timestamp order.
type MarkdownLine struct {
	Timestamp      string
	Original       string
	Converted      string
	PhoneticHangul string
	Error          string

	at lrc.Timestamp
}

func NewMarkdownReport(output pipeline.Output) MarkdownReport {
	report := MarkdownReport{
		Title:         output.Metadata["ti"],
		Artist:        output.Metadata["ar"],
		JobID:         output.JobID,
		UseG2pk:       output.UseG2pk,
		TotalLines:    output.TotalLines,
		LyricsLines:   output.LyricsLines,
		MetadataLines: output.MetadataLines,
		ErrorLines:    output.ErrorLines,
	}
	for _, detail := range output.Details {
		if detail.Type != lrc.KindLyric {
			continue
		}
		at, _ := lrc.ParseTimestamp(detail.Timestamp)
		report.Lines = append(report.Lines, MarkdownLine{
			at:             at,
			Timestamp:      detail.Timestamp,
			Original:       detail.OriginalLyrics,
			Converted:      detail.ConvertedLyrics,
			PhoneticHangul: detail.PhoneticHangul,
			Error:          detail.Error,
		})
	}
	slices.SortStableFunc(report.Lines, func(a, b MarkdownLine) int {
		switch {
		case a.at.Before(b.at):
			return -1
		case b.at.Before(a.at):
			return 1
		}
		return 0
	})
	return report
}

// WriteMarkdown renders output with the template at templatePath, or the embedded one if it is unusable.
func WriteMarkdown(w io.Writer, templatePath string, output pipeline.Output) error {
	tmpl, err := ParseReportTemplate(templatePath)
	if err != nil {
		return fmt.Errorf("ParseReportTemplate() > %w", err)
	}
	if err := tmpl.Execute(w, NewMarkdownReport(output)); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}

func ParseReportTemplate(templatePath string) (*template.Template, error) {
	funcMap := template.FuncMap{
		"join": strings.Join,
		"cell": markdownCell,
	}

	if templatePath != "" {
		if _, err := os.Stat(templatePath); err == nil {
			tmpl, err := template.New(filepath.Base(templatePath)).
				Funcs(funcMap).
				ParseFiles(templatePath)
			if err == nil {
				return tmpl, nil
			}
			slog.Default().Warn("failed to parse a templatePath",
				slog.String("templatePath", templatePath),
				slog.Any("error", err),
			)
		}
	}

	tmpl, err := template.New(fallbackTemplateName).
		Funcs(funcMap).
		Parse(fallbackReportTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded template: %w", err)
	}
	return tmpl, nil
}

var cellReplacer = strings.NewReplacer("|", `\|`, "\r", "", "\n", " ")

func markdownCell(s string) string {
	return cellReplacer.Replace(s)
}
