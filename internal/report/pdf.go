package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mandolyte/mdtopdf"

	"github.com/at-ishikawa/kanafy/internal/pipeline"
)

// ConvertMarkdownToPDF writes a PDF next to the markdown file and returns its path.
func ConvertMarkdownToPDF(markdownPath string) (string, error) {
	if !strings.HasSuffix(markdownPath, ".md") {
		return "", fmt.Errorf("input file must have .md extension: %s", markdownPath)
	}

	content, err := os.ReadFile(markdownPath)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile(%s) > %w", markdownPath, err)
	}

	pdfPath := strings.TrimSuffix(markdownPath, ".md") + ".pdf"
	renderer := mdtopdf.NewPdfRenderer("P", "A4", pdfPath, "", nil, mdtopdf.LIGHT)
	if err := renderer.Process(content); err != nil {
		return "", fmt.Errorf("renderer.Process() > %w", err)
	}

	absPath, err := filepath.Abs(pdfPath)
	if err != nil {
		return pdfPath, nil
	}
	return absPath, nil
}

// WriteMarkdownAndPDF writes the markdown report to markdownPath and converts it to PDF.
func WriteMarkdownAndPDF(markdownPath, templatePath string, output pipeline.Output) (string, error) {
	file, err := os.Create(markdownPath)
	if err != nil {
		return "", fmt.Errorf("os.Create(%s) > %w", markdownPath, err)
	}
	if err := WriteMarkdown(file, templatePath, output); err != nil {
		_ = file.Close()
		return "", fmt.Errorf("WriteMarkdown() > %w", err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("file.Close() > %w", err)
	}
	return ConvertMarkdownToPDF(markdownPath)
}
