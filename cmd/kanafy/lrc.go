package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/kanafy/internal/conversion"
	"github.com/at-ishikawa/kanafy/internal/pipeline"
	"github.com/at-ishikawa/kanafy/internal/report"
)

func newLRCCommand() *cobra.Command {
	var (
		mode        ModeFlag
		format      = FormatFlag(report.FormatText)
		showDetails bool
		outputFile  string
		reportFile  string
		generatePDF bool
		useRemote   bool
	)

	command := &cobra.Command{
		Use:   "lrc <file>",
		Short: "Convert the lyrics of an LRC file. Use - to read from stdin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if generatePDF && reportFile == "" {
				return fmt.Errorf("--pdf requires --report")
			}

			content, err := readInput(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if mode != "" {
				cfg.Conversion.Mode = string(mode)
			}

			client := newKanafyClient(cfg)
			defer func() {
				_ = client.Close()
			}()
			var options []pipeline.Option
			if useRemote {
				options = append(options, pipeline.WithRemote(client))
			}

			output, err := pipeline.NewFromConfig(cfg, client, options...).ConvertDocument(cmd.Context(), content)
			if err != nil {
				return fmt.Errorf("pipeline.ConvertDocument > %w", err)
			}

			if outputFile != "" {
				if err := os.WriteFile(outputFile, []byte(output.Processed), 0644); err != nil {
					return fmt.Errorf("os.WriteFile(%s) > %w", outputFile, err)
				}
				slog.Default().Info("wrote the converted document", "path", outputFile)
			} else {
				if err := report.Write(cmd.OutOrStdout(), output, report.Format(format), showDetails); err != nil {
					return fmt.Errorf("report.Write > %w", err)
				}
			}

			if reportFile == "" {
				return nil
			}
			if !generatePDF {
				return writeMarkdownReport(reportFile, cfg.Templates.ReportTemplate, output)
			}
			pdfPath, err := report.WriteMarkdownAndPDF(reportFile, cfg.Templates.ReportTemplate, output)
			if err != nil {
				return fmt.Errorf("report.WriteMarkdownAndPDF > %w", err)
			}
			slog.Default().Info("wrote a PDF report", "path", pdfPath)
			return nil
		},
	}

	flags := command.Flags()
	flags.Var(&mode, "mode", fmt.Sprintf("Conversion mode overriding the configuration. Options: %s, %s", conversion.ModeConcurrent, conversion.ModeBatch))
	flags.Var(&format, "format", fmt.Sprintf("Output format. Options: %v", report.Formats))
	flags.BoolVar(&showDetails, "details", false, "Show the result of every line instead of the converted document")
	flags.StringVarP(&outputFile, "output", "o", "", "Write the converted document to this file")
	flags.StringVar(&reportFile, "report", "", "Write a markdown report to this .md file")
	flags.BoolVar(&generatePDF, "pdf", false, "Also convert the markdown report to PDF")
	flags.BoolVar(&useRemote, "remote", false, "Convert the whole document on the service")
	return command
}

func readInput(stdin io.Reader, path string) (string, error) {
	if path == "-" {
		content, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("io.ReadAll(stdin) > %w", err)
		}
		return string(content), nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}
	return string(content), nil
}

func writeMarkdownReport(path, templatePath string, output pipeline.Output) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("os.Create(%s) > %w", path, err)
	}

	if err := report.WriteMarkdown(file, templatePath, output); err != nil {
		_ = file.Close()
		return fmt.Errorf("report.WriteMarkdown > %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("file.Close(%s) > %w", path, err)
	}
	slog.Default().Info("wrote a report", "path", path)
	return nil
}
