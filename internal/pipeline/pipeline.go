// Package pipeline runs a whole conversion job: parse, convert, and reassemble.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/avast/retry-go"
	"github.com/google/uuid"

	"github.com/at-ishikawa/kanafy/internal/conversion"
	"github.com/at-ishikawa/kanafy/internal/kanafy"
	"github.com/at-ishikawa/kanafy/internal/lrc"
)

const defaultRetryDelay = 500 * time.Millisecond

// Output is the result of converting one document.
type Output struct {
	JobID         string            `json:"job_id" yaml:"job_id"`
	Original      string            `json:"original_content" yaml:"original_content"`
	Processed     string            `json:"processed_content" yaml:"processed_content"`
	Details       []lrc.LineDetail  `json:"line_details" yaml:"line_details"`
	Metadata      map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	UseG2pk       bool              `json:"use_g2pk" yaml:"use_g2pk"`
	TotalLines    int               `json:"total_lines" yaml:"total_lines"`
	LyricsLines   int               `json:"lyrics_lines" yaml:"lyrics_lines"`
	MetadataLines int               `json:"metadata_lines" yaml:"metadata_lines"`
	ErrorLines    int               `json:"error_lines" yaml:"error_lines"`
}

// Overrides replaces configured service flags for a single job. Nil fields keep the configuration.
type Overrides struct {
	UseG2pk *bool
}

type Pipeline struct {
	converter    conversion.Converter
	orchestrator *conversion.Orchestrator
	remote       DocumentConverter

	maxRetryAttempts uint
	retryDelay       time.Duration
	newJobID         func() string
}

type Option func(*Pipeline)

// WithRetry retries a job whose service could not be reached.
func WithRetry(attempts uint, delay time.Duration) Option {
	return func(p *Pipeline) {
		p.maxRetryAttempts = attempts
		if delay > 0 {
			p.retryDelay = delay
		}
	}
}

// WithRemote converts documents on the service side instead of line by line.
func WithRemote(remote DocumentConverter) Option {
	return func(p *Pipeline) {
		p.remote = remote
	}
}

func WithJobIDGenerator(newJobID func() string) Option {
	return func(p *Pipeline) {
		p.newJobID = newJobID
	}
}

func New(converter conversion.Converter, config conversion.Config, options ...Option) *Pipeline {
	p := &Pipeline{
		converter:    converter,
		orchestrator: conversion.NewOrchestrator(converter, config),
		retryDelay:   defaultRetryDelay,
		newJobID:     uuid.NewString,
	}
	for _, option := range options {
		option(p)
	}
	return p
}

// ConvertDocument converts every lyric line of text and reassembles the document.
// Failures of single lines are reported in the details; only an unreachable service fails the job.
func (p *Pipeline) ConvertDocument(ctx context.Context, text string) (Output, error) {
	return p.ConvertDocumentWith(ctx, text, Overrides{})
}

// ConvertDocumentWith is ConvertDocument with per-job overrides.
func (p *Pipeline) ConvertDocumentWith(ctx context.Context, text string, overrides Overrides) (Output, error) {
	jobID := p.newJobID()
	options := p.options(overrides)
	logger := slog.Default().With("job_id", jobID)
	start := time.Now()

	if p.remote != nil {
		output, err := p.convertRemote(ctx, text, options.UseG2pk)
		if err != nil {
			return Output{}, err
		}
		output.JobID = jobID
		logger.Info("converted a document on the service",
			"total_lines", output.TotalLines,
			"error_lines", output.ErrorLines,
			"elapsed", time.Since(start),
		)
		return output, nil
	}

	doc := lrc.ParseDocument(text)
	logger.Debug("parsed a document",
		"total_lines", doc.TotalLines,
		"lyrics_lines", doc.LyricsLines,
		"metadata_lines", doc.MetadataLines,
		"unrecognized_lines", doc.UnrecognizedLines,
	)

	var results map[int]lrc.ConversionResult
	if err := p.withRetry(ctx, logger, func() error {
		var err error
		results, err = p.orchestrator.ConvertWithOptions(ctx, doc, options)
		return err
	}); err != nil {
		return Output{}, fmt.Errorf("orchestrator.Convert > %w", err)
	}

	reassembled := lrc.Reassemble(doc, results)
	output := Output{
		JobID:         jobID,
		Original:      text,
		Processed:     reassembled.Document,
		Details:       reassembled.Details,
		Metadata:      doc.Metadata(),
		UseG2pk:       options.UseG2pk,
		TotalLines:    doc.TotalLines,
		LyricsLines:   doc.LyricsLines,
		MetadataLines: doc.MetadataLines,
		ErrorLines:    reassembled.ErrorCount(),
	}
	logger.Info("converted a document",
		"total_lines", output.TotalLines,
		"lyrics_lines", output.LyricsLines,
		"error_lines", output.ErrorLines,
		"elapsed", time.Since(start),
	)
	return output, nil
}

// ConvertText converts a free text with a single call.
func (p *Pipeline) ConvertText(ctx context.Context, text string) (conversion.Outcome, error) {
	logger := slog.Default().With("job_id", p.newJobID())

	var outcome conversion.Outcome
	if err := p.withRetry(ctx, logger, func() error {
		var err error
		outcome, err = p.converter.Convert(ctx, text, p.orchestrator.Options())
		return err
	}); err != nil {
		return conversion.Outcome{}, fmt.Errorf("converter.Convert > %w", err)
	}
	return outcome, nil
}

func (p *Pipeline) options(overrides Overrides) conversion.Options {
	options := p.orchestrator.Options()
	if overrides.UseG2pk != nil {
		options.UseG2pk = *overrides.UseG2pk
	}
	return options
}

func (p *Pipeline) convertRemote(ctx context.Context, text string, useG2pk bool) (Output, error) {
	var response kanafy.DocumentResponse
	if err := p.withRetry(ctx, slog.Default(), func() error {
		var err error
		response, err = p.remote.ConvertDocument(ctx, text, useG2pk)
		return err
	}); err != nil {
		return Output{}, fmt.Errorf("remote.ConvertDocument > %w", err)
	}

	output := Output{
		Original:      text,
		Processed:     response.ProcessedContent,
		Details:       make([]lrc.LineDetail, 0, len(response.LineDetails)),
		Metadata:      lrc.ParseDocument(text).Metadata(),
		UseG2pk:       response.UseG2pk,
		TotalLines:    response.TotalLines,
		LyricsLines:   response.LyricsLines,
		MetadataLines: response.MetadataLines,
	}
	for _, remoteDetail := range response.LineDetails {
		detail := remoteDetail.LineDetail()
		if detail.Error != "" {
			output.ErrorLines++
		}
		output.Details = append(output.Details, detail)
	}
	return output, nil
}

// withRetry retries f only while the service is unreachable.
func (p *Pipeline) withRetry(ctx context.Context, logger *slog.Logger, f func() error) error {
	return retry.Do(
		func() error {
			err := f()
			if err != nil && !isRetryableError(err) {
				return retry.Unrecoverable(err)
			}
			return err
		},
		retry.Context(ctx),
		retry.Attempts(p.maxRetryAttempts+1),
		retry.Delay(p.retryDelay),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			logger.Warn("retrying an unreachable service",
				"attempt", n+1,
				"error", err,
			)
		}),
	)
}

func isRetryableError(err error) bool {
	return errors.Is(err, conversion.ErrUnreachable)
}
