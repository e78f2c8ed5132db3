// Package conversion dispatches lyric lines to the conversion service and correlates the outcomes back to their lines.
package conversion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/at-ishikawa/kanafy/internal/lrc"
)

// Mode selects how lines are dispatched to the service.
type Mode string

const (
	// ModeConcurrent sends one request per line.
	ModeConcurrent Mode = "concurrent"
	// ModeBatch sends chunks of lines through the batch endpoint.
	ModeBatch Mode = "batch"
)

const (
	DefaultConcurrency = 8
	// MaxBatchSize is the largest batch the conversion service accepts.
	MaxBatchSize = 100
)

// Config controls dispatching.
type Config struct {
	Mode        Mode
	Concurrency int
	BatchSize   int
	Options     Options
}

// Orchestrator converts the lyric lines of a document.
// It never retries: a transport failure is returned once to the caller.
type Orchestrator struct {
	converter Converter
	config    Config
}

func NewOrchestrator(converter Converter, config Config) *Orchestrator {
	if config.Mode == "" {
		config.Mode = ModeConcurrent
	}
	if config.Concurrency <= 0 {
		config.Concurrency = DefaultConcurrency
	}
	if config.BatchSize <= 0 || config.BatchSize > MaxBatchSize {
		config.BatchSize = MaxBatchSize
	}
	return &Orchestrator{
		converter: converter,
		config:    config,
	}
}

// Options returns the configured service flags.
func (o *Orchestrator) Options() Options {
	return o.config.Options
}

// Convert converts every lyric line of doc and returns one result per lyric line keyed by line number.
// Other lines are skipped without calling the service.
func (o *Orchestrator) Convert(ctx context.Context, doc lrc.Document) (map[int]lrc.ConversionResult, error) {
	return o.ConvertWithOptions(ctx, doc, o.config.Options)
}

// ConvertWithOptions is Convert with the service flags of a single job.
func (o *Orchestrator) ConvertWithOptions(ctx context.Context, doc lrc.Document, options Options) (map[int]lrc.ConversionResult, error) {
	lyrics := doc.LyricLines()
	collector := newResultCollector(len(lyrics))
	if len(lyrics) == 0 {
		return collector.results, nil
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(o.config.Concurrency)

	switch o.config.Mode {
	case ModeBatch:
		for _, chunk := range chunkLines(lyrics, o.config.BatchSize) {
			group.Go(func() error {
				return o.convertChunk(groupCtx, chunk, options, collector)
			})
		}
	case ModeConcurrent:
		for _, line := range lyrics {
			group.Go(func() error {
				return o.convertLine(groupCtx, line, options, collector)
			})
		}
	default:
		return nil, fmt.Errorf("unknown conversion mode: %q", o.config.Mode)
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	// A canceled job publishes nothing, even if every call happened to finish.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return collector.results, nil
}

func (o *Orchestrator) convertLine(ctx context.Context, line lrc.ClassifiedLine, options Options, collector *resultCollector) error {
	lineNumber := line.Raw.LineNumber
	outcome, err := o.converter.Convert(ctx, line.Payload, options)
	if err != nil {
		if abortErr := abortError(ctx, err); abortErr != nil {
			return abortErr
		}
		slog.Default().Warn("failed to convert a line",
			"lineNumber", lineNumber,
			"error", err,
		)
		collector.add(lrc.Failed(lineNumber, err.Error()))
		return nil
	}
	collector.add(toResult(lineNumber, outcome))
	return nil
}

func (o *Orchestrator) convertChunk(ctx context.Context, chunk []lrc.ClassifiedLine, options Options, collector *resultCollector) error {
	texts := make([]string, len(chunk))
	for i, line := range chunk {
		texts[i] = line.Payload
	}

	outcomes, err := o.converter.ConvertBatch(ctx, texts, options)
	if err != nil {
		if abortErr := abortError(ctx, err); abortErr != nil {
			return abortErr
		}
		slog.Default().Warn("failed to convert a batch",
			"firstLineNumber", chunk[0].Raw.LineNumber,
			"lines", len(chunk),
			"error", err,
		)
		for _, line := range chunk {
			collector.add(lrc.Failed(line.Raw.LineNumber, err.Error()))
		}
		return nil
	}

	byOriginal := make(map[string][]Outcome, len(outcomes))
	for _, outcome := range outcomes {
		byOriginal[outcome.Original] = append(byOriginal[outcome.Original], outcome)
	}
	for _, line := range chunk {
		lineNumber := line.Raw.LineNumber
		candidates := byOriginal[line.Payload]
		if len(candidates) == 0 {
			collector.add(lrc.Failed(lineNumber, "conversion service returned no result for this line"))
			continue
		}
		byOriginal[line.Payload] = candidates[1:]
		collector.add(toResult(lineNumber, candidates[0]))
	}
	return nil
}

// abortError returns a non-nil error when err must fail the whole job instead of a single line.
func abortError(ctx context.Context, err error) error {
	if errors.Is(err, ErrUnreachable) {
		return err
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return nil
}

func toResult(lineNumber int, outcome Outcome) lrc.ConversionResult {
	if outcome.Error != "" {
		return lrc.Failed(lineNumber, outcome.Error)
	}
	return lrc.Succeeded(lineNumber, outcome.Kana, outcome.PhoneticHangul)
}

func chunkLines(lines []lrc.ClassifiedLine, size int) [][]lrc.ClassifiedLine {
	chunks := make([][]lrc.ClassifiedLine, 0, (len(lines)+size-1)/size)
	for start := 0; start < len(lines); start += size {
		end := min(start+size, len(lines))
		chunks = append(chunks, lines[start:end])
	}
	return chunks
}

type resultCollector struct {
	mu      sync.Mutex
	results map[int]lrc.ConversionResult
}

func newResultCollector(size int) *resultCollector {
	return &resultCollector{
		results: make(map[int]lrc.ConversionResult, size),
	}
}

func (c *resultCollector) add(result lrc.ConversionResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results[result.LineNumber] = result
}
