package pipeline

import (
	"time"

	"github.com/at-ishikawa/kanafy/internal/config"
	"github.com/at-ishikawa/kanafy/internal/conversion"
)

// ConversionConfig builds the dispatching configuration from cfg.
func ConversionConfig(cfg *config.Config) conversion.Config {
	return conversion.Config{
		Mode:        conversion.Mode(cfg.Conversion.Mode),
		Concurrency: cfg.Conversion.Concurrency,
		BatchSize:   cfg.Conversion.BatchSize,
		Options: conversion.Options{
			UseG2pk:        cfg.Service.UseG2pk,
			ConvertNumbers: cfg.Service.ConvertNumbers,
		},
	}
}

// NewFromConfig creates a pipeline with the dispatching and retry settings of cfg.
// Options are applied after the configured ones.
func NewFromConfig(cfg *config.Config, converter conversion.Converter, options ...Option) *Pipeline {
	options = append([]Option{
		WithRetry(
			uint(cfg.Conversion.RetryAttempts),
			time.Duration(cfg.Conversion.RetryDelayMillisecond)*time.Millisecond,
		),
	}, options...)
	return New(converter, ConversionConfig(cfg), options...)
}
