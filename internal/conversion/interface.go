package conversion

import (
	"context"
	"errors"
)

//go:generate mockgen -source=interface.go -destination=../mocks/conversion/mock_converter.go -package=mock_conversion

// Converter is the external phonetic conversion service.
type Converter interface {
	Convert(ctx context.Context, text string, options Options) (Outcome, error)
	// ConvertBatch converts texts in one call. Outcomes echo their input in Original
	// and are not assumed to be in input order.
	ConvertBatch(ctx context.Context, texts []string, options Options) ([]Outcome, error)
}

// Options are the per-request flags understood by the conversion service.
type Options struct {
	// UseG2pk enables the enhanced phonetic modeling of the service.
	UseG2pk        bool `json:"use_g2pk"`
	ConvertNumbers bool `json:"convert_numbers"`
}

// Outcome is the service response for a single text.
type Outcome struct {
	Original       string `json:"original"`
	PhoneticHangul string `json:"phonetic_hangul"`
	Kana           string `json:"kana"`
	Error          string `json:"error,omitempty"`
}

// ErrUnreachable means the conversion service could not be reached at all.
// It fails a whole job instead of being recorded against individual lines.
var ErrUnreachable = errors.New("conversion service is unreachable")
