package lrc

import (
	"strings"
)

// ConversionResult is the outcome of converting a single lyric line, keyed by its line number.
// Exactly one of Converted or Error is meaningful: a non-empty Error marks a failure.
type ConversionResult struct {
	LineNumber     int
	Converted      string
	PhoneticHangul string
	Error          string
}

// Succeeded creates a success result.
func Succeeded(lineNumber int, converted, phoneticHangul string) ConversionResult {
	return ConversionResult{
		LineNumber:     lineNumber,
		Converted:      converted,
		PhoneticHangul: phoneticHangul,
	}
}

// Failed creates a failure result. An empty message is replaced so the failure is never lost.
func Failed(lineNumber int, message string) ConversionResult {
	if strings.TrimSpace(message) == "" {
		message = "conversion failed"
	}
	return ConversionResult{
		LineNumber: lineNumber,
		Error:      message,
	}
}

func (r ConversionResult) Failed() bool {
	return r.Error != ""
}

// LineDetail is one row of the audit trail returned with a reassembled document.
type LineDetail struct {
	LineNumber      int    `json:"line_number" yaml:"line_number"`
	Original        string `json:"original" yaml:"original"`
	Processed       string `json:"processed" yaml:"processed"`
	Type            Kind   `json:"type" yaml:"type"`
	Timestamp       string `json:"timestamp" yaml:"timestamp"`
	OriginalLyrics  string `json:"original_lyrics,omitempty" yaml:"original_lyrics,omitempty"`
	ConvertedLyrics string `json:"converted_lyrics,omitempty" yaml:"converted_lyrics,omitempty"`
	PhoneticHangul  string `json:"phonetic_hangul,omitempty" yaml:"phonetic_hangul,omitempty"`
	Error           string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Reassembled is the converted document plus one LineDetail per input line.
type Reassembled struct {
	Document string
	Details  []LineDetail
}

// ErrorCount returns the number of lines that carry an error.
func (r Reassembled) ErrorCount() int {
	count := 0
	for _, detail := range r.Details {
		if detail.Error != "" {
			count++
		}
	}
	return count
}

const errNoConversionResult = "no conversion result"

// Reassemble substitutes converted payloads into the lyric lines of doc.
// Failed or missing conversions keep the original line untouched; non-lyric lines are always emitted as is.
func Reassemble(doc Document, results map[int]ConversionResult) Reassembled {
	var builder strings.Builder
	details := make([]LineDetail, 0, len(doc.Lines))

	for i, line := range doc.Lines {
		detail := LineDetail{
			LineNumber: line.Raw.LineNumber,
			Original:   line.Raw.Text,
			Processed:  line.Raw.Text,
			Type:       line.Kind,
		}
		if line.HasTimestamp() {
			detail.Timestamp = line.Timestamp.String()
		}

		if line.Kind == KindLyric {
			detail.OriginalLyrics = line.Payload
			result, ok := results[line.Raw.LineNumber]
			switch {
			case !ok:
				detail.Error = errNoConversionResult
			case result.Failed():
				detail.Error = result.Error
			default:
				detail.Processed = line.WithPayload(result.Converted)
				detail.ConvertedLyrics = result.Converted
				detail.PhoneticHangul = result.PhoneticHangul
			}
		}

		builder.WriteString(detail.Processed)
		if i < len(doc.Terminators) {
			builder.WriteString(doc.Terminators[i])
		}
		details = append(details, detail)
	}

	return Reassembled{
		Document: builder.String(),
		Details:  details,
	}
}
