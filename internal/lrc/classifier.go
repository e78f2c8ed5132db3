package lrc

import (
	"regexp"
	"strings"
	"unicode"
)

// Kind is the classification of a single document line.
type Kind string

const (
	KindLyric        Kind = "lyric"
	KindMetadata     Kind = "metadata"
	KindBlank        Kind = "blank"
	KindUnrecognized Kind = "unrecognized"
)

// metadataPattern matches ID tags such as [ti:Title], [ar:Artist] or [offset:+100].
var metadataPattern = regexp.MustCompile(`^\[([A-Za-z#][A-Za-z0-9_#-]*):(.*)\]$`)

// RawLine is one physical line of a document, without its line terminator.
type RawLine struct {
	LineNumber int
	Text       string
}

// ClassifiedLine is a RawLine annotated with its kind.
// For lyric lines, Prefix+Leading+Payload+Trailing == Raw.Text.
type ClassifiedLine struct {
	Raw  RawLine
	Kind Kind

	Timestamp Timestamp
	// Repeated holds further timestamp tags directly following the first one, as in [00:10.00][01:20.00]text.
	Repeated []Timestamp
	// Prefix is the text from the line start through the end of the last timestamp tag.
	Prefix   string
	Leading  string
	Payload  string
	Trailing string
}

// HasTimestamp reports whether the line starts with a timestamp tag,
// which is true for lyric lines and for timestamp-only lines.
func (line ClassifiedLine) HasTimestamp() bool {
	return line.Prefix != ""
}

// WithPayload returns the line text with its payload replaced, keeping every timestamp and spacing intact.
func (line ClassifiedLine) WithPayload(payload string) string {
	return line.Prefix + line.Leading + payload + line.Trailing
}

// Classify decides whether raw is a lyric, metadata, blank or unrecognized line.
func Classify(raw RawLine) ClassifiedLine {
	line := ClassifiedLine{Raw: raw}

	trimmed := strings.TrimSpace(raw.Text)
	if trimmed == "" {
		line.Kind = KindBlank
		return line
	}

	indent := raw.Text[:len(raw.Text)-len(strings.TrimLeftFunc(raw.Text, unicode.IsSpace))]
	rest := raw.Text[len(indent):]
	if timestamp, ok := parseTimestampPrefix(rest); ok {
		line.Timestamp = timestamp
		tagsEnd := timestampTagLength
		for {
			repeated, ok := parseTimestampPrefix(rest[tagsEnd:])
			if !ok {
				break
			}
			line.Repeated = append(line.Repeated, repeated)
			tagsEnd += timestampTagLength
		}
		line.Prefix = indent + rest[:tagsEnd]

		remainder := rest[tagsEnd:]
		payload := strings.TrimSpace(remainder)
		if payload == "" {
			// A timestamp with nothing to say is neither a lyric nor a metadata tag.
			line.Kind = KindUnrecognized
			return line
		}
		payloadStart := strings.Index(remainder, payload)
		line.Leading = remainder[:payloadStart]
		line.Payload = payload
		line.Trailing = remainder[payloadStart+len(payload):]
		line.Kind = KindLyric
		return line
	}

	if metadataPattern.MatchString(trimmed) {
		line.Kind = KindMetadata
		return line
	}

	line.Kind = KindUnrecognized
	return line
}

// MetadataTag returns the key and value of a metadata line such as [ar:Artist].
func (line ClassifiedLine) MetadataTag() (key string, value string, ok bool) {
	if line.Kind != KindMetadata {
		return "", "", false
	}
	matches := metadataPattern.FindStringSubmatch(strings.TrimSpace(line.Raw.Text))
	if matches == nil {
		return "", "", false
	}
	return strings.ToLower(matches[1]), strings.TrimSpace(matches[2]), true
}
