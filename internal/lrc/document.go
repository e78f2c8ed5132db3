package lrc

import (
	"strings"
)

// Document is a parsed synchronized-lyrics document.
type Document struct {
	Lines []ClassifiedLine
	// Terminators holds the line terminator that followed each line ("\n", "\r\n" or "" for the last line).
	Terminators []string

	TotalLines        int
	LyricsLines       int
	MetadataLines     int
	BlankLines        int
	UnrecognizedLines int
}

// ParseDocument splits text into 1-based, classified lines.
// Every input is accepted; the empty document is a single blank line.
func ParseDocument(text string) Document {
	physicalLines := strings.Split(text, "\n")

	doc := Document{
		Lines:       make([]ClassifiedLine, 0, len(physicalLines)),
		Terminators: make([]string, 0, len(physicalLines)),
	}
	for i, physicalLine := range physicalLines {
		terminator := "\n"
		if i == len(physicalLines)-1 {
			terminator = ""
		} else if strings.HasSuffix(physicalLine, "\r") {
			physicalLine = strings.TrimSuffix(physicalLine, "\r")
			terminator = "\r\n"
		}

		line := Classify(RawLine{
			LineNumber: i + 1,
			Text:       physicalLine,
		})
		doc.Lines = append(doc.Lines, line)
		doc.Terminators = append(doc.Terminators, terminator)

		switch line.Kind {
		case KindLyric:
			doc.LyricsLines++
		case KindMetadata:
			doc.MetadataLines++
		case KindBlank:
			doc.BlankLines++
		case KindUnrecognized:
			doc.UnrecognizedLines++
		}
	}
	doc.TotalLines = len(doc.Lines)
	return doc
}

// LyricLines returns the lyric lines in document order.
func (doc Document) LyricLines() []ClassifiedLine {
	lines := make([]ClassifiedLine, 0, doc.LyricsLines)
	for _, line := range doc.Lines {
		if line.Kind == KindLyric {
			lines = append(lines, line)
		}
	}
	return lines
}

// Metadata returns the ID tags of the document keyed by lower-cased tag name.
// When a tag appears more than once, the first value wins.
func (doc Document) Metadata() map[string]string {
	metadata := make(map[string]string)
	for _, line := range doc.Lines {
		key, value, ok := line.MetadataTag()
		if !ok {
			continue
		}
		if _, exists := metadata[key]; exists {
			continue
		}
		metadata[key] = value
	}
	return metadata
}
