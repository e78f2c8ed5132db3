// Package lrc parses synchronized-lyrics documents into classified line records
// and reassembles converted documents with their timestamps untouched.
package lrc

import (
	"fmt"
)

const timestampTagLength = len("[00:00.00]")

// Timestamp is a parsed [mm:ss.ff] or [mm:ss:ff] tag.
// Separator keeps the literal character between seconds and fraction so the tag can be re-formatted exactly.
type Timestamp struct {
	Minutes   int
	Seconds   int
	Fraction  int
	Separator byte
}

// ParseTimestamp parses a tag of the exact shape [mm:ss.ff] or [mm:ss:ff].
// It returns false when tag does not have that shape.
func ParseTimestamp(tag string) (Timestamp, bool) {
	if len(tag) != timestampTagLength {
		return Timestamp{}, false
	}
	return parseTimestampPrefix(tag)
}

// parseTimestampPrefix parses a timestamp tag at the start of s.
func parseTimestampPrefix(s string) (Timestamp, bool) {
	if len(s) < timestampTagLength {
		return Timestamp{}, false
	}
	if s[0] != '[' || s[3] != ':' || s[9] != ']' {
		return Timestamp{}, false
	}
	separator := s[6]
	if separator != '.' && separator != ':' {
		return Timestamp{}, false
	}

	minutes, ok := twoDigits(s[1:3])
	if !ok {
		return Timestamp{}, false
	}
	seconds, ok := twoDigits(s[4:6])
	if !ok {
		return Timestamp{}, false
	}
	fraction, ok := twoDigits(s[7:9])
	if !ok {
		return Timestamp{}, false
	}

	return Timestamp{
		Minutes:   minutes,
		Seconds:   seconds,
		Fraction:  fraction,
		Separator: separator,
	}, true
}

func twoDigits(s string) (int, bool) {
	if len(s) != 2 {
		return 0, false
	}
	if !isDigit(s[0]) || !isDigit(s[1]) {
		return 0, false
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), true
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

// String formats the timestamp back into its tag form.
func (t Timestamp) String() string {
	separator := t.Separator
	if separator == 0 {
		separator = '.'
	}
	return fmt.Sprintf("[%02d:%02d%c%02d]", t.Minutes, t.Seconds, separator, t.Fraction)
}

// TotalSeconds is only for ordering and display.
func (t Timestamp) TotalSeconds() float64 {
	return float64(t.Minutes*60+t.Seconds) + float64(t.Fraction)/100
}

// Before reports whether t is earlier than other, whatever their separators.
func (t Timestamp) Before(other Timestamp) bool {
	return t.TotalSeconds() < other.TotalSeconds()
}
