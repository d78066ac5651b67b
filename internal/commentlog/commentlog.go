// Package commentlog encodes and decodes the ordered comment log that is
// stored inside a single container text field (PDF subject, EXIF tags or
// a JSON sidecar property).
//
// The wire format is a sequence of segments joined by a blank line
// ("\n\n"). Each segment is either "<timestamp>: <text>" or bare text
// when the entry carries no timestamp. No whitespace trimming is ever
// performed.
package commentlog

import (
	"errors"
	"strings"
	"time"
)

// Separator joins entries in the serialized log.
const Separator = "\n\n"

// timestampDelim separates a timestamp prefix from the comment text.
const timestampDelim = ": "

// TimestampLayout is the locale-style format used for new comments,
// e.g. "1/2/2026, 3:04:05 PM".
const TimestampLayout = "1/2/2006, 3:04:05 PM"

// ErrIndexOutOfRange is returned by EditAt when the index does not
// address an entry of the decoded log.
var ErrIndexOutOfRange = errors.New("comment index out of range")

// Entry is one comment of the log. An empty Timestamp means the stored
// segment had no "<timestamp>: " prefix.
type Entry struct {
	Timestamp string `json:"timestamp,omitempty"`
	Text      string `json:"text"`
}

// Decode splits a serialized log into entries. An empty raw string
// decodes to an empty log. A segment without a ": " delimiter becomes an
// entry with no timestamp; a segment that is the empty string still
// counts as one entry with empty text.
func Decode(raw string) []Entry {
	if raw == "" {
		return nil
	}

	segments := strings.Split(raw, Separator)
	entries := make([]Entry, len(segments))
	for i, segment := range segments {
		if at := strings.Index(segment, timestampDelim); at >= 0 {
			entries[i] = Entry{
				Timestamp: segment[:at],
				Text:      segment[at+len(timestampDelim):],
			}
		} else {
			entries[i] = Entry{Text: segment}
		}
	}
	return entries
}

// Encode serializes entries back into the single-field representation.
func Encode(entries []Entry) string {
	segments := make([]string, len(entries))
	for i, entry := range entries {
		if entry.Timestamp != "" {
			segments[i] = entry.Timestamp + timestampDelim + entry.Text
		} else {
			segments[i] = entry.Text
		}
	}
	return strings.Join(segments, Separator)
}

// Append adds one entry with the given text, timestamped with now, to
// the end of the serialized log. Implemented as plain concatenation;
// behaviorally identical to Decode, append, Encode.
func Append(raw, text string, now time.Time) string {
	segment := now.Format(TimestampLayout) + timestampDelim + text
	if raw == "" {
		return segment
	}
	return raw + Separator + segment
}

// EditAt replaces the text of the entry at index, preserving its
// timestamp (including the absence of one). It fails with
// ErrIndexOutOfRange when index does not address an existing entry.
func EditAt(raw string, index int, text string) (string, error) {
	entries := Decode(raw)
	if index < 0 || index >= len(entries) {
		return "", ErrIndexOutOfRange
	}
	entries[index].Text = text
	return Encode(entries), nil
}
