package commentlog

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []Entry
	}{
		{
			name: "empty raw",
			raw:  "",
			want: nil,
		},
		{
			name: "single entry without timestamp",
			raw:  "just a note",
			want: []Entry{{Text: "just a note"}},
		},
		{
			name: "single entry with timestamp",
			raw:  "1/2/2026, 3:04:05 PM: hello",
			want: []Entry{{Timestamp: "1/2/2026, 3:04:05 PM", Text: "hello"}},
		},
		{
			name: "text containing further colons",
			raw:  "1/2/2026, 3:04:05 PM: note: see also: appendix",
			want: []Entry{{Timestamp: "1/2/2026, 3:04:05 PM", Text: "note: see also: appendix"}},
		},
		{
			name: "multiple entries",
			raw:  "ts1: first\n\nsecond\n\nts3: third",
			want: []Entry{
				{Timestamp: "ts1", Text: "first"},
				{Text: "second"},
				{Timestamp: "ts3", Text: "third"},
			},
		},
		{
			name: "empty segment counts as one entry",
			raw:  "ts1: first\n\n",
			want: []Entry{
				{Timestamp: "ts1", Text: "first"},
				{Text: ""},
			},
		},
		{
			name: "no whitespace trimming",
			raw:  "  padded  ",
			want: []Entry{{Text: "  padded  "}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decode(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Decode(%q) = %#v, want %#v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
	}{
		{
			name:    "single timestamped entry",
			entries: []Entry{{Timestamp: "1/2/2026, 3:04:05 PM", Text: "hello"}},
		},
		{
			name: "mixed timestamps",
			entries: []Entry{
				{Timestamp: "ts1", Text: "first"},
				{Text: "second"},
				{Timestamp: "ts3", Text: "third: with colon"},
			},
		},
		{
			name:    "text with single newlines",
			entries: []Entry{{Text: "line one\nline two"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decode(Encode(tt.entries))
			if !reflect.DeepEqual(got, tt.entries) {
				t.Errorf("Decode(Encode(entries)) = %#v, want %#v", got, tt.entries)
			}
		})
	}
}

func TestAppend(t *testing.T) {
	now := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)

	t.Run("append to empty log", func(t *testing.T) {
		raw := Append("", "hello", now)
		entries := Decode(raw)
		if len(entries) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(entries))
		}
		if entries[0].Text != "hello" {
			t.Errorf("expected text %q, got %q", "hello", entries[0].Text)
		}
		if entries[0].Timestamp != "1/2/2026, 3:04:05 PM" {
			t.Errorf("unexpected timestamp %q", entries[0].Timestamp)
		}
	})

	t.Run("append increases count by one", func(t *testing.T) {
		raw := "ts1: first\n\nsecond"
		before := len(Decode(raw))

		updated := Append(raw, "third", now)
		entries := Decode(updated)
		if len(entries) != before+1 {
			t.Fatalf("expected %d entries, got %d", before+1, len(entries))
		}
		if entries[len(entries)-1].Text != "third" {
			t.Errorf("expected last text %q, got %q", "third", entries[len(entries)-1].Text)
		}
	})

	t.Run("equivalent to decode-append-encode", func(t *testing.T) {
		raw := "ts1: first\n\nsecond"
		entries := append(Decode(raw), Entry{
			Timestamp: now.Format(TimestampLayout),
			Text:      "third",
		})
		if got, want := Append(raw, "third", now), Encode(entries); got != want {
			t.Errorf("Append = %q, want %q", got, want)
		}
	})
}

func TestEditAt(t *testing.T) {
	raw := "ts1: first\n\nsecond\n\nts3: third"

	t.Run("changes only the addressed entry", func(t *testing.T) {
		updated, err := EditAt(raw, 0, "changed")
		if err != nil {
			t.Fatalf("EditAt failed: %v", err)
		}
		want := []Entry{
			{Timestamp: "ts1", Text: "changed"},
			{Text: "second"},
			{Timestamp: "ts3", Text: "third"},
		}
		if got := Decode(updated); !reflect.DeepEqual(got, want) {
			t.Errorf("decoded log = %#v, want %#v", got, want)
		}
	})

	t.Run("preserves absent timestamp", func(t *testing.T) {
		updated, err := EditAt(raw, 1, "changed")
		if err != nil {
			t.Fatalf("EditAt failed: %v", err)
		}
		entries := Decode(updated)
		if entries[1].Timestamp != "" {
			t.Errorf("expected no timestamp, got %q", entries[1].Timestamp)
		}
		if entries[1].Text != "changed" {
			t.Errorf("expected text %q, got %q", "changed", entries[1].Text)
		}
	})

	t.Run("out of range", func(t *testing.T) {
		for _, index := range []int{-1, 3, 100} {
			if _, err := EditAt(raw, index, "x"); !errors.Is(err, ErrIndexOutOfRange) {
				t.Errorf("EditAt(%d) error = %v, want ErrIndexOutOfRange", index, err)
			}
		}
	})

	t.Run("empty log has no valid index", func(t *testing.T) {
		if _, err := EditAt("", 0, "x"); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("expected ErrIndexOutOfRange, got %v", err)
		}
	})
}

func TestTimestampLayout(t *testing.T) {
	now := time.Date(2026, 11, 30, 9, 5, 0, 0, time.UTC)
	got := now.Format(TimestampLayout)
	if !strings.HasPrefix(got, "11/30/2026, 9:05:00 AM") {
		t.Errorf("unexpected timestamp rendering %q", got)
	}
}
