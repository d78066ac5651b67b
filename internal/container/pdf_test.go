package container

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"seehuhn.de/go/pdf"

	"github.com/satishvudata98/filemetadata-modifier/internal/commentlog"
)

var testTime = time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)

func testClock() time.Time { return testTime }

const testTimestamp = "1/2/2026, 3:04:05 PM"

// writePDF creates a minimal PDF file with the given info dictionary.
func writePDF(t *testing.T, path string, info *pdf.Info) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating fixture: %v", err)
	}
	defer f.Close()

	w, err := pdf.NewWriter(f, pdf.V1_7, nil)
	if err != nil {
		t.Fatalf("creating writer: %v", err)
	}
	w.GetMeta().Catalog.Pages = w.Alloc() // pretend we have a page tree
	if info != nil {
		w.GetMeta().Info = info
	}
	if err := w.Close(); err != nil {
		t.Fatalf("closing writer: %v", err)
	}
}

func TestPDFAdapter_AppendToEmptySubject(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.pdf")
	writePDF(t, path, nil)

	adapter := NewPDFAdapter(testClock)
	if err := adapter.AppendComment(path, "hello"); err != nil {
		t.Fatalf("AppendComment failed: %v", err)
	}

	rec, err := adapter.Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(rec.CommentLog) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(rec.CommentLog))
	}
	if rec.CommentLog[0].Text != "hello" {
		t.Errorf("expected text %q, got %q", "hello", rec.CommentLog[0].Text)
	}
	if rec.CommentLog[0].Timestamp == "" {
		t.Error("expected a non-empty timestamp")
	}
	if rec.Title != DefaultPDFTitle {
		t.Errorf("expected default title %q, got %q", DefaultPDFTitle, rec.Title)
	}
	if rec.Author != DefaultAuthor {
		t.Errorf("expected default author %q, got %q", DefaultAuthor, rec.Author)
	}
	if rec.Type != "pdf" {
		t.Errorf("expected type pdf, got %q", rec.Type)
	}
}

func TestPDFAdapter_PreservesExistingInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.pdf")
	writePDF(t, path, &pdf.Info{
		Title:   "Quarterly Report",
		Author:  "Alice",
		Subject: "ts1: first",
	})

	adapter := NewPDFAdapter(testClock)
	if err := adapter.AppendComment(path, "second"); err != nil {
		t.Fatalf("AppendComment failed: %v", err)
	}

	rec, err := adapter.Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if rec.Title != "Quarterly Report" {
		t.Errorf("title was overwritten: %q", rec.Title)
	}
	if rec.Author != "Alice" {
		t.Errorf("author was overwritten: %q", rec.Author)
	}
	if len(rec.CommentLog) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(rec.CommentLog))
	}
	if rec.CommentLog[0].Timestamp != "ts1" || rec.CommentLog[0].Text != "first" {
		t.Errorf("first entry changed: %+v", rec.CommentLog[0])
	}
	if rec.CommentLog[1].Timestamp != testTimestamp || rec.CommentLog[1].Text != "second" {
		t.Errorf("unexpected appended entry: %+v", rec.CommentLog[1])
	}
}

func TestPDFAdapter_EditComment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.pdf")
	writePDF(t, path, &pdf.Info{Subject: "ts1: first\n\nsecond"})

	adapter := NewPDFAdapter(testClock)
	if err := adapter.EditComment(path, 0, "changed"); err != nil {
		t.Fatalf("EditComment failed: %v", err)
	}

	rec, err := adapter.Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(rec.CommentLog) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(rec.CommentLog))
	}
	if rec.CommentLog[0].Timestamp != "ts1" || rec.CommentLog[0].Text != "changed" {
		t.Errorf("unexpected edited entry: %+v", rec.CommentLog[0])
	}
	if rec.CommentLog[1].Timestamp != "" || rec.CommentLog[1].Text != "second" {
		t.Errorf("second entry changed: %+v", rec.CommentLog[1])
	}
}

func TestPDFAdapter_EditOutOfRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.pdf")
	writePDF(t, path, &pdf.Info{Subject: "only one"})

	adapter := NewPDFAdapter(testClock)
	for _, index := range []int{-1, 1, 7} {
		if err := adapter.EditComment(path, index, "x"); !errors.Is(err, commentlog.ErrIndexOutOfRange) {
			t.Errorf("EditComment(%d) error = %v, want ErrIndexOutOfRange", index, err)
		}
	}
}

func TestPDFAdapter_ReadFallbacks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.pdf")
	writePDF(t, path, nil)

	adapter := NewPDFAdapter(testClock)
	rec, err := adapter.Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if rec.Title != FallbackTitle || rec.Author != FallbackAuthor || rec.Comments != FallbackComments {
		t.Errorf("expected fallback record, got %+v", rec)
	}
	if len(rec.CommentLog) != 0 {
		t.Errorf("expected empty comment log, got %d entries", len(rec.CommentLog))
	}
}

func TestPDFAdapter_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.pdf")
	if err := os.WriteFile(path, []byte("this is not a pdf"), 0644); err != nil {
		t.Fatal(err)
	}

	adapter := NewPDFAdapter(testClock)
	if _, err := adapter.Read(path); err == nil {
		t.Error("expected a parse error for a malformed PDF")
	}
	if err := adapter.AppendComment(path, "x"); err == nil {
		t.Error("expected a parse error for a malformed PDF")
	}
}
