package container

import (
	"bytes"
	"fmt"
	"os"

	"seehuhn.de/go/pdf"

	"github.com/satishvudata98/filemetadata-modifier/internal/commentlog"
	"github.com/satishvudata98/filemetadata-modifier/internal/models"
)

// PDFAdapter stores the comment log in the Subject field of the PDF
// document information dictionary. Mutations rewrite the whole file:
// read, parse, change the info dictionary in memory, re-serialize and
// overwrite in place. The overwrite is not atomic.
type PDFAdapter struct {
	now Clock
}

// NewPDFAdapter creates a PDF adapter using the given clock for new
// comment timestamps.
func NewPDFAdapter(now Clock) *PDFAdapter {
	return &PDFAdapter{now: now}
}

func (a *PDFAdapter) Read(path string) (*models.Metadata, error) {
	doc, err := loadPDF(path)
	if err != nil {
		return nil, err
	}
	info := doc.GetMeta().Info
	if info == nil {
		info = &pdf.Info{}
	}
	return record("pdf", info.Title, info.Author, info.Subject), nil
}

// AppendComment adds one timestamped entry to the subject log. Title
// and author receive their defaults only if previously absent.
func (a *PDFAdapter) AppendComment(path, text string) error {
	return a.update(path, func(subject string) (string, error) {
		return commentlog.Append(subject, text, a.now()), nil
	})
}

// EditComment replaces the text of the entry at index, keeping its
// timestamp.
func (a *PDFAdapter) EditComment(path string, index int, text string) error {
	return a.update(path, func(subject string) (string, error) {
		return commentlog.EditAt(subject, index, text)
	})
}

func (a *PDFAdapter) update(path string, change func(subject string) (string, error)) error {
	doc, err := loadPDF(path)
	if err != nil {
		return err
	}

	meta := doc.GetMeta()
	if meta.Info == nil {
		meta.Info = &pdf.Info{}
	}

	updated, err := change(meta.Info.Subject)
	if err != nil {
		return err
	}
	meta.Info.Subject = updated
	if meta.Info.Title == "" {
		meta.Info.Title = DefaultPDFTitle
	}
	if meta.Info.Author == "" {
		meta.Info.Author = DefaultAuthor
	}

	var buf bytes.Buffer
	if err := doc.Write(&buf); err != nil {
		return fmt.Errorf("serializing %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func loadPDF(path string) (*pdf.Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	doc, err := pdf.Read(f, nil)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}
