// Package container adapts format-specific metadata containers to a
// normalized (title, author, comment log) view. One adapter exists per
// backing store: the PDF document information dictionary, embedded EXIF
// tags for JPEG-family images, and a JSON sidecar file for PNG.
package container

import (
	"time"

	"github.com/satishvudata98/filemetadata-modifier/internal/commentlog"
	"github.com/satishvudata98/filemetadata-modifier/internal/models"
)

// Fallback literals shared by all adapters so that every format reports
// missing metadata the same way.
const (
	FallbackTitle    = "No title"
	FallbackAuthor   = "No author"
	FallbackComments = "No comments"

	DefaultPDFTitle   = "Document with Comments"
	DefaultImageTitle = "Image with Comments"
	DefaultAuthor     = "Metadata Modifier"
)

// Clock supplies the timestamp for newly appended comments. Injected so
// tests can use a deterministic time.
type Clock func() time.Time

// Adapter reads and mutates the comment log of one file format. Each
// call re-reads the container from disk; no state is cached across
// operations.
type Adapter interface {
	Read(path string) (*models.Metadata, error)
	AppendComment(path, text string) error
	EditComment(path string, index int, text string) error
}

// record builds a Metadata view, substituting the fallback literals for
// fields the container left empty.
func record(kind, title, author, rawLog string) *models.Metadata {
	m := &models.Metadata{
		Title:      title,
		Author:     author,
		Comments:   rawLog,
		CommentLog: commentlog.Decode(rawLog),
		Type:       kind,
	}
	if m.Title == "" {
		m.Title = FallbackTitle
	}
	if m.Author == "" {
		m.Author = FallbackAuthor
	}
	if m.Comments == "" {
		m.Comments = FallbackComments
	}
	return m
}

// fallbackRecord is the all-fallback view returned when a container
// cannot be read at all.
func fallbackRecord(kind string) *models.Metadata {
	return record(kind, "", "", "")
}
