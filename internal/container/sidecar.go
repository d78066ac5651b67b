package container

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/satishvudata98/filemetadata-modifier/internal/commentlog"
	"github.com/satishvudata98/filemetadata-modifier/internal/models"
)

// SidecarSuffix is appended to the image path to locate its metadata
// document.
const SidecarSuffix = ".metadata.json"

// SidecarAdapter keeps metadata in a JSON document stored next to the
// image, for formats (PNG) whose container has no writable free-text
// field. The image bytes are never touched; only the sidecar is
// rewritten, with a plain non-atomic overwrite.
type SidecarAdapter struct {
	now Clock
}

// NewSidecarAdapter creates a sidecar adapter using the given clock for
// new comment timestamps.
func NewSidecarAdapter(now Clock) *SidecarAdapter {
	return &SidecarAdapter{now: now}
}

// sidecarDoc is the persisted shape of the sidecar file.
type sidecarDoc struct {
	Title    string `json:"title,omitempty"`
	Author   string `json:"author,omitempty"`
	Comments string `json:"comments,omitempty"`
}

// SidecarPath returns the path of the metadata document for an image.
func SidecarPath(path string) string {
	return path + SidecarSuffix
}

func (a *SidecarAdapter) Read(path string) (*models.Metadata, error) {
	doc, err := readSidecar(path)
	if err != nil {
		// Absent or unparsable sidecar reads as empty metadata.
		return fallbackRecord("image"), nil
	}
	return record("image", doc.Title, doc.Author, doc.Comments), nil
}

// AppendComment adds one timestamped entry, creating the sidecar on
// first write. Title and author receive their defaults only if absent.
func (a *SidecarAdapter) AppendComment(path, text string) error {
	doc := loadOrEmpty(path)
	doc.Comments = commentlog.Append(doc.Comments, text, a.now())
	if doc.Title == "" {
		doc.Title = DefaultImageTitle
	}
	if doc.Author == "" {
		doc.Author = DefaultAuthor
	}
	return writeSidecar(path, doc)
}

// EditComment replaces the text of the entry at index. Title and author
// are left untouched.
func (a *SidecarAdapter) EditComment(path string, index int, text string) error {
	doc := loadOrEmpty(path)
	updated, err := commentlog.EditAt(doc.Comments, index, text)
	if err != nil {
		return err
	}
	doc.Comments = updated
	return writeSidecar(path, doc)
}

func loadOrEmpty(path string) *sidecarDoc {
	doc, err := readSidecar(path)
	if err != nil {
		return &sidecarDoc{}
	}
	return doc
}

func readSidecar(path string) (*sidecarDoc, error) {
	data, err := os.ReadFile(SidecarPath(path))
	if err != nil {
		return nil, err
	}
	doc := &sidecarDoc{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("parsing sidecar for %s: %w", path, err)
	}
	return doc, nil
}

func writeSidecar(path string, doc *sidecarDoc) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(SidecarPath(path), data, 0644); err != nil {
		return fmt.Errorf("writing sidecar for %s: %w", path, err)
	}
	return nil
}
