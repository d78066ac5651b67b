// Package metadata dispatches read and edit operations to the container
// adapter matching a file's extension.
package metadata

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/satishvudata98/filemetadata-modifier/internal/container"
	"github.com/satishvudata98/filemetadata-modifier/internal/models"
)

var (
	// ErrNotFound reports that the addressed file does not exist.
	ErrNotFound = errors.New("file not found")
	// ErrUnsupportedType reports an extension no adapter handles.
	ErrUnsupportedType = errors.New("unsupported file type")
)

// Kind classifies a file path by extension.
type Kind int

const (
	KindUnsupported Kind = iota
	KindPDF
	KindTagImage
	KindSidecarImage
)

func (k Kind) String() string {
	switch k {
	case KindPDF:
		return "pdf"
	case KindTagImage, KindSidecarImage:
		return "image"
	default:
		return "unsupported"
	}
}

// Classify maps a file path to the adapter kind handling it. The
// extension comparison is case-insensitive.
func Classify(path string) Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return KindPDF
	case ".jpg", ".jpeg", ".gif":
		return KindTagImage
	case ".png":
		return KindSidecarImage
	default:
		return KindUnsupported
	}
}

// Service selects the container adapter for a path and delegates the
// requested operation. Each request re-reads the file from disk; there
// is no per-path locking, so concurrent edits to one path race and the
// last write wins.
type Service struct {
	adapters map[Kind]container.Adapter
}

// NewService creates a service with one adapter per supported format.
// A nil clock defaults to time.Now.
func NewService(now container.Clock) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		adapters: map[Kind]container.Adapter{
			KindPDF:          container.NewPDFAdapter(now),
			KindTagImage:     container.NewTagImageAdapter(now),
			KindSidecarImage: container.NewSidecarAdapter(now),
		},
	}
}

// Read returns the normalized metadata view of the file at path.
func (s *Service) Read(path string) (*models.Metadata, error) {
	adapter, err := s.adapterFor(path)
	if err != nil {
		return nil, err
	}
	return adapter.Read(path)
}

// AppendComment appends one entry, timestamped now, to the file's
// comment log.
func (s *Service) AppendComment(path, text string) error {
	adapter, err := s.adapterFor(path)
	if err != nil {
		return err
	}
	return adapter.AppendComment(path, text)
}

// EditComment replaces the text of the log entry at index.
func (s *Service) EditComment(path string, index int, text string) error {
	adapter, err := s.adapterFor(path)
	if err != nil {
		return err
	}
	return adapter.EditComment(path, index, text)
}

// adapterFor checks existence before classification so a missing file
// is always reported as not found, matching the transport's 404-first
// behavior.
func (s *Service) adapterFor(path string) (container.Adapter, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	adapter, ok := s.adapters[Classify(path)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, filepath.Ext(path))
	}
	return adapter, nil
}
