package models

import "github.com/satishvudata98/filemetadata-modifier/internal/commentlog"

// Metadata is the normalized view of a file's editable metadata,
// reconstructed from the backing container on every read.
type Metadata struct {
	Title      string             `json:"title"`
	Author     string             `json:"author"`
	Comments   string             `json:"comments"`
	CommentLog []commentlog.Entry `json:"commentLog"`
	Type       string             `json:"type"` // "pdf" or "image"
}
