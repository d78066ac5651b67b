// handlers_metadata.go - Metadata read and comment edit handlers
package api

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/satishvudata98/filemetadata-modifier/internal/commentlog"
	"github.com/satishvudata98/filemetadata-modifier/internal/metadata"
)

// MetadataHandlerImpl implements the MetadataHandler interface
type MetadataHandlerImpl struct {
	service *metadata.Service
}

// NewMetadataHandler creates a new metadata handler instance
func NewMetadataHandler(service *metadata.Service) MetadataHandler {
	return &MetadataHandlerImpl{service: service}
}

// HandleGetMetadata returns the normalized metadata of the file
// addressed by the URL-encoded :filePath segment.
func (h *MetadataHandlerImpl) HandleGetMetadata(c echo.Context) error {
	path := filePathParam(c)
	if path == "" {
		return NewValidationError("filePath")
	}

	record, err := h.service.Read(path)
	if err != nil {
		return serviceError(err, "Error extracting file metadata")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"metadata": record,
	})
}

// HandleAppendComment appends one comment entry with the current
// timestamp to the file's comment log.
func (h *MetadataHandlerImpl) HandleAppendComment(c echo.Context) error {
	var req appendCommentRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError("invalid JSON body", err)
	}
	if err := req.validate(); err != nil {
		return err
	}

	if err := h.service.AppendComment(req.FilePath, req.Comments); err != nil {
		return serviceError(err, "Error updating file metadata")
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Metadata updated successfully",
	})
}

// HandleEditComment replaces the text of the comment entry at the
// requested index, preserving its timestamp.
func (h *MetadataHandlerImpl) HandleEditComment(c echo.Context) error {
	path := filePathParam(c)
	if path == "" {
		return NewValidationError("filePath")
	}

	var req editCommentRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError("invalid JSON body", err)
	}
	if err := req.validate(); err != nil {
		return err
	}

	if err := h.service.EditComment(path, *req.CommentIndex, req.NewComment); err != nil {
		return serviceError(err, "Error updating comment")
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Comment updated successfully",
	})
}

// serviceError maps service failures onto transport responses: missing
// file 404, unknown extension or bad index 400, anything else 500.
func serviceError(err error, internalMessage string) *APIError {
	switch {
	case errors.Is(err, metadata.ErrNotFound):
		return NewNotFoundError("File not found")
	case errors.Is(err, metadata.ErrUnsupportedType):
		return NewBadRequestError("Unsupported file type", nil)
	case errors.Is(err, commentlog.ErrIndexOutOfRange):
		return NewBadRequestError("Invalid comment index", nil)
	default:
		return NewInternalError(internalMessage, err)
	}
}

// filePathParam returns the decoded :filePath segment. The client sends
// the path URL-encoded so slashes survive routing.
func filePathParam(c echo.Context) string {
	raw := c.Param("filePath")
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

// Request types

type appendCommentRequest struct {
	FilePath string `json:"filePath"`
	Comments string `json:"comments"`
}

func (r *appendCommentRequest) validate() error {
	if r.FilePath == "" {
		return NewValidationError("filePath")
	}
	if r.Comments == "" {
		return NewValidationError("comments")
	}
	return nil
}

type editCommentRequest struct {
	CommentIndex *int   `json:"commentIndex"`
	NewComment   string `json:"newComment"`
}

func (r *editCommentRequest) validate() error {
	if r.CommentIndex == nil {
		return NewValidationError("commentIndex")
	}
	if r.NewComment == "" {
		return NewValidationError("newComment")
	}
	return nil
}
