// handlers_files.go - Upload workspace handlers
package api

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/satishvudata98/filemetadata-modifier/internal/storage"
)

// FilesHandlerImpl implements the FilesHandler interface
type FilesHandlerImpl struct {
	store        storage.Store
	allowedTypes map[string]bool
}

// NewFilesHandler creates a new files handler instance. allowedTypes is
// the comma-separated extension whitelist from the configuration, e.g.
// ".pdf,.jpg,.jpeg,.png,.gif".
func NewFilesHandler(store storage.Store, allowedTypes string) FilesHandler {
	allowed := make(map[string]bool)
	for _, ext := range strings.Split(allowedTypes, ",") {
		ext = strings.TrimSpace(strings.ToLower(ext))
		if ext != "" {
			allowed[ext] = true
		}
	}
	return &FilesHandlerImpl{
		store:        store,
		allowedTypes: allowed,
	}
}

// HandleUploadFile accepts a multipart file upload and saves it into
// the workspace so its metadata can be edited.
func (h *FilesHandlerImpl) HandleUploadFile(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return NewBadRequestError("no file provided", err)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if len(h.allowedTypes) > 0 && !h.allowedTypes[ext] {
		return NewBadRequestError("Unsupported file type", nil)
	}

	src, err := file.Open()
	if err != nil {
		return NewInternalError("failed to open uploaded file", err)
	}
	defer src.Close()

	info, err := h.store.Save(file.Filename, src)
	if err != nil {
		return NewInternalError("failed to save file", err)
	}

	path, err := h.store.GetFilePath(info.ID)
	if err != nil {
		return NewInternalError("failed to resolve file path", err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"file":     info,
		"filePath": path,
	})
}

// HandleRecentFiles returns the most recently uploaded files.
func (h *FilesHandlerImpl) HandleRecentFiles(c echo.Context) error {
	files, err := h.store.List(50)
	if err != nil {
		return NewInternalError("failed to list files", err)
	}

	if len(files) > 20 {
		files = files[:20]
	}

	return c.JSON(http.StatusOK, files)
}

// HandleDownloadFile streams a stored file back to the client.
func (h *FilesHandlerImpl) HandleDownloadFile(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return NewValidationError("id")
	}

	info, err := h.store.Get(id)
	if err != nil {
		return NewNotFoundError("File not found")
	}

	path, err := h.store.GetFilePath(id)
	if err != nil {
		return NewNotFoundError("File not found")
	}

	return c.Attachment(path, info.Name)
}

// HandleDeleteFile deletes a stored file and its sidecar.
func (h *FilesHandlerImpl) HandleDeleteFile(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return NewValidationError("id")
	}

	if err := h.store.Delete(id); err != nil {
		return NewNotFoundError("File not found")
	}

	return c.NoContent(http.StatusNoContent)
}
