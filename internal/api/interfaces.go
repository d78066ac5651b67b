// interfaces.go - Handler interfaces for route registration
package api

import "github.com/labstack/echo/v4"

// MetadataHandler handles metadata read and comment edit operations.
type MetadataHandler interface {
	HandleGetMetadata(c echo.Context) error
	HandleAppendComment(c echo.Context) error
	HandleEditComment(c echo.Context) error
}

// FilesHandler handles the upload workspace.
type FilesHandler interface {
	HandleUploadFile(c echo.Context) error
	HandleRecentFiles(c echo.Context) error
	HandleDownloadFile(c echo.Context) error
	HandleDeleteFile(c echo.Context) error
}

// HealthHandler reports server health.
type HealthHandler interface {
	HandleHealth(c echo.Context) error
}
