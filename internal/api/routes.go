// routes.go - Route registration helpers
package api

import (
	"github.com/labstack/echo/v4"

	"github.com/satishvudata98/filemetadata-modifier/internal/metadata"
	"github.com/satishvudata98/filemetadata-modifier/internal/storage"
)

// Dependencies holds all handler dependencies
type Dependencies struct {
	Store             storage.Store
	Service           *metadata.Service
	Version           string
	AllowedFileTypes  string
	AllowFileDeletion bool
}

// Handlers holds all handler instances
type Handlers struct {
	Health   HealthHandler
	Metadata MetadataHandler
	Files    FilesHandler

	allowFileDeletion bool
}

// NewHandlers creates all handler instances
func NewHandlers(deps *Dependencies) *Handlers {
	return &Handlers{
		Health:            NewHealthHandler(deps.Version),
		Metadata:          NewMetadataHandler(deps.Service),
		Files:             NewFilesHandler(deps.Store, deps.AllowedFileTypes),
		allowFileDeletion: deps.AllowFileDeletion,
	}
}

// RegisterRoutes registers all API routes with the Echo instance
func RegisterRoutes(e *echo.Echo, handlers *Handlers) {
	apiGroup := e.Group("/api")

	// Health check
	apiGroup.GET("/health", handlers.Health.HandleHealth)

	// Metadata operations; :filePath is a URL-encoded file path
	apiGroup.GET("/metadata/:filePath", handlers.Metadata.HandleGetMetadata)
	apiGroup.POST("/metadata", handlers.Metadata.HandleAppendComment)
	apiGroup.PUT("/metadata/:filePath", handlers.Metadata.HandleEditComment)

	// Upload workspace
	filesGroup := e.Group("/api/files")
	filesGroup.POST("/upload", handlers.Files.HandleUploadFile)
	filesGroup.GET("/recent", handlers.Files.HandleRecentFiles)
	filesGroup.GET("/:id", handlers.Files.HandleDownloadFile)
	if handlers.allowFileDeletion {
		filesGroup.DELETE("/:id", handlers.Files.HandleDeleteFile)
	}
}
