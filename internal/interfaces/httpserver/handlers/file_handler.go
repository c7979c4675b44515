package handlers

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"mamta-server/internal/domain/files"
	"mamta-server/internal/infrastructure/observability"
	"mamta-server/internal/interfaces/httpserver/dto"
	"mamta-server/internal/interfaces/httpserver/responses"
)

// FileHandler exposes the upload relay endpoints.
type FileHandler struct {
	service files.Service
	log     zerolog.Logger
}

// NewFileHandler constructs the handler.
func NewFileHandler(service files.Service, log zerolog.Logger) *FileHandler {
	return &FileHandler{
		service: service,
		log:     log.With().Str("handler", "files").Logger(),
	}
}

// Upload handles POST /upload-file
// @Summary Upload an attachment
// @Description Relays the file to the provider's file store and returns its reference.
// @Tags Files
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload"
// @Success 200 {object} dto.UploadResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /upload-file [post]
func (h *FileHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "file is required"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.log.Error().Err(err).Msg("read upload failed")
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "failed to read file"})
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = mime.TypeByExtension(filepath.Ext(header.Filename))
	}
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	ctx, span := observability.StartUploadSpan(c.Request.Context(), header.Filename, mimeType)
	defer span.End()

	result, err := h.service.Upload(ctx, files.UploadParams{
		Filename: header.Filename,
		MimeType: mimeType,
		Data:     data,
	})
	if err != nil {
		observability.RecordError(span, err)
		responses.HandleError(c, err, "file upload failed")
		return
	}

	c.JSON(http.StatusOK, dto.UploadResponse{
		Success:  true,
		Filename: result.Filename,
		FileURI:  result.FileURI,
		MimeType: result.MimeType,
	})
}

// List handles GET /list-files
// @Summary List uploaded files
// @Tags Files
// @Produce json
// @Success 200 {object} dto.ListFilesResponse
// @Failure 502 {object} responses.ErrorResponse
// @Router /list-files [get]
func (h *FileHandler) List(c *gin.Context) {
	infos, err := h.service.List(c.Request.Context())
	if err != nil {
		responses.HandleError(c, err, "list files failed")
		return
	}

	c.JSON(http.StatusOK, dto.ListFilesResponse{
		Success: true,
		Files:   infos,
	})
}
