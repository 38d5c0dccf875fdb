package handlers

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"filedrop-backend/models"
	"filedrop-backend/service"
	"filedrop-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// FileHandler handles HTTP requests for file operations
type FileHandler struct {
	fileService *service.FileService
	log         logrus.FieldLogger
	maxFileSize int64
}

// NewFileHandler creates a new file handler
func NewFileHandler(fileService *service.FileService, log logrus.FieldLogger, maxFileSize int64) *FileHandler {
	return &FileHandler{
		fileService: fileService,
		log:         log,
		maxFileSize: maxFileSize,
	}
}

// UploadPage handles GET /upload
func (h *FileHandler) UploadPage(c *gin.Context) {
	page(c, h.log, gin.H{
		"form": gin.H{
			"fields":             []string{"file"},
			"allowed_extensions": service.AllowedExtensions(),
			"max_file_size":      h.maxFileSize,
		},
	})
}

// UploadFile handles POST /upload
func (h *FileHandler) UploadFile(c *gin.Context) {
	user := CurrentUser(c)

	// Multipart overhead is small next to the file itself
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxFileSize+1<<20)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.uploadFailed(c, models.ErrFileTooLarge)
			return
		}
		h.uploadFailed(c, models.ErrNoFileProvided)
		return
	}

	if fileHeader.Size > h.maxFileSize {
		h.uploadFailed(c, models.ErrFileTooLarge)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		internalError(c, h.log, fmt.Errorf("failed to open upload: %w", err))
		return
	}
	defer file.Close()

	_, err = h.fileService.Upload(c.Request.Context(), user, service.UploadRequest{
		Filename: fileHeader.Filename,
		Size:     fileHeader.Size,
		Data:     file,
	})
	if err != nil {
		h.uploadFailed(c, err)
		return
	}

	redirectWithFlash(c, h.log, "/files", "File uploaded successfully")
}

func (h *FileHandler) uploadFailed(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrUnauthenticated):
		redirectWithFlash(c, h.log, "/login", "Please log in to access this page")
	case errors.Is(err, models.ErrNoFileProvided):
		redirectWithFlash(c, h.log, "/upload", "No file selected")
	case errors.Is(err, models.ErrDisallowedExtension):
		redirectWithFlash(c, h.log, "/upload",
			"File type not allowed. Allowed: "+strings.Join(service.AllowedExtensions(), ", "))
	case errors.Is(err, models.ErrFilenameTooLong):
		redirectWithFlash(c, h.log, "/upload",
			fmt.Sprintf("Filename exceeds maximum of %d bytes", service.MaxFilenameLength))
	case errors.Is(err, models.ErrFileTooLarge):
		redirectWithFlash(c, h.log, "/upload",
			fmt.Sprintf("File size exceeds maximum of %d bytes", h.maxFileSize))
	default:
		internalError(c, h.log, err)
	}
}

// fileView is the listing entry shown to clients
type fileView struct {
	*models.File
	DownloadURL string `json:"download_url"`
}

// ListFiles handles GET /files
func (h *FileHandler) ListFiles(c *gin.Context) {
	files, err := h.fileService.ListFiles(c.Request.Context(), CurrentUser(c))
	if err != nil {
		if errors.Is(err, models.ErrUnauthenticated) {
			redirectWithFlash(c, h.log, "/login", "Please log in to access this page")
			return
		}
		internalError(c, h.log, err)
		return
	}

	views := make([]fileView, 0, len(files))
	for _, f := range files {
		views = append(views, fileView{File: f, DownloadURL: fmt.Sprintf("/download/%d", f.ID)})
	}
	page(c, h.log, gin.H{"data": views})
}

// DownloadFile handles GET /download/:id
func (h *FileHandler) DownloadFile(c *gin.Context) {
	id, ok := parseFileID(c.Param("id"))
	if !ok {
		notFound(c)
		return
	}

	reader, file, err := h.fileService.Download(c.Request.Context(), CurrentUser(c), id)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrUnauthenticated):
			redirectWithFlash(c, h.log, "/login", "Please log in to access this page")
		case errors.Is(err, models.ErrNotFound):
			notFound(c)
		case errors.Is(err, models.ErrForbidden):
			redirectWithFlash(c, h.log, "/files", "You do not have access to this file")
		default:
			internalError(c, h.log, err)
		}
		return
	}
	defer reader.Close()

	contentType := file.ContentType
	if contentType == "" {
		contentType = storage.ContentType(file.DisplayName)
	}
	c.DataFromReader(http.StatusOK, file.Size, contentType, reader, map[string]string{
		"Content-Disposition": attachmentDisposition(file.DisplayName),
	})
}

// parseFileID accepts unsigned decimal ids only
func parseFileID(raw string) (int64, bool) {
	if raw == "" || raw[0] < '0' || raw[0] > '9' {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// attachmentDisposition names the download after the original filename
func attachmentDisposition(displayName string) string {
	if v := mime.FormatMediaType("attachment", map[string]string{"filename": displayName}); v != "" {
		return v
	}
	return mime.FormatMediaType("attachment", map[string]string{"filename": storage.SanitizeFilename(displayName)})
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "NOT_FOUND",
			"message": "File not found",
		},
	})
}
