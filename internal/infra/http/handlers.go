package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ivanKorotkov735/cursor/internal/domain"
	"github.com/ivanKorotkov735/cursor/internal/usecase"
)

// Name of the multipart form field carrying the upload.
const fileField = "file"

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (s *Server) handleVerify(c *gin.Context) {
	data, err := readUpload(c, s.cfg.MaxUploadBytes)
	if err != nil {
		writeError(c, err)
		return
	}
	result, err := s.verifyUC.Execute(c.Request.Context(), usecase.VerifyUploadRequest{Data: data})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// readUpload pulls the entire file part into memory. A request without
// the file field is rejected before any scoring runs. The empty file is
// a valid upload.
func readUpload(c *gin.Context, maxBytes int64) ([]byte, error) {
	header, err := c.FormFile(fileField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, domain.ErrMissingFile
		}
		return nil, domain.ErrInvalidUpload
	}
	if maxBytes > 0 && header.Size > maxBytes {
		return nil, domain.ErrUploadTooLarge
	}
	file, err := header.Open()
	if err != nil {
		return nil, domain.ErrInvalidUpload
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, domain.ErrInvalidUpload
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return nil, domain.ErrUploadTooLarge
	}
	return data, nil
}

func (s *Server) handleNoRoute(c *gin.Context) {
	writeErrorCode(c, http.StatusNotFound, "NOT_FOUND", "route not found")
}

func writeError(c *gin.Context, err error) {
	status, code := http.StatusInternalServerError, "INTERNAL"
	switch {
	case errors.Is(err, domain.ErrMissingFile):
		status, code = http.StatusBadRequest, "MISSING_FILE"
	case errors.Is(err, domain.ErrInvalidUpload):
		status, code = http.StatusBadRequest, "INVALID_UPLOAD"
	case errors.Is(err, domain.ErrUploadTooLarge):
		status, code = http.StatusRequestEntityTooLarge, "UPLOAD_TOO_LARGE"
	case errors.Is(err, domain.ErrNotFound):
		status, code = http.StatusNotFound, "NOT_FOUND"
	}
	writeErrorCode(c, status, code, err.Error())
}

func writeErrorCode(c *gin.Context, status int, code, message string) {
	c.JSON(status, errorResponse{
		Code:    code,
		Message: message,
	})
}
