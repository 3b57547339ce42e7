package middleware

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"ats-api/config"
	"ats-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	resumeField = "resume"
	uploadCtx   = "uploadedResume"

	// Room for multipart boundaries and part headers on top of the file itself.
	multipartOverhead = 1 << 20

	// UploadsURLPrefix is where stored resumes are served from.
	UploadsURLPrefix = "/uploads"
)

// ResumeUpload stores the multipart "resume" file under cfg.Dir. Files over
// cfg.MaxBytes or with an extension outside cfg.AllowedExtensions are
// rejected with 400 before the handler runs.
func ResumeUpload(cfg config.UploadConfig) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(cfg.AllowedExtensions))
	for _, ext := range cfg.AllowedExtensions {
		allowed[strings.ToLower(ext)] = struct{}{}
	}

	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, cfg.MaxBytes+multipartOverhead)

		header, err := c.FormFile(resumeField)
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				abortWithMessage(c, http.StatusBadRequest, fileTooLargeMessage(cfg.MaxBytes))
				return
			}
			abortWithMessage(c, http.StatusBadRequest, "Resume file is required")
			return
		}

		if header.Size > cfg.MaxBytes {
			log.Printf("Upload middleware: Rejected %q (%d bytes)", header.Filename, header.Size)
			abortWithMessage(c, http.StatusBadRequest, fileTooLargeMessage(cfg.MaxBytes))
			return
		}

		ext := strings.ToLower(filepath.Ext(header.Filename))
		if _, ok := allowed[ext]; !ok {
			log.Printf("Upload middleware: Rejected %q (extension %q)", header.Filename, ext)
			abortWithMessage(c, http.StatusBadRequest, "Only "+strings.Join(cfg.AllowedExtensions, ", ")+" files are allowed")
			return
		}

		if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
			log.Printf("Upload middleware: Error creating upload dir %s: %v", cfg.Dir, err)
			abortWithMessage(c, http.StatusInternalServerError, "Failed to store file")
			return
		}

		storedName := uuid.NewString() + ext
		dst := filepath.Join(cfg.Dir, storedName)
		if err := c.SaveUploadedFile(header, dst); err != nil {
			log.Printf("Upload middleware: Error saving %s: %v", dst, err)
			abortWithMessage(c, http.StatusInternalServerError, "Failed to store file")
			return
		}

		SetUploadedResume(c, &dto.UploadedFile{
			OriginalName: header.Filename,
			StoredName:   storedName,
			Path:         dst,
			URL:          path.Join(UploadsURLPrefix, storedName),
			SizeBytes:    header.Size,
		})
		c.Next()
	}
}

// UploadedResume returns the file stored by ResumeUpload.
func UploadedResume(c *gin.Context) (*dto.UploadedFile, bool) {
	v, exists := c.Get(uploadCtx)
	if !exists {
		return nil, false
	}
	file, ok := v.(*dto.UploadedFile)
	return file, ok
}

// SetUploadedResume records file as the request's stored resume.
func SetUploadedResume(c *gin.Context, file *dto.UploadedFile) {
	c.Set(uploadCtx, file)
}

func fileTooLargeMessage(limit int64) string {
	return fmt.Sprintf("File too large (max %d bytes)", limit)
}
