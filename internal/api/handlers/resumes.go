package handlers

import (
	"log"
	"net/http"
	"os"

	"ats-api/internal/api/middleware"
	"ats-api/internal/services"
	"ats-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
)

// ResumeHandler serves resume uploads. The file itself is stored by
// middleware.ResumeUpload before Upload runs.
type ResumeHandler struct {
	service services.ResumeService
}

func NewResumeHandler(service services.ResumeService) *ResumeHandler {
	return &ResumeHandler{service: service}
}

// Upload godoc
// @Summary      Upload a resume
// @Description  Multipart field "resume"; .pdf, .doc or .docx up to 5,000,000 bytes.
// @Tags         resumes
// @Accept       multipart/form-data
// @Produce      json
// @Param        resume formData file true "Resume file"
// @Success      200 {object}  dto.UploadResumeResponse
// @Failure      400 {object}  map[string]string "Missing, too large or disallowed file"
// @Failure      403 {object}  map[string]string "Forbidden"
// @Router       /resumes/upload [post]
// @Security     BearerAuth
func (h *ResumeHandler) Upload(c *gin.Context) {
	file, ok := middleware.UploadedResume(c)
	if !ok {
		respondMessage(c, http.StatusBadRequest, "Resume file is required")
		return
	}

	analysis, err := h.service.Analyze(c.Request.Context(), file)
	if err != nil {
		if rmErr := os.Remove(file.Path); rmErr != nil {
			log.Printf("ResumeHandler: Error removing %s: %v", file.Path, rmErr)
		}
		respondInternal(c, err, "Failed to analyze resume")
		return
	}

	c.JSON(http.StatusOK, dto.UploadResumeResponse{ResumeURL: file.URL, Analysis: *analysis})
}
