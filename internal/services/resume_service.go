package services

import (
	"context"
	"fmt"
	"log"

	"ats-api/internal/transport/dto"

	"github.com/gabriel-vasile/mimetype"
)

const (
	resumeBaseScore  = 60
	resumeScoreRange = 40
)

var resumeSuggestions = []string{
	"Quantify achievements with concrete numbers",
	"Tailor your summary to the role you are applying for",
	"List the most relevant skills first",
}

type resumeService struct{}

// NewResumeService creates a new instance of ResumeService.
func NewResumeService() ResumeService {
	return &resumeService{}
}

// Analyze returns a placeholder score derived from the file size only. The
// content type is sniffed from the stored bytes.
func (s *resumeService) Analyze(ctx context.Context, file *dto.UploadedFile) (*dto.ResumeAnalysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mtype, err := mimetype.DetectFile(file.Path)
	if err != nil {
		log.Printf("ResumeService: Error sniffing %s: %v", file.Path, err)
		return nil, fmt.Errorf("failed to read uploaded resume: %w", err)
	}

	suggestions := make([]string, 0, len(resumeSuggestions)+1)
	suggestions = append(suggestions, resumeSuggestions...)
	if file.SizeBytes < 20*1024 {
		suggestions = append(suggestions, "Add more detail about your projects and experience")
	}

	return &dto.ResumeAnalysis{
		Score:       resumeScore(file.SizeBytes),
		Suggestions: suggestions,
		ContentType: mtype.String(),
		SizeBytes:   file.SizeBytes,
	}, nil
}

func resumeScore(size int64) int {
	if size < 0 {
		size = 0
	}
	return resumeBaseScore + int((size/1024)%resumeScoreRange)
}
