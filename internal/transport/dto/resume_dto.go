package dto

// ResumeAnalysis is the placeholder score attached to an uploaded resume.
type ResumeAnalysis struct {
	Score       int      `json:"score"`
	Suggestions []string `json:"suggestions"`
	ContentType string   `json:"contentType"`
	SizeBytes   int64    `json:"sizeBytes"`
}

type UploadResumeResponse struct {
	ResumeURL string         `json:"resumeUrl"`
	Analysis  ResumeAnalysis `json:"analysis"`
}

// UploadedFile describes a resume already written to disk by the upload middleware.
type UploadedFile struct {
	OriginalName string
	StoredName   string
	Path         string
	URL          string
	SizeBytes    int64
}
