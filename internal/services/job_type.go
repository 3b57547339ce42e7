package services

import (
	"fmt"
	"strings"
	"unicode"

	"ats-api/internal/models"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// jobTypeAliases maps folded free-text job types to their canonical value.
var jobTypeAliases = map[string]models.JobType{
	"fulltime":   models.JobTypeFullTime,
	"parttime":   models.JobTypePartTime,
	"intern":     models.JobTypeInternship,
	"internship": models.JobTypeInternship,
	"contract":   models.JobTypeContract,
	"contractor": models.JobTypeContract,
}

// foldJobType strips accents, folds case and drops separators so that
// "Full time", "FULL-TIME" and "full_time" compare equal.
func foldJobType(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	folded := cases.Fold().String(stripped)
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '-' || r == '_' {
			return -1
		}
		return r
	}, folded)
}

// NormalizeJobType returns the canonical job type for free text input.
// Empty input defaults to Full-Time.
func NormalizeJobType(raw string) (models.JobType, error) {
	if strings.TrimSpace(raw) == "" {
		return models.JobTypeFullTime, nil
	}
	if jt, ok := jobTypeAliases[foldJobType(raw)]; ok {
		return jt, nil
	}
	return "", fmt.Errorf("%w: unknown job type %q", ErrValidation, raw)
}
