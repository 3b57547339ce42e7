package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"ats-api/internal/models"
	"ats-api/internal/storage"
)

// allowedStatusTransitions lists the statuses reachable from each status.
// Accepted and Rejected are terminal.
var allowedStatusTransitions = map[models.ApplicationStatus][]models.ApplicationStatus{
	models.StatusPending:      {models.StatusReviewed, models.StatusInterviewing, models.StatusRejected, models.StatusAccepted},
	models.StatusReviewed:     {models.StatusInterviewing, models.StatusRejected, models.StatusAccepted},
	models.StatusInterviewing: {models.StatusRejected, models.StatusAccepted},
}

// isValidStatusTransition reports whether an application may move from -> to.
// Staying on the same status is handled by the caller.
func isValidStatusTransition(from, to models.ApplicationStatus) bool {
	for _, next := range allowedStatusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// parseTargetStatus matches s case-insensitively against the statuses a
// caller may set. Pending is never a target.
func parseTargetStatus(s string) (models.ApplicationStatus, bool) {
	s = strings.TrimSpace(s)
	for _, st := range []models.ApplicationStatus{
		models.StatusReviewed, models.StatusInterviewing, models.StatusRejected, models.StatusAccepted,
	} {
		if strings.EqualFold(s, string(st)) {
			return st, true
		}
	}
	return "", false
}

// MapRepoError maps storage errors to service errors
func MapRepoError(err error, operation string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, operation)
	}
	if errors.Is(err, storage.ErrDuplicateEmail) {
		return fmt.Errorf("%w: %s (duplicate email)", ErrConflict, operation)
	}
	if errors.Is(err, storage.ErrStaleStatus) {
		return fmt.Errorf("%w: %s (%v)", ErrConflict, operation, err)
	}
	if errors.Is(err, storage.ErrConflict) {
		return fmt.Errorf("%w: %s (%v)", ErrConflict, operation, err)
	}
	log.Printf("Unexpected repository error during %s: %v", operation, err)
	return fmt.Errorf("internal error during %s: %w", operation, err)
}

// canManageApplication reports whether actor may act on app as its recruiter.
func canManageApplication(actor *models.User, app *models.Application) bool {
	return actor.Role == models.RoleAdmin || actor.ID == app.RecruiterID
}
