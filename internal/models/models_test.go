package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
		ok   bool
	}{
		{"student", RoleStudent, true},
		{"Recruiter", RoleRecruiter, true},
		{" ADMIN ", RoleAdmin, true},
		{"manager", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseRole(tt.in)
		assert.Equal(t, tt.ok, ok, "ParseRole(%q)", tt.in)
		assert.Equal(t, tt.want, got, "ParseRole(%q)", tt.in)
	}
}

func TestApplicationStatus_Scan(t *testing.T) {
	var s ApplicationStatus
	assert.NoError(t, s.Scan("Interviewing"))
	assert.Equal(t, StatusInterviewing, s)

	assert.NoError(t, s.Scan([]byte("Accepted")))
	assert.Equal(t, StatusAccepted, s)

	assert.Error(t, s.Scan("interviewing"))
	assert.Error(t, s.Scan(42))
}

func TestApplicationStatus_IsTerminal(t *testing.T) {
	assert.True(t, StatusAccepted.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusReviewed.IsTerminal())
	assert.False(t, StatusInterviewing.IsTerminal())
}

func TestJobType_Scan(t *testing.T) {
	var jt JobType
	assert.NoError(t, jt.Scan("Part-Time"))
	assert.Equal(t, JobTypePartTime, jt)
	assert.Error(t, jt.Scan("parttime"))
}
