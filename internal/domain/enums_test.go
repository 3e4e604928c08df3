package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTaskStatus(t *testing.T) {
	cases := []struct {
		in   string
		want TaskStatus
		ok   bool
	}{
		{"Open", StatusOpen, true},
		{"open", StatusOpen, true},
		{"  qa review ", StatusQAReview, true},
		{"IN PROGRESS", StatusInProgress, true},
		{"waiting on customer", StatusWaitingOnCustomer, true},
		{"Completed", StatusCompleted, true},
		{"", "", false},
		{"Done", "", false},
	}
	for _, tc := range cases {
		got, ok := ParseTaskStatus(tc.in)
		assert.Equal(t, tc.ok, ok, "input=%q", tc.in)
		assert.Equal(t, tc.want, got, "input=%q", tc.in)
	}
}

func TestValidTeam(t *testing.T) {
	for _, team := range AllTeams {
		assert.True(t, ValidTeam(team))
	}
	assert.False(t, ValidTeam("Platform"))
	assert.False(t, ValidTeam(""))
	assert.False(t, ValidTeam("agency"), "team names are case sensitive")
}

func TestValidPauseReason(t *testing.T) {
	for _, r := range PauseReasons {
		assert.True(t, ValidPauseReason(r))
	}
	assert.False(t, ValidPauseReason(""))
	assert.False(t, ValidPauseReason("Lunch"))
}
