package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func newStoppedSubmission() *Submission {
	return &Submission{
		ID:         "s1",
		Title:      "HV Project Alpha",
		Status:     StatusOpen,
		TimerState: TimerStopped,
		LastTick:   testNow,
	}
}

func TestStartTimer_FromStopped(t *testing.T) {
	s := newStoppedSubmission()
	require.NoError(t, s.StartTimer(testNow))
	assert.Equal(t, TimerRunning, s.TimerState)
	require.NotNil(t, s.TimerStartTime)
	assert.Equal(t, testNow, *s.TimerStartTime)
	assert.Equal(t, testNow, s.LastTick)
}

func TestStartTimer_WhileActive(t *testing.T) {
	s := newStoppedSubmission()
	require.NoError(t, s.StartTimer(testNow))
	err := s.StartTimer(testNow.Add(time.Minute))
	require.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, TimerRunning, s.TimerState)
}

func TestApplyStatus_StartsTimerOnInProgress(t *testing.T) {
	s := newStoppedSubmission()
	hours, logged := s.ApplyStatus(StatusInProgress, testNow)
	assert.Zero(t, hours)
	assert.False(t, logged)
	assert.Equal(t, StatusInProgress, s.Status)
	assert.Equal(t, TimerRunning, s.TimerState)
	require.NotNil(t, s.TimerStartTime)
}

func TestApplyStatus_StopsRunningTimer(t *testing.T) {
	s := newStoppedSubmission()
	s.ApplyStatus(StatusInProgress, testNow)

	later := testNow.Add(90 * time.Minute)
	hours, logged := s.ApplyStatus(StatusQAReview, later)
	assert.True(t, logged)
	assert.InDelta(t, 1.5, hours, 1e-9)
	assert.InDelta(t, 1.5, s.LoggedHours, 1e-9)
	assert.Equal(t, TimerStopped, s.TimerState)
	assert.Nil(t, s.TimerStartTime)
	assert.Equal(t, later, s.LastTick)
}

func TestApplyStatus_StopsPausedTimer(t *testing.T) {
	s := newStoppedSubmission()
	s.ApplyStatus(StatusInProgress, testNow)
	_, err := s.Pause("Break", testNow.Add(time.Hour))
	require.NoError(t, err)

	// Paused timer has no start time; the accrued interval is measured from
	// the pause checkpoint.
	hours, logged := s.ApplyStatus(StatusCompleted, testNow.Add(90*time.Minute))
	assert.True(t, logged)
	assert.InDelta(t, 0.5, hours, 1e-9)
	assert.Equal(t, TimerStopped, s.TimerState)
	assert.Empty(t, s.PauseReason)
}

func TestApplyStatus_PausedToInProgressIsNoTimerChange(t *testing.T) {
	s := newStoppedSubmission()
	s.ApplyStatus(StatusInProgress, testNow)
	_, err := s.Pause("Meeting", testNow.Add(time.Hour))
	require.NoError(t, err)

	hours, logged := s.ApplyStatus(StatusInProgress, testNow.Add(2*time.Hour))
	assert.Zero(t, hours)
	assert.False(t, logged)
	assert.Equal(t, TimerPaused, s.TimerState, "paused timer stays paused until resumed")
}

func TestApplyStatus_StatusChangeWhileStoppedDoesNotLog(t *testing.T) {
	s := newStoppedSubmission()
	hours, logged := s.ApplyStatus(StatusPending, testNow.Add(time.Hour))
	assert.Zero(t, hours)
	assert.False(t, logged)
	assert.Zero(t, s.LoggedHours)
	assert.Equal(t, TimerStopped, s.TimerState)
}

func TestPause_RequiresListedReason(t *testing.T) {
	s := newStoppedSubmission()
	s.ApplyStatus(StatusInProgress, testNow)

	for _, reason := range []string{"", "because"} {
		_, err := s.Pause(reason, testNow.Add(time.Hour))
		require.ErrorIs(t, err, ErrPauseReasonRequired, "reason=%q", reason)
		assert.Equal(t, TimerRunning, s.TimerState, "state must be unchanged")
		assert.Zero(t, s.LoggedHours)
	}
}

func TestPause_WhileStopped(t *testing.T) {
	s := newStoppedSubmission()
	_, err := s.Pause("Break", testNow)
	require.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, TimerStopped, s.TimerState)
}

func TestResume_WhileRunning(t *testing.T) {
	s := newStoppedSubmission()
	s.ApplyStatus(StatusInProgress, testNow)
	err := s.Resume(testNow.Add(time.Minute))
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestStartPauseResumeStop_AccruesAllIntervals(t *testing.T) {
	s := newStoppedSubmission()

	t0 := testNow
	s.ApplyStatus(StatusInProgress, t0)

	t1 := t0.Add(45 * time.Minute)
	h1, err := s.Pause("Meeting", t1)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, h1, 1e-9)
	assert.Equal(t, "Meeting", s.PauseReason)

	// 30 min paused: must not count.
	t2 := t1.Add(30 * time.Minute)
	require.NoError(t, s.Resume(t2))
	assert.Empty(t, s.PauseReason)

	t3 := t2.Add(15 * time.Minute)
	h2, logged := s.ApplyStatus(StatusCompleted, t3)
	assert.True(t, logged)
	assert.InDelta(t, 0.25, h2, 1e-9)

	assert.InDelta(t, 1.0, s.LoggedHours, 1e-9, "pause interval excluded")
}

func TestAccrue_ClockWentBackwards(t *testing.T) {
	s := newStoppedSubmission()
	s.ApplyStatus(StatusInProgress, testNow)

	hours, logged := s.ApplyStatus(StatusCompleted, testNow.Add(-time.Hour))
	assert.True(t, logged)
	assert.Zero(t, hours)
	assert.Zero(t, s.LoggedHours, "logged hours never decrease")
}

func TestElapsedDisplay(t *testing.T) {
	s := newStoppedSubmission()
	assert.Equal(t, "00:00:00", s.ElapsedDisplay(testNow), "stopped timer shows zero")

	s.ApplyStatus(StatusInProgress, testNow)
	at := testNow.Add(3*time.Hour + 7*time.Minute + 9*time.Second + 800*time.Millisecond)
	assert.Equal(t, "03:07:09", s.ElapsedDisplay(at), "sub-second remainder floors")

	before := s.LoggedHours
	s.ElapsedDisplay(at)
	assert.Equal(t, before, s.LoggedHours, "display is read-only")
}
