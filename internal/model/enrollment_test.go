package model

import (
	"testing"
	"time"
)

func TestApplyProgress(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name            string
		initialStatus   EnrollmentStatus
		progress        int
		wantStatus      EnrollmentStatus
		wantCompletedAt bool
	}{
		{
			name:          "mid progress moves to InProgress",
			initialStatus: StatusEnrolled,
			progress:      50,
			wantStatus:    StatusInProgress,
		},
		{
			name:            "full progress completes and stamps CompletedAt",
			initialStatus:   StatusInProgress,
			progress:        100,
			wantStatus:      StatusCompleted,
			wantCompletedAt: true,
		},
		{
			name:            "over 100 is treated as complete",
			initialStatus:   StatusEnrolled,
			progress:        150,
			wantStatus:      StatusCompleted,
			wantCompletedAt: true,
		},
		{
			name:          "zero progress leaves Enrolled unchanged",
			initialStatus: StatusEnrolled,
			progress:      0,
			wantStatus:    StatusEnrolled,
		},
		{
			name:          "zero progress does not revert Dropped",
			initialStatus: StatusDropped,
			progress:      0,
			wantStatus:    StatusDropped,
		},
		{
			name:          "negative progress leaves status unchanged",
			initialStatus: StatusInProgress,
			progress:      -5,
			wantStatus:    StatusInProgress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &Enrollment{Status: tt.initialStatus}
			ApplyProgress(e, tt.progress, now)

			if e.Progress != tt.progress {
				t.Errorf("Progress = %d, want %d", e.Progress, tt.progress)
			}
			if e.Status != tt.wantStatus {
				t.Errorf("Status = %s, want %s", e.Status, tt.wantStatus)
			}
			if tt.wantCompletedAt {
				if e.CompletedAt == nil || !e.CompletedAt.Equal(now) {
					t.Errorf("CompletedAt = %v, want %v", e.CompletedAt, now)
				}
			} else if e.CompletedAt != nil {
				t.Errorf("CompletedAt = %v, want nil", e.CompletedAt)
			}
		})
	}
}

// Regression: completing, then updating progress to 0, must not revert the
// Completed status or clear the completion timestamp.
func TestApplyProgressZeroAfterCompletion(t *testing.T) {
	completedAt := time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)
	e := &Enrollment{Status: StatusCompleted, Progress: 100, CompletedAt: &completedAt}

	ApplyProgress(e, 0, time.Now())

	if e.Status != StatusCompleted {
		t.Errorf("Status = %s, want %s", e.Status, StatusCompleted)
	}
	if e.Progress != 0 {
		t.Errorf("Progress = %d, want 0", e.Progress)
	}
	if e.CompletedAt == nil || !e.CompletedAt.Equal(completedAt) {
		t.Errorf("CompletedAt = %v, want %v", e.CompletedAt, completedAt)
	}
}

// Re-completing recomputes the timestamp on every update that reaches 100,
// not only the first transition.
func TestApplyProgressRestampsCompletedAt(t *testing.T) {
	first := time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)
	second := first.Add(48 * time.Hour)

	e := &Enrollment{Status: StatusEnrolled}
	ApplyProgress(e, 100, first)
	ApplyProgress(e, 100, second)

	if e.CompletedAt == nil || !e.CompletedAt.Equal(second) {
		t.Errorf("CompletedAt = %v, want %v", e.CompletedAt, second)
	}
}
