package model

import (
	"time"

	"gorm.io/datatypes"
)

type EnrollmentStatus string

const (
	StatusEnrolled   EnrollmentStatus = "Enrolled"
	StatusInProgress EnrollmentStatus = "InProgress"
	StatusCompleted  EnrollmentStatus = "Completed"
	StatusDropped    EnrollmentStatus = "Dropped"
)

// AttendanceRecord is one attendance entry, stored inside the enrollment's
// JSON attendance column.
type AttendanceRecord struct {
	Date    time.Time `json:"date"`
	Present bool      `json:"present"`
	Notes   string    `json:"notes,omitempty"`
}

// swagger:model Enrollment
type Enrollment struct {
	Base
	UserID      uint                                  `gorm:"not null;uniqueIndex:idx_user_course" json:"userId"`
	CourseID    uint                                  `gorm:"not null;uniqueIndex:idx_user_course" json:"courseId"`
	EnrolledAt  time.Time                             `json:"enrolledAt"`
	Status      EnrollmentStatus                      `gorm:"size:20;default:'Enrolled'" json:"status"`
	Progress    int                                   `gorm:"default:0" json:"progress"`
	CompletedAt *time.Time                            `json:"completedAt"`
	FinalScore  *int                                  `json:"finalScore"`
	Attendance  datatypes.JSONSlice[AttendanceRecord] `json:"attendance"`
	AssignedBy  uint                                  `json:"assignedBy"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}

// ApplyProgress writes the new progress value and derives the status from it.
// The status rule has no branch for progress == 0: an update back to zero
// leaves the previous status (including Completed or Dropped) in place.
// Reaching 100 stamps CompletedAt on every such update, not only the first.
func ApplyProgress(e *Enrollment, progress int, now time.Time) {
	e.Progress = progress

	switch {
	case progress >= 100:
		e.Status = StatusCompleted
		e.CompletedAt = &now
	case progress > 0:
		e.Status = StatusInProgress
	}
}
