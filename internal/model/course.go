package model

import (
	"time"

	"gorm.io/datatypes"
)

// CourseModule is a content unit inside a course, stored as part of the
// course's JSON modules column.
type CourseModule struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Order   int    `json:"order"`
}

// swagger:model Course
type Course struct {
	Base
	Title           string                              `gorm:"size:200;not null" json:"title"`
	Description     string                              `gorm:"type:text" json:"description"`
	Category        string                              `gorm:"size:100;index" json:"category"`
	Duration        int                                 `json:"duration"` // hours
	Level           string                              `gorm:"size:50" json:"level"`
	Instructor      string                              `gorm:"size:100" json:"instructor"`
	StartDate       time.Time                           `json:"startDate"`
	EndDate         time.Time                           `json:"endDate"`
	MaxParticipants int                                 `json:"maxParticipants"`
	Prerequisites   datatypes.JSONSlice[uint]           `json:"prerequisites"`
	Modules         datatypes.JSONSlice[CourseModule]   `json:"modules"`
	IsActive        bool                                `gorm:"default:true;index" json:"isActive"`
	CreatedBy       uint                                `json:"createdBy"`
}

func (Course) TableName() string {
	return "courses"
}
