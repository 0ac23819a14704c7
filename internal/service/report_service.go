package service

import (
	"errors"
	"math"
	"time"

	"github.com/rawan03ayman/Employee-Training-System/internal/model"
	"github.com/rawan03ayman/Employee-Training-System/internal/repository"

	"gorm.io/gorm"
)

// DashboardStats is the top-level aggregate card on the admin dashboard.
type DashboardStats struct {
	TotalCourses     int     `json:"totalCourses"`
	TotalUsers       int     `json:"totalUsers"`
	TotalEnrollments int     `json:"totalEnrollments"`
	CompletionRate   float64 `json:"completionRate"`
}

type CourseCompletionReport struct {
	CourseID             uint    `json:"courseId"`
	CourseTitle          string  `json:"courseTitle"`
	TotalEnrollments     int     `json:"totalEnrollments"`
	CompletedEnrollments int     `json:"completedEnrollments"`
	CompletionRate       float64 `json:"completionRate"`
}

type DepartmentTrainingReport struct {
	Department         string  `json:"department"`
	TotalEmployees     int     `json:"totalEmployees"`
	TotalEnrollments   int     `json:"totalEnrollments"`
	CompletedTrainings int     `json:"completedTrainings"`
	CompletionRate     float64 `json:"completionRate"`
}

type UserCourseProgress struct {
	CourseID    uint                   `json:"courseId"`
	CourseTitle string                 `json:"courseTitle"`
	Progress    int                    `json:"progress"`
	Status      model.EnrollmentStatus `json:"status"`
	EnrolledAt  time.Time              `json:"enrolledAt"`
	CompletedAt *time.Time             `json:"completedAt"`
}

type UserProgressReport struct {
	UserID            uint                 `json:"userId"`
	UserName          string               `json:"userName"`
	Department        string               `json:"department"`
	TotalCourses      int                  `json:"totalCourses"`
	CompletedCourses  int                  `json:"completedCourses"`
	InProgressCourses int                  `json:"inProgressCourses"`
	CourseProgress    []UserCourseProgress `json:"courseProgress"`
}

// ReportService computes read-only aggregates by scanning the ledger and
// catalog. Nothing is cached; every call recomputes from the store.
type ReportService struct {
	EnrollmentRepo *repository.EnrollmentRepository
	CourseRepo     *repository.CourseRepository
	UserRepo       *repository.UserRepository
}

func NewReportService(
	enrollmentRepo *repository.EnrollmentRepository,
	courseRepo *repository.CourseRepository,
	userRepo *repository.UserRepository,
) *ReportService {
	return &ReportService{
		EnrollmentRepo: enrollmentRepo,
		CourseRepo:     courseRepo,
		UserRepo:       userRepo,
	}
}

func completionRate(completed, total int64) float64 {
	if total == 0 {
		return 0
	}
	return float64(completed) / float64(total) * 100
}

func (s *ReportService) GetDashboardStats() (*DashboardStats, error) {
	totalCourses, err := s.CourseRepo.CountActive()
	if err != nil {
		return nil, err
	}

	totalUsers, err := s.UserRepo.CountActiveEmployees()
	if err != nil {
		return nil, err
	}

	totalEnrollments, err := s.EnrollmentRepo.Count()
	if err != nil {
		return nil, err
	}

	completedEnrollments, err := s.EnrollmentRepo.CountCompleted()
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalCourses:     int(totalCourses),
		TotalUsers:       int(totalUsers),
		TotalEnrollments: int(totalEnrollments),
		CompletionRate:   math.Round(completionRate(completedEnrollments, totalEnrollments)*100) / 100,
	}, nil
}

func (s *ReportService) GetCourseCompletionReport() ([]CourseCompletionReport, error) {
	courses, err := s.CourseRepo.FindAllActive()
	if err != nil {
		return nil, err
	}

	reports := make([]CourseCompletionReport, 0, len(courses))
	for _, course := range courses {
		total, err := s.EnrollmentRepo.CountByCourse(course.ID)
		if err != nil {
			return nil, err
		}
		completed, err := s.EnrollmentRepo.CountCompletedByCourse(course.ID)
		if err != nil {
			return nil, err
		}

		reports = append(reports, CourseCompletionReport{
			CourseID:             course.ID,
			CourseTitle:          course.Title,
			TotalEnrollments:     int(total),
			CompletedEnrollments: int(completed),
			CompletionRate:       completionRate(completed, total),
		})
	}
	return reports, nil
}

// GetDepartmentTrainingReport groups active employees by the raw department
// string. Inconsistent casing or whitespace produces separate groups.
func (s *ReportService) GetDepartmentTrainingReport() ([]DepartmentTrainingReport, error) {
	employees, err := s.UserRepo.FindActiveEmployees()
	if err != nil {
		return nil, err
	}

	byDepartment := make(map[string][]uint)
	order := make([]string, 0)
	for _, u := range employees {
		if _, seen := byDepartment[u.Department]; !seen {
			order = append(order, u.Department)
		}
		byDepartment[u.Department] = append(byDepartment[u.Department], u.ID)
	}

	reports := make([]DepartmentTrainingReport, 0, len(order))
	for _, department := range order {
		userIDs := byDepartment[department]

		total, err := s.EnrollmentRepo.CountByUserIDs(userIDs)
		if err != nil {
			return nil, err
		}
		completed, err := s.EnrollmentRepo.CountCompletedByUserIDs(userIDs)
		if err != nil {
			return nil, err
		}

		reports = append(reports, DepartmentTrainingReport{
			Department:         department,
			TotalEmployees:     len(userIDs),
			TotalEnrollments:   int(total),
			CompletedTrainings: int(completed),
			CompletionRate:     completionRate(completed, total),
		})
	}
	return reports, nil
}

// GetUserProgressReport returns nil when the user does not exist. A course
// that has disappeared from the catalog is reported with title "Unknown"
// and the enrollment kept intact.
func (s *ReportService) GetUserProgressReport(userID uint) (*UserProgressReport, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	enrollments, err := s.EnrollmentRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	report := &UserProgressReport{
		UserID:         user.ID,
		UserName:       user.FirstName + " " + user.LastName,
		Department:     user.Department,
		TotalCourses:   len(enrollments),
		CourseProgress: make([]UserCourseProgress, 0, len(enrollments)),
	}

	for _, e := range enrollments {
		switch e.Status {
		case model.StatusCompleted:
			report.CompletedCourses++
		case model.StatusInProgress:
			report.InProgressCourses++
		}

		courseTitle := "Unknown"
		if course, err := s.CourseRepo.FindByID(e.CourseID); err == nil {
			courseTitle = course.Title
		}

		report.CourseProgress = append(report.CourseProgress, UserCourseProgress{
			CourseID:    e.CourseID,
			CourseTitle: courseTitle,
			Progress:    e.Progress,
			Status:      e.Status,
			EnrolledAt:  e.EnrolledAt,
			CompletedAt: e.CompletedAt,
		})
	}

	return report, nil
}
