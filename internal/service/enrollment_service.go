package service

import (
	"errors"
	"time"

	"github.com/rawan03ayman/Employee-Training-System/internal/model"
	"github.com/rawan03ayman/Employee-Training-System/internal/repository"
	"github.com/rawan03ayman/Employee-Training-System/internal/util"

	"gorm.io/gorm"
)

type EnrollmentService struct {
	EnrollmentRepo *repository.EnrollmentRepository
	CourseRepo     *repository.CourseRepository
	UserRepo       *repository.UserRepository
}

func NewEnrollmentService(
	enrollmentRepo *repository.EnrollmentRepository,
	courseRepo *repository.CourseRepository,
	userRepo *repository.UserRepository,
) *EnrollmentService {
	return &EnrollmentService{
		EnrollmentRepo: enrollmentRepo,
		CourseRepo:     courseRepo,
		UserRepo:       userRepo,
	}
}

func (s *EnrollmentService) GetEnrollments() ([]model.Enrollment, error) {
	return s.EnrollmentRepo.FindAll()
}

func (s *EnrollmentService) GetEnrollmentByID(id uint) (*model.Enrollment, error) {
	enrollment, err := s.EnrollmentRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrEnrollmentNotFound
	}
	return enrollment, err
}

func (s *EnrollmentService) GetEnrollmentsByUser(userID uint) ([]model.Enrollment, error) {
	return s.EnrollmentRepo.FindByUserID(userID)
}

func (s *EnrollmentService) GetEnrollmentsByCourse(courseID uint) ([]model.Enrollment, error) {
	return s.EnrollmentRepo.FindByCourseID(courseID)
}

// CreateEnrollment checks referential integrity at creation time only. The
// existence pre-check is advisory; two racing creates both reach the insert
// and the unique (user_id, course_id) index rejects the loser, which is
// reported as the same ErrAlreadyEnrolled.
func (s *EnrollmentService) CreateEnrollment(userID, courseID, assignedBy uint) (*model.Enrollment, error) {
	if _, err := s.UserRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	if _, err := s.CourseRepo.FindByID(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	exists, err := s.EnrollmentRepo.Exists(userID, courseID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, util.ErrAlreadyEnrolled
	}

	enrollment := &model.Enrollment{
		UserID:     userID,
		CourseID:   courseID,
		EnrolledAt: time.Now(),
		Status:     model.StatusEnrolled,
		Progress:   0,
		AssignedBy: assignedBy,
	}

	if err := s.EnrollmentRepo.Create(enrollment); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.ErrAlreadyEnrolled
		}
		return nil, err
	}
	return enrollment, nil
}

// UpdateProgress applies the derived-status rule atomically with the
// progress write. The progress value is not clamped to [0,100]; the rule is
// applied literally to whatever the caller sends.
func (s *EnrollmentService) UpdateProgress(id uint, progress int) (*model.Enrollment, error) {
	enrollment, err := s.EnrollmentRepo.UpdateProgress(id, progress, time.Now())
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrEnrollmentNotFound
	}
	return enrollment, err
}

// ReplaceEnrollment is a full overwrite with no field-level validation.
func (s *EnrollmentService) ReplaceEnrollment(id uint, enrollment *model.Enrollment) (*model.Enrollment, error) {
	existing, err := s.GetEnrollmentByID(id)
	if err != nil {
		return nil, err
	}

	enrollment.ID = existing.ID
	enrollment.CreatedAt = existing.CreatedAt

	if err := s.EnrollmentRepo.Replace(enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

func (s *EnrollmentService) DeleteEnrollment(id uint) error {
	err := s.EnrollmentRepo.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrEnrollmentNotFound
	}
	return err
}
