package service

import (
	"errors"

	"github.com/rawan03ayman/Employee-Training-System/internal/model"
	"github.com/rawan03ayman/Employee-Training-System/internal/repository"
	"github.com/rawan03ayman/Employee-Training-System/internal/util"

	"gorm.io/gorm"
)

type CourseService struct {
	CourseRepo *repository.CourseRepository
}

func NewCourseService(courseRepo *repository.CourseRepository) *CourseService {
	return &CourseService{CourseRepo: courseRepo}
}

func (s *CourseService) GetCourses() ([]model.Course, error) {
	return s.CourseRepo.FindAllActive()
}

func (s *CourseService) GetCoursesByCategory(category string) ([]model.Course, error) {
	return s.CourseRepo.FindActiveByCategory(category)
}

func (s *CourseService) GetCourseByID(id uint) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCourseNotFound
	}
	return course, err
}

// CreateCourse performs no cross-field validation: EndDate may precede
// StartDate and MaxParticipants is never checked against the enrollment
// count.
func (s *CourseService) CreateCourse(course *model.Course, createdBy uint) error {
	course.CreatedBy = createdBy
	course.IsActive = true
	return s.CourseRepo.Create(course)
}

func (s *CourseService) UpdateCourse(id uint, course *model.Course) (*model.Course, error) {
	existing, err := s.GetCourseByID(id)
	if err != nil {
		return nil, err
	}

	course.ID = existing.ID
	course.CreatedAt = existing.CreatedAt
	course.CreatedBy = existing.CreatedBy

	if err := s.CourseRepo.Update(course); err != nil {
		return nil, err
	}
	return course, nil
}

// DeleteCourse is a soft delete. Enrollments referencing the course are
// left untouched.
func (s *CourseService) DeleteCourse(id uint) error {
	err := s.CourseRepo.SoftDelete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrCourseNotFound
	}
	return err
}
