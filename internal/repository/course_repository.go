package repository

import (
	"github.com/rawan03ayman/Employee-Training-System/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) Create(course *model.Course) error {
	return r.DB.Create(course).Error
}

// FindAllActive excludes soft-deleted courses from every listing.
func (r *CourseRepository) FindAllActive() ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Where("is_active = ?", true).Order("created_at DESC").Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) FindActiveByCategory(category string) ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Where("category = ? AND is_active = ?", category, true).Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) FindByID(id uint) (*model.Course, error) {
	var course model.Course
	err := r.DB.First(&course, id).Error
	return &course, err
}

func (r *CourseRepository) CountActive() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Course{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}

func (r *CourseRepository) Update(course *model.Course) error {
	return r.DB.Save(course).Error
}

// SoftDelete flips IsActive. Historical enrollments keep referencing the
// course id; nothing cascades and nothing blocks.
func (r *CourseRepository) SoftDelete(id uint) error {
	result := r.DB.Model(&model.Course{}).Where("id = ?", id).Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
