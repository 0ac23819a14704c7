package repository

import (
	"time"

	"github.com/rawan03ayman/Employee-Training-System/internal/model"

	"gorm.io/gorm"
)

type EnrollmentRepository struct {
	DB *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{DB: db}
}

// Create relies on the unique (user_id, course_id) index to reject
// duplicates; callers translate gorm.ErrDuplicatedKey into a conflict.
func (r *EnrollmentRepository) Create(enrollment *model.Enrollment) error {
	return r.DB.Create(enrollment).Error
}

func (r *EnrollmentRepository) FindAll() ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.DB.Order("enrolled_at DESC").Find(&enrollments).Error
	return enrollments, err
}

func (r *EnrollmentRepository) FindByID(id uint) (*model.Enrollment, error) {
	var enrollment model.Enrollment
	err := r.DB.First(&enrollment, id).Error
	return &enrollment, err
}

func (r *EnrollmentRepository) FindByUserID(userID uint) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.DB.Where("user_id = ?", userID).Find(&enrollments).Error
	return enrollments, err
}

func (r *EnrollmentRepository) FindByCourseID(courseID uint) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.DB.Where("course_id = ?", courseID).Find(&enrollments).Error
	return enrollments, err
}

// Exists is the advisory pre-check before Create. The unique index is the
// actual safeguard against the check-then-act race.
func (r *EnrollmentRepository) Exists(userID, courseID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Enrollment{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Count(&count).Error
	return count > 0, err
}

func (r *EnrollmentRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Enrollment{}).Count(&count).Error
	return count, err
}

func (r *EnrollmentRepository) CountCompleted() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Enrollment{}).
		Where("status = ?", model.StatusCompleted).
		Count(&count).Error
	return count, err
}

func (r *EnrollmentRepository) CountByCourse(courseID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Enrollment{}).Where("course_id = ?", courseID).Count(&count).Error
	return count, err
}

func (r *EnrollmentRepository) CountCompletedByCourse(courseID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Enrollment{}).
		Where("course_id = ? AND status = ?", courseID, model.StatusCompleted).
		Count(&count).Error
	return count, err
}

func (r *EnrollmentRepository) CountByUserIDs(userIDs []uint) (int64, error) {
	if len(userIDs) == 0 {
		return 0, nil
	}
	var count int64
	err := r.DB.Model(&model.Enrollment{}).Where("user_id IN ?", userIDs).Count(&count).Error
	return count, err
}

func (r *EnrollmentRepository) CountCompletedByUserIDs(userIDs []uint) (int64, error) {
	if len(userIDs) == 0 {
		return 0, nil
	}
	var count int64
	err := r.DB.Model(&model.Enrollment{}).
		Where("user_id IN ? AND status = ?", userIDs, model.StatusCompleted).
		Count(&count).Error
	return count, err
}

// UpdateProgress persists progress, status and completed_at in a single
// transaction, so the derived status can never drift from the progress it
// was computed from.
func (r *EnrollmentRepository) UpdateProgress(id uint, progress int, now time.Time) (*model.Enrollment, error) {
	var enrollment model.Enrollment
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&enrollment, id).Error; err != nil {
			return err
		}

		model.ApplyProgress(&enrollment, progress, now)

		return tx.Model(&enrollment).Select("progress", "status", "completed_at").Updates(map[string]interface{}{
			"progress":     enrollment.Progress,
			"status":       enrollment.Status,
			"completed_at": enrollment.CompletedAt,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// Replace overwrites every mutable field of the row.
func (r *EnrollmentRepository) Replace(enrollment *model.Enrollment) error {
	return r.DB.Save(enrollment).Error
}

// Delete removes the row permanently, with no retention of history.
func (r *EnrollmentRepository) Delete(id uint) error {
	result := r.DB.Delete(&model.Enrollment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
