package repository

import (
	"github.com/rawan03ayman/Employee-Training-System/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindAll() ([]model.User, error) {
	var users []model.User
	err := r.DB.Order("created_at DESC").Find(&users).Error
	return users, err
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

// FindByUsername matches exactly and case-sensitively.
func (r *UserRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("username = ?", username).First(&user).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *UserRepository) FindActiveEmployees() ([]model.User, error) {
	var users []model.User
	err := r.DB.Where("role = ? AND is_active = ?", model.RoleEmployee, true).Find(&users).Error
	return users, err
}

func (r *UserRepository) CountActiveEmployees() (int64, error) {
	var count int64
	err := r.DB.Model(&model.User{}).
		Where("role = ? AND is_active = ?", model.RoleEmployee, true).
		Count(&count).Error
	return count, err
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

// Delete removes the row permanently.
func (r *UserRepository) Delete(id uint) error {
	result := r.DB.Delete(&model.User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
