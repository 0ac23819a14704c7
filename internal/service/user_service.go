package service

import (
	"errors"

	"github.com/rawan03ayman/Employee-Training-System/internal/model"
	"github.com/rawan03ayman/Employee-Training-System/internal/repository"
	"github.com/rawan03ayman/Employee-Training-System/internal/util"

	"gorm.io/gorm"
)

// UserUpdate carries the mutable profile fields. Role and IsActive are only
// honored when the caller is an admin; for everyone else they are ignored,
// not rejected.
type UserUpdate struct {
	FirstName  *string
	LastName   *string
	Email      *string
	Department *string
	Role       *model.UserRole
	IsActive   *bool
}

type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

func (s *UserService) GetUsers() ([]model.User, error) {
	return s.UserRepo.FindAll()
}

func (s *UserService) GetUserByID(id uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	return user, err
}

func (s *UserService) UpdateUser(id uint, update UserUpdate, callerIsAdmin bool) (*model.User, error) {
	user, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	if update.FirstName != nil {
		user.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		user.LastName = *update.LastName
	}
	if update.Email != nil {
		user.Email = *update.Email
	}
	if update.Department != nil {
		user.Department = *update.Department
	}

	if callerIsAdmin {
		if update.Role != nil {
			user.Role = *update.Role
		}
		if update.IsActive != nil {
			user.IsActive = *update.IsActive
		}
	}

	// Email is the only unique-indexed field reachable from here; username
	// is not updatable.
	if err := s.UserRepo.Update(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) DeleteUser(id uint) error {
	err := s.UserRepo.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrUserNotFound
	}
	return err
}
