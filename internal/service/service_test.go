package service

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/rawan03ayman/Employee-Training-System/internal/config"
	"github.com/rawan03ayman/Employee-Training-System/internal/model"
	"github.com/rawan03ayman/Employee-Training-System/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	if err := db.AutoMigrate(&model.User{}, &model.Course{}, &model.Enrollment{}); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:     "test-secret-key-at-least-32-chars-long",
			ExpireTime: 168 * time.Hour,
		},
	}
}

func mustCreateUser(t *testing.T, db *gorm.DB, username string, role model.UserRole, department string) *model.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	user := &model.User{
		Username:   username,
		Email:      username + "@example.com",
		Password:   string(hash),
		FirstName:  "Test",
		LastName:   "User",
		Role:       role,
		Department: department,
		IsActive:   true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return user
}

func mustCreateCourse(t *testing.T, db *gorm.DB, title string) *model.Course {
	t.Helper()

	course := &model.Course{
		Title:           title,
		Description:     "description",
		Category:        "General",
		Duration:        4,
		Level:           "Beginner",
		Instructor:      "Instructor",
		StartDate:       time.Now(),
		EndDate:         time.Now().Add(30 * 24 * time.Hour),
		MaxParticipants: 20,
		IsActive:        true,
	}
	if err := db.Create(course).Error; err != nil {
		t.Fatalf("create course %s: %v", title, err)
	}
	return course
}

func newEnrollmentService(db *gorm.DB) *EnrollmentService {
	return NewEnrollmentService(
		repository.NewEnrollmentRepository(db),
		repository.NewCourseRepository(db),
		repository.NewUserRepository(db),
	)
}

func newReportService(db *gorm.DB) *ReportService {
	return NewReportService(
		repository.NewEnrollmentRepository(db),
		repository.NewCourseRepository(db),
		repository.NewUserRepository(db),
	)
}
