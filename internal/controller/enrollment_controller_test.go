package controller

import (
	"net/http"
	"testing"

	"github.com/rawan03ayman/Employee-Training-System/internal/model"
	"github.com/rawan03ayman/Employee-Training-System/internal/repository"
	"github.com/rawan03ayman/Employee-Training-System/internal/service"
	"github.com/rawan03ayman/Employee-Training-System/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func newEnrollmentRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := newControllerTestDB(t)
	enrollmentController := NewEnrollmentController(service.NewEnrollmentService(
		repository.NewEnrollmentRepository(db),
		repository.NewCourseRepository(db),
		repository.NewUserRepository(db),
	))

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user", &util.Claims{UserID: 1, Username: "admin", Role: model.RoleAdmin})
	})
	r.POST("/api/enrollments", enrollmentController.CreateEnrollment)
	return r, db
}

// A repeated assignment is answered with 400, same as a missing reference.
func TestCreateEnrollmentDuplicateStatus(t *testing.T) {
	router, db := newEnrollmentRouter(t)

	user := &model.User{
		Username: "emp", Email: "emp@example.com", Password: "x",
		FirstName: "Test", LastName: "User", Role: model.RoleEmployee, IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	course := &model.Course{Title: "Security 101", Category: "General", Duration: 4, MaxParticipants: 20, IsActive: true}
	if err := db.Create(course).Error; err != nil {
		t.Fatalf("create course: %v", err)
	}

	body := map[string]uint{"userId": user.ID, "courseId": course.ID}
	if w := postJSON(t, router, "/api/enrollments", body); w.Code != http.StatusCreated {
		t.Fatalf("first enrollment status = %d, want 201: %s", w.Code, w.Body.String())
	}

	w := postJSON(t, router, "/api/enrollments", body)
	if w.Code != http.StatusBadRequest {
		t.Errorf("second enrollment status = %d, want 400", w.Code)
	}
	if resp := decodeResponse(t, w); resp.Message != "user is already enrolled in this course" {
		t.Errorf("message = %q, want the duplicate-enrollment message", resp.Message)
	}
}

func TestCreateEnrollmentMissingReferenceStatus(t *testing.T) {
	router, _ := newEnrollmentRouter(t)

	w := postJSON(t, router, "/api/enrollments", map[string]uint{"userId": 55, "courseId": 77})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if resp := decodeResponse(t, w); resp.Message != "user not found" {
		t.Errorf("message = %q, want %q", resp.Message, "user not found")
	}
}
