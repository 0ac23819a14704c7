package service

import (
	"errors"
	"testing"

	"github.com/rawan03ayman/Employee-Training-System/internal/model"
	"github.com/rawan03ayman/Employee-Training-System/internal/util"
)

func TestCreateEnrollment(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)

	admin := mustCreateUser(t, db, "admin", model.RoleAdmin, "IT")
	employee := mustCreateUser(t, db, "emp", model.RoleEmployee, "Sales")
	course := mustCreateCourse(t, db, "Security 101")

	enrollment, err := svc.CreateEnrollment(employee.ID, course.ID, admin.ID)
	if err != nil {
		t.Fatalf("CreateEnrollment() error = %v", err)
	}

	if enrollment.Status != model.StatusEnrolled {
		t.Errorf("Status = %s, want %s", enrollment.Status, model.StatusEnrolled)
	}
	if enrollment.Progress != 0 {
		t.Errorf("Progress = %d, want 0", enrollment.Progress)
	}
	if enrollment.AssignedBy != admin.ID {
		t.Errorf("AssignedBy = %d, want %d", enrollment.AssignedBy, admin.ID)
	}
	if enrollment.EnrolledAt.IsZero() {
		t.Error("EnrolledAt not set")
	}
}

func TestCreateEnrollmentMissingReferences(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)

	admin := mustCreateUser(t, db, "admin", model.RoleAdmin, "IT")
	course := mustCreateCourse(t, db, "Security 101")

	if _, err := svc.CreateEnrollment(9999, course.ID, admin.ID); !errors.Is(err, util.ErrUserNotFound) {
		t.Errorf("CreateEnrollment() with missing user error = %v, want ErrUserNotFound", err)
	}
	if _, err := svc.CreateEnrollment(admin.ID, 9999, admin.ID); !errors.Is(err, util.ErrCourseNotFound) {
		t.Errorf("CreateEnrollment() with missing course error = %v, want ErrCourseNotFound", err)
	}
}

func TestCreateEnrollmentDuplicate(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)

	admin := mustCreateUser(t, db, "admin", model.RoleAdmin, "IT")
	employee := mustCreateUser(t, db, "emp", model.RoleEmployee, "Sales")
	course := mustCreateCourse(t, db, "Security 101")

	if _, err := svc.CreateEnrollment(employee.ID, course.ID, admin.ID); err != nil {
		t.Fatalf("first CreateEnrollment() error = %v", err)
	}

	if _, err := svc.CreateEnrollment(employee.ID, course.ID, admin.ID); !errors.Is(err, util.ErrAlreadyEnrolled) {
		t.Errorf("second CreateEnrollment() error = %v, want ErrAlreadyEnrolled", err)
	}
}

// The existence pre-check is only advisory. Even when a duplicate row gets
// past it, the unique (user_id, course_id) index rejects the insert and the
// service reports the same conflict.
func TestCreateEnrollmentUniqueIndexBackstop(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)

	admin := mustCreateUser(t, db, "admin", model.RoleAdmin, "IT")
	employee := mustCreateUser(t, db, "emp", model.RoleEmployee, "Sales")
	course := mustCreateCourse(t, db, "Security 101")

	// Simulate the loser of a create/create race: the row appears after the
	// pre-check would have run.
	first := &model.Enrollment{
		UserID:   employee.ID,
		CourseID: course.ID,
		Status:   model.StatusEnrolled,
	}
	if err := db.Create(first).Error; err != nil {
		t.Fatalf("seed enrollment: %v", err)
	}

	second := &model.Enrollment{
		UserID:   employee.ID,
		CourseID: course.ID,
		Status:   model.StatusEnrolled,
	}
	err := db.Create(second).Error
	if err == nil {
		t.Fatal("duplicate insert succeeded; unique index missing")
	}

	if _, err := svc.CreateEnrollment(employee.ID, course.ID, admin.ID); !errors.Is(err, util.ErrAlreadyEnrolled) {
		t.Errorf("CreateEnrollment() error = %v, want ErrAlreadyEnrolled", err)
	}
}

func TestUpdateProgressLifecycle(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)

	admin := mustCreateUser(t, db, "admin", model.RoleAdmin, "IT")
	employee := mustCreateUser(t, db, "emp", model.RoleEmployee, "Sales")
	course := mustCreateCourse(t, db, "Security 101")

	enrollment, err := svc.CreateEnrollment(employee.ID, course.ID, admin.ID)
	if err != nil {
		t.Fatalf("CreateEnrollment() error = %v", err)
	}

	updated, err := svc.UpdateProgress(enrollment.ID, 50)
	if err != nil {
		t.Fatalf("UpdateProgress(50) error = %v", err)
	}
	if updated.Status != model.StatusInProgress {
		t.Errorf("Status after 50%% = %s, want %s", updated.Status, model.StatusInProgress)
	}
	if updated.CompletedAt != nil {
		t.Errorf("CompletedAt after 50%% = %v, want nil", updated.CompletedAt)
	}

	updated, err = svc.UpdateProgress(enrollment.ID, 100)
	if err != nil {
		t.Fatalf("UpdateProgress(100) error = %v", err)
	}
	if updated.Status != model.StatusCompleted {
		t.Errorf("Status after 100%% = %s, want %s", updated.Status, model.StatusCompleted)
	}
	if updated.CompletedAt == nil {
		t.Error("CompletedAt after 100% is nil")
	}

	// Persisted state must match the returned value.
	stored, err := svc.GetEnrollmentByID(enrollment.ID)
	if err != nil {
		t.Fatalf("GetEnrollmentByID() error = %v", err)
	}
	if stored.Status != model.StatusCompleted || stored.Progress != 100 {
		t.Errorf("stored = {%s, %d}, want {Completed, 100}", stored.Status, stored.Progress)
	}
	if stored.CompletedAt == nil {
		t.Error("stored CompletedAt is nil")
	}
}

// Regression for the documented quirk: updating progress to 0 leaves the
// previous status in place, including Completed.
func TestUpdateProgressZeroDoesNotRevert(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)

	admin := mustCreateUser(t, db, "admin", model.RoleAdmin, "IT")
	employee := mustCreateUser(t, db, "emp", model.RoleEmployee, "Sales")
	course := mustCreateCourse(t, db, "Security 101")

	enrollment, err := svc.CreateEnrollment(employee.ID, course.ID, admin.ID)
	if err != nil {
		t.Fatalf("CreateEnrollment() error = %v", err)
	}

	if _, err := svc.UpdateProgress(enrollment.ID, 100); err != nil {
		t.Fatalf("UpdateProgress(100) error = %v", err)
	}

	updated, err := svc.UpdateProgress(enrollment.ID, 0)
	if err != nil {
		t.Fatalf("UpdateProgress(0) error = %v", err)
	}
	if updated.Status != model.StatusCompleted {
		t.Errorf("Status after reset to 0 = %s, want %s", updated.Status, model.StatusCompleted)
	}
	if updated.Progress != 0 {
		t.Errorf("Progress = %d, want 0", updated.Progress)
	}
}

func TestUpdateProgressNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)

	if _, err := svc.UpdateProgress(9999, 50); !errors.Is(err, util.ErrEnrollmentNotFound) {
		t.Errorf("UpdateProgress() error = %v, want ErrEnrollmentNotFound", err)
	}
}

func TestDeleteEnrollment(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)

	admin := mustCreateUser(t, db, "admin", model.RoleAdmin, "IT")
	employee := mustCreateUser(t, db, "emp", model.RoleEmployee, "Sales")
	course := mustCreateCourse(t, db, "Security 101")

	enrollment, err := svc.CreateEnrollment(employee.ID, course.ID, admin.ID)
	if err != nil {
		t.Fatalf("CreateEnrollment() error = %v", err)
	}

	if err := svc.DeleteEnrollment(enrollment.ID); err != nil {
		t.Fatalf("DeleteEnrollment() error = %v", err)
	}

	if _, err := svc.GetEnrollmentByID(enrollment.ID); !errors.Is(err, util.ErrEnrollmentNotFound) {
		t.Errorf("GetEnrollmentByID() after delete error = %v, want ErrEnrollmentNotFound", err)
	}

	if err := svc.DeleteEnrollment(enrollment.ID); !errors.Is(err, util.ErrEnrollmentNotFound) {
		t.Errorf("second DeleteEnrollment() error = %v, want ErrEnrollmentNotFound", err)
	}
}

// A soft-deleted course disappears from listings but an enrollment keeps
// its dangling course reference.
func TestEnrollmentSurvivesCourseSoftDelete(t *testing.T) {
	db := newTestDB(t)
	enrollSvc := newEnrollmentService(db)
	courseSvc := NewCourseService(enrollSvc.CourseRepo)

	admin := mustCreateUser(t, db, "admin", model.RoleAdmin, "IT")
	employee := mustCreateUser(t, db, "emp", model.RoleEmployee, "Sales")
	course := mustCreateCourse(t, db, "Security 101")

	enrollment, err := enrollSvc.CreateEnrollment(employee.ID, course.ID, admin.ID)
	if err != nil {
		t.Fatalf("CreateEnrollment() error = %v", err)
	}

	if err := courseSvc.DeleteCourse(course.ID); err != nil {
		t.Fatalf("DeleteCourse() error = %v", err)
	}

	courses, err := courseSvc.GetCourses()
	if err != nil {
		t.Fatalf("GetCourses() error = %v", err)
	}
	if len(courses) != 0 {
		t.Errorf("GetCourses() returned %d courses, want 0", len(courses))
	}

	stored, err := enrollSvc.GetEnrollmentByID(enrollment.ID)
	if err != nil {
		t.Fatalf("GetEnrollmentByID() error = %v", err)
	}
	if stored.CourseID != course.ID {
		t.Errorf("CourseID = %d, want %d", stored.CourseID, course.ID)
	}
}
