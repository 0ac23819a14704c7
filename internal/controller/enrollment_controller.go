package controller

import (
	"errors"

	"github.com/rawan03ayman/Employee-Training-System/internal/model"
	"github.com/rawan03ayman/Employee-Training-System/internal/service"
	"github.com/rawan03ayman/Employee-Training-System/internal/util"

	"github.com/gin-gonic/gin"
)

type EnrollmentController struct {
	EnrollmentService *service.EnrollmentService
}

func NewEnrollmentController(enrollmentService *service.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{EnrollmentService: enrollmentService}
}

// swagger:model CreateEnrollmentRequest
type CreateEnrollmentRequest struct {
	UserID   uint `json:"userId" binding:"required"`
	CourseID uint `json:"courseId" binding:"required"`
}

// swagger:model UpdateProgressRequest
type UpdateProgressRequest struct {
	Progress *int `json:"progress" binding:"required"`
}

// GetEnrollments godoc
// @Summary List all enrollments
// @Tags enrollments
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Enrollment}
// @Failure 403 {object} util.Response
// @Router /api/enrollments [get]
func (c *EnrollmentController) GetEnrollments(ctx *gin.Context) {
	enrollments, err := c.EnrollmentService.GetEnrollments()
	if err != nil {
		util.InternalError(ctx, err)
		return
	}
	util.Success(ctx, enrollments)
}

// GetEnrollment godoc
// @Summary Get a single enrollment
// @Tags enrollments
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "enrollment id"
// @Success 200 {object} util.Response{data=model.Enrollment}
// @Failure 404 {object} util.Response
// @Router /api/enrollments/{id} [get]
func (c *EnrollmentController) GetEnrollment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	enrollment, err := c.EnrollmentService.GetEnrollmentByID(id)
	if err != nil {
		if errors.Is(err, util.ErrEnrollmentNotFound) {
			util.NotFound(ctx)
		} else {
			util.InternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, enrollment)
}

// GetUserEnrollments godoc
// @Summary List a user's enrollments
// @Description Owner-or-admin.
// @Tags enrollments
// @Produce json
// @Security ApiKeyAuth
// @Param userId path int true "user id"
// @Success 200 {object} util.Response{data=[]model.Enrollment}
// @Failure 403 {object} util.Response
// @Router /api/enrollments/user/{userId} [get]
func (c *EnrollmentController) GetUserEnrollments(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "userId")
	if !ok {
		return
	}

	claims := util.GetUserFromContext(ctx)
	if !util.IsOwnerOrAdmin(claims, userID) {
		util.Forbidden(ctx)
		return
	}

	enrollments, err := c.EnrollmentService.GetEnrollmentsByUser(userID)
	if err != nil {
		util.InternalError(ctx, err)
		return
	}
	util.Success(ctx, enrollments)
}

// GetCourseEnrollments godoc
// @Summary List a course's enrollments
// @Tags enrollments
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path int true "course id"
// @Success 200 {object} util.Response{data=[]model.Enrollment}
// @Failure 403 {object} util.Response
// @Router /api/enrollments/course/{courseId} [get]
func (c *EnrollmentController) GetCourseEnrollments(ctx *gin.Context) {
	courseID, ok := parseIDParam(ctx, "courseId")
	if !ok {
		return
	}

	enrollments, err := c.EnrollmentService.GetEnrollmentsByCourse(courseID)
	if err != nil {
		util.InternalError(ctx, err)
		return
	}
	util.Success(ctx, enrollments)
}

// CreateEnrollment godoc
// @Summary Assign a user to a course
// @Tags enrollments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body CreateEnrollmentRequest true "user and course"
// @Success 201 {object} util.Response{data=model.Enrollment}
// @Failure 400 {object} util.Response "user or course not found, or already enrolled"
// @Router /api/enrollments [post]
func (c *EnrollmentController) CreateEnrollment(ctx *gin.Context) {
	var req CreateEnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	enrollment, err := c.EnrollmentService.CreateEnrollment(req.UserID, req.CourseID, claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrAlreadyEnrolled),
			errors.Is(err, util.ErrUserNotFound),
			errors.Is(err, util.ErrCourseNotFound):
			util.BadRequest(ctx, err.Error())
		default:
			util.InternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, enrollment)
}

// ReplaceEnrollment godoc
// @Summary Replace an enrollment record
// @Description Full overwrite with no field-level validation.
// @Tags enrollments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "enrollment id"
// @Param body body model.Enrollment true "full record"
// @Success 200 {object} util.Response{data=model.Enrollment}
// @Failure 404 {object} util.Response
// @Router /api/enrollments/{id} [put]
func (c *EnrollmentController) ReplaceEnrollment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var enrollment model.Enrollment
	if err := ctx.ShouldBindJSON(&enrollment); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	updated, err := c.EnrollmentService.ReplaceEnrollment(id, &enrollment)
	if err != nil {
		if errors.Is(err, util.ErrEnrollmentNotFound) {
			util.NotFound(ctx)
		} else {
			util.InternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, updated)
}

// UpdateProgress godoc
// @Summary Update enrollment progress
// @Description Owner-or-admin. Status is derived from progress atomically with the write.
// @Tags enrollments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "enrollment id"
// @Param body body UpdateProgressRequest true "new progress"
// @Success 200 {object} util.Response{data=model.Enrollment}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/enrollments/{id}/progress [put]
func (c *EnrollmentController) UpdateProgress(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	enrollment, err := c.EnrollmentService.GetEnrollmentByID(id)
	if err != nil {
		if errors.Is(err, util.ErrEnrollmentNotFound) {
			util.NotFound(ctx)
		} else {
			util.InternalError(ctx, err)
		}
		return
	}

	claims := util.GetUserFromContext(ctx)
	if !util.IsOwnerOrAdmin(claims, enrollment.UserID) {
		util.Forbidden(ctx)
		return
	}

	var req UpdateProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	updated, err := c.EnrollmentService.UpdateProgress(id, *req.Progress)
	if err != nil {
		if errors.Is(err, util.ErrEnrollmentNotFound) {
			util.NotFound(ctx)
		} else {
			util.InternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, updated)
}

// DeleteEnrollment godoc
// @Summary Delete an enrollment permanently
// @Tags enrollments
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "enrollment id"
// @Success 204 "deleted"
// @Failure 404 {object} util.Response
// @Router /api/enrollments/{id} [delete]
func (c *EnrollmentController) DeleteEnrollment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.EnrollmentService.DeleteEnrollment(id); err != nil {
		if errors.Is(err, util.ErrEnrollmentNotFound) {
			util.NotFound(ctx)
		} else {
			util.InternalError(ctx, err)
		}
		return
	}
	util.NoContent(ctx)
}
