package controller

import (
	"errors"
	"time"

	"github.com/rawan03ayman/Employee-Training-System/internal/model"
	"github.com/rawan03ayman/Employee-Training-System/internal/service"
	"github.com/rawan03ayman/Employee-Training-System/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type CourseController struct {
	CourseService *service.CourseService
}

func NewCourseController(courseService *service.CourseService) *CourseController {
	return &CourseController{CourseService: courseService}
}

// swagger:model CourseRequest
type CourseRequest struct {
	Title           string               `json:"title" binding:"required"`
	Description     string               `json:"description" binding:"required"`
	Category        string               `json:"category" binding:"required"`
	Duration        int                  `json:"duration" binding:"required,min=1"`
	Level           string               `json:"level" binding:"required"`
	Instructor      string               `json:"instructor" binding:"required"`
	StartDate       time.Time            `json:"startDate" binding:"required"`
	EndDate         time.Time            `json:"endDate" binding:"required"`
	MaxParticipants int                  `json:"maxParticipants" binding:"required,min=1"`
	Prerequisites   []uint               `json:"prerequisites"`
	Modules         []model.CourseModule `json:"modules"`
}

func (r *CourseRequest) toModel() *model.Course {
	return &model.Course{
		Title:           r.Title,
		Description:     r.Description,
		Category:        r.Category,
		Duration:        r.Duration,
		Level:           r.Level,
		Instructor:      r.Instructor,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		MaxParticipants: r.MaxParticipants,
		Prerequisites:   datatypes.NewJSONSlice(r.Prerequisites),
		Modules:         datatypes.NewJSONSlice(r.Modules),
		IsActive:        true,
	}
}

// GetCourses godoc
// @Summary List active courses
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Course}
// @Router /api/courses [get]
func (c *CourseController) GetCourses(ctx *gin.Context) {
	courses, err := c.CourseService.GetCourses()
	if err != nil {
		util.InternalError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// GetCoursesByCategory godoc
// @Summary List active courses in a category
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Param category path string true "category"
// @Success 200 {object} util.Response{data=[]model.Course}
// @Router /api/courses/category/{category} [get]
func (c *CourseController) GetCoursesByCategory(ctx *gin.Context) {
	courses, err := c.CourseService.GetCoursesByCategory(ctx.Param("category"))
	if err != nil {
		util.InternalError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// GetCourse godoc
// @Summary Get a single course
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "course id"
// @Success 200 {object} util.Response{data=model.Course}
// @Failure 404 {object} util.Response
// @Router /api/courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	course, err := c.CourseService.GetCourseByID(id)
	if err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx)
		} else {
			util.InternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, course)
}

// CreateCourse godoc
// @Summary Create a course
// @Tags courses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body CourseRequest true "course definition"
// @Success 201 {object} util.Response{data=model.Course}
// @Failure 400 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	course := req.toModel()
	if err := c.CourseService.CreateCourse(course, claims.UserID); err != nil {
		util.InternalError(ctx, err)
		return
	}
	util.Created(ctx, course)
}

// UpdateCourse godoc
// @Summary Replace a course definition
// @Tags courses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "course id"
// @Param body body CourseRequest true "new course definition"
// @Success 200 {object} util.Response{data=model.Course}
// @Failure 404 {object} util.Response
// @Router /api/courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.CourseService.UpdateCourse(id, req.toModel())
	if err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx)
		} else {
			util.InternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, course)
}

// DeleteCourse godoc
// @Summary Soft-delete a course
// @Description Flips isActive; the course disappears from listings but stays referenced by enrollments.
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "course id"
// @Success 204 "deleted"
// @Failure 404 {object} util.Response
// @Router /api/courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.CourseService.DeleteCourse(id); err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx)
		} else {
			util.InternalError(ctx, err)
		}
		return
	}
	util.NoContent(ctx)
}
