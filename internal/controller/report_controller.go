package controller

import (
	"github.com/rawan03ayman/Employee-Training-System/internal/service"
	"github.com/rawan03ayman/Employee-Training-System/internal/util"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	ReportService *service.ReportService
}

func NewReportController(reportService *service.ReportService) *ReportController {
	return &ReportController{ReportService: reportService}
}

// GetDashboardStats godoc
// @Summary Aggregate dashboard counts
// @Tags reports
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.DashboardStats}
// @Failure 403 {object} util.Response
// @Router /api/reports/dashboard-stats [get]
func (c *ReportController) GetDashboardStats(ctx *gin.Context) {
	stats, err := c.ReportService.GetDashboardStats()
	if err != nil {
		util.InternalError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}

// GetCourseCompletionReport godoc
// @Summary Per-course completion rates
// @Tags reports
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]service.CourseCompletionReport}
// @Failure 403 {object} util.Response
// @Router /api/reports/course-completion [get]
func (c *ReportController) GetCourseCompletionReport(ctx *gin.Context) {
	report, err := c.ReportService.GetCourseCompletionReport()
	if err != nil {
		util.InternalError(ctx, err)
		return
	}
	util.Success(ctx, report)
}

// GetDepartmentTrainingReport godoc
// @Summary Per-department training rollup
// @Tags reports
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]service.DepartmentTrainingReport}
// @Failure 403 {object} util.Response
// @Router /api/reports/department-training [get]
func (c *ReportController) GetDepartmentTrainingReport(ctx *gin.Context) {
	report, err := c.ReportService.GetDepartmentTrainingReport()
	if err != nil {
		util.InternalError(ctx, err)
		return
	}
	util.Success(ctx, report)
}

// GetUserProgressReport godoc
// @Summary Per-user training detail
// @Description Owner-or-admin.
// @Tags reports
// @Produce json
// @Security ApiKeyAuth
// @Param userId path int true "user id"
// @Success 200 {object} util.Response{data=service.UserProgressReport}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/reports/user-progress/{userId} [get]
func (c *ReportController) GetUserProgressReport(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "userId")
	if !ok {
		return
	}

	claims := util.GetUserFromContext(ctx)
	if !util.IsOwnerOrAdmin(claims, userID) {
		util.Forbidden(ctx)
		return
	}

	report, err := c.ReportService.GetUserProgressReport(userID)
	if err != nil {
		util.InternalError(ctx, err)
		return
	}
	if report == nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, report)
}

// GetMyProgress godoc
// @Summary The caller's own training detail
// @Tags reports
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.UserProgressReport}
// @Failure 404 {object} util.Response
// @Router /api/reports/my-progress [get]
func (c *ReportController) GetMyProgress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	report, err := c.ReportService.GetUserProgressReport(claims.UserID)
	if err != nil {
		util.InternalError(ctx, err)
		return
	}
	if report == nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, report)
}
