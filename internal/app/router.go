package app

import (
	"github.com/rawan03ayman/Employee-Training-System/internal/config"
	"github.com/rawan03ayman/Employee-Training-System/internal/middleware"
	"github.com/rawan03ayman/Employee-Training-System/internal/model"
	"github.com/rawan03ayman/Employee-Training-System/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	router.GET("/metrics", monitoring.PrometheusHandler())

	// Public routes: health and the two unauthenticated auth endpoints.
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)
	}

	// Everything else requires a valid bearer token. Per-route owner checks
	// live in the controllers; admin-only routes are gated here.
	api := router.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg))
	{
		adminOnly := middleware.RoleMiddleware(model.RoleAdmin)

		users := api.Group("/users")
		{
			users.GET("", adminOnly, c.user.GetUsers)
			users.GET("/me", c.user.GetCurrentUser)
			users.GET("/:id", c.user.GetUser)
			users.PUT("/:id", c.user.UpdateUser)
			users.DELETE("/:id", adminOnly, c.user.DeleteUser)
		}

		courses := api.Group("/courses")
		{
			courses.GET("", c.course.GetCourses)
			courses.GET("/category/:category", c.course.GetCoursesByCategory)
			courses.GET("/:id", c.course.GetCourse)
			courses.POST("", adminOnly, c.course.CreateCourse)
			courses.PUT("/:id", adminOnly, c.course.UpdateCourse)
			courses.DELETE("/:id", adminOnly, c.course.DeleteCourse)
		}

		enrollments := api.Group("/enrollments")
		{
			enrollments.GET("", adminOnly, c.enrollment.GetEnrollments)
			enrollments.POST("", adminOnly, c.enrollment.CreateEnrollment)
			enrollments.GET("/user/:userId", c.enrollment.GetUserEnrollments)
			enrollments.GET("/course/:courseId", adminOnly, c.enrollment.GetCourseEnrollments)
			enrollments.GET("/:id", c.enrollment.GetEnrollment)
			enrollments.PUT("/:id", adminOnly, c.enrollment.ReplaceEnrollment)
			enrollments.PUT("/:id/progress", c.enrollment.UpdateProgress)
			enrollments.DELETE("/:id", adminOnly, c.enrollment.DeleteEnrollment)
		}

		reports := api.Group("/reports")
		{
			reports.GET("/dashboard-stats", adminOnly, c.report.GetDashboardStats)
			reports.GET("/course-completion", adminOnly, c.report.GetCourseCompletionReport)
			reports.GET("/department-training", adminOnly, c.report.GetDepartmentTrainingReport)
			reports.GET("/user-progress/:userId", c.report.GetUserProgressReport)
			reports.GET("/my-progress", c.report.GetMyProgress)
		}
	}
}
