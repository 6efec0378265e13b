package routes

import (
	"placement-portal/internal/api/handlers"
	"placement-portal/internal/api/middleware"
	"placement-portal/internal/models"

	"github.com/gin-gonic/gin"
)

// RegisterJobRoutes registers the job board routes. Admin approval actions
// live under the admin routes.
func RegisterJobRoutes(
	rg *gin.RouterGroup,
	jobHandler handlers.JobHandlerInterface, // Use interface
	authMiddleware gin.HandlerFunc,
) {
	jobsGroup := rg.Group("/jobs")
	jobsGroup.Use(authMiddleware)
	{
		// The approved board is readable by any authenticated account
		jobsGroup.GET("", jobHandler.ListApproved)

		// Posting and management are recruiter-only
		recruiterOnly := middleware.RequireRole(models.RoleRecruiter)
		jobsGroup.POST("", recruiterOnly, jobHandler.Create)
		jobsGroup.GET("/my", recruiterOnly, jobHandler.ListMine)
		jobsGroup.DELETE("/:id", recruiterOnly, jobHandler.Delete)
	}
}
