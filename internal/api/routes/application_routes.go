package routes

import (
	"placement-portal/internal/api/handlers"
	"placement-portal/internal/api/middleware"
	"placement-portal/internal/models"

	"github.com/gin-gonic/gin"
)

// RegisterApplicationRoutes registers the application lifecycle and the
// per-application message thread routes.
func RegisterApplicationRoutes(
	rg *gin.RouterGroup,
	applicationHandler handlers.ApplicationHandlerInterface, // Use interface
	messageHandler handlers.MessageHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	appsGroup := rg.Group("/applications")
	appsGroup.Use(authMiddleware)
	{
		studentOnly := middleware.RequireRole(models.RoleStudent)
		appsGroup.POST("/apply", studentOnly, applicationHandler.Apply)
		appsGroup.GET("/my", studentOnly, applicationHandler.ListMine)

		// Recruiter view of a job's inbound applications
		appsGroup.GET("/job/:job_id", middleware.RequireRole(models.RoleRecruiter), applicationHandler.ListByJob)

		// Review actions: owning recruiter or admin, checked in the service
		appsGroup.PATCH("/:id/status", middleware.RequireRole(models.RoleRecruiter, models.RoleAdmin), applicationHandler.UpdateStatus)

		// Message thread: party checks happen in the service
		appsGroup.GET("/:id/messages", messageHandler.List)
		appsGroup.POST("/:id/messages", messageHandler.Send)
	}
}
