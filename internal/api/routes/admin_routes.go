package routes

import (
	"placement-portal/internal/api/handlers"
	"placement-portal/internal/api/middleware"
	"placement-portal/internal/models"

	"github.com/gin-gonic/gin"
)

// RegisterAdminRoutes registers the review and oversight routes. Everything
// here requires the ADMIN role.
func RegisterAdminRoutes(
	rg *gin.RouterGroup,
	adminHandler handlers.AdminHandlerInterface, // Use interface
	authMiddleware gin.HandlerFunc,
) {
	adminGroup := rg.Group("/admin")
	adminGroup.Use(authMiddleware, middleware.RequireRole(models.RoleAdmin))
	{
		adminGroup.GET("/jobs", adminHandler.ListJobs)
		adminGroup.PATCH("/jobs/:id/status", adminHandler.ApproveJob)

		adminGroup.GET("/documents", adminHandler.ListDocuments)
		adminGroup.PATCH("/documents/:id/status", adminHandler.ReviewDocument)

		adminGroup.GET("/profiles/students", adminHandler.ListStudentProfiles)
		adminGroup.GET("/profiles/recruiters", adminHandler.ListRecruiterProfiles)
	}
}
