package routes

import (
	"placement-portal/internal/api/handlers"
	"placement-portal/internal/api/middleware"
	"placement-portal/internal/models"

	"github.com/gin-gonic/gin"
)

// RegisterDocumentRoutes registers the document upload and management routes.
// Admins review documents through the admin routes instead.
func RegisterDocumentRoutes(
	rg *gin.RouterGroup,
	documentHandler handlers.DocumentHandlerInterface, // Use interface
	authMiddleware gin.HandlerFunc,
) {
	documentsGroup := rg.Group("/documents")
	documentsGroup.Use(authMiddleware, middleware.RequireRole(models.RoleStudent, models.RoleRecruiter))
	{
		documentsGroup.POST("", documentHandler.Upload)
		documentsGroup.GET("", documentHandler.List)
		documentsGroup.DELETE("/:id", documentHandler.Delete)
	}
}
