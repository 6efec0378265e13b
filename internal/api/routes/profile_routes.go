package routes

import (
	"placement-portal/internal/api/handlers"
	"placement-portal/internal/api/middleware"
	"placement-portal/internal/models"

	"github.com/gin-gonic/gin"
)

// RegisterProfileRoutes registers the student and recruiter profile routes.
func RegisterProfileRoutes(
	rg *gin.RouterGroup,
	profileHandler handlers.ProfileHandlerInterface, // Use interface
	authMiddleware gin.HandlerFunc,
) {
	studentsGroup := rg.Group("/students")
	studentsGroup.Use(authMiddleware, middleware.RequireRole(models.RoleStudent))
	{
		// POST and PUT both upsert; the profile is keyed on the caller.
		studentsGroup.POST("/profile", profileHandler.UpsertStudentProfile)
		studentsGroup.PUT("/profile", profileHandler.UpsertStudentProfile)
		studentsGroup.GET("/profile", profileHandler.GetStudentProfile)
	}

	recruitersGroup := rg.Group("/recruiters")
	recruitersGroup.Use(authMiddleware, middleware.RequireRole(models.RoleRecruiter))
	{
		recruitersGroup.POST("/profile", profileHandler.UpsertRecruiterProfile)
		recruitersGroup.PUT("/profile", profileHandler.UpsertRecruiterProfile)
		recruitersGroup.GET("/profile", profileHandler.GetRecruiterProfile)
	}
}
