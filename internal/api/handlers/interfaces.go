// internal/api/handlers/interfaces.go
package handlers

import "github.com/gin-gonic/gin"

// AuthHandlerInterface defines the methods needed by the auth routes.
type AuthHandlerInterface interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
	Logout(c *gin.Context)
	Me(c *gin.Context)
	ForgotPassword(c *gin.Context)
	ResetPassword(c *gin.Context)
}

// ProfileHandlerInterface defines the methods needed by the profile routes.
type ProfileHandlerInterface interface {
	UpsertStudentProfile(c *gin.Context)
	GetStudentProfile(c *gin.Context)
	UpsertRecruiterProfile(c *gin.Context)
	GetRecruiterProfile(c *gin.Context)
}

// DocumentHandlerInterface defines the methods needed by the document routes.
type DocumentHandlerInterface interface {
	Upload(c *gin.Context)
	List(c *gin.Context)
	Delete(c *gin.Context)
}

// JobHandlerInterface defines the methods needed by the job routes.
type JobHandlerInterface interface {
	Create(c *gin.Context)
	ListApproved(c *gin.Context)
	ListMine(c *gin.Context)
	Delete(c *gin.Context)
}

// ApplicationHandlerInterface defines the methods needed by the application routes.
type ApplicationHandlerInterface interface {
	Apply(c *gin.Context)
	ListMine(c *gin.Context)
	ListByJob(c *gin.Context)
	UpdateStatus(c *gin.Context)
}

// MessageHandlerInterface defines the methods needed by the message routes.
type MessageHandlerInterface interface {
	Send(c *gin.Context)
	List(c *gin.Context)
}

// AdminHandlerInterface defines the methods needed by the admin routes.
type AdminHandlerInterface interface {
	ListJobs(c *gin.Context)
	ApproveJob(c *gin.Context)
	ListDocuments(c *gin.Context)
	ReviewDocument(c *gin.Context)
	ListStudentProfiles(c *gin.Context)
	ListRecruiterProfiles(c *gin.Context)
}

// Ensure handlers implement the interfaces (compile-time check)
var _ AuthHandlerInterface = (*AuthHandler)(nil)
var _ ProfileHandlerInterface = (*ProfileHandler)(nil)
var _ DocumentHandlerInterface = (*DocumentHandler)(nil)
var _ JobHandlerInterface = (*JobHandler)(nil)
var _ ApplicationHandlerInterface = (*ApplicationHandler)(nil)
var _ MessageHandlerInterface = (*MessageHandler)(nil)
var _ AdminHandlerInterface = (*AdminHandler)(nil)
