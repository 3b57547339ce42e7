package handlers

import "github.com/gin-gonic/gin"

// AuthHandlerInterface defines the methods needed by the auth routes.
type AuthHandlerInterface interface {
	Signup(c *gin.Context)
	Login(c *gin.Context)
	Me(c *gin.Context)
}

// AdminHandlerInterface defines the methods needed by the admin routes.
type AdminHandlerInterface interface {
	CreateUser(c *gin.Context)
}

// JobHandlerInterface defines the methods needed by the job routes.
type JobHandlerInterface interface {
	ListJobs(c *gin.Context)
	GetJobByID(c *gin.Context)
	CreateJob(c *gin.Context)
}

// ApplicationHandlerInterface defines the methods needed by the application routes.
type ApplicationHandlerInterface interface {
	Apply(c *gin.Context)
	ListByJob(c *gin.Context)
	ListMine(c *gin.Context)
	UpdateStatus(c *gin.Context)
	History(c *gin.Context)
}

// ResumeHandlerInterface defines the methods needed by the resume routes.
type ResumeHandlerInterface interface {
	Upload(c *gin.Context)
}

// Ensure handlers implement the interfaces (compile-time check)
var (
	_ AuthHandlerInterface        = (*AuthHandler)(nil)
	_ AdminHandlerInterface       = (*AdminHandler)(nil)
	_ JobHandlerInterface         = (*JobHandler)(nil)
	_ ApplicationHandlerInterface = (*ApplicationHandler)(nil)
	_ ResumeHandlerInterface      = (*ResumeHandler)(nil)
)
