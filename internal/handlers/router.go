package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/elmcrest/compass-service/internal/services"
	"github.com/elmcrest/compass-service/internal/utils"
)

type HandlerManager struct {
	sessionHandler   *SessionHandler
	dashboardHandler *DashboardHandler
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		sessionHandler:   NewSessionHandler(serviceManager.Session(), serviceManager.Submission(), logger),
		dashboardHandler: NewDashboardHandler(serviceManager.Dashboard(), logger),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Session routes
		sessions := v1.Group("/sessions")
		{
			sessions.POST("", hm.sessionHandler.StartSession)
			sessions.GET("/:id", hm.sessionHandler.GetSession)
			sessions.GET("/:id/questions", hm.sessionHandler.GetQuestions)
			sessions.PUT("/:id/answers", hm.sessionHandler.RecordAnswers)
			sessions.PUT("/:id/respondent", hm.sessionHandler.SetRespondent)
			sessions.POST("/:id/submit", hm.sessionHandler.SubmitSession)
			sessions.GET("/:id/result", hm.sessionHandler.GetResult)
			sessions.POST("/:id/reset", hm.sessionHandler.ResetSession)
		}

		v1.GET("/roles", hm.sessionHandler.ListRoles)

		// Dashboard routes (read only)
		dashboard := v1.Group("/dashboard")
		{
			dashboard.GET("", hm.dashboardHandler.GetOverview)
			dashboard.GET("/submissions", hm.dashboardHandler.ListSubmissions)
			dashboard.GET("/export", hm.dashboardHandler.ExportSubmissions)
		}
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "compass-service",
		})
	})
}
