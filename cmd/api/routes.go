package main

import (
	"linedesk/internal/httpapi"

	"github.com/gin-gonic/gin"
)

// registerRoutes wires HTTP routes to handlers. Keep this file free of
// business logic; handlers delegate to internal modules.
func registerRoutes(r *gin.Engine, h httpapi.Handlers, authMW gin.HandlerFunc) {
	// public
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.POST("/v1/auth/login", h.Login)

	v1 := r.Group("/v1")
	v1.Use(authMW)
	{
		v1.GET("/groups", h.Groups)
		v1.GET("/sms/segments", h.SegmentPreview)

		lines := v1.Group("/lines")
		{
			lines.GET("", h.ListLines)
			lines.GET("/summary", h.Summary)
			lines.POST("", h.CreateLine)

			lines.GET("/:id", h.GetLine)
			lines.GET("/:id/editor/:kind", h.GetEditorView)
			lines.PUT("/:id", h.UpdateLine)
			lines.PUT("/:id/porting", h.SubmitPorting)
			lines.PUT("/:id/sms", h.UpdateSMSConfig)

			lines.POST("/:id/sms/templates", h.AddTemplate)
			lines.PUT("/:id/sms/templates/:template_id", h.EditTemplate)
			lines.DELETE("/:id/sms/templates/:template_id", h.DeleteTemplate)

			lines.POST("/:id/status/toggle", h.ToggleStatus)

			// carrier-side porting outcomes
			lines.POST("/:id/porting/complete", h.CompletePorting)
			lines.POST("/:id/porting/fail", h.FailPorting)

			lines.POST("/:id/lock", h.AcquireLock)
			lines.DELETE("/:id/lock", h.ReleaseLock)
		}
	}
}
