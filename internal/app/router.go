package app

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Stoick643/elara/internal/api/handlers"
	"github.com/Stoick643/elara/internal/api/middleware"
	"github.com/Stoick643/elara/internal/pkg/logger"
)

func newRouter(server *handlers.Server) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.ErrorHandler())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		MaxAge:          12 * time.Hour,
	}))

	router.GET("/healthz", server.GetLiveness)
	router.GET("/readyz", server.GetReadiness)

	// Runtime log level: GET returns the level, PUT {"level":"debug"} changes it.
	router.Any("/log/level", gin.WrapH(logger.HTTPHandler()))

	v1 := router.Group("/api/v1")
	{
		v1.POST("/events", server.IngestEvent)
		v1.GET("/events", server.QueryEvents)
		v1.DELETE("/events/:id", server.DeleteEvent)

		v1.GET("/habits/:id/streak", server.GetHabitStreak)

		v1.GET("/users/:id/features", server.GetUserFeatures)
		v1.GET("/users/:id/achievements", server.GetUserAchievements)
		v1.GET("/users/:id/insights", server.ListUserInsights)
		v1.POST("/users/:id/insights/run", server.RunUserInsights)
		v1.GET("/users/:id/notifications", server.ListUserNotifications)

		v1.POST("/insights/:id/status", server.MarkInsightStatus)
		v1.POST("/notifications/:id/read", server.MarkNotificationRead)
	}
	return router
}
