package server

import (
	"net/http"
	"time"

	httpHandler "trending-board/interfaces/http"
	"trending-board/interfaces/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func InitiateRouter(
	userHandler httpHandler.IUserHandler,
	trendingHandler httpHandler.ITrendingHandler,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:4200", "http://localhost:5173", "https://localhost:4200", "https://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "X-Cache"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.POST("/login", userHandler.Login)
	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("api")
	api.Use(middleware.Auth())

	trending := api.Group("/trending")
	{
		trending.GET("/videos", trendingHandler.GetTrendingVideos)
		trending.GET("/categories", trendingHandler.GetCategories)
		trending.GET("/regions", trendingHandler.GetRegions)
		trending.POST("/refresh", trendingHandler.Refresh)
	}

	return router
}
