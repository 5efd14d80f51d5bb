package router

import (
	"time"

	"ideagen-backend/internal/config"
	"ideagen-backend/internal/handler"
	"ideagen-backend/internal/middleware"
	"ideagen-backend/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// New assembles the engine: middleware, page, static assets and API routes.
func New(cfg *config.Config, ideaHandler *handler.IdeaHandler) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(otelgin.Middleware(cfg.Tracing.ServiceName))
	router.Use(middleware.AccessLog())
	if cfg.Metrics.Enabled {
		router.Use(middleware.Metrics())
	}
	router.Use(cors.New(corsConfig(cfg.CORS)))

	router.SetHTMLTemplate(web.Templates())
	router.StaticFS("/static", web.Static())

	router.GET("/", handler.Index)
	router.GET("/health", handler.Health)
	if cfg.Metrics.Enabled {
		router.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	router.POST("/generate", ideaHandler.Generate)
	router.POST("/generate/parsed", ideaHandler.GenerateParsed)

	return router
}

func corsConfig(cfg config.CORSConfig) cors.Config {
	c := cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     cfg.AllowedMethods,
		AllowHeaders:     cfg.AllowedHeaders,
		ExposeHeaders:    cfg.ExposedHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           time.Duration(cfg.MaxAge) * time.Second,
	}
	if len(c.AllowOrigins) == 0 {
		c.AllowOrigins = nil
		c.AllowAllOrigins = true
	}
	return c
}
