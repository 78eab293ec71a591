package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/neurobridge-tutorials/internal/http/handlers"
	httpMW "github.com/yungbote/neurobridge-tutorials/internal/http/middleware"
	"github.com/yungbote/neurobridge-tutorials/internal/observability"
	"github.com/yungbote/neurobridge-tutorials/internal/platform/logger"
)

type RouterConfig struct {
	Log     *logger.Logger
	Metrics *observability.Metrics

	ServiceName     string
	CORSOrigins     []string
	MaxRequestBytes int64

	TutorialHandler *httpH.TutorialHandler
	HealthHandler   *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(cfg.ServiceName))
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics, "/healthcheck", "/readyz", "/metrics"))
	r.Use(httpMW.CORS(cfg.CORSOrigins))
	r.Use(httpMW.LimitBody(cfg.MaxRequestBytes))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
		r.GET("/readyz", cfg.HealthHandler.ReadyCheck)
	}
	r.GET("/metrics", gin.WrapF(cfg.Metrics.WriteHTTP))

	api := r.Group("/api")
	{
		// Tutorials
		if cfg.TutorialHandler != nil {
			api.GET("/tutorials/:languageId", cfg.TutorialHandler.GetTutorial)
			api.GET("/tutorials/:languageId/sections/:sectionId", cfg.TutorialHandler.GetSection)
			api.POST("/tutorials/batch", cfg.TutorialHandler.GenerateBatch)
			api.GET("/languages/:languageId/category", cfg.TutorialHandler.GetCategory)
			api.GET("/catalog", cfg.TutorialHandler.GetCatalog)
		}
	}

	return r
}
