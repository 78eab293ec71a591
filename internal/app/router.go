package app

import (
	"github.com/yungbote/neurobridge-tutorials/internal/config"
	httpapi "github.com/yungbote/neurobridge-tutorials/internal/http"
	"github.com/yungbote/neurobridge-tutorials/internal/observability"
	"github.com/yungbote/neurobridge-tutorials/internal/platform/logger"
)

func wireRouter(log *logger.Logger, cfg *config.Config, metrics *observability.Metrics, handlers Handlers) httpapi.RouterConfig {
	return httpapi.RouterConfig{
		Log:             log,
		Metrics:         metrics,
		ServiceName:     cfg.Service.Name,
		CORSOrigins:     cfg.HTTP.CORSAllowOrigins,
		MaxRequestBytes: cfg.HTTP.MaxRequestBytes,
		TutorialHandler: handlers.Tutorial,
		HealthHandler:   handlers.Health,
	}
}
