package app

import (
	httpH "github.com/yungbote/neurobridge-tutorials/internal/http/handlers"
	"github.com/yungbote/neurobridge-tutorials/internal/platform/logger"
)

type Handlers struct {
	Health   *httpH.HealthHandler
	Tutorial *httpH.TutorialHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:   httpH.NewHealthHandler(func() bool { return !services.Fallback }),
		Tutorial: httpH.NewTutorialHandler(services.Tutorials),
	}
}
