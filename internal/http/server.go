package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/neurobridge-tutorials/internal/config"
)

type Server struct {
	Engine *gin.Engine
	HTTP   *http.Server
}

func NewServer(httpCfg config.HTTPConfig, routerCfg RouterConfig) *Server {
	engine := NewRouter(routerCfg)
	return &Server{
		Engine: engine,
		HTTP: &http.Server{
			Addr:              httpCfg.Addr,
			Handler:           engine,
			ReadHeaderTimeout: httpCfg.ReadHeaderTimeout.Duration,
			IdleTimeout:       httpCfg.IdleTimeout.Duration,
		},
	}
}
