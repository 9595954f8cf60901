package httpserver

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	tgDelivery "darkwave-task-manager/internal/chat/delivery/telegram"
	pkgLog "darkwave-task-manager/pkg/log"
)

type HTTPServer struct {
	gin         *gin.Engine
	l           pkgLog.Logger
	port        int
	mode        string
	environment string

	// Domain handlers
	telegramHandler tgDelivery.Handler
}

type Config struct {
	Logger      pkgLog.Logger
	Port        int
	Mode        string
	Environment string

	// Domain handlers
	TelegramHandler tgDelivery.Handler
}

func New(l pkgLog.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	h := &HTTPServer{
		l:               l,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		telegramHandler: cfg.TelegramHandler,
	}

	if err := h.validate(); err != nil {
		return nil, err
	}

	return h, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.port <= 0 {
		return fmt.Errorf("invalid port: %d", srv.port)
	}
	return nil
}

func (srv HTTPServer) Run() error {
	if err := srv.mapHandlers(); err != nil {
		return err
	}

	srv.l.Infof(nil, "Starting HTTP server on port %d", srv.port)
	return srv.gin.Run(fmt.Sprintf(":%d", srv.port))
}
