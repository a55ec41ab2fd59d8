package router

import (
	"errors"

	handlers "github.com/NeuralTrust/TrustDesk/pkg/handlers/http"
	"github.com/NeuralTrust/TrustDesk/pkg/middleware"
	"github.com/gofiber/fiber/v2"
)

var ErrInvalidHandlerTransport = errors.New("invalid handler transport")

type apiRouter struct {
	middlewareTransport *middleware.Transport
	handlerTransport    handlers.HandlerTransport
}

func NewAPIRouter(
	middlewareTransport *middleware.Transport,
	handlerTransport handlers.HandlerTransport,
) ServerRouter {
	return &apiRouter{
		middlewareTransport: middlewareTransport,
		handlerTransport:    handlerTransport,
	}
}

func (r *apiRouter) BuildRoutes(router *fiber.App) error {
	if r.handlerTransport.ProcessMessageHandler == nil || r.handlerTransport.GetVersionHandler == nil {
		return ErrInvalidHandlerTransport
	}

	router.Get("/version", r.handlerTransport.GetVersionHandler.Handle)

	v1 := router.Group("/api/v1")
	{
		if r.middlewareTransport != nil {
			if mws := r.middlewareTransport.GetMiddlewares(); len(mws) > 0 {
				v1.Use(mws...)
			}
		}
		v1.Post("/messages", r.handlerTransport.ProcessMessageHandler.Handle)
	}
	return nil
}
