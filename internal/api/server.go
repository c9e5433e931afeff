package api

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v3"
)

type routeRegistrar interface {
	RegisterRoutes(r fiber.Router)
}

type Server struct {
	app  *fiber.App
	port int
}

func NewServer(port int, middlewares []fiber.Handler, handlers ...routeRegistrar) *Server {
	app := fiber.New(fiber.Config{
		AppName: "job-search",
	})

	for _, mw := range middlewares {
		app.Use(mw)
	}

	group := app.Group("/api")
	for _, handler := range handlers {
		handler.RegisterRoutes(group)
	}

	return &Server{app: app, port: port}
}

func (s *Server) Run() error {
	return s.app.Listen(":" + strconv.Itoa(s.port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}
