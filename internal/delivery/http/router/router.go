// Package router contains routing setup for the HTTP delivery.
package router

import (
	"pulse/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers the router registers, injected by Fx.
type RouterParams struct {
	fx.In

	EvaluationHandler *handler.EvaluationHandler
	HistoryHandler    *handler.HistoryHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	evaluationHandler *handler.EvaluationHandler
	historyHandler    *handler.HistoryHandler
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		evaluationHandler: params.EvaluationHandler,
		historyHandler:    params.HistoryHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	{
		api.POST("/evaluate", r.evaluationHandler.Evaluate)
		api.GET("/users/:id/history", r.historyHandler.GetUserHistory)
	}
}
