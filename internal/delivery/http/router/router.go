// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bustracker/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	SubscriptionHandler *handler.SubscriptionHandler
	ScheduleHandler     *handler.ScheduleHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	subscriptionHandler *handler.SubscriptionHandler
	scheduleHandler     *handler.ScheduleHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		subscriptionHandler: params.SubscriptionHandler,
		scheduleHandler:     params.ScheduleHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	userGroup := api.Group("/users")
	{
		userGroup.POST("/register-token", r.userHandler.RegisterToken)
		userGroup.GET("/:email/tokens", r.userHandler.GetTokens)
	}

	subscriptionGroup := api.Group("/subscriptions")
	{
		subscriptionGroup.POST("", r.subscriptionHandler.CreateSubscription)
		subscriptionGroup.GET("", r.subscriptionHandler.ListSubscriptions)
		subscriptionGroup.GET("/by-email/:email", r.subscriptionHandler.GetSubscriptionsByEmail)
	}

	// Schedule feed proxy, keeps the feed API key server side
	mtdGroup := api.Group("/mtd")
	{
		mtdGroup.GET("/stop-times", r.scheduleHandler.GetStopTimes)
		mtdGroup.GET("/departures", r.scheduleHandler.GetDepartures)
		mtdGroup.GET("/stop-info", r.scheduleHandler.GetStopInfo)
		mtdGroup.GET("/shape", r.scheduleHandler.GetShape)
	}
}
