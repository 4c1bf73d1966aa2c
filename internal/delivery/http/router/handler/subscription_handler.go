package handler

import (
	"log/slog"
	"net/http"

	"bustracker/internal/delivery/http/response"
	"bustracker/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SubscriptionHandlerParams holds dependencies for SubscriptionHandler, injected by Fx.
type SubscriptionHandlerParams struct {
	fx.In

	SubscriptionUC usecase.SubscriptionUsecase
	Logger         *slog.Logger
}

// SubscriptionHandler holds dependencies for subscription-related handlers
type SubscriptionHandler struct {
	subscriptionUC usecase.SubscriptionUsecase
	logger         *slog.Logger
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler
func NewSubscriptionHandler(params SubscriptionHandlerParams) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionUC: params.SubscriptionUC,
		logger:         params.Logger,
	}
}

// CreateSubscription handles creating or updating a subscription
func (h *SubscriptionHandler) CreateSubscription(c echo.Context) error {
	var req usecase.SubscriptionInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subscription input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	subscription, err := h.subscriptionUC.CreateSubscription(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, subscription, "Subscription saved successfully")
}

// ListSubscriptions handles listing the active subscription set
func (h *SubscriptionHandler) ListSubscriptions(c echo.Context) error {
	subscriptions, err := h.subscriptionUC.ListSubscriptions(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, subscriptions, "Subscriptions retrieved successfully")
}

// GetSubscriptionsByEmail handles listing one rider's subscriptions
func (h *SubscriptionHandler) GetSubscriptionsByEmail(c echo.Context) error {
	email := c.Param("email")
	if email == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Email is required")
	}

	subscriptions, err := h.subscriptionUC.GetSubscriptionsByEmail(c.Request().Context(), email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, subscriptions, "Subscriptions retrieved successfully")
}
