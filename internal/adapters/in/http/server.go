// Package http is the inbound HTTP adapter: the NLU webhook, the order status
// endpoint and the health probe.
//
// The webhook always answers 200 with a fulfillmentText. Every failure,
// including a malformed payload or a panic in a handler, is turned into one
// of the fixed replies in response.go.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"orderbot/internal/core/application/usecases/commands"
	"orderbot/internal/core/application/usecases/queries"
	"orderbot/internal/core/domain/model/intent"
	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/generated/servers"
	"orderbot/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	addToOrderHandler      commands.AddToOrderCommandHandler
	removeFromOrderHandler commands.RemoveFromOrderCommandHandler
	completeOrderHandler   commands.CompleteOrderCommandHandler

	// Query handlers
	trackOrderHandler queries.TrackOrderQueryHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	addToOrderHandler commands.AddToOrderCommandHandler,
	removeFromOrderHandler commands.RemoveFromOrderCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	trackOrderHandler queries.TrackOrderQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		addToOrderHandler:      addToOrderHandler,
		removeFromOrderHandler: removeFromOrderHandler,
		completeOrderHandler:   completeOrderHandler,
		trackOrderHandler:      trackOrderHandler,
		logger:                 logger.With("component", "http_server"),
	}
}

// HandleWebhook handles POST / - fulfills one agent turn.
//
//	@Summary	Fulfill an NLU webhook call
//	@Tags		webhook
//	@Accept		json
//	@Produce	json
//	@Param		request	body		servers.WebhookRequest	true	"Agent request"
//	@Success	200		{object}	servers.WebhookResponse
//	@Router		/ [post]
func (s *Server) HandleWebhook(ctx echo.Context) (err error) {
	reqCtx := ctx.Request().Context()

	defer func() {
		if r := recover(); r != nil {
			s.logger.ErrorContext(reqCtx, "Panic while handling webhook", "panic", r)
			err = reply(ctx, textGenericFailure)
		}
	}()

	var req servers.WebhookRequest
	if decodeErr := json.NewDecoder(ctx.Request().Body).Decode(&req); decodeErr != nil {
		s.logger.WarnContext(reqCtx, "Failed to decode webhook payload", "error", decodeErr)
		return reply(ctx, textGenericFailure)
	}

	return reply(ctx, s.fulfill(reqCtx, req))
}

// GetOrderStatus handles GET /api/v1/orders/{orderId}/status.
//
//	@Summary	Get the tracking status of an order
//	@Tags		orders
//	@Produce	json
//	@Param		orderId	path		int	true	"Order id"
//	@Success	200		{object}	servers.OrderStatus
//	@Failure	400		{object}	servers.Error
//	@Failure	404		{object}	servers.Error
//	@Failure	500		{object}	servers.Error
//	@Router		/api/v1/orders/{orderId}/status [get]
func (s *Server) GetOrderStatus(ctx echo.Context, orderID int64) error {
	id, err := kernel.NewOrderID(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + err.Error(),
		})
	}

	query, err := queries.NewTrackOrderQuery(id)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + err.Error(),
		})
	}

	resp, err := s.trackOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    http.StatusNotFound,
				Message: noOrderText(id.Int64()),
			})
		}
		s.logger.ErrorContext(ctx.Request().Context(), "Failed to read order status",
			"order_id", orderID, "error", err)
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve order status",
		})
	}

	return ctx.JSON(http.StatusOK, servers.OrderStatus{
		OrderId: resp.OrderID.Int64(),
		Status:  resp.Status.String(),
	})
}

// GetHealth handles GET /health.
//
//	@Summary	Liveness probe
//	@Tags		health
//	@Produce	plain
//	@Success	200	{string}	string	"Healthy"
//	@Router		/health [get]
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// ValidationFailed renders requests rejected by OpenAPI validation: the
// webhook keeps its always-200 contract, other routes get a 400.
func (s *Server) ValidationFailed(ctx echo.Context, err error) error {
	s.logger.WarnContext(ctx.Request().Context(), "Request failed validation",
		"path", ctx.Request().URL.Path, "error", err)

	if ctx.Request().Method == http.MethodPost && ctx.Request().URL.Path == "/" {
		return reply(ctx, textGenericFailure)
	}

	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

func (s *Server) fulfill(ctx context.Context, req servers.WebhookRequest) string {
	sessionID, err := sessionIDFrom(req.QueryResult.OutputContexts)
	if err != nil {
		s.logger.WarnContext(ctx, "Failed to extract session id", "error", err)
		return textGenericFailure
	}

	params := req.QueryResult.Parameters
	kind := intent.Parse(req.QueryResult.Intent.DisplayName)

	switch kind {
	case intent.AddToOrder:
		return s.addToOrder(ctx, sessionID, params)
	case intent.RemoveFromOrder:
		return s.removeFromOrder(ctx, sessionID, params)
	case intent.CompleteOrder:
		return s.completeOrder(ctx, sessionID)
	case intent.TrackOrder:
		return s.trackOrder(ctx, params)
	case intent.Unknown:
		s.logger.InfoContext(ctx, "Unknown intent", "intent", req.QueryResult.Intent.DisplayName)
		return textUnknownIntent
	}

	return textUnknownIntent
}

func (s *Server) addToOrder(ctx context.Context, sessionID kernel.SessionID, params map[string]json.RawMessage) string {
	foodItems, err := stringListParam(params, paramFoodItem)
	if err != nil {
		s.logger.WarnContext(ctx, "Malformed add parameters", "error", err)
		return textGenericFailure
	}
	quantities, err := numberListParam(params, paramNumber)
	if err != nil {
		s.logger.WarnContext(ctx, "Malformed add parameters", "error", err)
		return textGenericFailure
	}

	cmd, err := commands.NewAddToOrderCommand(sessionID, foodItems, quantities)
	if err != nil {
		if errors.Is(err, commands.ErrUnclearOrderLines) {
			return textUnclearOrder
		}
		s.logger.WarnContext(ctx, "Invalid add command", "error", err)
		return textGenericFailure
	}

	res, err := s.addToOrderHandler.Handle(ctx, cmd)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to add items", "session_id", sessionID.String(), "error", err)
		return textAddFailure
	}

	return addedText(res.Draft)
}

func (s *Server) removeFromOrder(
	ctx context.Context,
	sessionID kernel.SessionID,
	params map[string]json.RawMessage,
) string {
	foodItems, err := stringListParam(params, paramFoodItem)
	if err != nil {
		s.logger.WarnContext(ctx, "Malformed remove parameters", "error", err)
		return textGenericFailure
	}

	cmd, err := commands.NewRemoveFromOrderCommand(sessionID, foodItems)
	if err != nil {
		s.logger.WarnContext(ctx, "Invalid remove command", "error", err)
		return textGenericFailure
	}

	res, err := s.removeFromOrderHandler.Handle(ctx, cmd)
	switch {
	case errors.Is(err, commands.ErrOrderNotFound):
		return textOrderNotFound
	case err != nil:
		s.logger.ErrorContext(ctx, "Failed to remove items", "session_id", sessionID.String(), "error", err)
		return textRemoveFailure
	}

	return removedText(res)
}

func (s *Server) completeOrder(ctx context.Context, sessionID kernel.SessionID) string {
	cmd, err := commands.NewCompleteOrderCommand(sessionID)
	if err != nil {
		s.logger.WarnContext(ctx, "Invalid complete command", "error", err)
		return textGenericFailure
	}

	res, err := s.completeOrderHandler.Handle(ctx, cmd)
	switch {
	case errors.Is(err, commands.ErrOrderNotFound):
		return textOrderNotFound
	case errors.Is(err, commands.ErrOrderNotSaved):
		return textBackendError
	case err != nil:
		s.logger.ErrorContext(ctx, "Failed to complete order", "session_id", sessionID.String(), "error", err)
		return textCompleteFailure
	}

	return placedText(res)
}

func (s *Server) trackOrder(ctx context.Context, params map[string]json.RawMessage) string {
	number, err := orderNumberParam(params, paramNumber)
	if err != nil {
		s.logger.WarnContext(ctx, "Malformed order number", "error", err)
		return textGenericFailure
	}

	orderID, err := kernel.NewOrderID(number)
	if err != nil {
		return noOrderText(number)
	}

	query, err := queries.NewTrackOrderQuery(orderID)
	if err != nil {
		return textGenericFailure
	}

	resp, err := s.trackOrderHandler.Handle(ctx, query)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return noOrderText(orderID.Int64())
	case err != nil:
		s.logger.ErrorContext(ctx, "Failed to track order", "order_id", orderID.Int64(), "error", err)
		return textTrackFailure
	}

	return statusText(resp.OrderID, resp.Status)
}

func reply(ctx echo.Context, text string) error {
	return ctx.JSON(http.StatusOK, servers.WebhookResponse{FulfillmentText: text})
}
