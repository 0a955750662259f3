// Package servers binds the operations of api/openapi.yml to echo: the wire
// types, the ServerInterface to implement, and parameter binding for each
// route.
package servers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"orderbot/api"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Intent defines model for Intent.
type Intent struct {
	DisplayName string `json:"displayName"`
	Name        string `json:"name,omitempty"`
}

// OrderStatus defines model for OrderStatus.
type OrderStatus struct {
	OrderId int64  `json:"orderId"`
	Status  string `json:"status"`
}

// OutputContext defines model for OutputContext.
type OutputContext struct {
	LifespanCount int                        `json:"lifespanCount,omitempty"`
	Name          string                     `json:"name"`
	Parameters    map[string]json.RawMessage `json:"parameters,omitempty"`
}

// QueryResult defines model for QueryResult.
type QueryResult struct {
	Intent         Intent                     `json:"intent"`
	OutputContexts []OutputContext            `json:"outputContexts"`
	Parameters     map[string]json.RawMessage `json:"parameters,omitempty"`
	QueryText      string                     `json:"queryText,omitempty"`
}

// WebhookRequest defines model for WebhookRequest.
type WebhookRequest struct {
	QueryResult QueryResult `json:"queryResult"`
	ResponseId  string      `json:"responseId,omitempty"`
	Session     string      `json:"session,omitempty"`
}

// WebhookResponse defines model for WebhookResponse.
type WebhookResponse struct {
	FulfillmentText string `json:"fulfillmentText"`
}

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Fulfill an NLU webhook call
	// (POST /)
	HandleWebhook(ctx echo.Context) error
	// Get the tracking status of an order
	// (GET /api/v1/orders/{orderId}/status)
	GetOrderStatus(ctx echo.Context, orderId int64) error
	// Liveness probe
	// (GET /health)
	GetHealth(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// HandleWebhook converts echo context to params.
func (w *ServerInterfaceWrapper) HandleWebhook(ctx echo.Context) error {
	return w.Handler.HandleWebhook(ctx)
}

// GetOrderStatus converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrderStatus(ctx echo.Context) error {
	var orderId int64

	err := runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	return w.Handler.GetOrderStatus(ctx, orderId)
}

// GetHealth converts echo context to params.
func (w *ServerInterfaceWrapper) GetHealth(ctx echo.Context) error {
	return w.Handler.GetHealth(ctx)
}

// EchoRouter is the subset of echo.Echo and echo.Group used for registration.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers the routes under baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/", wrapper.HandleWebhook)
	router.GET(baseURL+"/api/v1/orders/:orderId/status", wrapper.GetOrderStatus)
	router.GET(baseURL+"/health", wrapper.GetHealth)
}

var (
	swaggerOnce sync.Once
	swaggerDoc  *openapi3.T
	swaggerErr  error
)

// GetSwagger returns the parsed and validated OpenAPI document. The result is
// shared; callers must not modify it.
func GetSwagger() (*openapi3.T, error) {
	swaggerOnce.Do(func() {
		loader := openapi3.NewLoader()
		doc, err := loader.LoadFromData(api.OpenAPI)
		if err != nil {
			swaggerErr = fmt.Errorf("error loading OpenAPI document: %w", err)
			return
		}
		if err = doc.Validate(loader.Context); err != nil {
			swaggerErr = fmt.Errorf("invalid OpenAPI document: %w", err)
			return
		}
		swaggerDoc = doc
	})
	return swaggerDoc, swaggerErr
}
