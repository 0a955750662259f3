package http

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

// ValidationErrorHandler renders a request that failed OpenAPI validation.
type ValidationErrorHandler func(c echo.Context, err error) error

// OpenAPIValidator checks requests against doc before they reach a handler.
// Requests matching no documented route pass through untouched so that
// routes such as the Swagger UI keep working. A body sent without a
// Content-Type is treated as JSON.
func OpenAPIValidator(doc *openapi3.T, onError ValidationErrorHandler) (echo.MiddlewareFunc, error) {
	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build OpenAPI router: %w", err)
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.ContentLength != 0 && req.Header.Get(echo.HeaderContentType) == "" {
				req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			}

			route, pathParams, findErr := router.FindRoute(req)
			if findErr != nil {
				return next(c)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if validateErr := openapi3filter.ValidateRequest(req.Context(), input); validateErr != nil {
				return onError(c, validateErr)
			}

			return next(c)
		}
	}, nil
}
