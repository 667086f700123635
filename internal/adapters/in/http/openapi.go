package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

// RequestValidator checks requests against the OpenAPI document before they
// reach a handler. Requests for paths the document does not describe pass
// through untouched.
type RequestValidator struct {
	doc    *openapi3.T
	router routers.Router
}

func NewRequestValidator(spec []byte) (*RequestValidator, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(spec)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err = doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}

	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}
	return &RequestValidator{doc: doc, router: router}, nil
}

func (v *RequestValidator) Middleware() echo.MiddlewareFunc {
	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			route, pathParams, err := v.router.FindRoute(req)
			if err != nil {
				return next(c)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return c.JSON(http.StatusBadRequest, Error{
					Code:    http.StatusBadRequest,
					Message: validationMessage(err),
				})
			}
			return next(c)
		}
	}
}

// RegisterDocs publishes the document to swag, where echo-swagger reads it from.
func (v *RequestValidator) RegisterDocs() error {
	if swag.GetSwagger(swag.Name) != nil {
		return nil
	}
	raw, err := json.Marshal(v.doc)
	if err != nil {
		return fmt.Errorf("marshal openapi document: %w", err)
	}
	swag.Register(swag.Name, openAPIDoc(raw))
	return nil
}

type openAPIDoc string

func (d openAPIDoc) ReadDoc() string {
	return string(d)
}

func validationMessage(err error) string {
	var requestErr *openapi3filter.RequestError
	if errors.As(err, &requestErr) {
		if requestErr.Parameter != nil {
			return fmt.Sprintf("parameter %q: %s", requestErr.Parameter.Name, requestErr.Reason)
		}
		if requestErr.Err != nil {
			return "request body: " + requestErr.Err.Error()
		}
		return requestErr.Reason
	}
	return err.Error()
}
