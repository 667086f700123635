package http

import (
	"context"
	"log/slog"
	"net/http"

	"freight/api"
	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/oapi-codegen/runtime"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// CommandHandlers groups the write use cases exposed over HTTP.
type CommandHandlers struct {
	SignUp            commands.SignUpCommandHandler
	RegisterDriver    commands.RegisterDriverCommandHandler
	CreateOrder       commands.CreateOrderCommandHandler
	GenerateSolutions commands.GenerateSolutionsCommandHandler
	ConfirmSolution   commands.ConfirmSolutionCommandHandler
	ConfirmAgreement  commands.ConfirmAgreementCommandHandler
	ConfirmPayment    commands.ConfirmPaymentCommandHandler
	CompleteOrder     commands.CompleteOrderCommandHandler
}

// QueryHandlers groups the read use cases exposed over HTTP.
type QueryHandlers struct {
	Login          queries.LoginQueryHandler
	CustomerOrders queries.GetCustomerOrdersQueryHandler
	OrderSolutions queries.GetOrderSolutionsQueryHandler
	AgreementText  queries.GetAgreementTextQueryHandler
	PaymentDetails queries.GetPaymentDetailsQueryHandler
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
	tokens   *TokenIssuer
	logger   *slog.Logger
}

func NewServer(cmds CommandHandlers, qs QueryHandlers, tokens *TokenIssuer, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		commands: cmds,
		queries:  qs,
		tokens:   tokens,
		logger:   logger.With("component", "http"),
	}
}

// NewEcho builds the echo instance with every route of the API registered.
func (s *Server) NewEcho() (*echo.Echo, error) {
	validator, err := NewRequestValidator(api.OpenAPI)
	if err != nil {
		return nil, err
	}
	if err = validator.RegisterDocs(); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.logger.InfoContext(c.Request().Context(), "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency))
			return nil
		},
	}))

	e.GET("/health", s.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	validate := validator.Middleware()
	v1 := e.Group("/api/v1")
	v1.POST("/customers", s.SignUp, validate)
	v1.POST("/sessions", s.Login, validate)
	// Operator route: tokens identify customers, never drivers.
	v1.POST("/drivers", s.RegisterDriver, validate)

	orders := v1.Group("/orders", s.tokens.Middleware(), validate)
	orders.GET("", s.GetCustomerOrders)
	orders.POST("", s.CreateOrder)
	orders.GET("/:orderId/solutions", s.GetOrderSolutions)
	orders.POST("/:orderId/solutions", s.GenerateSolutions)
	orders.POST("/:orderId/solutions/:solutionId/confirm", s.ConfirmSolution)
	orders.GET("/:orderId/agreement", s.GetAgreementText)
	orders.POST("/:orderId/agreement/confirm", s.ConfirmAgreement)
	orders.GET("/:orderId/payment", s.GetPaymentDetails)
	orders.POST("/:orderId/payment/confirm", s.ConfirmPayment)
	orders.POST("/:orderId/complete", s.CompleteOrder)

	return e, nil
}

func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// SignUp handles POST /api/v1/customers.
func (s *Server) SignUp(ctx echo.Context) error {
	var body NewCustomer
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewSignUpCommand(id,
		body.Name, body.SecondName, body.MiddleName,
		body.Email, body.Phone, body.Password)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.commands.SignUp.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: id.Bytes()})
}

// Login handles POST /api/v1/sessions and issues a bearer token.
func (s *Server) Login(ctx echo.Context) error {
	var body Credentials
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	q, err := queries.NewLoginQuery(body.Login, body.Password)
	if err != nil {
		return s.fail(ctx, err)
	}
	resp, err := s.queries.Login.Handle(ctx.Request().Context(), q)
	if err != nil {
		return s.fail(ctx, err)
	}

	token, err := s.tokens.Issue(resp.CustomerID)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Session{
		Token:      token,
		CustomerID: resp.CustomerID.Bytes(),
		FullName:   resp.FullName,
	})
}

// RegisterDriver handles POST /api/v1/drivers.
func (s *Server) RegisterDriver(ctx echo.Context) error {
	var body NewDriver
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewRegisterDriverCommand(id,
		body.Name, body.SecondName, body.MiddleName,
		body.Qualification, body.Experience)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.commands.RegisterDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: id.Bytes()})
}

// GetCustomerOrders handles GET /api/v1/orders.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	customerID, err := currentCustomer(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	q, err := queries.NewGetCustomerOrdersQuery(customerID)
	if err != nil {
		return s.fail(ctx, err)
	}
	orders, err := s.queries.CustomerOrders.Handle(ctx.Request().Context(), q)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = toOrder(o)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	customerID, err := currentCustomer(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body NewOrder
	if err = ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, customerID,
		commands.CargoSpec{
			Type:   body.Cargo.Type,
			Width:  body.Cargo.Width,
			Length: body.Cargo.Length,
			Height: body.Cargo.Height,
			Weight: body.Cargo.Weight,
		},
		body.AddressFrom, body.AddressTo, body.EndDate)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.commands.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: orderID.Bytes()})
}

// GenerateSolutions handles POST /api/v1/orders/{orderId}/solutions.
func (s *Server) GenerateSolutions(ctx echo.Context) error {
	return s.runOrderCommand(ctx, s.commands.GenerateSolutions.Handle)
}

// GetOrderSolutions handles GET /api/v1/orders/{orderId}/solutions.
func (s *Server) GetOrderSolutions(ctx echo.Context) error {
	q, err := s.orderQuery(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	solutions, err := s.queries.OrderSolutions.Handle(ctx.Request().Context(), q)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]Solution, len(solutions))
	for i, sol := range solutions {
		response[i] = toSolution(sol)
	}
	return ctx.JSON(http.StatusOK, response)
}

// ConfirmSolution handles POST /api/v1/orders/{orderId}/solutions/{solutionId}/confirm.
func (s *Server) ConfirmSolution(ctx echo.Context) error {
	customerID, err := currentCustomer(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return s.fail(ctx, err)
	}
	solutionID, err := pathUUID(ctx, "solutionId")
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewConfirmSolutionCommand(customerID, orderID, solutionID)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.commands.ConfirmSolution.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetAgreementText handles GET /api/v1/orders/{orderId}/agreement.
func (s *Server) GetAgreementText(ctx echo.Context) error {
	return s.runTextQuery(ctx, s.queries.AgreementText.Handle)
}

// ConfirmAgreement handles POST /api/v1/orders/{orderId}/agreement/confirm.
func (s *Server) ConfirmAgreement(ctx echo.Context) error {
	return s.runOrderCommand(ctx, s.commands.ConfirmAgreement.Handle)
}

// GetPaymentDetails handles GET /api/v1/orders/{orderId}/payment.
func (s *Server) GetPaymentDetails(ctx echo.Context) error {
	return s.runTextQuery(ctx, s.queries.PaymentDetails.Handle)
}

// ConfirmPayment handles POST /api/v1/orders/{orderId}/payment/confirm.
func (s *Server) ConfirmPayment(ctx echo.Context) error {
	return s.runOrderCommand(ctx, s.commands.ConfirmPayment.Handle)
}

// CompleteOrder handles POST /api/v1/orders/{orderId}/complete.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	return s.runOrderCommand(ctx, s.commands.CompleteOrder.Handle)
}

type orderCommandFunc = func(ctx context.Context, cmd commands.OrderCommand) error

type textQueryFunc = func(ctx context.Context, q queries.OrderQuery) (string, error)

func (s *Server) runOrderCommand(ctx echo.Context, handle orderCommandFunc) error {
	customerID, err := currentCustomer(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewOrderCommand(customerID, orderID)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) runTextQuery(ctx echo.Context, handle textQueryFunc) error {
	q, err := s.orderQuery(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	text, err := handle(ctx.Request().Context(), q)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, Text{Text: text})
}

func (s *Server) orderQuery(ctx echo.Context) (queries.OrderQuery, error) {
	customerID, err := currentCustomer(ctx)
	if err != nil {
		return queries.OrderQuery{}, err
	}
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return queries.OrderQuery{}, err
	}
	return queries.NewOrderQuery(customerID, orderID)
}

func (s *Server) badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}

// pathUUID binds a uuid path parameter the way generated oapi-codegen servers do.
func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	var id uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return kernel.UUIDFromBytes(id[:])
}
