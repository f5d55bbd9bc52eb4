// Package http is the inbound HTTP adapter: an echo server translating
// JSON requests into commands and queries, with bearer-token auth and a
// single error-to-status mapping.
package http

import (
	"net/http"
	"time"

	"production/internal/core/application/usecases/commands"
	"production/internal/core/application/usecases/queries"
	"production/internal/core/domain/model/account"
	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"
	"production/internal/core/domain/model/product"
	"production/internal/core/ports"
	"production/internal/export"
	"production/internal/pkg/auth"

	"github.com/labstack/echo/v4"
)

// Dependencies bundles everything the server needs. All fields are required.
type Dependencies struct {
	CreateOrderHandler     commands.CreateOrderCommandHandler
	StartStageHandler      commands.StartStageCommandHandler
	CompleteStageHandler   commands.CompleteStageCommandHandler
	ConfirmShipmentHandler commands.ConfirmShipmentCommandHandler
	CancelOrderHandler     commands.CancelOrderCommandHandler
	ReturnOrderHandler     commands.ReturnOrderCommandHandler
	SetStatusHandler       commands.SetStatusCommandHandler
	DeleteOrderHandler     commands.DeleteOrderCommandHandler
	CreateProductHandler   commands.CreateProductCommandHandler
	UpdateProductHandler   commands.UpdateProductCommandHandler
	DeleteProductHandler   commands.DeleteProductCommandHandler
	RegisterAccountHandler commands.RegisterAccountCommandHandler

	GetAllOrdersHandler       queries.GetAllOrdersQueryHandler
	GetDepartmentQueueHandler queries.GetDepartmentQueueQueryHandler
	GetCatalogHandler         queries.GetCatalogQueryHandler
	GetDashboardHandler       queries.GetDashboardQueryHandler
	GetReportHandler          queries.GetReportQueryHandler
	GetAccountHandler         queries.GetAccountQueryHandler
	GetAccountByLoginHandler  queries.GetAccountByLoginQueryHandler

	PasswordHasher auth.PasswordHasher
	TokenStrategy  auth.TokenStrategy
	Sessions       ports.SessionStateStore
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler     commands.CreateOrderCommandHandler
	startStageHandler      commands.StartStageCommandHandler
	completeStageHandler   commands.CompleteStageCommandHandler
	confirmShipmentHandler commands.ConfirmShipmentCommandHandler
	cancelOrderHandler     commands.CancelOrderCommandHandler
	returnOrderHandler     commands.ReturnOrderCommandHandler
	setStatusHandler       commands.SetStatusCommandHandler
	deleteOrderHandler     commands.DeleteOrderCommandHandler
	createProductHandler   commands.CreateProductCommandHandler
	updateProductHandler   commands.UpdateProductCommandHandler
	deleteProductHandler   commands.DeleteProductCommandHandler
	registerAccountHandler commands.RegisterAccountCommandHandler

	getAllOrdersHandler       queries.GetAllOrdersQueryHandler
	getDepartmentQueueHandler queries.GetDepartmentQueueQueryHandler
	getCatalogHandler         queries.GetCatalogQueryHandler
	getDashboardHandler       queries.GetDashboardQueryHandler
	getReportHandler          queries.GetReportQueryHandler
	getAccountHandler         queries.GetAccountQueryHandler
	getAccountByLoginHandler  queries.GetAccountByLoginQueryHandler

	hasher   auth.PasswordHasher
	tokens   auth.TokenStrategy
	sessions ports.SessionStateStore
}

// NewServer creates the HTTP server from its dependencies.
func NewServer(deps Dependencies) *Server {
	return &Server{
		createOrderHandler:        deps.CreateOrderHandler,
		startStageHandler:         deps.StartStageHandler,
		completeStageHandler:      deps.CompleteStageHandler,
		confirmShipmentHandler:    deps.ConfirmShipmentHandler,
		cancelOrderHandler:        deps.CancelOrderHandler,
		returnOrderHandler:        deps.ReturnOrderHandler,
		setStatusHandler:          deps.SetStatusHandler,
		deleteOrderHandler:        deps.DeleteOrderHandler,
		createProductHandler:      deps.CreateProductHandler,
		updateProductHandler:      deps.UpdateProductHandler,
		deleteProductHandler:      deps.DeleteProductHandler,
		registerAccountHandler:    deps.RegisterAccountHandler,
		getAllOrdersHandler:       deps.GetAllOrdersHandler,
		getDepartmentQueueHandler: deps.GetDepartmentQueueHandler,
		getCatalogHandler:         deps.GetCatalogHandler,
		getDashboardHandler:       deps.GetDashboardHandler,
		getReportHandler:          deps.GetReportHandler,
		getAccountHandler:         deps.GetAccountHandler,
		getAccountByLoginHandler:  deps.GetAccountByLoginHandler,
		hasher:                    deps.PasswordHasher,
		tokens:                    deps.TokenStrategy,
		sessions:                  deps.Sessions,
	}
}

// RegisterRoutes mounts all API routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/auth/login", s.Login)

	authed := api.Group("", s.authMiddleware)
	authed.POST("/auth/logout", s.Logout)
	authed.POST("/auth/register", s.RegisterAccount)
	authed.GET("/profile", s.GetProfile)

	authed.GET("/orders", s.GetOrders)
	authed.GET("/orders/export", s.ExportOrders)
	authed.POST("/orders", s.CreateOrder)
	authed.DELETE("/orders/:id", s.DeleteOrder)
	authed.POST("/orders/:id/start", s.StartStage)
	authed.POST("/orders/:id/complete", s.CompleteStage)
	authed.POST("/orders/:id/confirm", s.ConfirmShipment)
	authed.POST("/orders/:id/cancel", s.CancelOrder)
	authed.POST("/orders/:id/return", s.ReturnOrder)
	authed.PUT("/orders/:id/status", s.SetStatus)

	authed.GET("/departments/:department/queue", s.GetDepartmentQueue)

	authed.GET("/products", s.GetCatalog)
	authed.POST("/products", s.CreateProduct)
	authed.PUT("/products/:id", s.UpdateProduct)
	authed.DELETE("/products/:id", s.DeleteProduct)

	authed.GET("/dashboard", s.GetDashboard)
	authed.GET("/report", s.GetReport)

	authed.GET("/session/last-view", s.GetLastView)
	authed.PUT("/session/last-view", s.SetLastView)
	authed.GET("/session/order-draft", s.GetOrderDraft)
	authed.PUT("/session/order-draft", s.SetOrderDraft)
	authed.DELETE("/session/order-draft", s.ClearOrderDraft)
}

// Login handles POST /api/v1/auth/login.
func (s *Server) Login(ctx echo.Context) error {
	var req loginRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	query, err := queries.NewGetAccountByLoginQuery(req.Login)
	if err != nil {
		return badRequest(ctx, "Login is required")
	}

	acc, err := s.getAccountByLoginHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		// Wrong login and wrong password answer identically.
		return unauthorized(ctx, "Invalid login or password")
	}

	if err = s.hasher.Compare(acc.PasswordHash, req.Password); err != nil {
		return unauthorized(ctx, "Invalid login or password")
	}

	token, err := s.tokens.IssueToken(acc.ID)
	if err != nil {
		return writeError(ctx, err, false)
	}

	return ctx.JSON(http.StatusOK, loginResponse{
		Token:       token,
		AccountID:   acc.ID.String(),
		Login:       acc.Login,
		Role:        acc.Role,
		RoleLabel:   acc.RoleLabel,
		DisplayName: acc.DisplayName,
	})
}

// Logout handles POST /api/v1/auth/logout. Tokens are stateless; logout
// drops the account's session scratch state.
func (s *Server) Logout(ctx echo.Context) error {
	accountID, ok := accountIDFrom(ctx)
	if !ok {
		return unauthorized(ctx, "Not authenticated")
	}

	if err := s.sessions.Clear(ctx.Request().Context(), accountID); err != nil {
		return writeError(ctx, err, false)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RegisterAccount handles POST /api/v1/auth/register.
func (s *Server) RegisterAccount(ctx echo.Context) error {
	actor, ok := actorFrom(ctx)
	if !ok {
		return unauthorized(ctx, "Not authenticated")
	}

	var req registerAccountRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	role, err := account.RoleFromString(req.Role)
	if err != nil {
		return badRequest(ctx, "Invalid role: "+req.Role)
	}

	cmd, err := commands.NewRegisterAccountCommand(
		kernel.NewUUID(), req.Login, req.Password, role, req.DisplayName, actor,
	)
	if err != nil {
		return writeError(ctx, err, false)
	}

	if err = s.registerAccountHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err, false)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetProfile handles GET /api/v1/profile.
func (s *Server) GetProfile(ctx echo.Context) error {
	accountID, ok := accountIDFrom(ctx)
	if !ok {
		return unauthorized(ctx, "Not authenticated")
	}

	query, err := queries.NewGetAccountQuery(accountID)
	if err != nil {
		return writeError(ctx, err, false)
	}

	acc, err := s.getAccountHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err, false)
	}

	return ctx.JSON(http.StatusOK, profileResponse{
		AccountID:   acc.ID.String(),
		Login:       acc.Login,
		Role:        acc.Role,
		RoleLabel:   acc.RoleLabel,
		DisplayName: acc.DisplayName,
	})
}

// GetOrders handles GET /api/v1/orders with the list view's filter set.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.queryOrders(ctx)
	if err != nil {
		return err
	}
	if orders == nil {
		return nil
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// ExportOrders handles GET /api/v1/orders/export, streaming the filtered
// list as a CSV download.
func (s *Server) ExportOrders(ctx echo.Context) error {
	orders, err := s.queryOrders(ctx)
	if err != nil {
		return err
	}
	if orders == nil {
		return nil
	}

	res := ctx.Response()
	res.Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	res.Header().Set(echo.HeaderContentDisposition,
		`attachment; filename="orders-`+time.Now().UTC().Format("2006-01-02")+`.csv"`)
	res.WriteHeader(http.StatusOK)

	return export.WriteOrdersCSV(res, orders)
}

// queryOrders parses the shared filter parameters and runs the list query.
// On a handled failure it writes the response and returns (nil, nil).
func (s *Server) queryOrders(ctx echo.Context) ([]queries.OrderResponse, error) {
	filter := queries.OrderFilter{
		Search:      ctx.QueryParam("search"),
		Marketplace: ctx.QueryParam("marketplace"),
		OnlyCustom:  ctx.QueryParam("onlyCustom") == "true",
		OnlyOverdue: ctx.QueryParam("onlyOverdue") == "true",
	}

	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := order.StatusFromString(raw)
		if err != nil {
			return nil, badRequest(ctx, "Invalid status: "+raw)
		}
		filter.Status = status
	}
	if raw := ctx.QueryParam("type"); raw != "" {
		orderType, err := order.TypeFromString(raw)
		if err != nil {
			return nil, badRequest(ctx, "Invalid type: "+raw)
		}
		filter.OrderType = orderType
	}
	if raw := ctx.QueryParam("dateFrom"); raw != "" {
		from, err := kernel.DateFromString(raw)
		if err != nil {
			return nil, badRequest(ctx, "Invalid dateFrom: "+raw)
		}
		filter.DateFrom = from
	}
	if raw := ctx.QueryParam("dateTo"); raw != "" {
		to, err := kernel.DateFromString(raw)
		if err != nil {
			return nil, badRequest(ctx, "Invalid dateTo: "+raw)
		}
		filter.DateTo = to
	}

	query, err := queries.NewGetAllOrdersQuery(filter)
	if err != nil {
		return nil, writeError(ctx, err, false)
	}

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return nil, writeError(ctx, err, false)
	}

	return orders, nil
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, ok := actorFrom(ctx)
	if !ok {
		return unauthorized(ctx, "Not authenticated")
	}

	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return badRequest(ctx, "Invalid product id: "+req.ProductID)
	}

	orderDate, err := kernel.DateFromString(req.OrderDate)
	if err != nil {
		return badRequest(ctx, "Invalid order date: "+req.OrderDate)
	}

	orderType, err := order.TypeFromString(req.OrderType)
	if err != nil {
		return badRequest(ctx, "Invalid order type: "+req.OrderType)
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		req.ExternalID,
		productID,
		req.Size,
		req.Quantity,
		req.BackName,
		req.BackNumber,
		req.Marketplace,
		req.Expedition,
		orderDate,
		orderType,
		actor,
	)
	if err != nil {
		return writeError(ctx, err, false)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err, false)
	}

	// The intake form made it in; its saved draft is stale now.
	if accountID, hasID := accountIDFrom(ctx); hasID {
		if clearErr := s.sessions.ClearOrderDraft(ctx.Request().Context(), accountID); clearErr != nil {
			ctx.Logger().Warnf("clearing order draft: %v", clearErr)
		}
	}

	return ctx.NoContent(http.StatusCreated)
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	return s.runOrderCommand(ctx, false, func(orderID kernel.UUID, actor commands.Actor) error {
		cmd, err := commands.NewDeleteOrderCommand(orderID, actor)
		if err != nil {
			return err
		}
		return s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// StartStage handles POST /api/v1/orders/:id/start.
func (s *Server) StartStage(ctx echo.Context) error {
	department, err := bindDepartment(ctx)
	if err != nil {
		return err
	}

	return s.runOrderCommand(ctx, true, func(orderID kernel.UUID, actor commands.Actor) error {
		cmd, cmdErr := commands.NewStartStageCommand(orderID, department, actor)
		if cmdErr != nil {
			return cmdErr
		}
		return s.startStageHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// CompleteStage handles POST /api/v1/orders/:id/complete.
func (s *Server) CompleteStage(ctx echo.Context) error {
	department, err := bindDepartment(ctx)
	if err != nil {
		return err
	}

	return s.runOrderCommand(ctx, true, func(orderID kernel.UUID, actor commands.Actor) error {
		cmd, cmdErr := commands.NewCompleteStageCommand(orderID, department, actor)
		if cmdErr != nil {
			return cmdErr
		}
		return s.completeStageHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// ConfirmShipment handles POST /api/v1/orders/:id/confirm.
func (s *Server) ConfirmShipment(ctx echo.Context) error {
	return s.runOrderCommand(ctx, true, func(orderID kernel.UUID, actor commands.Actor) error {
		cmd, err := commands.NewConfirmShipmentCommand(orderID, actor)
		if err != nil {
			return err
		}
		return s.confirmShipmentHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	return s.runOrderCommand(ctx, true, func(orderID kernel.UUID, actor commands.Actor) error {
		cmd, err := commands.NewCancelOrderCommand(orderID, actor)
		if err != nil {
			return err
		}
		return s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// ReturnOrder handles POST /api/v1/orders/:id/return.
func (s *Server) ReturnOrder(ctx echo.Context) error {
	var req returnOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	returnDate, err := kernel.DateFromString(req.ReturnDate)
	if err != nil {
		return badRequest(ctx, "Invalid return date: "+req.ReturnDate)
	}

	return s.runOrderCommand(ctx, true, func(orderID kernel.UUID, actor commands.Actor) error {
		cmd, cmdErr := commands.NewReturnOrderCommand(orderID, returnDate, actor)
		if cmdErr != nil {
			return cmdErr
		}
		return s.returnOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// SetStatus handles PUT /api/v1/orders/:id/status, the manager's direct
// status override. Moves to RETURNED go through ReturnOrder so the return
// date requirement holds.
func (s *Server) SetStatus(ctx echo.Context) error {
	var req setStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+req.Status)
	}

	if status == order.StatusReturned {
		returnDate, dateErr := kernel.DateFromString(req.ReturnDate)
		if dateErr != nil {
			return badRequest(ctx, "Return date is required for RETURNED")
		}
		return s.runOrderCommand(ctx, true, func(orderID kernel.UUID, actor commands.Actor) error {
			cmd, cmdErr := commands.NewReturnOrderCommand(orderID, returnDate, actor)
			if cmdErr != nil {
				return cmdErr
			}
			return s.returnOrderHandler.Handle(ctx.Request().Context(), cmd)
		})
	}

	return s.runOrderCommand(ctx, true, func(orderID kernel.UUID, actor commands.Actor) error {
		cmd, cmdErr := commands.NewSetStatusCommand(orderID, status, actor)
		if cmdErr != nil {
			return cmdErr
		}
		return s.setStatusHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// runOrderCommand handles the shared plumbing of the per-order command
// endpoints: actor extraction, :id parsing, error mapping.
func (s *Server) runOrderCommand(
	ctx echo.Context,
	conflictOnInvalid bool,
	run func(orderID kernel.UUID, actor commands.Actor) error,
) error {
	actor, ok := actorFrom(ctx)
	if !ok {
		return unauthorized(ctx, "Not authenticated")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+ctx.Param("id"))
	}

	if err = run(orderID, actor); err != nil {
		return writeError(ctx, err, conflictOnInvalid)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func bindDepartment(ctx echo.Context) (order.Department, error) {
	var req stageRequest
	if err := ctx.Bind(&req); err != nil {
		return order.Department(""), badRequest(ctx, "Invalid request body")
	}

	department, err := order.DepartmentFromString(req.Department)
	if err != nil {
		return order.Department(""), badRequest(ctx, "Invalid department: "+req.Department)
	}

	return department, nil
}

// GetDepartmentQueue handles GET /api/v1/departments/:department/queue.
// Workers only see their own department's queue; managers see any.
func (s *Server) GetDepartmentQueue(ctx echo.Context) error {
	actor, ok := actorFrom(ctx)
	if !ok {
		return unauthorized(ctx, "Not authenticated")
	}

	department, err := order.DepartmentFromString(ctx.Param("department"))
	if err != nil {
		return badRequest(ctx, "Invalid department: "+ctx.Param("department"))
	}

	if role := actor.Role(); !role.IsManager() && !role.MayOperate(department) {
		return forbidden(ctx, "Role "+role.String()+" may not view the "+department.String()+" queue")
	}

	query, err := queries.NewGetDepartmentQueueQuery(department)
	if err != nil {
		return writeError(ctx, err, false)
	}

	queue, err := s.getDepartmentQueueHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err, false)
	}

	return ctx.JSON(http.StatusOK, departmentQueueResponse{
		Pending:    toOrderResponses(queue.Pending),
		InProgress: toOrderResponses(queue.InProgress),
	})
}

// GetCatalog handles GET /api/v1/products.
func (s *Server) GetCatalog(ctx echo.Context) error {
	catalog, err := s.getCatalogHandler.Handle(ctx.Request().Context(), queries.NewGetCatalogQuery())
	if err != nil {
		return writeError(ctx, err, false)
	}

	response := make([]productResponse, 0, len(catalog))
	for _, p := range catalog {
		response = append(response, productResponse{
			ID:          p.ID.String(),
			Name:        p.Name,
			Category:    p.Category,
			Image:       p.Image,
			Description: p.Description,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	actor, ok := actorFrom(ctx)
	if !ok {
		return unauthorized(ctx, "Not authenticated")
	}

	req, category, err := bindProduct(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateProductCommand(
		kernel.NewUUID(), req.Name, category, req.Image, req.Description, actor,
	)
	if err != nil {
		return writeError(ctx, err, false)
	}

	if err = s.createProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err, false)
	}

	return ctx.NoContent(http.StatusCreated)
}

// UpdateProduct handles PUT /api/v1/products/:id.
func (s *Server) UpdateProduct(ctx echo.Context) error {
	actor, ok := actorFrom(ctx)
	if !ok {
		return unauthorized(ctx, "Not authenticated")
	}

	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid product id: "+ctx.Param("id"))
	}

	req, category, err := bindProduct(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateProductCommand(
		productID, req.Name, category, req.Image, req.Description, actor,
	)
	if err != nil {
		return writeError(ctx, err, false)
	}

	if err = s.updateProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err, false)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteProduct handles DELETE /api/v1/products/:id.
func (s *Server) DeleteProduct(ctx echo.Context) error {
	actor, ok := actorFrom(ctx)
	if !ok {
		return unauthorized(ctx, "Not authenticated")
	}

	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid product id: "+ctx.Param("id"))
	}

	cmd, err := commands.NewDeleteProductCommand(productID, actor)
	if err != nil {
		return writeError(ctx, err, false)
	}

	if err = s.deleteProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err, false)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func bindProduct(ctx echo.Context) (productRequest, product.Category, error) {
	var req productRequest
	if err := ctx.Bind(&req); err != nil {
		return productRequest{}, product.CategoryUnknown, badRequest(ctx, "Invalid request body")
	}

	category, err := product.CategoryFromString(req.Category)
	if err != nil {
		return productRequest{}, product.CategoryUnknown, badRequest(ctx, "Invalid category: "+req.Category)
	}

	return req, category, nil
}

// GetDashboard handles GET /api/v1/dashboard.
func (s *Server) GetDashboard(ctx echo.Context) error {
	dashboard, err := s.getDashboardHandler.Handle(ctx.Request().Context(), queries.NewGetDashboardQuery())
	if err != nil {
		return writeError(ctx, err, false)
	}

	departments := make([]departmentLoadResponse, 0, len(dashboard.Departments))
	for _, d := range dashboard.Departments {
		departments = append(departments, departmentLoadResponse{
			Department: d.Department,
			Pending:    d.Pending,
			InProgress: d.InProgress,
		})
	}

	return ctx.JSON(http.StatusOK, dashboardResponse{
		TotalOrders:  dashboard.TotalOrders,
		InProduction: dashboard.InProduction,
		ReadyToShip:  dashboard.ReadyToShip,
		Completed:    dashboard.Completed,
		Canceled:     dashboard.Canceled,
		Returned:     dashboard.Returned,
		Overdue:      dashboard.Overdue,
		Departments:  departments,
	})
}

// GetReport handles GET /api/v1/report?from=...&to=... Super admin only.
func (s *Server) GetReport(ctx echo.Context) error {
	actor, ok := actorFrom(ctx)
	if !ok {
		return unauthorized(ctx, "Not authenticated")
	}
	if !actor.Role().IsSuperAdmin() {
		return forbidden(ctx, "Role "+actor.Role().String()+" may not view reports")
	}

	from, err := kernel.DateFromString(ctx.QueryParam("from"))
	if err != nil {
		return badRequest(ctx, "Invalid from date: "+ctx.QueryParam("from"))
	}

	to, err := kernel.DateFromString(ctx.QueryParam("to"))
	if err != nil {
		return badRequest(ctx, "Invalid to date: "+ctx.QueryParam("to"))
	}

	query, err := queries.NewGetReportQuery(from, to)
	if err != nil {
		return writeError(ctx, err, false)
	}

	report, err := s.getReportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err, false)
	}

	marketplaces := make([]marketplaceSummaryResponse, 0, len(report.Marketplaces))
	for _, m := range report.Marketplaces {
		marketplaces = append(marketplaces, marketplaceSummaryResponse{
			Marketplace: m.Marketplace,
			Orders:      m.Orders,
			Pieces:      m.Pieces,
			Done:        m.Done,
			Pending:     m.Pending,
		})
	}

	return ctx.JSON(http.StatusOK, reportResponse{
		From:             report.From,
		To:               report.To,
		TotalOrders:      report.TotalOrders,
		TotalPieces:      report.TotalPieces,
		ProductionPieces: report.ProductionPieces,
		StockPieces:      report.StockPieces,
		Completed:        report.Completed,
		Canceled:         report.Canceled,
		Returned:         report.Returned,
		Marketplaces:     marketplaces,
	})
}

// GetLastView handles GET /api/v1/session/last-view.
func (s *Server) GetLastView(ctx echo.Context) error {
	accountID, ok := accountIDFrom(ctx)
	if !ok {
		return unauthorized(ctx, "Not authenticated")
	}

	view, found, err := s.sessions.GetLastView(ctx.Request().Context(), accountID)
	if err != nil {
		return writeError(ctx, err, false)
	}
	if !found {
		return ctx.NoContent(http.StatusNoContent)
	}

	return ctx.JSON(http.StatusOK, lastViewResponse{View: view})
}

// SetLastView handles PUT /api/v1/session/last-view.
func (s *Server) SetLastView(ctx echo.Context) error {
	accountID, ok := accountIDFrom(ctx)
	if !ok {
		return unauthorized(ctx, "Not authenticated")
	}

	var req lastViewRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if req.View == "" {
		return badRequest(ctx, "View is required")
	}

	if err := s.sessions.SetLastView(ctx.Request().Context(), accountID, req.View); err != nil {
		return writeError(ctx, err, false)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderDraft handles GET /api/v1/session/order-draft.
func (s *Server) GetOrderDraft(ctx echo.Context) error {
	accountID, ok := accountIDFrom(ctx)
	if !ok {
		return unauthorized(ctx, "Not authenticated")
	}

	draft, found, err := s.sessions.GetOrderDraft(ctx.Request().Context(), accountID)
	if err != nil {
		return writeError(ctx, err, false)
	}
	if !found {
		return ctx.NoContent(http.StatusNoContent)
	}

	return ctx.JSON(http.StatusOK, toDraftDTO(draft))
}

// SetOrderDraft handles PUT /api/v1/session/order-draft.
func (s *Server) SetOrderDraft(ctx echo.Context) error {
	accountID, ok := accountIDFrom(ctx)
	if !ok {
		return unauthorized(ctx, "Not authenticated")
	}

	var req orderDraftDTO
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	if err := s.sessions.SetOrderDraft(ctx.Request().Context(), accountID, fromDraftDTO(req)); err != nil {
		return writeError(ctx, err, false)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ClearOrderDraft handles DELETE /api/v1/session/order-draft.
func (s *Server) ClearOrderDraft(ctx echo.Context) error {
	accountID, ok := accountIDFrom(ctx)
	if !ok {
		return unauthorized(ctx, "Not authenticated")
	}

	if err := s.sessions.ClearOrderDraft(ctx.Request().Context(), accountID); err != nil {
		return writeError(ctx, err, false)
	}

	return ctx.NoContent(http.StatusNoContent)
}
