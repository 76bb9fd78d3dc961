package http

import (
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"

	"printshop/internal/adapters/out/disk"
	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/application/usecases/queries"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	deleteOrderHandler       commands.DeleteOrderCommandHandler

	// Query handlers
	getOrderHandler       queries.GetOrderQueryHandler
	listOrdersHandler     queries.ListOrdersQueryHandler
	dashboardStatsHandler queries.GetDashboardStatsQueryHandler
	downloadFileHandler   queries.DownloadFileQueryHandler

	auth     ports.AdminAuthenticator
	maxFiles int
	devMode  bool
	logger   *slog.Logger
}

// NewServer creates the HTTP server with the required command and query
// handlers. maxFiles caps the file parts accepted per create request;
// devMode exposes internal error detail to clients.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	dashboardStatsHandler queries.GetDashboardStatsQueryHandler,
	downloadFileHandler queries.DownloadFileQueryHandler,
	auth ports.AdminAuthenticator,
	maxFiles int,
	devMode bool,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		deleteOrderHandler:       deleteOrderHandler,
		getOrderHandler:          getOrderHandler,
		listOrdersHandler:        listOrdersHandler,
		dashboardStatsHandler:    dashboardStatsHandler,
		downloadFileHandler:      downloadFileHandler,
		auth:                     auth,
		maxFiles:                 maxFiles,
		devMode:                  devMode,
		logger:                   logger.With("component", "http_server"),
	}
}

// RegisterRoutes wires every route onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewRequestValidator()

	e.GET("/health", s.Health)

	e.POST("/orders", s.CreateOrder)
	e.GET("/orders/:orderId", s.GetOrder)

	e.GET("/orders", s.ListOrders, s.adminOnly)
	e.PATCH("/orders/:orderId/status", s.UpdateOrderStatus, s.adminOnly)
	e.DELETE("/orders/:orderId", s.DeleteOrder, s.adminOnly)
	e.GET("/orders/:orderId/files/:fileName", s.DownloadFile, s.adminOnly)
	e.GET("/stats/dashboard", s.GetDashboardStats, s.adminOnly)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return respond(ctx, http.StatusOK, "healthy", nil)
}

type createOrderRequest struct {
	FullName            string `form:"fullName" validate:"required"`
	PhoneNumber         string `form:"phoneNumber" validate:"required"`
	PrintType           string `form:"printType" validate:"required"`
	BindingColorType    string `form:"bindingColorType"`
	Copies              int    `form:"copies" validate:"omitempty,min=1"`
	PaperSize           string `form:"paperSize"`
	PrintSide           string `form:"printSide"`
	SelectedPages       string `form:"selectedPages"`
	ColorPages          string `form:"colorPages"`
	BwPages             string `form:"bwPages"`
	SpecialInstructions string `form:"specialInstructions" validate:"max=1000"`
}

// CreateOrder handles POST /orders - accepts a multipart submission with
// order fields plus up to maxFiles file parts.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return s.fail(ctx, http.StatusBadRequest, "Invalid request body", err)
	}
	if err := ctx.Validate(&req); err != nil {
		return s.failWithDetails(ctx, http.StatusBadRequest,
			"Invalid order data", err, validationDetails(err))
	}

	details, err := s.parseDetails(req)
	if err != nil {
		return s.respondError(ctx, err, "Invalid order data")
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		return s.fail(ctx, http.StatusBadRequest, "At least one file is required", err)
	}
	parts := form.File["files"]
	if len(parts) > s.maxFiles {
		return s.fail(ctx, http.StatusBadRequest, "Too many files", disk.ErrTooManyFiles)
	}

	cmd, err := commands.NewCreateOrderCommand(details, uploadsFromParts(parts))
	if err != nil {
		return s.respondError(ctx, err, "Invalid order data")
	}

	result, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		s.logger.ErrorContext(ctx.Request().Context(), "Order creation failed", "error", err)
		return s.respondError(ctx, err, "Failed to create order")
	}

	return respond(ctx, http.StatusCreated, "Order created successfully", echo.Map{
		"id":        result.ID.String(),
		"orderId":   result.OrderID,
		"totalCost": result.TotalCost,
		"status":    string(result.Status),
	})
}

// GetOrder handles GET /orders/:orderId - the public tracking lookup.
func (s *Server) GetOrder(ctx echo.Context) error {
	query, err := queries.NewGetOrderQuery(ctx.Param("orderId"))
	if err != nil {
		return s.respondError(ctx, err, "Invalid order ID")
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err, "Order not found")
	}

	return respond(ctx, http.StatusOK, "", result)
}

type listOrdersRequest struct {
	Page      int    `query:"page"`
	Limit     int    `query:"limit"`
	Status    string `query:"status"`
	SortBy    string `query:"sortBy"`
	SortOrder string `query:"sortOrder"`
}

// ListOrders handles GET /orders - the paginated admin listing.
func (s *Server) ListOrders(ctx echo.Context) error {
	var req listOrdersRequest
	if err := ctx.Bind(&req); err != nil {
		return s.fail(ctx, http.StatusBadRequest, "Invalid query parameters", err)
	}

	query, err := queries.NewListOrdersQuery(queries.ListOrdersParams{
		Page:      req.Page,
		Limit:     req.Limit,
		Status:    req.Status,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		return s.respondError(ctx, err, "Invalid query parameters")
	}

	result, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err, "Failed to retrieve orders")
	}

	return respond(ctx, http.StatusOK, "", result)
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateOrderStatus handles PATCH /orders/:orderId/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	var req updateStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return s.fail(ctx, http.StatusBadRequest, "Invalid request body", err)
	}
	if err := ctx.Validate(&req); err != nil {
		return s.failWithDetails(ctx, http.StatusBadRequest,
			"Status is required", err, validationDetails(err))
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(ctx.Param("orderId"), req.Status)
	if err != nil {
		return s.respondError(ctx, err, "Invalid status")
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err, "Failed to update order status")
	}

	return respond(ctx, http.StatusOK, "Order status updated successfully", orderPayload(updated))
}

// DeleteOrder handles DELETE /orders/:orderId.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	cmd, err := commands.NewDeleteOrderCommand(ctx.Param("orderId"))
	if err != nil {
		return s.respondError(ctx, err, "Invalid order ID")
	}

	if err := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err, "Failed to delete order")
	}

	return respond(ctx, http.StatusOK, "Order deleted successfully", nil)
}

// DownloadFile handles GET /orders/:orderId/files/:fileName - streams one
// stored document with its original filename and declared content type.
func (s *Server) DownloadFile(ctx echo.Context) error {
	query, err := queries.NewDownloadFileQuery(ctx.Param("orderId"), ctx.Param("fileName"))
	if err != nil {
		return s.respondError(ctx, err, "Invalid download request")
	}

	result, err := s.downloadFileHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err, "File not found")
	}
	defer result.Content.Close()

	ctx.Response().Header().Set(echo.HeaderContentDisposition,
		`attachment; filename="`+result.OriginalName+`"`)
	if result.Size > 0 {
		ctx.Response().Header().Set(echo.HeaderContentLength, strconv.FormatInt(result.Size, 10))
	}
	return ctx.Stream(http.StatusOK, result.MIMEType, result.Content)
}

// GetDashboardStats handles GET /stats/dashboard.
func (s *Server) GetDashboardStats(ctx echo.Context) error {
	result, err := s.dashboardStatsHandler.Handle(
		ctx.Request().Context(), queries.NewGetDashboardStatsQuery(),
	)
	if err != nil {
		return s.respondError(ctx, err, "Failed to retrieve statistics")
	}

	return respond(ctx, http.StatusOK, "", result)
}

// parseDetails converts the bound request into validated domain details.
// Omitted enum fields take their documented defaults.
func (s *Server) parseDetails(req createOrderRequest) (order.Details, error) {
	printType, err := order.ParsePrintType(req.PrintType)
	if err != nil {
		return order.Details{}, err
	}

	paperSize, err := order.ParsePaperSize(req.PaperSize)
	if err != nil {
		return order.Details{}, err
	}

	printSide, err := order.ParsePrintSide(req.PrintSide)
	if err != nil {
		return order.Details{}, err
	}

	var binding *order.BindingColorType
	if req.BindingColorType != "" {
		b, err := order.ParseBindingColorType(req.BindingColorType)
		if err != nil {
			return order.Details{}, err
		}
		binding = &b
	}

	copies := req.Copies
	if copies == 0 {
		copies = 1
	}

	return order.Details{
		FullName:            req.FullName,
		PhoneNumber:         req.PhoneNumber,
		PrintType:           printType,
		BindingColorType:    binding,
		Copies:              copies,
		PaperSize:           paperSize,
		PrintSide:           printSide,
		SelectedPages:       req.SelectedPages,
		ColorPages:          req.ColorPages,
		BwPages:             req.BwPages,
		SpecialInstructions: req.SpecialInstructions,
	}, nil
}

// uploadsFromParts wraps multipart file headers as deferred-open uploads so
// the file store controls when each part is read.
func uploadsFromParts(parts []*multipart.FileHeader) []ports.Upload {
	uploads := make([]ports.Upload, 0, len(parts))
	for _, part := range parts {
		uploads = append(uploads, ports.Upload{
			OriginalName: part.Filename,
			MIMEType:     part.Header.Get("Content-Type"),
			Size:         part.Size,
			Open: func() (io.ReadCloser, error) {
				return part.Open()
			},
		})
	}
	return uploads
}

// orderPayload projects a domain aggregate into the client-facing read
// shape, reusing the query read model so both paths serialize identically.
func orderPayload(o *order.Order) queries.OrderResponse {
	d := o.Details()

	var binding *string
	if d.BindingColorType != nil {
		raw := string(*d.BindingColorType)
		binding = &raw
	}

	files := make([]queries.OrderFileResponse, 0, len(o.Files()))
	for _, f := range o.Files() {
		files = append(files, queries.OrderFileResponse{
			Name:         f.Name,
			OriginalName: f.OriginalName,
			Size:         f.Size,
			Type:         f.MIMEType,
			UploadDate:   f.UploadDate,
		})
	}

	return queries.OrderResponse{
		OrderID:             o.OrderID(),
		FullName:            d.FullName,
		PhoneNumber:         d.PhoneNumber,
		PrintType:           string(d.PrintType),
		BindingColorType:    binding,
		Copies:              d.Copies,
		PaperSize:           string(d.PaperSize),
		PrintSide:           string(d.PrintSide),
		SelectedPages:       d.SelectedPages,
		ColorPages:          d.ColorPages,
		BwPages:             d.BwPages,
		SpecialInstructions: d.SpecialInstructions,
		Files:               files,
		Status:              string(o.Status()),
		TotalCost:           o.TotalCost(),
		OrderDate:           o.OrderDate(),
		UpdatedAt:           o.UpdatedAt(),
	}
}
