package handler

import (
	"net/http"

	"app/internal/middleware"
	"app/internal/repository"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type CreateOrderRequest struct {
	PaymentMethod    string `json:"payment_method"`
	UPIID            string `json:"upi_id"`
	DeliveryAddress  string `json:"delivery_address"`
	Phone            string `json:"phone"`
	PrescriptionData string `json:"prescription_data"`
}

func (h *OrderHandler) RegisterRoutes(g *echo.Group, authJWT echo.MiddlewareFunc, userRepo repository.UserRepository) {
	orders := g.Group("/orders")
	orders.Use(authJWT)
	orders.Use(middleware.CurrentUser(userRepo))

	orders.POST("", h.create)
	orders.GET("", h.list)
	orders.GET("/:id", h.detail)
}

func (h *OrderHandler) create(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if req.PaymentMethod == "" || req.DeliveryAddress == "" || req.Phone == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation error"})
	}

	out, err := h.uc.CreateOrder(c.Request().Context(), userID, usecase.CreateOrderInput{
		PaymentMethod:    req.PaymentMethod,
		UPIID:            req.UPIID,
		DeliveryAddress:  req.DeliveryAddress,
		Phone:            req.Phone,
		PrescriptionData: req.PrescriptionData,
	})
	if err != nil {
		return writeError(c, err)
	}

	if out.SkippedLines > 0 {
		c.Logger().Warnf("order %s: skipped %d cart lines with missing products", out.OrderID, out.SkippedLines)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) list(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.ListOrders(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) detail(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.GetOrder(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
