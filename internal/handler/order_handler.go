package handler

import (
	"net/http"

	"opsconsole/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

func (h *OrderHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/orders", h.list)
	g.POST("/orders", h.save)
	g.GET("/orders/:id", h.detail)
	g.PUT("/orders/:id", h.save)
	g.DELETE("/orders/:id", h.remove)
	g.GET("/customers/:id/orders", h.listByCustomer)
}

func (h *OrderHandler) list(c echo.Context) error {
	out, err := h.uc.ListOrders(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// save handles both create and update: the body's id (or its absence)
// decides, the same way a resubmitted form does.
func (h *OrderHandler) save(c echo.Context) error {
	var in usecase.OrderInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if id := c.Param("id"); id != "" {
		in.ID = id
	}

	out, err := h.uc.SaveOrder(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) detail(c echo.Context) error {
	view := h.uc.GetOrderByID(c.Request().Context(), c.Param("id"))
	if view == nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "order not found"})
	}
	return c.JSON(http.StatusOK, view)
}

func (h *OrderHandler) remove(c echo.Context) error {
	if err := h.uc.DeleteOrder(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func (h *OrderHandler) listByCustomer(c echo.Context) error {
	out, err := h.uc.ListOrdersByCustomer(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
