package handler

import (
	"net/http"

	"opsconsole/internal/usecase"

	"github.com/labstack/echo/v4"
)

type SettingHandler struct {
	uc *usecase.SettingUsecase
}

func NewSettingHandler(uc *usecase.SettingUsecase) *SettingHandler {
	return &SettingHandler{uc: uc}
}

func (h *SettingHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/settings/:key", h.get)
	g.PUT("/settings/:key", h.put)
}

func (h *SettingHandler) get(c echo.Context) error {
	s, err := h.uc.GetSetting(c.Request().Context(), c.Param("key"))
	if err != nil {
		return writeError(c, err)
	}
	if s == nil {
		return c.JSON(http.StatusOK, nil)
	}
	return c.JSON(http.StatusOK, s)
}

type settingBody struct {
	Value string `json:"value"`
}

func (h *SettingHandler) put(c echo.Context) error {
	var body settingBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	s, err := h.uc.SaveSetting(c.Request().Context(), c.Param("key"), body.Value)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}
