package handler

import (
	"net/http"

	"opsconsole/internal/usecase"

	"github.com/labstack/echo/v4"
)

type JobHandler struct {
	uc *usecase.JobUsecase
}

func NewJobHandler(uc *usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/jobs", h.board)
	g.PATCH("/jobs/:id", h.update)
	g.GET("/jobs/:id/completion", h.completion)
	g.POST("/jobs/:id/completion", h.saveCompletion)
}

func (h *JobHandler) board(c echo.Context) error {
	out, err := h.uc.ListBoard(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *JobHandler) update(c echo.Context) error {
	var in usecase.JobUpdateInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := h.uc.UpdateJob(c.Request().Context(), c.Param("id"), in); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func (h *JobHandler) completion(c echo.Context) error {
	jc, err := h.uc.GetJobCompletion(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	if jc == nil {
		return c.JSON(http.StatusOK, nil)
	}
	return c.JSON(http.StatusOK, jc)
}

func (h *JobHandler) saveCompletion(c echo.Context) error {
	var in usecase.JobCompletionInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	jc, err := h.uc.SaveJobCompletion(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, jc)
}
