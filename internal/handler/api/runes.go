package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"runes-gateway/internal/handler/httperr"
	"runes-gateway/internal/pkg/errs"
	"runes-gateway/internal/usecase"
)

type RuneHandler struct {
	runeUseCase usecase.RuneInfoUseCase
}

func NewRuneHandler(runeUseCase usecase.RuneInfoUseCase) *RuneHandler {
	return &RuneHandler{
		runeUseCase: runeUseCase,
	}
}

// @Summary Rune metadata by name or id
// @Tags runes
// @Produce json
// @Param name path string true "Rune name or canonical block:tx id"
// @Success 200 {object} readmodel.RuneRM
// @Failure 404 {object} httperr.Response
// @Router /api/runes/{name} [get]
func (h *RuneHandler) Info(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		err := errs.New("rune name is required")
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request parameters", err.Error())
		return
	}

	rec, err := h.runeUseCase.Info(c.Request.Context(), name)
	if err != nil {
		abortUsecaseError(c, err, "Rune not found")
		return
	}

	respondData(c, rec)
}

// @Summary Most recent sale for a rune
// @Tags runes
// @Produce json
// @Param name path string true "Rune name or canonical block:tx id"
// @Success 200 {object} ordiscan.RuneSale
// @Failure 404 {object} httperr.Response
// @Router /api/runes/{name}/last-sale [get]
func (h *RuneHandler) LastSale(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		err := errs.New("rune name is required")
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request parameters", err.Error())
		return
	}

	sale, err := h.runeUseCase.LastSale(c.Request.Context(), name)
	if err != nil {
		abortUsecaseError(c, err, "No sale found for this rune")
		return
	}

	respondData(c, sale)
}

// @Summary List indexed runes
// @Tags runes
// @Produce json
// @Success 200 {array} ordiscan.RuneInfo
// @Router /api/runes [get]
func (h *RuneHandler) List(c *gin.Context) {
	infos, err := h.runeUseCase.List(c.Request.Context())
	if err != nil {
		abortUsecaseError(c, err, "Failed to list runes")
		return
	}

	respondData(c, infos)
}
