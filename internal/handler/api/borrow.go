package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"

	reqdto "runes-gateway/internal/handler/dto/request"
	"runes-gateway/internal/handler/httperr"
	"runes-gateway/internal/pkg/errs"
	"runes-gateway/internal/usecase"
)

type BorrowHandler struct {
	borrowUseCase usecase.BorrowUseCase
}

func NewBorrowHandler(borrowUseCase usecase.BorrowUseCase) *BorrowHandler {
	return &BorrowHandler{
		borrowUseCase: borrowUseCase,
	}
}

// @Summary Collateral offer range for a rune
// @Description Returns the lending API's advertised min/max borrowable quantity, served from a 5-minute cache when fresh
// @Tags borrow
// @Produce json
// @Param runeId query string true "Rune name or canonical block:tx id"
// @Param address query string true "Wallet address"
// @Success 200 {object} usecase.BorrowRangesResult
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/borrow/ranges [get]
func (h *BorrowHandler) Ranges(c *gin.Context) {
	var query reqdto.BorrowRangesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortValidation(c, err)
		return
	}

	result, err := h.borrowUseCase.Ranges(c.Request.Context(), query.RuneID, query.Address)
	if err != nil {
		abortUsecaseError(c, err, "Failed to fetch borrow ranges")
		return
	}

	respondData(c, result)
}

// @Summary Loan offers for a collateral amount
// @Tags borrow
// @Accept json
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 401 {object} httperr.Response
// @Router /api/borrow/quotes [post]
func (h *BorrowHandler) Quotes(c *gin.Context) {
	h.forward(c, h.borrowUseCase.Quotes, "Failed to fetch borrow quotes")
}

// @Summary Prepare a loan start transaction
// @Tags borrow
// @Accept json
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 401 {object} httperr.Response
// @Router /api/borrow/prepare [post]
func (h *BorrowHandler) Prepare(c *gin.Context) {
	h.forward(c, h.borrowUseCase.Prepare, "Failed to prepare borrow transaction")
}

// @Summary Submit a signed loan start transaction
// @Tags borrow
// @Accept json
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 401 {object} httperr.Response
// @Router /api/borrow/submit [post]
func (h *BorrowHandler) Submit(c *gin.Context) {
	h.forward(c, h.borrowUseCase.Submit, "Failed to submit borrow transaction")
}

// @Summary Repay a loan
// @Description Prepare or submit sub-step is selected by the presence of a signed transaction in the body
// @Tags borrow
// @Accept json
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 401 {object} httperr.Response
// @Router /api/borrow/repay [post]
func (h *BorrowHandler) Repay(c *gin.Context) {
	h.forward(c, h.borrowUseCase.Repay, "Failed to process repayment")
}

// @Summary Lending portfolio for a wallet
// @Tags borrow
// @Produce json
// @Param address query string true "Wallet address"
// @Success 200 {object} map[string]any
// @Failure 401 {object} httperr.Response
// @Router /api/portfolio [get]
func (h *BorrowHandler) Portfolio(c *gin.Context) {
	address := c.Query("address")
	if address == "" {
		err := errs.New("address query parameter is required")
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request parameters", err.Error())
		return
	}

	result, err := h.borrowUseCase.Portfolio(c.Request.Context(), address)
	if err != nil {
		abortUsecaseError(c, err, "Failed to fetch portfolio")
		return
	}

	respondData(c, result)
}

// forward binds the free-form body, requires the internal address field and
// relays everything else to the usecase.
func (h *BorrowHandler) forward(c *gin.Context, call func(ctx context.Context, walletAddress string, payload map[string]any) (json.RawMessage, error), contextMessage string) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortValidation(c, err)
		return
	}

	address, _ := payload["address"].(string)
	if address == "" {
		err := errs.New("address field is required")
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request parameters", err.Error())
		return
	}

	result, err := call(c.Request.Context(), address, payload)
	if err != nil {
		abortUsecaseError(c, err, contextMessage)
		return
	}

	respondData(c, result)
}
