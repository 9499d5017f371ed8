package api

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"

	reqdto "runes-gateway/internal/handler/dto/request"
	"runes-gateway/internal/handler/httperr"
	"runes-gateway/internal/pkg/errs"
	"runes-gateway/internal/usecase"
)

type SwapHandler struct {
	swapUseCase usecase.SwapUseCase
}

func NewSwapHandler(swapUseCase usecase.SwapUseCase) *SwapHandler {
	return &SwapHandler{
		swapUseCase: swapUseCase,
	}
}

// @Summary Search tradable runes
// @Tags swap
// @Produce json
// @Param query query string true "Search text"
// @Param sell query bool false "Search the sell side"
// @Success 200 {array} usecase.SearchResult
// @Failure 400 {object} httperr.Response
// @Router /api/swap/search [get]
func (h *SwapHandler) Search(c *gin.Context) {
	var query reqdto.SearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortValidation(c, err)
		return
	}

	results, err := h.swapUseCase.Search(c.Request.Context(), query.Query, query.Sell)
	if err != nil {
		abortUsecaseError(c, err, "Failed to search runes")
		return
	}

	respondData(c, results)
}

// @Summary Swap quote for a BTC amount
// @Tags swap
// @Accept json
// @Produce json
// @Param request body request.SwapQuoteRequest true "Quote parameters"
// @Success 200 {object} usecase.QuoteResult
// @Failure 400 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /api/swap/quote [post]
func (h *SwapHandler) Quote(c *gin.Context) {
	var req reqdto.SwapQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortValidation(c, err)
		return
	}

	result, err := h.swapUseCase.Quote(c.Request.Context(), usecase.QuoteInput{
		BTCAmount: req.BTCAmount.String(),
		RuneName:  req.RuneName,
		Address:   req.Address,
		Sell:      req.Sell,
	})
	if err != nil {
		abortUsecaseError(c, err, "Failed to fetch swap quote")
		return
	}

	respondData(c, result)
}

// @Summary Build the swap transaction
// @Tags swap
// @Accept json
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 410 {object} httperr.Response
// @Router /api/swap/psbt/create [post]
func (h *SwapHandler) CreatePSBT(c *gin.Context) {
	h.relay(c, h.swapUseCase.CreatePSBT, "Failed to create swap transaction")
}

// @Summary Broadcast the signed swap transaction
// @Tags swap
// @Accept json
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 410 {object} httperr.Response
// @Router /api/swap/psbt/confirm [post]
func (h *SwapHandler) ConfirmPSBT(c *gin.Context) {
	h.relay(c, h.swapUseCase.ConfirmPSBT, "Failed to confirm swap transaction")
}

// @Summary Popular runes
// @Description Served from the script-maintained cache, falling back to a live aggregator fetch
// @Tags swap
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/runes/popular [get]
func (h *SwapHandler) Popular(c *gin.Context) {
	raw, err := h.swapUseCase.Popular(c.Request.Context())
	if err != nil {
		abortUsecaseError(c, err, "Failed to fetch popular runes")
		return
	}

	respondData(c, raw)
}

type relayFunc func(ctx context.Context, payload json.RawMessage) (json.RawMessage, error)

// relay forwards the raw JSON body after checking it parses at all.
func (h *SwapHandler) relay(c *gin.Context, call relayFunc, contextMessage string) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil || !json.Valid(body) {
		err = errs.New("request body must be valid JSON")
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request parameters", err.Error())
		return
	}

	raw, err := call(c.Request.Context(), body)
	if err != nil {
		abortUsecaseError(c, err, contextMessage)
		return
	}

	respondData(c, raw)
}
