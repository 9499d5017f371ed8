package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/goccy/go-json"

	reqdto "runes-gateway/internal/handler/dto/request"
	"runes-gateway/internal/handler/httperr"
	"runes-gateway/internal/usecase"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
}

func NewAuthHandler(authUseCase usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

// @Summary Request a signing challenge
// @Description Forwards the challenge request to the lending API and returns the message(s)-to-sign and nonce(s) verbatim
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.AuthPrepareRequest true "Challenge request"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/auth/prepare [post]
func (h *AuthHandler) Prepare(c *gin.Context) {
	body, _, ok := bindForward[reqdto.AuthPrepareRequest](c)
	if !ok {
		return
	}

	result, err := h.authUseCase.PrepareChallenge(c.Request.Context(), body)
	if err != nil {
		abortUsecaseError(c, err, "Failed to prepare authentication challenge")
		return
	}

	respondData(c, result)
}

// @Summary Submit a signed challenge
// @Description Forwards signatures to the lending API and stores the issued bearer token for the wallet
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.AuthSubmitRequest true "Signed challenge"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/auth/submit [post]
func (h *AuthHandler) Submit(c *gin.Context) {
	body, req, ok := bindForward[reqdto.AuthSubmitRequest](c)
	if !ok {
		return
	}

	result, err := h.authUseCase.SubmitChallenge(c.Request.Context(), usecase.SubmitChallengeInput{
		WalletAddress:   req.Address,
		OrdinalsAddress: req.OrdinalsAddress,
		PaymentAddress:  req.PaymentAddress,
		Payload:         body,
	})
	if err != nil {
		abortUsecaseError(c, err, "Failed to submit authentication challenge")
		return
	}

	respondData(c, result)
}

// bindForward validates the body against T while keeping the raw bytes for
// verbatim forwarding.
func bindForward[T any](c *gin.Context) (json.RawMessage, *T, bool) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request body", err.Error())
		return nil, nil, false
	}

	var req T
	if err := binding.JSON.BindBody(raw, &req); err != nil {
		abortValidation(c, err)
		return nil, nil, false
	}

	return json.RawMessage(raw), &req, true
}
