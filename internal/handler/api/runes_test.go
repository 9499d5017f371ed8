//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"runes-gateway/internal/client/ordiscan"
	"runes-gateway/internal/handler/api"
	"runes-gateway/internal/usecase"
	"runes-gateway/internal/usecase/readmodel"
	"runes-gateway/tests/common/httptest"
	usecasemock "runes-gateway/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RuneHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockCtrl  *gomock.Controller
	mockRunes *usecasemock.MockRuneInfoUseCase
	handler   *api.RuneHandler
}

func (s *RuneHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockRunes = usecasemock.NewMockRuneInfoUseCase(s.mockCtrl)
	s.handler = api.NewRuneHandler(s.mockRunes)

	s.router.GET("/api/runes", s.handler.List)
	s.router.GET("/api/runes/:name", s.handler.Info)
	s.router.GET("/api/runes/:name/last-sale", s.handler.LastSale)
}

func (s *RuneHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRuneHandlerSuite(t *testing.T) {
	suite.Run(t, new(RuneHandlerTestSuite))
}

func (s *RuneHandlerTestSuite) TestInfo() {
	s.Run("success: returns the rune metadata", func() {
		s.mockRunes.EXPECT().Info(gomock.Any(), "DOG").
			Return(&readmodel.RuneRM{ID: "840000:3", Name: "DOGGOTOTHEMOON", Decimals: 5}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/runes/DOG", nil)

		var response readmodel.RuneRM
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("840000:3", response.ID)
	})

	s.Run("error: unknown rune maps to 404", func() {
		s.mockRunes.EXPECT().Info(gomock.Any(), "NOPE").
			Return(nil, usecase.ErrUpstreamNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/runes/NOPE", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Rune not found")
	})
}

func (s *RuneHandlerTestSuite) TestLastSale() {
	s.Run("success: returns the most recent sale", func() {
		s.mockRunes.EXPECT().LastSale(gomock.Any(), "DOG").
			Return(&ordiscan.RuneSale{TxID: "deadbeef", Amount: "1000", PriceSats: 42000}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/runes/DOG/last-sale", nil)

		var response ordiscan.RuneSale
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("deadbeef", response.TxID)
		s.Equal(int64(42000), response.PriceSats)
	})

	s.Run("error: no recorded sale maps to 404", func() {
		s.mockRunes.EXPECT().LastSale(gomock.Any(), "DOG").
			Return(nil, usecase.ErrUpstreamNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/runes/DOG/last-sale", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "No sale found for this rune")
	})
}

func (s *RuneHandlerTestSuite) TestList() {
	s.Run("success: returns the indexer listing", func() {
		s.mockRunes.EXPECT().List(gomock.Any()).
			Return([]ordiscan.RuneInfo{{ID: "840000:3", Name: "DOGGOTOTHEMOON"}}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/runes", nil)

		var response []ordiscan.RuneInfo
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
	})

	s.Run("error: indexer outage maps to 503", func() {
		s.mockRunes.EXPECT().List(gomock.Any()).
			Return(nil, usecase.ErrUpstreamUnavailable)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/runes", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "Service temporarily unavailable")
	})
}
