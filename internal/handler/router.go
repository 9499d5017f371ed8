package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"runes-gateway/internal/handler/api"
	"runes-gateway/internal/handler/middleware"
	"runes-gateway/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	borrowHandler *api.BorrowHandler,
	swapHandler *api.SwapHandler,
	runeHandler *api.RuneHandler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, borrowHandler, swapHandler, runeHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	borrowHandler *api.BorrowHandler,
	swapHandler *api.SwapHandler,
	runeHandler *api.RuneHandler,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/prepare", Handler: authHandler.Prepare},
				{Method: http.MethodPost, Path: "/submit", Handler: authHandler.Submit},
			})
		}

		borrow := apiGroup.Group("/borrow")
		{
			addRoutes(borrow, []route{
				{Method: http.MethodGet, Path: "/ranges", Handler: borrowHandler.Ranges},
				{Method: http.MethodPost, Path: "/quotes", Handler: borrowHandler.Quotes},
				{Method: http.MethodPost, Path: "/prepare", Handler: borrowHandler.Prepare},
				{Method: http.MethodPost, Path: "/submit", Handler: borrowHandler.Submit},
				{Method: http.MethodPost, Path: "/repay", Handler: borrowHandler.Repay},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/portfolio", Handler: borrowHandler.Portfolio},
		})

		swap := apiGroup.Group("/swap")
		{
			addRoutes(swap, []route{
				{Method: http.MethodGet, Path: "/search", Handler: swapHandler.Search},
				{Method: http.MethodPost, Path: "/quote", Handler: swapHandler.Quote},
				{Method: http.MethodPost, Path: "/psbt/create", Handler: swapHandler.CreatePSBT},
				{Method: http.MethodPost, Path: "/psbt/confirm", Handler: swapHandler.ConfirmPSBT},
			})
		}

		runes := apiGroup.Group("/runes")
		{
			addRoutes(runes, []route{
				{Method: http.MethodGet, Path: "", Handler: runeHandler.List},
				{Method: http.MethodGet, Path: "/popular", Handler: swapHandler.Popular},
				{Method: http.MethodGet, Path: "/:name", Handler: runeHandler.Info},
				{Method: http.MethodGet, Path: "/:name/last-sale", Handler: runeHandler.LastSale},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
