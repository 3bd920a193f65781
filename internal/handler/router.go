package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"slotbook/internal/handler/api"
	"slotbook/internal/handler/middleware"
	"slotbook/internal/pkg/config"
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
	appointmentHandler *api.AppointmentHandler,
	availabilityHandler *api.AvailabilityHandler,
	streamHandler *api.StreamHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, appointmentHandler, availabilityHandler, streamHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	appointmentHandler *api.AppointmentHandler,
	availabilityHandler *api.AvailabilityHandler,
	streamHandler *api.StreamHandler,
	authMiddleware *middleware.AuthMiddleware,
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
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		appointments := apiGroup.Group("/appointments")
		appointments.Use(authMiddleware.RequireAuth())
		{
			addRoutes(appointments, []route{
				{Method: http.MethodPost, Path: "", Handler: appointmentHandler.Submit},
				{Method: http.MethodGet, Path: "", Handler: appointmentHandler.List},
				{Method: http.MethodGet, Path: "/stream", Handler: streamHandler.Connect},
				{Method: http.MethodGet, Path: "/counts", Handler: appointmentHandler.StatusCounts,
					Mw: []gin.HandlerFunc{authMiddleware.RequireOperator()}},
				{Method: http.MethodGet, Path: "/:id", Handler: appointmentHandler.Get},
				{Method: http.MethodDelete, Path: "/:id", Handler: appointmentHandler.Delete},
				{Method: http.MethodPatch, Path: "/:id/completed", Handler: appointmentHandler.SetCompleted,
					Mw: []gin.HandlerFunc{authMiddleware.RequireOperator()}},
			})
		}

		availability := apiGroup.Group("/availability")
		availability.Use(authMiddleware.RequireAuth())
		{
			addRoutes(availability, []route{
				{Method: http.MethodGet, Path: "/:year/:month", Handler: availabilityHandler.Month},
				{Method: http.MethodGet, Path: "/:year/:month/:day", Handler: availabilityHandler.Day},
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
