package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/exec-assistant-team/exec-assistant/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg              *config.Config
	assistantHandler *AssistantController
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, assistantHandler *AssistantController) *Router {
	return &Router{
		cfg:              cfg,
		assistantHandler: assistantHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupAssistantRoutes(v1)
}

// setupAssistantRoutes configures assistant routes
func (rt *Router) setupAssistantRoutes(g *echo.Group) {
	assistantGroup := g.Group("/assistant")

	if rt.assistantHandler != nil {
		assistantGroup.POST("/context", rt.assistantHandler.BuildContext)
		assistantGroup.POST("/meetings/:id/brief", rt.assistantHandler.GenerateBrief)
	} else {
		assistantGroup.POST("/context", rt.notImplemented)
		assistantGroup.POST("/meetings/:id/brief", rt.notImplemented)
	}
}

// notImplemented returns 501 Not Implemented response
func (rt *Router) notImplemented(c echo.Context) error {
	return c.JSON(http.StatusNotImplemented, map[string]interface{}{
		"error":   "This endpoint is not yet implemented",
		"path":    c.Request().URL.Path,
		"method":  c.Request().Method,
		"message": "Please initialize the required handler in main.go",
	})
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	env := "development"
	if rt.cfg != nil {
		env = rt.cfg.Server.Environment
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": env,
	})
}
