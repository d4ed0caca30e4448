// Package httpapi binds the level gateway to JSON over HTTP
package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/KirkDiggler/rpg-levelgen/internal/errors"
	"github.com/KirkDiggler/rpg-levelgen/internal/orchestrators/gateway"
	"github.com/KirkDiggler/rpg-levelgen/internal/pkg/logger"
)

// DefaultServiceName names HTTP server spans
const DefaultServiceName = "levelgen-http"

// RouterConfig holds dependencies for the HTTP router
type RouterConfig struct {
	Service        gateway.Service
	AllowedOrigins []string

	// Optional
	Logger      *logger.Logger
	ServiceName string

	// TrustedProxies may set the client IP through X-Forwarded-For. Nil
	// trusts none, so the caller is the connection's remote address.
	TrustedProxies []string
}

// Validate ensures all required dependencies are present
func (c *RouterConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("router config is required")
	}
	vb := errors.NewValidationBuilder()
	if c.Service == nil {
		vb.RequiredField("Service")
	}
	// cors panics when no origin is allowed
	if len(c.AllowedOrigins) == 0 {
		vb.RequiredField("AllowedOrigins")
	}
	return vb.Build()
}

// NewRouter builds the gin engine serving the gateway routes
func NewRouter(cfg *RouterConfig) (*gin.Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := cfg.Logger
	if log == nil {
		log = logger.NewNop()
	}

	h := &Handler{service: cfg.Service}

	router := gin.New()
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, errors.InvalidArgumentf("invalid trusted proxies: %v", err)
	}
	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = DefaultServiceName
	}

	router.Use(
		gin.Recovery(),
		otelgin.Middleware(serviceName),
		RequestLogger(log),
		CORS(cfg.AllowedOrigins),
	)

	router.GET("/healthz", h.HealthCheck)

	api := router.Group("/api")
	{
		api.POST("/generate-level", h.GenerateLevel)
		api.POST("/npc-dialog", h.NPCDialog)
		api.POST("/adjust-difficulty", h.AdjustDifficulty)
		api.GET("/fallback-level", h.FallbackLevel)
	}

	return router, nil
}

// CORS allows browser clients from the configured origins
func CORS(origins []string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:  origins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Content-Type", "X-Requested-With"},
		ExposeHeaders: []string{"Retry-After"},
		MaxAge:        12 * time.Hour,
	})
}

// RequestLogger logs one line per request
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		fields := []interface{}{
			"method", strings.ToUpper(c.Request.Method),
			"path", path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}

		switch {
		case status >= 500:
			log.Error("HTTP request", fields...)
		case status >= 400:
			log.Warn("HTTP request", fields...)
		default:
			log.Info("HTTP request", fields...)
		}
	}
}
