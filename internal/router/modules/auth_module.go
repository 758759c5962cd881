package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gahalberto/ImobiManager/internal/container"
	handlers "github.com/gahalberto/ImobiManager/internal/interface/http"
	"github.com/gahalberto/ImobiManager/internal/interface/middleware"
)

// AuthModule registers the public authentication routes.
// POST /api/signup, POST /api/signin
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Credential endpoints are the brute-force target; keep them on a
	// tighter per-IP budget than the rest of the API.
	limiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath())

	rg.POST("/signup", limiter, m.Handler.Signup)
	rg.POST("/signin", limiter, m.Handler.Signin)
}
